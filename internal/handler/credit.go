package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// CreateCredit godoc
// @ID           createCredit
// @Summary      Create a credit proposal
// @Description  Saves a credit for an existing customer with status IN_PROGRESS
// @Tags         credits
// @Accept       json
// @Produce      plain
// @Param        request body CreditRequest true "Credit proposal"
// @Success      201 {string} string "Credit {code} - Customer {email} saved!"
// @Failure      400 {object} ExceptionDetails
// @Router       /api/credits [post]
func (h *Handler) CreateCredit(w http.ResponseWriter, r *http.Request) {
	var req CreditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, fieldError("body", "Malformed JSON request body"))
		return
	}

	credit, err := req.ToEntity(h.now())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	saved, err := h.credits.Save(r.Context(), credit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	email := ""
	if saved.Customer != nil {
		email = saved.Customer.Email
	}
	writeText(w, http.StatusCreated, fmt.Sprintf("Credit %s - Customer %s saved!", saved.CreditCode, email))
}

// ListCredits godoc
// @ID           listCredits
// @Summary      List a customer's credits
// @Description  Returns every credit of the customer named by customerId, oldest first
// @Tags         credits
// @Produce      json
// @Param        customerId query int true "Customer ID"
// @Success      200 {array} CreditViewList
// @Failure      400 {object} ExceptionDetails
// @Router       /api/credits [get]
func (h *Handler) ListCredits(w http.ResponseWriter, r *http.Request) {
	customerID, err := parsePositiveID("customerId", r.URL.Query().Get("customerId"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	credits, err := h.credits.FindAllByCustomer(r.Context(), customerID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp := make([]CreditViewList, 0, len(credits))
	for _, c := range credits {
		resp = append(resp, toCreditViewList(c))
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetCredit godoc
// @ID           getCredit
// @Summary      Get a credit
// @Description  Returns one credit, provided it belongs to customerId
// @Tags         credits
// @Produce      json
// @Param        creditCode path string true "Credit code" format(uuid)
// @Param        customerId query int true "Customer ID"
// @Success      200 {object} CreditView
// @Failure      400 {object} ExceptionDetails
// @Router       /api/credits/{creditCode} [get]
func (h *Handler) GetCredit(w http.ResponseWriter, r *http.Request) {
	customerID, err := parsePositiveID("customerId", r.URL.Query().Get("customerId"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	code, err := uuid.Parse(mux.Vars(r)["creditCode"])
	if err != nil {
		h.writeError(w, r, fieldError("creditCode", "Must be a UUID"))
		return
	}

	credit, err := h.credits.FindByCreditCode(r.Context(), customerID, code)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCreditView(credit))
}
