package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterCustomer godoc
// @ID           registerCustomer
// @Summary      Register a customer
// @Description  Saves a new customer and confirms with its email
// @Tags         customers
// @Accept       json
// @Produce      plain
// @Param        request body CustomerRequest true "Customer data"
// @Success      201 {string} string "Customer {email} saved!"
// @Failure      400 {object} ExceptionDetails
// @Failure      409 {object} ExceptionDetails
// @Router       /api/customers [post]
func (h *Handler) RegisterCustomer(w http.ResponseWriter, r *http.Request) {
	var req CustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, fieldError("body", "Malformed JSON request body"))
		return
	}

	customer, err := req.ToEntity()
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	saved, err := h.customers.Save(r.Context(), customer)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeText(w, http.StatusCreated, fmt.Sprintf("Customer %s saved!", saved.Email))
}

// GetCustomer godoc
// @ID           getCustomer
// @Summary      Get a customer
// @Description  Returns a single customer by id
// @Tags         customers
// @Produce      json
// @Param        id path int true "Customer ID"
// @Success      200 {object} CustomerView
// @Failure      400 {object} ExceptionDetails
// @Router       /api/customers/{id} [get]
func (h *Handler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := parsePositiveID("id", mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	customer, err := h.customers.FindByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCustomerView(customer))
}

// DeleteCustomer godoc
// @ID           deleteCustomer
// @Summary      Delete a customer
// @Description  Removes a customer that has no credits
// @Tags         customers
// @Param        id path int true "Customer ID"
// @Success      204
// @Failure      400 {object} ExceptionDetails
// @Failure      409 {object} ExceptionDetails
// @Router       /api/customers/{id} [delete]
func (h *Handler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := parsePositiveID("id", mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.customers.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpdateCustomer godoc
// @ID           updateCustomer
// @Summary      Update a customer
// @Description  Replaces the name, income and address of the customer named by customerId
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        customerId query int true "Customer ID"
// @Param        request body CustomerUpdateRequest true "Updated fields"
// @Success      200 {object} CustomerView
// @Failure      400 {object} ExceptionDetails
// @Failure      409 {object} ExceptionDetails
// @Router       /api/customers [patch]
func (h *Handler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := parsePositiveID("customerId", r.URL.Query().Get("customerId"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req CustomerUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, fieldError("body", "Malformed JSON request body"))
		return
	}

	customer, err := h.customers.FindByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := req.Apply(customer); err != nil {
		h.writeError(w, r, err)
		return
	}

	updated, err := h.customers.Save(r.Context(), customer)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCustomerView(updated))
}
