package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/Dan9191/credit-service/internal/middleware"
	"github.com/Dan9191/credit-service/internal/models"
)

const (
	titleBadRequest       = "Bad Request! Consult the documentation"
	titleConflict         = "Conflict! Consult the documentation"
	titleNotFound         = "Not Found! Consult the documentation"
	titleMethodNotAllowed = "Method Not Allowed! Consult the documentation"
	titleInternal         = "Internal Server Error"
)

// ExceptionDetails is the error body returned for every failed request.
type ExceptionDetails struct {
	Title     string            `json:"title"`
	Timestamp time.Time         `json:"timestamp"`
	Status    int               `json:"status"`
	Exception string            `json:"exception"`
	Details   map[string]string `json:"details"`
}

// kindStatus maps domain error kinds to HTTP status codes.
var kindStatus = map[models.ErrorKind]int{
	models.KindNotFound:        http.StatusBadRequest,
	models.KindInvalidArgument: http.StatusBadRequest,
	models.KindBusinessRule:    http.StatusBadRequest,
	models.KindConflict:        http.StatusConflict,
}

// writeError translates err into an ExceptionDetails response.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		verr *ValidationError
		derr *models.DomainError
	)

	switch {
	case errors.As(err, &verr):
		writeException(w, http.StatusBadRequest, titleBadRequest, "VALIDATION", verr.Fields)

	case errors.As(err, &derr):
		status, ok := kindStatus[derr.Kind]
		if !ok {
			status = http.StatusInternalServerError
		}
		title := titleBadRequest
		if status == http.StatusConflict {
			title = titleConflict
			h.log.WithField("request_id", middleware.RequestIDFrom(r.Context())).Warnf("Persistence conflict: %v", err)
		}
		writeException(w, status, title, string(derr.Kind), map[string]string{string(derr.Kind): derr.Message})

	default:
		h.log.WithField("request_id", middleware.RequestIDFrom(r.Context())).Errorf("Request failed: %v", err)
		writeException(w, http.StatusInternalServerError, titleInternal, "INTERNAL",
			map[string]string{"error": "internal server error"})
	}
}

func writeException(w http.ResponseWriter, status int, title, exception string, details map[string]string) {
	writeJSON(w, status, ExceptionDetails{
		Title:     title,
		Timestamp: time.Now().UTC(),
		Status:    status,
		Exception: exception,
		Details:   details,
	})
}
