package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	_ "github.com/Dan9191/credit-service/docs"
	"github.com/Dan9191/credit-service/internal/middleware"
	"github.com/Dan9191/credit-service/internal/models"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// CustomerService is the customer capability set the handlers depend on.
type CustomerService interface {
	Save(ctx context.Context, customer *models.Customer) (*models.Customer, error)
	FindByID(ctx context.Context, id int64) (*models.Customer, error)
	Delete(ctx context.Context, id int64) error
}

// CreditService is the credit capability set the handlers depend on.
type CreditService interface {
	Save(ctx context.Context, credit *models.Credit) (*models.Credit, error)
	FindAllByCustomer(ctx context.Context, customerID int64) ([]models.Credit, error)
	FindByCreditCode(ctx context.Context, customerID int64, creditCode uuid.UUID) (*models.Credit, error)
}

// Pinger reports database reachability; *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler adapts HTTP requests to the customer and credit services
type Handler struct {
	customers CustomerService
	credits   CreditService
	db        Pinger
	log       *logrus.Logger
	now       func() time.Time
}

// Option configures optional Handler collaborators.
type Option func(*Handler)

// WithClock replaces time.Now as the source of "today" for request checks.
// It should be the same clock the credit service uses.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) { h.now = now }
}

// NewHandler creates a Handler. db may be nil, in which case /health only
// reports that the process is up.
func NewHandler(customers CustomerService, credits CreditService, db Pinger, log *logrus.Logger, opts ...Option) *Handler {
	h := &Handler{customers: customers, credits: credits, db: db, log: log, now: time.Now}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// RouterConfig toggles optional routes.
type RouterConfig struct {
	// Docs mounts the Swagger UI and doc.json under /swagger/.
	Docs bool
}

// NewRouter registers all routes behind the request id, logging and recovery middleware.
func NewRouter(h *Handler, log *logrus.Logger, cfg RouterConfig) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.RequestID, middleware.RequestLogger(log), middleware.Recoverer(log))
	r.NotFoundHandler = http.HandlerFunc(h.NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(h.MethodNotAllowed)

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	r.HandleFunc("/api/customers", h.RegisterCustomer).Methods(http.MethodPost)
	r.HandleFunc("/api/customers", h.UpdateCustomer).Methods(http.MethodPatch)
	r.HandleFunc("/api/customers/{id}", h.GetCustomer).Methods(http.MethodGet)
	r.HandleFunc("/api/customers/{id}", h.DeleteCustomer).Methods(http.MethodDelete)

	r.HandleFunc("/api/credits", h.CreateCredit).Methods(http.MethodPost)
	r.HandleFunc("/api/credits", h.ListCredits).Methods(http.MethodGet)
	r.HandleFunc("/api/credits/{creditCode}", h.GetCredit).Methods(http.MethodGet)

	if cfg.Docs {
		r.PathPrefix("/swagger/").Handler(httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		)).Methods(http.MethodGet)
	}

	return r
}

// NotFound answers requests that match no route.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeException(w, http.StatusNotFound, titleNotFound, "ROUTE_NOT_FOUND",
		map[string]string{"path": fmt.Sprintf("No handler for %s %s", r.Method, r.URL.Path)})
}

// MethodNotAllowed answers requests whose path exists under another method.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeException(w, http.StatusMethodNotAllowed, titleMethodNotAllowed, "METHOD_NOT_ALLOWED",
		map[string]string{"method": fmt.Sprintf("%s is not supported for %s", r.Method, r.URL.Path)})
}

// Health godoc
// @ID           health
// @Summary      Health check
// @Description  Reports whether the service and its database are reachable
// @Tags         system
// @Produce      json
// @Success      200 {object} map[string]string
// @Failure      503 {object} map[string]string
// @Router       /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		if err := h.db.PingContext(r.Context()); err != nil {
			h.log.Errorf("Health check failed: %v", err)
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
