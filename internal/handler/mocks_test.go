package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Dan9191/credit-service/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

type mockCustomerService struct {
	mock.Mock
}

func (m *mockCustomerService) Save(ctx context.Context, c *models.Customer) (*models.Customer, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *mockCustomerService) FindByID(ctx context.Context, id int64) (*models.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *mockCustomerService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockCreditService struct {
	mock.Mock
}

func (m *mockCreditService) Save(ctx context.Context, c *models.Credit) (*models.Credit, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Credit), args.Error(1)
}

func (m *mockCreditService) FindAllByCustomer(ctx context.Context, customerID int64) ([]models.Credit, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Credit), args.Error(1)
}

func (m *mockCreditService) FindByCreditCode(ctx context.Context, customerID int64, code uuid.UUID) (*models.Credit, error) {
	args := m.Called(ctx, customerID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Credit), args.Error(1)
}

type mockPinger struct {
	err error
}

func (p mockPinger) PingContext(context.Context) error { return p.err }

// testToday is the handler's "today" in every test: 2026-10-19 10:00 UTC.
var testToday = time.Date(2026, time.October, 19, 10, 0, 0, 0, time.UTC)

type testEnv struct {
	customers *mockCustomerService
	credits   *mockCreditService
	router    http.Handler
}

func newTestEnv(t *testing.T, db Pinger) *testEnv {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	env := &testEnv{
		customers: new(mockCustomerService),
		credits:   new(mockCreditService),
	}
	h := NewHandler(env.customers, env.credits, db, log, WithClock(func() time.Time { return testToday }))
	env.router = NewRouter(h, log, RouterConfig{Docs: true})

	t.Cleanup(func() {
		env.customers.AssertExpectations(t)
		env.credits.AssertExpectations(t)
	})
	return env
}

func (e *testEnv) do(method, target, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}
