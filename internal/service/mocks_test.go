package service

import (
	"context"
	"io"

	"github.com/Dan9191/credit-service/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

// MockCustomerStore is a mock implementation of CustomerStore
type MockCustomerStore struct {
	mock.Mock
}

func (m *MockCustomerStore) SaveCustomer(ctx context.Context, c *models.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerStore) FindCustomerByID(ctx context.Context, id int64) (*models.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockCustomerStore) DeleteCustomer(ctx context.Context, c *models.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

// MockCreditStore is a mock implementation of CreditStore
type MockCreditStore struct {
	mock.Mock
}

func (m *MockCreditStore) SaveCredit(ctx context.Context, c *models.Credit) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCreditStore) FindCreditByCode(ctx context.Context, code uuid.UUID) (*models.Credit, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Credit), args.Error(1)
}

func (m *MockCreditStore) FindCreditsByCustomerID(ctx context.Context, customerID int64) ([]models.Credit, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Credit), args.Error(1)
}

// MockNotifier is a mock implementation of CreditNotifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendCreditConfirmation(to, firstName string, credit *models.Credit) error {
	args := m.Called(to, firstName, credit)
	return args.Error(0)
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
