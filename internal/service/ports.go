package service

import (
	"context"

	"github.com/Dan9191/credit-service/internal/models"
	"github.com/google/uuid"
)

// CustomerStore persists customers. FindCustomerByID returns nil, nil when the
// customer does not exist.
type CustomerStore interface {
	SaveCustomer(ctx context.Context, c *models.Customer) error
	FindCustomerByID(ctx context.Context, id int64) (*models.Customer, error)
	DeleteCustomer(ctx context.Context, c *models.Customer) error
}

// CreditStore persists credits. FindCreditByCode returns nil, nil when no
// credit has the code.
type CreditStore interface {
	SaveCredit(ctx context.Context, c *models.Credit) error
	FindCreditByCode(ctx context.Context, code uuid.UUID) (*models.Credit, error)
	FindCreditsByCustomerID(ctx context.Context, customerID int64) ([]models.Credit, error)
}

// CustomerFinder resolves a customer by id, failing with NOT_FOUND.
type CustomerFinder interface {
	FindByID(ctx context.Context, id int64) (*models.Customer, error)
}

// CreditNotifier is told about every credit that was persisted.
type CreditNotifier interface {
	SendCreditConfirmation(to, firstName string, credit *models.Credit) error
}
