package service

import (
	"context"
	"time"

	"github.com/Dan9191/credit-service/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// installmentWindowMonths bounds how far ahead the first installment may be.
const installmentWindowMonths = 3

// CreditService handles credit proposals
type CreditService struct {
	store     CreditStore
	customers CustomerFinder
	notifier  CreditNotifier
	log       *logrus.Logger
	now       func() time.Time
}

// CreditOption configures optional CreditService collaborators.
type CreditOption func(*CreditService)

// WithClock replaces time.Now as the source of "today".
func WithClock(now func() time.Time) CreditOption {
	return func(s *CreditService) { s.now = now }
}

// WithNotifier sends a confirmation for every saved credit.
func WithNotifier(n CreditNotifier) CreditOption {
	return func(s *CreditService) { s.notifier = n }
}

// NewCreditService initializes a new credit service
func NewCreditService(store CreditStore, customers CustomerFinder, log *logrus.Logger, opts ...CreditOption) *CreditService {
	s := &CreditService{
		store:     store,
		customers: customers,
		log:       log,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save validates the first installment date, resolves the owning customer and
// persists the credit with a credit code and IN_PROGRESS status.
func (s *CreditService) Save(ctx context.Context, credit *models.Credit) (*models.Credit, error) {
	if _, err := s.ValidDayFirstInstallment(credit.DayFirstInstallment); err != nil {
		return nil, err
	}

	customer, err := s.customers.FindByID(ctx, credit.CustomerID())
	if err != nil {
		return nil, err
	}

	if credit.CreditCode == uuid.Nil {
		credit.CreditCode = uuid.New()
	}
	credit.Status = models.CreditStatusInProgress
	credit.Customer = customer

	if err := s.store.SaveCredit(ctx, credit); err != nil {
		return nil, err
	}
	s.log.Infof("Credit %s saved for customer %d", credit.CreditCode, customer.ID)

	if s.notifier != nil {
		if err := s.notifier.SendCreditConfirmation(customer.Email, customer.FirstName, credit); err != nil {
			s.log.Warnf("Failed to send confirmation for credit %s: %v", credit.CreditCode, err)
		}
	}
	return credit, nil
}

// FindAllByCustomer returns the customer's credits in insertion order. A
// customer without credits yields an empty slice.
func (s *CreditService) FindAllByCustomer(ctx context.Context, customerID int64) ([]models.Credit, error) {
	credits, err := s.store.FindCreditsByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if credits == nil {
		credits = []models.Credit{}
	}
	return credits, nil
}

// FindByCreditCode returns the credit only when it belongs to customerID.
func (s *CreditService) FindByCreditCode(ctx context.Context, customerID int64, creditCode uuid.UUID) (*models.Credit, error) {
	credit, err := s.store.FindCreditByCode(ctx, creditCode)
	if err != nil {
		return nil, err
	}
	if credit == nil {
		return nil, models.NewNotFoundError("Creditcode %s not found", creditCode)
	}
	if credit.CustomerID() != customerID {
		s.log.Debugf("Credit %s requested by customer %d, owned by %d", creditCode, customerID, credit.CustomerID())
		return nil, models.NewInvalidArgumentError("Contact admin")
	}
	return credit, nil
}

// ValidDayFirstInstallment accepts dates up to and including today plus three
// calendar months and fails with BUSINESS_RULE beyond that.
func (s *CreditService) ValidDayFirstInstallment(day time.Time) (bool, error) {
	limit := models.AddMonths(models.DateOf(s.now()), installmentWindowMonths)
	if models.DateOf(day).After(limit) {
		return false, models.NewBusinessRuleError("Invalid Date")
	}
	return true, nil
}
