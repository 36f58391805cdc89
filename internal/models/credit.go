package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreditStatus represents the lifecycle state of a credit
type CreditStatus string

// CreditStatusInProgress is assigned to every new credit.
const CreditStatusInProgress CreditStatus = "IN_PROGRESS"

// Credit represents a credit proposal in the system
type Credit struct {
	ID                   int64
	CreditCode           uuid.UUID
	CreditValue          decimal.Decimal
	DayFirstInstallment  time.Time
	NumberOfInstallments int
	Status               CreditStatus
	Customer             *Customer
}

// NewCredit builds a credit with a fresh credit code and IN_PROGRESS status.
// The customer is a stub carrying only its id; services resolve the full record.
func NewCredit(value decimal.Decimal, dayFirstInstallment time.Time, installments int, customerID int64) *Credit {
	return &Credit{
		CreditCode:           uuid.New(),
		CreditValue:          value,
		DayFirstInstallment:  DateOf(dayFirstInstallment),
		NumberOfInstallments: installments,
		Status:               CreditStatusInProgress,
		Customer:             &Customer{ID: customerID},
	}
}

// CustomerID returns the id of the owning customer, or 0 when none is attached.
func (c *Credit) CustomerID() int64 {
	if c.Customer == nil {
		return 0
	}
	return c.Customer.ID
}
