package handler

import (
	"encoding/json"
	"time"

	"github.com/Dan9191/credit-service/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerRequest is the JSON body for customer registration.
type CustomerRequest struct {
	FirstName string           `json:"firstName" validate:"required"`
	LastName  string           `json:"lastName" validate:"required"`
	CPF       string           `json:"cpf" validate:"required,cpf"`
	Income    *decimal.Decimal `json:"income" validate:"required" swaggertype:"number" example:"1000.00"`
	Email     string           `json:"email" validate:"required,email"`
	Password  string           `json:"password" validate:"required"`
	ZipCode   string           `json:"zipCode" validate:"required"`
	Street    string           `json:"street" validate:"required"`
}

// ToEntity validates the request and builds a new, unsaved Customer.
func (r CustomerRequest) ToEntity() (*models.Customer, error) {
	if err := validateStruct(r); err != nil {
		return nil, err
	}
	if err := checkScale("income", *r.Income); err != nil {
		return nil, err
	}
	return &models.Customer{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		CPF:       r.CPF,
		Email:     r.Email,
		Income:    *r.Income,
		Password:  r.Password,
		ZipCode:   r.ZipCode,
		Street:    r.Street,
	}, nil
}

// CustomerUpdateRequest is the JSON body for a customer update.
type CustomerUpdateRequest struct {
	FirstName string           `json:"firstName" validate:"required"`
	LastName  string           `json:"lastName" validate:"required"`
	Income    *decimal.Decimal `json:"income" validate:"required" swaggertype:"number" example:"1000.00"`
	ZipCode   string           `json:"zipCode" validate:"required"`
	Street    string           `json:"street" validate:"required"`
}

// Apply validates the request and copies the updatable fields onto c.
func (r CustomerUpdateRequest) Apply(c *models.Customer) error {
	if err := validateStruct(r); err != nil {
		return err
	}
	if err := checkScale("income", *r.Income); err != nil {
		return err
	}
	c.FirstName = r.FirstName
	c.LastName = r.LastName
	c.Income = *r.Income
	c.ZipCode = r.ZipCode
	c.Street = r.Street
	return nil
}

// CreditRequest is the JSON body for a credit proposal.
type CreditRequest struct {
	CreditValue          *decimal.Decimal `json:"creditValue" validate:"required" swaggertype:"number" example:"500.00"`
	DayFirstInstallment  string           `json:"dayFirstInstallment" validate:"required,datetime=2006-01-02" example:"2026-12-01"`
	NumberOfInstallments int              `json:"numberOfInstallments" validate:"min=1,max=48"`
	CustomerID           int64            `json:"customerId" validate:"required,gt=0"`
}

// ToEntity checks the request preconditions (tag rules, positive value, first
// installment strictly after today) and builds a Credit referencing a customer stub.
func (r CreditRequest) ToEntity(today time.Time) (*models.Credit, error) {
	if err := validateStruct(r); err != nil {
		return nil, err
	}
	if err := checkScale("creditValue", *r.CreditValue); err != nil {
		return nil, err
	}
	if !r.CreditValue.IsPositive() {
		return nil, fieldError("creditValue", "Must be greater than 0")
	}

	day, err := models.ParseDate(r.DayFirstInstallment)
	if err != nil {
		return nil, fieldError("dayFirstInstallment", "Must be a date in "+models.DateLayout+" format")
	}
	if !day.After(models.DateOf(today)) {
		return nil, fieldError("dayFirstInstallment", "Must be a future date")
	}

	return models.NewCredit(*r.CreditValue, day, r.NumberOfInstallments, r.CustomerID), nil
}

// CustomerView is the JSON representation of a customer. The password is never exposed.
type CustomerView struct {
	ID        int64       `json:"id"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	CPF       string      `json:"cpf"`
	Income    json.Number `json:"income" swaggertype:"number"`
	Email     string      `json:"email"`
	ZipCode   string      `json:"zipCode"`
	Street    string      `json:"street"`
}

// CreditView is the JSON representation of a single credit.
type CreditView struct {
	CreditCode          uuid.UUID   `json:"creditCode" swaggertype:"string" format:"uuid"`
	CreditValue         json.Number `json:"creditValue" swaggertype:"number"`
	NumberOfInstallment int         `json:"numberOfInstallment"`
	DayFirstInstallment string      `json:"dayFirstInstallment"`
	Status              string      `json:"status"`
	EmailCustomer       string      `json:"emailCustomer"`
	IncomeCustomer      json.Number `json:"incomeCustomer" swaggertype:"number"`
}

// CreditViewList is the JSON representation of a credit in a listing.
type CreditViewList struct {
	CreditCode           uuid.UUID   `json:"creditCode" swaggertype:"string" format:"uuid"`
	CreditValue          json.Number `json:"creditValue" swaggertype:"number"`
	NumberOfInstallments int         `json:"numberOfInstallments"`
}

// moneyScale matches the NUMERIC(19,2) money columns.
const moneyScale = 2

// checkScale rejects amounts with more decimal places than the storage keeps.
// Trailing zeros are fine: 1.500 is accepted.
func checkScale(field string, d decimal.Decimal) error {
	if !d.Equal(d.Round(moneyScale)) {
		return fieldError(field, "Must have at most 2 decimal places")
	}
	return nil
}

func money(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(moneyScale))
}

func toCustomerView(c *models.Customer) CustomerView {
	return CustomerView{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		CPF:       c.CPF,
		Income:    money(c.Income),
		Email:     c.Email,
		ZipCode:   c.ZipCode,
		Street:    c.Street,
	}
}

func toCreditView(c *models.Credit) CreditView {
	v := CreditView{
		CreditCode:          c.CreditCode,
		CreditValue:         money(c.CreditValue),
		NumberOfInstallment: c.NumberOfInstallments,
		DayFirstInstallment: c.DayFirstInstallment.Format(models.DateLayout),
		Status:              string(c.Status),
	}
	if c.Customer != nil {
		v.EmailCustomer = c.Customer.Email
		v.IncomeCustomer = money(c.Customer.Income)
	}
	return v
}

func toCreditViewList(c models.Credit) CreditViewList {
	return CreditViewList{
		CreditCode:           c.CreditCode,
		CreditValue:          money(c.CreditValue),
		NumberOfInstallments: c.NumberOfInstallments,
	}
}
