package models

import "github.com/shopspring/decimal"

// Customer represents a registered customer in the system
type Customer struct {
	ID        int64
	FirstName string
	LastName  string
	CPF       string
	Email     string
	Income    decimal.Decimal
	Password  string
	ZipCode   string
	Street    string
}
