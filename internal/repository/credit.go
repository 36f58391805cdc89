package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dan9191/credit-service/internal/models"
	"github.com/google/uuid"
)

// SaveCredit inserts a credit and writes back the assigned id.
func (r *Repository) SaveCredit(ctx context.Context, c *models.Credit) error {
	query := `
		INSERT INTO credits (credit_code, credit_value, day_first_installment, number_of_installments, status, customer_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		c.CreditCode, c.CreditValue, c.DayFirstInstallment, c.NumberOfInstallments, string(c.Status), c.CustomerID(),
	).Scan(&c.ID)
	if err != nil {
		return wrapError("create credit", err)
	}
	return nil
}

// FindCreditByCode retrieves a credit together with its owning customer.
// Returns nil, nil when no credit has the code.
func (r *Repository) FindCreditByCode(ctx context.Context, code uuid.UUID) (*models.Credit, error) {
	query := `
		SELECT cr.id, cr.credit_code, cr.credit_value, cr.day_first_installment, cr.number_of_installments, cr.status,
		       cu.id, cu.first_name, cu.last_name, cu.cpf, cu.email, cu.income, cu.password, cu.zip_code, cu.street
		FROM credits cr
		JOIN customers cu ON cu.id = cr.customer_id
		WHERE cr.credit_code = $1`

	var (
		credit models.Credit
		cust   models.Customer
		status string
	)
	err := r.db.QueryRowContext(ctx, query, code).Scan(
		&credit.ID, &credit.CreditCode, &credit.CreditValue, &credit.DayFirstInstallment, &credit.NumberOfInstallments, &status,
		&cust.ID, &cust.FirstName, &cust.LastName, &cust.CPF, &cust.Email, &cust.Income, &cust.Password, &cust.ZipCode, &cust.Street,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find credit %s: %w", code, err)
	}

	credit.Status = models.CreditStatus(status)
	credit.DayFirstInstallment = models.DateOf(credit.DayFirstInstallment)
	credit.Customer = &cust
	return &credit, nil
}

// FindCreditsByCustomerID returns the customer's credits in insertion order.
// The customer on each credit is a stub holding only the id.
func (r *Repository) FindCreditsByCustomerID(ctx context.Context, customerID int64) ([]models.Credit, error) {
	query := `
		SELECT id, credit_code, credit_value, day_first_installment, number_of_installments, status
		FROM credits
		WHERE customer_id = $1
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list credits for customer %d: %w", customerID, err)
	}
	defer rows.Close()

	credits := []models.Credit{}
	for rows.Next() {
		var (
			c      models.Credit
			status string
		)
		if err := rows.Scan(&c.ID, &c.CreditCode, &c.CreditValue, &c.DayFirstInstallment, &c.NumberOfInstallments, &status); err != nil {
			return nil, fmt.Errorf("failed to scan credit: %w", err)
		}
		c.Status = models.CreditStatus(status)
		c.DayFirstInstallment = models.DateOf(c.DayFirstInstallment)
		c.Customer = &models.Customer{ID: customerID}
		credits = append(credits, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate credits: %w", err)
	}
	return credits, nil
}
