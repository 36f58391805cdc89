package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dan9191/credit-service/internal/models"
)

const customerColumns = `id, first_name, last_name, cpf, email, income, password, zip_code, street`

// SaveCustomer inserts a new customer, or updates the existing row when the
// customer already carries an id. The assigned id is written back.
func (r *Repository) SaveCustomer(ctx context.Context, c *models.Customer) error {
	if c.ID != 0 {
		return r.updateCustomer(ctx, c)
	}

	query := `
		INSERT INTO customers (first_name, last_name, cpf, email, income, password, zip_code, street)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		c.FirstName, c.LastName, c.CPF, c.Email, c.Income, c.Password, c.ZipCode, c.Street,
	).Scan(&c.ID)
	if err != nil {
		return wrapError("create customer", err)
	}
	return nil
}

func (r *Repository) updateCustomer(ctx context.Context, c *models.Customer) error {
	query := `
		UPDATE customers
		SET first_name = $1, last_name = $2, cpf = $3, email = $4, income = $5,
		    password = $6, zip_code = $7, street = $8
		WHERE id = $9`
	res, err := r.db.ExecContext(ctx, query,
		c.FirstName, c.LastName, c.CPF, c.Email, c.Income, c.Password, c.ZipCode, c.Street, c.ID,
	)
	if err != nil {
		return wrapError(fmt.Sprintf("update customer %d", c.ID), err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return models.NewNotFoundError("Id %d not found", c.ID)
	}
	return nil
}

// FindCustomerByID retrieves a customer by id. Returns nil, nil when no row matches.
func (r *Repository) FindCustomerByID(ctx context.Context, id int64) (*models.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`

	c, err := scanCustomer(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find customer %d: %w", id, err)
	}
	return c, nil
}

// DeleteCustomer removes the customer row. Existing credits make the foreign
// key reject the delete, which surfaces as a CONFLICT error.
func (r *Repository) DeleteCustomer(ctx context.Context, c *models.Customer) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, c.ID); err != nil {
		return wrapError(fmt.Sprintf("delete customer %d", c.ID), err)
	}
	return nil
}

func scanCustomer(s scanner) (*models.Customer, error) {
	var c models.Customer
	err := s.Scan(&c.ID, &c.FirstName, &c.LastName, &c.CPF, &c.Email, &c.Income, &c.Password, &c.ZipCode, &c.Street)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
