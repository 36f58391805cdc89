package service

import (
	"context"

	"github.com/Dan9191/credit-service/internal/models"
	"github.com/sirupsen/logrus"
)

// CustomerService handles customer registration, lookup and removal
type CustomerService struct {
	store CustomerStore
	log   *logrus.Logger
}

// NewCustomerService initializes a new customer service
func NewCustomerService(store CustomerStore, log *logrus.Logger) *CustomerService {
	return &CustomerService{store: store, log: log}
}

// Save persists the customer as given and returns it with its assigned id.
// A customer that already has an id is updated in place.
func (s *CustomerService) Save(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	isNew := customer.ID == 0
	if err := s.store.SaveCustomer(ctx, customer); err != nil {
		return nil, err
	}

	if isNew {
		s.log.Infof("Customer registered: id=%d", customer.ID)
	} else {
		s.log.Infof("Customer updated: id=%d", customer.ID)
	}
	return customer, nil
}

// FindByID returns the customer or a NOT_FOUND error naming the id.
func (s *CustomerService) FindByID(ctx context.Context, id int64) (*models.Customer, error) {
	customer, err := s.store.FindCustomerByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		s.log.Debugf("Customer %d not found", id)
		return nil, models.NewNotFoundError("Id %d not found", id)
	}
	return customer, nil
}

// Delete removes the customer. Credits still referencing it make the store
// fail with CONFLICT; nothing is cascaded here.
func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	customer, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.store.DeleteCustomer(ctx, customer); err != nil {
		return err
	}

	s.log.Infof("Customer deleted: id=%d", id)
	return nil
}
