package repository

import (
	"context"
	"fmt"

	"github.com/Raymond9734/customer-directory-api/internal/models"
)

// CustomerRepository defines the interface for customer data access
type CustomerRepository interface {
	// List returns every customer in insertion order. Callers must not
	// modify the returned records.
	List(ctx context.Context) ([]*models.Customer, error)
}

// memoryCustomerRepository implements CustomerRepository over a fixed slice
type memoryCustomerRepository struct {
	customers []*models.Customer
}

// NewMemoryCustomerRepository creates a repository over the embedded dataset
func NewMemoryCustomerRepository() (CustomerRepository, error) {
	customers, err := LoadSeedCustomers()
	if err != nil {
		return nil, err
	}
	return &memoryCustomerRepository{customers: customers}, nil
}

// NewMemoryCustomerRepositoryFrom creates a repository over the given customers.
// Every record is validated and the slice is copied.
func NewMemoryCustomerRepositoryFrom(customers []*models.Customer) (CustomerRepository, error) {
	if err := ValidateCustomers(customers); err != nil {
		return nil, err
	}

	owned := make([]*models.Customer, len(customers))
	copy(owned, customers)

	return &memoryCustomerRepository{customers: owned}, nil
}

// List returns the full dataset
func (r *memoryCustomerRepository) List(ctx context.Context) ([]*models.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return r.customers, nil
}
