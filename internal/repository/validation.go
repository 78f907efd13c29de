package repository

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/Raymond9734/customer-directory-api/internal/models"
)

// ErrInvalidCustomer is returned when a stored record breaks the data model
var ErrInvalidCustomer = errors.New("invalid customer record")

var validate = validator.New()

// ValidateCustomer checks a single record: required fields, a known industry,
// a well-formed contact email and fully populated nested objects.
func ValidateCustomer(customer *models.Customer) error {
	if customer == nil {
		return fmt.Errorf("%w: nil record", ErrInvalidCustomer)
	}
	if err := validate.Struct(customer); err != nil {
		return fmt.Errorf("%w: id %d: %v", ErrInvalidCustomer, customer.ID, err)
	}
	return nil
}

// ValidateCustomers checks every record and rejects duplicate IDs
func ValidateCustomers(customers []*models.Customer) error {
	seen := make(map[int64]struct{}, len(customers))

	for _, customer := range customers {
		if err := ValidateCustomer(customer); err != nil {
			return err
		}
		if _, dup := seen[customer.ID]; dup {
			return fmt.Errorf("%w: duplicate id %d", ErrInvalidCustomer, customer.ID)
		}
		seen[customer.ID] = struct{}{}
	}

	return nil
}
