package repository

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/Raymond9734/customer-directory-api/internal/models"
)

//go:embed seed/customers.json
var seedCustomersJSON []byte

// LoadSeedCustomers decodes and validates the embedded customer dataset
func LoadSeedCustomers() ([]*models.Customer, error) {
	return DecodeCustomers(seedCustomersJSON)
}

// DecodeCustomers decodes a JSON array of customers and validates every record.
// Unknown fields are rejected so derived values such as size cannot be stored.
func DecodeCustomers(data []byte) ([]*models.Customer, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	var customers []*models.Customer
	if err := decoder.Decode(&customers); err != nil {
		return nil, fmt.Errorf("failed to decode customers: %w", err)
	}

	if err := ValidateCustomers(customers); err != nil {
		return nil, err
	}

	return customers, nil
}
