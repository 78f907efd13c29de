package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Raymond9734/customer-directory-api/internal/models"
)

// postgresCustomerRepository implements CustomerRepository using PostgreSQL
type postgresCustomerRepository struct {
	db *sql.DB
}

// NewPostgresCustomerRepository creates a new customer repository backed by PostgreSQL
func NewPostgresCustomerRepository(db *sql.DB) CustomerRepository {
	return &postgresCustomerRepository{db: db}
}

// List retrieves every customer ordered by id, which is insertion order
func (r *postgresCustomerRepository) List(ctx context.Context) ([]*models.Customer, error) {
	query := `
		SELECT id, name, employees, industry,
		       contact_name, contact_email,
		       street, city, state, zip_code, country
		FROM customers
		ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	customers := []*models.Customer{}
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		if err := ValidateCustomer(customer); err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customers: %w", err)
	}

	return customers, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCustomer(row rowScanner) (*models.Customer, error) {
	var (
		customer                          models.Customer
		industry                          string
		contactName, contactEmail         sql.NullString
		street, city, state, zip, country sql.NullString
	)

	err := row.Scan(
		&customer.ID,
		&customer.Name,
		&customer.Employees,
		&industry,
		&contactName,
		&contactEmail,
		&street,
		&city,
		&state,
		&zip,
		&country,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan customer: %w", err)
	}
	customer.Industry = models.Industry(industry)

	switch {
	case contactName.Valid && contactEmail.Valid:
		customer.ContactInfo = &models.ContactInfo{
			Name:  contactName.String,
			Email: contactEmail.String,
		}
	case contactName.Valid || contactEmail.Valid:
		return nil, fmt.Errorf("%w: id %d: incomplete contact info", ErrInvalidCustomer, customer.ID)
	}

	addressParts := []sql.NullString{street, city, state, zip, country}
	present := 0
	for _, part := range addressParts {
		if part.Valid {
			present++
		}
	}
	switch present {
	case 0:
	case len(addressParts):
		customer.Address = &models.Address{
			Street:  street.String,
			City:    city.String,
			State:   state.String,
			ZipCode: zip.String,
			Country: country.String,
		}
	default:
		return nil, fmt.Errorf("%w: id %d: incomplete address", ErrInvalidCustomer, customer.ID)
	}

	return &customer, nil
}
