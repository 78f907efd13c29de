package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Raymond9734/customer-directory-api/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS customers (
	id            BIGINT PRIMARY KEY,
	name          TEXT    NOT NULL CHECK (name <> ''),
	employees     INTEGER NOT NULL CHECK (employees >= 0),
	industry      TEXT    NOT NULL CHECK (industry IN ('Logistics', 'Retail', 'Technology', 'HR', 'Finance')),
	contact_name  TEXT,
	contact_email TEXT,
	street        TEXT,
	city          TEXT,
	state         TEXT,
	zip_code      TEXT,
	country       TEXT
)`

const upsertCustomer = `
INSERT INTO customers (id, name, employees, industry, contact_name, contact_email, street, city, state, zip_code, country)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (id) DO UPDATE SET
	name = EXCLUDED.name,
	employees = EXCLUDED.employees,
	industry = EXCLUDED.industry,
	contact_name = EXCLUDED.contact_name,
	contact_email = EXCLUDED.contact_email,
	street = EXCLUDED.street,
	city = EXCLUDED.city,
	state = EXCLUDED.state,
	zip_code = EXCLUDED.zip_code,
	country = EXCLUDED.country`

// Migrate creates the customers table if it does not exist
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// SeedCustomers upserts the given customers in a single transaction and
// returns the number of rows written
func (db *DB) SeedCustomers(ctx context.Context, customers []*models.Customer) (int, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, upsertCustomer)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, c := range customers {
		if _, err := stmt.ExecContext(ctx, customerArgs(c)...); err != nil {
			return 0, fmt.Errorf("failed to upsert customer %d: %w", c.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit seed: %w", err)
	}

	return len(customers), nil
}

// customerArgs flattens a customer into upsert arguments. Absent nested
// objects become NULL columns.
func customerArgs(c *models.Customer) []any {
	var contactName, contactEmail sql.NullString
	if c.ContactInfo != nil {
		contactName = sql.NullString{String: c.ContactInfo.Name, Valid: true}
		contactEmail = sql.NullString{String: c.ContactInfo.Email, Valid: true}
	}

	var street, city, state, zip, country sql.NullString
	if c.Address != nil {
		street = sql.NullString{String: c.Address.Street, Valid: true}
		city = sql.NullString{String: c.Address.City, Valid: true}
		state = sql.NullString{String: c.Address.State, Valid: true}
		zip = sql.NullString{String: c.Address.ZipCode, Valid: true}
		country = sql.NullString{String: c.Address.Country, Valid: true}
	}

	return []any{
		c.ID, c.Name, c.Employees, string(c.Industry),
		contactName, contactEmail,
		street, city, state, zip, country,
	}
}
