package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Raymond9734/customer-directory-api/internal/models"
)

func TestCustomerArgs(t *testing.T) {
	full := &models.Customer{
		ID:          3,
		Name:        "Nimbus Systems",
		Employees:   850,
		Industry:    models.IndustryTechnology,
		ContactInfo: &models.ContactInfo{Name: "Wei Chen", Email: "wei@nimbus.com"},
		Address: &models.Address{
			Street: "789 Pine Rd", City: "Seattle", State: "WA", ZipCode: "98101", Country: "USA",
		},
	}

	args := customerArgs(full)
	require.Len(t, args, 11)
	assert.Equal(t, int64(3), args[0])
	assert.Equal(t, "Technology", args[3])
	assert.Equal(t, sql.NullString{String: "wei@nimbus.com", Valid: true}, args[5])
	assert.Equal(t, sql.NullString{String: "98101", Valid: true}, args[9])

	bare := &models.Customer{ID: 8, Name: "Corner Market", Employees: 8, Industry: models.IndustryRetail}
	args = customerArgs(bare)
	for _, arg := range args[4:] {
		assert.Equal(t, sql.NullString{}, arg)
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := Config{Host: "db", Port: 5433, User: "u", Password: "p", DBName: "customers", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=customers sslmode=disable", cfg.DSN())
}
