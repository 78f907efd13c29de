package service

import (
	"github.com/Raymond9734/customer-directory-api/internal/models"
)

// CustomerView is a customer as returned by the listing endpoint,
// enriched with its derived size
type CustomerView struct {
	ID          int64               `json:"id"`
	Name        string              `json:"name"`
	Employees   int                 `json:"employees"`
	Industry    models.Industry     `json:"industry"`
	ContactInfo *models.ContactInfo `json:"contactInfo"`
	Address     *models.Address     `json:"address"`
	Size        models.Size         `json:"size"`
}

// NewCustomerView builds the view of a customer
func NewCustomerView(c *models.Customer) CustomerView {
	return CustomerView{
		ID:          c.ID,
		Name:        c.Name,
		Employees:   c.Employees,
		Industry:    c.Industry,
		ContactInfo: c.ContactInfo,
		Address:     c.Address,
		Size:        c.Size(),
	}
}

// CustomerListResult represents a filtered page of customers
type CustomerListResult struct {
	Customers []CustomerView  `json:"customers"`
	PageInfo  models.PageInfo `json:"pageInfo"`
}
