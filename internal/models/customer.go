package models

import "fmt"

// Industry is the business sector a customer operates in
type Industry string

// Supported industries
const (
	IndustryLogistics  Industry = "Logistics"
	IndustryRetail     Industry = "Retail"
	IndustryTechnology Industry = "Technology"
	IndustryHR         Industry = "HR"
	IndustryFinance    Industry = "Finance"
)

// Industries lists every supported industry
var Industries = []Industry{
	IndustryLogistics,
	IndustryRetail,
	IndustryTechnology,
	IndustryHR,
	IndustryFinance,
}

// ParseIndustry converts a raw value into an Industry
func ParseIndustry(value string) (Industry, bool) {
	switch industry := Industry(value); industry {
	case IndustryLogistics, IndustryRetail, IndustryTechnology, IndustryHR, IndustryFinance:
		return industry, true
	default:
		return "", false
	}
}

// Size is the customer tier derived from the number of employees.
// The zero value is not a valid size.
type Size uint8

// Customer sizes, ordered from smallest to largest
const (
	SizeSmall Size = iota + 1
	SizeMedium
	SizeEnterprise
	SizeLargeEnterprise
	SizeVeryLargeEnterprise
)

// Lower bounds (inclusive) of each size tier
const (
	MediumMinEmployees              = 100
	EnterpriseMinEmployees          = 1000
	LargeEnterpriseMinEmployees     = 10000
	VeryLargeEnterpriseMinEmployees = 50000
)

var sizeNames = map[Size]string{
	SizeSmall:               "Small",
	SizeMedium:              "Medium",
	SizeEnterprise:          "Enterprise",
	SizeLargeEnterprise:     "Large Enterprise",
	SizeVeryLargeEnterprise: "Very Large Enterprise",
}

// Sizes lists every size tier
var Sizes = []Size{
	SizeSmall,
	SizeMedium,
	SizeEnterprise,
	SizeLargeEnterprise,
	SizeVeryLargeEnterprise,
}

// ClassifySize returns the size tier for the given employee count
func ClassifySize(employees int) Size {
	switch {
	case employees < MediumMinEmployees:
		return SizeSmall
	case employees < EnterpriseMinEmployees:
		return SizeMedium
	case employees < LargeEnterpriseMinEmployees:
		return SizeEnterprise
	case employees < VeryLargeEnterpriseMinEmployees:
		return SizeLargeEnterprise
	default:
		return SizeVeryLargeEnterprise
	}
}

// ParseSize converts a display name such as "Large Enterprise" into a Size
func ParseSize(value string) (Size, bool) {
	for _, size := range Sizes {
		if sizeNames[size] == value {
			return size, true
		}
	}
	return 0, false
}

// IsValid reports whether s is one of the defined tiers
func (s Size) IsValid() bool {
	_, ok := sizeNames[s]
	return ok
}

func (s Size) String() string {
	if name, ok := sizeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Size(%d)", uint8(s))
}

// MarshalText encodes the size using its display name
func (s Size) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("invalid size: %d", uint8(s))
	}
	return []byte(sizeNames[s]), nil
}

// UnmarshalText decodes a size from its display name
func (s *Size) UnmarshalText(text []byte) error {
	size, ok := ParseSize(string(text))
	if !ok {
		return fmt.Errorf("invalid size: %q", string(text))
	}
	*s = size
	return nil
}

// ContactInfo holds the customer's point of contact
type ContactInfo struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// Address holds the customer's postal address
type Address struct {
	Street  string `json:"street" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	ZipCode string `json:"zipCode" validate:"required"`
	Country string `json:"country" validate:"required"`
}

// Customer represents a customer record. Records are read-only once loaded.
// ContactInfo and Address are nil when the customer has none on file.
type Customer struct {
	ID          int64        `json:"id" validate:"gt=0"`
	Name        string       `json:"name" validate:"required"`
	Employees   int          `json:"employees" validate:"gte=0"`
	Industry    Industry     `json:"industry" validate:"oneof=Logistics Retail Technology HR Finance"`
	ContactInfo *ContactInfo `json:"contactInfo"`
	Address     *Address     `json:"address"`
}

// Size returns the customer's tier. It is always derived from Employees.
func (c *Customer) Size() Size {
	return ClassifySize(c.Employees)
}
