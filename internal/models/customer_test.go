package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifySize(t *testing.T) {
	tests := []struct {
		employees int
		want      Size
	}{
		{0, SizeSmall},
		{99, SizeSmall},
		{100, SizeMedium},
		{999, SizeMedium},
		{1000, SizeEnterprise},
		{9999, SizeEnterprise},
		{10000, SizeLargeEnterprise},
		{49999, SizeLargeEnterprise},
		{50000, SizeVeryLargeEnterprise},
		{2000000, SizeVeryLargeEnterprise},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifySize(tt.employees), "employees=%d", tt.employees)
	}
}

func TestParseSize(t *testing.T) {
	for _, size := range Sizes {
		got, ok := ParseSize(size.String())
		require.True(t, ok, size.String())
		assert.Equal(t, size, got)
	}

	for _, raw := range []string{"", "All", "Gigantic", "medium", "LargeEnterprise", " Small"} {
		_, ok := ParseSize(raw)
		assert.False(t, ok, raw)
	}
}

func TestParseIndustry(t *testing.T) {
	for _, industry := range Industries {
		got, ok := ParseIndustry(string(industry))
		require.True(t, ok)
		assert.Equal(t, industry, got)
	}

	for _, raw := range []string{"", "All", "Food", "technology", "hr"} {
		_, ok := ParseIndustry(raw)
		assert.False(t, ok, raw)
	}
}

func TestSize_Text(t *testing.T) {
	b, err := json.Marshal(SizeLargeEnterprise)
	require.NoError(t, err)
	assert.Equal(t, `"Large Enterprise"`, string(b))

	var got Size
	require.NoError(t, json.Unmarshal([]byte(`"Very Large Enterprise"`), &got))
	assert.Equal(t, SizeVeryLargeEnterprise, got)

	assert.Error(t, json.Unmarshal([]byte(`"Huge"`), &got))

	_, err = json.Marshal(Size(0))
	assert.Error(t, err)
	assert.Equal(t, "Size(9)", Size(9).String())
}

func TestCustomer_SizeIsDerived(t *testing.T) {
	c := &Customer{ID: 1, Name: "Acme", Employees: 99}
	assert.Equal(t, SizeSmall, c.Size())

	c.Employees = 100
	assert.Equal(t, SizeMedium, c.Size())
}

func TestCustomer_JSONNullables(t *testing.T) {
	c := &Customer{ID: 1, Name: "Acme", Employees: 10, Industry: IndustryRetail}

	b, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"id":1,"name":"Acme","employees":10,"industry":"Retail","contactInfo":null,"address":null}`,
		string(b),
	)
}
