package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestClassifyCustomer(t *testing.T) {
	tests := []struct {
		name       string
		salarySlab *string
		age        *int
		want       Classification
	}{
		{
			name:       "high salary mid-age is HNW",
			salarySlab: strPtr("1500000"),
			age:        intPtr(45),
			want:       ClassificationHNW,
		},
		{
			name:       "high salary senior is still HNW",
			salarySlab: strPtr("2000000"),
			age:        intPtr(72),
			want:       ClassificationHNW,
		},
		{
			name:       "moderate salary senior is Aged",
			salarySlab: strPtr("500000"),
			age:        intPtr(65),
			want:       ClassificationAged,
		},
		{
			name:       "moderate salary young is Standard",
			salarySlab: strPtr("300000"),
			age:        intPtr(30),
			want:       ClassificationStandard,
		},
		{
			name:       "salary exactly at threshold is not HNW",
			salarySlab: strPtr("1000000"),
			age:        intPtr(30),
			want:       ClassificationStandard,
		},
		{
			name:       "age exactly sixty is Aged",
			salarySlab: strPtr("100000"),
			age:        intPtr(60),
			want:       ClassificationAged,
		},
		{
			name:       "missing salary and age is Standard",
			salarySlab: nil,
			age:        nil,
			want:       ClassificationStandard,
		},
		{
			name:       "malformed salary falls back to zero",
			salarySlab: strPtr("premium-tier"),
			age:        intPtr(40),
			want:       ClassificationStandard,
		},
		{
			name:       "malformed salary senior is Aged",
			salarySlab: strPtr("n/a"),
			age:        intPtr(68),
			want:       ClassificationAged,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			customer := &Customer{
				CustomerID: "CUST-001",
				FirstName:  "Asha",
				LastName:   "Rao",
				SalarySlab: tt.salarySlab,
				Age:        tt.age,
			}
			assert.Equal(t, tt.want, ClassifyCustomer(customer))
		})
	}
}

func TestParseSalarySlab(t *testing.T) {
	tests := []struct {
		name string
		slab *string
		want int64
	}{
		{"nil slab", nil, 0},
		{"empty string", strPtr(""), 0},
		{"plain number", strPtr("1500000"), 1500000},
		{"leading spaces", strPtr("  750000"), 750000},
		{"trailing text", strPtr("1500000 INR"), 1500000},
		{"non-numeric", strPtr("premium"), 0},
		{"negative sign treated as non-numeric", strPtr("-100"), 0},
		{"zero", strPtr("0"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSalarySlab(tt.slab))
		})
	}
}

func TestClassificationLabel(t *testing.T) {
	assert.Equal(t, "High Net Worth", ClassificationHNW.Label())
	assert.Equal(t, "Irate Customer", ClassificationIrate.Label())
	assert.Equal(t, "Senior Citizen", ClassificationAged.Label())
	assert.Equal(t, "Standard", ClassificationStandard.Label())

	// Unknown tags render as Standard instead of an empty badge.
	assert.Equal(t, "Standard", Classification("mystery").Label())
}
