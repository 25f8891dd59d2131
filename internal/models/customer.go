package models

import (
	"errors"
	"strings"
	"time"
)

const (
	ProfileStatusActive   = "active"
	ProfileStatusInactive = "inactive"
	ProfileStatusPending  = "pending"

	KYCStatusVerified = "verified"
	KYCStatusPending  = "pending"
	KYCStatusExpired  = "expired"
)

var (
	ErrMissingCustomerID = errors.New("customer_id is required")
	ErrMissingName       = errors.New("first_name and last_name are required")
)

// Customer is the system-of-record profile row. The gateway store owns it;
// this service only reads it.
type Customer struct {
	CustomerID    string     `gorm:"column:customer_id;type:varchar(64);primaryKey" json:"customer_id"`
	FirstName     string     `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName      string     `gorm:"type:varchar(100);not null" json:"last_name"`
	Email         *string    `gorm:"type:varchar(255);index" json:"email,omitempty"`
	PhoneNumber   *string    `gorm:"type:varchar(32)" json:"phone_number,omitempty"`
	DateOfBirth   *time.Time `json:"date_of_birth,omitempty"`
	ProfileStatus *string    `gorm:"type:varchar(20)" json:"profile_status,omitempty"`
	KYCStatus     *string    `gorm:"column:kyc_status;type:varchar(20)" json:"kyc_status,omitempty"`
	LastVisitDate *time.Time `json:"last_visit_date,omitempty"`
	SalarySlab    *string    `gorm:"type:varchar(32)" json:"salary_slab,omitempty"`
	Age           *int       `json:"age,omitempty"`
}

func (Customer) TableName() string {
	return "customers"
}

// Validate checks the required system-of-record fields. Optional fields are
// allowed to be absent; loosely shaped gateway rows are rejected here rather
// than deeper in the service layer.
func (c *Customer) Validate() error {
	if strings.TrimSpace(c.CustomerID) == "" {
		return ErrMissingCustomerID
	}
	if strings.TrimSpace(c.FirstName) == "" || strings.TrimSpace(c.LastName) == "" {
		return ErrMissingName
	}
	return nil
}

// FullName returns the display name used on alert and directory cards.
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// MatchesQuery reports whether the customer matches a case-insensitive
// substring search across id, name, email, and phone. An empty query
// matches everything.
func (c *Customer) MatchesQuery(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}

	fields := []string{c.CustomerID, c.FirstName, c.LastName, c.FullName()}
	if c.Email != nil {
		fields = append(fields, *c.Email)
	}
	if c.PhoneNumber != nil {
		fields = append(fields, *c.PhoneNumber)
	}

	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
