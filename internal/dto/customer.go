package dto

import (
	"time"

	"github.com/harinianandprojects/prioq-vision-dash/internal/models"
)

// Badge colors used by the dashboard UI for status chips. Unknown statuses
// render neutral rather than erroring.
const (
	BadgeColorSuccess     = "success"
	BadgeColorWarning     = "warning"
	BadgeColorDestructive = "destructive"
	BadgeColorMuted       = "muted"
	BadgeColorNeutral     = "neutral"
)

var statusColors = map[string]string{
	models.ProfileStatusActive:   BadgeColorSuccess,
	models.ProfileStatusPending:  BadgeColorWarning,
	models.ProfileStatusInactive: BadgeColorMuted,
	models.KYCStatusVerified:     BadgeColorSuccess,
	models.KYCStatusExpired:      BadgeColorDestructive,
}

// StatusColor maps a profile or KYC status to its badge color.
func StatusColor(status string) string {
	if color, ok := statusColors[status]; ok {
		return color
	}
	return BadgeColorNeutral
}

// CustomerSummary is the customer block embedded in an alert card.
type CustomerSummary struct {
	CustomerID    string     `json:"customer_id"`
	FullName      string     `json:"full_name"`
	Email         string     `json:"email,omitempty"`
	PhoneNumber   string     `json:"phone_number,omitempty"`
	Age           *int       `json:"age,omitempty"`
	ProfileStatus string     `json:"profile_status"`
	StatusColor   string     `json:"status_color"`
	KYCStatus     string     `json:"kyc_status"`
	KYCColor      string     `json:"kyc_color"`
	LastVisitDate *time.Time `json:"last_visit_date,omitempty"`
}

// NewCustomerSummary derives the badge fields from a customer row. Missing
// statuses render as "Unknown" with a neutral badge.
func NewCustomerSummary(c *models.Customer) CustomerSummary {
	summary := CustomerSummary{
		CustomerID:    c.CustomerID,
		FullName:      c.FullName(),
		Age:           c.Age,
		ProfileStatus: "Unknown",
		StatusColor:   BadgeColorNeutral,
		KYCStatus:     "Unknown",
		KYCColor:      BadgeColorNeutral,
		LastVisitDate: c.LastVisitDate,
	}
	if c.Email != nil {
		summary.Email = *c.Email
	}
	if c.PhoneNumber != nil {
		summary.PhoneNumber = *c.PhoneNumber
	}
	if c.ProfileStatus != nil && *c.ProfileStatus != "" {
		summary.ProfileStatus = *c.ProfileStatus
		summary.StatusColor = StatusColor(*c.ProfileStatus)
	}
	if c.KYCStatus != nil && *c.KYCStatus != "" {
		summary.KYCStatus = *c.KYCStatus
		summary.KYCColor = StatusColor(*c.KYCStatus)
	}
	return summary
}

// CustomerResponse is a directory row with the derived classification tag.
type CustomerResponse struct {
	CustomerSummary
	Classification      string `json:"classification"`
	ClassificationLabel string `json:"classification_label"`
}

// NewCustomerResponse builds a directory row for one customer.
func NewCustomerResponse(c *models.Customer) CustomerResponse {
	classification := models.ClassifyCustomer(c)
	return CustomerResponse{
		CustomerSummary:     NewCustomerSummary(c),
		Classification:      string(classification),
		ClassificationLabel: classification.Label(),
	}
}

// CustomerListResponse is the customer directory payload.
type CustomerListResponse struct {
	Customers []CustomerResponse `json:"customers"`
	Total     int                `json:"total"`
	Query     string             `json:"query,omitempty"`
}

// NewCustomerListResponse converts directory rows, applying the optional
// free-text filter.
func NewCustomerListResponse(customers []models.Customer, query string) CustomerListResponse {
	responses := make([]CustomerResponse, 0, len(customers))
	for i := range customers {
		if !customers[i].MatchesQuery(query) {
			continue
		}
		responses = append(responses, NewCustomerResponse(&customers[i]))
	}
	return CustomerListResponse{
		Customers: responses,
		Total:     len(responses),
		Query:     query,
	}
}
