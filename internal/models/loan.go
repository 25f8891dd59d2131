package models

import "github.com/shopspring/decimal"

const (
	LoanTypeHome     = "home"
	LoanTypePersonal = "personal"
	LoanTypeVehicle  = "vehicle"
)

// Loan is a loan row owned by the gateway store. Zero-or-many per customer;
// order is irrelevant to the aggregate.
type Loan struct {
	LoanID            string          `gorm:"column:loan_id;type:varchar(64);primaryKey" json:"loan_id"`
	CustomerID        string          `gorm:"type:varchar(64);not null;index" json:"customer_id"`
	LoanType          *string         `gorm:"type:varchar(20)" json:"loan_type,omitempty"`
	OutstandingAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"outstanding_amount"`
}

func (Loan) TableName() string {
	return "loans"
}
