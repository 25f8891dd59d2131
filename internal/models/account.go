package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	AccountTypeSavings = "savings"
	AccountTypeCurrent = "current"
	AccountTypeSalary  = "salary"

	AccountStatusActive   = "active"
	AccountStatusDormant  = "dormant"
	AccountStatusInactive = "inactive"
)

// Account is a bank account row owned by the gateway store. A customer may
// hold many; the detection aggregate surfaces one, chosen by the configured
// tie-break rule.
type Account struct {
	AccountID      string          `gorm:"column:account_id;type:varchar(64);primaryKey" json:"account_id"`
	CustomerID     string          `gorm:"type:varchar(64);not null;index" json:"customer_id"`
	AccountType    *string         `gorm:"type:varchar(20)" json:"account_type,omitempty"`
	AccountStatus  *string         `gorm:"type:varchar(20)" json:"account_status,omitempty"`
	CurrentBalance decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"current_balance"`
	CreatedAt      time.Time       `gorm:"not null" json:"created_at"`
}

func (Account) TableName() string {
	return "accounts"
}
