package models

import "time"

const (
	CardTypeDebit  = "debit"
	CardTypeCredit = "credit"

	CardStatusActive  = "active"
	CardStatusBlocked = "blocked"
	CardStatusExpired = "expired"
)

// Card is a payment card row owned by the gateway store. Zero-or-many
// per customer; order is irrelevant to the aggregate.
type Card struct {
	CardID     string     `gorm:"column:card_id;type:varchar(64);primaryKey" json:"card_id"`
	CustomerID string     `gorm:"type:varchar(64);not null;index" json:"customer_id"`
	CardType   *string    `gorm:"type:varchar(20)" json:"card_type,omitempty"`
	CardStatus *string    `gorm:"type:varchar(20)" json:"card_status,omitempty"`
	CardNumber *string    `gorm:"type:varchar(32)" json:"card_number,omitempty"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
}

func (Card) TableName() string {
	return "cards"
}
