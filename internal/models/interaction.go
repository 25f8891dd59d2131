package models

import "time"

const (
	InteractionChannelBranch = "branch"
	InteractionChannelPhone  = "phone"
	InteractionChannelEmail  = "email"
	InteractionChannelApp    = "app"
)

// Interaction is a customer-touchpoint row owned by the gateway store.
// Many per customer; the aggregate only cares about the most recent.
type Interaction struct {
	InteractionID   string    `gorm:"column:interaction_id;type:varchar(64);primaryKey" json:"interaction_id"`
	CustomerID      string    `gorm:"type:varchar(64);not null;index" json:"customer_id"`
	InteractionType *string   `gorm:"type:varchar(40)" json:"interaction_type,omitempty"`
	Channel         *string   `gorm:"type:varchar(20)" json:"channel,omitempty"`
	InteractionTime time.Time `gorm:"not null;index" json:"interaction_time"`
}

func (Interaction) TableName() string {
	return "interactions"
}
