package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrMissingDetectionCustomer = errors.New("detection event customer_id is required")

// DetectionEvent records a customer being physically identified at a branch.
// Rows are created by the external camera/identity system; this service only
// reads them and listens for inserts.
type DetectionEvent struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerID      string    `gorm:"type:varchar(64);not null;index" json:"customer_id"`
	DetectionTime   time.Time `gorm:"not null;index" json:"detection_time"`
	BranchID        *string   `gorm:"type:varchar(64)" json:"branch_id,omitempty"`
	CameraID        *string   `gorm:"type:varchar(64)" json:"camera_id,omitempty"`
	ConfidenceScore *float64  `json:"confidence_score,omitempty"`
}

func (DetectionEvent) TableName() string {
	return "detection_events"
}

// BeforeCreate hook for DetectionEvent. Only the datagen tool inserts rows
// through this service; production inserts come from the detection system.
func (e *DetectionEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.DetectionTime.IsZero() {
		e.DetectionTime = time.Now().UTC()
	}
	return e.Validate()
}

// Validate checks the fields required to resolve the event into an alert.
func (e *DetectionEvent) Validate() error {
	if strings.TrimSpace(e.CustomerID) == "" {
		return ErrMissingDetectionCustomer
	}
	return nil
}
