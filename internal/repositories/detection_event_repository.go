package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/harinianandprojects/prioq-vision-dash/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrDetectionEventNotFound = errors.New("detection event not found")

// detectionEventRepository implements DetectionEventRepositoryInterface
type detectionEventRepository struct {
	db *gorm.DB
}

// NewDetectionEventRepository creates a new detection event repository
func NewDetectionEventRepository(db *gorm.DB) DetectionEventRepositoryInterface {
	return &detectionEventRepository{db: db}
}

// GetRecent retrieves the most recent detection events by detection time
// descending, bounded by limit.
func (r *detectionEventRepository) GetRecent(ctx context.Context, limit int) ([]models.DetectionEvent, error) {
	var events []models.DetectionEvent
	if err := r.db.WithContext(ctx).
		Order("detection_time DESC").
		Limit(limit).
		Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to get recent detection events: %w", err)
	}
	return events, nil
}

// GetByID retrieves a single detection event
func (r *detectionEventRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.DetectionEvent, error) {
	var event models.DetectionEvent
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDetectionEventNotFound
		}
		return nil, fmt.Errorf("failed to get detection event: %w", err)
	}
	return &event, nil
}

// Create inserts a detection event. Used by the data generator only.
func (r *detectionEventRepository) Create(ctx context.Context, event *models.DetectionEvent) error {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to create detection event: %w", err)
	}
	return nil
}
