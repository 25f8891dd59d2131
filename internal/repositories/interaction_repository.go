package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/harinianandprojects/prioq-vision-dash/internal/models"

	"gorm.io/gorm"
)

var ErrInteractionNotFound = errors.New("interaction not found")

// interactionRepository implements InteractionRepositoryInterface
type interactionRepository struct {
	db *gorm.DB
}

// NewInteractionRepository creates a new interaction repository
func NewInteractionRepository(db *gorm.DB) InteractionRepositoryInterface {
	return &interactionRepository{db: db}
}

// GetLatestByCustomerID retrieves the customer's most recent interaction
// by interaction time, or ErrInteractionNotFound when there is none.
func (r *interactionRepository) GetLatestByCustomerID(ctx context.Context, customerID string) (*models.Interaction, error) {
	var interaction models.Interaction
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("interaction_time DESC").
		First(&interaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInteractionNotFound
		}
		return nil, fmt.Errorf("failed to get latest interaction: %w", err)
	}
	return &interaction, nil
}
