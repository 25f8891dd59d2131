package repositories

import (
	"context"
	"fmt"

	"github.com/harinianandprojects/prioq-vision-dash/internal/models"

	"gorm.io/gorm"
)

// cardRepository implements CardRepositoryInterface
type cardRepository struct {
	db *gorm.DB
}

// NewCardRepository creates a new card repository
func NewCardRepository(db *gorm.DB) CardRepositoryInterface {
	return &cardRepository{db: db}
}

// GetByCustomerID retrieves all cards held by a customer
func (r *cardRepository) GetByCustomerID(ctx context.Context, customerID string) ([]models.Card, error) {
	var cards []models.Card
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Find(&cards).Error; err != nil {
		return nil, fmt.Errorf("failed to get cards for customer: %w", err)
	}
	return cards, nil
}
