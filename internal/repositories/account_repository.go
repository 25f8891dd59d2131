package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/harinianandprojects/prioq-vision-dash/internal/config"
	"github.com/harinianandprojects/prioq-vision-dash/internal/models"

	"gorm.io/gorm"
)

var ErrAccountNotFound = errors.New("account not found")

// accountRepository implements AccountRepositoryInterface
type accountRepository struct {
	db   *gorm.DB
	pick string
}

// NewAccountRepository creates a new account repository. pick decides which
// account an alert surfaces when a customer holds more than one
// (config.AccountPickNewest or config.AccountPickOldest).
func NewAccountRepository(db *gorm.DB, pick string) AccountRepositoryInterface {
	return &accountRepository{db: db, pick: pick}
}

// GetOneByCustomerID retrieves the customer's account selected by the
// configured tie-break rule, or ErrAccountNotFound when the customer
// holds none.
func (r *accountRepository) GetOneByCustomerID(ctx context.Context, customerID string) (*models.Account, error) {
	order := "created_at DESC"
	if r.pick == config.AccountPickOldest {
		order = "created_at ASC"
	}

	var account models.Account
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order(order).
		First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account for customer: %w", err)
	}
	return &account, nil
}
