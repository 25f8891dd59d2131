package repositories

import (
	"context"
	"fmt"

	"github.com/harinianandprojects/prioq-vision-dash/internal/models"

	"gorm.io/gorm"
)

// loanRepository implements LoanRepositoryInterface
type loanRepository struct {
	db *gorm.DB
}

// NewLoanRepository creates a new loan repository
func NewLoanRepository(db *gorm.DB) LoanRepositoryInterface {
	return &loanRepository{db: db}
}

// GetByCustomerID retrieves all loans held by a customer
func (r *loanRepository) GetByCustomerID(ctx context.Context, customerID string) ([]models.Loan, error) {
	var loans []models.Loan
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Find(&loans).Error; err != nil {
		return nil, fmt.Errorf("failed to get loans for customer: %w", err)
	}
	return loans, nil
}
