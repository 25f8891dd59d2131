package repositories

import (
	"context"

	"github.com/harinianandprojects/prioq-vision-dash/internal/models"

	"github.com/google/uuid"
)

// CustomerRepositoryInterface defines the read-only contract against the
// customers table of the remote data gateway.
type CustomerRepositoryInterface interface {
	GetByCustomerID(ctx context.Context, customerID string) (*models.Customer, error)
	GetAll(ctx context.Context) ([]models.Customer, error)
	Count(ctx context.Context) (int64, error)
}

// AccountRepositoryInterface fetches the single account surfaced on an
// alert. The tie-break rule for customers with several accounts is fixed
// at construction time.
type AccountRepositoryInterface interface {
	GetOneByCustomerID(ctx context.Context, customerID string) (*models.Account, error)
}

// CardRepositoryInterface fetches all cards for a customer; order is
// irrelevant to callers.
type CardRepositoryInterface interface {
	GetByCustomerID(ctx context.Context, customerID string) ([]models.Card, error)
}

// LoanRepositoryInterface fetches all loans for a customer; order is
// irrelevant to callers.
type LoanRepositoryInterface interface {
	GetByCustomerID(ctx context.Context, customerID string) ([]models.Loan, error)
}

// InteractionRepositoryInterface fetches the most recent interaction for
// a customer.
type InteractionRepositoryInterface interface {
	GetLatestByCustomerID(ctx context.Context, customerID string) (*models.Interaction, error)
}

// DetectionEventRepositoryInterface reads the detection_events table.
// Create exists only for the data generator; the production write path
// belongs to the external detection system.
type DetectionEventRepositoryInterface interface {
	GetRecent(ctx context.Context, limit int) ([]models.DetectionEvent, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.DetectionEvent, error)
	Create(ctx context.Context, event *models.DetectionEvent) error
}
