package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/harinianandprojects/prioq-vision-dash/internal/dto"
	"github.com/harinianandprojects/prioq-vision-dash/internal/models"
	"github.com/harinianandprojects/prioq-vision-dash/internal/repositories"
)

// Dashboard views the page controller can show.
const (
	ViewAlerts    = "alerts"
	ViewCustomers = "customers"
	ViewOverview  = "overview"
)

// ErrInvalidView marks a view name outside the selector enum.
var ErrInvalidView = errors.New("invalid dashboard view")

var validViews = map[string]bool{
	ViewAlerts:    true,
	ViewCustomers: true,
	ViewOverview:  true,
}

// DashboardService drives the page-level state: the active view selector
// and the stats row computed over the feed snapshot.
type DashboardService struct {
	feed         AlertFeedServiceInterface
	customerRepo repositories.CustomerRepositoryInterface

	mu   sync.RWMutex
	view string
}

// NewDashboardService creates a dashboard service starting on the alerts
// view.
func NewDashboardService(feed AlertFeedServiceInterface, customerRepo repositories.CustomerRepositoryInterface) DashboardServiceInterface {
	return &DashboardService{
		feed:         feed,
		customerRepo: customerRepo,
		view:         ViewAlerts,
	}
}

// GetStats computes the stats row by a linear scan of the feed snapshot
// plus customer directory counts.
func (s *DashboardService) GetStats(ctx context.Context) (*dto.DashboardStats, error) {
	snapshot := s.feed.Snapshot()

	stats := &dto.DashboardStats{
		TotalAlerts:      len(snapshot),
		ByClassification: make(map[string]int),
	}
	for i := range snapshot {
		stats.ByClassification[string(snapshot[i].Classification)]++
		if !snapshot[i].Acknowledged {
			stats.Unacknowledged++
		}
	}

	total, err := s.customerRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: customer count: %v", ErrGateway, err)
	}
	stats.TotalCustomers = total

	customers, err := s.customerRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: customer directory: %v", ErrGateway, err)
	}
	for i := range customers {
		if models.ClassifyCustomer(&customers[i]) == models.ClassificationHNW {
			stats.HNWCustomers++
		}
	}

	return stats, nil
}

// GetView returns the active view.
func (s *DashboardService) GetView() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

// SetView switches the active view; names outside the enum are rejected.
func (s *DashboardService) SetView(view string) error {
	if !validViews[view] {
		return fmt.Errorf("%w: %s", ErrInvalidView, view)
	}
	s.mu.Lock()
	s.view = view
	s.mu.Unlock()
	return nil
}
