package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/harinianandprojects/prioq-vision-dash/internal/models"
	"github.com/harinianandprojects/prioq-vision-dash/internal/repositories"
)

var (
	// ErrUnknownCustomer marks a detection event whose customer has no
	// profile row. Callers drop the event; this never reaches a user.
	ErrUnknownCustomer = errors.New("detected customer has no profile")

	// ErrGateway marks a transport or store failure on one of the gateway
	// lookups. Distinct from ErrUnknownCustomer: the data may exist, the
	// fetch failed.
	ErrGateway = errors.New("gateway lookup failed")
)

// AlertResolutionService joins one detection event against the customer,
// account, card, loan, and interaction tables to produce an alert.
type AlertResolutionService struct {
	customerRepo    repositories.CustomerRepositoryInterface
	accountRepo     repositories.AccountRepositoryInterface
	cardRepo        repositories.CardRepositoryInterface
	loanRepo        repositories.LoanRepositoryInterface
	interactionRepo repositories.InteractionRepositoryInterface
	logger          DetectionLoggerInterface
	metrics         MetricsRecorderInterface
}

// NewAlertResolutionService creates a new alert resolution service.
func NewAlertResolutionService(
	customerRepo repositories.CustomerRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	cardRepo repositories.CardRepositoryInterface,
	loanRepo repositories.LoanRepositoryInterface,
	interactionRepo repositories.InteractionRepositoryInterface,
	logger DetectionLoggerInterface,
	metrics MetricsRecorderInterface,
) AlertResolutionServiceInterface {
	return &AlertResolutionService{
		customerRepo:    customerRepo,
		accountRepo:     accountRepo,
		cardRepo:        cardRepo,
		loanRepo:        loanRepo,
		interactionRepo: interactionRepo,
		logger:          logger,
		metrics:         metrics,
	}
}

// Resolve builds the alert for one detection event. The customer lookup
// gates everything: a missing customer returns ErrUnknownCustomer and no
// alert. The four secondary lookups run concurrently; an absent account or
// interaction is a valid empty section, but a failed fetch fails the whole
// resolution with ErrGateway.
func (s *AlertResolutionService) Resolve(ctx context.Context, event models.DetectionEvent) (*models.Alert, error) {
	start := time.Now()
	s.logger.LogDetectionReceived(ctx, event.ID, event.CustomerID)

	customer, err := s.customerRepo.GetByCustomerID(ctx, event.CustomerID)
	if err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			s.logger.LogUnknownCustomerSkipped(ctx, event.ID, event.CustomerID)
			s.metrics.IncrementCounter("detection.resolution.skipped", map[string]string{"reason": "unknown_customer"})
			return nil, fmt.Errorf("%w: %s", ErrUnknownCustomer, event.CustomerID)
		}
		return nil, s.gatewayFailure(ctx, event, "customer", err)
	}

	var (
		wg          sync.WaitGroup
		account     *models.Account
		cards       []models.Card
		loans       []models.Loan
		interaction *models.Interaction

		accountErr, cardsErr, loansErr, interactionErr error
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		account, accountErr = s.accountRepo.GetOneByCustomerID(ctx, event.CustomerID)
		if errors.Is(accountErr, repositories.ErrAccountNotFound) {
			account, accountErr = nil, nil
		}
	}()
	go func() {
		defer wg.Done()
		cards, cardsErr = s.cardRepo.GetByCustomerID(ctx, event.CustomerID)
	}()
	go func() {
		defer wg.Done()
		loans, loansErr = s.loanRepo.GetByCustomerID(ctx, event.CustomerID)
	}()
	go func() {
		defer wg.Done()
		interaction, interactionErr = s.interactionRepo.GetLatestByCustomerID(ctx, event.CustomerID)
		if errors.Is(interactionErr, repositories.ErrInteractionNotFound) {
			interaction, interactionErr = nil, nil
		}
	}()
	wg.Wait()

	for _, lookup := range []struct {
		name string
		err  error
	}{
		{"account", accountErr},
		{"cards", cardsErr},
		{"loans", loansErr},
		{"interaction", interactionErr},
	} {
		if lookup.err != nil {
			return nil, s.gatewayFailure(ctx, event, lookup.name, lookup.err)
		}
	}

	alert := &models.Alert{
		ID:                event.ID.String(),
		CustomerID:        event.CustomerID,
		DetectionTime:     event.DetectionTime,
		Customer:          *customer,
		Account:           account,
		Cards:             cards,
		Loans:             loans,
		LatestInteraction: interaction,
		Classification:    models.ClassifyCustomer(customer),
	}

	durationMs := time.Since(start).Milliseconds()
	s.logger.LogAlertResolved(ctx, event.ID, event.CustomerID, alert.Classification, durationMs)
	s.metrics.IncrementCounter("detection.resolution.success", map[string]string{
		"classification": string(alert.Classification),
	})
	s.metrics.RecordProcessingTime("detection.resolution", time.Since(start))

	return alert, nil
}

func (s *AlertResolutionService) gatewayFailure(ctx context.Context, event models.DetectionEvent, lookup string, err error) error {
	s.logger.LogResolutionFailed(ctx, event.ID, event.CustomerID, err.Error())
	s.metrics.IncrementCounter("detection.resolution.failed", map[string]string{"lookup": lookup})
	return fmt.Errorf("%w: %s lookup for customer %s: %v", ErrGateway, lookup, event.CustomerID, err)
}
