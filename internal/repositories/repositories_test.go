package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/harinianandprojects/prioq-vision-dash/internal/config"
	"github.com/harinianandprojects/prioq-vision-dash/internal/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// RepositoriesSuite exercises the gateway repositories against an
// in-memory store.
type RepositoriesSuite struct {
	suite.Suite
	db  *database.DB
	ctx context.Context
}

func (s *RepositoriesSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.ctx = context.Background()
}

func TestRepositoriesSuite(t *testing.T) {
	suite.Run(t, new(RepositoriesSuite))
}

func (s *RepositoriesSuite) TestCustomerRepository_GetByCustomerID() {
	database.CreateTestCustomer(s.T(), s.db, "CUST-001")

	repo := NewCustomerRepository(s.db.DB)

	customer, err := repo.GetByCustomerID(s.ctx, "CUST-001")
	s.NoError(err)
	s.Equal("CUST-001", customer.CustomerID)
	s.Equal("Test", customer.FirstName)

	_, err = repo.GetByCustomerID(s.ctx, "CUST-404")
	s.ErrorIs(err, ErrCustomerNotFound)
}

func (s *RepositoriesSuite) TestCustomerRepository_GetAllAndCount() {
	database.CreateTestCustomer(s.T(), s.db, "CUST-001")
	database.CreateTestCustomer(s.T(), s.db, "CUST-002")

	repo := NewCustomerRepository(s.db.DB)

	customers, err := repo.GetAll(s.ctx)
	s.NoError(err)
	s.Len(customers, 2)

	total, err := repo.Count(s.ctx)
	s.NoError(err)
	s.Equal(int64(2), total)
}

func (s *RepositoriesSuite) TestAccountRepository_PickNewest() {
	database.CreateTestCustomer(s.T(), s.db, "CUST-001")
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	database.CreateTestAccount(s.T(), s.db, "CUST-001", 1000, base)
	newest := database.CreateTestAccount(s.T(), s.db, "CUST-001", 2500, base.Add(48*time.Hour))

	repo := NewAccountRepository(s.db.DB, config.AccountPickNewest)

	account, err := repo.GetOneByCustomerID(s.ctx, "CUST-001")
	s.NoError(err)
	s.Equal(newest.AccountID, account.AccountID)
}

func (s *RepositoriesSuite) TestAccountRepository_PickOldest() {
	database.CreateTestCustomer(s.T(), s.db, "CUST-001")
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	oldest := database.CreateTestAccount(s.T(), s.db, "CUST-001", 1000, base)
	database.CreateTestAccount(s.T(), s.db, "CUST-001", 2500, base.Add(48*time.Hour))

	repo := NewAccountRepository(s.db.DB, config.AccountPickOldest)

	account, err := repo.GetOneByCustomerID(s.ctx, "CUST-001")
	s.NoError(err)
	s.Equal(oldest.AccountID, account.AccountID)
}

func (s *RepositoriesSuite) TestAccountRepository_NoAccounts() {
	database.CreateTestCustomer(s.T(), s.db, "CUST-001")

	repo := NewAccountRepository(s.db.DB, config.AccountPickNewest)

	_, err := repo.GetOneByCustomerID(s.ctx, "CUST-001")
	s.ErrorIs(err, ErrAccountNotFound)
}

func (s *RepositoriesSuite) TestCardAndLoanRepositories() {
	database.CreateTestCustomer(s.T(), s.db, "CUST-001")
	database.CreateTestCard(s.T(), s.db, "CUST-001", "debit")
	database.CreateTestCard(s.T(), s.db, "CUST-001", "credit")
	database.CreateTestLoan(s.T(), s.db, "CUST-001", 450000)

	cards, err := NewCardRepository(s.db.DB).GetByCustomerID(s.ctx, "CUST-001")
	s.NoError(err)
	s.Len(cards, 2)

	loans, err := NewLoanRepository(s.db.DB).GetByCustomerID(s.ctx, "CUST-001")
	s.NoError(err)
	s.Len(loans, 1)

	// A customer with no rows gets empty sets, not errors.
	cards, err = NewCardRepository(s.db.DB).GetByCustomerID(s.ctx, "CUST-404")
	s.NoError(err)
	s.Empty(cards)
}

func (s *RepositoriesSuite) TestInteractionRepository_LatestWins() {
	database.CreateTestCustomer(s.T(), s.db, "CUST-001")
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	database.CreateTestInteraction(s.T(), s.db, "CUST-001", base)
	database.CreateTestInteraction(s.T(), s.db, "CUST-001", base.Add(time.Hour))
	latest := database.CreateTestInteraction(s.T(), s.db, "CUST-001", base.Add(2*time.Hour))

	repo := NewInteractionRepository(s.db.DB)

	interaction, err := repo.GetLatestByCustomerID(s.ctx, "CUST-001")
	s.NoError(err)
	s.Equal(latest.InteractionID, interaction.InteractionID)

	_, err = repo.GetLatestByCustomerID(s.ctx, "CUST-404")
	s.ErrorIs(err, ErrInteractionNotFound)
}

func (s *RepositoriesSuite) TestDetectionEventRepository_GetRecent() {
	database.CreateTestCustomer(s.T(), s.db, "CUST-001")
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	// 15 events, ask for 10: only the 10 most recent come back, newest first.
	for i := 0; i < 15; i++ {
		database.CreateTestDetectionEvent(s.T(), s.db, "CUST-001", base.Add(time.Duration(i)*time.Minute))
	}

	repo := NewDetectionEventRepository(s.db.DB)

	events, err := repo.GetRecent(s.ctx, 10)
	s.NoError(err)
	s.Len(events, 10)

	s.Equal(base.Add(14*time.Minute).Unix(), events[0].DetectionTime.Unix())
	for i := 1; i < len(events); i++ {
		s.False(events[i].DetectionTime.After(events[i-1].DetectionTime),
			"events must be ordered by detection time descending")
	}
}

func (s *RepositoriesSuite) TestDetectionEventRepository_GetByID() {
	database.CreateTestCustomer(s.T(), s.db, "CUST-001")
	event := database.CreateTestDetectionEvent(s.T(), s.db, "CUST-001", time.Now().UTC())

	repo := NewDetectionEventRepository(s.db.DB)

	found, err := repo.GetByID(s.ctx, event.ID)
	s.NoError(err)
	s.Equal(event.ID, found.ID)

	_, err = repo.GetByID(s.ctx, uuid.New())
	s.ErrorIs(err, ErrDetectionEventNotFound)
}
