package database

import (
	"testing"
	"time"

	"github.com/harinianandprojects/prioq-vision-dash/internal/config"
	"github.com/harinianandprojects/prioq-vision-dash/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestCustomer(t *testing.T, db *DB, customerID string) *models.Customer {
	t.Helper()

	email := customerID + "@example.com"
	phone := "+91-99937-00042"
	profile := models.ProfileStatusActive
	kyc := models.KYCStatusVerified

	customer := &models.Customer{
		CustomerID:    customerID,
		FirstName:     "Test",
		LastName:      "Customer",
		Email:         &email,
		PhoneNumber:   &phone,
		ProfileStatus: &profile,
		KYCStatus:     &kyc,
	}

	if err := db.Create(customer).Error; err != nil {
		t.Fatalf("failed to create test customer: %v", err)
	}

	return customer
}

func CreateTestAccount(t *testing.T, db *DB, customerID string, balance float64, createdAt time.Time) *models.Account {
	t.Helper()

	accountType := models.AccountTypeSavings
	accountStatus := models.AccountStatusActive

	account := &models.Account{
		AccountID:      uuid.NewString(),
		CustomerID:     customerID,
		AccountType:    &accountType,
		AccountStatus:  &accountStatus,
		CurrentBalance: decimal.NewFromFloat(balance),
		CreatedAt:      createdAt,
	}

	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}

	return account
}

func CreateTestCard(t *testing.T, db *DB, customerID, cardType string) *models.Card {
	t.Helper()

	cardStatus := models.CardStatusActive

	card := &models.Card{
		CardID:     uuid.NewString(),
		CustomerID: customerID,
		CardType:   &cardType,
		CardStatus: &cardStatus,
	}

	if err := db.Create(card).Error; err != nil {
		t.Fatalf("failed to create test card: %v", err)
	}

	return card
}

func CreateTestLoan(t *testing.T, db *DB, customerID string, outstanding float64) *models.Loan {
	t.Helper()

	loanType := models.LoanTypeHome

	loan := &models.Loan{
		LoanID:            uuid.NewString(),
		CustomerID:        customerID,
		LoanType:          &loanType,
		OutstandingAmount: decimal.NewFromFloat(outstanding),
	}

	if err := db.Create(loan).Error; err != nil {
		t.Fatalf("failed to create test loan: %v", err)
	}

	return loan
}

func CreateTestInteraction(t *testing.T, db *DB, customerID string, at time.Time) *models.Interaction {
	t.Helper()

	interactionType := "complaint"
	channel := models.InteractionChannelBranch

	interaction := &models.Interaction{
		InteractionID:   uuid.NewString(),
		CustomerID:      customerID,
		InteractionType: &interactionType,
		Channel:         &channel,
		InteractionTime: at,
	}

	if err := db.Create(interaction).Error; err != nil {
		t.Fatalf("failed to create test interaction: %v", err)
	}

	return interaction
}

func CreateTestDetectionEvent(t *testing.T, db *DB, customerID string, detectedAt time.Time) *models.DetectionEvent {
	t.Helper()

	event := &models.DetectionEvent{
		ID:            uuid.New(),
		CustomerID:    customerID,
		DetectionTime: detectedAt,
	}

	if err := db.Create(event).Error; err != nil {
		t.Fatalf("failed to create test detection event: %v", err)
	}

	return event
}
