package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/harinianandprojects/prioq-vision-dash/internal/config"
	"github.com/harinianandprojects/prioq-vision-dash/internal/database"
	"github.com/harinianandprojects/prioq-vision-dash/internal/models"
)

// datagen fills the gateway tables with plausible branch data: customer
// profiles with accounts, cards, loans and interaction history, plus a
// tail of recent detection events to put alerts on the dashboard.
func main() {
	var (
		customers  = flag.Int("customers", 50, "number of customers to generate")
		detections = flag.Int("detections", 15, "number of recent detection events to generate")
		seed       = flag.Int64("seed", 0, "random seed, 0 uses current time")
	)
	flag.Parse()

	_ = godotenv.Load()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	gofakeit.Seed(*seed)
	rng := rand.New(rand.NewSource(*seed))

	cfg := config.Load()
	db, err := database.New(&cfg.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.AutoMigrate(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to migrate schema: %v\n", err)
		os.Exit(1)
	}

	generated, err := generate(db, rng, *customers, *detections)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated %d customers and %d detection events (seed %d)\n",
		generated, *detections, *seed)
}

func generate(db *database.DB, rng *rand.Rand, customerCount, detectionCount int) (int, error) {
	customerIDs := make([]string, 0, customerCount)

	for i := 0; i < customerCount; i++ {
		customer := makeCustomer(rng, i)
		if err := db.Create(customer).Error; err != nil {
			return i, fmt.Errorf("customer %s: %w", customer.CustomerID, err)
		}
		customerIDs = append(customerIDs, customer.CustomerID)

		for _, account := range makeAccounts(rng, customer.CustomerID) {
			if err := db.Create(&account).Error; err != nil {
				return i, fmt.Errorf("account for %s: %w", customer.CustomerID, err)
			}
		}
		for _, card := range makeCards(rng, customer.CustomerID) {
			if err := db.Create(&card).Error; err != nil {
				return i, fmt.Errorf("card for %s: %w", customer.CustomerID, err)
			}
		}
		for _, loan := range makeLoans(rng, customer.CustomerID) {
			if err := db.Create(&loan).Error; err != nil {
				return i, fmt.Errorf("loan for %s: %w", customer.CustomerID, err)
			}
		}
		for _, interaction := range makeInteractions(rng, customer.CustomerID) {
			if err := db.Create(&interaction).Error; err != nil {
				return i, fmt.Errorf("interaction for %s: %w", customer.CustomerID, err)
			}
		}
	}

	for i := 0; i < detectionCount; i++ {
		event := makeDetectionEvent(rng, customerIDs[rng.Intn(len(customerIDs))], i)
		if err := db.Create(event).Error; err != nil {
			return customerCount, fmt.Errorf("detection event: %w", err)
		}
	}

	return customerCount, nil
}

var salarySlabs = []string{
	"200000", "400000", "600000", "800000",
	"1200000", "1500000", "2500000", "5000000",
}

func makeCustomer(rng *rand.Rand, n int) *models.Customer {
	email := gofakeit.Email()
	phone := gofakeit.Phone()
	dob := gofakeit.DateRange(
		time.Date(1940, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2000, 12, 31, 0, 0, 0, 0, time.UTC),
	)
	age := int(time.Since(dob).Hours() / 24 / 365)
	slab := salarySlabs[rng.Intn(len(salarySlabs))]
	profileStatus := pick(rng, models.ProfileStatusActive, models.ProfileStatusActive, models.ProfileStatusPending, models.ProfileStatusInactive)
	kycStatus := pick(rng, models.KYCStatusVerified, models.KYCStatusVerified, models.KYCStatusPending, models.KYCStatusExpired)
	lastVisit := gofakeit.DateRange(time.Now().AddDate(0, -6, 0), time.Now())

	return &models.Customer{
		CustomerID:    fmt.Sprintf("CUST%04d", n+1),
		FirstName:     gofakeit.FirstName(),
		LastName:      gofakeit.LastName(),
		Email:         &email,
		PhoneNumber:   &phone,
		DateOfBirth:   &dob,
		ProfileStatus: &profileStatus,
		KYCStatus:     &kycStatus,
		LastVisitDate: &lastVisit,
		SalarySlab:    &slab,
		Age:           &age,
	}
}

func makeAccounts(rng *rand.Rand, customerID string) []models.Account {
	accounts := make([]models.Account, 0, 2)
	for i := 0; i < 1+rng.Intn(2); i++ {
		accountType := pick(rng, models.AccountTypeSavings, models.AccountTypeCurrent, models.AccountTypeSalary)
		accountStatus := pick(rng, models.AccountStatusActive, models.AccountStatusActive, models.AccountStatusDormant)
		accounts = append(accounts, models.Account{
			AccountID:      fmt.Sprintf("ACC-%s", uuid.New().String()[:8]),
			CustomerID:     customerID,
			AccountType:    &accountType,
			AccountStatus:  &accountStatus,
			CurrentBalance: decimal.NewFromFloat(gofakeit.Price(1000, 5_000_000)),
			CreatedAt:      gofakeit.DateRange(time.Now().AddDate(-10, 0, 0), time.Now()),
		})
	}
	return accounts
}

func makeCards(rng *rand.Rand, customerID string) []models.Card {
	cards := make([]models.Card, 0, 2)
	for i := 0; i < rng.Intn(3); i++ {
		cardType := pick(rng, models.CardTypeDebit, models.CardTypeDebit, models.CardTypeCredit)
		cardStatus := pick(rng, models.CardStatusActive, models.CardStatusActive, models.CardStatusBlocked, models.CardStatusExpired)
		number := gofakeit.CreditCardNumber(nil)
		expiry := gofakeit.DateRange(time.Now(), time.Now().AddDate(5, 0, 0))
		cards = append(cards, models.Card{
			CardID:     fmt.Sprintf("CARD-%s", uuid.New().String()[:8]),
			CustomerID: customerID,
			CardType:   &cardType,
			CardStatus: &cardStatus,
			CardNumber: &number,
			ExpiryDate: &expiry,
		})
	}
	return cards
}

func makeLoans(rng *rand.Rand, customerID string) []models.Loan {
	loans := make([]models.Loan, 0, 1)
	for i := 0; i < rng.Intn(2); i++ {
		loanType := pick(rng, models.LoanTypeHome, models.LoanTypePersonal, models.LoanTypeVehicle)
		loans = append(loans, models.Loan{
			LoanID:            fmt.Sprintf("LOAN-%s", uuid.New().String()[:8]),
			CustomerID:        customerID,
			LoanType:          &loanType,
			OutstandingAmount: decimal.NewFromFloat(gofakeit.Price(50_000, 10_000_000)),
		})
	}
	return loans
}

func makeInteractions(rng *rand.Rand, customerID string) []models.Interaction {
	interactions := make([]models.Interaction, 0, 3)
	for i := 0; i < 1+rng.Intn(3); i++ {
		channel := pick(rng, models.InteractionChannelBranch, models.InteractionChannelPhone, models.InteractionChannelEmail, models.InteractionChannelApp)
		interactionType := pick(rng, "enquiry", "complaint", "kyc_update", "loan_followup")
		interactions = append(interactions, models.Interaction{
			InteractionID:   fmt.Sprintf("INT-%s", uuid.New().String()[:8]),
			CustomerID:      customerID,
			InteractionType: &interactionType,
			Channel:         &channel,
			InteractionTime: gofakeit.DateRange(time.Now().AddDate(-1, 0, 0), time.Now()),
		})
	}
	return interactions
}

func makeDetectionEvent(rng *rand.Rand, customerID string, n int) *models.DetectionEvent {
	branchID := fmt.Sprintf("BR%02d", 1+rng.Intn(5))
	cameraID := fmt.Sprintf("CAM%02d", 1+rng.Intn(8))
	confidence := 0.70 + rng.Float64()*0.29
	return &models.DetectionEvent{
		ID:              uuid.New(),
		CustomerID:      customerID,
		DetectionTime:   time.Now().UTC().Add(-time.Duration(n) * time.Minute),
		BranchID:        &branchID,
		CameraID:        &cameraID,
		ConfidenceScore: &confidence,
	}
}

func pick(rng *rand.Rand, options ...string) string {
	return options[rng.Intn(len(options))]
}
