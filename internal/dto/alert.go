package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/harinianandprojects/prioq-vision-dash/internal/models"
)

// Alert Request DTOs

// SnoozeAlertRequest optionally overrides the configured snooze duration.
type SnoozeAlertRequest struct {
	DurationMinutes int `json:"duration_minutes" validate:"omitempty,min=1,max=1440"`
}

// Alert Response DTOs

// AlertResponse is a single resolved alert as shown on the dashboard feed.
type AlertResponse struct {
	ID                  string               `json:"id"`
	CustomerID          string               `json:"customer_id"`
	DetectionTime       time.Time            `json:"detection_time"`
	Classification      string               `json:"classification"`
	ClassificationLabel string               `json:"classification_label"`
	Customer            CustomerSummary      `json:"customer"`
	Account             *AccountSummary      `json:"account,omitempty"`
	Cards               []CardSummary        `json:"cards,omitempty"`
	Loans               []LoanSummary        `json:"loans,omitempty"`
	LatestInteraction   *InteractionSummary  `json:"latest_interaction,omitempty"`
	Acknowledged        bool                 `json:"acknowledged"`
	Snoozed             bool                 `json:"snoozed"`
	SnoozedUntil        *time.Time           `json:"snoozed_until,omitempty"`
}

// AccountSummary is the single surfaced account on an alert card.
type AccountSummary struct {
	AccountID      string          `json:"account_id"`
	AccountType    string          `json:"account_type"`
	AccountStatus  string          `json:"account_status"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
}

type CardSummary struct {
	CardID     string `json:"card_id"`
	CardType   string `json:"card_type"`
	CardStatus string `json:"card_status"`
}

type LoanSummary struct {
	LoanID            string          `json:"loan_id"`
	LoanType          string          `json:"loan_type"`
	OutstandingAmount decimal.Decimal `json:"outstanding_amount"`
}

type InteractionSummary struct {
	InteractionID   string    `json:"interaction_id"`
	InteractionType string    `json:"interaction_type"`
	Channel         string    `json:"channel"`
	InteractionTime time.Time `json:"interaction_time"`
}

// AlertListResponse is the feed snapshot returned by the alerts endpoint.
type AlertListResponse struct {
	Alerts  []AlertResponse `json:"alerts"`
	Total   int             `json:"total"`
	Loading bool            `json:"loading"`
	Query   string          `json:"query,omitempty"`
}

// NewAlertResponse flattens a resolved alert for the API. Absent optional
// sections are omitted; string fields inside present sections fall back to
// "Unknown" rather than empty.
func NewAlertResponse(alert *models.Alert, now time.Time) AlertResponse {
	resp := AlertResponse{
		ID:                  alert.ID,
		CustomerID:          alert.CustomerID,
		DetectionTime:       alert.DetectionTime,
		Classification:      string(alert.Classification),
		ClassificationLabel: alert.Classification.Label(),
		Customer:            NewCustomerSummary(&alert.Customer),
		Acknowledged:        alert.Acknowledged,
		Snoozed:             alert.Snoozed(now),
		SnoozedUntil:        alert.SnoozedUntil,
	}

	if alert.Account != nil {
		resp.Account = &AccountSummary{
			AccountID:      alert.Account.AccountID,
			AccountType:    stringOrUnknown(alert.Account.AccountType),
			AccountStatus:  stringOrUnknown(alert.Account.AccountStatus),
			CurrentBalance: alert.Account.CurrentBalance,
		}
	}

	for _, card := range alert.Cards {
		resp.Cards = append(resp.Cards, CardSummary{
			CardID:     card.CardID,
			CardType:   stringOrUnknown(card.CardType),
			CardStatus: stringOrUnknown(card.CardStatus),
		})
	}

	for _, loan := range alert.Loans {
		resp.Loans = append(resp.Loans, LoanSummary{
			LoanID:            loan.LoanID,
			LoanType:          stringOrUnknown(loan.LoanType),
			OutstandingAmount: loan.OutstandingAmount,
		})
	}

	if alert.LatestInteraction != nil {
		resp.LatestInteraction = &InteractionSummary{
			InteractionID:   alert.LatestInteraction.InteractionID,
			InteractionType: stringOrUnknown(alert.LatestInteraction.InteractionType),
			Channel:         stringOrUnknown(alert.LatestInteraction.Channel),
			InteractionTime: alert.LatestInteraction.InteractionTime,
		}
	}

	return resp
}

// NewAlertListResponse converts a feed snapshot into the list payload.
func NewAlertListResponse(alerts []models.Alert, loading bool, query string) AlertListResponse {
	now := time.Now().UTC()
	responses := make([]AlertResponse, 0, len(alerts))
	for i := range alerts {
		responses = append(responses, NewAlertResponse(&alerts[i], now))
	}
	return AlertListResponse{
		Alerts:  responses,
		Total:   len(responses),
		Loading: loading,
		Query:   query,
	}
}

func stringOrUnknown(s *string) string {
	if s == nil || *s == "" {
		return "Unknown"
	}
	return *s
}
