package models

import "time"

// Alert is the fully resolved composition of one detection event with the
// detected customer's full context. Alerts live only in the feed store's
// memory; they are never written back to the gateway. An alert either has
// its customer present or it is never constructed.
type Alert struct {
	ID            string    `json:"id"`
	CustomerID    string    `json:"customer_id"`
	DetectionTime time.Time `json:"detection_time"`

	Customer          Customer       `json:"customer"`
	Account           *Account       `json:"account,omitempty"`
	Cards             []Card         `json:"cards,omitempty"`
	Loans             []Loan         `json:"loans,omitempty"`
	LatestInteraction *Interaction   `json:"latest_interaction,omitempty"`
	Classification    Classification `json:"classification"`

	// Local-only lifecycle flags, never persisted.
	Acknowledged bool       `json:"acknowledged"`
	SnoozedUntil *time.Time `json:"snoozed_until,omitempty"`
}

// Snoozed reports whether the alert is currently snoozed.
func (a *Alert) Snoozed(now time.Time) bool {
	return a.SnoozedUntil != nil && now.Before(*a.SnoozedUntil)
}

// MatchesQuery applies the feed's free-text filter: case-insensitive
// substring match across customer id, name, email, and phone.
func (a *Alert) MatchesQuery(query string) bool {
	return a.Customer.MatchesQuery(query)
}
