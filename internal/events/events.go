// Package events publishes domain events when expenses and payments are recorded.
package events

import (
	"context"
	"encoding/json"
	"time"
)

// Event types published by the services.
const (
	TypeExpenseCreated = "expense.created"
	TypePaymentCreated = "payment.created"
)

// Event is the JSON envelope of every published message.
type Event struct {
	Type       string    `json:"type"`
	ID         string    `json:"id"`
	Amount     string    `json:"amount"`
	Date       string    `json:"date"`
	PayerID    string    `json:"payer_id,omitempty"`
	DebtorID   string    `json:"debtor_id,omitempty"`
	CreditorID string    `json:"creditor_id,omitempty"`
	Category   string    `json:"category,omitempty"`
	CreatedBy  string    `json:"created_by,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ToJSON serializes the event.
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// FromJSON deserializes an event.
func FromJSON(data []byte) (*Event, error) {
	var e Event
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// Publisher delivers domain events to interested consumers.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// NopPublisher discards every event. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }

func (NopPublisher) Close() error { return nil }
