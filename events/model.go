package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// TopicTransferCompleted is the event stream for committed transfers.
const TopicTransferCompleted = "transfer_completed"

// TransferCompleted is published after a transfer commits.
type TransferCompleted struct {
	TransactionID string          `json:"transaction_id"`
	SenderID      string          `json:"sender_id"`
	RecipientID   string          `json:"recipient_id"`
	Amount        decimal.Decimal `json:"amount"`
	OccurredAt    time.Time       `json:"occurred_at"`
}

// IEventPublisher defines the interface for publishing ledger events.
//
//go:generate mockery --name IEventPublisher --output mock_IEventPublisher.go
type IEventPublisher interface {
	Publish(topic string, event any) error
}
