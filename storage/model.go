package storage

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Direction of a history entry relative to the queried account.
const (
	DirectionOutgoing = "outgoing"
	DirectionIncoming = "incoming"
)

// TransactionCreate is the input for appending a transaction record.
// The store assigns the record identity.
type TransactionCreate struct {
	SenderID    string
	RecipientID string
	Amount      decimal.Decimal
	Timestamp   time.Time
}

// HistoryFilter bounds a history query. Nil bounds are open; set bounds
// are inclusive.
type HistoryFilter struct {
	Start *time.Time
	End   *time.Time
}

// HistoryMetadata carries the originating transaction details of a
// history entry.
type HistoryMetadata struct {
	OriginalSender    string `json:"original_sender"`
	OriginalRecipient string `json:"original_recipient"`
	ReferenceID       string `json:"reference_id"`
}

// HistoryEntry is one transaction record viewed from a single account's
// perspective. Amount is always positive; Direction says which way the
// funds moved relative to the queried account.
type HistoryEntry struct {
	ID        string          `json:"id"`
	Direction string          `json:"direction"`
	Amount    decimal.Decimal `json:"amount"`
	Timestamp time.Time       `json:"timestamp"`
	Metadata  HistoryMetadata `json:"metadata"`
}

// IAtomicOps are the operations available inside one atomic unit. All
// effects are staged and become visible only when the unit commits.
//
//go:generate mockery --name IAtomicOps --output mock_IAtomicOps.go
type IAtomicOps interface {
	// GetBalance returns the live balance as seen by this unit,
	// including deltas already applied inside it. Unknown accounts
	// read as zero.
	GetBalance(ctx context.Context, accountID string) (decimal.Decimal, error)
	// ApplyBalanceDelta adds a signed amount to an account's balance,
	// creating the account implicitly on first credit.
	ApplyBalanceDelta(ctx context.Context, accountID string, delta decimal.Decimal) error
	// AppendTransaction inserts a transaction record and returns its
	// store-assigned identity.
	AppendTransaction(ctx context.Context, create TransactionCreate) (string, error)
}

// ILedgerStore defines the interface for ledger persistence. Any concrete
// store (relational, in-memory, key-value) implements it; callers depend
// only on the interface, never on a concrete technology.
//
//go:generate mockery --name ILedgerStore --output mock_ILedgerStore.go
type ILedgerStore interface {
	// GetBalance returns the committed balance for an account, zero for
	// accounts with no recorded history.
	GetBalance(ctx context.Context, accountID string) (decimal.Decimal, error)
	// GetHistory returns the transaction records involving an account,
	// newest first, optionally bounded by the filter.
	GetHistory(ctx context.Context, accountID string, filter *HistoryFilter) ([]HistoryEntry, error)
	// Atomic runs fn inside one atomic unit. A nil return from fn
	// commits every staged operation; any error rolls all of them back
	// and is returned unchanged. The unit must give serializable or
	// stronger semantics for a read-check-write sequence, so two
	// concurrent units cannot both spend the same balance.
	Atomic(ctx context.Context, fn func(ctx context.Context, ops IAtomicOps) error) error
}
