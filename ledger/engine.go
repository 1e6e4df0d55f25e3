package ledger

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/payment-ledger/events"
	"github.com/carson-networks/payment-ledger/storage"
)

// Engine orchestrates transfers against a ledger store. It holds no
// mutable shared state of its own, so one instance is safe for
// concurrent use; all shared state lives behind the store's atomic unit.
type Engine struct {
	store     storage.ILedgerStore
	publisher events.IEventPublisher
}

// NewEngine creates a new Engine on top of the given ledger store.
func NewEngine(store storage.ILedgerStore) *Engine {
	return &Engine{store: store}
}

// NewEngineWithPublisher creates an Engine that additionally publishes a
// transfer-completed event after each committed transfer. A nil
// publisher disables eventing.
func NewEngineWithPublisher(store storage.ILedgerStore, publisher events.IEventPublisher) *Engine {
	return &Engine{store: store, publisher: publisher}
}

// Transfer moves amount from senderID to recipientID. Preconditions are
// checked before any store access; the balance check and both balance
// deltas run inside one atomic unit together with the transaction record
// append, so a failed transfer leaves the ledger untouched. Store
// failures propagate with their own identity.
func (e *Engine) Transfer(ctx context.Context, senderID, recipientID string, amount decimal.Decimal) error {
	if amount.Cmp(decimal.Zero) <= 0 {
		return ErrNegativeAmount
	}
	if senderID == recipientID {
		return ErrSameRecipient
	}

	var (
		transactionID string
		completedAt   time.Time
	)
	err := e.store.Atomic(ctx, func(ctx context.Context, ops storage.IAtomicOps) error {
		// The live balance must be read inside the unit. A stale
		// snapshot would let two concurrent transfers both observe a
		// sufficient balance and both commit.
		current, err := ops.GetBalance(ctx, senderID)
		if err != nil {
			return err
		}
		if current.LessThan(amount) {
			return NewInsufficientFundsError(current, amount)
		}

		if err := ops.ApplyBalanceDelta(ctx, senderID, amount.Neg()); err != nil {
			return err
		}
		if err := ops.ApplyBalanceDelta(ctx, recipientID, amount); err != nil {
			return err
		}

		completedAt = time.Now().UTC()
		transactionID, err = ops.AppendTransaction(ctx, storage.TransactionCreate{
			SenderID:    senderID,
			RecipientID: recipientID,
			Amount:      amount,
			Timestamp:   completedAt,
		})
		return err
	})
	if err != nil {
		return err
	}

	e.publishCompleted(transactionID, senderID, recipientID, amount, completedAt)
	return nil
}

// GetBalance returns the committed balance for an account, zero for
// accounts with no recorded history.
func (e *Engine) GetBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	return e.store.GetBalance(ctx, accountID)
}

// GetHistory returns the transaction records involving an account,
// newest first, optionally bounded by the filter.
func (e *Engine) GetHistory(ctx context.Context, accountID string, filter *storage.HistoryFilter) ([]storage.HistoryEntry, error) {
	return e.store.GetHistory(ctx, accountID, filter)
}

// publishCompleted emits a transfer-completed event. Publishing is best
// effort: the transfer is already committed, so a publish failure is
// logged and dropped rather than surfaced.
func (e *Engine) publishCompleted(transactionID, senderID, recipientID string, amount decimal.Decimal, occurredAt time.Time) {
	if e.publisher == nil {
		return
	}

	event := events.TransferCompleted{
		TransactionID: transactionID,
		SenderID:      senderID,
		RecipientID:   recipientID,
		Amount:        amount,
		OccurredAt:    occurredAt,
	}
	if err := e.publisher.Publish(events.TopicTransferCompleted, event); err != nil {
		logrus.WithError(err).WithField("transactionID", transactionID).Warn("Engine.Transfer.publish failed")
	}
}
