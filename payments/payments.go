// Package payments is the process-wide entry point of the ledger. It
// holds a configured transfer engine and forwards transfer, balance and
// history calls to it. Initialize must be called with a ledger store
// before any other operation; configuration is expected at startup only
// and is not synchronized against in-flight calls.
package payments

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/payment-ledger/events"
	"github.com/carson-networks/payment-ledger/internal/logging"
	"github.com/carson-networks/payment-ledger/ledger"
	"github.com/carson-networks/payment-ledger/storage"
)

// ErrNotInitialized is returned when the payment system is used before
// Initialize installed a ledger store.
var ErrNotInitialized = errors.New("payment system not initialized: call Initialize first")

var logger = logging.SetupLogging()

// Option configures a System during Initialize.
type Option func(*options)

type options struct {
	publisher events.IEventPublisher
}

// WithPublisher emits a transfer-completed event after each successful
// transfer.
func WithPublisher(publisher events.IEventPublisher) Option {
	return func(o *options) {
		o.publisher = publisher
	}
}

// System owns one configured transfer engine. The zero value is
// unconfigured and rejects every call with ErrNotInitialized.
type System struct {
	mu     sync.RWMutex
	engine *ledger.Engine
}

// Initialize installs the ledger store the system operates on.
// Re-calling replaces the active store.
func (s *System) Initialize(store storage.ILedgerStore, opts ...Option) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	engine := ledger.NewEngineWithPublisher(store, o.publisher)

	s.mu.Lock()
	s.engine = engine
	s.mu.Unlock()

	logger.WithField("store", fmt.Sprintf("%T", store)).Info("Payments.Initialize.Complete")
}

// Transfer moves amount from senderID to recipientID and returns true on
// success. Every failure, business rule or otherwise, surfaces as a
// *ledger.PaymentError wrapping the cause; the precise kind stays
// reachable through errors.Is.
func (s *System) Transfer(ctx context.Context, senderID, recipientID string, amount decimal.Decimal) (bool, error) {
	engine, err := s.currentEngine()
	if err != nil {
		return false, err
	}

	logData := logging.NewLogData(logger)
	logData.AddData("senderID", senderID)
	logData.AddData("recipientID", recipientID)
	logData.AddData("amount", amount.String())
	endTimer := logData.AddTiming("duration")

	err = engine.Transfer(ctx, senderID, recipientID, amount)
	endTimer()
	if err != nil {
		wrapped := ledger.NewTransferError(err)
		logData.Log().WithError(wrapped).Error("Payments.Transfer.Error")
		return false, wrapped
	}

	logData.Log().Info("Payments.Transfer.Complete")
	return true, nil
}

// CheckBalance returns the current balance for a user, zero for users
// with no recorded history.
func (s *System) CheckBalance(ctx context.Context, userID string) (decimal.Decimal, error) {
	engine, err := s.currentEngine()
	if err != nil {
		return decimal.Zero, err
	}
	return engine.GetBalance(ctx, userID)
}

// GetTransactionHistory returns the transaction records involving a
// user, newest first, optionally bounded by start and end dates
// (inclusive).
func (s *System) GetTransactionHistory(ctx context.Context, userID string, startDate, endDate *time.Time) ([]storage.HistoryEntry, error) {
	engine, err := s.currentEngine()
	if err != nil {
		return nil, err
	}

	var filter *storage.HistoryFilter
	if startDate != nil || endDate != nil {
		filter = &storage.HistoryFilter{Start: startDate, End: endDate}
	}
	return engine.GetHistory(ctx, userID, filter)
}

func (s *System) currentEngine() (*ledger.Engine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.engine == nil {
		return nil, ErrNotInitialized
	}
	return s.engine, nil
}

var defaultSystem = &System{}

// Initialize configures the default process-wide System.
func Initialize(store storage.ILedgerStore, opts ...Option) {
	defaultSystem.Initialize(store, opts...)
}

// Transfer calls Transfer on the default System.
func Transfer(ctx context.Context, senderID, recipientID string, amount decimal.Decimal) (bool, error) {
	return defaultSystem.Transfer(ctx, senderID, recipientID, amount)
}

// CheckBalance calls CheckBalance on the default System.
func CheckBalance(ctx context.Context, userID string) (decimal.Decimal, error) {
	return defaultSystem.CheckBalance(ctx, userID)
}

// GetTransactionHistory calls GetTransactionHistory on the default System.
func GetTransactionHistory(ctx context.Context, userID string, startDate, endDate *time.Time) ([]storage.HistoryEntry, error) {
	return defaultSystem.GetTransactionHistory(ctx, userID, startDate, endDate)
}
