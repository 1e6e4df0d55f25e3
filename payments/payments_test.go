package payments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/payment-ledger/events"
	"github.com/carson-networks/payment-ledger/ledger"
	"github.com/carson-networks/payment-ledger/storage"
	"github.com/carson-networks/payment-ledger/storage/memory"
)

func newFundedSystem(t *testing.T, accountID string, amount string) (*System, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	err := store.Atomic(context.Background(), func(ctx context.Context, ops storage.IAtomicOps) error {
		return ops.ApplyBalanceDelta(ctx, accountID, decimal.RequireFromString(amount))
	})
	require.NoError(t, err)

	system := &System{}
	system.Initialize(store)
	return system, store
}

// -- Initialization tests --

func TestSystem_RejectsCallsBeforeInitialize(t *testing.T) {
	system := &System{}

	ok, err := system.Transfer(context.Background(), "sender", "recipient", decimal.RequireFromString("10"))
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrNotInitialized)

	_, err = system.CheckBalance(context.Background(), "sender")
	assert.ErrorIs(t, err, ErrNotInitialized)

	_, err = system.GetTransactionHistory(context.Background(), "sender", nil, nil)
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestSystem_ReinitializeReplacesStore(t *testing.T) {
	system, _ := newFundedSystem(t, "alice", "100")

	system.Initialize(memory.NewStore())

	balance, err := system.CheckBalance(context.Background(), "alice")
	require.NoError(t, err)
	assert.True(t, balance.IsZero())
}

// -- Transfer tests --

func TestTransfer_ReturnsTrueOnSuccess(t *testing.T) {
	system, _ := newFundedSystem(t, "sender", "1000")

	ok, err := system.Transfer(context.Background(), "sender", "recipient", decimal.RequireFromString("100"))

	assert.True(t, ok)
	assert.NoError(t, err)

	senderBalance, err := system.CheckBalance(context.Background(), "sender")
	require.NoError(t, err)
	assert.True(t, senderBalance.Equal(decimal.RequireFromString("900")))
}

func TestTransfer_NormalizesBusinessFailures(t *testing.T) {
	system, _ := newFundedSystem(t, "sender", "100")

	ok, err := system.Transfer(context.Background(), "sender", "recipient", decimal.RequireFromString("500"))

	assert.False(t, ok)

	var paymentErr *ledger.PaymentError
	assert.True(t, errors.As(err, &paymentErr), "one catch surface for callers")
	assert.ErrorIs(t, err, ledger.ErrInsufficientFunds, "precise kind stays reachable")
}

func TestTransfer_NormalizesUnexpectedFailures(t *testing.T) {
	store := storage.NewMockILedgerStore(t)
	storeErr := errors.New("connection refused")
	store.EXPECT().Atomic(mock.Anything, mock.Anything).Return(storeErr)

	system := &System{}
	system.Initialize(store)

	ok, err := system.Transfer(context.Background(), "sender", "recipient", decimal.RequireFromString("10"))

	assert.False(t, ok)

	var paymentErr *ledger.PaymentError
	assert.True(t, errors.As(err, &paymentErr))
	assert.ErrorIs(t, err, storeErr, "original cause stays reachable")
}

func TestTransfer_WithPublisherEmitsEvent(t *testing.T) {
	store := memory.NewStore()
	err := store.Atomic(context.Background(), func(ctx context.Context, ops storage.IAtomicOps) error {
		return ops.ApplyBalanceDelta(ctx, "sender", decimal.RequireFromString("50"))
	})
	require.NoError(t, err)

	publisher := events.NewMockIEventPublisher(t)
	publisher.EXPECT().Publish(events.TopicTransferCompleted, mock.Anything).Return(nil)

	system := &System{}
	system.Initialize(store, WithPublisher(publisher))

	ok, err := system.Transfer(context.Background(), "sender", "recipient", decimal.RequireFromString("50"))
	assert.True(t, ok)
	assert.NoError(t, err)
}

// -- History tests --

func TestGetTransactionHistory_ReturnsTaggedRecords(t *testing.T) {
	system, _ := newFundedSystem(t, "sender", "1000")

	for i := 0; i < 3; i++ {
		ok, err := system.Transfer(context.Background(), "sender", "recipient", decimal.RequireFromString("10"))
		require.True(t, ok)
		require.NoError(t, err)
	}

	history, err := system.GetTransactionHistory(context.Background(), "sender", nil, nil)
	require.NoError(t, err)
	require.Len(t, history, 3)
	for _, entry := range history {
		assert.Equal(t, storage.DirectionOutgoing, entry.Direction)
		assert.Equal(t, "sender", entry.Metadata.OriginalSender)
		assert.Equal(t, "recipient", entry.Metadata.OriginalRecipient)
		assert.Equal(t, entry.ID, entry.Metadata.ReferenceID)
	}

	incoming, err := system.GetTransactionHistory(context.Background(), "recipient", nil, nil)
	require.NoError(t, err)
	require.Len(t, incoming, 3)
	assert.Equal(t, storage.DirectionIncoming, incoming[0].Direction)
}

func TestGetTransactionHistory_ForwardsDateBounds(t *testing.T) {
	store := storage.NewMockILedgerStore(t)
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	store.EXPECT().GetHistory(mock.Anything, "alice", mock.MatchedBy(func(filter *storage.HistoryFilter) bool {
		return filter != nil &&
			filter.Start != nil && filter.Start.Equal(start) &&
			filter.End != nil && filter.End.Equal(end)
	})).Return([]storage.HistoryEntry{}, nil)

	system := &System{}
	system.Initialize(store)

	_, err := system.GetTransactionHistory(context.Background(), "alice", &start, &end)
	assert.NoError(t, err)
}

// -- Default system tests --

func TestDefaultSystem_PackageLevelSurface(t *testing.T) {
	store := memory.NewStore()
	err := store.Atomic(context.Background(), func(ctx context.Context, ops storage.IAtomicOps) error {
		return ops.ApplyBalanceDelta(ctx, "sender", decimal.RequireFromString("100"))
	})
	require.NoError(t, err)

	Initialize(store)

	ok, err := Transfer(context.Background(), "sender", "recipient", decimal.RequireFromString("40"))
	assert.True(t, ok)
	assert.NoError(t, err)

	balance, err := CheckBalance(context.Background(), "recipient")
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.RequireFromString("40")))

	history, err := GetTransactionHistory(context.Background(), "recipient", nil, nil)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}
