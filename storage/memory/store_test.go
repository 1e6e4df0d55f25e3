package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/payment-ledger/storage"
)

func applyDelta(t *testing.T, store *Store, accountID string, amount string) {
	t.Helper()
	err := store.Atomic(context.Background(), func(ctx context.Context, ops storage.IAtomicOps) error {
		return ops.ApplyBalanceDelta(ctx, accountID, decimal.RequireFromString(amount))
	})
	require.NoError(t, err)
}

func appendRecord(t *testing.T, store *Store, senderID, recipientID, amount string, timestamp time.Time) string {
	t.Helper()
	var id string
	err := store.Atomic(context.Background(), func(ctx context.Context, ops storage.IAtomicOps) error {
		var err error
		id, err = ops.AppendTransaction(ctx, storage.TransactionCreate{
			SenderID:    senderID,
			RecipientID: recipientID,
			Amount:      decimal.RequireFromString(amount),
			Timestamp:   timestamp,
		})
		return err
	})
	require.NoError(t, err)
	return id
}

// -- Balance tests --

func TestGetBalance_UnknownAccountIsZero(t *testing.T) {
	store := NewStore()

	balance, err := store.GetBalance(context.Background(), "nobody")

	assert.NoError(t, err)
	assert.True(t, balance.IsZero())
}

func TestApplyBalanceDelta_CreatesAccountOnFirstCredit(t *testing.T) {
	store := NewStore()

	applyDelta(t, store, "alice", "25.50")

	balance, err := store.GetBalance(context.Background(), "alice")
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.RequireFromString("25.50")))
}

func TestApplyBalanceDelta_IsAdditive(t *testing.T) {
	store := NewStore()

	applyDelta(t, store, "alice", "100")
	applyDelta(t, store, "alice", "-40")

	balance, err := store.GetBalance(context.Background(), "alice")
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.RequireFromString("60")))
}

// -- Atomic unit tests --

func TestAtomic_RollbackDiscardsAllStagedWrites(t *testing.T) {
	store := NewStore()
	applyDelta(t, store, "alice", "100")
	unitErr := errors.New("abort")

	err := store.Atomic(context.Background(), func(ctx context.Context, ops storage.IAtomicOps) error {
		require.NoError(t, ops.ApplyBalanceDelta(ctx, "alice", decimal.RequireFromString("-100")))
		require.NoError(t, ops.ApplyBalanceDelta(ctx, "bob", decimal.RequireFromString("100")))
		_, err := ops.AppendTransaction(ctx, storage.TransactionCreate{
			SenderID:    "alice",
			RecipientID: "bob",
			Amount:      decimal.RequireFromString("100"),
			Timestamp:   time.Now().UTC(),
		})
		require.NoError(t, err)
		return unitErr
	})

	assert.Equal(t, unitErr, err)

	aliceBalance, err := store.GetBalance(context.Background(), "alice")
	require.NoError(t, err)
	assert.True(t, aliceBalance.Equal(decimal.RequireFromString("100")))

	bobBalance, err := store.GetBalance(context.Background(), "bob")
	require.NoError(t, err)
	assert.True(t, bobBalance.IsZero())

	history, err := store.GetHistory(context.Background(), "alice", nil)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestAtomic_UnitSeesItsOwnStagedWrites(t *testing.T) {
	store := NewStore()
	applyDelta(t, store, "alice", "100")

	err := store.Atomic(context.Background(), func(ctx context.Context, ops storage.IAtomicOps) error {
		require.NoError(t, ops.ApplyBalanceDelta(ctx, "alice", decimal.RequireFromString("-30")))

		staged, err := ops.GetBalance(ctx, "alice")
		require.NoError(t, err)
		assert.True(t, staged.Equal(decimal.RequireFromString("70")))
		return nil
	})

	assert.NoError(t, err)
}

// -- History tests --

func TestGetHistory_DirectionAndMetadata(t *testing.T) {
	store := NewStore()
	timestamp := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	id := appendRecord(t, store, "alice", "bob", "42.50", timestamp)

	outgoing, err := store.GetHistory(context.Background(), "alice", nil)
	require.NoError(t, err)
	require.Len(t, outgoing, 1)
	assert.Equal(t, storage.DirectionOutgoing, outgoing[0].Direction)
	assert.Equal(t, id, outgoing[0].ID)
	assert.True(t, outgoing[0].Amount.Equal(decimal.RequireFromString("42.50")))
	assert.Equal(t, timestamp, outgoing[0].Timestamp)
	assert.Equal(t, storage.HistoryMetadata{
		OriginalSender:    "alice",
		OriginalRecipient: "bob",
		ReferenceID:       id,
	}, outgoing[0].Metadata)

	incoming, err := store.GetHistory(context.Background(), "bob", nil)
	require.NoError(t, err)
	require.Len(t, incoming, 1)
	assert.Equal(t, storage.DirectionIncoming, incoming[0].Direction)
}

func TestGetHistory_NewestFirst(t *testing.T) {
	store := NewStore()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	appendRecord(t, store, "alice", "bob", "1", base)
	appendRecord(t, store, "alice", "bob", "2", base.Add(time.Minute))
	appendRecord(t, store, "bob", "alice", "3", base.Add(2*time.Minute))

	history, err := store.GetHistory(context.Background(), "alice", nil)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.True(t, history[0].Amount.Equal(decimal.RequireFromString("3")))
	assert.True(t, history[1].Amount.Equal(decimal.RequireFromString("2")))
	assert.True(t, history[2].Amount.Equal(decimal.RequireFromString("1")))
}

func TestGetHistory_OrdersByTimestampNotInsertion(t *testing.T) {
	store := NewStore()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	// Appended out of timestamp order; ordering must follow timestamps.
	appendRecord(t, store, "alice", "bob", "2", base.Add(time.Hour))
	appendRecord(t, store, "alice", "bob", "1", base)
	appendRecord(t, store, "bob", "alice", "3", base.Add(2*time.Hour))

	history, err := store.GetHistory(context.Background(), "alice", nil)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.True(t, history[0].Amount.Equal(decimal.RequireFromString("3")))
	assert.True(t, history[1].Amount.Equal(decimal.RequireFromString("2")))
	assert.True(t, history[2].Amount.Equal(decimal.RequireFromString("1")))
	assert.True(t, history[0].Timestamp.After(history[1].Timestamp))
	assert.True(t, history[1].Timestamp.After(history[2].Timestamp))
}

func TestGetHistory_InclusiveTimeBounds(t *testing.T) {
	store := NewStore()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	appendRecord(t, store, "alice", "bob", "1", base)
	appendRecord(t, store, "alice", "bob", "2", base.Add(time.Hour))
	appendRecord(t, store, "alice", "bob", "3", base.Add(2*time.Hour))

	start := base.Add(time.Hour)
	end := base.Add(2 * time.Hour)
	history, err := store.GetHistory(context.Background(), "alice", &storage.HistoryFilter{Start: &start, End: &end})
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.True(t, history[0].Amount.Equal(decimal.RequireFromString("3")), "end bound is inclusive")
	assert.True(t, history[1].Amount.Equal(decimal.RequireFromString("2")), "start bound is inclusive")
}

func TestGetHistory_OnlyInvolvedAccounts(t *testing.T) {
	store := NewStore()
	timestamp := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	appendRecord(t, store, "alice", "bob", "5", timestamp)

	history, err := store.GetHistory(context.Background(), "carol", nil)
	require.NoError(t, err)
	assert.Empty(t, history)
}
