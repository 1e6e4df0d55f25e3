package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/payment-ledger/ledger"
	"github.com/carson-networks/payment-ledger/storage"
)

var _ storage.ILedgerStore = (*Store)(nil)

// Store is a PostgreSQL implementation of storage.ILedgerStore. It keeps
// balances in a `balances` table keyed by user and transactions in an
// append-only `transactions` table with a generated identity (see
// migrations/). Atomic units run as serializable transactions and lock
// the balance rows they read, so concurrent transfers from the same
// sender serialize on the read-check-write sequence.
type Store struct {
	db *sql.DB
}

// NewStore creates a Store on an already opened database handle.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Open connects to PostgreSQL with the given connection string and
// verifies the connection.
func Open(connStr string) (*Store, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	return NewStore(db), nil
}

// GetBalance returns the committed balance, zero for unknown accounts.
func (s *Store) GetBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	const query = `SELECT amount FROM balances WHERE user_id = $1`

	var amount decimal.Decimal
	err := s.db.QueryRowContext(ctx, query, accountID).Scan(&amount)
	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, err
	}
	return amount, nil
}

// GetHistory returns the records involving accountID, newest first,
// with inclusive time bounds when the filter sets them.
func (s *Store) GetHistory(ctx context.Context, accountID string, filter *storage.HistoryFilter) ([]storage.HistoryEntry, error) {
	query, args := buildHistoryQuery(accountID, filter)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []storage.HistoryEntry
	for rows.Next() {
		var (
			id          string
			senderID    string
			recipientID string
			amount      decimal.Decimal
			timestamp   time.Time
		)
		if err := rows.Scan(&id, &senderID, &recipientID, &amount, &timestamp); err != nil {
			return nil, err
		}
		entries = append(entries, historyEntryFromRow(accountID, id, senderID, recipientID, amount, timestamp))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// Atomic runs fn inside one serializable database transaction. A nil
// return from fn commits; any error rolls the transaction back and is
// returned unchanged. Begin and commit failures are classified as
// transaction errors with the cause preserved.
func (s *Store) Atomic(ctx context.Context, fn func(ctx context.Context, ops storage.IAtomicOps) error) error {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return ledger.NewTransactionError(err)
	}

	if err := fn(ctx, &atomicOps{tx: tx}); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return ledger.NewTransactionError(err)
	}
	return nil
}

// buildHistoryQuery assembles the history select for an account with
// optional inclusive timestamp bounds.
func buildHistoryQuery(accountID string, filter *storage.HistoryFilter) (string, []any) {
	query := `SELECT id, sender_id, recipient_id, amount, timestamp FROM transactions
	WHERE (sender_id = $1 OR recipient_id = $1)`
	args := []any{accountID}

	if filter != nil && filter.Start != nil {
		args = append(args, *filter.Start)
		query += fmt.Sprintf(" AND timestamp >= $%d", len(args))
	}
	if filter != nil && filter.End != nil {
		args = append(args, *filter.End)
		query += fmt.Sprintf(" AND timestamp <= $%d", len(args))
	}

	query += ` ORDER BY timestamp DESC, id DESC`
	return query, args
}

func historyEntryFromRow(accountID, id, senderID, recipientID string, amount decimal.Decimal, timestamp time.Time) storage.HistoryEntry {
	direction := storage.DirectionIncoming
	if senderID == accountID {
		direction = storage.DirectionOutgoing
	}

	return storage.HistoryEntry{
		ID:        id,
		Direction: direction,
		Amount:    amount,
		Timestamp: timestamp,
		Metadata: storage.HistoryMetadata{
			OriginalSender:    senderID,
			OriginalRecipient: recipientID,
			ReferenceID:       id,
		},
	}
}

// atomicOps executes contract operations against one open transaction.
type atomicOps struct {
	tx *sql.Tx
}

var _ storage.IAtomicOps = (*atomicOps)(nil)

// GetBalance reads the balance row FOR UPDATE so the row stays locked
// until the unit commits or rolls back. Accounts without a row read as
// zero; they cannot be overspent anyway.
func (o *atomicOps) GetBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	const query = `SELECT amount FROM balances WHERE user_id = $1 FOR UPDATE`

	var amount decimal.Decimal
	err := o.tx.QueryRowContext(ctx, query, accountID).Scan(&amount)
	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, err
	}
	return amount, nil
}

func (o *atomicOps) ApplyBalanceDelta(ctx context.Context, accountID string, delta decimal.Decimal) error {
	const query = `INSERT INTO balances (user_id, amount) VALUES ($1, $2)
	ON CONFLICT (user_id) DO UPDATE SET amount = balances.amount + EXCLUDED.amount`

	_, err := o.tx.ExecContext(ctx, query, accountID, delta)
	return err
}

func (o *atomicOps) AppendTransaction(ctx context.Context, create storage.TransactionCreate) (string, error) {
	const query = `INSERT INTO transactions (sender_id, recipient_id, amount, timestamp)
	VALUES ($1, $2, $3, $4) RETURNING id`

	var id string
	err := o.tx.QueryRowContext(ctx, query, create.SenderID, create.RecipientID, create.Amount, create.Timestamp).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}
