package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/payment-ledger/storage"
)

var _ storage.ILedgerStore = (*Store)(nil)

// record is an immutable transaction fact. Records are only ever
// appended, inside a committed atomic unit.
type record struct {
	id          string
	senderID    string
	recipientID string
	amount      decimal.Decimal
	timestamp   time.Time
}

// Store is an in-memory implementation of storage.ILedgerStore. All
// shared state sits behind one mutex, and Atomic holds that mutex for
// the whole unit, so units are fully serialized. That satisfies the
// contract's serializable-or-stronger requirement for read-check-write.
type Store struct {
	mu       sync.Mutex
	balances map[string]decimal.Decimal
	records  []record
	// byAccount indexes positions in records by involved account, so a
	// history query only visits the records that can match.
	byAccount map[string][]int
}

// NewStore creates an empty in-memory ledger store.
func NewStore() *Store {
	return &Store{
		balances:  make(map[string]decimal.Decimal),
		byAccount: make(map[string][]int),
	}
}

// GetBalance returns the committed balance, zero for unknown accounts.
func (s *Store) GetBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	balance, ok := s.balances[accountID]
	if !ok {
		return decimal.Zero, nil
	}
	return balance, nil
}

// GetHistory returns the records involving accountID, newest first,
// with inclusive time bounds when the filter sets them.
func (s *Store) GetHistory(ctx context.Context, accountID string, filter *storage.HistoryFilter) ([]storage.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []record
	for _, position := range s.byAccount[accountID] {
		rec := s.records[position]
		if filter != nil {
			if filter.Start != nil && rec.timestamp.Before(*filter.Start) {
				continue
			}
			if filter.End != nil && rec.timestamp.After(*filter.End) {
				continue
			}
		}
		matched = append(matched, rec)
	}

	// Records may be appended with arbitrary timestamps, so insertion
	// order is not newest-first. Sort by timestamp, id breaking ties so
	// equal timestamps order deterministically.
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].timestamp.Equal(matched[j].timestamp) {
			return matched[i].timestamp.After(matched[j].timestamp)
		}
		return matched[i].id > matched[j].id
	})

	var entries []storage.HistoryEntry
	for _, rec := range matched {
		entries = append(entries, rec.toHistoryEntry(accountID))
	}
	return entries, nil
}

// Atomic runs fn with the store mutex held. Writes are staged on the
// atomicOps and merged into the store only when fn returns nil; any
// error discards the staged state, leaving the store untouched.
func (s *Store) Atomic(ctx context.Context, fn func(ctx context.Context, ops storage.IAtomicOps) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ops := &atomicOps{
		store:    s,
		balances: make(map[string]decimal.Decimal),
	}
	if err := fn(ctx, ops); err != nil {
		return err
	}

	for accountID, balance := range ops.balances {
		s.balances[accountID] = balance
	}
	for _, rec := range ops.appended {
		position := len(s.records)
		s.records = append(s.records, rec)
		s.byAccount[rec.senderID] = append(s.byAccount[rec.senderID], position)
		if rec.recipientID != rec.senderID {
			s.byAccount[rec.recipientID] = append(s.byAccount[rec.recipientID], position)
		}
	}
	return nil
}

func (r record) toHistoryEntry(accountID string) storage.HistoryEntry {
	direction := storage.DirectionIncoming
	if r.senderID == accountID {
		direction = storage.DirectionOutgoing
	}

	return storage.HistoryEntry{
		ID:        r.id,
		Direction: direction,
		Amount:    r.amount,
		Timestamp: r.timestamp,
		Metadata: storage.HistoryMetadata{
			OriginalSender:    r.senderID,
			OriginalRecipient: r.recipientID,
			ReferenceID:       r.id,
		},
	}
}

// atomicOps stages writes for one unit. It is only ever used while the
// store mutex is held, so it reads the base maps directly.
type atomicOps struct {
	store    *Store
	balances map[string]decimal.Decimal
	appended []record
}

var _ storage.IAtomicOps = (*atomicOps)(nil)

func (o *atomicOps) GetBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	if balance, ok := o.balances[accountID]; ok {
		return balance, nil
	}
	if balance, ok := o.store.balances[accountID]; ok {
		return balance, nil
	}
	return decimal.Zero, nil
}

func (o *atomicOps) ApplyBalanceDelta(ctx context.Context, accountID string, delta decimal.Decimal) error {
	current, err := o.GetBalance(ctx, accountID)
	if err != nil {
		return err
	}
	o.balances[accountID] = current.Add(delta)
	return nil
}

func (o *atomicOps) AppendTransaction(ctx context.Context, create storage.TransactionCreate) (string, error) {
	id := uuid.Must(uuid.NewV4()).String()
	o.appended = append(o.appended, record{
		id:          id,
		senderID:    create.SenderID,
		recipientID: create.RecipientID,
		amount:      create.Amount,
		timestamp:   create.Timestamp,
	})
	return id, nil
}
