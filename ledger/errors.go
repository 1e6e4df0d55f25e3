package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	kindNegativeAmount    = "negative_amount"
	kindSameRecipient     = "same_recipient"
	kindInsufficientFunds = "insufficient_funds"
	kindUserNotFound      = "user_not_found"
	kindTransaction       = "transaction_failed"
	kindTransferFailed    = "transfer_failed"
)

// PaymentError is the root of the payment error taxonomy. Every business
// rule violation raised by this package is a *PaymentError, so callers
// can match the whole family with errors.As and a specific kind with
// errors.Is against one of the exported sentinels.
type PaymentError struct {
	kind  string
	msg   string
	cause error
}

var (
	// ErrNegativeAmount means the transfer amount was not strictly positive.
	ErrNegativeAmount = &PaymentError{kind: kindNegativeAmount, msg: "transfer amount must be positive"}

	// ErrSameRecipient means sender and recipient were the same account.
	ErrSameRecipient = &PaymentError{kind: kindSameRecipient, msg: "cannot transfer to self"}

	// ErrInsufficientFunds means the sender balance was below the
	// requested amount at commit time.
	ErrInsufficientFunds = &PaymentError{kind: kindInsufficientFunds, msg: "insufficient funds"}

	// ErrUserNotFound is reserved for stores that validate account
	// existence. The engine itself never raises it.
	ErrUserNotFound = &PaymentError{kind: kindUserNotFound, msg: "user not found"}

	// ErrTransaction is reserved for store-level transactional failures,
	// such as a commit that cannot complete.
	ErrTransaction = &PaymentError{kind: kindTransaction, msg: "transaction failed"}
)

func (e *PaymentError) Error() string {
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

func (e *PaymentError) Unwrap() error {
	return e.cause
}

// Is matches on kind, so a detailed or wrapped copy still compares equal
// to its sentinel under errors.Is.
func (e *PaymentError) Is(target error) bool {
	t, ok := target.(*PaymentError)
	return ok && t.kind == e.kind
}

// NewInsufficientFundsError reports the balance shortfall observed inside
// the atomic unit.
func NewInsufficientFundsError(available, required decimal.Decimal) *PaymentError {
	return &PaymentError{
		kind: kindInsufficientFunds,
		msg:  fmt.Sprintf("insufficient funds: %s available, %s required", available, required),
	}
}

// NewTransactionError classifies a store-level transactional failure.
// The cause stays reachable through errors.Unwrap.
func NewTransactionError(cause error) *PaymentError {
	return &PaymentError{kind: kindTransaction, msg: "transaction failed", cause: cause}
}

// NewTransferError normalizes any failure from a transfer attempt into a
// single caller-facing payment error. External callers get one catch
// surface; the original cause stays reachable for errors.Is.
func NewTransferError(cause error) *PaymentError {
	return &PaymentError{kind: kindTransferFailed, msg: "transfer failed", cause: cause}
}
