package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// OperationType is the kind of monetary operation recorded in the ledger.
type OperationType string

const (
	TypeBuy  OperationType = "BUY"
	TypeSell OperationType = "SELL"
)

// Currency codes are stored upper-cased with a bounded length.
const (
	CurrencyMinLen = 3
	CurrencyMaxLen = 8
)

// AmountScale is the number of fractional digits an amount carries at rest.
const AmountScale = 2

var (
	ErrInvalidOperationType = errors.New("operation type must be BUY or SELL")
	ErrAmountNotPositive    = errors.New("amount must be positive")
	ErrInvalidCurrency      = errors.New("currency must be 3 to 8 characters")
)

// Valid reports whether t is one of the supported operation types.
func (t OperationType) Valid() bool {
	return t == TypeBuy || t == TypeSell
}

// Operation is a single immutable ledger record owned by exactly one user.
type Operation struct {
	ID        string          `json:"id"`
	Type      OperationType   `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	UserID    string          `json:"user_id"`
	CreatedAt time.Time       `json:"created_at"`
}
