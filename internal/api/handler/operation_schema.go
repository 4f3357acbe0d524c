package handler

import (
	"time"

	"github.com/shopspring/decimal"
)

type createOperationRequest struct {
	Type     string  `json:"type"     validate:"required,oneof=BUY SELL"`
	Amount   float64 `json:"amount"   validate:"required,gt=0"`
	Currency string  `json:"currency" validate:"required,min=3,max=8"`
}

// operationResponse is the wire representation of a ledger record. Amount
// serialises as a quoted 2-decimal string, never a binary float.
type operationResponse struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	UserID    string          `json:"user_id"`
	CreatedAt time.Time       `json:"created_at"`
}
