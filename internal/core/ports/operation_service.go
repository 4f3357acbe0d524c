package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fintrack/operations-api/internal/core/domain"
)

// CreateOperationInput carries the data needed to record a ledger operation.
type CreateOperationInput struct {
	Type     string
	Amount   decimal.Decimal
	Currency string
}

// OperationService defines use-case operations for the ledger.
type OperationService interface {
	Create(ctx context.Context, userID string, input CreateOperationInput) (*domain.Operation, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Operation, error)
}
