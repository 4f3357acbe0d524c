package ports

import (
	"context"

	"github.com/fintrack/operations-api/internal/core/domain"
)

// OperationRepository persists ledger records. Insert must be atomic: either
// the whole record becomes visible or nothing does.
type OperationRepository interface {
	Insert(ctx context.Context, op *domain.Operation) error
	// FindByUser returns all operations owned by userID, newest first.
	FindByUser(ctx context.Context, userID string) ([]domain.Operation, error)
}
