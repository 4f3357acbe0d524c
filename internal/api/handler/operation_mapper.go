package handler

import "github.com/fintrack/operations-api/internal/core/domain"

func toOperationResponse(op *domain.Operation) operationResponse {
	return operationResponse{
		ID:        op.ID,
		Type:      string(op.Type),
		Amount:    op.Amount,
		Currency:  op.Currency,
		UserID:    op.UserID,
		CreatedAt: op.CreatedAt.UTC(),
	}
}

func toListResponse(ops []domain.Operation) []operationResponse {
	out := make([]operationResponse, len(ops))
	for i := range ops {
		out[i] = toOperationResponse(&ops[i])
	}
	return out
}
