package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/fintrack/operations-api/internal/core/domain"
	"github.com/fintrack/operations-api/internal/core/ports"
)

// OperationService records and lists ledger operations.
type OperationService struct {
	repo   ports.OperationRepository
	logger zerolog.Logger
}

func NewOperationService(repo ports.OperationRepository, logger zerolog.Logger) *OperationService {
	return &OperationService{repo: repo, logger: logger}
}

// Create validates, normalises and persists a single operation. Validation
// repeats what the request schema already checked; the service does not trust
// its callers. The amount is rounded (not truncated) to two fractional digits
// and the currency is stored upper-cased.
func (s *OperationService) Create(ctx context.Context, userID string, input ports.CreateOperationInput) (*domain.Operation, error) {
	opType := domain.OperationType(input.Type)
	if !opType.Valid() {
		return nil, domain.ErrInvalidOperationType
	}

	if !input.Amount.IsPositive() {
		return nil, domain.ErrAmountNotPositive
	}

	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if len(currency) < domain.CurrencyMinLen || len(currency) > domain.CurrencyMaxLen {
		return nil, domain.ErrInvalidCurrency
	}

	op := &domain.Operation{
		ID:        uuid.NewString(),
		Type:      opType,
		Amount:    input.Amount.Round(domain.AmountScale),
		Currency:  currency,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, op); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to record operation")
		return nil, err
	}

	s.logger.Info().
		Str("operation_id", op.ID).
		Str("user_id", userID).
		Str("type", string(op.Type)).
		Msg("operation recorded")

	return op, nil
}

// ListByUser returns the caller's operations ordered newest first. A user
// with no operations gets an empty slice, not an error.
func (s *OperationService) ListByUser(ctx context.Context, userID string) ([]domain.Operation, error) {
	ops, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if ops == nil {
		ops = []domain.Operation{}
	}
	return ops, nil
}
