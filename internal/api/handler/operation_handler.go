package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/fintrack/operations-api/internal/api/metrics"
	"github.com/fintrack/operations-api/internal/core/domain"
	"github.com/fintrack/operations-api/internal/core/ports"
)

// OperationHandler handles HTTP requests for the operation ledger.
type OperationHandler struct {
	service ports.OperationService
}

func NewOperationHandler(service ports.OperationService) *OperationHandler {
	return &OperationHandler{service: service}
}

// Create records a new ledger operation for the authenticated user.
//
// @Summary      Record an operation
// @Tags         operations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOperationRequest  true  "Operation details"
// @Success      201   {object}  operationResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /operations [post]
func (h *OperationHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createOperationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	op, err := h.service.Create(c.Request().Context(), userID, ports.CreateOperationInput{
		Type:     req.Type,
		Amount:   decimal.NewFromFloat(req.Amount),
		Currency: req.Currency,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidOperationType),
			errors.Is(err, domain.ErrAmountNotPositive),
			errors.Is(err, domain.ErrInvalidCurrency):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return err
	}

	metrics.OperationsCreatedTotal.WithLabelValues(string(op.Type)).Inc()
	return c.JSON(http.StatusCreated, toOperationResponse(op))
}

// List returns the authenticated user's operations, newest first.
//
// @Summary      List operations
// @Tags         operations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   operationResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /operations [get]
func (h *OperationHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	ops, err := h.service.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListResponse(ops))
}
