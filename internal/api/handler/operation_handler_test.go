package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/fintrack/operations-api/internal/core/domain"
	"github.com/fintrack/operations-api/internal/core/ports"
)

type stubOperationService struct {
	createFn func(ctx context.Context, userID string, input ports.CreateOperationInput) (*domain.Operation, error)
	listFn   func(ctx context.Context, userID string) ([]domain.Operation, error)
}

func (s *stubOperationService) Create(ctx context.Context, userID string, input ports.CreateOperationInput) (*domain.Operation, error) {
	return s.createFn(ctx, userID, input)
}

func (s *stubOperationService) ListByUser(ctx context.Context, userID string) ([]domain.Operation, error) {
	return s.listFn(ctx, userID)
}

func newOperationContext(t *testing.T, method, body, userID string) (echo.Context, *httptest.ResponseRecorder, *echo.Echo) {
	t.Helper()

	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, "/operations", nil)
	} else {
		req = httptest.NewRequest(method, "/operations", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != "" {
		c.Set("user_id", userID)
	}
	return c, rec, e
}

func TestOperationHandler_Create_Success(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	stub := &stubOperationService{
		createFn: func(ctx context.Context, userID string, input ports.CreateOperationInput) (*domain.Operation, error) {
			if userID != "user-1" {
				t.Fatalf("unexpected user: %s", userID)
			}
			if input.Type != "BUY" || input.Currency != "usd" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Operation{
				ID:        "op-1",
				Type:      domain.TypeBuy,
				Amount:    input.Amount.Round(2),
				Currency:  "USD",
				UserID:    userID,
				CreatedAt: created,
			}, nil
		},
	}
	handler := NewOperationHandler(stub)

	c, rec, _ := newOperationContext(t, http.MethodPost, `{"type":"BUY","amount":12.345,"currency":"usd"}`, "user-1")
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "op-1" || resp["type"] != "BUY" || resp["currency"] != "USD" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	amount, ok := resp["amount"].(string)
	if !ok {
		t.Fatalf("expected amount serialised as string, got %T", resp["amount"])
	}
	if amount != "12.35" && amount != "12.34" {
		t.Fatalf("unexpected amount: %s", amount)
	}
}

func TestOperationHandler_Create_NoIdentity(t *testing.T) {
	stub := &stubOperationService{
		createFn: func(ctx context.Context, userID string, input ports.CreateOperationInput) (*domain.Operation, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewOperationHandler(stub)

	c, rec, e := newOperationContext(t, http.MethodPost, `{"type":"BUY","amount":1,"currency":"USD"}`, "")
	if err := handler.Create(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestOperationHandler_Create_SchemaRejections(t *testing.T) {
	stub := &stubOperationService{
		createFn: func(ctx context.Context, userID string, input ports.CreateOperationInput) (*domain.Operation, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewOperationHandler(stub)

	bodies := []string{
		`{"type":"HOLD","amount":1,"currency":"USD"}`,
		`{"type":"BUY","amount":0,"currency":"USD"}`,
		`{"type":"BUY","amount":-5,"currency":"USD"}`,
		`{"type":"BUY","amount":1,"currency":"US"}`,
		`{"type":"BUY","amount":1,"currency":"WAYTOOLONG"}`,
		`{"amount":1,"currency":"USD"}`,
		`not-json`,
	}
	for _, body := range bodies {
		c, rec, _ := newOperationContext(t, http.MethodPost, body, "user-1")
		_ = handler.Create(c)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %s, got %d", body, rec.Code)
		}
	}
}

func TestOperationHandler_Create_DomainRejection(t *testing.T) {
	stub := &stubOperationService{
		createFn: func(ctx context.Context, userID string, input ports.CreateOperationInput) (*domain.Operation, error) {
			return nil, domain.ErrAmountNotPositive
		},
	}
	handler := NewOperationHandler(stub)

	c, rec, _ := newOperationContext(t, http.MethodPost, `{"type":"BUY","amount":1,"currency":"USD"}`, "user-1")
	_ = handler.Create(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestOperationHandler_List_Success(t *testing.T) {
	now := time.Now().UTC()
	stub := &stubOperationService{
		listFn: func(ctx context.Context, userID string) ([]domain.Operation, error) {
			if userID != "user-1" {
				t.Fatalf("unexpected user: %s", userID)
			}
			return []domain.Operation{
				{ID: "op-2", Type: domain.TypeSell, Amount: decimal.RequireFromString("3.50"), Currency: "EUR", UserID: userID, CreatedAt: now},
				{ID: "op-1", Type: domain.TypeBuy, Amount: decimal.RequireFromString("12.35"), Currency: "USD", UserID: userID, CreatedAt: now.Add(-time.Minute)},
			}, nil
		},
	}
	handler := NewOperationHandler(stub)

	c, rec, _ := newOperationContext(t, http.MethodGet, "", "user-1")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 || resp[0]["id"] != "op-2" || resp[1]["id"] != "op-1" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if resp[1]["amount"] != "12.35" {
		t.Fatalf("unexpected amount: %v", resp[1]["amount"])
	}
}

func TestOperationHandler_List_Empty(t *testing.T) {
	stub := &stubOperationService{
		listFn: func(ctx context.Context, userID string) ([]domain.Operation, error) {
			return []domain.Operation{}, nil
		},
	}
	handler := NewOperationHandler(stub)

	c, rec, _ := newOperationContext(t, http.MethodGet, "", "user-1")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Fatalf("expected empty array, got %s", body)
	}
}

func TestOperationHandler_List_NoIdentity(t *testing.T) {
	stub := &stubOperationService{
		listFn: func(ctx context.Context, userID string) ([]domain.Operation, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewOperationHandler(stub)

	c, rec, e := newOperationContext(t, http.MethodGet, "", "")
	if err := handler.List(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
