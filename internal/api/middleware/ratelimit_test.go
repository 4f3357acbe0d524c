package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type stubThrottle struct {
	allowed bool
	err     error
	keys    []string
}

func (s *stubThrottle) Allow(_ context.Context, key string) (bool, error) {
	s.keys = append(s.keys, key)
	return s.allowed, s.err
}

func runLimited(t *testing.T, throttle Throttle) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := LoginRateLimit(throttle, zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, called
}

func TestLoginRateLimit_Allows(t *testing.T) {
	rec, called := runLimited(t, &stubThrottle{allowed: true})
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestLoginRateLimit_Rejects(t *testing.T) {
	rec, called := runLimited(t, &stubThrottle{allowed: false})
	if called {
		t.Fatalf("next should not be called")
	}
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}

func TestLoginRateLimit_FailsOpen(t *testing.T) {
	rec, called := runLimited(t, &stubThrottle{err: errors.New("redis down")})
	if !called {
		t.Fatalf("expected request to pass when throttle is unavailable")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
