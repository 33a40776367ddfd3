package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"example.com/event-planner/backend/internal/ledger"
)

// TestAmountInputAcceptsStringAndNumber проверяет разбор суммы из строки и числа.
func TestAmountInputAcceptsStringAndNumber(t *testing.T) {
	cases := map[string]string{
		`{"category":"Cake","amount":"1200"}`:   "1200",
		`{"category":"Cake","amount":1200.5}`:   "1200.5",
		`{"category":"Cake","amount":" -50 "}`:  " -50 ",
		`{"category":"Cake","amount":"twelve"}`: "twelve",
	}

	for payload, want := range cases {
		var req AddExpenseRequest
		if err := json.Unmarshal([]byte(payload), &req); err != nil {
			t.Fatalf("unexpected error for %s: %v", payload, err)
		}
		if string(req.Amount) != want {
			t.Fatalf("expected %q, got %q", want, req.Amount)
		}
	}

	var req AddExpenseRequest
	if err := json.Unmarshal([]byte(`{"amount":true}`), &req); err == nil {
		t.Fatal("expected error for boolean amount")
	}
}

// TestLedgerErrorStatus проверяет соответствие ошибок сессии HTTP-статусам.
func TestLedgerErrorStatus(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{ledger.ErrAlreadyHired, http.StatusConflict},
		{ledger.ErrNothingPending, http.StatusConflict},
		{ledger.ErrInvalidAmount, http.StatusBadRequest},
		{ledger.ErrInvalidEstimateInput, http.StatusBadRequest},
		{fmt.Errorf("wrapped: %w", ledger.ErrInvalidCategory), http.StatusBadRequest},
		{ledger.ErrStaleEstimate, http.StatusConflict},
		{ledger.ErrStoreFull, http.StatusServiceUnavailable},
		{&ledger.EstimateError{Err: errors.New("timeout")}, http.StatusBadGateway},
		{errors.New("unexpected"), http.StatusInternalServerError},
	}

	e := echo.New()
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)

		if err := ledgerError(c, tc.err); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Code != tc.status {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.status, rec.Code)
		}
	}
}

// TestSessionFromContextMissing проверяет отсутствие сессии в контексте.
func TestSessionFromContextMissing(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	if _, ok := SessionFromContext(c); ok {
		t.Fatal("expected no session")
	}
}
