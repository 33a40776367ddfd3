package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"example.com/event-planner/backend/internal/ledger"
)

type EstimateFailedResponse struct {
	Error     string `json:"error"`
	Retryable bool   `json:"retryable"`
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": message})
}

func conflict(c echo.Context, message string) error {
	return c.JSON(http.StatusConflict, map[string]string{"error": message})
}

func notFound(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, map[string]string{"error": message})
}

func paymentRequired(c echo.Context, message string) error {
	return c.JSON(http.StatusPaymentRequired, map[string]string{"error": message})
}

func unavailable(c echo.Context, message string) error {
	return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": message})
}

func estimateFailed(c echo.Context) error {
	return c.JSON(http.StatusBadGateway, EstimateFailedResponse{Error: "estimation failed", Retryable: true})
}

func serverError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}

// ledgerError переводит ошибки сессии в HTTP-ответ.
func ledgerError(c echo.Context, err error) error {
	var estimateErr *ledger.EstimateError

	switch {
	case errors.Is(err, ledger.ErrAlreadyHired):
		return conflict(c, "vendor already hired")
	case errors.Is(err, ledger.ErrNothingPending):
		return conflict(c, "no pending hire")
	case errors.Is(err, ledger.ErrValidation):
		return badRequest(c, err.Error())
	case errors.Is(err, ledger.ErrStaleEstimate):
		return conflict(c, "estimate superseded by a newer request")
	case errors.Is(err, ledger.ErrStoreFull):
		return unavailable(c, "session limit reached")
	case errors.As(err, &estimateErr):
		return estimateFailed(c)
	default:
		return serverError(c)
	}
}
