package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"example.com/event-planner/backend/internal/catalog"
	"example.com/event-planner/backend/internal/models"
	"example.com/event-planner/backend/internal/notifications"
	"example.com/event-planner/backend/internal/payment"
)

type BookingRequest struct {
	VenueID int    `json:"venue_id" validate:"required,gt=0"`
	Date    string `json:"date" validate:"required,notblank"`
}

type BookingResponse struct {
	Venue   models.Venue    `json:"venue"`
	Date    string          `json:"date"`
	Deposit float64         `json:"deposit"`
	Receipt payment.Receipt `json:"receipt"`
}

// Book проверяет дату площадки и оплачивает депозит. Найм площадки остается отдельным шагом.
func (h *SessionHandler) Book(c echo.Context) error {
	session, ok := SessionFromContext(c)
	if !ok {
		return notFound(c, "session not found")
	}

	var req BookingRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	date, err := time.Parse(catalog.DateLayout, strings.TrimSpace(req.Date))
	if err != nil {
		return badRequest(c, "date must be YYYY-MM-DD")
	}

	venue, err := h.Catalog.CheckAvailability(req.VenueID, date, h.now())
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			return notFound(c, "venue not found")
		case errors.Is(err, catalog.ErrDateUnavailable):
			return conflict(c, "date unavailable")
		default:
			return serverError(c)
		}
	}

	day := date.Format(catalog.DateLayout)
	deposit := payment.Deposit(venue.Price, h.DepositPercent)
	receipt, err := h.Payments.Pay(c.Request().Context(), payment.Request{
		Reference: fmt.Sprintf("venue-%d-%s", venue.ID, day),
		Amount:    deposit,
	})
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrDeclined):
			return paymentRequired(c, "payment declined")
		case errors.Is(err, payment.ErrInvalidAmount):
			return badRequest(c, "invalid deposit amount")
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return unavailable(c, "payment interrupted")
		default:
			return serverError(c)
		}
	}

	h.Logger.Info("venue deposit paid",
		slog.String("session_id", session.ID.String()),
		slog.Int("venue_id", venue.ID),
		slog.String("date", day),
		slog.String("receipt_id", receipt.ID.String()),
	)

	response := BookingResponse{Venue: venue, Date: day, Deposit: deposit, Receipt: receipt}
	if h.Notifier != nil {
		h.Notifier.Publish(session.ID, notifications.Event{Type: notifications.EventBookingPaid, Data: response})
	}
	return c.JSON(http.StatusCreated, response)
}
