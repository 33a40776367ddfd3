package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"example.com/event-planner/backend/internal/catalog"
	"example.com/event-planner/backend/internal/ledger"
	"example.com/event-planner/backend/internal/notifications"
	"example.com/event-planner/backend/internal/payment"
)

type PaymentGateway interface {
	Pay(ctx context.Context, request payment.Request) (payment.Receipt, error)
}

type SessionHandler struct {
	Store          *ledger.Store
	Catalog        *catalog.Catalog
	Notifier       *notifications.Hub
	Payments       PaymentGateway
	DepositPercent float64
	Logger         *slog.Logger

	now func() time.Time
}

// NewSessionHandler создает обработчик операций сессии планирования.
func NewSessionHandler(store *ledger.Store, cat *catalog.Catalog, notifier *notifications.Hub, payments PaymentGateway, depositPercent float64, logger *slog.Logger) *SessionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	if depositPercent <= 0 {
		depositPercent = payment.DefaultDepositPercent
	}
	return &SessionHandler{
		Store:          store,
		Catalog:        cat,
		Notifier:       notifier,
		Payments:       payments,
		DepositPercent: depositPercent,
		Logger:         logger,
		now:            time.Now,
	}
}

type CreateSessionRequest struct {
	EventType  string `json:"event_type" validate:"omitempty,max=100"`
	GuestCount int    `json:"guest_count" validate:"gte=0,lte=100000"`
}

// Create открывает новую сессию планирования.
func (h *SessionHandler) Create(c echo.Context) error {
	var req CreateSessionRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	session, err := h.Store.Create(req.EventType, req.GuestCount)
	if err != nil {
		return ledgerError(c, err)
	}

	h.Logger.Info("planner session created", slog.String("session_id", session.ID.String()))
	return c.JSON(http.StatusCreated, session.Snapshot())
}

// Get возвращает полное состояние сессии.
func (h *SessionHandler) Get(c echo.Context) error {
	session, ok := SessionFromContext(c)
	if !ok {
		return notFound(c, "session not found")
	}

	return c.JSON(http.StatusOK, session.Snapshot())
}

// Delete закрывает сессию и SSE-подписки на нее.
func (h *SessionHandler) Delete(c echo.Context) error {
	session, ok := SessionFromContext(c)
	if !ok {
		return notFound(c, "session not found")
	}

	h.Store.Delete(session.ID)
	if h.Notifier != nil {
		h.Notifier.CloseSession(session.ID)
	}

	h.Logger.Info("planner session closed", slog.String("session_id", session.ID.String()))
	return c.NoContent(http.StatusNoContent)
}
