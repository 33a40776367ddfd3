package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"example.com/event-planner/backend/internal/ledger"
	"example.com/event-planner/backend/internal/models"
)

type EstimateRequest struct {
	TotalBudget float64 `json:"total_budget" validate:"gt=0"`
	EventType   string  `json:"event_type" validate:"omitempty,max=100"`
}

type EstimateResponse struct {
	Breakdown []models.BreakdownItem `json:"breakdown"`
	Ledger    ledger.View            `json:"ledger"`
}

type ChatRequest struct {
	Text string `json:"text" validate:"required,notblank,max=4000"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

// Estimate запрашивает у AI разбивку бюджета и заменяет ею текущую.
func (h *SessionHandler) Estimate(c echo.Context) error {
	session, ok := SessionFromContext(c)
	if !ok {
		return notFound(c, "session not found")
	}

	var req EstimateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	eventType := strings.TrimSpace(req.EventType)
	if eventType == "" {
		eventType = session.EventType()
	}

	breakdown, err := session.RequestEstimate(c.Request().Context(), req.TotalBudget, eventType)
	if err != nil {
		return ledgerError(c, err)
	}

	current, hasData := session.Ledger()
	return c.JSON(http.StatusOK, EstimateResponse{Breakdown: breakdown, Ledger: current.View(hasData)})
}

// Chat передает свободный вопрос ассистенту.
func (h *SessionHandler) Chat(c echo.Context) error {
	session, ok := SessionFromContext(c)
	if !ok {
		return notFound(c, "session not found")
	}

	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	reply, err := session.SendMessage(c.Request().Context(), req.Text)
	if err != nil {
		return ledgerError(c, err)
	}

	return c.JSON(http.StatusOK, ChatResponse{Reply: reply})
}
