package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"example.com/event-planner/backend/internal/ledger"
)

type LedgerSummaryResponse struct {
	Empty    bool                 `json:"empty"`
	Total    float64              `json:"total"`
	BySource []ledger.SourceTotal `json:"by_source"`
}

// Ledger возвращает сводный бюджет сессии.
func (h *SessionHandler) Ledger(c echo.Context) error {
	session, ok := SessionFromContext(c)
	if !ok {
		return notFound(c, "session not found")
	}

	current, hasData := session.Ledger()
	return c.JSON(http.StatusOK, current.View(hasData))
}

// LedgerSummary возвращает итоги сводки по источникам.
func (h *SessionHandler) LedgerSummary(c echo.Context) error {
	session, ok := SessionFromContext(c)
	if !ok {
		return notFound(c, "session not found")
	}

	current, hasData := session.Ledger()
	return c.JSON(http.StatusOK, LedgerSummaryResponse{
		Empty:    !hasData,
		Total:    current.Total,
		BySource: current.BySource(),
	})
}
