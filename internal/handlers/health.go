package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type HealthResponse struct {
	Status   string `json:"status"`
	Sessions int    `json:"sessions"`
}

// Health возвращает статус сервиса и число открытых сессий.
func (h *SessionHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok", Sessions: h.Store.Len()})
}
