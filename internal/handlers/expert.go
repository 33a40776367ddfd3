package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"example.com/event-planner/backend/internal/catalog"
	"example.com/event-planner/backend/internal/models"
)

type StartExpertRequest struct {
	ExpertID string `json:"expert_id" validate:"required,notblank"`
}

type ModeResponse struct {
	Mode   models.SessionMode `json:"mode"`
	Expert *models.Expert     `json:"expert,omitempty"`
}

// StartExpert подключает эксперта к сессии.
func (h *SessionHandler) StartExpert(c echo.Context) error {
	session, ok := SessionFromContext(c)
	if !ok {
		return notFound(c, "session not found")
	}

	var req StartExpertRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	expert, err := h.Catalog.Expert(req.ExpertID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return notFound(c, "expert not found")
		}
		return serverError(c)
	}

	if err := session.StartExpertSession(&expert); err != nil {
		return ledgerError(c, err)
	}

	return c.JSON(http.StatusOK, ModeResponse{Mode: session.Mode(), Expert: &expert})
}

// EndExpert возвращает сессию в AI-режим.
func (h *SessionHandler) EndExpert(c echo.Context) error {
	session, ok := SessionFromContext(c)
	if !ok {
		return notFound(c, "session not found")
	}

	session.EndExpertSession()
	return c.JSON(http.StatusOK, ModeResponse{Mode: session.Mode()})
}
