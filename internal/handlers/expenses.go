package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
)

// AmountInput принимает сумму строкой, как ее ввел пользователь, или JSON-числом.
type AmountInput string

func (a *AmountInput) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var value string
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return err
		}
		*a = AmountInput(value)
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(trimmed, &number); err != nil {
		return err
	}
	*a = AmountInput(number.String())
	return nil
}

type AddExpenseRequest struct {
	Category string      `json:"category" validate:"required,notblank,max=100"`
	Amount   AmountInput `json:"amount" validate:"required"`
}

// AddExpense добавляет ручной расход в сводку.
func (h *SessionHandler) AddExpense(c echo.Context) error {
	session, ok := SessionFromContext(c)
	if !ok {
		return notFound(c, "session not found")
	}

	var req AddExpenseRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	expense, err := session.AddExpense(req.Category, string(req.Amount))
	if err != nil {
		return ledgerError(c, err)
	}

	return c.JSON(http.StatusCreated, expense)
}

// RemoveExpense удаляет ручной расход; повторное удаление ничего не меняет.
func (h *SessionHandler) RemoveExpense(c echo.Context) error {
	session, ok := SessionFromContext(c)
	if !ok {
		return notFound(c, "session not found")
	}

	session.RemoveExpense(c.Param("expenseId"))
	return c.NoContent(http.StatusNoContent)
}
