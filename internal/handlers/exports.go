package handlers

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/event-planner/backend/internal/ledger"
	"example.com/event-planner/backend/internal/models"
)

type LedgerExport struct {
	SessionID   uuid.UUID               `json:"session_id"`
	EventType   string                  `json:"event_type"`
	GeneratedAt time.Time               `json:"generated_at"`
	Ledger      ledger.View             `json:"ledger"`
	Contracts   []models.VendorContract `json:"contracts"`
	Expenses    []models.ManualExpense  `json:"expenses"`
}

// ExportJSON выгружает сводку сессии в JSON-файл.
func (h *SessionHandler) ExportJSON(c echo.Context) error {
	session, ok := SessionFromContext(c)
	if !ok {
		return notFound(c, "session not found")
	}

	snapshot := session.Snapshot()
	export := LedgerExport{
		SessionID:   snapshot.ID,
		EventType:   snapshot.EventType,
		GeneratedAt: h.now().UTC(),
		Ledger:      snapshot.Ledger,
		Contracts:   snapshot.Contracts,
		Expenses:    snapshot.Expenses,
	}

	filename := "ledger-" + snapshot.ID.String() + ".json"
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=\""+filename+"\"")
	return c.JSON(http.StatusOK, export)
}

// ExportCSV выгружает строки сводки в CSV-файл.
func (h *SessionHandler) ExportCSV(c echo.Context) error {
	session, ok := SessionFromContext(c)
	if !ok {
		return notFound(c, "session not found")
	}

	current, _ := session.Ledger()

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writeLedgerCSV(writer, current); err != nil {
		return serverError(c)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return serverError(c)
	}

	filename := "ledger-" + session.ID.String() + ".csv"
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=\""+filename+"\"")
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func writeLedgerCSV(writer *csv.Writer, current ledger.Ledger) error {
	if err := writer.Write([]string{"category", "amount", "type"}); err != nil {
		return err
	}

	for _, entry := range current.Entries {
		record := []string{
			entry.Category,
			formatAmount(entry.Amount),
			string(entry.Source),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return writer.Write([]string{"Total", formatAmount(current.Total), ""})
}

func formatAmount(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
