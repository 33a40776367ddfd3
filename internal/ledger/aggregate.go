package ledger

import (
	"strings"

	"example.com/event-planner/backend/internal/models"
)

type Ledger struct {
	Entries []models.CostEntry `json:"entries"`
	Total   float64            `json:"total"`
}

// View JSON-представление сводки; Empty отличает отсутствие данных от нулевого итога.
type View struct {
	Empty   bool               `json:"empty"`
	Entries []models.CostEntry `json:"entries"`
	Total   float64            `json:"total"`
}

type SourceTotal struct {
	Source models.EntrySource `json:"type"`
	Count  int                `json:"count"`
	Total  float64            `json:"total"`
}

// Compute собирает сводный бюджет из AI-разбивки, контрактов и ручных расходов.
// Второе значение false означает, что данных для сводки нет.
func Compute(breakdown []models.BreakdownItem, contracts []models.VendorContract, expenses []models.ManualExpense) (Ledger, bool) {
	entries := make([]models.CostEntry, 0, len(breakdown)+len(contracts)+len(expenses))

	for _, item := range breakdown {
		if coveredByContract(item.Category, contracts) {
			continue
		}
		entries = append(entries, models.CostEntry{Category: item.Category, Amount: item.Amount, Source: models.SourceAIEstimate})
	}

	for _, contract := range contracts {
		entries = append(entries, models.CostEntry{Category: contract.Name, Amount: contract.Price, Source: models.SourceVendorContract})
	}

	for _, expense := range expenses {
		entries = append(entries, models.CostEntry{Category: expense.Category, Amount: expense.Amount, Source: models.SourceManualExpense})
	}

	if len(entries) == 0 {
		return Ledger{}, false
	}

	var total float64
	for _, entry := range entries {
		total += entry.Amount
	}

	return Ledger{Entries: entries, Total: total}, true
}

// coveredByContract сравнивает категории без учета регистра по вхождению подстроки в обе стороны.
// Пустая категория оценки никогда не подавляется.
func coveredByContract(category string, contracts []models.VendorContract) bool {
	estimate := strings.ToLower(category)
	if estimate == "" {
		return false
	}

	for _, contract := range contracts {
		hired := strings.ToLower(contract.Category)
		if hired == "" {
			continue
		}
		if strings.Contains(hired, estimate) || strings.Contains(estimate, hired) {
			return true
		}
	}
	return false
}

// View упаковывает результат Compute для ответа API и событий.
func (l Ledger) View(ok bool) View {
	if !ok {
		return View{Empty: true, Entries: []models.CostEntry{}}
	}
	return View{Entries: l.Entries, Total: l.Total}
}

// BySource считает итоги по каждому типу источника в фиксированном порядке.
func (l Ledger) BySource() []SourceTotal {
	totals := []SourceTotal{
		{Source: models.SourceAIEstimate},
		{Source: models.SourceVendorContract},
		{Source: models.SourceManualExpense},
	}

	for _, entry := range l.Entries {
		for i := range totals {
			if totals[i].Source == entry.Source {
				totals[i].Count++
				totals[i].Total += entry.Amount
			}
		}
	}
	return totals
}
