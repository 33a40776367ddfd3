package ledger

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"example.com/event-planner/backend/internal/models"
)

// Expenses упорядоченный список ручных расходов. Отрицательные суммы допускаются (скидки).
type Expenses struct {
	items []models.ManualExpense
	newID func() string
	now   func() time.Time
}

// NewExpenses создает пустой список ручных расходов.
func NewExpenses() *Expenses {
	return &Expenses{
		newID: func() string { return "manual-" + uuid.NewString() },
		now:   time.Now,
	}
}

// Add проверяет ввод и добавляет расход в конец списка.
func (e *Expenses) Add(category, rawAmount string) (models.ManualExpense, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return models.ManualExpense{}, ErrInvalidCategory
	}

	amount, err := parseAmount(rawAmount)
	if err != nil {
		return models.ManualExpense{}, err
	}

	expense := models.ManualExpense{
		ID:        e.newID(),
		Category:  category,
		Amount:    amount,
		CreatedAt: e.now().UTC(),
	}
	e.items = append(e.items, expense)
	return expense, nil
}

// Remove удаляет расход по id; отсутствующий id игнорируется.
func (e *Expenses) Remove(id string) bool {
	for i, item := range e.items {
		if item.ID == id {
			e.items = append(e.items[:i], e.items[i+1:]...)
			return true
		}
	}
	return false
}

func (e *Expenses) List() []models.ManualExpense {
	out := make([]models.ManualExpense, len(e.items))
	copy(out, e.items)
	return out
}

func parseAmount(raw string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, ErrInvalidAmount
	}
	return amount, nil
}
