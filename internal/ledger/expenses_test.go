package ledger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExpensesAdd проверяет разбор суммы и порядок добавления.
func TestExpensesAdd(t *testing.T) {
	expenses := NewExpenses()

	first, err := expenses.Add("  Attire ", "1200")
	require.NoError(t, err)
	assert.Equal(t, "Attire", first.Category)
	assert.Equal(t, 1200.0, first.Amount)
	assert.True(t, strings.HasPrefix(first.ID, "manual-"))

	second, err := expenses.Add("Gifts", " 99.5 ")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	list := expenses.List()
	require.Len(t, list, 2)
	assert.Equal(t, "Attire", list[0].Category)
	assert.Equal(t, "Gifts", list[1].Category)
}

// TestExpensesRejectInvalidInput проверяет отказ без изменения списка.
func TestExpensesRejectInvalidInput(t *testing.T) {
	expenses := NewExpenses()
	_, err := expenses.Add("Attire", "1200")
	require.NoError(t, err)

	_, err = expenses.Add("", "100")
	require.ErrorIs(t, err, ErrInvalidCategory)

	_, err = expenses.Add("   ", "100")
	require.ErrorIs(t, err, ErrInvalidCategory)

	for _, raw := range []string{"abc", "", "NaN", "Inf", "-Inf", "12abc"} {
		_, err = expenses.Add("Gifts", raw)
		require.ErrorIs(t, err, ErrInvalidAmount, raw)
	}

	assert.Len(t, expenses.List(), 1)
}

// TestExpensesAllowNegative фиксирует допуск отрицательных сумм (скидки).
func TestExpensesAllowNegative(t *testing.T) {
	expenses := NewExpenses()

	expense, err := expenses.Add("Early bird discount", "-250")
	require.NoError(t, err)
	assert.Equal(t, -250.0, expense.Amount)
}

// TestExpensesRemove проверяет удаление и no-op для неизвестного id.
func TestExpensesRemove(t *testing.T) {
	expenses := NewExpenses()
	first, err := expenses.Add("Attire", "1200")
	require.NoError(t, err)
	second, err := expenses.Add("Gifts", "300")
	require.NoError(t, err)

	assert.True(t, expenses.Remove(first.ID))
	assert.False(t, expenses.Remove(first.ID))
	assert.False(t, expenses.Remove("manual-unknown"))

	list := expenses.List()
	require.Len(t, list, 1)
	assert.Equal(t, second.ID, list[0].ID)
}
