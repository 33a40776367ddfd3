package ledger

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"example.com/event-planner/backend/internal/models"
)

// TestComputeSuppressesEstimateCoveredByContract проверяет подавление AI-категории контрактом.
func TestComputeSuppressesEstimateCoveredByContract(t *testing.T) {
	breakdown := []models.BreakdownItem{{Category: "Catering", Amount: 5000}}
	contracts := []models.VendorContract{{ID: "v9", Name: "Feast Masters", Category: "Catering Services", Price: 3000}}

	ledger, ok := Compute(breakdown, contracts, nil)
	require.True(t, ok)

	assert.Equal(t, []models.CostEntry{
		{Category: "Feast Masters", Amount: 3000, Source: models.SourceVendorContract},
	}, ledger.Entries)
	assert.Equal(t, 3000.0, ledger.Total)
}

// TestComputeSuppressionIsSymmetric проверяет вхождение подстроки в обе стороны и регистр.
func TestComputeSuppressionIsSymmetric(t *testing.T) {
	contracts := []models.VendorContract{{ID: "v1", Name: "Elite Catering Co.", Category: "catering", Price: 4500}}
	breakdown := []models.BreakdownItem{
		{Category: "Catering & Bar", Amount: 8000},
		{Category: "CATER", Amount: 100},
		{Category: "Photography", Amount: 2000},
	}

	ledger, ok := Compute(breakdown, contracts, nil)
	require.True(t, ok)

	require.Len(t, ledger.Entries, 2)
	assert.Equal(t, "Photography", ledger.Entries[0].Category)
	assert.Equal(t, "Elite Catering Co.", ledger.Entries[1].Category)
	assert.Equal(t, 6500.0, ledger.Total)
}

// TestComputeKeepsEmptyCategory проверяет, что пустая категория оценки не подавляется.
func TestComputeKeepsEmptyCategory(t *testing.T) {
	breakdown := []models.BreakdownItem{{Category: "", Amount: 700}}
	contracts := []models.VendorContract{{ID: "v1", Name: "Any", Category: "Venue", Price: 100}}

	ledger, ok := Compute(breakdown, contracts, nil)
	require.True(t, ok)

	require.Len(t, ledger.Entries, 2)
	assert.Equal(t, models.SourceAIEstimate, ledger.Entries[0].Source)
	assert.Equal(t, 800.0, ledger.Total)
}

// TestComputeScenario проверяет сквозной сценарий с оценкой, наймом и ручным расходом.
func TestComputeScenario(t *testing.T) {
	breakdown := []models.BreakdownItem{
		{Category: "Venue", Amount: 15000},
		{Category: "Catering", Amount: 8000},
	}
	contracts := []models.VendorContract{{ID: "v1", Name: "Elite Catering Co.", Category: "Catering", Price: 4500}}
	expenses := []models.ManualExpense{{ID: "manual-1", Category: "Attire", Amount: 1200}}

	ledger, ok := Compute(breakdown, contracts, expenses)
	require.True(t, ok)

	assert.Equal(t, []models.CostEntry{
		{Category: "Venue", Amount: 15000, Source: models.SourceAIEstimate},
		{Category: "Elite Catering Co.", Amount: 4500, Source: models.SourceVendorContract},
		{Category: "Attire", Amount: 1200, Source: models.SourceManualExpense},
	}, ledger.Entries)
	assert.Equal(t, 20700.0, ledger.Total)
}

// TestComputeEmpty проверяет сигнал отсутствия данных.
func TestComputeEmpty(t *testing.T) {
	ledger, ok := Compute(nil, nil, nil)
	assert.False(t, ok)
	assert.Empty(t, ledger.Entries)

	view := ledger.View(ok)
	assert.True(t, view.Empty)
	assert.NotNil(t, view.Entries)
}

// TestComputeZeroTotalIsNotEmpty отличает нулевой итог от отсутствия данных.
func TestComputeZeroTotalIsNotEmpty(t *testing.T) {
	ledger, ok := Compute(nil, nil, []models.ManualExpense{{ID: "m", Category: "Gift", Amount: 0}})
	require.True(t, ok)
	assert.False(t, ledger.View(ok).Empty)
	assert.Zero(t, ledger.Total)
}

// TestLedgerBySource проверяет итоги по источникам.
func TestLedgerBySource(t *testing.T) {
	ledger, ok := Compute(
		[]models.BreakdownItem{{Category: "Venue", Amount: 10}, {Category: "Music", Amount: 5}},
		[]models.VendorContract{{ID: "v", Name: "Bloom", Category: "Florist", Price: 7}},
		[]models.ManualExpense{{ID: "m", Category: "Discount", Amount: -2}},
	)
	require.True(t, ok)

	assert.Equal(t, []SourceTotal{
		{Source: models.SourceAIEstimate, Count: 2, Total: 15},
		{Source: models.SourceVendorContract, Count: 1, Total: 7},
		{Source: models.SourceManualExpense, Count: 1, Total: -2},
	}, ledger.BySource())
}

// TestComputeAdditivity свойство: без пересечений категорий итог равен сумме всех источников.
func TestComputeAdditivity(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("total is the sum of every source", prop.ForAll(
		func(estimates, prices, amounts []int) bool {
			var want float64

			breakdown := make([]models.BreakdownItem, 0, len(estimates))
			for i, amount := range estimates {
				breakdown = append(breakdown, models.BreakdownItem{Category: fmt.Sprintf("Alpha%d", i), Amount: float64(amount)})
				want += float64(amount)
			}

			contracts := make([]models.VendorContract, 0, len(prices))
			for i, price := range prices {
				contracts = append(contracts, models.VendorContract{ID: fmt.Sprintf("v%d", i), Name: fmt.Sprintf("Vendor %d", i), Category: fmt.Sprintf("Zeta%d", i), Price: float64(price)})
				want += float64(price)
			}

			expenses := make([]models.ManualExpense, 0, len(amounts))
			for i, amount := range amounts {
				expenses = append(expenses, models.ManualExpense{ID: fmt.Sprintf("m%d", i), Category: "Gift", Amount: float64(amount)})
				want += float64(amount)
			}

			ledger, ok := Compute(breakdown, contracts, expenses)
			count := len(estimates) + len(prices) + len(amounts)
			if count == 0 {
				return !ok
			}
			return ok && len(ledger.Entries) == count && ledger.Total == want
		},
		gen.SliceOf(gen.IntRange(0, 100000)),
		gen.SliceOf(gen.IntRange(0, 100000)),
		gen.SliceOf(gen.IntRange(-5000, 100000)),
	))

	properties.TestingRun(t)
}
