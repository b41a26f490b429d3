package rollup

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifedash/internal/domain"
)

func tx(txType string, amount int64, category string) domain.Transaction {
	return domain.Transaction{
		Type:     txType,
		Amount:   decimal.NewFromInt(amount),
		Category: category,
	}
}

func TestSummarizeFinancesScenario(t *testing.T) {
	// 1000 income, 600 expenses across food and transport
	txs := []domain.Transaction{
		tx(domain.TransactionIncome, 1000, "salary"),
		tx(domain.TransactionExpense, 300, "food"),
		tx(domain.TransactionExpense, 200, "food"),
		tx(domain.TransactionExpense, 100, "transport"),
	}
	s := SummarizeFinances(txs)

	assert.Equal(t, "1000", s.TotalIncome.String())
	assert.Equal(t, "600", s.TotalExpenses.String())
	assert.Equal(t, "400", s.Balance.String())
	assert.Equal(t, 40.0, s.SavingsRatio)

	require.Len(t, s.TopCategories, 2)
	assert.Equal(t, "food", s.TopCategories[0].Category)
	assert.Equal(t, "500", s.TopCategories[0].Amount.String())
	assert.Equal(t, 100.0, s.TopCategories[0].BarWidth) // The largest category fills the bar
	assert.Equal(t, "transport", s.TopCategories[1].Category)
	assert.Equal(t, 20.0, s.TopCategories[1].BarWidth) // 100 of 500
}

func TestSummarizeFinancesBalanceIdentity(t *testing.T) {
	txs := []domain.Transaction{
		tx(domain.TransactionIncome, 100, "salary"),
		tx(domain.TransactionExpense, 250, "rent"),
	}
	s := SummarizeFinances(txs)

	// balance = income - expenses exactly, and may be negative
	assert.True(t, s.Balance.Equal(s.TotalIncome.Sub(s.TotalExpenses)))
	assert.Equal(t, "-150", s.Balance.String())
	// The raw ratio is not clamped; only the bar width is
	assert.Equal(t, -150.0, s.SavingsRatio)
	assert.Equal(t, 0.0, s.SavingsBarWidth)
}

func TestSummarizeFinancesEmpty(t *testing.T) {
	s := SummarizeFinances(nil)

	assert.True(t, s.TotalIncome.IsZero())
	assert.True(t, s.TotalExpenses.IsZero())
	assert.True(t, s.Balance.IsZero())
	assert.Equal(t, 0.0, s.SavingsRatio) // Zero income yields the sentinel, not NaN
	assert.Empty(t, s.TopCategories)
}

func TestTopCategoriesLimit(t *testing.T) {
	txs := []domain.Transaction{
		tx(domain.TransactionExpense, 60, "a"),
		tx(domain.TransactionExpense, 50, "b"),
		tx(domain.TransactionExpense, 40, "c"),
		tx(domain.TransactionExpense, 30, "d"),
		tx(domain.TransactionExpense, 20, "e"),
		tx(domain.TransactionExpense, 10, "f"),
	}
	s := SummarizeFinances(txs)

	require.Len(t, s.TopCategories, TopCategoryLimit)
	// Sorted descending, the smallest category dropped
	assert.Equal(t, "a", s.TopCategories[0].Category)
	assert.Equal(t, "e", s.TopCategories[4].Category)
	for i := 1; i < len(s.TopCategories); i++ {
		assert.True(t, s.TopCategories[i].Amount.LessThanOrEqual(s.TopCategories[i-1].Amount))
	}
}
