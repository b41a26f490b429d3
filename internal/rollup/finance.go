package rollup

import (
	"sort"

	"github.com/shopspring/decimal" // Exact decimal arithmetic for money

	"lifedash/internal/domain"
)

// TopCategoryLimit caps the expense category breakdown
const TopCategoryLimit = 5

// CategoryTotal is one entry of the expense breakdown. BarWidth is the bar
// length relative to the largest entry, clamped to [0,100] for rendering.
type CategoryTotal struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	BarWidth float64         `json:"bar_width"`
}

// FinanceSummary holds the financial rollup for a set of transactions.
// SavingsRatio is the raw percentage and may be negative or exceed 100;
// SavingsBarWidth is the clamped value used only for the progress bar.
type FinanceSummary struct {
	TotalIncome     decimal.Decimal `json:"total_income"`
	TotalExpenses   decimal.Decimal `json:"total_expenses"`
	Balance         decimal.Decimal `json:"balance"`
	SavingsRatio    float64         `json:"savings_ratio"`
	SavingsBarWidth float64         `json:"savings_bar_width"`
	TopCategories   []CategoryTotal `json:"top_categories"`
}

// SummarizeFinances rolls a transaction set up into totals, balance, savings
// ratio and the top expense categories. Empty input yields zero totals.
func SummarizeFinances(txs []domain.Transaction) FinanceSummary {
	income := decimal.Zero
	expenses := decimal.Zero
	byCategory := make(map[string]decimal.Decimal)
	for _, t := range txs {
		switch t.Type {
		case domain.TransactionIncome:
			income = income.Add(t.Amount)
		case domain.TransactionExpense:
			expenses = expenses.Add(t.Amount)
			byCategory[t.Category] = byCategory[t.Category].Add(t.Amount)
		}
	}

	balance := income.Sub(expenses)
	ratio := 0.0
	if income.IsPositive() {
		ratio = SafePercent(balance.InexactFloat64(), income.InexactFloat64())
	}

	return FinanceSummary{
		TotalIncome:     income,
		TotalExpenses:   expenses,
		Balance:         balance,
		SavingsRatio:    ratio,
		SavingsBarWidth: Clamp(ratio, 0, 100),
		TopCategories:   topCategories(byCategory),
	}
}

// topCategories sorts expense categories by total descending and keeps the
// largest TopCategoryLimit entries, with bar widths relative to the maximum
func topCategories(byCategory map[string]decimal.Decimal) []CategoryTotal {
	out := make([]CategoryTotal, 0, len(byCategory))
	for name, amount := range byCategory {
		out = append(out, CategoryTotal{Category: name, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		// Descending by amount, name ascending as a deterministic tie-break
		if cmp := out[i].Amount.Cmp(out[j].Amount); cmp != 0 {
			return cmp > 0
		}
		return out[i].Category < out[j].Category
	})
	if len(out) > TopCategoryLimit {
		out = out[:TopCategoryLimit]
	}

	// Scale bars against the largest entry; 1 guards the empty list
	max := 1.0
	if len(out) > 0 && out[0].Amount.IsPositive() {
		max = out[0].Amount.InexactFloat64()
	}
	for i := range out {
		out[i].BarWidth = Clamp(SafePercent(out[i].Amount.InexactFloat64(), max), 0, 100)
	}
	return out
}
