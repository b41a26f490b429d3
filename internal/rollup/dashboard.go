package rollup

import (
	"encoding/json"

	"github.com/shopspring/decimal" // Exact decimal arithmetic for money
)

// Metric is a dashboard count that distinguishes "unknown" (a failed read)
// from a genuine zero. Unknown metrics serialize as JSON null.
type Metric struct {
	Value int64
	Known bool
}

// KnownMetric wraps a successfully fetched count
func KnownMetric(v int64) Metric {
	return Metric{Value: v, Known: true}
}

// UnknownMetric marks a metric whose read failed
func UnknownMetric() Metric {
	return Metric{}
}

// MarshalJSON renders unknown metrics as null
func (m Metric) MarshalJSON() ([]byte, error) {
	if !m.Known {
		return []byte("null"), nil
	}
	return json.Marshal(m.Value)
}

// UnmarshalJSON restores a metric from its wire form; null means unknown.
// Needed so cached snapshots round-trip through Redis.
func (m *Metric) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*m = Metric{}
		return nil
	}
	if err := json.Unmarshal(data, &m.Value); err != nil {
		return err
	}
	m.Known = true
	return nil
}

// MoneyMetric is the decimal counterpart of Metric
type MoneyMetric struct {
	Value decimal.Decimal
	Known bool
}

// KnownMoney wraps a successfully fetched sum
func KnownMoney(v decimal.Decimal) MoneyMetric {
	return MoneyMetric{Value: v, Known: true}
}

// MarshalJSON renders unknown sums as null
func (m MoneyMetric) MarshalJSON() ([]byte, error) {
	if !m.Known {
		return []byte("null"), nil
	}
	return json.Marshal(m.Value)
}

// UnmarshalJSON restores a money metric from its wire form
func (m *MoneyMetric) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*m = MoneyMetric{}
		return nil
	}
	if err := json.Unmarshal(data, &m.Value); err != nil {
		return err
	}
	m.Known = true
	return nil
}

// Snapshot is the cross-domain dashboard composite for the current month and
// today. Each metric resolves independently; one failed sub-query degrades
// that metric to unknown without blanking the rest.
type Snapshot struct {
	Transactions        Metric      `json:"transactions"`
	MonthIncome         MoneyMetric `json:"month_income"`
	MonthExpenses       MoneyMetric `json:"month_expenses"`
	MonthBalance        MoneyMetric `json:"month_balance"`
	LibraryItems        Metric      `json:"library_items"`
	Contacts            Metric      `json:"contacts"`
	ActiveObjectives    Metric      `json:"active_objectives"`
	ActiveProjects      Metric      `json:"active_projects"`
	ActiveHabits        Metric      `json:"active_habits"`
	TasksCompletedToday Metric      `json:"tasks_completed_today"`
	HabitCompletionRate Metric      `json:"habit_completion_rate"`
}

// ComposeBalance derives the month balance; it is unknown unless both the
// income and expense sums resolved
func ComposeBalance(income, expenses MoneyMetric) MoneyMetric {
	if !income.Known || !expenses.Known {
		return MoneyMetric{}
	}
	return KnownMoney(income.Value.Sub(expenses.Value))
}
