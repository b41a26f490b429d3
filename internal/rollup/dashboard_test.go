package rollup

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricJSON(t *testing.T) {
	known, err := json.Marshal(KnownMetric(0))
	require.NoError(t, err)
	assert.Equal(t, "0", string(known)) // A known zero is 0, not null

	unknown, err := json.Marshal(UnknownMetric())
	require.NoError(t, err)
	assert.Equal(t, "null", string(unknown))

	// Both forms round-trip, so cached snapshots survive Redis
	var m Metric
	require.NoError(t, json.Unmarshal(known, &m))
	assert.True(t, m.Known)
	assert.Equal(t, int64(0), m.Value)

	require.NoError(t, json.Unmarshal(unknown, &m))
	assert.False(t, m.Known)
}

func TestMoneyMetricJSON(t *testing.T) {
	known, err := json.Marshal(KnownMoney(decimal.NewFromFloat(12.50)))
	require.NoError(t, err)
	assert.Equal(t, `"12.5"`, string(known))

	unknown, err := json.Marshal(MoneyMetric{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(unknown))

	var m MoneyMetric
	require.NoError(t, json.Unmarshal(known, &m))
	assert.True(t, m.Known)
	assert.True(t, m.Value.Equal(decimal.NewFromFloat(12.5)))

	require.NoError(t, json.Unmarshal(unknown, &m))
	assert.False(t, m.Known)
}

func TestComposeBalance(t *testing.T) {
	income := KnownMoney(decimal.NewFromInt(1000))
	expenses := KnownMoney(decimal.NewFromInt(600))

	balance := ComposeBalance(income, expenses)
	assert.True(t, balance.Known)
	assert.True(t, balance.Value.Equal(decimal.NewFromInt(400)))

	// One unknown input makes the balance unknown
	assert.False(t, ComposeBalance(MoneyMetric{}, expenses).Known)
	assert.False(t, ComposeBalance(income, MoneyMetric{}).Known)
}

func TestSnapshotRoundTrip(t *testing.T) {
	snap := Snapshot{
		Transactions:        KnownMetric(12),
		MonthIncome:         KnownMoney(decimal.NewFromInt(1000)),
		MonthExpenses:       MoneyMetric{}, // Failed sub-query
		LibraryItems:        KnownMetric(3),
		HabitCompletionRate: KnownMetric(75),
	}
	data, err := json.Marshal(snap)
	require.NoError(t, err)

	var got Snapshot
	require.NoError(t, json.Unmarshal(data, &got))
	assert.True(t, got.Transactions.Known)
	assert.Equal(t, int64(12), got.Transactions.Value)
	assert.False(t, got.MonthExpenses.Known) // Unknown survives the round trip
	assert.False(t, got.MonthBalance.Known)
	assert.Equal(t, int64(75), got.HabitCompletionRate.Value)
}
