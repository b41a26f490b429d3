package rollup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifedash/internal/domain"
)

func TestCompletionRate(t *testing.T) {
	habits := []domain.Habit{
		{ID: 1, Category: domain.HabitHealth},
		{ID: 2, Category: domain.HabitHealth},
		{ID: 3, Category: domain.HabitLearning},
		{ID: 4, Category: domain.HabitOther},
	}
	logs := []domain.HabitLog{
		{HabitID: 1, Completed: true},
		{HabitID: 2, Completed: true},
		{HabitID: 3, Completed: true},
	}
	// 3 completed of 4 active habits
	assert.Equal(t, 75, CompletionRate(habits, logs))
}

func TestCompletionRateNoHabits(t *testing.T) {
	assert.Equal(t, 0, CompletionRate(nil, nil)) // No habits yields 0, not NaN
}

func TestCompletionRateIgnoresIncompleteLogs(t *testing.T) {
	habits := []domain.Habit{{ID: 1}, {ID: 2}}
	logs := []domain.HabitLog{
		{HabitID: 1, Completed: true},
		{HabitID: 2, Completed: false}, // Logged but not completed
	}
	assert.Equal(t, 50, CompletionRate(habits, logs))
}

func TestFindLog(t *testing.T) {
	logs := []domain.HabitLog{
		{ID: 10, HabitID: 1},
		{ID: 11, HabitID: 2},
	}
	found := FindLog(logs, 2)
	require.NotNil(t, found)
	assert.Equal(t, uint(11), found.ID)
	assert.Nil(t, FindLog(logs, 99)) // No log for that habit
}

func TestNormalizeLogBoolean(t *testing.T) {
	// Boolean habits store 1/0 from the toggle, ignoring any raw value
	completed, value := NormalizeLog(domain.MetricBoolean, true, 42)
	assert.True(t, completed)
	assert.Equal(t, 1.0, value)

	completed, value = NormalizeLog(domain.MetricBoolean, false, 42)
	assert.False(t, completed)
	assert.Equal(t, 0.0, value)
}

func TestNormalizeLogNumeric(t *testing.T) {
	// Numeric habits keep the raw value and derive completion from it
	completed, value := NormalizeLog(domain.MetricMinutes, false, 30)
	assert.True(t, completed)
	assert.Equal(t, 30.0, value)

	completed, value = NormalizeLog(domain.MetricRepetitions, true, 0)
	assert.False(t, completed) // Zero value means not done, whatever the toggle says
	assert.Equal(t, 0.0, value)
}

func TestCategoryCounts(t *testing.T) {
	habits := []domain.Habit{
		{Category: domain.HabitHealth},
		{Category: domain.HabitHealth},
		{Category: domain.HabitLanguage},
		{Category: "unexpected"}, // Unknown categories land in "other"
	}
	counts := CategoryCounts(habits)

	require.Len(t, counts, 5) // All five buckets always present
	assert.Equal(t, 2, counts[domain.HabitHealth])
	assert.Equal(t, 1, counts[domain.HabitLanguage])
	assert.Equal(t, 0, counts[domain.HabitProductivity])
	assert.Equal(t, 0, counts[domain.HabitLearning])
	assert.Equal(t, 1, counts[domain.HabitOther])
}
