package rollup

import "lifedash/internal/domain"

// HabitCategories are the five fixed category buckets
var HabitCategories = []string{
	domain.HabitHealth,
	domain.HabitLanguage,
	domain.HabitProductivity,
	domain.HabitLearning,
	domain.HabitOther,
}

// HabitSummary is the habit rollup for a single target date
type HabitSummary struct {
	CompletionRate int            `json:"completion_rate"`
	CategoryCounts map[string]int `json:"category_counts"`
}

// FindLog returns the log for a habit in a single-date log set, or nil.
// The upsert contract guarantees at most one match per (habit, date).
func FindLog(logs []domain.HabitLog, habitID uint) *domain.HabitLog {
	for i := range logs {
		if logs[i].HabitID == habitID {
			return &logs[i]
		}
	}
	return nil
}

// NormalizeLog returns the (completed, value) pair to store for a log entry.
// Boolean habits store value 1 or 0 from the toggle; for every other metric
// type the raw value is kept as entered and completion is derived from it.
func NormalizeLog(metricType string, completed bool, value float64) (bool, float64) {
	if metricType == domain.MetricBoolean {
		if completed {
			return true, 1
		}
		return false, 0
	}
	return value > 0, value
}

// CompletionRate is the share of active habits with a completed log for the
// target date, rounded to a whole percent. 0 when there are no habits.
func CompletionRate(habits []domain.Habit, logs []domain.HabitLog) int {
	if len(habits) == 0 {
		return 0
	}
	completed := 0
	for _, l := range logs {
		if l.Completed {
			completed++
		}
	}
	return RoundPercent(SafePercent(float64(completed), float64(len(habits))))
}

// CategoryCounts tallies habits into the five fixed categories. Every bucket
// is present in the result even when empty.
func CategoryCounts(habits []domain.Habit) map[string]int {
	counts := make(map[string]int, len(HabitCategories))
	for _, c := range HabitCategories {
		counts[c] = 0
	}
	for _, h := range habits {
		if _, ok := counts[h.Category]; ok {
			counts[h.Category]++
		} else {
			counts[domain.HabitOther]++
		}
	}
	return counts
}

// SummarizeHabits builds the habit rollup for one date's logs
func SummarizeHabits(habits []domain.Habit, logs []domain.HabitLog) HabitSummary {
	return HabitSummary{
		CompletionRate: CompletionRate(habits, logs),
		CategoryCounts: CategoryCounts(habits),
	}
}
