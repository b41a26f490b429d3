package rollup

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lifedash/internal/domain"
)

func TestKeyResultProgress(t *testing.T) {
	cases := []struct {
		name                       string
		baseline, target, current float64
		want                       int
	}{
		{"halfway", 0, 50, 25, 50},
		{"done", 0, 50, 50, 100},
		{"not started", 0, 50, 0, 0},
		{"overachieved clamps to 100", 0, 50, 80, 100},
		{"regressed below baseline clamps to 0", 10, 50, 5, 0},
		{"target equals baseline is guarded", 10, 10, 10, 0},
		{"descending range", 100, 0, 25, 75},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := KeyResultProgress(tc.baseline, tc.target, tc.current)
			assert.Equal(t, tc.want, got)
			// Progress never leaves [0,100], whatever the input
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		})
	}
}

func TestObjectiveProgress(t *testing.T) {
	krs := []domain.KeyResult{
		{ProgressPercentage: 50},
		{ProgressPercentage: 100},
		{ProgressPercentage: 25},
	}
	assert.Equal(t, 58, ObjectiveProgress(krs)) // mean of 50,100,25 rounded
	assert.Equal(t, 0, ObjectiveProgress(nil))  // No key results yields 0
}

func TestGroupKeyResults(t *testing.T) {
	objectives := []domain.Objective{{ID: 1}, {ID: 2}}
	krs := []domain.KeyResult{
		{ID: 10, ObjectiveID: 1},
		{ID: 11, ObjectiveID: 1},
		{ID: 12, ObjectiveID: 2},
		{ID: 13, ObjectiveID: 99}, // Parent not loaded, dropped from the join
	}
	grouped := GroupKeyResults(objectives, krs)

	assert.Len(t, grouped[1], 2)
	assert.Len(t, grouped[2], 1)
	assert.NotContains(t, grouped, uint(99))
}

func TestAtRisk(t *testing.T) {
	objectives := []domain.Objective{
		{ID: 1, Status: domain.ObjectiveActive},
		{ID: 2, Status: domain.ObjectiveAtRisk},
		{ID: 3, Status: domain.ObjectiveCompleted},
		{ID: 4, Status: domain.ObjectiveAtRisk},
	}
	flagged := AtRisk(objectives)

	assert.Len(t, flagged, 2)
	assert.Equal(t, uint(2), flagged[0].ID)
	assert.Equal(t, uint(4), flagged[1].ID)
}
