package rollup

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lifedash/internal/domain"
)

func TestProjectCompletion(t *testing.T) {
	assert.Equal(t, 0, ProjectCompletion(nil)) // No tasks yields 0, not NaN

	tasks := []domain.Task{
		{Status: domain.TaskDone},
		{Status: domain.TaskTodo},
		{Status: domain.TaskInProgress},
		{Status: domain.TaskDone},
	}
	assert.Equal(t, 50, ProjectCompletion(tasks))
}

func TestProjectCompletionMonotonic(t *testing.T) {
	tasks := []domain.Task{
		{Status: domain.TaskTodo},
		{Status: domain.TaskTodo},
		{Status: domain.TaskTodo},
	}
	prev := ProjectCompletion(tasks)
	assert.Equal(t, 0, prev)
	// Completion never decreases as tasks flip to done one by one
	for i := range tasks {
		tasks[i].Status = domain.TaskDone
		got := ProjectCompletion(tasks)
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	}
	assert.Equal(t, 100, prev) // All done is exactly 100
}

func TestTaskStatusChain(t *testing.T) {
	next, ok := NextTaskStatus(domain.TaskTodo)
	assert.True(t, ok)
	assert.Equal(t, domain.TaskInProgress, next)

	next, ok = NextTaskStatus(domain.TaskInProgress)
	assert.True(t, ok)
	assert.Equal(t, domain.TaskDone, next)

	_, ok = NextTaskStatus(domain.TaskDone)
	assert.False(t, ok) // End of the chain

	prev, ok := PrevTaskStatus(domain.TaskDone)
	assert.True(t, ok)
	assert.Equal(t, domain.TaskInProgress, prev)

	prev, ok = PrevTaskStatus(domain.TaskInProgress)
	assert.True(t, ok)
	assert.Equal(t, domain.TaskTodo, prev)

	_, ok = PrevTaskStatus(domain.TaskTodo)
	assert.False(t, ok) // Start of the chain

	_, ok = NextTaskStatus("bogus")
	assert.False(t, ok)
}

func TestTaskStatusChainInverse(t *testing.T) {
	// prev is the exact inverse of next across the whole chain
	for _, s := range []string{domain.TaskTodo, domain.TaskInProgress} {
		next, ok := NextTaskStatus(s)
		assert.True(t, ok)
		back, ok := PrevTaskStatus(next)
		assert.True(t, ok)
		assert.Equal(t, s, back)
	}
}

func TestBucketTasks(t *testing.T) {
	tasks := []domain.Task{
		{ID: 1, Status: domain.TaskTodo},
		{ID: 2, Status: domain.TaskDone},
		{ID: 3, Status: domain.TaskInProgress},
		{ID: 4, Status: domain.TaskTodo},
	}
	board := BucketTasks(tasks)

	assert.Len(t, board.Todo, 2)
	assert.Len(t, board.InProgress, 1)
	assert.Len(t, board.Done, 1)
	// Empty input still yields empty buckets, not nils
	empty := BucketTasks(nil)
	assert.NotNil(t, empty.Todo)
	assert.NotNil(t, empty.InProgress)
	assert.NotNil(t, empty.Done)
}

func TestGroupTasks(t *testing.T) {
	p1, p99 := uint(1), uint(99)
	projects := []domain.Project{{ID: 1}}
	tasks := []domain.Task{
		{ID: 1, ProjectID: &p1},
		{ID: 2, ProjectID: nil}, // Unassociated tasks are not grouped
		{ID: 3, ProjectID: &p99}, // Dangling reference, dropped
	}
	grouped := GroupTasks(projects, tasks)

	assert.Len(t, grouped, 1)
	assert.Len(t, grouped[1], 1)
}

func TestTimelineProgress(t *testing.T) {
	start, deadline := "2026-08-01", "2026-08-31"

	assert.Equal(t, 0, TimelineProgress(start, deadline, "2026-07-15"))   // Before start
	assert.Equal(t, 100, TimelineProgress(start, deadline, "2026-09-10")) // After deadline
	assert.Equal(t, 50, TimelineProgress(start, deadline, "2026-08-16"))  // Halfway
	assert.Equal(t, 0, TimelineProgress(start, start, "2026-08-16"))      // Zero span is guarded to 0
	assert.Equal(t, 0, TimelineProgress("", deadline, "2026-08-16"))      // Missing date
}

func TestTimelineWindow(t *testing.T) {
	projects := []domain.Project{
		{StartDate: "2026-03-01", Deadline: "2026-06-30"},
		{StartDate: "2026-01-15", Deadline: "2026-02-01"},
	}
	start, end := TimelineWindow(projects, "2026-08-31")
	assert.Equal(t, "2026-01-15", start) // Earliest start
	assert.Equal(t, "2026-06-30", end)   // Latest deadline
}

func TestTimelineWindowMinimumSpan(t *testing.T) {
	projects := []domain.Project{
		{StartDate: "2026-05-01", Deadline: "2026-05-05"},
	}
	start, end := TimelineWindow(projects, "2026-08-31")
	assert.Equal(t, "2026-05-01", start)
	assert.Equal(t, "2026-05-31", end) // Padded to the 30-day minimum
}

func TestTimelineWindowNoDates(t *testing.T) {
	start, end := TimelineWindow(nil, "2026-08-31")
	assert.Equal(t, "2026-08-31", start) // Anchored on today
	assert.Equal(t, "2026-09-30", end)   // Today plus the minimum span
}
