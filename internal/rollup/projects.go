package rollup

import (
	"time"

	"lifedash/internal/domain"
	"lifedash/internal/utils"
)

// MinTimelineDays is the minimum span of the cross-project timeline window
const MinTimelineDays = 30

// nextStatus is the fixed forward chain for task statuses
var nextStatus = map[string]string{
	domain.TaskTodo:       domain.TaskInProgress,
	domain.TaskInProgress: domain.TaskDone,
}

// prevStatus is the exact inverse chain
var prevStatus = map[string]string{
	domain.TaskDone:       domain.TaskInProgress,
	domain.TaskInProgress: domain.TaskTodo,
}

// NextTaskStatus returns the next status in the todo -> in_progress -> done
// chain. ok is false at the end of the chain or for an unknown status.
func NextTaskStatus(status string) (string, bool) {
	s, ok := nextStatus[status]
	return s, ok
}

// PrevTaskStatus returns the previous status in the chain
func PrevTaskStatus(status string) (string, bool) {
	s, ok := prevStatus[status]
	return s, ok
}

// ProjectCompletion is the share of a project's tasks that are done, rounded
// to a whole percent. A project with no tasks is 0, never NaN.
func ProjectCompletion(tasks []domain.Task) int {
	if len(tasks) == 0 {
		return 0
	}
	done := 0
	for _, t := range tasks {
		if t.Status == domain.TaskDone {
			done++
		}
	}
	return RoundPercent(SafePercent(float64(done), float64(len(tasks))))
}

// KanbanBoard partitions tasks into the three fixed status buckets. The
// buckets are a display view, not stored groupings.
type KanbanBoard struct {
	Todo       []domain.Task `json:"todo"`
	InProgress []domain.Task `json:"in_progress"`
	Done       []domain.Task `json:"done"`
}

// BucketTasks builds the kanban view for a task set
func BucketTasks(tasks []domain.Task) KanbanBoard {
	board := KanbanBoard{
		Todo:       []domain.Task{},
		InProgress: []domain.Task{},
		Done:       []domain.Task{},
	}
	for _, t := range tasks {
		switch t.Status {
		case domain.TaskTodo:
			board.Todo = append(board.Todo, t)
		case domain.TaskInProgress:
			board.InProgress = append(board.InProgress, t)
		case domain.TaskDone:
			board.Done = append(board.Done, t)
		}
	}
	return board
}

// GroupTasks joins tasks to their projects by project_id. Unassociated tasks
// are not grouped anywhere.
func GroupTasks(projects []domain.Project, tasks []domain.Task) map[uint][]domain.Task {
	ids := make(map[uint]bool, len(projects))
	for _, p := range projects {
		ids[p.ID] = true
	}
	grouped := make(map[uint][]domain.Task)
	for _, t := range tasks {
		if t.ProjectID != nil && ids[*t.ProjectID] {
			grouped[*t.ProjectID] = append(grouped[*t.ProjectID], t)
		}
	}
	return grouped
}

// TimelineProgress is the elapsed-time percentage for a project with both a
// start date and a deadline: 0 before the start, 100 after the deadline,
// linear in between. Projects missing either date, or with malformed dates,
// report 0.
func TimelineProgress(startDate, deadline, today string) int {
	start, err := time.Parse(utils.ISODate, startDate)
	if err != nil {
		return 0
	}
	end, err := time.Parse(utils.ISODate, deadline)
	if err != nil {
		return 0
	}
	now, err := time.Parse(utils.ISODate, today)
	if err != nil {
		return 0
	}
	elapsed := now.Sub(start).Hours()
	span := end.Sub(start).Hours()
	return RoundPercent(Clamp(SafePercent(elapsed, span), 0, 100))
}

// TimelineWindow spans from the earliest start date to the latest deadline
// across all projects, padded to a MinTimelineDays minimum. With no dated
// projects the window starts today.
func TimelineWindow(projects []domain.Project, today string) (string, string) {
	var start, end time.Time
	for _, p := range projects {
		if d, err := time.Parse(utils.ISODate, p.StartDate); err == nil {
			if start.IsZero() || d.Before(start) {
				start = d
			}
		}
		if d, err := time.Parse(utils.ISODate, p.Deadline); err == nil {
			if end.IsZero() || d.After(end) {
				end = d
			}
		}
	}
	if start.IsZero() {
		start, _ = time.Parse(utils.ISODate, today)
	}
	if min := start.AddDate(0, 0, MinTimelineDays); end.Before(min) {
		end = min
	}
	return start.Format(utils.ISODate), end.Format(utils.ISODate)
}
