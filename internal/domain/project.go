package domain

// Project statuses
const (
	ProjectBacklog    = "backlog"
	ProjectInProgress = "in_progress"
	ProjectBlocked    = "blocked"
	ProjectCompleted  = "completed"
	ProjectCancelled  = "cancelled"
)

// Task statuses: a strict three-state chain todo -> in_progress -> done
const (
	TaskTodo       = "todo"
	TaskInProgress = "in_progress"
	TaskDone       = "done"
)

// Project Model: a unit of work owning zero or more tasks
type Project struct {
	ID             uint   `gorm:"primaryKey" json:"id"`                   // Primary key
	UserID         uint   `gorm:"index;not null" json:"-"`                // Owning user
	Name           string `gorm:"not null" json:"name"`                   // Project name
	Area           string `gorm:"size:50" json:"area"`                    // Life area
	Type           string `gorm:"size:50" json:"type"`                    // Optional type
	Status         string `gorm:"size:20;not null;index" json:"status"`   // backlog, in_progress, blocked, completed, cancelled
	Priority       string `gorm:"size:10;not null" json:"priority"`       // low, medium, high, critical
	StartDate      string `gorm:"size:10" json:"start_date"`              // ISO date, optional
	Deadline       string `gorm:"size:10" json:"deadline"`                // ISO date, optional
	Owner          string `gorm:"size:100" json:"owner"`                  // Optional owner label
	Stakeholders   string `json:"stakeholders"`                           // Optional stakeholder list
	ExpectedImpact string `json:"expected_impact"`                        // Optional impact statement
	Risks          string `json:"risks"`                                  // Optional risks
	Notes          string `json:"notes"`                                  // Optional notes
	CreatedAt      int64  `gorm:"autoCreateTime:milli" json:"created_at"` // Timestamp of creation in milliseconds
}

// Task Model: a task optionally attached to a project (soft reference)
type Task struct {
	ID         uint     `gorm:"primaryKey" json:"id"`                   // Primary key
	UserID     uint     `gorm:"index;not null" json:"-"`                // Owning user
	ProjectID  *uint    `gorm:"index" json:"project_id"`                // Nullable owning project
	Task       string   `gorm:"not null" json:"task"`                   // Task description
	Status     string   `gorm:"size:20;not null;index" json:"status"`   // todo, in_progress, done
	Priority   string   `gorm:"size:10;not null" json:"priority"`       // low, medium, high, critical
	Estimation *float64 `json:"estimation"`                             // Estimated hours, optional
	Sprint     string   `gorm:"size:50" json:"sprint"`                  // Optional sprint label
	AssignedTo string   `gorm:"size:100" json:"assigned_to"`            // Optional assignee label
	Deadline   string   `gorm:"size:10" json:"deadline"`                // ISO date, optional
	Tags       string   `json:"tags"`                                   // Comma-separated tag list
	Blockers   string   `json:"blockers"`                               // Optional blockers
	CreatedAt  int64    `gorm:"autoCreateTime:milli" json:"created_at"` // Timestamp of creation in milliseconds
}
