package domain

// Objective areas
const (
	AreaPersonal     = "personal"
	AreaProfessional = "professional"
)

// Objective statuses
const (
	ObjectiveActive    = "active"
	ObjectiveOnTrack   = "on_track"
	ObjectiveAtRisk    = "at_risk"
	ObjectiveCompleted = "completed"
	ObjectiveCancelled = "cancelled"
)

// Priorities shared by objectives, projects and tasks
const (
	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

// Objective Model: an OKR-style objective owning zero or more key results
type Objective struct {
	ID          uint   `gorm:"primaryKey" json:"id"`                   // Primary key
	UserID      uint   `gorm:"index;not null" json:"-"`                // Owning user
	Objective   string `gorm:"not null" json:"objective"`              // Objective statement
	Area        string `gorm:"size:20;not null" json:"area"`           // personal or professional
	Period      string `gorm:"size:50" json:"period"`                  // e.g. 2026-Q1
	Priority    string `gorm:"size:10;not null" json:"priority"`       // low, medium, high, critical
	Status      string `gorm:"size:20;not null;index" json:"status"`   // active, on_track, at_risk, completed, cancelled
	Description string `json:"description"`                            // Optional description
	CreatedAt   int64  `gorm:"autoCreateTime:milli" json:"created_at"` // Timestamp of creation in milliseconds
}

// KeyResult Model: a measurable sub-target of an objective.
// ProgressPercentage is derived from baseline/target/current and recomputed
// server-side on every write; it is never taken from the client.
type KeyResult struct {
	ID                 uint    `gorm:"primaryKey" json:"id"`                   // Primary key
	UserID             uint    `gorm:"index;not null" json:"-"`                // Owning user
	ObjectiveID        uint    `gorm:"index;not null" json:"objective_id"`     // Owning objective
	KeyResult          string  `gorm:"not null" json:"key_result"`             // Key result statement
	Metric             string  `gorm:"size:100" json:"metric"`                 // What is measured
	Baseline           float64 `json:"baseline"`                               // Starting value
	Target             float64 `json:"target"`                                 // Target value
	CurrentValue       float64 `json:"current_value"`                          // Latest measured value
	TargetDate         string  `gorm:"size:10" json:"target_date"`             // ISO date, optional
	ProgressPercentage int     `json:"progress_percentage"`                    // Derived, clamped to [0,100]
	CreatedAt          int64   `gorm:"autoCreateTime:milli" json:"created_at"` // Timestamp of creation in milliseconds
}
