package domain

// Habit categories: the five fixed buckets used by the habit rollup
const (
	HabitHealth       = "health"
	HabitLanguage     = "language"
	HabitProductivity = "productivity"
	HabitLearning     = "learning"
	HabitOther        = "other"
)

// Habit frequencies
const (
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
)

// Habit metric types
const (
	MetricBoolean     = "boolean"     // Done / not done
	MetricMinutes     = "minutes"     // Time spent
	MetricRepetitions = "repetitions" // Reps performed
	MetricCount       = "count"       // Generic counter
)

// Habit Model: a tracked routine.
// ConsistencyScore is stored as entered and not recomputed by any rollup.
type Habit struct {
	ID               uint    `gorm:"primaryKey" json:"id"`                   // Primary key
	UserID           uint    `gorm:"index;not null" json:"-"`                // Owning user
	Habit            string  `gorm:"not null" json:"habit"`                  // Habit statement
	Category         string  `gorm:"size:20;not null" json:"category"`       // health, language, productivity, learning, other
	Frequency        string  `gorm:"size:10;not null" json:"frequency"`      // daily, weekly, monthly
	Trigger          string  `json:"trigger"`                                // Optional cue
	Action           string  `json:"action"`                                 // Optional action
	Reward           string  `json:"reward"`                                 // Optional reward
	MetricType       string  `gorm:"size:15;not null" json:"metric_type"`    // boolean, minutes, repetitions, count
	Active           bool    `gorm:"default:true;index" json:"active"`       // Only active habits are rolled up
	ConsistencyScore float64 `json:"consistency_score"`                      // Stored, never derived
	CreatedAt        int64   `gorm:"autoCreateTime:milli" json:"created_at"` // Timestamp of creation in milliseconds
}

// HabitLog Model: at most one log per (habit, date), enforced by upsert logic
type HabitLog struct {
	ID          uint     `gorm:"primaryKey" json:"id"`                   // Primary key
	UserID      uint     `gorm:"index;not null" json:"-"`                // Owning user
	HabitID     uint     `gorm:"index;not null" json:"habit_id"`         // Owning habit
	LogDate     string   `gorm:"size:10;not null;index" json:"log_date"` // ISO date YYYY-MM-DD
	Completed   bool     `json:"completed"`                              // Whether the habit was done
	Value       *float64 `json:"value"`                                  // Raw numeric value, optional
	Note        string   `json:"note"`                                   // Optional note
	EnergyLevel *int     `json:"energy_level"`                           // Optional 1-5 energy rating
	CreatedAt   int64    `gorm:"autoCreateTime:milli" json:"created_at"` // Timestamp of creation in milliseconds
}
