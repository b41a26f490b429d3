package domain

// Library item types
const (
	LibraryArticle = "article"
	LibraryCourse  = "course"
	LibraryBook    = "book"
	LibraryVideo   = "video"
	LibraryNote    = "note"
	LibraryOther   = "other"
)

// Library item statuses
const (
	LibraryPending    = "pending"
	LibraryInProgress = "in_progress"
	LibraryCompleted  = "completed"
	LibraryArchived   = "archived"
)

// LibraryItem Model: a learning resource (article, course, book, ...)
type LibraryItem struct {
	ID        uint   `gorm:"primaryKey" json:"id"`                   // Primary key
	UserID    uint   `gorm:"index;not null" json:"-"`                // Owning user
	Title     string `gorm:"not null" json:"title"`                  // Resource title
	Type      string `gorm:"size:20;not null;index" json:"type"`     // article, course, book, video, note, other
	Topic     string `gorm:"size:100" json:"topic"`                  // Optional topic
	Source    string `gorm:"size:200" json:"source"`                 // Where it came from
	Link      string `json:"link"`                                   // Optional URL
	Tags      string `json:"tags"`                                   // Comma-separated tag list
	Summary   string `json:"summary"`                                // Optional summary
	Insight   string `json:"insight"`                                // Optional takeaway
	Status    string `gorm:"size:20;not null;index" json:"status"`   // pending, in_progress, completed, archived
	CreatedAt int64  `gorm:"autoCreateTime:milli" json:"created_at"` // Timestamp of creation in milliseconds
}
