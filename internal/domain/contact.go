package domain

// ProfessionalContact Model: a person in the user's professional network
type ProfessionalContact struct {
	ID          uint   `gorm:"primaryKey" json:"id"`                   // Primary key
	UserID      uint   `gorm:"index;not null" json:"-"`                // Owning user
	Name        string `gorm:"not null" json:"name"`                   // Contact name
	Company     string `gorm:"size:150" json:"company"`                // Optional company
	Role        string `gorm:"size:150" json:"role"`                   // Optional role
	LastContact string `gorm:"size:10" json:"last_contact"`            // ISO date of last touchpoint
	NextContact string `gorm:"size:10;index" json:"next_contact"`      // ISO date of planned follow-up
	Notes       string `json:"notes"`                                  // Optional notes
	Industry    string `gorm:"size:100" json:"industry"`               // Optional industry
	Email       string `gorm:"size:200" json:"email"`                  // Optional email
	Phone       string `gorm:"size:50" json:"phone"`                   // Optional phone
	CreatedAt   int64  `gorm:"autoCreateTime:milli" json:"created_at"` // Timestamp of creation in milliseconds
}
