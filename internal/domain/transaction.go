package domain

import "github.com/shopspring/decimal" // Exact decimal arithmetic for money

// Transaction types
const (
	TransactionIncome  = "income"  // Money coming in
	TransactionExpense = "expense" // Money going out
)

// Transaction Model: a single income or expense entry
type Transaction struct {
	ID        uint            `gorm:"primaryKey" json:"id"`                  // Primary key
	UserID    uint            `gorm:"index;not null" json:"-"`               // Owning user
	Date      string          `gorm:"size:10;not null;index" json:"date"`    // ISO date YYYY-MM-DD
	Amount    decimal.Decimal `gorm:"type:decimal(12,2)" json:"amount"`      // Non-negative amount
	Type      string          `gorm:"size:10;not null;index" json:"type"`    // income or expense
	Category  string          `gorm:"size:100;not null" json:"category"`     // Free-text category
	Method    string          `gorm:"size:50" json:"method"`                 // Payment method, optional
	Note      string          `json:"note"`                                  // Optional note
	CreatedAt int64           `gorm:"autoCreateTime:milli" json:"created_at"` // Timestamp of creation in milliseconds
}

// FinancialGoal Model: a savings/financial target with user-entered progress.
// Progress is deliberately NOT derived from transactions.
type FinancialGoal struct {
	ID                 uint            `gorm:"primaryKey" json:"id"`                   // Primary key
	UserID             uint            `gorm:"index;not null" json:"-"`                // Owning user
	Objective          string          `gorm:"not null" json:"objective"`              // What the goal is
	TargetAmount       decimal.Decimal `gorm:"type:decimal(12,2)" json:"target_amount"` // Amount to reach
	TargetDate         string          `gorm:"size:10" json:"target_date"`             // ISO date, optional
	Status             string          `gorm:"size:30" json:"status"`                  // Free-text status
	ProgressPercentage int             `json:"progress_percentage"`                    // Manually entered, 0-100
	Notes              string          `json:"notes"`                                  // Optional notes
	CreatedAt          int64           `gorm:"autoCreateTime:milli" json:"created_at"` // Timestamp of creation in milliseconds
}
