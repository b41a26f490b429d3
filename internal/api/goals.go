package api

import (
	"net/http" // HTTP status codes

	"lifedash/internal/domain" // Importing domain models
	"lifedash/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/shopspring/decimal" // Exact decimal arithmetic for money
	"github.com/sirupsen/logrus"    // Logging library
	"gorm.io/gorm"                  // GORM ORM library
)

// GoalRequest represents a financial goal create/update payload.
// ProgressPercentage is user-entered by design; it is never derived from
// transactions.
type GoalRequest struct {
	Objective          string          `json:"objective" binding:"required"`                     // Goal statement
	TargetAmount       decimal.Decimal `json:"target_amount"`                                    // Amount to reach
	TargetDate         string          `json:"target_date"`                                      // Optional ISO date
	Status             string          `json:"status"`                                           // Free-text status
	ProgressPercentage int             `json:"progress_percentage" binding:"min=0,max=100"`      // Manually entered
	Notes              string          `json:"notes"`                                            // Optional notes
}

// validate checks the parts gin binding cannot express
func (r GoalRequest) validate() string {
	if !utils.ValidDate(r.TargetDate) {
		return "Invalid target date" // Dates must be YYYY-MM-DD
	}
	if r.TargetAmount.IsNegative() {
		return "Target amount must not be negative" // Amounts are >= 0
	}
	return ""
}

// ListGoalsHandler returns the user's financial goals
func ListGoalsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c) // Get userID from context
		if !ok {
			return // Unauthorized already answered
		}
		var goals []domain.FinancialGoal // Slice to hold goals
		// Fetch goals scoped to the user, newest first
		if err := db.Where("user_id = ?", userID).Order("created_at desc").Find(&goals).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch goals"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"goals": goals}) // Return the goals
	}
}

// CreateGoalHandler records a new financial goal
func CreateGoalHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c) // Get userID from context
		if !ok {
			return // Unauthorized already answered
		}
		var req GoalRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Validate date and amount
		if msg := req.validate(); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}
		// Build the owned row
		goal := domain.FinancialGoal{
			UserID:             userID,                 // Owning user
			Objective:          req.Objective,          // Goal statement
			TargetAmount:       req.TargetAmount,       // Target amount
			TargetDate:         req.TargetDate,         // Optional target date
			Status:             req.Status,             // Status
			ProgressPercentage: req.ProgressPercentage, // User-entered progress
			Notes:              req.Notes,              // Optional notes
		}
		// Save the goal
		if err := db.Create(&goal).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // User ID
				"error":   err.Error(), // Error message
			}).Error("Failed to create goal")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create goal"})
			return
		}
		invalidateViews(c, userID)                // Derived views must recompute
		c.JSON(http.StatusCreated, gin.H{"goal": goal}) // Return the created row
	}
}

// UpdateGoalHandler edits an existing financial goal
func UpdateGoalHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c) // Get userID from context
		if !ok {
			return // Unauthorized already answered
		}
		var req GoalRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Validate date and amount
		if msg := req.validate(); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}
		var goal domain.FinancialGoal // Fetch the owned row
		if err := db.Where("user_id = ? AND id = ?", userID, c.Param("id")).First(&goal).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
			return
		}
		// Apply the edit
		goal.Objective = req.Objective
		goal.TargetAmount = req.TargetAmount
		goal.TargetDate = req.TargetDate
		goal.Status = req.Status
		goal.ProgressPercentage = req.ProgressPercentage
		goal.Notes = req.Notes
		// Save the row
		if err := db.Save(&goal).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // User ID
				"goal_id": goal.ID,     // Row being edited
				"error":   err.Error(), // Error message
			}).Error("Failed to update goal")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update goal"})
			return
		}
		invalidateViews(c, userID)           // Derived views must recompute
		c.JSON(http.StatusOK, gin.H{"goal": goal}) // Return the updated row
	}
}

// DeleteGoalHandler removes a financial goal
func DeleteGoalHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c) // Get userID from context
		if !ok {
			return // Unauthorized already answered
		}
		// Delete only within the user's scope
		res := db.Where("user_id = ? AND id = ?", userID, c.Param("id")).Delete(&domain.FinancialGoal{})
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete goal"})
			return
		}
		// No matching row means nothing was deleted
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
			return
		}
		invalidateViews(c, userID)                      // Derived views must recompute
		c.JSON(http.StatusOK, gin.H{"message": "Goal deleted"}) // Return success response
	}
}
