package api

import (
	"net/http" // HTTP status codes

	"lifedash/internal/domain" // Importing domain models
	"lifedash/internal/rollup" // Derived-metrics core
	"lifedash/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/sync/errgroup" // Parallel view loading
	"gorm.io/gorm"               // GORM ORM library
)

// HabitRequest represents a habit create/update payload
type HabitRequest struct {
	Habit      string `json:"habit" binding:"required"`                                                  // Habit statement
	Category   string `json:"category" binding:"required,oneof=health language productivity learning other"` // Category
	Frequency  string `json:"frequency" binding:"required,oneof=daily weekly monthly"`                   // Frequency
	Trigger    string `json:"trigger"`                                                                   // Optional cue
	Action     string `json:"action"`                                                                    // Optional action
	Reward     string `json:"reward"`                                                                    // Optional reward
	MetricType string `json:"metric_type" binding:"required,oneof=boolean minutes repetitions count"`    // Metric type
	Active     bool   `json:"active"`                                                                    // Whether the habit is tracked
}

// HabitLogRequest represents a log upsert payload for one date
type HabitLogRequest struct {
	Date        string   `json:"date"`         // Target date, defaults to today
	Completed   bool     `json:"completed"`    // Toggle for boolean habits
	Value       float64  `json:"value"`        // Raw value for numeric habits
	Note        string   `json:"note"`         // Optional note
	EnergyLevel *int     `json:"energy_level"` // Optional 1-5 energy rating
}

// targetDate reads the ?date= query parameter, defaulting to today
func targetDate(c *gin.Context) (string, bool) {
	date := c.Query("date") // Requested date
	if date == "" {
		return utils.Today(), true // Default to today
	}
	if !utils.ValidDate(date) {
		return "", false // Malformed date
	}
	return date, true
}

// HabitDayHandler returns the active habits and their logs for one date,
// together with the day's rollup. Habits and logs load in parallel.
func HabitDayHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c) // Get userID from context
		if !ok {
			return // Unauthorized already answered
		}
		date, ok := targetDate(c) // The day being viewed
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
			return
		}
		var habits []domain.Habit  // Active habits
		var logs []domain.HabitLog // Logs for the target date
		// Fan out the two reads; both must succeed for the view
		g, ctx := errgroup.WithContext(c.Request.Context())
		g.Go(func() error {
			return db.WithContext(ctx).Where("user_id = ? AND active = ?", userID, true).
				Order("created_at desc").Find(&habits).Error
		})
		g.Go(func() error {
			return db.WithContext(ctx).Where("user_id = ? AND log_date = ?", userID, date).Find(&logs).Error
		})
		if err := g.Wait(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch habits"})
			return
		}
		// The day rollup happens in the pure rollup core
		c.JSON(http.StatusOK, gin.H{
			"date":    date,                                // The day being viewed
			"habits":  habits,                              // Active habits
			"logs":    logs,                                // Their logs for the day
			"summary": rollup.SummarizeHabits(habits, logs), // Completion rate and category counts
		})
	}
}

// ListHabitsHandler returns every habit for the user, active or paused
func ListHabitsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c) // Get userID from context
		if !ok {
			return // Unauthorized already answered
		}
		var habits []domain.Habit // Owned habits
		query := db.Where("user_id = ?", userID)
		// Optional ?active= filter
		if active := c.Query("active"); active == "true" || active == "false" {
			query = query.Where("active = ?", active == "true")
		}
		if err := query.Order("created_at desc").Find(&habits).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // User ID
				"error":   err.Error(), // Error message
			}).Error("Failed to fetch habits")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch habits"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"habits": habits}) // Return the rows
	}
}

// CreateHabitHandler records a new habit
func CreateHabitHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c) // Get userID from context
		if !ok {
			return // Unauthorized already answered
		}
		var req HabitRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Build the owned row
		habit := domain.Habit{
			UserID:     userID,         // Owning user
			Habit:      req.Habit,      // Statement
			Category:   req.Category,   // Category
			Frequency:  req.Frequency,  // Frequency
			Trigger:    req.Trigger,    // Optional cue
			Action:     req.Action,     // Optional action
			Reward:     req.Reward,     // Optional reward
			MetricType: req.MetricType, // Metric type
			Active:     req.Active,     // Tracked or paused
		}
		// Save the habit
		if err := db.Create(&habit).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // User ID
				"error":   err.Error(), // Error message
			}).Error("Failed to create habit")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create habit"})
			return
		}
		invalidateViews(c, userID)                  // Derived views must recompute
		c.JSON(http.StatusCreated, gin.H{"habit": habit}) // Return the created row
	}
}

// UpdateHabitHandler edits an existing habit. ConsistencyScore is left
// untouched; no rollup recomputes it.
func UpdateHabitHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c) // Get userID from context
		if !ok {
			return // Unauthorized already answered
		}
		var req HabitRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		var habit domain.Habit // Fetch the owned row
		if err := db.Where("user_id = ? AND id = ?", userID, c.Param("id")).First(&habit).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Habit not found"})
			return
		}
		// Apply the edit
		habit.Habit = req.Habit
		habit.Category = req.Category
		habit.Frequency = req.Frequency
		habit.Trigger = req.Trigger
		habit.Action = req.Action
		habit.Reward = req.Reward
		habit.MetricType = req.MetricType
		habit.Active = req.Active
		// Save the row
		if err := db.Save(&habit).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id":  userID,      // User ID
				"habit_id": habit.ID,    // Row being edited
				"error":    err.Error(), // Error message
			}).Error("Failed to update habit")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update habit"})
			return
		}
		invalidateViews(c, userID)             // Derived views must recompute
		c.JSON(http.StatusOK, gin.H{"habit": habit}) // Return the updated row
	}
}

// DeleteHabitHandler removes a habit and its logs
func DeleteHabitHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c) // Get userID from context
		if !ok {
			return // Unauthorized already answered
		}
		// Remove the habit and its logs together
		err := db.Transaction(func(tx *gorm.DB) error {
			res := tx.Where("user_id = ? AND id = ?", userID, c.Param("id")).Delete(&domain.Habit{})
			if res.Error != nil {
				return res.Error // Return error to rollback
			}
			// No matching row means nothing was deleted
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
			// Delete the child logs
			return tx.Where("user_id = ? AND habit_id = ?", userID, c.Param("id")).Delete(&domain.HabitLog{}).Error
		})
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Habit not found"})
			return
		}
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // User ID
				"error":   err.Error(), // Error message
			}).Error("Failed to delete habit")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete habit"})
			return
		}
		invalidateViews(c, userID)                       // Derived views must recompute
		c.JSON(http.StatusOK, gin.H{"message": "Habit deleted"}) // Return success response
	}
}

// LogHabitHandler upserts the log for (habit, date): the existing log is
// updated when one exists, otherwise a new one is inserted. Calling it twice
// for the same pair leaves exactly one row, last write wins.
func LogHabitHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c) // Get userID from context
		if !ok {
			return // Unauthorized already answered
		}
		var req HabitLogRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		date := req.Date // Target date, defaults to today
		if date == "" {
			date = utils.Today()
		}
		if !utils.ValidDate(date) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
			return
		}
		var habit domain.Habit // The habit must belong to the user
		if err := db.Where("user_id = ? AND id = ?", userID, c.Param("id")).First(&habit).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Habit not found"})
			return
		}
		// Derive the stored (completed, value) pair for the metric type
		completed, value := rollup.NormalizeLog(habit.MetricType, req.Completed, req.Value)

		var log domain.HabitLog // Find-then-write keeps one log per (habit, date)
		err := db.Where("user_id = ? AND habit_id = ? AND log_date = ?", userID, habit.ID, date).First(&log).Error
		if err == nil {
			// Update the existing log; the second write wins
			log.Completed = completed
			log.Value = &value
			log.Note = req.Note
			log.EnergyLevel = req.EnergyLevel
			err = db.Save(&log).Error
		} else if err == gorm.ErrRecordNotFound {
			// Insert the first log for this pair
			log = domain.HabitLog{
				UserID:      userID,          // Owning user
				HabitID:     habit.ID,        // Owning habit
				LogDate:     date,            // Target date
				Completed:   completed,       // Derived completion
				Value:       &value,          // Stored value
				Note:        req.Note,        // Optional note
				EnergyLevel: req.EnergyLevel, // Optional energy rating
			}
			err = db.Create(&log).Error
		}
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id":  userID,      // User ID
				"habit_id": habit.ID,    // Habit being logged
				"date":     date,        // Target date
				"error":    err.Error(), // Error message
			}).Error("Failed to log habit")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log habit"})
			return
		}
		invalidateViews(c, userID)         // Derived views must recompute
		c.JSON(http.StatusOK, gin.H{"log": log}) // Return the upserted row
	}
}
