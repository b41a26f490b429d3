package api

import (
	"net/http" // HTTP status codes

	"lifedash/internal/domain" // Importing domain models
	"lifedash/internal/rollup" // Derived-metrics core
	"lifedash/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// ObjectiveRequest represents an objective create/update payload
type ObjectiveRequest struct {
	Objective   string `json:"objective" binding:"required"`                                           // Objective statement
	Area        string `json:"area" binding:"required,oneof=personal professional"`                    // Life area
	Period      string `json:"period"`                                                                 // e.g. 2026-Q1
	Priority    string `json:"priority" binding:"required,oneof=low medium high critical"`             // Priority
	Status      string `json:"status" binding:"required,oneof=active on_track at_risk completed cancelled"` // User-set status
	Description string `json:"description"`                                                            // Optional description
}

// KeyResultRequest represents a key result create/update payload. Progress is
// always recomputed server-side from baseline/target/current.
type KeyResultRequest struct {
	ObjectiveID  uint    `json:"objective_id" binding:"required"` // Owning objective
	KeyResult    string  `json:"key_result" binding:"required"`   // Key result statement
	Metric       string  `json:"metric"`                          // What is measured
	Baseline     float64 `json:"baseline"`                        // Starting value
	Target       float64 `json:"target"`                          // Target value
	CurrentValue float64 `json:"current_value"`                   // Latest measured value
	TargetDate   string  `json:"target_date"`                     // Optional ISO date
}

// ObjectiveView is an objective with its joined key results and derived
// average progress
type ObjectiveView struct {
	domain.Objective
	KeyResults  []domain.KeyResult `json:"key_results"`  // Child key results
	AvgProgress int                `json:"avg_progress"` // Rounded mean progress
}

// ListObjectivesHandler returns the user's objectives with key results joined
// and per-objective average progress derived
func ListObjectivesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c) // Get userID from context
		if !ok {
			return // Unauthorized already answered
		}
		var objectives []domain.Objective // Slice to hold objectives
		if err := db.Where("user_id = ?", userID).Order("created_at desc").Find(&objectives).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch objectives"})
			return
		}
		var keyResults []domain.KeyResult // Slice to hold key results
		if err := db.Where("user_id = ?", userID).Order("created_at asc").Find(&keyResults).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch key results"})
			return
		}
		// Join and derive in the pure rollup core
		grouped := rollup.GroupKeyResults(objectives, keyResults)
		views := make([]ObjectiveView, len(objectives))
		for i, o := range objectives {
			krs := grouped[o.ID]
			if krs == nil {
				krs = []domain.KeyResult{} // Serialize as an empty list, not null
			}
			views[i] = ObjectiveView{
				Objective:   o,                              // The objective itself
				KeyResults:  krs,                            // Joined children
				AvgProgress: rollup.ObjectiveProgress(krs), // Derived mean
			}
		}
		c.JSON(http.StatusOK, gin.H{"objectives": views}) // Return the views
	}
}

// ObjectivesSummaryHandler surfaces the at-risk subset alongside overall
// counts
func ObjectivesSummaryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c) // Get userID from context
		if !ok {
			return // Unauthorized already answered
		}
		var objectives []domain.Objective // Rows feeding the rollup
		if err := db.Where("user_id = ?", userID).Find(&objectives).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch objectives"})
			return
		}
		// The at-risk flag is user-set; the rollup only filters on it
		c.JSON(http.StatusOK, gin.H{
			"total":   len(objectives),           // All objectives
			"at_risk": rollup.AtRisk(objectives), // Flagged subset
		})
	}
}

// CreateObjectiveHandler records a new objective
func CreateObjectiveHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c) // Get userID from context
		if !ok {
			return // Unauthorized already answered
		}
		var req ObjectiveRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Build the owned row
		objective := domain.Objective{
			UserID:      userID,          // Owning user
			Objective:   req.Objective,   // Statement
			Area:        req.Area,        // Area
			Period:      req.Period,      // Period
			Priority:    req.Priority,    // Priority
			Status:      req.Status,      // User-set status
			Description: req.Description, // Optional description
		}
		// Save the objective
		if err := db.Create(&objective).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // User ID
				"error":   err.Error(), // Error message
			}).Error("Failed to create objective")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create objective"})
			return
		}
		invalidateViews(c, userID)                          // Derived views must recompute
		c.JSON(http.StatusCreated, gin.H{"objective": objective}) // Return the created row
	}
}

// UpdateObjectiveHandler edits an existing objective
func UpdateObjectiveHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c) // Get userID from context
		if !ok {
			return // Unauthorized already answered
		}
		var req ObjectiveRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		var objective domain.Objective // Fetch the owned row
		if err := db.Where("user_id = ? AND id = ?", userID, c.Param("id")).First(&objective).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Objective not found"})
			return
		}
		// Apply the edit
		objective.Objective = req.Objective
		objective.Area = req.Area
		objective.Period = req.Period
		objective.Priority = req.Priority
		objective.Status = req.Status
		objective.Description = req.Description
		// Save the row
		if err := db.Save(&objective).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id":      userID,       // User ID
				"objective_id": objective.ID, // Row being edited
				"error":        err.Error(),  // Error message
			}).Error("Failed to update objective")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update objective"})
			return
		}
		invalidateViews(c, userID)                     // Derived views must recompute
		c.JSON(http.StatusOK, gin.H{"objective": objective}) // Return the updated row
	}
}

// DeleteObjectiveHandler removes an objective and its key results
func DeleteObjectiveHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c) // Get userID from context
		if !ok {
			return // Unauthorized already answered
		}
		// Remove the objective and its children together
		err := db.Transaction(func(tx *gorm.DB) error {
			res := tx.Where("user_id = ? AND id = ?", userID, c.Param("id")).Delete(&domain.Objective{})
			if res.Error != nil {
				return res.Error // Return error to rollback
			}
			// No matching row means nothing was deleted
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
			// Delete the child key results
			return tx.Where("user_id = ? AND objective_id = ?", userID, c.Param("id")).Delete(&domain.KeyResult{}).Error
		})
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Objective not found"})
			return
		}
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // User ID
				"error":   err.Error(), // Error message
			}).Error("Failed to delete objective")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete objective"})
			return
		}
		invalidateViews(c, userID)                           // Derived views must recompute
		c.JSON(http.StatusOK, gin.H{"message": "Objective deleted"}) // Return success response
	}
}

// ListKeyResultsHandler returns the user's key results, optionally scoped to
// one objective
func ListKeyResultsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c) // Get userID from context
		if !ok {
			return // Unauthorized already answered
		}
		query := db.Where("user_id = ?", userID)
		// Optional ?objective_id= filter
		if objectiveID := c.Query("objective_id"); objectiveID != "" {
			query = query.Where("objective_id = ?", objectiveID)
		}
		var keyResults []domain.KeyResult // Owned key results
		if err := query.Order("created_at asc").Find(&keyResults).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch key results"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"key_results": keyResults}) // Return the rows
	}
}

// CreateKeyResultHandler records a new key result under one of the user's
// objectives, deriving its progress percentage
func CreateKeyResultHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c) // Get userID from context
		if !ok {
			return // Unauthorized already answered
		}
		var req KeyResultRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Validate the optional target date
		if !utils.ValidDate(req.TargetDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid target date"})
			return
		}
		var objective domain.Objective // The parent must belong to the user
		if err := db.Where("user_id = ? AND id = ?", userID, req.ObjectiveID).First(&objective).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Objective not found"})
			return
		}
		// Build the owned row with derived progress
		kr := domain.KeyResult{
			UserID:             userID,                                                                // Owning user
			ObjectiveID:        req.ObjectiveID,                                                       // Owning objective
			KeyResult:          req.KeyResult,                                                         // Statement
			Metric:             req.Metric,                                                            // Metric
			Baseline:           req.Baseline,                                                          // Baseline
			Target:             req.Target,                                                            // Target
			CurrentValue:       req.CurrentValue,                                                      // Current value
			TargetDate:         req.TargetDate,                                                        // Optional target date
			ProgressPercentage: rollup.KeyResultProgress(req.Baseline, req.Target, req.CurrentValue), // Derived
		}
		// Save the key result
		if err := db.Create(&kr).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id":      userID,          // User ID
				"objective_id": req.ObjectiveID, // Parent objective
				"error":        err.Error(),     // Error message
			}).Error("Failed to create key result")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create key result"})
			return
		}
		invalidateViews(c, userID)                      // Derived views must recompute
		c.JSON(http.StatusCreated, gin.H{"key_result": kr}) // Return the created row
	}
}

// UpdateKeyResultHandler edits a key result, recomputing progress on every
// current-value change
func UpdateKeyResultHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c) // Get userID from context
		if !ok {
			return // Unauthorized already answered
		}
		var req KeyResultRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Validate the optional target date
		if !utils.ValidDate(req.TargetDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid target date"})
			return
		}
		var kr domain.KeyResult // Fetch the owned row
		if err := db.Where("user_id = ? AND id = ?", userID, c.Param("id")).First(&kr).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Key result not found"})
			return
		}
		// Apply the edit; the owning objective never changes on update
		kr.KeyResult = req.KeyResult
		kr.Metric = req.Metric
		kr.Baseline = req.Baseline
		kr.Target = req.Target
		kr.CurrentValue = req.CurrentValue
		kr.TargetDate = req.TargetDate
		kr.ProgressPercentage = rollup.KeyResultProgress(req.Baseline, req.Target, req.CurrentValue)
		// Save the row
		if err := db.Save(&kr).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id":       userID,      // User ID
				"key_result_id": kr.ID,       // Row being edited
				"error":         err.Error(), // Error message
			}).Error("Failed to update key result")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update key result"})
			return
		}
		invalidateViews(c, userID)                  // Derived views must recompute
		c.JSON(http.StatusOK, gin.H{"key_result": kr}) // Return the updated row
	}
}

// DeleteKeyResultHandler removes a key result
func DeleteKeyResultHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c) // Get userID from context
		if !ok {
			return // Unauthorized already answered
		}
		// Delete only within the user's scope
		res := db.Where("user_id = ? AND id = ?", userID, c.Param("id")).Delete(&domain.KeyResult{})
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete key result"})
			return
		}
		// No matching row means nothing was deleted
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Key result not found"})
			return
		}
		invalidateViews(c, userID)                            // Derived views must recompute
		c.JSON(http.StatusOK, gin.H{"message": "Key result deleted"}) // Return success response
	}
}
