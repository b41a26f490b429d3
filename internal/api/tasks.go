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

// TaskRequest represents a task create/update payload
type TaskRequest struct {
	ProjectID  *uint    `json:"project_id"`                                                  // Optional owning project
	Task       string   `json:"task" binding:"required"`                                     // Task description
	Status     string   `json:"status" binding:"required,oneof=todo in_progress done"`       // Task status
	Priority   string   `json:"priority" binding:"required,oneof=low medium high critical"`  // Priority
	Estimation *float64 `json:"estimation"`                                                  // Estimated hours
	Sprint     string   `json:"sprint"`                                                      // Optional sprint label
	AssignedTo string   `json:"assigned_to"`                                                 // Optional assignee
	Deadline   string   `json:"deadline"`                                                    // Optional ISO date
	Tags       string   `json:"tags"`                                                        // Comma-separated tags
	Blockers   string   `json:"blockers"`                                                    // Optional blockers
}

// apply copies the payload onto a task row
func (r TaskRequest) apply(task *domain.Task) {
	task.ProjectID = r.ProjectID
	task.Task = r.Task
	task.Status = r.Status
	task.Priority = r.Priority
	task.Estimation = r.Estimation
	task.Sprint = r.Sprint
	task.AssignedTo = r.AssignedTo
	task.Deadline = r.Deadline
	task.Tags = r.Tags
	task.Blockers = r.Blockers
}

// projectScope narrows a task query to one project with ?project_id=
func projectScope(c *gin.Context, query *gorm.DB) *gorm.DB {
	if projectID := c.Query("project_id"); projectID != "" {
		query = query.Where("project_id = ?", projectID) // Filter by project
	}
	return query
}

// ListTasksHandler returns the user's tasks, optionally project-filtered
func ListTasksHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c) // Get userID from context
		if !ok {
			return // Unauthorized already answered
		}
		var tasks []domain.Task // Slice to hold tasks
		query := projectScope(c, db.Where("user_id = ?", userID))
		// Fetch tasks, newest first
		if err := query.Order("created_at desc").Find(&tasks).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"tasks": tasks}) // Return the tasks
	}
}

// TaskBoardHandler returns the kanban view: the optionally project-filtered
// task set partitioned into the three fixed status buckets
func TaskBoardHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c) // Get userID from context
		if !ok {
			return // Unauthorized already answered
		}
		var tasks []domain.Task // Rows feeding the bucketing
		query := projectScope(c, db.Where("user_id = ?", userID))
		if err := query.Order("created_at asc").Find(&tasks).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
			return
		}
		// Bucketing is display-only and happens in the pure rollup core
		c.JSON(http.StatusOK, gin.H{"board": rollup.BucketTasks(tasks)})
	}
}

// CreateTaskHandler records a new task. A referenced project must belong to
// the user.
func CreateTaskHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c) // Get userID from context
		if !ok {
			return // Unauthorized already answered
		}
		var req TaskRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Validate the optional deadline
		if !utils.ValidDate(req.Deadline) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid deadline"})
			return
		}
		// A project reference must point at the user's own project
		if req.ProjectID != nil {
			var project domain.Project
			if err := db.Where("user_id = ? AND id = ?", userID, *req.ProjectID).First(&project).Error; err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
				return
			}
		}
		task := domain.Task{UserID: userID} // Build the owned row
		req.apply(&task)                    // Copy the payload
		// Save the task
		if err := db.Create(&task).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // User ID
				"error":   err.Error(), // Error message
			}).Error("Failed to create task")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
			return
		}
		invalidateViews(c, userID)                // Derived views must recompute
		c.JSON(http.StatusCreated, gin.H{"task": task}) // Return the created row
	}
}

// UpdateTaskHandler edits an existing task
func UpdateTaskHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c) // Get userID from context
		if !ok {
			return // Unauthorized already answered
		}
		var req TaskRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Validate the optional deadline
		if !utils.ValidDate(req.Deadline) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid deadline"})
			return
		}
		var task domain.Task // Fetch the owned row
		if err := db.Where("user_id = ? AND id = ?", userID, c.Param("id")).First(&task).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		req.apply(&task) // Copy the payload
		// Save the row
		if err := db.Save(&task).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // User ID
				"task_id": task.ID,     // Row being edited
				"error":   err.Error(), // Error message
			}).Error("Failed to update task")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
			return
		}
		invalidateViews(c, userID)           // Derived views must recompute
		c.JSON(http.StatusOK, gin.H{"task": task}) // Return the updated row
	}
}

// DeleteTaskHandler removes a task
func DeleteTaskHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c) // Get userID from context
		if !ok {
			return // Unauthorized already answered
		}
		// Delete only within the user's scope
		res := db.Where("user_id = ? AND id = ?", userID, c.Param("id")).Delete(&domain.Task{})
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
			return
		}
		// No matching row means nothing was deleted
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		invalidateViews(c, userID)                      // Derived views must recompute
		c.JSON(http.StatusOK, gin.H{"message": "Task deleted"}) // Return success response
	}
}

// shiftTaskStatus moves a task one step along the fixed status chain. The
// next/previous step is computed, never stored.
func shiftTaskStatus(db *gorm.DB, c *gin.Context, step func(string) (string, bool)) {
	userID, ok := currentUser(c) // Get userID from context
	if !ok {
		return // Unauthorized already answered
	}
	var task domain.Task // Fetch the owned row
	if err := db.Where("user_id = ? AND id = ?", userID, c.Param("id")).First(&task).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	// Compute the next step; the ends of the chain have none
	next, valid := step(task.Status)
	if !valid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No transition from status " + task.Status})
		return
	}
	task.Status = next // Apply the transition
	// Save the row
	if err := db.Save(&task).Error; err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": userID,      // User ID
			"task_id": task.ID,     // Row being moved
			"error":   err.Error(), // Error message
		}).Error("Failed to move task")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to move task"})
		return
	}
	invalidateViews(c, userID)           // Derived views must recompute
	c.JSON(http.StatusOK, gin.H{"task": task}) // Return the moved row
}

// AdvanceTaskHandler moves a task forward: todo -> in_progress -> done
func AdvanceTaskHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		shiftTaskStatus(db, c, rollup.NextTaskStatus)
	}
}

// RevertTaskHandler moves a task backward: done -> in_progress -> todo
func RevertTaskHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		shiftTaskStatus(db, c, rollup.PrevTaskStatus)
	}
}
