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

// ProjectRequest represents a project create/update payload
type ProjectRequest struct {
	Name           string `json:"name" binding:"required"`                                                      // Project name
	Area           string `json:"area"`                                                                         // Life area
	Type           string `json:"type"`                                                                         // Optional type
	Status         string `json:"status" binding:"required,oneof=backlog in_progress blocked completed cancelled"` // Status
	Priority       string `json:"priority" binding:"required,oneof=low medium high critical"`                   // Priority
	StartDate      string `json:"start_date"`                                                                   // Optional ISO date
	Deadline       string `json:"deadline"`                                                                     // Optional ISO date
	Owner          string `json:"owner"`                                                                        // Optional owner label
	Stakeholders   string `json:"stakeholders"`                                                                 // Optional stakeholders
	ExpectedImpact string `json:"expected_impact"`                                                              // Optional impact
	Risks          string `json:"risks"`                                                                        // Optional risks
	Notes          string `json:"notes"`                                                                        // Optional notes
}

// validate checks the date fields
func (r ProjectRequest) validate() string {
	if !utils.ValidDate(r.StartDate) || !utils.ValidDate(r.Deadline) {
		return "Invalid project date" // Dates must be YYYY-MM-DD
	}
	return ""
}

// apply copies the payload onto a project row
func (r ProjectRequest) apply(project *domain.Project) {
	project.Name = r.Name
	project.Area = r.Area
	project.Type = r.Type
	project.Status = r.Status
	project.Priority = r.Priority
	project.StartDate = r.StartDate
	project.Deadline = r.Deadline
	project.Owner = r.Owner
	project.Stakeholders = r.Stakeholders
	project.ExpectedImpact = r.ExpectedImpact
	project.Risks = r.Risks
	project.Notes = r.Notes
}

// ProjectView is a project with its joined tasks and derived completion
type ProjectView struct {
	domain.Project
	Tasks      []domain.Task `json:"tasks"`      // Child tasks
	Completion int           `json:"completion"` // Done-task percentage
}

// ListProjectsHandler returns the user's projects with tasks joined and
// per-project completion derived. Projects and tasks load in parallel.
func ListProjectsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c) // Get userID from context
		if !ok {
			return // Unauthorized already answered
		}
		var projects []domain.Project // Slice to hold projects
		var tasks []domain.Task       // Slice to hold tasks
		// Fan out the two reads; both must succeed for the view
		g, ctx := errgroup.WithContext(c.Request.Context())
		g.Go(func() error {
			return db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at desc").Find(&projects).Error
		})
		g.Go(func() error {
			return db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at asc").Find(&tasks).Error
		})
		if err := g.Wait(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects"})
			return
		}
		// Join and derive in the pure rollup core
		grouped := rollup.GroupTasks(projects, tasks)
		views := make([]ProjectView, len(projects))
		for i, p := range projects {
			pt := grouped[p.ID]
			if pt == nil {
				pt = []domain.Task{} // Serialize as an empty list, not null
			}
			views[i] = ProjectView{
				Project:    p,                            // The project itself
				Tasks:      pt,                           // Joined children
				Completion: rollup.ProjectCompletion(pt), // Derived completion
			}
		}
		c.JSON(http.StatusOK, gin.H{"projects": views}) // Return the views
	}
}

// TimelineEntry is one project's row on the cross-project timeline
type TimelineEntry struct {
	Project  domain.Project `json:"project"`  // The project
	Progress int            `json:"progress"` // Elapsed-time percentage
}

// ProjectTimelineHandler derives the Gantt-style timeline: per-project
// elapsed-time progress plus the shared window
func ProjectTimelineHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c) // Get userID from context
		if !ok {
			return // Unauthorized already answered
		}
		var projects []domain.Project // Rows feeding the derivation
		if err := db.Where("user_id = ?", userID).Order("start_date asc").Find(&projects).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects"})
			return
		}
		today := utils.Today() // The timeline is anchored on today
		entries := []TimelineEntry{}
		for _, p := range projects {
			// Only projects with both dates appear on the timeline
			if p.StartDate == "" || p.Deadline == "" {
				continue
			}
			entries = append(entries, TimelineEntry{
				Project:  p,                                                       // The project
				Progress: rollup.TimelineProgress(p.StartDate, p.Deadline, today), // Elapsed-time progress
			})
		}
		windowStart, windowEnd := rollup.TimelineWindow(projects, today) // Shared window
		c.JSON(http.StatusOK, gin.H{
			"entries":      entries,     // Timeline rows
			"window_start": windowStart, // Earliest start, or today
			"window_end":   windowEnd,   // Latest deadline, min 30-day span
		})
	}
}

// CreateProjectHandler records a new project
func CreateProjectHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c) // Get userID from context
		if !ok {
			return // Unauthorized already answered
		}
		var req ProjectRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Validate the date fields
		if msg := req.validate(); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}
		project := domain.Project{UserID: userID} // Build the owned row
		req.apply(&project)                       // Copy the payload
		// Save the project
		if err := db.Create(&project).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // User ID
				"error":   err.Error(), // Error message
			}).Error("Failed to create project")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
			return
		}
		invalidateViews(c, userID)                      // Derived views must recompute
		c.JSON(http.StatusCreated, gin.H{"project": project}) // Return the created row
	}
}

// UpdateProjectHandler edits an existing project
func UpdateProjectHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c) // Get userID from context
		if !ok {
			return // Unauthorized already answered
		}
		var req ProjectRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Validate the date fields
		if msg := req.validate(); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}
		var project domain.Project // Fetch the owned row
		if err := db.Where("user_id = ? AND id = ?", userID, c.Param("id")).First(&project).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		req.apply(&project) // Copy the payload
		// Save the row
		if err := db.Save(&project).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id":    userID,      // User ID
				"project_id": project.ID,  // Row being edited
				"error":      err.Error(), // Error message
			}).Error("Failed to update project")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
			return
		}
		invalidateViews(c, userID)                 // Derived views must recompute
		c.JSON(http.StatusOK, gin.H{"project": project}) // Return the updated row
	}
}

// DeleteProjectHandler removes a project. Its tasks keep their project_id as
// a dangling soft reference and simply drop out of grouped views, matching
// the soft-ownership model.
func DeleteProjectHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c) // Get userID from context
		if !ok {
			return // Unauthorized already answered
		}
		// Delete only within the user's scope
		res := db.Where("user_id = ? AND id = ?", userID, c.Param("id")).Delete(&domain.Project{})
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
			return
		}
		// No matching row means nothing was deleted
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		invalidateViews(c, userID)                         // Derived views must recompute
		c.JSON(http.StatusOK, gin.H{"message": "Project deleted"}) // Return success response
	}
}
