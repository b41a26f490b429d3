package api

import (
	"net/http" // HTTP status codes

	"lifedash/internal/domain" // Importing domain models
	"lifedash/internal/rollup" // Derived-metrics core

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// LibraryItemRequest represents a library item create/update payload
type LibraryItemRequest struct {
	Title   string `json:"title" binding:"required"`                                            // Resource title
	Type    string `json:"type" binding:"required,oneof=article course book video note other"`  // Resource type
	Topic   string `json:"topic"`                                                               // Optional topic
	Source  string `json:"source"`                                                              // Optional source
	Link    string `json:"link"`                                                                // Optional URL
	Tags    string `json:"tags"`                                                                // Comma-separated tags
	Summary string `json:"summary"`                                                             // Optional summary
	Insight string `json:"insight"`                                                             // Optional takeaway
	Status  string `json:"status" binding:"required,oneof=pending in_progress completed archived"` // Item status
}

// libraryScope applies the independent status/type equality filters from the
// query string. Filtering is a pure narrowing with no interaction effects.
func libraryScope(c *gin.Context, query *gorm.DB) *gorm.DB {
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status) // Filter by status
	}
	if itemType := c.Query("type"); itemType != "" {
		query = query.Where("type = ?", itemType) // Filter by type
	}
	return query
}

// ListLibraryHandler returns the user's library items with optional
// status/type filters
func ListLibraryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c) // Get userID from context
		if !ok {
			return // Unauthorized already answered
		}
		var items []domain.LibraryItem // Slice to hold items
		query := libraryScope(c, db.Where("user_id = ?", userID))
		// Fetch items, newest first
		if err := query.Order("created_at desc").Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch library items"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items}) // Return the items
	}
}

// CreateLibraryItemHandler records a new library item
func CreateLibraryItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c) // Get userID from context
		if !ok {
			return // Unauthorized already answered
		}
		var req LibraryItemRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Build the owned row
		item := domain.LibraryItem{
			UserID:  userID,      // Owning user
			Title:   req.Title,   // Title
			Type:    req.Type,    // Type
			Topic:   req.Topic,   // Optional topic
			Source:  req.Source,  // Optional source
			Link:    req.Link,    // Optional URL
			Tags:    req.Tags,    // Tags
			Summary: req.Summary, // Optional summary
			Insight: req.Insight, // Optional takeaway
			Status:  req.Status,  // Status
		}
		// Save the item
		if err := db.Create(&item).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // User ID
				"error":   err.Error(), // Error message
			}).Error("Failed to create library item")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create library item"})
			return
		}
		invalidateViews(c, userID)                // Derived views must recompute
		c.JSON(http.StatusCreated, gin.H{"item": item}) // Return the created row
	}
}

// UpdateLibraryItemHandler edits an existing library item
func UpdateLibraryItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c) // Get userID from context
		if !ok {
			return // Unauthorized already answered
		}
		var req LibraryItemRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		var item domain.LibraryItem // Fetch the owned row
		if err := db.Where("user_id = ? AND id = ?", userID, c.Param("id")).First(&item).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Library item not found"})
			return
		}
		// Apply the edit
		item.Title = req.Title
		item.Type = req.Type
		item.Topic = req.Topic
		item.Source = req.Source
		item.Link = req.Link
		item.Tags = req.Tags
		item.Summary = req.Summary
		item.Insight = req.Insight
		item.Status = req.Status
		// Save the row
		if err := db.Save(&item).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // User ID
				"item_id": item.ID,     // Row being edited
				"error":   err.Error(), // Error message
			}).Error("Failed to update library item")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update library item"})
			return
		}
		invalidateViews(c, userID)           // Derived views must recompute
		c.JSON(http.StatusOK, gin.H{"item": item}) // Return the updated row
	}
}

// DeleteLibraryItemHandler removes a library item
func DeleteLibraryItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c) // Get userID from context
		if !ok {
			return // Unauthorized already answered
		}
		// Delete only within the user's scope
		res := db.Where("user_id = ? AND id = ?", userID, c.Param("id")).Delete(&domain.LibraryItem{})
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete library item"})
			return
		}
		// No matching row means nothing was deleted
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Library item not found"})
			return
		}
		invalidateViews(c, userID)                              // Derived views must recompute
		c.JSON(http.StatusOK, gin.H{"message": "Library item deleted"}) // Return success response
	}
}

// LibrarySummaryHandler computes the library rollup over the optionally
// filtered item set
func LibrarySummaryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c) // Get userID from context
		if !ok {
			return // Unauthorized already answered
		}
		var items []domain.LibraryItem // Rows feeding the rollup
		query := libraryScope(c, db.Where("user_id = ?", userID))
		if err := query.Find(&items).Error; err != nil {
			// A failed read is surfaced, never silently zeroed
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch library items"})
			return
		}
		// All tallies happen in the pure rollup core
		c.JSON(http.StatusOK, gin.H{"summary": rollup.SummarizeLibrary(items)})
	}
}
