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

// ContactRequest represents a professional contact create/update payload
type ContactRequest struct {
	Name        string `json:"name" binding:"required"` // Contact name
	Company     string `json:"company"`                 // Optional company
	Role        string `json:"role"`                    // Optional role
	LastContact string `json:"last_contact"`            // Optional ISO date
	NextContact string `json:"next_contact"`            // Optional ISO date
	Notes       string `json:"notes"`                   // Optional notes
	Industry    string `json:"industry"`                // Optional industry
	Email       string `json:"email"`                   // Optional email
	Phone       string `json:"phone"`                   // Optional phone
}

// validate checks the date fields
func (r ContactRequest) validate() string {
	if !utils.ValidDate(r.LastContact) || !utils.ValidDate(r.NextContact) {
		return "Invalid contact date" // Dates must be YYYY-MM-DD
	}
	return ""
}

// apply copies the payload onto a contact row
func (r ContactRequest) apply(contact *domain.ProfessionalContact) {
	contact.Name = r.Name
	contact.Company = r.Company
	contact.Role = r.Role
	contact.LastContact = r.LastContact
	contact.NextContact = r.NextContact
	contact.Notes = r.Notes
	contact.Industry = r.Industry
	contact.Email = r.Email
	contact.Phone = r.Phone
}

// ListContactsHandler returns the user's professional contacts
func ListContactsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c) // Get userID from context
		if !ok {
			return // Unauthorized already answered
		}
		var contacts []domain.ProfessionalContact // Slice to hold contacts
		// Fetch contacts scoped to the user, by name
		if err := db.Where("user_id = ?", userID).Order("name asc").Find(&contacts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contacts"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"contacts": contacts}) // Return the contacts
	}
}

// UpcomingContactsHandler returns contacts whose next follow-up is today or
// later, soonest first
func UpcomingContactsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c) // Get userID from context
		if !ok {
			return // Unauthorized already answered
		}
		var contacts []domain.ProfessionalContact // Rows feeding the derivation
		if err := db.Where("user_id = ?", userID).Find(&contacts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contacts"})
			return
		}
		// The boundary-inclusive filter and ordering live in the rollup core
		c.JSON(http.StatusOK, gin.H{"contacts": rollup.UpcomingContacts(contacts, utils.Today())})
	}
}

// CreateContactHandler records a new professional contact
func CreateContactHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c) // Get userID from context
		if !ok {
			return // Unauthorized already answered
		}
		var req ContactRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Validate the date fields
		if msg := req.validate(); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}
		contact := domain.ProfessionalContact{UserID: userID} // Build the owned row
		req.apply(&contact)                                   // Copy the payload
		// Save the contact
		if err := db.Create(&contact).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // User ID
				"error":   err.Error(), // Error message
			}).Error("Failed to create contact")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create contact"})
			return
		}
		invalidateViews(c, userID)                      // Derived views must recompute
		c.JSON(http.StatusCreated, gin.H{"contact": contact}) // Return the created row
	}
}

// UpdateContactHandler edits an existing professional contact
func UpdateContactHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c) // Get userID from context
		if !ok {
			return // Unauthorized already answered
		}
		var req ContactRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Validate the date fields
		if msg := req.validate(); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}
		var contact domain.ProfessionalContact // Fetch the owned row
		if err := db.Where("user_id = ? AND id = ?", userID, c.Param("id")).First(&contact).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
			return
		}
		req.apply(&contact) // Copy the payload
		// Save the row
		if err := db.Save(&contact).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id":    userID,      // User ID
				"contact_id": contact.ID,  // Row being edited
				"error":      err.Error(), // Error message
			}).Error("Failed to update contact")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update contact"})
			return
		}
		invalidateViews(c, userID)                 // Derived views must recompute
		c.JSON(http.StatusOK, gin.H{"contact": contact}) // Return the updated row
	}
}

// DeleteContactHandler removes a professional contact
func DeleteContactHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c) // Get userID from context
		if !ok {
			return // Unauthorized already answered
		}
		// Delete only within the user's scope
		res := db.Where("user_id = ? AND id = ?", userID, c.Param("id")).Delete(&domain.ProfessionalContact{})
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete contact"})
			return
		}
		// No matching row means nothing was deleted
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
			return
		}
		invalidateViews(c, userID)                         // Derived views must recompute
		c.JSON(http.StatusOK, gin.H{"message": "Contact deleted"}) // Return success response
	}
}
