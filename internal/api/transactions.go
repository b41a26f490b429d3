package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"     // Time durations

	"lifedash/internal/domain" // Importing domain models
	"lifedash/internal/rollup" // Derived-metrics core
	"lifedash/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/redis/go-redis/v9"  // Redis client
	"github.com/shopspring/decimal" // Exact decimal arithmetic for money
	"github.com/sirupsen/logrus"    // Logging library
	"gorm.io/gorm"                  // GORM ORM library
)

// TransactionRequest represents a transaction create/update payload
type TransactionRequest struct {
	Date     string          `json:"date" binding:"required"`                        // ISO date
	Amount   decimal.Decimal `json:"amount"`                                         // Non-negative amount
	Type     string          `json:"type" binding:"required,oneof=income expense"`   // income or expense
	Category string          `json:"category" binding:"required"`                    // Free-text category
	Method   string          `json:"method"`                                         // Optional payment method
	Note     string          `json:"note"`                                           // Optional note
}

// validate checks the parts gin binding cannot express
func (r TransactionRequest) validate() string {
	if !utils.ValidDate(r.Date) || r.Date == "" {
		return "Invalid date" // Dates must be YYYY-MM-DD
	}
	if r.Amount.IsNegative() {
		return "Amount must not be negative" // Amounts are >= 0
	}
	return ""
}

// monthScope narrows a query to the current calendar month window
// [first day of month, today] when ?month=current is set
func monthScope(c *gin.Context, query *gorm.DB) *gorm.DB {
	if c.Query("month") == "current" {
		query = query.Where("date >= ? AND date <= ?", utils.FirstOfMonth(), utils.Today())
	}
	return query
}

// ListTransactionsHandler returns the user's transactions, paginated and
// newest-first, with Redis caching for the unfiltered listing
func ListTransactionsHandler(db *gorm.DB, rdb *redis.Client, cacheTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c) // Get userID from context
		if !ok {
			return // Unauthorized already answered
		}
		page := 1      // Default page
		pageSize := 20 // Default page size
		// If page exists in query
		if p := c.Query("page"); p != "" {
			// Convert page to integer
			if v, err := strconv.Atoi(p); err == nil && v > 0 {
				page = v // Set page if valid
			}
		}
		// If page_size exists in query
		if ps := c.Query("page_size"); ps != "" {
			// Convert page_size to integer
			if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
				pageSize = v // Set page size if valid
			}
		}
		offset := (page - 1) * pageSize // Calculate offset
		monthFiltered := c.Query("month") == "current"

		cacheKey := utils.TxPageCacheKey(userID, page, pageSize) // Redis cache key
		ctx := context.Background()                              // Context for Redis operations
		var cached struct {
			Transactions []domain.Transaction `json:"transactions"` // List of transactions
			Page         int                  `json:"page"`         // Current page
			PageSize     int                  `json:"page_size"`    // Page size
			Total        int64                `json:"total"`        // Total transactions
			TotalPages   int                  `json:"total_pages"`  // Total pages
		}
		// Only the unfiltered listing is cached (simple version)
		if !monthFiltered {
			found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
			// If found in cache, return it
			if err == nil && found {
				c.JSON(http.StatusOK, gin.H{
					"transactions": cached.Transactions, // Cached transactions
					"page":         cached.Page,         // Current page
					"page_size":    cached.PageSize,     // Page size
					"total":        cached.Total,        // Total transactions
					"total_pages":  cached.TotalPages,   // Total pages
					"cached":       true,
				})
				return
			}
		}

		query := monthScope(c, db.Model(&domain.Transaction{}).Where("user_id = ?", userID))
		var total int64 // Total count of transactions
		// Count total transactions for pagination
		if err := query.Count(&total).Error; err != nil {
			// If counting fails, return error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count transactions"})
			return
		}
		var transactions []domain.Transaction // Slice to hold transactions
		// Fetch paginated transactions
		if err := query.Order("date desc, id desc").
			Offset(offset).
			Limit(pageSize).
			Find(&transactions).Error; err != nil {
			// If fetching fails, return error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transactions"})
			return
		}
		// Calculate total pages
		totalPages := (int(total) + pageSize - 1) / pageSize
		resp := gin.H{
			"transactions": transactions, // List of transactions
			"page":         page,         // Current page
			"page_size":    pageSize,     // Page size
			"total":        total,        // Total transactions
			"total_pages":  totalPages,   // Total pages
			"cached":       false,        // Not from cache
		}
		if !monthFiltered {
			// Cache the unfiltered result
			_ = utils.SetCache(ctx, rdb, cacheKey, resp, cacheTTL)
		}
		c.JSON(http.StatusOK, resp) // Return transaction history
	}
}

// CreateTransactionHandler records a new income or expense entry
func CreateTransactionHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c) // Get userID from context
		if !ok {
			return // Unauthorized already answered
		}
		var req TransactionRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Validate date and amount
		if msg := req.validate(); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}
		// Build the owned row
		tx := domain.Transaction{
			UserID:   userID,       // Owning user
			Date:     req.Date,     // ISO date
			Amount:   req.Amount,   // Decimal amount
			Type:     req.Type,     // income or expense
			Category: req.Category, // Category
			Method:   req.Method,   // Optional method
			Note:     req.Note,     // Optional note
		}
		// Save the transaction
		if err := db.Create(&tx).Error; err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // User ID
				"error":   err.Error(), // Error message
			}).Error("Failed to create transaction")
			// Surface the write failure to the initiating request
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create transaction"})
			return
		}
		invalidateViews(c, userID)                      // Derived views must recompute
		c.JSON(http.StatusCreated, gin.H{"transaction": tx}) // Return the created row
	}
}

// UpdateTransactionHandler edits an existing transaction (last write wins)
func UpdateTransactionHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c) // Get userID from context
		if !ok {
			return // Unauthorized already answered
		}
		var req TransactionRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Validate date and amount
		if msg := req.validate(); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}
		var tx domain.Transaction // Fetch the owned row
		if err := db.Where("user_id = ? AND id = ?", userID, c.Param("id")).First(&tx).Error; err != nil {
			// Unknown or foreign row, return not found
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			return
		}
		// Apply the edit
		tx.Date = req.Date
		tx.Amount = req.Amount
		tx.Type = req.Type
		tx.Category = req.Category
		tx.Method = req.Method
		tx.Note = req.Note
		// Save the row
		if err := db.Save(&tx).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id":        userID,      // User ID
				"transaction_id": tx.ID,       // Row being edited
				"error":          err.Error(), // Error message
			}).Error("Failed to update transaction")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update transaction"})
			return
		}
		invalidateViews(c, userID)                  // Derived views must recompute
		c.JSON(http.StatusOK, gin.H{"transaction": tx}) // Return the updated row
	}
}

// DeleteTransactionHandler removes a transaction
func DeleteTransactionHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c) // Get userID from context
		if !ok {
			return // Unauthorized already answered
		}
		// Delete only within the user's scope
		res := db.Where("user_id = ? AND id = ?", userID, c.Param("id")).Delete(&domain.Transaction{})
		if res.Error != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,            // User ID
				"error":   res.Error.Error(), // Error message
			}).Error("Failed to delete transaction")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete transaction"})
			return
		}
		// No matching row means nothing was deleted
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			return
		}
		invalidateViews(c, userID)                             // Derived views must recompute
		c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted"}) // Return success response
	}
}

// FinanceSummaryHandler computes the financial rollup, optionally narrowed to
// the current month with ?month=current
func FinanceSummaryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c) // Get userID from context
		if !ok {
			return // Unauthorized already answered
		}
		var transactions []domain.Transaction // Rows feeding the rollup
		query := monthScope(c, db.Where("user_id = ?", userID))
		if err := query.Find(&transactions).Error; err != nil {
			// A failed read is surfaced, never silently zeroed
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transactions"})
			return
		}
		// All arithmetic happens in the pure rollup core
		c.JSON(http.StatusOK, gin.H{"summary": rollup.SummarizeFinances(transactions)})
	}
}
