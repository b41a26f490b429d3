package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"sync"     // Fan-out coordination
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

// DashboardHandler assembles the cross-domain snapshot for today and the
// current month. The sub-queries fan out concurrently and resolve
// independently: a failed read degrades its metric to unknown (JSON null)
// instead of blanking the whole snapshot. Fully-known snapshots are cached
// in Redis until the next mutation or TTL expiry.
func DashboardHandler(db *gorm.DB, rdb *redis.Client, cacheTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c) // Get userID from context
		if !ok {
			return // Unauthorized already answered
		}
		ctx := context.Background()                 // Context for Redis operations
		cacheKey := utils.DashboardCacheKey(userID) // Cache key for the snapshot
		var cached rollup.Snapshot                  // Snapshot struct to hold cached data
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
		// If found in cache, return it
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{"stats": cached, "cached": true})
			return
		}

		today := utils.Today()                // Today's calendar date
		firstOfMonth := utils.FirstOfMonth()  // Start of the month window
		midnight := utils.StartOfDayMillis()  // Local midnight for created-today checks

		// countMetric runs one count sub-query, degrading to unknown on error
		countMetric := func(name string, query *gorm.DB) rollup.Metric {
			var n int64
			if err := query.Count(&n).Error; err != nil {
				// Log the failed sub-query; the metric stays unknown, not zero
				logrus.WithFields(logrus.Fields{
					"user_id": userID,      // User ID
					"metric":  name,        // Which metric failed
					"error":   err.Error(), // Error message
				}).Warn("Dashboard sub-query failed")
				return rollup.UnknownMetric()
			}
			return rollup.KnownMetric(n)
		}
		// sumMetric runs one amount-sum sub-query over the month window
		sumMetric := func(name, txType string) rollup.MoneyMetric {
			var sum decimal.Decimal
			err := db.Model(&domain.Transaction{}).
				Where("user_id = ? AND type = ? AND date >= ? AND date <= ?", userID, txType, firstOfMonth, today).
				Select("COALESCE(SUM(amount), 0)").
				Scan(&sum).Error
			if err != nil {
				// Log the failed sub-query; the metric stays unknown, not zero
				logrus.WithFields(logrus.Fields{
					"user_id": userID,      // User ID
					"metric":  name,        // Which metric failed
					"error":   err.Error(), // Error message
				}).Warn("Dashboard sub-query failed")
				return rollup.MoneyMetric{}
			}
			return rollup.KnownMoney(sum)
		}

		var snap rollup.Snapshot    // The snapshot being assembled
		var completedLogs rollup.Metric // Completed habit logs today, feeds the rate
		var wg sync.WaitGroup       // Fan-in barrier
		// Each goroutine writes a distinct field, so no locking is needed
		run := func(f func()) {
			wg.Add(1)
			go func() {
				defer wg.Done()
				f()
			}()
		}
		run(func() { // All-time transaction count
			snap.Transactions = countMetric("transactions", db.Model(&domain.Transaction{}).Where("user_id = ?", userID))
		})
		run(func() { // Current-month income
			snap.MonthIncome = sumMetric("month_income", domain.TransactionIncome)
		})
		run(func() { // Current-month expenses
			snap.MonthExpenses = sumMetric("month_expenses", domain.TransactionExpense)
		})
		run(func() { // Library item count
			snap.LibraryItems = countMetric("library_items", db.Model(&domain.LibraryItem{}).Where("user_id = ?", userID))
		})
		run(func() { // Contact count
			snap.Contacts = countMetric("contacts", db.Model(&domain.ProfessionalContact{}).Where("user_id = ?", userID))
		})
		run(func() { // Objectives still in play
			snap.ActiveObjectives = countMetric("active_objectives", db.Model(&domain.Objective{}).
				Where("user_id = ? AND status IN ?", userID,
					[]string{domain.ObjectiveActive, domain.ObjectiveOnTrack, domain.ObjectiveAtRisk}))
		})
		run(func() { // Projects in backlog or in progress
			snap.ActiveProjects = countMetric("active_projects", db.Model(&domain.Project{}).
				Where("user_id = ? AND status IN ?", userID,
					[]string{domain.ProjectInProgress, domain.ProjectBacklog}))
		})
		run(func() { // Active habit count
			snap.ActiveHabits = countMetric("active_habits", db.Model(&domain.Habit{}).
				Where("user_id = ? AND active = ?", userID, true))
		})
		run(func() { // Tasks created today that are already done (the narrow definition)
			snap.TasksCompletedToday = countMetric("tasks_completed_today", db.Model(&domain.Task{}).
				Where("user_id = ? AND status = ? AND created_at >= ?", userID, domain.TaskDone, midnight))
		})
		run(func() { // Completed habit logs for today, input to the completion rate
			completedLogs = countMetric("habit_logs_today", db.Model(&domain.HabitLog{}).
				Where("user_id = ? AND log_date = ? AND completed = ?", userID, today, true))
		})
		wg.Wait() // Join on completion of all sub-queries

		// Derived metrics stay unknown unless their inputs resolved
		snap.MonthBalance = rollup.ComposeBalance(snap.MonthIncome, snap.MonthExpenses)
		if snap.ActiveHabits.Known && completedLogs.Known {
			rate := rollup.RoundPercent(rollup.SafePercent(float64(completedLogs.Value), float64(snap.ActiveHabits.Value)))
			snap.HabitCompletionRate = rollup.KnownMetric(int64(rate))
		}

		// Cache only fully-known snapshots so unknowns never go stale
		if snapshotKnown(snap) {
			_ = utils.SetCache(ctx, rdb, cacheKey, snap, cacheTTL)
		}
		c.JSON(http.StatusOK, gin.H{"stats": snap, "cached": false}) // Return the snapshot
	}
}

// snapshotKnown reports whether every metric in the snapshot resolved
func snapshotKnown(s rollup.Snapshot) bool {
	return s.Transactions.Known &&
		s.MonthIncome.Known &&
		s.MonthExpenses.Known &&
		s.MonthBalance.Known &&
		s.LibraryItems.Known &&
		s.Contacts.Known &&
		s.ActiveObjectives.Known &&
		s.ActiveProjects.Known &&
		s.ActiveHabits.Known &&
		s.TasksCompletedToday.Known &&
		s.HabitCompletionRate.Known
}
