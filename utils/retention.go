package utils

import (
	"log"
	"time"

	"github.com/KhushiYadav18/ET-learning-project/models/analytics"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// logRetention logs retention sweep events with timestamp
func logRetention(message string) {
	log.Printf("[ANALYTICS-RETENTION %s] %s", time.Now().Format(time.RFC3339), message)
}

// PurgeExpiredEvents deletes analytics events older than the retention window
func PurgeExpiredEvents(db *gorm.DB, retentionDays int) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	tables := []interface{}{
		&analytics.PageView{},
		&analytics.UserClick{},
		&analytics.VideoInteraction{},
		&analytics.QuizAttempt{},
	}

	for _, model := range tables {
		result := db.Unscoped().Where("created_at < ?", cutoff).Delete(model)
		if result.Error != nil {
			logRetention("Error purging events: " + result.Error.Error())
			continue
		}
		if result.RowsAffected > 0 {
			logRetention("Purged expired event rows")
		}
	}
}

// InitializeRetentionScheduler sets up the nightly analytics retention sweep
func InitializeRetentionScheduler(db *gorm.DB, retentionDays int) *cron.Cron {
	logRetention("Initializing analytics retention scheduler...")

	c := cron.New()

	// Run daily at 3 AM
	if _, err := c.AddFunc("0 3 * * *", func() {
		logRetention("Running daily retention sweep...")
		PurgeExpiredEvents(db, retentionDays)
	}); err != nil {
		logRetention("Error scheduling retention sweep: " + err.Error())
		return c
	}

	c.Start()
	logRetention("Retention scheduler started - runs daily at 3 AM")

	return c
}
