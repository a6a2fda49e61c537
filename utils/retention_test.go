package utils

import (
	"testing"
	"time"

	"github.com/KhushiYadav18/ET-learning-project/models/analytics"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&analytics.PageView{},
		&analytics.UserClick{},
		&analytics.VideoInteraction{},
		&analytics.QuizAttempt{},
	))
	return db
}

func TestPurgeExpiredEvents(t *testing.T) {
	db := setupDB(t)

	stale := analytics.PageView{SessionID: "old-session", PageURL: "https://example.com/old"}
	require.NoError(t, db.Create(&stale).Error)
	require.NoError(t, db.Model(&analytics.PageView{}).Where("id = ?", stale.ID).
		Update("created_at", time.Now().AddDate(0, 0, -200)).Error)

	fresh := analytics.PageView{SessionID: "new-session", PageURL: "https://example.com/new"}
	require.NoError(t, db.Create(&fresh).Error)

	PurgeExpiredEvents(db, 180)

	var remaining []analytics.PageView
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	require.Equal(t, fresh.ID, remaining[0].ID)
}

func TestRetentionSchedulerRegistersSweep(t *testing.T) {
	db := setupDB(t)

	c := InitializeRetentionScheduler(db, 180)
	defer c.Stop()

	require.Len(t, c.Entries(), 1)
}
