package ledger

import (
	"testing"

	"github.com/KhushiYadav18/ET-learning-project/database"
	courseModels "github.com/KhushiYadav18/ET-learning-project/models/course"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func seedCourse(t *testing.T, db *gorm.DB, moduleCount int) (courseModels.Course, []courseModels.Module) {
	t.Helper()

	c := courseModels.Course{Title: "Test Course", Description: "desc", IsPublished: true}
	require.NoError(t, db.Create(&c).Error)

	modules := make([]courseModels.Module, moduleCount)
	for i := range modules {
		modules[i] = courseModels.Module{
			CourseID:   c.ID,
			Title:      "Module",
			OrderIndex: i + 1,
			ModuleType: courseModels.ModuleText,
		}
	}
	if moduleCount > 0 {
		require.NoError(t, db.Create(&modules).Error)
	}
	return c, modules
}

func TestEnroll(t *testing.T) {
	db := setupDB(t)
	svc := New(db)
	c, _ := seedCourse(t, db, 3)

	enrollment, err := svc.Enroll(1, c.ID)
	require.NoError(t, err)
	require.Equal(t, float64(0), enrollment.ProgressPercentage)
	require.Nil(t, enrollment.CurrentModuleID)
	require.Nil(t, enrollment.CompletedAt)

	// Second call is an idempotent rejection, not a silent no-op
	_, err = svc.Enroll(1, c.ID)
	require.ErrorIs(t, err, ErrAlreadyEnrolled)

	var count int64
	db.Model(&courseModels.Enrollment{}).Where("user_id = ? AND course_id = ?", 1, c.ID).Count(&count)
	require.EqualValues(t, 1, count)
}

func TestEnrollCourseNotFound(t *testing.T) {
	db := setupDB(t)
	svc := New(db)

	_, err := svc.Enroll(1, 999)
	require.ErrorIs(t, err, ErrCourseNotFound)

	// Unpublished courses are invisible to enrollment
	draft := courseModels.Course{Title: "Draft", IsPublished: false}
	require.NoError(t, db.Create(&draft).Error)

	_, err = svc.Enroll(1, draft.ID)
	require.ErrorIs(t, err, ErrCourseNotFound)
}

func TestGetEnrollment(t *testing.T) {
	db := setupDB(t)
	svc := New(db)
	c, _ := seedCourse(t, db, 1)

	_, err := svc.GetEnrollment(1, c.ID)
	require.ErrorIs(t, err, ErrNotEnrolled)

	_, err = svc.Enroll(1, c.ID)
	require.NoError(t, err)

	enrollment, err := svc.GetEnrollment(1, c.ID)
	require.NoError(t, err)
	require.Equal(t, uint(1), enrollment.UserID)
	require.Equal(t, c.ID, enrollment.CourseID)
}

func TestRecordProgressRequiresEnrollment(t *testing.T) {
	db := setupDB(t)
	svc := New(db)
	c, modules := seedCourse(t, db, 1)

	_, err := svc.RecordProgress(7, c.ID, modules[0].ID, courseModels.StatusInProgress, 10, nil)
	require.ErrorIs(t, err, ErrNotEnrolled)

	// The failed call must leave no progress row behind
	var count int64
	db.Model(&courseModels.ProgressRecord{}).Count(&count)
	require.EqualValues(t, 0, count)

	_ = c
}

func TestTimeAccumulation(t *testing.T) {
	db := setupDB(t)
	svc := New(db)
	c, modules := seedCourse(t, db, 2)

	_, err := svc.Enroll(1, c.ID)
	require.NoError(t, err)

	// Time only ever accumulates, regardless of status changes in between
	deltas := []int64{100, 50, 25}
	statuses := []courseModels.ProgressStatus{
		courseModels.StatusInProgress,
		courseModels.StatusCompleted,
		courseModels.StatusInProgress,
	}
	for i, d := range deltas {
		_, err := svc.RecordProgress(1, c.ID, modules[0].ID, statuses[i], d, nil)
		require.NoError(t, err)
	}

	var record courseModels.ProgressRecord
	require.NoError(t, db.Where("user_id = ? AND module_id = ?", 1, modules[0].ID).First(&record).Error)
	require.EqualValues(t, 175, record.TimeSpent)
	require.Equal(t, courseModels.StatusInProgress, record.Status)
}

func TestScoreOverwritten(t *testing.T) {
	db := setupDB(t)
	svc := New(db)
	c, modules := seedCourse(t, db, 1)

	_, err := svc.Enroll(1, c.ID)
	require.NoError(t, err)

	first := 60.0
	_, err = svc.RecordProgress(1, c.ID, modules[0].ID, courseModels.StatusCompleted, 30, &first)
	require.NoError(t, err)

	second := 90.0
	_, err = svc.RecordProgress(1, c.ID, modules[0].ID, courseModels.StatusCompleted, 0, &second)
	require.NoError(t, err)

	var record courseModels.ProgressRecord
	require.NoError(t, db.Where("user_id = ? AND module_id = ?", 1, modules[0].ID).First(&record).Error)
	require.NotNil(t, record.Score)
	require.Equal(t, 90.0, *record.Score)
}

func TestAggregation(t *testing.T) {
	db := setupDB(t)
	svc := New(db)
	c, modules := seedCourse(t, db, 3)

	_, err := svc.Enroll(1, c.ID)
	require.NoError(t, err)

	snap, err := svc.RecordProgress(1, c.ID, modules[0].ID, courseModels.StatusCompleted, 300, nil)
	require.NoError(t, err)
	require.Equal(t, 33.33, snap.ProgressPercentage)
	require.Equal(t, modules[0].ID, *snap.CurrentModuleID)

	score := 90.0
	snap, err = svc.RecordProgress(1, c.ID, modules[1].ID, courseModels.StatusCompleted, 600, &score)
	require.NoError(t, err)
	require.Equal(t, 66.67, snap.ProgressPercentage)

	// An in-progress module does not move the percentage
	snap, err = svc.RecordProgress(1, c.ID, modules[2].ID, courseModels.StatusInProgress, 120, nil)
	require.NoError(t, err)
	require.Equal(t, 66.67, snap.ProgressPercentage)
	require.Equal(t, modules[2].ID, *snap.CurrentModuleID)

	// The stored enrollment row matches the returned snapshot
	enrollment, err := svc.GetEnrollment(1, c.ID)
	require.NoError(t, err)
	require.Equal(t, 66.67, enrollment.ProgressPercentage)
}

func TestZeroModuleCourse(t *testing.T) {
	db := setupDB(t)
	svc := New(db)
	c, _ := seedCourse(t, db, 0)

	_, err := svc.Enroll(1, c.ID)
	require.NoError(t, err)

	snap, err := svc.RecordProgress(1, c.ID, 42, courseModels.StatusCompleted, 0, nil)
	require.NoError(t, err)
	require.Equal(t, float64(0), snap.ProgressPercentage)

	progress, err := svc.GetCourseProgress(1, c.ID)
	require.NoError(t, err)
	require.Equal(t, float64(0), progress.OverallPercentage)
	require.Empty(t, progress.Modules)
}

func TestIdempotentRecompute(t *testing.T) {
	db := setupDB(t)
	svc := New(db)
	c, modules := seedCourse(t, db, 2)

	_, err := svc.Enroll(1, c.ID)
	require.NoError(t, err)

	score := 80.0
	snap1, err := svc.RecordProgress(1, c.ID, modules[0].ID, courseModels.StatusCompleted, 0, &score)
	require.NoError(t, err)

	snap2, err := svc.RecordProgress(1, c.ID, modules[0].ID, courseModels.StatusCompleted, 0, &score)
	require.NoError(t, err)
	require.Equal(t, snap1.ProgressPercentage, snap2.ProgressPercentage)

	var count int64
	db.Model(&courseModels.ProgressRecord{}).Where("user_id = ? AND module_id = ?", 1, modules[0].ID).Count(&count)
	require.EqualValues(t, 1, count)
}

func TestCatalogEditRenormalizes(t *testing.T) {
	db := setupDB(t)
	svc := New(db)
	c, modules := seedCourse(t, db, 2)

	_, err := svc.Enroll(1, c.ID)
	require.NoError(t, err)

	snap, err := svc.RecordProgress(1, c.ID, modules[0].ID, courseModels.StatusCompleted, 0, nil)
	require.NoError(t, err)
	require.Equal(t, 50.0, snap.ProgressPercentage)

	// Adding a module changes the denominator for the next recompute
	extra := courseModels.Module{CourseID: c.ID, Title: "Extra", OrderIndex: 3, ModuleType: courseModels.ModuleText}
	require.NoError(t, db.Create(&extra).Error)

	snap, err = svc.RecordProgress(1, c.ID, modules[0].ID, courseModels.StatusCompleted, 0, nil)
	require.NoError(t, err)
	require.Equal(t, 33.33, snap.ProgressPercentage)
}

func TestCourseProgressReadModel(t *testing.T) {
	db := setupDB(t)
	svc := New(db)
	c, modules := seedCourse(t, db, 3)

	_, err := svc.Enroll(1, c.ID)
	require.NoError(t, err)

	_, err = svc.RecordProgress(1, c.ID, modules[0].ID, courseModels.StatusCompleted, 300, nil)
	require.NoError(t, err)
	score := 90.0
	_, err = svc.RecordProgress(1, c.ID, modules[1].ID, courseModels.StatusCompleted, 600, &score)
	require.NoError(t, err)
	_, err = svc.RecordProgress(1, c.ID, modules[2].ID, courseModels.StatusInProgress, 120, nil)
	require.NoError(t, err)

	progress, err := svc.GetCourseProgress(1, c.ID)
	require.NoError(t, err)
	require.Equal(t, 66.67, progress.OverallPercentage)
	require.Equal(t, modules[2].ID, *progress.CurrentModuleID)
	require.Len(t, progress.Modules, 3)

	require.Equal(t, courseModels.StatusCompleted, progress.Modules[0].Status)
	require.Equal(t, courseModels.StatusCompleted, progress.Modules[1].Status)
	require.NotNil(t, progress.Modules[1].Score)
	require.Equal(t, 90.0, *progress.Modules[1].Score)
	require.Equal(t, courseModels.StatusInProgress, progress.Modules[2].Status)
	require.EqualValues(t, 120, progress.Modules[2].TimeSpent)

	// Modules without records overlay defaults
	progress2, err := svc.GetCourseProgress(2, c.ID)
	require.ErrorIs(t, err, ErrNotEnrolled)
	require.Nil(t, progress2)
}

func TestProgressDefaultsForUntouchedModules(t *testing.T) {
	db := setupDB(t)
	svc := New(db)
	c, modules := seedCourse(t, db, 2)

	_, err := svc.Enroll(1, c.ID)
	require.NoError(t, err)

	_, err = svc.RecordProgress(1, c.ID, modules[0].ID, courseModels.StatusInProgress, 60, nil)
	require.NoError(t, err)

	progress, err := svc.GetCourseProgress(1, c.ID)
	require.NoError(t, err)
	require.Len(t, progress.Modules, 2)

	untouched := progress.Modules[1]
	require.Equal(t, courseModels.StatusNotStarted, untouched.Status)
	require.EqualValues(t, 0, untouched.TimeSpent)
	require.Nil(t, untouched.Score)
	require.Equal(t, 0, untouched.Attempts)
}
