package ledger

import (
	"errors"
	"math"
	"time"

	courseModels "github.com/KhushiYadav18/ET-learning-project/models/course"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Service owns enrollment and per-module progress records. It derives the
// aggregate completion percentage from progress rows and keeps the
// enrollment in sync. Construct with New; the storage handle is injected,
// never global.
type Service struct {
	db *gorm.DB
}

// New returns a ledger service backed by db
func New(db *gorm.DB) *Service {
	return &Service{db: db}
}

// ProgressSnapshot is the result of a progress update
type ProgressSnapshot struct {
	ProgressPercentage float64 `json:"progress_percentage"`
	CurrentModuleID    *uint   `json:"current_module_id"`
}

// ModuleProgress is one row of the course progress read model. The module
// fields are authoritative; the progress fields fall back to defaults when
// the user has no record for the module yet.
type ModuleProgress struct {
	ModuleID   uint                        `json:"module_id"`
	Title      string                      `json:"title"`
	ModuleType courseModels.ModuleType     `json:"module_type"`
	OrderIndex int                         `json:"order_index"`
	Status     courseModels.ProgressStatus `json:"status"`
	TimeSpent  int64                       `json:"time_spent"`
	Score      *float64                    `json:"score"`
	Attempts   int                         `json:"attempts"`
}

// CourseProgress is the full progress view for one (user, course)
type CourseProgress struct {
	OverallPercentage float64          `json:"overall_percentage"`
	CurrentModuleID   *uint            `json:"current_module_id"`
	Modules           []ModuleProgress `json:"modules"`
}

// Enroll creates an enrollment for the user in a published course. The
// second and subsequent calls for the same pair fail with ErrAlreadyEnrolled;
// a concurrent duplicate insert is caught by the (user_id, course_id) unique
// index and reported the same way.
func (s *Service) Enroll(userID, courseID uint) (*courseModels.Enrollment, error) {
	var c courseModels.Course
	if err := s.db.Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	var existing courseModels.Enrollment
	if err := s.db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&existing).Error; err == nil {
		return nil, ErrAlreadyEnrolled
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	enrollment := courseModels.Enrollment{
		UserID:             userID,
		CourseID:           courseID,
		EnrolledAt:         time.Now(),
		ProgressPercentage: 0,
	}
	if err := s.db.Create(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyEnrolled
		}
		return nil, err
	}

	return &enrollment, nil
}

// GetEnrollment fetches the enrollment for (user, course) or ErrNotEnrolled
func (s *Service) GetEnrollment(userID, courseID uint) (*courseModels.Enrollment, error) {
	var enrollment courseModels.Enrollment
	if err := s.db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotEnrolled
		}
		return nil, err
	}
	return &enrollment, nil
}

// RecordProgress upserts the user's progress record for a module and
// recomputes the enrollment percentage, all inside one transaction. Status
// and score are overwritten, time is accumulated; no forward-only state
// machine is enforced. Module membership in the course is the caller's
// responsibility.
func (s *Service) RecordProgress(userID, courseID, moduleID uint, status courseModels.ProgressStatus, timeSpentDelta int64, score *float64) (*ProgressSnapshot, error) {
	snapshot := &ProgressSnapshot{}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var enrollment courseModels.Enrollment
		if err := tx.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotEnrolled
			}
			return err
		}

		now := time.Now()
		record := courseModels.ProgressRecord{
			UserID:    userID,
			ModuleID:  moduleID,
			Status:    status,
			StartedAt: now,
			TimeSpent: timeSpentDelta,
			Score:     score,
			Attempts:  1,
		}

		// Atomic insert-or-update keyed by the (user_id, module_id) unique
		// index: time_spent accumulates, status and score are replaced.
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "module_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"status":     status,
				"time_spent": gorm.Expr("time_spent + ?", timeSpentDelta),
				"score":      score,
				"updated_at": now,
			}),
		}).Create(&record).Error
		if err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrConflict
			}
			return err
		}

		pct, err := completionPercentage(tx, userID, courseID)
		if err != nil {
			return err
		}

		// Single write-back: stored percentage plus the triggering module as
		// the new resume pointer.
		if err := tx.Model(&courseModels.Enrollment{}).
			Where("user_id = ? AND course_id = ?", userID, courseID).
			Updates(map[string]interface{}{
				"progress_percentage": pct,
				"current_module_id":   moduleID,
			}).Error; err != nil {
			return err
		}

		current := moduleID
		snapshot.ProgressPercentage = pct
		snapshot.CurrentModuleID = &current
		return nil
	})
	if err != nil {
		return nil, err
	}

	return snapshot, nil
}

// GetCourseProgress returns the overall percentage from the enrollment and a
// left-outer-join view of every module in the course with the user's record
// overlaid, in ascending order index.
func (s *Service) GetCourseProgress(userID, courseID uint) (*CourseProgress, error) {
	enrollment, err := s.GetEnrollment(userID, courseID)
	if err != nil {
		return nil, err
	}

	var modules []courseModels.Module
	if err := s.db.Where("course_id = ? AND is_deleted = ?", courseID, false).Order("order_index asc").Find(&modules).Error; err != nil {
		return nil, err
	}

	moduleIDs := make([]uint, len(modules))
	for i, m := range modules {
		moduleIDs[i] = m.ID
	}

	recordsByModule := make(map[uint]courseModels.ProgressRecord)
	if len(moduleIDs) > 0 {
		var records []courseModels.ProgressRecord
		if err := s.db.Where("user_id = ? AND module_id IN ?", userID, moduleIDs).Find(&records).Error; err != nil {
			return nil, err
		}
		for _, r := range records {
			recordsByModule[r.ModuleID] = r
		}
	}

	rows := make([]ModuleProgress, len(modules))
	for i, m := range modules {
		row := ModuleProgress{
			ModuleID:   m.ID,
			Title:      m.Title,
			ModuleType: m.ModuleType,
			OrderIndex: m.OrderIndex,
			Status:     courseModels.StatusNotStarted,
		}
		if r, ok := recordsByModule[m.ID]; ok {
			row.Status = r.Status
			row.TimeSpent = r.TimeSpent
			row.Score = r.Score
			row.Attempts = r.Attempts
		}
		rows[i] = row
	}

	return &CourseProgress{
		OverallPercentage: enrollment.ProgressPercentage,
		CurrentModuleID:   enrollment.CurrentModuleID,
		Modules:           rows,
	}, nil
}

// completionPercentage derives 100 * completed / total for the course. The
// module set is read fresh on every call so catalog edits change future
// computations without migration. A course with no modules yields 0.
func completionPercentage(tx *gorm.DB, userID, courseID uint) (float64, error) {
	var total int64
	if err := tx.Model(&courseModels.Module{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Count(&total).Error; err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, nil
	}

	var completed int64
	if err := tx.Model(&courseModels.ProgressRecord{}).
		Joins("JOIN modules ON modules.id = progress_records.module_id").
		Where("progress_records.user_id = ? AND modules.course_id = ? AND modules.is_deleted = ? AND progress_records.status = ?",
			userID, courseID, false, courseModels.StatusCompleted).
		Count(&completed).Error; err != nil {
		return 0, err
	}

	return round2(100 * float64(completed) / float64(total)), nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
