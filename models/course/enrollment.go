package course

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment tracks a user's enrollment in a course with aggregate progress.
// At most one row exists per (user, course), enforced by the unique index.
type Enrollment struct {
	gorm.Model
	UserID             uint       `json:"user_id" gorm:"not null;index:idx_user_course,unique"`
	CourseID           uint       `json:"course_id" gorm:"not null;index:idx_user_course,unique"`
	EnrolledAt         time.Time  `json:"enrolled_at"`
	ProgressPercentage float64    `json:"progress_percentage" gorm:"type:decimal(5,2);default:0"` // 0-100, two decimals
	CurrentModuleID    *uint      `json:"current_module_id"`                                      // advisory "resume here" pointer
	CompletedAt        *time.Time `json:"completed_at"`
	IsDeleted          bool       `json:"-" gorm:"default:false"`
}
