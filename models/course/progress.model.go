package course

import (
	"time"

	"gorm.io/gorm"
)

// ProgressStatus is the closed set of per-module progress states
type ProgressStatus string

const (
	StatusNotStarted ProgressStatus = "not_started"
	StatusInProgress ProgressStatus = "in_progress"
	StatusCompleted  ProgressStatus = "completed"
)

// Valid reports whether s is a known progress status
func (s ProgressStatus) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// ProgressRecord tracks a user's state on a single module. At most one row
// exists per (user, module), enforced by the unique index; TimeSpent only
// ever grows by accumulation.
type ProgressRecord struct {
	gorm.Model
	UserID    uint           `json:"user_id" gorm:"not null;index:idx_user_module,unique"`
	ModuleID  uint           `json:"module_id" gorm:"not null;index:idx_user_module,unique"`
	Status    ProgressStatus `json:"status" gorm:"type:varchar(15);default:'not_started'"`
	StartedAt time.Time      `json:"started_at"`
	TimeSpent int64          `json:"time_spent" gorm:"default:0"` // cumulative seconds
	Score     *float64       `json:"score"`                       // 0-100, nullable
	Attempts  int            `json:"attempts" gorm:"default:1"`
}
