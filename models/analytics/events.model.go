package analytics

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PageView is an append-only page view event keyed by session
type PageView struct {
	gorm.Model
	UserID      *uint  `json:"user_id" gorm:"index"` // nil for anonymous sessions
	SessionID   string `json:"session_id" gorm:"index;not null"`
	PageURL     string `json:"page_url"`
	PageTitle   string `json:"page_title"`
	ReferrerURL string `json:"referrer_url"`
	UserAgent   string `json:"user_agent"`
	IPAddress   string `json:"ip_address"`
	TimeOnPage  int64  `json:"time_on_page" gorm:"default:0"` // seconds
}

// UserClick is an append-only click event keyed by session
type UserClick struct {
	gorm.Model
	UserID           *uint          `json:"user_id" gorm:"index"`
	SessionID        string         `json:"session_id" gorm:"index;not null"`
	PageURL          string         `json:"page_url"`
	ElementID        string         `json:"element_id"`
	ElementClass     string         `json:"element_class"`
	ElementText      string         `json:"element_text"`
	ClickCoordinates datatypes.JSON `json:"click_coordinates"`
	IPAddress        string         `json:"ip_address"`
}

// VideoInteraction is an append-only video telemetry event
type VideoInteraction struct {
	gorm.Model
	UserID     *uint   `json:"user_id" gorm:"index"`
	SessionID  string  `json:"session_id" gorm:"index;not null"`
	ModuleID   uint    `json:"module_id" gorm:"index;not null"`
	VideoURL   string  `json:"video_url"`
	ActionType string  `json:"action_type"` // play, pause, seek, complete, stop
	VideoTime  float64 `json:"video_time" gorm:"default:0"`
	Duration   float64 `json:"duration" gorm:"default:0"`
	IPAddress  string  `json:"ip_address"`
}

// QuizAttempt is an append-only quiz telemetry event
type QuizAttempt struct {
	gorm.Model
	UserID         *uint          `json:"user_id" gorm:"index"`
	ModuleID       uint           `json:"module_id" gorm:"index;not null"`
	SessionID      string         `json:"session_id" gorm:"index;not null"`
	StartedAt      *time.Time     `json:"started_at"`
	CompletedAt    *time.Time     `json:"completed_at"`
	TimeSpent      int64          `json:"time_spent" gorm:"default:0"` // seconds
	Score          *float64       `json:"score"`
	TotalQuestions int            `json:"total_questions" gorm:"default:0"`
	CorrectAnswers int            `json:"correct_answers" gorm:"default:0"`
	Answers        datatypes.JSON `json:"answers"`
	IPAddress      string         `json:"ip_address"`
}
