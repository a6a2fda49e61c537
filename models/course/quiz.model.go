package course

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QuizQuestion represents a question belonging to a quiz module
type QuizQuestion struct {
	gorm.Model
	ModuleID      uint           `json:"module_id" gorm:"index;not null"`
	QuestionText  string         `json:"question_text" gorm:"type:text"`
	QuestionType  string         `json:"question_type" gorm:"default:'multiple_choice'"`
	Options       datatypes.JSON `json:"options"` // JSON array of option strings
	CorrectAnswer string         `json:"correct_answer,omitempty"`
	Points        int            `json:"points" gorm:"default:1"`
	OrderIndex    int            `json:"order_index" gorm:"default:0"`
	IsDeleted     bool           `json:"-" gorm:"default:false"`
}
