package course

import "gorm.io/gorm"

// ModuleType is the closed set of module content types
type ModuleType string

const (
	ModuleText  ModuleType = "text"
	ModuleVideo ModuleType = "video"
	ModuleQuiz  ModuleType = "quiz"
)

// Valid reports whether t is a known module type
func (t ModuleType) Valid() bool {
	switch t {
	case ModuleText, ModuleVideo, ModuleQuiz:
		return true
	}
	return false
}

// Module represents an addressable unit of content within a course
type Module struct {
	gorm.Model
	CourseID    uint       `json:"course_id" gorm:"index;not null"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	OrderIndex  int        `json:"order_index" gorm:"default:0"` // Module order in course
	ModuleType  ModuleType `json:"module_type" gorm:"type:varchar(10);default:'text'"`
	Content     string     `json:"content,omitempty" gorm:"type:text"` // For text modules
	VideoURL    string     `json:"video_url,omitempty"`                // For video modules
	Duration    int64      `json:"duration" gorm:"default:0"`          // video length in seconds
	IsDeleted   bool       `json:"-" gorm:"default:false"`
}
