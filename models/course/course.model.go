package course

import "gorm.io/gorm"

// Course represents a learning course
type Course struct {
	gorm.Model
	Title             string `json:"title"`
	Description       string `json:"description"`
	Category          string `json:"category"`
	DifficultyLevel   string `json:"difficulty_level" gorm:"default:'beginner'"` // beginner, intermediate, advanced
	EstimatedDuration int64  `json:"estimated_duration" gorm:"default:0"`        // duration in minutes
	ThumbnailURL      string `json:"thumbnail_url"`
	IsPublished       bool   `json:"is_published" gorm:"default:false"`
	IsDeleted         bool   `json:"-" gorm:"default:false"`
}
