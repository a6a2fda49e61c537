package database

import (
	"log"

	courseModels "github.com/KhushiYadav18/ET-learning-project/models/course"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Seed inserts the sample catalog when the course table is empty. Safe to
// call on every startup.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&courseModels.Course{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("Seeding sample courses...")

	webDev := courseModels.Course{
		Title:             "Introduction to Web Development",
		Description:       "Learn the basics of HTML, CSS, and JavaScript",
		Category:          "Programming",
		DifficultyLevel:   "beginner",
		EstimatedDuration: 120,
		IsPublished:       true,
	}
	dataSci := courseModels.Course{
		Title:             "Data Science Fundamentals",
		Description:       "Introduction to Python, statistics, and machine learning",
		Category:          "Data Science",
		DifficultyLevel:   "intermediate",
		EstimatedDuration: 180,
		IsPublished:       true,
	}

	if err := db.Create(&webDev).Error; err != nil {
		return err
	}
	if err := db.Create(&dataSci).Error; err != nil {
		return err
	}

	modules := []courseModels.Module{
		{
			CourseID:    webDev.ID,
			Title:       "HTML Basics",
			Description: "Learn HTML structure and elements",
			OrderIndex:  1,
			ModuleType:  courseModels.ModuleText,
			Content:     "HTML is the standard markup language for creating web pages...",
		},
		{
			CourseID:    webDev.ID,
			Title:       "CSS Styling",
			Description: "Learn CSS for styling web pages",
			OrderIndex:  2,
			ModuleType:  courseModels.ModuleVideo,
			VideoURL:    "https://example.com/css-video.mp4",
			Duration:    1800,
		},
		{
			CourseID:    webDev.ID,
			Title:       "JavaScript Quiz",
			Description: "Test your JavaScript knowledge",
			OrderIndex:  3,
			ModuleType:  courseModels.ModuleQuiz,
		},
	}
	if err := db.Create(&modules).Error; err != nil {
		return err
	}

	quizModule := modules[2]
	questions := []courseModels.QuizQuestion{
		{
			ModuleID:      quizModule.ID,
			QuestionText:  "What is JavaScript?",
			QuestionType:  "multiple_choice",
			Options:       datatypes.JSON([]byte(`["A programming language","A markup language","A styling language","A database"]`)),
			CorrectAnswer: "A programming language",
			Points:        1,
			OrderIndex:    1,
		},
		{
			ModuleID:      quizModule.ID,
			QuestionText:  "JavaScript is primarily used for:",
			QuestionType:  "multiple_choice",
			Options:       datatypes.JSON([]byte(`["Server-side programming only","Client-side programming only","Both client and server-side","Database management"]`)),
			CorrectAnswer: "Both client and server-side",
			Points:        1,
			OrderIndex:    2,
		},
	}
	if err := db.Create(&questions).Error; err != nil {
		return err
	}

	log.Println("Sample data inserted successfully.")
	return nil
}
