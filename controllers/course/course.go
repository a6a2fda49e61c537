package controllers

import (
	"github.com/KhushiYadav18/ET-learning-project/middleware"
	courseModels "github.com/KhushiYadav18/ET-learning-project/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ModuleWithQuestions attaches quiz questions to quiz modules
type ModuleWithQuestions struct {
	courseModels.Module
	Questions []courseModels.QuizQuestion `json:"questions,omitempty"`
}

// GetAllCourses lists published courses, newest first
func GetAllCourses(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var courses []courseModels.Course
		if err := db.Where("is_published = ? AND is_deleted = ?", true, false).
			Order("created_at desc").Find(&courses).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
			"courses": courses,
		})
	}
}

// GetCourseDetails returns a published course with its modules in order.
// Quiz modules carry their questions with the correct answers stripped.
func GetCourseDetails(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID := c.Locals("courseID").(uint)

		var course courseModels.Course
		if err := db.Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).First(&course).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}

		var modules []courseModels.Module
		if err := db.Where("course_id = ? AND is_deleted = ?", courseID, false).
			Order("order_index asc").Find(&modules).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
		}

		result := make([]ModuleWithQuestions, len(modules))
		for i, m := range modules {
			result[i] = ModuleWithQuestions{Module: m}

			if m.ModuleType == courseModels.ModuleQuiz {
				var questions []courseModels.QuizQuestion
				if err := db.Where("module_id = ? AND is_deleted = ?", m.ID, false).
					Order("order_index asc").Find(&questions).Error; err != nil {
					return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
				}
				// Don't show answers to learners
				for j := range questions {
					questions[j].CorrectAnswer = ""
				}
				result[i].Questions = questions
			}
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
			"course":  course,
			"modules": result,
		})
	}
}
