package courseValidator

import (
	"strconv"
	"strings"

	"github.com/KhushiYadav18/ET-learning-project/middleware"
	courseModels "github.com/KhushiYadav18/ET-learning-project/models/course"

	"github.com/gofiber/fiber/v2"
)

// CourseID validates the :id route parameter and stores it as a uint
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("id"))
		if courseIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", uint(courseID))
		return c.Next()
	}
}

// CreateCourse validates the course creation payload
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title             string `json:"title"`
			Description       string `json:"description"`
			Category          string `json:"category"`
			DifficultyLevel   string `json:"difficulty_level"`
			EstimatedDuration int64  `json:"estimated_duration"`
			ThumbnailURL      string `json:"thumbnail_url"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Title
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		} else if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		// Validate Description
		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		}

		// Validate DifficultyLevel
		switch reqData.DifficultyLevel {
		case "", "beginner", "intermediate", "advanced":
		default:
			errors["difficulty_level"] = "Difficulty must be beginner, intermediate or advanced!"
		}

		if reqData.EstimatedDuration < 0 {
			errors["estimated_duration"] = "Estimated duration must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse validates the partial course update payload
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title             string `json:"title"`
			Description       string `json:"description"`
			Category          string `json:"category"`
			DifficultyLevel   string `json:"difficulty_level"`
			EstimatedDuration int64  `json:"estimated_duration"`
			ThumbnailURL      string `json:"thumbnail_url"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		switch reqData.DifficultyLevel {
		case "", "beginner", "intermediate", "advanced":
		default:
			errors["difficulty_level"] = "Difficulty must be beginner, intermediate or advanced!"
		}

		if reqData.EstimatedDuration < 0 {
			errors["estimated_duration"] = "Estimated duration must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

// CreateModule validates the module creation payload
func CreateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			OrderIndex  int    `json:"order_index"`
			ModuleType  string `json:"module_type"`
			Content     string `json:"content"`
			VideoURL    string `json:"video_url"`
			Duration    int64  `json:"duration"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}

		if reqData.ModuleType == "" {
			reqData.ModuleType = string(courseModels.ModuleText)
		} else if !courseModels.ModuleType(reqData.ModuleType).Valid() {
			errors["module_type"] = "Module type must be text, video or quiz!"
		}

		if reqData.OrderIndex < 0 {
			errors["order_index"] = "Order index must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}
