package courseValidator

import (
	"github.com/KhushiYadav18/ET-learning-project/middleware"
	courseModels "github.com/KhushiYadav18/ET-learning-project/models/course"

	"github.com/gofiber/fiber/v2"
)

// UpdateProgress validates the progress update payload
func UpdateProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ModuleID  uint     `json:"moduleId"`
			Status    string   `json:"status"`
			TimeSpent int64    `json:"timeSpent"`
			Score     *float64 `json:"score"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ModuleID == 0 {
			errors["moduleId"] = "Module ID is required!"
		}

		if !courseModels.ProgressStatus(reqData.Status).Valid() {
			errors["status"] = "Status must be not_started, in_progress or completed!"
		}

		if reqData.TimeSpent < 0 {
			errors["timeSpent"] = "Time spent must not be negative!"
		}

		if reqData.Score != nil && (*reqData.Score < 0 || *reqData.Score > 100) {
			errors["score"] = "Score must be between 0 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}
