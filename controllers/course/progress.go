package controllers

import (
	"errors"
	"log"

	"github.com/KhushiYadav18/ET-learning-project/ledger"
	"github.com/KhushiYadav18/ET-learning-project/middleware"
	courseModels "github.com/KhushiYadav18/ET-learning-project/models/course"

	"github.com/gofiber/fiber/v2"
)

// UpdateProgress records progress on a module and returns the recomputed
// course percentage
func UpdateProgress(svc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		courseID := c.Locals("courseID").(uint)

		reqData, ok := c.Locals("validatedProgress").(*struct {
			ModuleID  uint     `json:"moduleId"`
			Status    string   `json:"status"`
			TimeSpent int64    `json:"timeSpent"`
			Score     *float64 `json:"score"`
		})
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
		}

		snapshot, err := svc.RecordProgress(userID, courseID, reqData.ModuleID,
			courseModels.ProgressStatus(reqData.Status), reqData.TimeSpent, reqData.Score)
		if err != nil {
			switch {
			case errors.Is(err, ledger.ErrNotEnrolled):
				return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Not enrolled in this course!", nil)
			case errors.Is(err, ledger.ErrConflict):
				return middleware.JsonResponse(c, fiber.StatusConflict, false, "Conflicting progress update, please retry!", nil)
			}
			log.Printf("Update progress error: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
		}

		log.Printf("Progress updated for user %d in course %d: %.2f%%", userID, courseID, snapshot.ProgressPercentage)

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully!", fiber.Map{
			"progressPercentage": snapshot.ProgressPercentage,
			"currentModuleId":    snapshot.CurrentModuleID,
		})
	}
}

// GetProgress returns the user's progress across every module of the course
func GetProgress(svc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		courseID := c.Locals("courseID").(uint)

		progress, err := svc.GetCourseProgress(userID, courseID)
		if err != nil {
			if errors.Is(err, ledger.ErrNotEnrolled) {
				return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Not enrolled in this course!", nil)
			}
			log.Printf("Fetch progress error: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
			"progress": progress,
		})
	}
}
