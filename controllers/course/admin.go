package controllers

import (
	"github.com/KhushiYadav18/ET-learning-project/middleware"
	courseModels "github.com/KhushiYadav18/ET-learning-project/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateCourse creates a new unpublished course (instructor/admin only)
func CreateCourse(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData, ok := c.Locals("validatedCourse").(*struct {
			Title             string `json:"title"`
			Description       string `json:"description"`
			Category          string `json:"category"`
			DifficultyLevel   string `json:"difficulty_level"`
			EstimatedDuration int64  `json:"estimated_duration"`
			ThumbnailURL      string `json:"thumbnail_url"`
		})
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
		}

		course := courseModels.Course{
			Title:             reqData.Title,
			Description:       reqData.Description,
			Category:          reqData.Category,
			DifficultyLevel:   reqData.DifficultyLevel,
			EstimatedDuration: reqData.EstimatedDuration,
			ThumbnailURL:      reqData.ThumbnailURL,
			IsPublished:       false,
		}

		if err := db.Create(&course).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
	}
}

// UpdateCourse updates the provided fields of an existing course
func UpdateCourse(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID := c.Locals("courseID").(uint)

		var course courseModels.Course
		if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}

		reqData, ok := c.Locals("validatedCourseUpdate").(*struct {
			Title             string `json:"title"`
			Description       string `json:"description"`
			Category          string `json:"category"`
			DifficultyLevel   string `json:"difficulty_level"`
			EstimatedDuration int64  `json:"estimated_duration"`
			ThumbnailURL      string `json:"thumbnail_url"`
		})
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
		}

		// Update only provided fields
		if reqData.Title != "" {
			course.Title = reqData.Title
		}
		if reqData.Description != "" {
			course.Description = reqData.Description
		}
		if reqData.Category != "" {
			course.Category = reqData.Category
		}
		if reqData.DifficultyLevel != "" {
			course.DifficultyLevel = reqData.DifficultyLevel
		}
		if reqData.EstimatedDuration > 0 {
			course.EstimatedDuration = reqData.EstimatedDuration
		}
		if reqData.ThumbnailURL != "" {
			course.ThumbnailURL = reqData.ThumbnailURL
		}

		if err := db.Save(&course).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
	}
}

// CreateModule attaches a module to a course
func CreateModule(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID := c.Locals("courseID").(uint)

		var course courseModels.Course
		if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}

		reqData, ok := c.Locals("validatedModule").(*struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			OrderIndex  int    `json:"order_index"`
			ModuleType  string `json:"module_type"`
			Content     string `json:"content"`
			VideoURL    string `json:"video_url"`
			Duration    int64  `json:"duration"`
		})
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
		}

		module := courseModels.Module{
			CourseID:    courseID,
			Title:       reqData.Title,
			Description: reqData.Description,
			OrderIndex:  reqData.OrderIndex,
			ModuleType:  courseModels.ModuleType(reqData.ModuleType),
			Content:     reqData.Content,
			VideoURL:    reqData.VideoURL,
			Duration:    reqData.Duration,
		}

		if err := db.Create(&module).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create module!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created successfully!", module)
	}
}

// PublishCourse makes a course visible to learners
func PublishCourse(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID := c.Locals("courseID").(uint)

		var course courseModels.Course
		if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}

		if err := db.Model(&course).Update("is_published", true).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to publish course!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Course published successfully!", course)
	}
}
