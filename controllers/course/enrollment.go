package controllers

import (
	"errors"

	"github.com/KhushiYadav18/ET-learning-project/ledger"
	"github.com/KhushiYadav18/ET-learning-project/middleware"
	courseModels "github.com/KhushiYadav18/ET-learning-project/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// EnrollInCourse enrolls the authenticated user in a published course
func EnrollInCourse(svc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		courseID := c.Locals("courseID").(uint)

		enrollment, err := svc.Enroll(userID, courseID)
		if err != nil {
			switch {
			case errors.Is(err, ledger.ErrCourseNotFound):
				return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not published!", nil)
			case errors.Is(err, ledger.ErrAlreadyEnrolled):
				return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already enrolled in this course!", nil)
			}
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled in course successfully!", enrollment)
	}
}

// EnrolledCourse joins an enrollment with its course metadata
type EnrolledCourse struct {
	courseModels.Enrollment
	Course courseModels.Course `json:"course"`
}

// GetEnrollments lists the user's enrollments with course details, newest first
func GetEnrollments(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		var enrollments []courseModels.Enrollment
		if err := db.Where("user_id = ? AND is_deleted = ?", userID, false).
			Order("enrolled_at desc").Find(&enrollments).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
		}

		courseIDs := make([]uint, len(enrollments))
		for i, e := range enrollments {
			courseIDs[i] = e.CourseID
		}

		var courses []courseModels.Course
		if len(courseIDs) > 0 {
			if err := db.Where("id IN ?", courseIDs).Find(&courses).Error; err != nil {
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
			}
		}
		coursesByID := make(map[uint]courseModels.Course, len(courses))
		for _, course := range courses {
			coursesByID[course.ID] = course
		}

		result := make([]EnrolledCourse, len(enrollments))
		for i, e := range enrollments {
			result[i] = EnrolledCourse{Enrollment: e, Course: coursesByID[e.CourseID]}
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
			"enrolledCourses": result,
		})
	}
}
