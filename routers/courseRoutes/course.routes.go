package courseRoutes

import (
	controllers "github.com/KhushiYadav18/ET-learning-project/controllers/course"
	"github.com/KhushiYadav18/ET-learning-project/ledger"
	"github.com/KhushiYadav18/ET-learning-project/middleware"
	"github.com/KhushiYadav18/ET-learning-project/models"
	validators "github.com/KhushiYadav18/ET-learning-project/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupCourseRoutes sets up catalog, enrollment and progress routes
func SetupCourseRoutes(app *fiber.App, db *gorm.DB, svc *ledger.Service) {
	courseGroup := app.Group("/api/courses")

	// Catalog (published courses)
	courseGroup.Get("/", controllers.GetAllCourses(db))

	// Enrollment list must be registered before the :id routes
	courseGroup.Get("/enrolled/list", middleware.JWTMiddleware, controllers.GetEnrollments(db))

	// Instructor course management
	courseGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor, models.RoleAdmin),
		validators.CreateCourse(), controllers.CreateCourse(db))
	courseGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor, models.RoleAdmin),
		validators.CourseID(), validators.UpdateCourse(), controllers.UpdateCourse(db))
	courseGroup.Post("/:id/modules", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor, models.RoleAdmin),
		validators.CourseID(), validators.CreateModule(), controllers.CreateModule(db))
	courseGroup.Put("/:id/publish", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor, models.RoleAdmin),
		validators.CourseID(), controllers.PublishCourse(db))

	// Course details
	courseGroup.Get("/:id", validators.CourseID(), controllers.GetCourseDetails(db))

	// Enrollment
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.CourseID(), controllers.EnrollInCourse(svc))

	// Progress tracking
	courseGroup.Post("/:id/progress", middleware.JWTMiddleware, validators.CourseID(), validators.UpdateProgress(), controllers.UpdateProgress(svc))
	courseGroup.Get("/:id/progress", middleware.JWTMiddleware, validators.CourseID(), controllers.GetProgress(svc))
}
