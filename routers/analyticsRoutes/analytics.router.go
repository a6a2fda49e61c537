package analyticsRoutes

import (
	analyticsControllers "github.com/KhushiYadav18/ET-learning-project/controllers/analytics"
	"github.com/KhushiYadav18/ET-learning-project/middleware"
	analyticsValidators "github.com/KhushiYadav18/ET-learning-project/validators/analytics"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAnalyticsRoutes(app *fiber.App, db *gorm.DB) {
	analyticsGroup := app.Group("/api/analytics")

	// Event ingestion works for anonymous sessions too
	analyticsGroup.Post("/pageview", middleware.OptionalJWT, analyticsValidators.PageView(), analyticsControllers.TrackPageView(db))
	analyticsGroup.Post("/click", middleware.OptionalJWT, analyticsValidators.Click(), analyticsControllers.TrackClick(db))
	analyticsGroup.Post("/video", middleware.OptionalJWT, analyticsValidators.Video(), analyticsControllers.TrackVideo(db))
	analyticsGroup.Post("/quiz", middleware.OptionalJWT, analyticsValidators.Quiz(), analyticsControllers.TrackQuiz(db))

	analyticsGroup.Get("/summary", middleware.JWTMiddleware, analyticsControllers.GetSummary(db))
}
