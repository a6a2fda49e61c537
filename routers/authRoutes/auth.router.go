package authRoutes

import (
	authControllers "github.com/KhushiYadav18/ET-learning-project/controllers/auth"
	"github.com/KhushiYadav18/ET-learning-project/middleware"
	authValidators "github.com/KhushiYadav18/ET-learning-project/validators/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	authGroup := app.Group("/api/auth")

	authGroup.Post("/register", authValidators.Signup(), authControllers.Signup(db))
	authGroup.Post("/login", authValidators.Login(), authControllers.Login(db))
	authGroup.Get("/profile", middleware.JWTMiddleware, authControllers.Profile(db))
	authGroup.Post("/logout", middleware.JWTMiddleware, authControllers.Logout())
}
