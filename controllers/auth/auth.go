package authController

import (
	"errors"
	"log"
	"time"

	"github.com/KhushiYadav18/ET-learning-project/config"
	"github.com/KhushiYadav18/ET-learning-project/middleware"
	"github.com/KhushiYadav18/ET-learning-project/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Signup registers a new learner account
func Signup(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData, ok := c.Locals("validatedSignup").(*struct {
			Email     string `json:"email"`
			Password  string `json:"password"`
			FirstName string `json:"firstName"`
			LastName  string `json:"lastName"`
		})
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
		}

		// Check if email already exists
		if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "User with this email already exists!", nil)
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
		if err != nil {
			log.Printf("Error hashing password: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
		}

		newUser := models.User{
			Email:     reqData.Email,
			Password:  string(hashedPassword),
			FirstName: reqData.FirstName,
			LastName:  reqData.LastName,
			Role:      models.RoleLearner,
		}

		if err := db.Create(&newUser).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return middleware.JsonResponse(c, fiber.StatusConflict, false, "User with this email already exists!", nil)
			}
			log.Printf("Error saving user to database: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
		}

		token, err := middleware.GenerateJWT(newUser.ID, newUser.Email, newUser.Role)
		if err != nil {
			log.Printf("Error generating token: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
		}

		log.Printf("New user registered: %s", newUser.Email)

		return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", fiber.Map{
			"user":  newUser,
			"token": token,
		})
	}
}

// Login authenticates by email and password and issues a token
func Login(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData, ok := c.Locals("validatedLogin").(*struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		})
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
		}

		var user models.User
		if err := db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&user).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
		}

		if !user.IsActive {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Account is deactivated!", nil)
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
		}

		now := time.Now()
		db.Model(&user).Update("last_login", now)

		token, err := middleware.GenerateJWT(user.ID, user.Email, user.Role)
		if err != nil {
			log.Printf("Error generating token: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
		}

		log.Printf("User logged in: %s", user.Email)

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
			"user":  user,
			"token": token,
		})
	}
}

// Profile returns the authenticated user's account
func Profile(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		var user models.User
		if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", fiber.Map{
			"user": user,
		})
	}
}

// Logout acknowledges logout; tokens are stateless and discarded client-side
func Logout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Logout successful!", nil)
	}
}
