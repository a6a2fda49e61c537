package analyticsValidator

import (
	"net/url"
	"strings"

	"github.com/KhushiYadav18/ET-learning-project/middleware"

	"github.com/gofiber/fiber/v2"
)

// Helper to validate absolute URLs
func isValidURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// PageView validates the page view event payload
func PageView() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			PageURL     string `json:"pageUrl"`
			PageTitle   string `json:"pageTitle"`
			ReferrerURL string `json:"referrerUrl"`
			UserAgent   string `json:"userAgent"`
			TimeOnPage  int64  `json:"timeOnPage"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if !isValidURL(reqData.PageURL) {
			errors["pageUrl"] = "A valid page URL is required!"
		}
		if reqData.ReferrerURL != "" && !isValidURL(reqData.ReferrerURL) {
			errors["referrerUrl"] = "Referrer URL must be a valid URL!"
		}
		if reqData.TimeOnPage < 0 {
			errors["timeOnPage"] = "Time on page must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPageView", reqData)
		return c.Next()
	}
}

// Click validates the click event payload
func Click() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			PageURL          string                 `json:"pageUrl"`
			ElementID        string                 `json:"elementId"`
			ElementClass     string                 `json:"elementClass"`
			ElementText      string                 `json:"elementText"`
			ClickCoordinates map[string]interface{} `json:"clickCoordinates"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if !isValidURL(reqData.PageURL) {
			errors["pageUrl"] = "A valid page URL is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedClick", reqData)
		return c.Next()
	}
}

// Video validates the video interaction event payload
func Video() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ModuleID   uint    `json:"moduleId"`
			VideoURL   string  `json:"videoUrl"`
			ActionType string  `json:"actionType"`
			VideoTime  float64 `json:"videoTime"`
			Duration   float64 `json:"duration"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ModuleID == 0 {
			errors["moduleId"] = "Module ID is required!"
		}
		if !isValidURL(reqData.VideoURL) {
			errors["videoUrl"] = "A valid video URL is required!"
		}
		switch strings.ToLower(reqData.ActionType) {
		case "play", "pause", "seek", "complete", "stop":
		default:
			errors["actionType"] = "Action type must be play, pause, seek, complete or stop!"
		}
		if reqData.VideoTime < 0 || reqData.Duration < 0 {
			errors["videoTime"] = "Video time and duration must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedVideo", reqData)
		return c.Next()
	}
}

// Quiz validates the quiz attempt event payload
func Quiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ModuleID       uint                   `json:"moduleId"`
			TimeSpent      int64                  `json:"timeSpent"`
			Score          *float64               `json:"score"`
			TotalQuestions int                    `json:"totalQuestions"`
			CorrectAnswers int                    `json:"correctAnswers"`
			Answers        map[string]interface{} `json:"answers"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ModuleID == 0 {
			errors["moduleId"] = "Module ID is required!"
		}
		if reqData.TimeSpent < 0 {
			errors["timeSpent"] = "Time spent must not be negative!"
		}
		if reqData.Score != nil && (*reqData.Score < 0 || *reqData.Score > 100) {
			errors["score"] = "Score must be between 0 and 100!"
		}
		if reqData.CorrectAnswers < 0 || reqData.TotalQuestions < 0 {
			errors["totalQuestions"] = "Question counts must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}
