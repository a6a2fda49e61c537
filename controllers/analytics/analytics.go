package analyticsController

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/KhushiYadav18/ET-learning-project/middleware"
	"github.com/KhushiYadav18/ET-learning-project/models/analytics"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// sessionID reads the caller's session from the x-session-id header or mints
// a fresh one; the id is always echoed back so the client can reuse it.
func sessionID(c *fiber.Ctx) string {
	if sid := c.Get("x-session-id"); sid != "" {
		return sid
	}
	return uuid.NewString()
}

// optionalUserID returns the authenticated user id, or nil for anonymous sessions
func optionalUserID(c *fiber.Ctx) *uint {
	if userID, ok := c.Locals("userId").(uint); ok {
		return &userID
	}
	return nil
}

// TrackPageView appends a page view event
func TrackPageView(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData, ok := c.Locals("validatedPageView").(*struct {
			PageURL     string `json:"pageUrl"`
			PageTitle   string `json:"pageTitle"`
			ReferrerURL string `json:"referrerUrl"`
			UserAgent   string `json:"userAgent"`
			TimeOnPage  int64  `json:"timeOnPage"`
		})
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
		}

		sid := sessionID(c)
		event := analytics.PageView{
			UserID:      optionalUserID(c),
			SessionID:   sid,
			PageURL:     reqData.PageURL,
			PageTitle:   reqData.PageTitle,
			ReferrerURL: reqData.ReferrerURL,
			UserAgent:   reqData.UserAgent,
			IPAddress:   c.IP(),
			TimeOnPage:  reqData.TimeOnPage,
		}

		if err := db.Create(&event).Error; err != nil {
			log.Printf("Page view tracking error: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to track page view!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Page view tracked successfully!", fiber.Map{
			"sessionId": sid,
		})
	}
}

// TrackClick appends a click event
func TrackClick(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData, ok := c.Locals("validatedClick").(*struct {
			PageURL          string                 `json:"pageUrl"`
			ElementID        string                 `json:"elementId"`
			ElementClass     string                 `json:"elementClass"`
			ElementText      string                 `json:"elementText"`
			ClickCoordinates map[string]interface{} `json:"clickCoordinates"`
		})
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
		}

		var coords datatypes.JSON
		if reqData.ClickCoordinates != nil {
			raw, _ := json.Marshal(reqData.ClickCoordinates)
			coords = datatypes.JSON(raw)
		}

		sid := sessionID(c)
		event := analytics.UserClick{
			UserID:           optionalUserID(c),
			SessionID:        sid,
			PageURL:          reqData.PageURL,
			ElementID:        reqData.ElementID,
			ElementClass:     reqData.ElementClass,
			ElementText:      reqData.ElementText,
			ClickCoordinates: coords,
			IPAddress:        c.IP(),
		}

		if err := db.Create(&event).Error; err != nil {
			log.Printf("Click tracking error: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to track click!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Click tracked successfully!", fiber.Map{
			"sessionId": sid,
		})
	}
}

// TrackVideo appends a video telemetry event
func TrackVideo(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData, ok := c.Locals("validatedVideo").(*struct {
			ModuleID   uint    `json:"moduleId"`
			VideoURL   string  `json:"videoUrl"`
			ActionType string  `json:"actionType"`
			VideoTime  float64 `json:"videoTime"`
			Duration   float64 `json:"duration"`
		})
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
		}

		sid := sessionID(c)
		event := analytics.VideoInteraction{
			UserID:     optionalUserID(c),
			SessionID:  sid,
			ModuleID:   reqData.ModuleID,
			VideoURL:   reqData.VideoURL,
			ActionType: reqData.ActionType,
			VideoTime:  reqData.VideoTime,
			Duration:   reqData.Duration,
			IPAddress:  c.IP(),
		}

		if err := db.Create(&event).Error; err != nil {
			log.Printf("Video interaction tracking error: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to track video interaction!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Video interaction tracked successfully!", fiber.Map{
			"sessionId": sid,
		})
	}
}

// TrackQuiz appends a quiz telemetry event
func TrackQuiz(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData, ok := c.Locals("validatedQuiz").(*struct {
			ModuleID       uint                   `json:"moduleId"`
			TimeSpent      int64                  `json:"timeSpent"`
			Score          *float64               `json:"score"`
			TotalQuestions int                    `json:"totalQuestions"`
			CorrectAnswers int                    `json:"correctAnswers"`
			Answers        map[string]interface{} `json:"answers"`
		})
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
		}

		var answers datatypes.JSON
		if reqData.Answers != nil {
			raw, _ := json.Marshal(reqData.Answers)
			answers = datatypes.JSON(raw)
		}

		sid := sessionID(c)
		event := analytics.QuizAttempt{
			UserID:         optionalUserID(c),
			ModuleID:       reqData.ModuleID,
			SessionID:      sid,
			TimeSpent:      reqData.TimeSpent,
			Score:          reqData.Score,
			TotalQuestions: reqData.TotalQuestions,
			CorrectAnswers: reqData.CorrectAnswers,
			Answers:        answers,
			IPAddress:      c.IP(),
		}

		if err := db.Create(&event).Error; err != nil {
			log.Printf("Quiz attempt tracking error: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to track quiz attempt!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz attempt tracked successfully!", fiber.Map{
			"sessionId": sid,
		})
	}
}

// ActivityItem is one entry in the recent-activity feed
type ActivityItem struct {
	Type      string    `json:"type"`
	URL       string    `json:"url"`
	Timestamp time.Time `json:"timestamp"`
	Score     *float64  `json:"score"`
}

// recentActivity merges the user's latest page views and quiz attempts,
// newest first, capped at limit
func recentActivity(db *gorm.DB, userID uint, limit int) ([]ActivityItem, error) {
	var views []analytics.PageView
	if err := db.Where("user_id = ?", userID).
		Order("created_at desc").Limit(limit).Find(&views).Error; err != nil {
		return nil, err
	}

	var attempts []analytics.QuizAttempt
	if err := db.Where("user_id = ?", userID).
		Order("created_at desc").Limit(limit).Find(&attempts).Error; err != nil {
		return nil, err
	}

	items := make([]ActivityItem, 0, len(views)+len(attempts))
	for _, v := range views {
		items = append(items, ActivityItem{
			Type:      "page_view",
			URL:       v.PageURL,
			Timestamp: v.CreatedAt,
		})
	}
	for _, a := range attempts {
		items = append(items, ActivityItem{
			Type:      "quiz_attempt",
			URL:       fmt.Sprintf("Quiz on module %d", a.ModuleID),
			Timestamp: a.CreatedAt,
			Score:     a.Score,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Timestamp.After(items[j].Timestamp)
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

// GetSummary returns per-user event counts and the recent-activity feed
func GetSummary(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication required for analytics summary!", nil)
		}

		var pageViews, clicks, videoInteractions, quizAttempts int64
		db.Model(&analytics.PageView{}).Where("user_id = ?", userID).Count(&pageViews)
		db.Model(&analytics.UserClick{}).Where("user_id = ?", userID).Count(&clicks)
		db.Model(&analytics.VideoInteraction{}).Where("user_id = ?", userID).Count(&videoInteractions)
		db.Model(&analytics.QuizAttempt{}).Where("user_id = ?", userID).Count(&quizAttempts)

		activity, err := recentActivity(db, userID, 10)
		if err != nil {
			log.Printf("Recent activity error: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch summary!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Summary fetched successfully!", fiber.Map{
			"summary": fiber.Map{
				"totalPageViews":         pageViews,
				"totalClicks":            clicks,
				"totalVideoInteractions": videoInteractions,
				"totalQuizAttempts":      quizAttempts,
			},
			"recentActivity": activity,
		})
	}
}
