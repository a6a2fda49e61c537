package courseValidator

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func validatorApp() *fiber.App {
	app := fiber.New()
	app.Post("/progress", UpdateProgress(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func postProgress(t *testing.T, app *fiber.App, body string) int {
	t.Helper()

	req := httptest.NewRequest("POST", "/progress", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestUpdateProgressValidation(t *testing.T) {
	app := validatorApp()

	cases := []struct {
		name string
		body string
		want int
	}{
		{"valid", `{"moduleId":1,"status":"in_progress","timeSpent":60}`, fiber.StatusOK},
		{"valid with score", `{"moduleId":1,"status":"completed","timeSpent":0,"score":85.5}`, fiber.StatusOK},
		{"missing module id", `{"status":"in_progress"}`, fiber.StatusUnprocessableEntity},
		{"unknown status", `{"moduleId":1,"status":"done"}`, fiber.StatusUnprocessableEntity},
		{"empty status", `{"moduleId":1}`, fiber.StatusUnprocessableEntity},
		{"negative time", `{"moduleId":1,"status":"completed","timeSpent":-5}`, fiber.StatusUnprocessableEntity},
		{"score above range", `{"moduleId":1,"status":"completed","score":101}`, fiber.StatusUnprocessableEntity},
		{"score below range", `{"moduleId":1,"status":"completed","score":-1}`, fiber.StatusUnprocessableEntity},
		{"malformed body", `{"moduleId":`, fiber.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, postProgress(t, app, tc.body))
		})
	}
}
