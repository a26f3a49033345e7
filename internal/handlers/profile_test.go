package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func profileTestApp(h *ProfileHandler) *fiber.App {
	app := fiber.New()
	app.Put("/profile", func(c *fiber.Ctx) error {
		c.Locals("currentUserID", uuid.New())
		return c.Next()
	}, h.UpdateProfile)
	return app
}

func TestUpdateProfileRejectsInvalidPhone(t *testing.T) {
	// A nil DB guarantees the handler never reached storage: an invalid
	// phone must be rejected up front.
	app := profileTestApp(NewProfileHandler(nil))

	cases := []string{
		`{"phone":"not-a-phone"}`,
		`{"phone":"1234567"}`,
		`{"phone":"123456789"}`,
		`{"phone":"1234567a"}`,
	}
	for _, body := range cases {
		req := httptest.NewRequest("PUT", "/profile", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request %s: %v", body, err)
		}
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Errorf("body %s: status = %d, want %d", body, resp.StatusCode, fiber.StatusBadRequest)
		}
	}
}
