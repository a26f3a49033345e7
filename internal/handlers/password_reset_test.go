package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestResetAcceptedResponse(t *testing.T) {
	app := fiber.New()
	app.Post("/forgot", resetAccepted)

	resp, err := app.Test(httptest.NewRequest("POST", "/forgot", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if !body.Success || body.Message == "" {
		t.Fatalf("unexpected body: %+v", body)
	}
}
