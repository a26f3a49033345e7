package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/example/recarga/internal/middleware"
	"github.com/example/recarga/internal/models"
	"github.com/example/recarga/internal/utils"
)

// ProfileHandler manages user profile endpoints.
type ProfileHandler struct {
	db *gorm.DB
}

// NewProfileHandler constructs ProfileHandler.
func NewProfileHandler(db *gorm.DB) *ProfileHandler {
	return &ProfileHandler{db: db}
}

// GetProfile returns the authenticated user's profile.
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	profile, err := h.currentProfile(c)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": profile})
}

type updateProfileRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// UpdateProfile updates mutable profile fields. Email is immutable after
// creation and role changes never go through this endpoint.
func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Phone != "" {
		phone := utils.CleanPhone(req.Phone)
		if !utils.ValidPhone(phone) {
			return fiber.NewError(fiber.StatusBadRequest, "phone number must be exactly 8 digits")
		}
		updates["phone"] = phone
	}
	if len(updates) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "no fields to update")
	}
	updates["updated_at"] = time.Now()

	if err := h.db.Model(&models.Profile{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "message": "profile updated"})
}

type pushTokenRequest struct {
	PushToken string `json:"push_token"`
}

// UpdatePushToken stores the device push token for the authenticated user.
// An empty token clears it (permission revoked).
func (h *ProfileHandler) UpdatePushToken(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req pushTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.db.Model(&models.Profile{}).Where("id = ?", userID).
		Update("push_token", req.PushToken).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "message": "push token updated"})
}

// ListFavorites returns the user's favorite numbers as (label, number) pairs.
func (h *ProfileHandler) ListFavorites(c *fiber.Ctx) error {
	profile, err := h.currentProfile(c)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    models.ParseFavorites(profile.FavoriteNumbers),
	})
}

type addFavoriteRequest struct {
	Label  string `json:"label"`
	Number string `json:"number"`
}

// AddFavorite saves a favorite number. Duplicates by number are rejected
// without mutating the stored list.
func (h *ProfileHandler) AddFavorite(c *fiber.Ctx) error {
	profile, err := h.currentProfile(c)
	if err != nil {
		return err
	}

	var req addFavoriteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Label == "" {
		return fiber.NewError(fiber.StatusBadRequest, "label is required")
	}

	number := utils.CleanPhone(req.Number)
	if !utils.ValidPhone(number) {
		return fiber.NewError(fiber.StatusBadRequest, "phone number must be exactly 8 digits")
	}

	updated, err := models.AddFavorite(profile.FavoriteNumbers, req.Label, number)
	if err == models.ErrFavoriteExists {
		return fiber.NewError(fiber.StatusConflict, "this number is already a favorite")
	}
	if err != nil {
		return err
	}

	if err := h.db.Model(profile).Update("favorite_numbers", pq.StringArray(updated)).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    models.ParseFavorites(updated),
	})
}

// RemoveFavorite deletes the favorite matching the number path parameter.
func (h *ProfileHandler) RemoveFavorite(c *fiber.Ctx) error {
	profile, err := h.currentProfile(c)
	if err != nil {
		return err
	}

	number := utils.CleanPhone(c.Params("number"))
	updated, removed := models.RemoveFavorite(profile.FavoriteNumbers, number)
	if !removed {
		return fiber.NewError(fiber.StatusNotFound, "favorite not found")
	}

	if err := h.db.Model(profile).Update("favorite_numbers", pq.StringArray(updated)).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    models.ParseFavorites(updated),
	})
}

func (h *ProfileHandler) currentProfile(c *fiber.Ctx) (*models.Profile, error) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var profile models.Profile
	if err := h.db.First(&profile, "id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		}
		return nil, err
	}

	return &profile, nil
}
