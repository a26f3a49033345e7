package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/recarga/internal/config"
	"github.com/example/recarga/internal/models"
	"github.com/example/recarga/internal/services"
	"github.com/example/recarga/internal/utils"
)

const resetTokenTTL = 15 * time.Minute

// PasswordResetHandler manages forgot-password endpoints.
type PasswordResetHandler struct {
	db    *gorm.DB
	cfg   *config.Config
	email *services.EmailService
}

// NewPasswordResetHandler constructs a PasswordResetHandler.
func NewPasswordResetHandler(db *gorm.DB, cfg *config.Config, email *services.EmailService) *PasswordResetHandler {
	return &PasswordResetHandler{db: db, cfg: cfg, email: email}
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

// ForgotPassword issues a reset token and emails it. The response does not
// reveal whether the email is registered.
func (h *PasswordResetHandler) ForgotPassword(c *fiber.Ctx) error {
	var req forgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Email == "" {
		return fiber.NewError(fiber.StatusBadRequest, "email is required")
	}

	var profile models.Profile
	if err := h.db.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).First(&profile).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return resetAccepted(c)
		}
		return err
	}

	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
	}
	token := hex.EncodeToString(tokenBytes)

	reset := models.PasswordResetToken{
		ProfileID: profile.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(resetTokenTTL),
	}
	if err := h.db.Create(&reset).Error; err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s?token=%s", h.cfg.ResetBaseURL, token)
	go h.email.SendPasswordResetEmail(profile.Email, profile.Name, resetURL)

	return resetAccepted(c)
}

// resetAccepted is the uniform reply for forgot-password requests so the
// endpoint never reveals whether the email is registered.
func resetAccepted(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"message": "if the email exists, a reset link has been sent",
	})
}

type resetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// ResetPassword redeems a reset token and stores the new password.
func (h *PasswordResetHandler) ResetPassword(c *fiber.Ctx) error {
	var req resetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Token == "" || len(req.NewPassword) < 6 {
		return fiber.NewError(fiber.StatusBadRequest, "token and a password of at least 6 characters are required")
	}

	var reset models.PasswordResetToken
	if err := h.db.Where("token = ?", req.Token).First(&reset).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusBadRequest, "invalid or expired token")
		}
		return err
	}

	if !reset.Usable(time.Now()) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid or expired token")
	}

	passwordHash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to hash password")
	}

	now := time.Now()
	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Profile{}).Where("id = ?", reset.ProfileID).
			Update("password_hash", passwordHash).Error; err != nil {
			return err
		}
		return tx.Model(&reset).Update("used_at", &now).Error
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "message": "password updated"})
}
