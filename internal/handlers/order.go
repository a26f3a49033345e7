package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/recarga/internal/metrics"
	"github.com/example/recarga/internal/middleware"
	"github.com/example/recarga/internal/models"
	"github.com/example/recarga/internal/services"
	"github.com/example/recarga/internal/utils"
)

// OrderHandler manages recharge-order endpoints.
type OrderHandler struct {
	db       *gorm.DB
	payment  *services.PaymentService
	push     *services.PushService
	telegram *services.TelegramService
	metrics  *metrics.Metrics
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(db *gorm.DB, payment *services.PaymentService, push *services.PushService, telegram *services.TelegramService, m *metrics.Metrics) *OrderHandler {
	return &OrderHandler{db: db, payment: payment, push: push, telegram: telegram, metrics: m}
}

type createOrderRequest struct {
	PackageID   string `json:"package_id"`
	PhoneNumber string `json:"phone_number"`
}

// CreateOrder runs the purchase flow: validate the destination number,
// create the order as pending, charge, then mark it completed and bump the
// buyer's total_spent. A failed charge leaves the order as failed.
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req createOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	phone := utils.CleanPhone(req.PhoneNumber)
	if !utils.ValidPhone(phone) {
		return fiber.NewError(fiber.StatusBadRequest, "phone number must be exactly 8 digits")
	}

	packageID, err := uuid.Parse(req.PackageID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid package id")
	}

	var pkg models.Package
	if err := h.db.First(&pkg, "id = ? AND is_active = ?", packageID, true).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "package not found")
		}
		return err
	}

	order := models.Order{
		UserID:      userID,
		PackageID:   pkg.ID,
		PhoneNumber: phone,
		Amount:      pkg.Price,
		Status:      models.OrderPending,
	}

	if err := h.db.Create(&order).Error; err != nil {
		return err
	}

	chargeStart := time.Now()
	chargeErr := h.payment.Charge(c.Context(), order.ID, order.Amount)
	h.metrics.PaymentDuration.Observe(time.Since(chargeStart).Seconds())

	if chargeErr != nil {
		if err := order.Transition(models.OrderFailed, time.Now()); err == nil {
			if err := h.db.Model(&models.Order{}).Where("id = ?", order.ID).
				Update("status", order.Status).Error; err != nil {
				log.Printf("[Order] Failed to mark order %s failed: %v", order.ID, err)
			}
		}
		h.metrics.OrdersCreated.WithLabelValues(models.OrderFailed).Inc()
		return fiber.NewError(fiber.StatusBadGateway, "payment failed")
	}

	now := time.Now()
	if err := order.Transition(models.OrderCompleted, now); err != nil {
		return err
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).Updates(map[string]interface{}{
			"status":       order.Status,
			"completed_at": order.CompletedAt,
		}).Error; err != nil {
			return err
		}
		// Incremented in SQL so concurrent purchases cannot lose updates.
		return tx.Model(&models.Profile{}).Where("id = ?", userID).
			Update("total_spent", gorm.Expr("total_spent + ?", order.Amount)).Error
	})
	if err != nil {
		return err
	}

	h.metrics.OrdersCreated.WithLabelValues(models.OrderCompleted).Inc()
	go h.notifyRecharge(order, pkg)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"id":           order.ID,
			"package_id":   order.PackageID,
			"phone_number": order.PhoneNumber,
			"amount":       order.Amount,
			"status":       order.Status,
			"completed_at": order.CompletedAt,
		},
	})
}

// notifyRecharge fires the buyer push notification and the admin Telegram
// alert. Both are best-effort; failures never surface to the purchase.
func (h *OrderHandler) notifyRecharge(order models.Order, pkg models.Package) {
	var profile models.Profile
	if err := h.db.First(&profile, "id = ?", order.UserID).Error; err != nil {
		log.Printf("[Order] Failed to load profile for notification: %v", err)
		return
	}

	if err := h.push.NotifyRechargeSuccess(profile.PushToken, order.PhoneNumber, pkg.Amount); err == nil {
		h.metrics.NotificationsSent.WithLabelValues("recharge_success").Inc()
	}

	if err := h.telegram.NotifyNewRecharge(services.RechargeNotification{
		OrderID:     order.ID.String(),
		PackageName: pkg.Name,
		Amount:      pkg.Amount,
		Price:       order.Amount,
		PhoneNumber: order.PhoneNumber,
		UserName:    profile.Name,
		UserEmail:   profile.Email,
		Status:      order.Status,
	}); err != nil {
		log.Printf("[Order] Telegram notification failed: %v", err)
	}
}

// ListOrders returns the caller's orders, newest first.
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	query := h.db.Where("user_id = ?", userID).Model(&models.Order{})
	if status := c.Query("status"); status != "" {
		if !models.ValidOrderStatus(status) {
			return fiber.NewError(fiber.StatusBadRequest, "unknown status")
		}
		query = query.Where("status = ?", status)
	}

	var orders []models.Order
	if err := query.Preload("Package").
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": orders})
}

// GetOrder returns a single order for the authenticated user.
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var order models.Order
	if err := h.db.Preload("Package").
		First(&order, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "order not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": order})
}
