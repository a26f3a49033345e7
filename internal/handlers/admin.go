package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/recarga/internal/metrics"
	"github.com/example/recarga/internal/models"
	"github.com/example/recarga/internal/services"
	"github.com/example/recarga/internal/stats"
	"github.com/example/recarga/internal/utils"
)

const chartWindowDays = 7

// AdminHandler serves the admin console: dashboard aggregates, user and
// order management, and promotional broadcasts.
type AdminHandler struct {
	db      *gorm.DB
	push    *services.PushService
	metrics *metrics.Metrics
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(db *gorm.DB, push *services.PushService, m *metrics.Metrics) *AdminHandler {
	return &AdminHandler{db: db, push: push, metrics: m}
}

// GetStats returns the dashboard headline numbers. Orders are fetched in
// full and aggregated in one pass on every call.
func (h *AdminHandler) GetStats(c *fiber.Ctx) error {
	var totalUsers int64
	if err := h.db.Model(&models.Profile{}).Count(&totalUsers).Error; err != nil {
		return err
	}

	var orders []models.Order
	if err := h.db.Find(&orders).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats.Summarize(orders, totalUsers, time.Now()),
	})
}

// GetCharts returns the trailing-7-day revenue buckets and completed-order
// counts per package name.
func (h *AdminHandler) GetCharts(c *fiber.Ctx) error {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	since := today.AddDate(0, 0, -(chartWindowDays - 1))

	var recent []models.Order
	if err := h.db.Where("status = ? AND created_at >= ?", models.OrderCompleted, since).
		Find(&recent).Error; err != nil {
		return err
	}

	var completed []models.Order
	if err := h.db.Preload("Package").
		Where("status = ?", models.OrderCompleted).
		Find(&completed).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"revenue_by_day":   stats.RevenueByDay(recent, chartWindowDays, now),
			"count_by_package": stats.CountByPackage(completed),
		},
	})
}

// ListUsers returns all profiles, newest first, with optional search over
// name, email and phone.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	query := h.db.Model(&models.Profile{})

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR phone LIKE ?",
			pattern, pattern, "%"+search+"%",
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var profiles []models.Profile
	if err := query.Order("created_at desc").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&profiles).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    profiles,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// ListOrders returns all orders with buyer and package joined, filtered by
// status and searched over buyer name/email and destination phone.
func (h *AdminHandler) ListOrders(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	query := h.db.Model(&models.Order{}).
		Joins("LEFT JOIN profiles ON profiles.id = orders.user_id")

	if status := c.Query("status"); status != "" {
		if !models.ValidOrderStatus(status) {
			return fiber.NewError(fiber.StatusBadRequest, "unknown status")
		}
		query = query.Where("orders.status = ?", status)
	}

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(profiles.name) LIKE ? OR LOWER(profiles.email) LIKE ? OR orders.phone_number LIKE ?",
			pattern, pattern, "%"+search+"%",
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var orders []models.Order
	if err := query.Preload("User").Preload("Package").
		Order("orders.created_at desc").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&orders).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    orders,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

// UpdateOrderStatus moves an order through the lifecycle. Only pending
// orders move; completion stamps completed_at.
func (h *AdminHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req updateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	var order models.Order
	if err := h.db.First(&order, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "order not found")
		}
		return err
	}

	if err := order.Transition(req.Status, time.Now()); err != nil {
		return fiber.NewError(fiber.StatusConflict, err.Error())
	}

	updates := map[string]interface{}{"status": order.Status}
	if order.CompletedAt != nil {
		updates["completed_at"] = order.CompletedAt
	}

	if err := h.db.Model(&models.Order{}).Where("id = ?", order.ID).Updates(updates).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": order})
}

type broadcastRequest struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// BroadcastNotification pushes a promotional message to every profile with
// a registered push token.
func (h *AdminHandler) BroadcastNotification(c *fiber.Ctx) error {
	var req broadcastRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Title == "" || req.Message == "" {
		return fiber.NewError(fiber.StatusBadRequest, "title and message are required")
	}

	var tokens []string
	if err := h.db.Model(&models.Profile{}).
		Where("push_token <> ''").
		Pluck("push_token", &tokens).Error; err != nil {
		return err
	}

	sent := h.push.Broadcast(tokens, req.Title, req.Message)
	h.metrics.NotificationsSent.WithLabelValues("admin_broadcast").Add(float64(sent))

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"recipients": len(tokens),
			"sent":       sent,
		},
	})
}
