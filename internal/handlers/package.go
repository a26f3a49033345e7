package handlers

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/recarga/internal/cache"
	"github.com/example/recarga/internal/metrics"
	"github.com/example/recarga/internal/models"
)

const (
	activePackagesCacheKey = "packages:active"
	packagesCacheTTL       = 5 * time.Minute
)

// PackageHandler manages recharge-package endpoints.
type PackageHandler struct {
	db      *gorm.DB
	cache   *cache.Redis
	metrics *metrics.Metrics
}

// NewPackageHandler constructs PackageHandler.
func NewPackageHandler(db *gorm.DB, redis *cache.Redis, m *metrics.Metrics) *PackageHandler {
	return &PackageHandler{db: db, cache: redis, metrics: m}
}

// ListPackages returns active packages with the catalog projection applied.
// The full active set is fetched (through the cache) and filtered/sorted in
// memory, mirroring how the storefront consumes it.
func (h *PackageHandler) ListPackages(c *fiber.Ctx) error {
	packages, err := h.activePackages(c.Context())
	if err != nil {
		return err
	}

	query := models.PackageQuery{
		Search:    c.Query("search"),
		Filter:    c.Query("filter", models.FilterAll),
		MinPrice:  parseFloatQuery(c, "min_price"),
		MaxPrice:  parseFloatQuery(c, "max_price"),
		MinAmount: parseFloatQuery(c, "min_amount"),
		MaxAmount: parseFloatQuery(c, "max_amount"),
		Sort:      c.Query("sort", models.SortAmountDesc),
	}

	return c.JSON(fiber.Map{"success": true, "data": query.Apply(packages)})
}

// GetPackage returns one active package.
func (h *PackageHandler) GetPackage(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var pkg models.Package
	if err := h.db.First(&pkg, "id = ? AND is_active = ?", id, true).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "package not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": pkg})
}

type packageRequest struct {
	Name          string          `json:"name"`
	Amount        float64         `json:"amount"`
	Price         float64         `json:"price"`
	OriginalPrice json.RawMessage `json:"original_price"`
	Description   *string         `json:"description"`
	IsFeatured    *bool           `json:"is_featured"`
}

// parseOptionalPrice distinguishes an absent original_price from an explicit
// null: absent keeps the stored value, null clears the discount.
func parseOptionalPrice(raw json.RawMessage) (value *float64, present bool, err error) {
	if len(raw) == 0 {
		return nil, false, nil
	}
	if string(raw) == "null" {
		return nil, true, nil
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, false, err
	}
	return &v, true, nil
}

// buildUpdates maps the request onto a partial update: only fields present
// in the body are touched.
func (r packageRequest) buildUpdates(now time.Time) (map[string]interface{}, error) {
	updates := map[string]interface{}{"updated_at": now}
	if r.Name != "" {
		updates["name"] = r.Name
	}
	if r.Amount > 0 {
		updates["amount"] = r.Amount
	}
	if r.Price > 0 {
		updates["price"] = r.Price
	}
	original, present, err := parseOptionalPrice(r.OriginalPrice)
	if err != nil {
		return nil, err
	}
	if present {
		if original == nil {
			updates["original_price"] = nil
		} else {
			updates["original_price"] = *original
		}
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.IsFeatured != nil {
		updates["is_featured"] = *r.IsFeatured
	}
	return updates, nil
}

// CreatePackage creates a recharge package (admin).
func (h *PackageHandler) CreatePackage(c *fiber.Ctx) error {
	var req packageRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" || req.Amount <= 0 || req.Price <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "name, amount and price are required")
	}
	original, _, err := parseOptionalPrice(req.OriginalPrice)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid original_price")
	}

	pkg := models.Package{
		Name:          req.Name,
		Amount:        req.Amount,
		Price:         req.Price,
		OriginalPrice: original,
		IsActive:      true,
	}
	if req.Description != nil {
		pkg.Description = *req.Description
	}
	if req.IsFeatured != nil {
		pkg.IsFeatured = *req.IsFeatured
	}

	if err := h.db.Create(&pkg).Error; err != nil {
		return err
	}

	h.invalidateCache(c.Context())

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": pkg})
}

// UpdatePackage edits a recharge package (admin).
func (h *PackageHandler) UpdatePackage(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var pkg models.Package
	if err := h.db.First(&pkg, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "package not found")
		}
		return err
	}

	var req packageRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	updates, err := req.buildUpdates(time.Now())
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid original_price")
	}

	if err := h.db.Model(&pkg).Updates(updates).Error; err != nil {
		return err
	}

	h.invalidateCache(c.Context())

	return c.JSON(fiber.Map{"success": true, "data": pkg})
}

// DeletePackage soft-deletes a package by flipping is_active. Rows are
// never hard-deleted so existing orders keep their package reference.
func (h *PackageHandler) DeletePackage(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	result := h.db.Model(&models.Package{}).Where("id = ?", id).Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "package not found")
	}

	h.invalidateCache(c.Context())

	return c.JSON(fiber.Map{"success": true, "message": "package deactivated"})
}

func (h *PackageHandler) activePackages(ctx context.Context) ([]models.Package, error) {
	var packages []models.Package

	if h.cache != nil {
		hit, err := h.cache.GetJSON(ctx, activePackagesCacheKey, &packages)
		if err == nil && hit {
			h.metrics.CatalogCacheHits.WithLabelValues("hit").Inc()
			return packages, nil
		}
		h.metrics.CatalogCacheHits.WithLabelValues("miss").Inc()
	}

	if err := h.db.Where("is_active = ?", true).Find(&packages).Error; err != nil {
		return nil, err
	}

	if h.cache != nil {
		_ = h.cache.SetJSON(ctx, activePackagesCacheKey, packages, packagesCacheTTL)
	}

	return packages, nil
}

func (h *PackageHandler) invalidateCache(ctx context.Context) {
	if h.cache != nil {
		_ = h.cache.Delete(ctx, activePackagesCacheKey)
	}
}

func parseFloatQuery(c *fiber.Ctx, key string) *float64 {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &parsed
}
