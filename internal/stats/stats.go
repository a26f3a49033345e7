// Package stats computes the admin-dashboard aggregates. Every refresh
// re-fetches the rows and re-aggregates from scratch in a single pass;
// there is no incremental state.
package stats

import (
	"time"

	"github.com/example/recarga/internal/models"
)

// Overview holds the dashboard headline numbers.
type Overview struct {
	TotalUsers   int64   `json:"total_users"`
	TotalOrders  int64   `json:"total_orders"`
	TotalRevenue float64 `json:"total_revenue"`
	OrdersToday  int64   `json:"orders_today"`
}

// Summarize folds completed-order revenue and today's order count into an
// Overview. Day boundaries use the location of now.
func Summarize(orders []models.Order, totalUsers int64, now time.Time) Overview {
	overview := Overview{
		TotalUsers:  totalUsers,
		TotalOrders: int64(len(orders)),
	}

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for _, order := range orders {
		if order.Status == models.OrderCompleted {
			overview.TotalRevenue += order.Amount
		}
		if !order.CreatedAt.Before(startOfDay) {
			overview.OrdersToday++
		}
	}

	return overview
}

// DayBucket is one calendar day of completed-order revenue.
type DayBucket struct {
	Day     string  `json:"day"`
	Revenue float64 `json:"revenue"`
	Orders  int64   `json:"orders"`
}

// RevenueByDay buckets completed orders from the trailing `days` calendar
// days, oldest first. Orders outside the window or not completed are
// ignored. Empty days are present with zero revenue.
func RevenueByDay(orders []models.Order, days int, now time.Time) []DayBucket {
	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	start := today.AddDate(0, 0, -(days - 1))

	buckets := make([]DayBucket, days)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i).Format("2006-01-02")
		buckets[i] = DayBucket{Day: day}
		index[day] = i
	}

	for _, order := range orders {
		if order.Status != models.OrderCompleted {
			continue
		}
		day := order.CreatedAt.In(loc).Format("2006-01-02")
		i, ok := index[day]
		if !ok {
			continue
		}
		buckets[i].Revenue += order.Amount
		buckets[i].Orders++
	}

	return buckets
}

// CountByPackage counts completed orders per package name. Orders whose
// package row is missing are grouped under "unknown".
func CountByPackage(orders []models.Order) map[string]int64 {
	counts := make(map[string]int64)
	for _, order := range orders {
		if order.Status != models.OrderCompleted {
			continue
		}
		name := "unknown"
		if order.Package != nil && order.Package.Name != "" {
			name = order.Package.Name
		}
		counts[name]++
	}
	return counts
}
