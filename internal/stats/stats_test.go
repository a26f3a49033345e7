package stats

import (
	"testing"
	"time"

	"github.com/example/recarga/internal/models"
)

func orderAt(t time.Time, status string, amount float64) models.Order {
	order := models.Order{Status: status, Amount: amount}
	order.CreatedAt = t
	return order
}

func TestSummarize(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	orders := []models.Order{
		orderAt(now.Add(-1*time.Hour), models.OrderCompleted, 100),
		orderAt(now.Add(-2*time.Hour), models.OrderCompleted, 60),
		orderAt(now.Add(-3*time.Hour), models.OrderFailed, 80),
		orderAt(now.AddDate(0, 0, -2), models.OrderCompleted, 150),
		orderAt(now.AddDate(0, 0, -1), models.OrderPending, 40),
	}

	overview := Summarize(orders, 12, now)

	if overview.TotalUsers != 12 {
		t.Errorf("TotalUsers = %d, want 12", overview.TotalUsers)
	}
	if overview.TotalOrders != 5 {
		t.Errorf("TotalOrders = %d, want 5", overview.TotalOrders)
	}
	// Failed and pending orders contribute nothing to revenue.
	if overview.TotalRevenue != 310 {
		t.Errorf("TotalRevenue = %v, want 310", overview.TotalRevenue)
	}
	if overview.OrdersToday != 3 {
		t.Errorf("OrdersToday = %d, want 3", overview.OrdersToday)
	}
}

func TestRevenueByDayBuckets(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	orders := []models.Order{
		orderAt(time.Date(2025, 3, 10, 0, 0, 1, 0, time.UTC), models.OrderCompleted, 100),
		orderAt(time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC), models.OrderCompleted, 60),
		orderAt(time.Date(2025, 3, 9, 23, 59, 59, 0, time.UTC), models.OrderCompleted, 80),
		orderAt(time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC), models.OrderCompleted, 50),
		// Outside the trailing window.
		orderAt(time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC), models.OrderCompleted, 999),
		// Not completed.
		orderAt(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC), models.OrderFailed, 999),
	}

	buckets := RevenueByDay(orders, 7, now)

	if len(buckets) != 7 {
		t.Fatalf("expected 7 buckets, got %d", len(buckets))
	}
	if buckets[0].Day != "2025-03-04" || buckets[6].Day != "2025-03-10" {
		t.Fatalf("unexpected window: %s .. %s", buckets[0].Day, buckets[6].Day)
	}
	if buckets[6].Revenue != 160 || buckets[6].Orders != 2 {
		t.Errorf("today: revenue %v orders %d, want 160/2", buckets[6].Revenue, buckets[6].Orders)
	}
	if buckets[5].Revenue != 80 {
		t.Errorf("yesterday: revenue %v, want 80", buckets[5].Revenue)
	}
	if buckets[0].Revenue != 50 {
		t.Errorf("oldest day: revenue %v, want 50", buckets[0].Revenue)
	}
	for i := 1; i < 5; i++ {
		if buckets[i].Revenue != 0 {
			t.Errorf("empty day %s has revenue %v", buckets[i].Day, buckets[i].Revenue)
		}
	}
}

func TestCountByPackage(t *testing.T) {
	pkg360 := &models.Package{Name: "Paquete 360"}
	pkg600 := &models.Package{Name: "Paquete 600"}

	orders := []models.Order{
		{Status: models.OrderCompleted, Package: pkg360},
		{Status: models.OrderCompleted, Package: pkg360},
		{Status: models.OrderCompleted, Package: pkg600},
		{Status: models.OrderCompleted},
		{Status: models.OrderPending, Package: pkg360},
	}

	counts := CountByPackage(orders)

	if counts["Paquete 360"] != 2 {
		t.Errorf("Paquete 360 = %d, want 2", counts["Paquete 360"])
	}
	if counts["Paquete 600"] != 1 {
		t.Errorf("Paquete 600 = %d, want 1", counts["Paquete 600"])
	}
	if counts["unknown"] != 1 {
		t.Errorf("unknown = %d, want 1", counts["unknown"])
	}
}
