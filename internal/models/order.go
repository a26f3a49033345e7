package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Order statuses. Completed and failed are terminal.
const (
	OrderPending   = "pending"
	OrderCompleted = "completed"
	OrderFailed    = "failed"
)

// Order records a user purchasing a recharge package for a destination
// phone number.
type Order struct {
	BaseModel
	UserID      uuid.UUID  `gorm:"type:uuid;index" json:"user_id"`
	User        *Profile   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	PackageID   uuid.UUID  `gorm:"type:uuid;index" json:"package_id"`
	Package     *Package   `json:"package,omitempty"`
	PhoneNumber string     `json:"phone_number"`
	Amount      float64    `json:"amount"`
	Status      string     `gorm:"default:pending;index" json:"status"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// ValidOrderStatus reports whether s is a known status value.
func ValidOrderStatus(s string) bool {
	return s == OrderPending || s == OrderCompleted || s == OrderFailed
}

// CanTransition reports whether an order in the current status may move to
// next. Only pending orders move; completed and failed never change.
func (o *Order) CanTransition(next string) bool {
	if o.Status != OrderPending {
		return false
	}
	return next == OrderCompleted || next == OrderFailed
}

// Transition moves the order to next, setting CompletedAt on completion.
func (o *Order) Transition(next string, now time.Time) error {
	if !ValidOrderStatus(next) {
		return fmt.Errorf("unknown order status %q", next)
	}
	if !o.CanTransition(next) {
		return fmt.Errorf("cannot transition order from %s to %s", o.Status, next)
	}
	o.Status = next
	if next == OrderCompleted {
		o.CompletedAt = &now
	}
	return nil
}
