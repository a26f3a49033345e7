package models

import (
	"time"

	"github.com/google/uuid"
)

// PasswordResetToken tracks one-time reset tokens emailed to users.
type PasswordResetToken struct {
	BaseModel
	ProfileID uuid.UUID  `gorm:"type:uuid;index" json:"profile_id"`
	Token     string     `gorm:"uniqueIndex" json:"-"`
	ExpiresAt time.Time  `json:"expires_at"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
}

// Usable reports whether the token can still redeem a reset.
func (t *PasswordResetToken) Usable(now time.Time) bool {
	return t.UsedAt == nil && t.ExpiresAt.After(now)
}
