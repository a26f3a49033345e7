package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// Profile roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// ErrFavoriteExists is returned when a favorite number is already saved.
var ErrFavoriteExists = errors.New("number is already a favorite")

// Profile represents an authenticated customer account.
type Profile struct {
	BaseModel
	Name            string         `json:"name"`
	Email           string         `gorm:"uniqueIndex" json:"email"`
	Phone           string         `json:"phone"`
	PasswordHash    string         `json:"-"`
	Role            string         `gorm:"default:user" json:"role"`
	TotalSpent      float64        `json:"total_spent"`
	FavoriteNumbers pq.StringArray `gorm:"type:text[]" json:"favorite_numbers"`
	PushToken       string         `json:"push_token,omitempty"`
	Orders          []Order        `json:"orders,omitempty"`
}

// IsAdmin reports whether the profile has the admin role.
func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// FavoriteNumber is a user-saved (label, number) pair stored as "label:number".
type FavoriteNumber struct {
	Label  string `json:"label"`
	Number string `json:"number"`
}

// ParseFavorites decodes the stored "label:number" entries. Entries that do
// not split cleanly are skipped.
func ParseFavorites(stored []string) []FavoriteNumber {
	favorites := make([]FavoriteNumber, 0, len(stored))
	for _, entry := range stored {
		label, number, ok := strings.Cut(entry, ":")
		if !ok || label == "" || number == "" {
			continue
		}
		favorites = append(favorites, FavoriteNumber{Label: label, Number: number})
	}
	return favorites
}

// AddFavorite appends a favorite entry, rejecting numbers already present
// regardless of their label. The input list is not modified on error.
func AddFavorite(stored []string, label, number string) ([]string, error) {
	for _, favorite := range ParseFavorites(stored) {
		if favorite.Number == number {
			return stored, ErrFavoriteExists
		}
	}
	return append(append([]string(nil), stored...), fmt.Sprintf("%s:%s", label, number)), nil
}

// RemoveFavorite drops the entry matching the given number. It reports
// whether an entry was removed.
func RemoveFavorite(stored []string, number string) ([]string, bool) {
	kept := make([]string, 0, len(stored))
	removed := false
	for _, entry := range stored {
		_, n, ok := strings.Cut(entry, ":")
		if ok && n == number {
			removed = true
			continue
		}
		kept = append(kept, entry)
	}
	return kept, removed
}
