// Package validate holds the field rules shared by the user and product services.
package validate

import (
	"math"
	"regexp"
	"strings"

	"github.com/Skotchmaster/demo_api/internal/models"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func Email(email string) bool {
	return emailRe.MatchString(email)
}

// Role lowercases role and reports whether it is a known role.
func Role(role string) (string, bool) {
	role = strings.ToLower(role)
	switch role {
	case models.RoleAdmin, models.RoleUser:
		return role, true
	}
	return role, false
}

func Price(price float64) bool {
	return !math.IsNaN(price) && !math.IsInf(price, 0) && price >= 0
}

// Required reports whether s has content once trimmed.
func Required(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}
