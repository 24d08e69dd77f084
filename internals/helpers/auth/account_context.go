// file: internals/helpers/auth/account_context.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ============================================
   Locals Keys (set by the auth middleware)
   ============================================ */

const (
	LocGoogleID  = "google_id"  // string
	LocRoles     = "roles"      // []string
	LocJWTClaims = "jwt_claims" // jwt.MapClaims
)

// GetGoogleIDFromToken returns the account identity stored by the auth
// middleware, or a 401 when the request is anonymous.
func GetGoogleIDFromToken(c *fiber.Ctx) (string, error) {
	if v, ok := c.Locals(LocGoogleID).(string); ok {
		if s := strings.TrimSpace(v); s != "" {
			return s, nil
		}
	}
	return "", fiber.NewError(fiber.StatusUnauthorized, "google_id missing from token")
}

func GetRoles(c *fiber.Ctx) []string {
	if v, ok := c.Locals(LocRoles).([]string); ok {
		return v
	}
	return nil
}

// HasAnyRole reports whether the token carries one of roles (case-insensitive).
func HasAnyRole(c *fiber.Ctx, roles ...string) bool {
	for _, have := range GetRoles(c) {
		for _, want := range roles {
			if strings.EqualFold(have, want) {
				return true
			}
		}
	}
	return false
}
