package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	helper "studenthome_backend/internals/helpers"
	helperAuth "studenthome_backend/internals/helpers/auth"
	"studenthome_backend/internals/helpers/dbtime"
)

type AuthJWTOpts struct {
	Secret              string
	AllowCookieFallback bool // read cookie access_token when there is no Bearer header
}

// AuthJWT verifies an HMAC-signed token and hydrates the locals read by
// helperAuth and dbtime: google_id (claim google_id, then sub), roles, timezone.
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret is required")
	}

	return func(c *fiber.Ctx) error {
		// 1) Token: Authorization: Bearer xxx (or cookie when allowed)
		raw := helper.GetRawAccessToken(c, o.AllowCookieFallback)
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		// 2) Parse + verify algorithm
		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}
		c.Locals(helperAuth.LocJWTClaims, claims)

		// 3) Identity
		googleID := strClaim(claims, "google_id")
		if googleID == "" {
			googleID = strClaim(claims, "sub")
		}
		if googleID == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Token has no account id")
		}
		c.Locals(helperAuth.LocGoogleID, googleID)

		// 4) Optional claims
		c.Locals(helperAuth.LocRoles, readStringSlice(claims["roles"]))
		if tz := strClaim(claims, "timezone"); tz != "" {
			c.Locals(dbtime.LocTimezone, tz)
		}

		return c.Next()
	}
}

// RequireRole rejects requests whose token carries none of roles.
func RequireRole(feature string, message func(string) string, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !helperAuth.HasAnyRole(c, roles...) {
			return fiber.NewError(fiber.StatusForbidden, message(feature))
		}
		return c.Next()
	}
}

func strClaim(m jwt.MapClaims, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// readStringSlice accepts []string or []any.
func readStringSlice(v any) []string {
	out := make([]string, 0)
	switch t := v.(type) {
	case []string:
		for _, s := range t {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	case []any:
		for _, it := range t {
			if s, ok := it.(string); ok {
				if s = strings.TrimSpace(s); s != "" {
					out = append(out, s)
				}
			}
		}
	}
	return out
}
