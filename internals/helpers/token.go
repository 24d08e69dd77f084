package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const AccessTokenCookie = "access_token"

// GetRawAccessToken returns the token from "Authorization: Bearer <token>",
// or from the access_token cookie when allowCookie is set and no header is sent.
func GetRawAccessToken(c *fiber.Ctx, allowCookie bool) string {
	const p = "bearer "
	if auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); len(auth) > len(p) && strings.EqualFold(auth[:len(p)], p) {
		return strings.TrimSpace(auth[len(p):])
	}
	if allowCookie {
		return strings.TrimSpace(c.Cookies(AccessTokenCookie))
	}
	return ""
}
