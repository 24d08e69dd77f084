package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestGetRawAccessToken(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		cookie      string
		allowCookie bool
		want        string
	}{
		{"bearer", "Bearer abc", "", false, "abc"},
		{"lowercase scheme", "bearer abc", "", false, "abc"},
		{"header wins over cookie", "Bearer abc", "xyz", true, "abc"},
		{"cookie fallback", "", "xyz", true, "xyz"},
		{"cookie not allowed", "", "xyz", false, ""},
		{"other scheme", "Basic dXNlcg==", "", false, ""},
		{"nothing", "", "", true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			var got string
			app.Get("/", func(c *fiber.Ctx) error {
				got = GetRawAccessToken(c, tt.allowCookie)
				return nil
			})

			req := httptest.NewRequest(fiber.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.header)
			}
			if tt.cookie != "" {
				req.Header.Set(fiber.HeaderCookie, AccessTokenCookie+"="+tt.cookie)
			}
			if _, err := app.Test(req); err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
