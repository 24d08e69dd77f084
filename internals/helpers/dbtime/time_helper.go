// file: internals/helpers/dbtime/time_helper.go
package dbtime

import (
	"strings"
	"time"
	_ "time/tzdata" // containers often ship without zoneinfo

	"github.com/gofiber/fiber/v2"

	"studenthome_backend/internals/configs"
)

// Locals keys filled by the auth middleware / controllers.
const (
	LocTimezone = "timezone"     // string, e.g. "Asia/Singapore"
	LocLocation = "timezone_loc" // *time.Location
)

// DisplayLayout is the dashboard's end-time format, e.g. "Wed, 05 Mar 2014, 23:59".
const DisplayLayout = "Mon, 02 Jan 2006, 15:04"

// ResolveLocation loads name, falling back to APP_TIMEZONE and finally UTC.
func ResolveLocation(name string) *time.Location {
	if s := strings.TrimSpace(name); s != "" {
		if loc, err := time.LoadLocation(s); err == nil {
			return loc
		}
	}
	if s := strings.TrimSpace(configs.AppTimezone); s != "" {
		if loc, err := time.LoadLocation(s); err == nil {
			return loc
		}
	}
	return time.UTC
}

// GetRequestLocation returns the location for the current request:
// 1) c.Locals("timezone_loc") if a previous call cached it
// 2) c.Locals("timezone") (string, from the token)
// 3) ResolveLocation fallbacks
func GetRequestLocation(c *fiber.Ctx) *time.Location {
	if c == nil {
		return ResolveLocation("")
	}
	if v := c.Locals(LocLocation); v != nil {
		if loc, ok := v.(*time.Location); ok && loc != nil {
			return loc
		}
	}
	name := ""
	if v, ok := c.Locals(LocTimezone).(string); ok {
		name = v
	}
	loc := ResolveLocation(name)
	c.Locals(LocLocation, loc)
	return loc
}

// FormatTime renders t in loc using DisplayLayout. Zero time renders as "".
func FormatTime(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(DisplayLayout)
}
