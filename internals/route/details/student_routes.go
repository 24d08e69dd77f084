package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentHomeRoutes "studenthome_backend/internals/features/students/home/route"
)

// StudentRoutes mounts everything under the authenticated /api/u group.
func StudentRoutes(private fiber.Router, db *gorm.DB) {
	studentHomeRoutes.StudentHomeUserRoutes(private, db)
}
