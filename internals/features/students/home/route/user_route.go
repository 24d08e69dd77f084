package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studenthome_backend/internals/constants"
	"studenthome_backend/internals/features/students/home/controller"
	"studenthome_backend/internals/middlewares"
	authMiddleware "studenthome_backend/internals/middlewares/auth_student"
)

func StudentHomeUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStudentHomeController(db)

	student := r.Group("/student",
		authMiddleware.RequireRole("the student dashboard", constants.RoleErrorStudent, constants.StudentHomeRoles...),
		middlewares.DashboardRateLimiter(),
	)
	student.Get("/home", ctrl.GetStudentHome)
}
