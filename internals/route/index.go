// file: internals/route/index.go
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"studenthome_backend/internals/configs"
	authMiddleware "studenthome_backend/internals/middlewares/auth_student"
	routeDetails "studenthome_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	log.Info().Msg("setting up BaseRoutes...")
	BaseRoutes(app)

	// ===================== PRIVATE (USER) =====================
	log.Info().Msg("setting up PRIVATE group...")
	private := app.Group("/api/u",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)

	log.Info().Msg("setting up StudentRoutes...")
	routeDetails.StudentRoutes(private, db)
}
