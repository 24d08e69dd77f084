// file: internals/features/students/home/controller/home_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"studenthome_backend/internals/features/students/home/dto"
	"studenthome_backend/internals/features/students/home/service"
	helper "studenthome_backend/internals/helpers"
	helperAuth "studenthome_backend/internals/helpers/auth"
	"studenthome_backend/internals/helpers/dbtime"
)

type StudentHomeController struct {
	Loader    service.HomeDataSource
	Validator *validator.Validate
	Now       func() time.Time
}

func NewStudentHomeController(db *gorm.DB) *StudentHomeController {
	return &StudentHomeController{
		Loader:    service.NewHomeLoader(db),
		Validator: validator.New(),
		Now:       time.Now,
	}
}

// =======================
// GET /student/home?timezone=Asia/Singapore
// =======================
func (ctrl *StudentHomeController) GetStudentHome(c *fiber.Ctx) error {
	googleID, err := helperAuth.GetGoogleIDFromToken(c)
	if err != nil {
		return err
	}

	var q dto.StudentHomeQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query")
	}
	q.Timezone = strings.TrimSpace(q.Timezone)
	if err := ctrl.Validator.Struct(&q); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}
	if q.Timezone != "" {
		c.Locals(dbtime.LocTimezone, q.Timezone)
	}
	loc := dbtime.GetRequestLocation(c)

	in, err := ctrl.Loader.LoadStudentHome(c.UserContext(), googleID, ctrl.Now())
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Account not found")
		}
		log.Error().Err(err).Str("google_id", googleID).Msg("load student home")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load student home")
	}

	page, err := service.BuildStudentHomePage(in.Account, in.Courses, in.Statuses, loc)
	if err != nil {
		if errors.Is(err, service.ErrMissingSubmissionStatus) {
			log.Error().Err(err).Str("google_id", googleID).Msg("student home built with incomplete submission status")
		} else {
			log.Error().Err(err).Str("google_id", googleID).Msg("build student home")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build student home")
	}

	return helper.JsonOK(c, "Student home loaded", page)
}
