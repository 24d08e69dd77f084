package courses

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	accountModel "studenthome_backend/internals/features/accounts/accounts/model"
	"studenthome_backend/internals/features/courses/courses/model"
	"studenthome_backend/internals/seeds/utils"
)

type CourseSeed struct {
	ID       string `json:"id" validate:"required,max=64"`
	Name     string `json:"name" validate:"required,max=160"`
	TimeZone string `json:"time_zone" validate:"omitempty,timezone"`
}

type CourseStudentSeed struct {
	CourseID string `json:"course_id" validate:"required,max=64"`
	// GoogleID links the enrollment to an account; unregistered students leave it empty.
	GoogleID string  `json:"google_id" validate:"omitempty,max=128"`
	Email    string  `json:"email" validate:"required,email"`
	Name     string  `json:"name" validate:"required,max=120"`
	Team     *string `json:"team" validate:"omitempty,max=80"`
	Section  *string `json:"section" validate:"omitempty,max=80"`
}

func (s CourseSeed) ToModel() model.CourseModel {
	tz := strings.TrimSpace(s.TimeZone)
	if tz == "" {
		tz = "UTC"
	}
	return model.CourseModel{
		CourseID:       strings.TrimSpace(s.ID),
		CourseName:     strings.TrimSpace(s.Name),
		CourseTimeZone: tz,
	}
}

func (s CourseStudentSeed) ToModel(accountID *uuid.UUID) model.CourseStudentModel {
	return model.CourseStudentModel{
		CourseStudentCourseID:  strings.TrimSpace(s.CourseID),
		CourseStudentAccountID: accountID,
		CourseStudentEmail:     strings.ToLower(strings.TrimSpace(s.Email)),
		CourseStudentName:      strings.TrimSpace(s.Name),
		CourseStudentTeam:      s.Team,
		CourseStudentSection:   s.Section,
	}
}

func SeedCoursesFromJSON(db *gorm.DB, filePath string) error {
	seeds, err := utils.LoadJSONRecords[CourseSeed](filePath)
	if err != nil {
		return err
	}
	if len(seeds) == 0 {
		return nil
	}

	rows := make([]model.CourseModel, 0, len(seeds))
	for _, s := range seeds {
		rows = append(rows, s.ToModel())
	}
	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows)
	if res.Error != nil {
		return fmt.Errorf("insert courses: %w", res.Error)
	}
	log.Info().Int64("inserted", res.RowsAffected).Int("read", len(seeds)).Msg("courses seeded")
	return nil
}

// SeedCourseStudentsFromJSON resolves google ids to account ids; an unknown
// google id is an error since the enrollment would never show on a dashboard.
func SeedCourseStudentsFromJSON(db *gorm.DB, filePath string) error {
	seeds, err := utils.LoadJSONRecords[CourseStudentSeed](filePath)
	if err != nil {
		return err
	}
	if len(seeds) == 0 {
		return nil
	}

	accountIDs := make(map[string]uuid.UUID)
	rows := make([]model.CourseStudentModel, 0, len(seeds))
	for _, s := range seeds {
		var accountID *uuid.UUID
		if gid := strings.TrimSpace(s.GoogleID); gid != "" {
			id, ok := accountIDs[gid]
			if !ok {
				var acc accountModel.AccountModel
				if err := db.Select("account_id").Where("account_google_id = ?", gid).First(&acc).Error; err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return fmt.Errorf("course student %s: unknown google id %q", s.Email, gid)
					}
					return fmt.Errorf("resolve account %q: %w", gid, err)
				}
				id = acc.AccountID
				accountIDs[gid] = id
			}
			accountID = &id
		}
		rows = append(rows, s.ToModel(accountID))
	}

	res := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "course_student_course_id"}, {Name: "course_student_email"}},
		DoNothing: true,
	}).Create(&rows)
	if res.Error != nil {
		return fmt.Errorf("insert course students: %w", res.Error)
	}
	log.Info().Int64("inserted", res.RowsAffected).Int("read", len(seeds)).Msg("course students seeded")
	return nil
}
