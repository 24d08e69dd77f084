package seeds

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"studenthome_backend/internals/seeds/accounts"
	"studenthome_backend/internals/seeds/courses"
	"studenthome_backend/internals/seeds/feedback"
)

const DefaultDataDir = "internals/seeds/data"

type step struct {
	file string
	run  func(db *gorm.DB, filePath string) error
}

// Order matters: enrollments resolve accounts, responses reference sessions.
var steps = []step{
	{"accounts.json", accounts.SeedAccountsFromJSON},
	{"courses.json", courses.SeedCoursesFromJSON},
	{"course_students.json", courses.SeedCourseStudentsFromJSON},
	{"feedback_sessions.json", feedback.SeedFeedbackSessionsFromJSON},
	{"feedback_responses.json", feedback.SeedFeedbackResponsesFromJSON},
}

// RunAllSeeds loads every seed file under dir in one transaction.
func RunAllSeeds(db *gorm.DB, dir string) error {
	if dir == "" {
		dir = DefaultDataDir
	}
	return db.Transaction(func(tx *gorm.DB) error {
		for _, s := range steps {
			path := filepath.Join(dir, s.file)
			log.Info().Str("file", path).Msg("seeding")
			if err := s.run(tx, path); err != nil {
				return fmt.Errorf("seed %s: %w", s.file, err)
			}
		}
		return nil
	})
}
