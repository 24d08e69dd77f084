package feedback

import (
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	responseModel "studenthome_backend/internals/features/feedback/responses/model"
	sessionModel "studenthome_backend/internals/features/feedback/sessions/model"
	"studenthome_backend/internals/seeds/utils"
)

type FeedbackSessionSeed struct {
	CourseID           string         `json:"course_id" validate:"required,max=64"`
	Name               string         `json:"name" validate:"required,max=160"`
	Instructions       *string        `json:"instructions"`
	CreatorEmail       string         `json:"creator_email" validate:"required,email"`
	StartTime          time.Time      `json:"start_time" validate:"required"`
	EndTime            time.Time      `json:"end_time" validate:"required,gtfield=StartTime"`
	VisibleFrom        *time.Time     `json:"visible_from"`
	ResultsVisibleFrom *time.Time     `json:"results_visible_from"`
	GracePeriodMinutes *int           `json:"grace_period_minutes" validate:"omitempty,min=0,max=1440"`
	TimeZone           string         `json:"time_zone" validate:"omitempty,timezone"`
	Settings           map[string]any `json:"settings"`
}

type FeedbackResponseSeed struct {
	CourseID       string         `json:"course_id" validate:"required,max=64"`
	SessionName    string         `json:"session_name" validate:"required,max=160"`
	GiverEmail     string         `json:"giver_email" validate:"required,email"`
	RecipientEmail string         `json:"recipient_email" validate:"required"`
	QuestionNumber int            `json:"question_number" validate:"omitempty,min=1"`
	Answer         map[string]any `json:"answer"`
}

func (s FeedbackSessionSeed) ToModel() sessionModel.FeedbackSessionModel {
	grace := 15
	if s.GracePeriodMinutes != nil {
		grace = *s.GracePeriodMinutes
	}
	tz := strings.TrimSpace(s.TimeZone)
	if tz == "" {
		tz = "UTC"
	}
	m := sessionModel.FeedbackSessionModel{
		FeedbackSessionCourseID:           strings.TrimSpace(s.CourseID),
		FeedbackSessionName:               strings.TrimSpace(s.Name),
		FeedbackSessionInstructions:       s.Instructions,
		FeedbackSessionCreatorEmail:       strings.ToLower(strings.TrimSpace(s.CreatorEmail)),
		FeedbackSessionStartTime:          s.StartTime,
		FeedbackSessionEndTime:            s.EndTime,
		FeedbackSessionVisibleFrom:        s.VisibleFrom,
		FeedbackSessionResultsVisibleFrom: s.ResultsVisibleFrom,
		FeedbackSessionGracePeriodMinutes: grace,
		FeedbackSessionTimeZone:           tz,
	}
	if len(s.Settings) > 0 {
		m.FeedbackSessionSettings = datatypes.JSONMap(s.Settings)
	}
	return m
}

func (s FeedbackResponseSeed) ToModel() (responseModel.FeedbackResponseModel, error) {
	q := s.QuestionNumber
	if q == 0 {
		q = 1
	}
	m := responseModel.FeedbackResponseModel{
		FeedbackResponseCourseID:       strings.TrimSpace(s.CourseID),
		FeedbackResponseSessionName:    strings.TrimSpace(s.SessionName),
		FeedbackResponseGiverEmail:     strings.ToLower(strings.TrimSpace(s.GiverEmail)),
		FeedbackResponseRecipientEmail: strings.TrimSpace(s.RecipientEmail),
		FeedbackResponseQuestionNumber: q,
	}
	if s.Answer != nil {
		raw, err := sonic.Marshal(s.Answer)
		if err != nil {
			return m, fmt.Errorf("encode answer: %w", err)
		}
		m.FeedbackResponseAnswer = datatypes.JSON(raw)
	}
	return m, nil
}

func SeedFeedbackSessionsFromJSON(db *gorm.DB, filePath string) error {
	seeds, err := utils.LoadJSONRecords[FeedbackSessionSeed](filePath)
	if err != nil {
		return err
	}
	if len(seeds) == 0 {
		return nil
	}

	rows := make([]sessionModel.FeedbackSessionModel, 0, len(seeds))
	for _, s := range seeds {
		rows = append(rows, s.ToModel())
	}
	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows)
	if res.Error != nil {
		return fmt.Errorf("insert feedback sessions: %w", res.Error)
	}
	log.Info().Int64("inserted", res.RowsAffected).Int("read", len(seeds)).Msg("feedback sessions seeded")
	return nil
}

// SeedFeedbackResponsesFromJSON skips a response when the same giver already
// answered the same question for the same recipient.
func SeedFeedbackResponsesFromJSON(db *gorm.DB, filePath string) error {
	seeds, err := utils.LoadJSONRecords[FeedbackResponseSeed](filePath)
	if err != nil {
		return err
	}

	inserted := 0
	for i, s := range seeds {
		row, err := s.ToModel()
		if err != nil {
			return fmt.Errorf("response %d: %w", i, err)
		}

		var count int64
		if err := db.Model(&responseModel.FeedbackResponseModel{}).
			Where(`feedback_response_course_id = ? AND feedback_response_session_name = ?
				AND feedback_response_giver_email = ? AND feedback_response_recipient_email = ?
				AND feedback_response_question_number = ?`,
				row.FeedbackResponseCourseID, row.FeedbackResponseSessionName,
				row.FeedbackResponseGiverEmail, row.FeedbackResponseRecipientEmail,
				row.FeedbackResponseQuestionNumber).
			Count(&count).Error; err != nil {
			return fmt.Errorf("check response %d: %w", i, err)
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&row).Error; err != nil {
			return fmt.Errorf("insert response %d: %w", i, err)
		}
		inserted++
	}
	if len(seeds) > 0 {
		log.Info().Int("inserted", inserted).Int("read", len(seeds)).Msg("feedback responses seeded")
	}
	return nil
}
