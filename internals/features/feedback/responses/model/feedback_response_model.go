package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type FeedbackResponseModel struct {
	FeedbackResponseID             uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:feedback_response_id" json:"feedback_response_id"`
	FeedbackResponseCourseID       string         `gorm:"type:varchar(64);not null;index:idx_feedback_response_giver;column:feedback_response_course_id" json:"feedback_response_course_id"`
	FeedbackResponseSessionName    string         `gorm:"type:varchar(160);not null;index:idx_feedback_response_giver;column:feedback_response_session_name" json:"feedback_response_session_name"`
	FeedbackResponseGiverEmail     string         `gorm:"type:varchar(255);not null;index:idx_feedback_response_giver;column:feedback_response_giver_email" json:"feedback_response_giver_email"`
	FeedbackResponseRecipientEmail string         `gorm:"type:varchar(255);not null;column:feedback_response_recipient_email" json:"feedback_response_recipient_email"`
	FeedbackResponseQuestionNumber int            `gorm:"type:smallint;not null;default:1;column:feedback_response_question_number" json:"feedback_response_question_number"`
	FeedbackResponseAnswer         datatypes.JSON `gorm:"type:jsonb;column:feedback_response_answer" json:"feedback_response_answer,omitempty"`

	FeedbackResponseCreatedAt time.Time `gorm:"type:timestamptz;column:feedback_response_created_at;autoCreateTime" json:"feedback_response_created_at"`
	FeedbackResponseUpdatedAt time.Time `gorm:"type:timestamptz;column:feedback_response_updated_at;autoUpdateTime" json:"feedback_response_updated_at"`
}

func (FeedbackResponseModel) TableName() string { return "feedback_responses" }
