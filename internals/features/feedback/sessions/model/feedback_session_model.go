package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FeedbackSessionModel is identified by (course id, session name).
//
// Lifecycle relative to an instant now:
//   - waiting to open: now < start
//   - opened:          start <= now < end
//   - grace period:    end <= now < end + grace
//   - closed:          now >= end + grace
//
// Visibility and publication are independent of the submission window.
type FeedbackSessionModel struct {
	FeedbackSessionCourseID     string  `gorm:"type:varchar(64);primaryKey;column:feedback_session_course_id" json:"feedback_session_course_id"`
	FeedbackSessionName         string  `gorm:"type:varchar(160);primaryKey;column:feedback_session_name" json:"feedback_session_name"`
	FeedbackSessionInstructions *string `gorm:"type:text;column:feedback_session_instructions" json:"feedback_session_instructions,omitempty"`
	FeedbackSessionCreatorEmail string  `gorm:"type:varchar(255);not null;column:feedback_session_creator_email" json:"feedback_session_creator_email"`

	FeedbackSessionStartTime time.Time `gorm:"type:timestamptz;not null;column:feedback_session_start_time" json:"feedback_session_start_time"`
	FeedbackSessionEndTime   time.Time `gorm:"type:timestamptz;not null;column:feedback_session_end_time" json:"feedback_session_end_time"`

	// nil means visible from the start time
	FeedbackSessionVisibleFrom *time.Time `gorm:"type:timestamptz;column:feedback_session_visible_from" json:"feedback_session_visible_from,omitempty"`
	// nil means results are only published manually
	FeedbackSessionResultsVisibleFrom *time.Time `gorm:"type:timestamptz;column:feedback_session_results_visible_from" json:"feedback_session_results_visible_from,omitempty"`
	FeedbackSessionPublishedAt        *time.Time `gorm:"type:timestamptz;column:feedback_session_published_at" json:"feedback_session_published_at,omitempty"`

	FeedbackSessionGracePeriodMinutes int    `gorm:"type:smallint;not null;default:15;column:feedback_session_grace_period_minutes" json:"feedback_session_grace_period_minutes"`
	FeedbackSessionTimeZone           string `gorm:"type:varchar(64);not null;default:'UTC';column:feedback_session_time_zone" json:"feedback_session_time_zone"`

	FeedbackSessionSettings datatypes.JSONMap `gorm:"type:jsonb;column:feedback_session_settings" json:"feedback_session_settings,omitempty"`

	FeedbackSessionCreatedAt time.Time      `gorm:"type:timestamptz;column:feedback_session_created_at;autoCreateTime" json:"feedback_session_created_at"`
	FeedbackSessionUpdatedAt time.Time      `gorm:"type:timestamptz;column:feedback_session_updated_at;autoUpdateTime" json:"feedback_session_updated_at"`
	FeedbackSessionDeletedAt gorm.DeletedAt `gorm:"column:feedback_session_deleted_at;index" json:"feedback_session_deleted_at,omitempty"`
}

func (FeedbackSessionModel) TableName() string { return "feedback_sessions" }

func (m *FeedbackSessionModel) gracePeriod() time.Duration {
	if m.FeedbackSessionGracePeriodMinutes <= 0 {
		return 0
	}
	return time.Duration(m.FeedbackSessionGracePeriodMinutes) * time.Minute
}

func (m *FeedbackSessionModel) IsWaitingToOpenAt(now time.Time) bool {
	return now.Before(m.FeedbackSessionStartTime)
}

func (m *FeedbackSessionModel) IsOpenedAt(now time.Time) bool {
	return !now.Before(m.FeedbackSessionStartTime) && now.Before(m.FeedbackSessionEndTime)
}

func (m *FeedbackSessionModel) IsInGracePeriodAt(now time.Time) bool {
	return !now.Before(m.FeedbackSessionEndTime) && now.Before(m.FeedbackSessionEndTime.Add(m.gracePeriod()))
}

func (m *FeedbackSessionModel) IsClosedAt(now time.Time) bool {
	return !now.Before(m.FeedbackSessionEndTime.Add(m.gracePeriod()))
}

func (m *FeedbackSessionModel) IsVisibleAt(now time.Time) bool {
	from := m.FeedbackSessionStartTime
	if m.FeedbackSessionVisibleFrom != nil {
		from = *m.FeedbackSessionVisibleFrom
	}
	return !now.Before(from)
}

func (m *FeedbackSessionModel) IsPublishedAt(now time.Time) bool {
	if m.FeedbackSessionPublishedAt != nil && !now.Before(*m.FeedbackSessionPublishedAt) {
		return true
	}
	return m.FeedbackSessionResultsVisibleFrom != nil && !now.Before(*m.FeedbackSessionResultsVisibleFrom)
}
