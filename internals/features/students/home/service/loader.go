// file: internals/features/students/home/service/loader.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	accountModel "studenthome_backend/internals/features/accounts/accounts/model"
	courseModel "studenthome_backend/internals/features/courses/courses/model"
	responseModel "studenthome_backend/internals/features/feedback/responses/model"
	sessionModel "studenthome_backend/internals/features/feedback/sessions/model"
	"studenthome_backend/internals/features/students/home/dto"
)

var ErrAccountNotFound = errors.New("account not found")

// StudentHomeInput is everything BuildStudentHomePage needs for one student.
type StudentHomeInput struct {
	Account  dto.AccountSummary
	Courses  []dto.CourseDetailsBundle
	Statuses dto.SubmissionStatusMap
}

type HomeDataSource interface {
	LoadStudentHome(ctx context.Context, googleID string, now time.Time) (*StudentHomeInput, error)
}

type HomeLoader struct {
	DB *gorm.DB
}

func NewHomeLoader(db *gorm.DB) *HomeLoader {
	return &HomeLoader{DB: db}
}

type submittedSessionRow struct {
	CourseID    string `gorm:"column:feedback_response_course_id"`
	SessionName string `gorm:"column:feedback_response_session_name"`
}

// LoadStudentHome reads the student's courses, their sessions and the
// sessions the student already answered. Session flags are evaluated at now.
func (l *HomeLoader) LoadStudentHome(ctx context.Context, googleID string, now time.Time) (*StudentHomeInput, error) {
	db := l.DB.WithContext(ctx)

	// 1) Account
	var acc accountModel.AccountModel
	if err := accountQuery(db, googleID).First(&acc).Error; err != nil {
		return nil, accountLookupError(err)
	}

	// 2) Enrollments
	var courseIDs []string
	if err := enrollmentQuery(db, acc.AccountID).
		Pluck("course_student_course_id", &courseIDs).Error; err != nil {
		return nil, fmt.Errorf("load enrollments: %w", err)
	}
	if len(courseIDs) == 0 {
		return assembleHomeInput(&acc, nil, nil, nil, now), nil
	}

	// 3) Courses + sessions
	var courses []courseModel.CourseModel
	if err := coursesQuery(db, courseIDs).Find(&courses).Error; err != nil {
		return nil, fmt.Errorf("load courses: %w", err)
	}

	var sessions []sessionModel.FeedbackSessionModel
	if err := sessionsQuery(db, courseIDs).Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("load feedback sessions: %w", err)
	}

	// 4) Sessions with at least one response given under the student's course email
	var submitted []submittedSessionRow
	if err := submittedQuery(db, acc.AccountID).Find(&submitted).Error; err != nil {
		return nil, fmt.Errorf("load submission status: %w", err)
	}

	log.Debug().
		Str("google_id", googleID).
		Int("courses", len(courses)).
		Int("sessions", len(sessions)).
		Int("submitted", len(submitted)).
		Msg("student home loaded")

	return assembleHomeInput(&acc, courses, sessions, submitted, now), nil
}

func accountQuery(db *gorm.DB, googleID string) *gorm.DB {
	return db.Where("account_google_id = ?", googleID)
}

func accountLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrAccountNotFound
	}
	return fmt.Errorf("load account: %w", err)
}

func enrollmentQuery(db *gorm.DB, accountID uuid.UUID) *gorm.DB {
	return db.Model(&courseModel.CourseStudentModel{}).
		Where("course_student_account_id = ?", accountID).
		Distinct()
}

func coursesQuery(db *gorm.DB, courseIDs []string) *gorm.DB {
	return db.Where("course_id = ANY(?)", pq.Array(courseIDs)).
		Order("course_id ASC")
}

func sessionsQuery(db *gorm.DB, courseIDs []string) *gorm.DB {
	return db.Where("feedback_session_course_id = ANY(?)", pq.Array(courseIDs)).
		Order("feedback_session_end_time DESC, feedback_session_name ASC")
}

// submittedQuery matches responses to the enrollment by course and giver
// email; a removed enrollment no longer counts.
func submittedQuery(db *gorm.DB, accountID uuid.UUID) *gorm.DB {
	return db.Model(&responseModel.FeedbackResponseModel{}).
		Distinct("feedback_response_course_id", "feedback_response_session_name").
		Joins(`JOIN course_students cs
			ON cs.course_student_course_id = feedback_responses.feedback_response_course_id
			AND cs.course_student_email = feedback_responses.feedback_response_giver_email
			AND cs.course_student_deleted_at IS NULL`).
		Where("cs.course_student_account_id = ?", accountID)
}

// assembleHomeInput groups sessions under their course (course order kept,
// session order kept) and records a status for every session it emits.
func assembleHomeInput(
	acc *accountModel.AccountModel,
	courses []courseModel.CourseModel,
	sessions []sessionModel.FeedbackSessionModel,
	submitted []submittedSessionRow,
	now time.Time,
) *StudentHomeInput {
	in := &StudentHomeInput{
		Account: dto.AccountSummary{
			GoogleID:     acc.AccountGoogleID,
			Name:         acc.AccountName,
			Email:        acc.AccountEmail,
			IsInstructor: acc.AccountIsInstructor,
		},
		Courses:  make([]dto.CourseDetailsBundle, 0, len(courses)),
		Statuses: make(dto.SubmissionStatusMap, len(sessions)),
	}

	done := make(map[dto.SessionKey]struct{}, len(submitted))
	for _, r := range submitted {
		done[dto.SessionKey{CourseID: r.CourseID, SessionName: r.SessionName}] = struct{}{}
	}

	byCourse := make(map[string][]dto.FeedbackSessionDetails, len(courses))
	for i := range sessions {
		s := &sessions[i]
		d := dto.FeedbackSessionDetails{
			CourseID: s.FeedbackSessionCourseID,
			Name:     s.FeedbackSessionName,
			EndTime:  s.FeedbackSessionEndTime,
			Flags:    SessionFlagsAt(s, now),
		}
		byCourse[d.CourseID] = append(byCourse[d.CourseID], d)
	}

	for _, c := range courses {
		list := byCourse[c.CourseID]
		if list == nil {
			list = []dto.FeedbackSessionDetails{}
		}
		for _, d := range list {
			_, ok := done[d.Key()]
			in.Statuses[d.Key()] = ok
		}
		in.Courses = append(in.Courses, dto.CourseDetailsBundle{
			Course:           dto.CourseSummary{ID: c.CourseID, Name: c.CourseName},
			FeedbackSessions: list,
		})
	}
	return in
}

// SessionFlagsAt snapshots the lifecycle predicates of s at now.
func SessionFlagsAt(s *sessionModel.FeedbackSessionModel, now time.Time) dto.SessionFlags {
	return dto.SessionFlags{
		Opened:        s.IsOpenedAt(now),
		WaitingToOpen: s.IsWaitingToOpenAt(now),
		Closed:        s.IsClosedAt(now),
		Published:     s.IsPublishedAt(now),
		Visible:       s.IsVisibleAt(now),
	}
}
