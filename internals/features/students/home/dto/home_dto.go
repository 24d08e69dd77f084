// file: internals/features/students/home/dto/home_dto.go
package dto

import (
	"errors"
	"fmt"
	"time"
)

// =========================================================
// INPUT
// =========================================================

type AccountSummary struct {
	GoogleID     string `json:"google_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	IsInstructor bool   `json:"is_instructor"`
}

type CourseSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SessionFlags are the lifecycle predicates of a session evaluated at one
// instant. They are queried independently; callers keep them consistent.
type SessionFlags struct {
	Opened        bool `json:"opened"`
	WaitingToOpen bool `json:"waiting_to_open"`
	Closed        bool `json:"closed"`
	Published     bool `json:"published"`
	Visible       bool `json:"visible"`
}

type FeedbackSessionDetails struct {
	CourseID string       `json:"course_id"`
	Name     string       `json:"name"`
	EndTime  time.Time    `json:"end_time"`
	Flags    SessionFlags `json:"flags"`
}

func (s FeedbackSessionDetails) Key() SessionKey {
	return SessionKey{CourseID: s.CourseID, SessionName: s.Name}
}

type CourseDetailsBundle struct {
	Course           CourseSummary            `json:"course"`
	FeedbackSessions []FeedbackSessionDetails `json:"feedback_sessions"`
}

// SessionKey identifies a feedback session within the submission status map.
type SessionKey struct {
	CourseID    string
	SessionName string
}

func (k SessionKey) String() string {
	return fmt.Sprintf("%s/%s", k.CourseID, k.SessionName)
}

// ErrNoSubmissionStatus is returned by SubmissionStatusMap.Lookup for keys
// the caller never populated.
var ErrNoSubmissionStatus = errors.New("no submission status recorded")

// SubmissionStatusMap records whether the student has submitted each session.
type SubmissionStatusMap map[SessionKey]bool

func (m SubmissionStatusMap) Lookup(key SessionKey) (bool, error) {
	submitted, ok := m[key]
	if !ok {
		return false, fmt.Errorf("%w for session %s", ErrNoSubmissionStatus, key)
	}
	return submitted, nil
}

// =========================================================
// OUTPUT
// =========================================================

type StudentHomePageData struct {
	Account      AccountSummary `json:"account"`
	CourseTables []CourseTable  `json:"course_tables"`
}

type CourseTable struct {
	Course   CourseSummary `json:"course"`
	Links    []ElementTag  `json:"links"`
	Sessions []SessionRow  `json:"sessions"`
}

type SessionRow struct {
	Name    string `json:"name"`
	EndTime string `json:"end_time"`
	Tooltip string `json:"tooltip"`
	Status  string `json:"status"`
	Actions string `json:"actions"`
	Index   string `json:"index"`
}
