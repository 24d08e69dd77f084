// file: internals/features/students/home/service/page_builder.go
package service

import (
	"fmt"
	"strconv"
	"time"

	"studenthome_backend/internals/constants"
	"studenthome_backend/internals/features/students/home/dto"
	helper "studenthome_backend/internals/helpers"
	"studenthome_backend/internals/helpers/dbtime"
)

// ErrMissingSubmissionStatus marks a session that reached the page builder
// without a submission status. It is a caller bug, never a "not submitted".
var ErrMissingSubmissionStatus = dto.ErrNoSubmissionStatus

// BuildStudentHomePage assembles the dashboard view model. Courses and their
// sessions keep input order; session indexes run across all courses from 0.
// End times are formatted in loc (UTC when nil).
func BuildStudentHomePage(
	account dto.AccountSummary,
	courses []dto.CourseDetailsBundle,
	statuses dto.SubmissionStatusMap,
	loc *time.Location,
) (*dto.StudentHomePageData, error) {
	page := &dto.StudentHomePageData{
		Account:      account,
		CourseTables: make([]dto.CourseTable, 0, len(courses)),
	}

	sessionIdx := 0 // not reset between courses
	for _, course := range courses {
		rows, err := createSessionRows(course.FeedbackSessions, statuses, sessionIdx, account.GoogleID, loc)
		if err != nil {
			return nil, fmt.Errorf("course %s: %w", course.Course.ID, err)
		}
		sessionIdx += len(course.FeedbackSessions)

		page.CourseTables = append(page.CourseTables, dto.CourseTable{
			Course:   course.Course,
			Links:    createCourseTableLinks(course.Course.ID, account.GoogleID),
			Sessions: rows,
		})
	}
	return page, nil
}

func createCourseTableLinks(courseID, userID string) []dto.ElementTag {
	return []dto.ElementTag{
		dto.NewElementTag("View Team",
			"href", StudentCourseDetailsLink(courseID, userID),
			"title", constants.TooltipStudentCourseDetails,
		),
	}
}

func createSessionRows(
	sessions []dto.FeedbackSessionDetails,
	statuses dto.SubmissionStatusMap,
	sessionIdx int,
	userID string,
	loc *time.Location,
) ([]dto.SessionRow, error) {
	rows := make([]dto.SessionRow, 0, len(sessions))
	for _, fs := range sessions {
		hasSubmitted, err := statuses.Lookup(fs.Key())
		if err != nil {
			return nil, err
		}

		rows = append(rows, dto.SessionRow{
			Name:    helper.SanitizeForHTML(fs.Name),
			EndTime: dbtime.FormatTime(fs.EndTime, loc),
			Tooltip: StudentHoverMessageForSession(fs.Flags, hasSubmitted),
			Status:  StudentStatusForSession(fs.Flags, hasSubmitted),
			Actions: StudentFeedbackSessionActions(fs, sessionIdx, hasSubmitted, userID),
			Index:   strconv.Itoa(sessionIdx),
		})
		sessionIdx++
	}
	return rows, nil
}
