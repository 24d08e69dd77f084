package service

import (
	"studenthome_backend/internals/constants"
	helper "studenthome_backend/internals/helpers"
)

// Parameter order is part of the contract: templates and tests match on it.

// StudentCourseDetailsLink: base?user=..&courseid=..
func StudentCourseDetailsLink(courseID, userID string) string {
	link := constants.StudentCourseDetailsPage
	link = helper.AddParamToURL(link, constants.ParamUserID, userID)
	link = helper.AddParamToURL(link, constants.ParamCourseID, courseID)
	return link
}

// StudentFeedbackResponseEditLink: base?courseid=..&fsname=..&user=..
func StudentFeedbackResponseEditLink(courseID, sessionName, userID string) string {
	return sessionLink(constants.StudentFeedbackSubmissionEditPage, courseID, sessionName, userID)
}

// StudentFeedbackResultsLink: base?courseid=..&fsname=..&user=..
func StudentFeedbackResultsLink(courseID, sessionName, userID string) string {
	return sessionLink(constants.StudentFeedbackResultsPage, courseID, sessionName, userID)
}

func sessionLink(base, courseID, sessionName, userID string) string {
	link := helper.AddParamToURL(base, constants.ParamCourseID, courseID)
	link = helper.AddParamToURL(link, constants.ParamFeedbackSessionName, sessionName)
	link = helper.AddParamToURL(link, constants.ParamUserID, userID)
	return link
}
