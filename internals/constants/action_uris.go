package constants

// Page URIs linked from the student dashboard.
const (
	StudentHomePage                   = "/page/studentHomePage"
	StudentCourseDetailsPage          = "/page/studentCourseDetailsPage"
	StudentFeedbackSubmissionEditPage = "/page/studentFeedbackSubmissionEditPage"
	StudentFeedbackResultsPage        = "/page/studentFeedbackResultsPage"
)

// Query parameter names.
const (
	ParamUserID              = "user"
	ParamCourseID            = "courseid"
	ParamFeedbackSessionName = "fsname"
)
