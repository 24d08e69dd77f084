package constants

// Tooltip texts shown on the student dashboard. The status suffixes carry
// their own <br> so they can be appended to a base message.
const (
	TooltipStudentCourseDetails = "View and edit information regarding your team"

	TooltipStudentSessionStatusAwaiting  = "The session is not open for submission at this time. It is expected to open later."
	TooltipStudentSessionStatusPending   = "The feedback session is yet to be completed by you."
	TooltipStudentSessionStatusSubmitted = "You have submitted your feedback for this session."
	TooltipStudentSessionStatusClosed    = "<br>The session is now closed for submissions."
	TooltipStudentSessionStatusPublished = "<br>The responses for the session can now be viewed."

	TooltipSessionResults               = "View the submitted responses for this feedback session"
	TooltipSessionEditSubmittedResponse = "Edit submitted feedback"
	TooltipSessionViewSubmittedResponse = "View submitted feedback"
	TooltipSessionAwaiting              = "This feedback session is not yet opened."
	TooltipSessionSubmit                = "Start submitting feedback"
)

// Student-facing session status labels.
const (
	StatusSubmitted = "Submitted"
	StatusPending   = "Pending"
	StatusAwaiting  = "Awaiting"
	StatusPublished = "Published"
	StatusClosed    = "Closed"
)
