package service

import (
	"studenthome_backend/internals/constants"
	"studenthome_backend/internals/features/students/home/dto"
)

// StudentStatusForSession returns the status label of a session for a
// student. First match wins: open, waiting, published, closed.
func StudentStatusForSession(flags dto.SessionFlags, hasSubmitted bool) string {
	switch {
	case flags.Opened:
		if hasSubmitted {
			return constants.StatusSubmitted
		}
		return constants.StatusPending
	case flags.WaitingToOpen:
		return constants.StatusAwaiting
	case flags.Published:
		return constants.StatusPublished
	default:
		return constants.StatusClosed
	}
}

// StudentHoverMessageForSession builds the status tooltip. The closed and
// published suffixes are appended on top of the base message.
func StudentHoverMessageForSession(flags dto.SessionFlags, hasSubmitted bool) string {
	var msg string
	switch {
	case flags.WaitingToOpen:
		msg = constants.TooltipStudentSessionStatusAwaiting
	case hasSubmitted:
		msg = constants.TooltipStudentSessionStatusSubmitted
	default:
		msg = constants.TooltipStudentSessionStatusPending
	}
	if flags.Closed {
		msg += constants.TooltipStudentSessionStatusClosed
	}
	if flags.Published {
		msg += constants.TooltipStudentSessionStatusPublished
	}
	return msg
}
