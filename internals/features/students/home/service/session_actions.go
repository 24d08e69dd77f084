package service

import (
	"strconv"
	"strings"

	"studenthome_backend/internals/constants"
	"studenthome_backend/internals/features/students/home/dto"
)

const actionButtonClass = "btn btn-default btn-xs btn-tm-actions"

// attrEscaper keeps a value inside its double-quoted attribute. Ampersands are
// left as-is so query strings render unchanged.
var attrEscaper = strings.NewReplacer(`"`, "&quot;", "<", "&lt;", ">", "&gt;")

// markupAttr is one attribute plus the literal text written after its closing
// quote. The separators reproduce the established dashboard markup byte for
// byte, including the places where attributes touch.
type markupAttr struct {
	name  string
	value string
	after string
}

type anchorTag struct {
	attrs []markupAttr
	text  string
}

func newAnchor(text string) *anchorTag {
	return &anchorTag{text: text}
}

func (a *anchorTag) attr(name, value, after string) *anchorTag {
	a.attrs = append(a.attrs, markupAttr{name: name, value: value, after: after})
	return a
}

// class writes the button class. A disabled button carries the extra class
// and a space before the next attribute; an enabled one does not.
func (a *anchorTag) class(disabled bool) *anchorTag {
	if disabled {
		return a.attr("class", actionButtonClass+" disabled", " ")
	}
	return a.attr("class", actionButtonClass, "")
}

func (a *anchorTag) tooltip(title string) *anchorTag {
	return a.
		attr("data-toggle", "tooltip", " ").
		attr("data-placement", "top", "").
		attr("title", title, "").
		attr("role", "button", "")
}

func (a *anchorTag) writeTo(b *strings.Builder) {
	b.WriteString("<a ")
	for _, at := range a.attrs {
		b.WriteString(at.name)
		b.WriteString(`="`)
		b.WriteString(attrEscaper.Replace(at.value))
		b.WriteByte('"')
		b.WriteString(at.after)
	}
	b.WriteByte('>')
	b.WriteString(attrEscaper.Replace(a.text))
	b.WriteString("</a>")
}

func submissionLinkText(opened bool) string {
	if opened {
		return "Edit Submission"
	}
	return "View Submission"
}

// StudentFeedbackSessionActions renders the action buttons of one session row.
// idx makes the element ids unique on the page.
func StudentFeedbackSessionActions(fs dto.FeedbackSessionDetails, idx int, hasSubmitted bool, userID string) string {
	n := strconv.Itoa(idx)
	resultsLink := StudentFeedbackResultsLink(fs.CourseID, fs.Name, userID)
	editLink := StudentFeedbackResponseEditLink(fs.CourseID, fs.Name, userID)

	var b strings.Builder

	newAnchor("View Responses").
		class(!fs.Flags.Published).
		attr("href", resultsLink, " ").
		attr("name", "viewFeedbackResults"+n, "  ").
		attr("id", "viewFeedbackResults"+n, " ").
		tooltip(constants.TooltipSessionResults).
		writeTo(&b)

	if hasSubmitted {
		title := constants.TooltipSessionViewSubmittedResponse
		if fs.Flags.Opened {
			title = constants.TooltipSessionEditSubmittedResponse
		}
		newAnchor(submissionLinkText(fs.Flags.Opened)).
			attr("class", actionButtonClass, " ").
			attr("href", editLink, " ").
			attr("name", "editFeedbackResponses"+n, " ").
			attr("id", "editFeedbackResponses"+n, " ").
			tooltip(title).
			writeTo(&b)
		return b.String()
	}

	var title, text string
	if !fs.Flags.Closed {
		title = constants.TooltipSessionSubmit
		if fs.Flags.WaitingToOpen {
			title = constants.TooltipSessionAwaiting
		}
		text = "Start Submission"
	} else {
		title = constants.TooltipSessionViewSubmittedResponse
		text = submissionLinkText(fs.Flags.Opened)
	}
	newAnchor(text).
		class(!fs.Flags.Visible).
		attr("id", "submitFeedback"+n, " ").
		attr("href", editLink, " ").
		tooltip(title).
		writeTo(&b)

	return b.String()
}
