package service

import (
	"strings"
	"testing"

	"studenthome_backend/internals/features/students/home/dto"
)

const (
	resultsLink = "/page/studentFeedbackResultsPage?courseid=CS2103&fsname=First&user=alice.g"
	editLink    = "/page/studentFeedbackSubmissionEditPage?courseid=CS2103&fsname=First&user=alice.g"
)

func session(flags dto.SessionFlags) dto.FeedbackSessionDetails {
	return dto.FeedbackSessionDetails{CourseID: "CS2103", Name: "First", Flags: flags}
}

func TestActionsOpenNotSubmitted(t *testing.T) {
	got := StudentFeedbackSessionActions(session(dto.SessionFlags{Opened: true, Visible: true}), 0, false, "alice.g")

	want := `<a class="btn btn-default btn-xs btn-tm-actions disabled" href="` + resultsLink + `" name="viewFeedbackResults0"  id="viewFeedbackResults0" data-toggle="tooltip" data-placement="top"title="View the submitted responses for this feedback session"role="button">View Responses</a>` +
		`<a class="btn btn-default btn-xs btn-tm-actions"id="submitFeedback0" href="` + editLink + `" data-toggle="tooltip" data-placement="top"title="Start submitting feedback"role="button">Start Submission</a>`

	if got != want {
		t.Errorf("actions mismatch\n got: %s\nwant: %s", got, want)
	}
}

func TestActionsOpenNotSubmittedInvisible(t *testing.T) {
	got := StudentFeedbackSessionActions(session(dto.SessionFlags{Opened: true}), 4, false, "alice.g")

	if !strings.Contains(got, `<a class="btn btn-default btn-xs btn-tm-actions disabled" id="submitFeedback4" href="`+editLink+`"`) {
		t.Errorf("submit button should be disabled when the session is not visible: %s", got)
	}
}

func TestActionsPublishedSubmittedClosed(t *testing.T) {
	flags := dto.SessionFlags{Closed: true, Published: true, Visible: true}
	got := StudentFeedbackSessionActions(session(flags), 3, true, "alice.g")

	want := `<a class="btn btn-default btn-xs btn-tm-actions"href="` + resultsLink + `" name="viewFeedbackResults3"  id="viewFeedbackResults3" data-toggle="tooltip" data-placement="top"title="View the submitted responses for this feedback session"role="button">View Responses</a>` +
		`<a class="btn btn-default btn-xs btn-tm-actions" href="` + editLink + `" name="editFeedbackResponses3" id="editFeedbackResponses3" data-toggle="tooltip" data-placement="top"title="View submitted feedback"role="button">View Submission</a>`

	if got != want {
		t.Errorf("actions mismatch\n got: %s\nwant: %s", got, want)
	}
}

func TestActionsOpenSubmitted(t *testing.T) {
	got := StudentFeedbackSessionActions(session(dto.SessionFlags{Opened: true, Visible: true}), 1, true, "alice.g")

	if !strings.Contains(got, `title="Edit submitted feedback"role="button">Edit Submission</a>`) {
		t.Errorf("open submitted session should offer Edit Submission: %s", got)
	}
	if strings.Contains(got, "submitFeedback") {
		t.Errorf("submitted session must not offer Start Submission: %s", got)
	}
}

func TestActionsAwaiting(t *testing.T) {
	got := StudentFeedbackSessionActions(session(dto.SessionFlags{WaitingToOpen: true, Visible: true}), 2, false, "alice.g")

	if !strings.Contains(got, `title="This feedback session is not yet opened."role="button">Start Submission</a>`) {
		t.Errorf("awaiting session should show the awaiting tooltip: %s", got)
	}
}

func TestActionsClosedNotSubmitted(t *testing.T) {
	got := StudentFeedbackSessionActions(session(dto.SessionFlags{Closed: true, Visible: true}), 5, false, "alice.g")

	want := `<a class="btn btn-default btn-xs btn-tm-actions"id="submitFeedback5" href="` + editLink + `" data-toggle="tooltip" data-placement="top"title="View submitted feedback"role="button">View Submission</a>`
	if !strings.HasSuffix(got, want) {
		t.Errorf("closed session button mismatch\n got: %s\nwant suffix: %s", got, want)
	}
}

func TestActionsEscapeAttributeBreakout(t *testing.T) {
	fs := dto.FeedbackSessionDetails{CourseID: "CS2103", Name: "First", Flags: dto.SessionFlags{Opened: true}}
	got := StudentFeedbackSessionActions(fs, 0, false, `x"><script>`)

	if strings.Contains(got, "<script>") {
		t.Errorf("user id leaked raw markup: %s", got)
	}
	if strings.Contains(got, "&amp;") {
		t.Errorf("ampersands in links must stay unescaped: %s", got)
	}
}
