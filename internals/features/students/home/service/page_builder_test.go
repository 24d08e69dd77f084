package service

import (
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"studenthome_backend/internals/constants"
	"studenthome_backend/internals/features/students/home/dto"
)

var testAccount = dto.AccountSummary{GoogleID: "alice.g", Name: "Alice", Email: "alice@example.com"}

func fixtureCourses() ([]dto.CourseDetailsBundle, dto.SubmissionStatusMap) {
	end := time.Date(2026, 4, 30, 23, 59, 0, 0, time.UTC)
	courses := []dto.CourseDetailsBundle{
		{
			Course: dto.CourseSummary{ID: "CS2103", Name: "Software Engineering"},
			FeedbackSessions: []dto.FeedbackSessionDetails{
				{CourseID: "CS2103", Name: "Mid-term <peer> review", EndTime: end, Flags: dto.SessionFlags{Opened: true, Visible: true}},
				{CourseID: "CS2103", Name: "Kick-off", EndTime: end.Add(-30 * 24 * time.Hour), Flags: dto.SessionFlags{Closed: true, Published: true, Visible: true}},
			},
		},
		{
			Course:           dto.CourseSummary{ID: "CS1010", Name: "Programming Methodology"},
			FeedbackSessions: []dto.FeedbackSessionDetails{},
		},
		{
			Course: dto.CourseSummary{ID: "MA1101", Name: "Linear Algebra"},
			FeedbackSessions: []dto.FeedbackSessionDetails{
				{CourseID: "MA1101", Name: "Tutorial feedback", EndTime: end.Add(7 * 24 * time.Hour), Flags: dto.SessionFlags{WaitingToOpen: true}},
			},
		},
	}
	statuses := dto.SubmissionStatusMap{
		{CourseID: "CS2103", SessionName: "Mid-term <peer> review"}: false,
		{CourseID: "CS2103", SessionName: "Kick-off"}:               true,
		{CourseID: "MA1101", SessionName: "Tutorial feedback"}:      false,
	}
	return courses, statuses
}

func TestBuildStudentHomePagePreservesOrder(t *testing.T) {
	courses, statuses := fixtureCourses()

	page, err := BuildStudentHomePage(testAccount, courses, statuses, time.UTC)
	if err != nil {
		t.Fatalf("BuildStudentHomePage: %v", err)
	}

	if len(page.CourseTables) != len(courses) {
		t.Fatalf("got %d course tables, want %d", len(page.CourseTables), len(courses))
	}
	for i, table := range page.CourseTables {
		if table.Course.ID != courses[i].Course.ID {
			t.Errorf("table %d course = %s, want %s", i, table.Course.ID, courses[i].Course.ID)
		}
		if len(table.Sessions) != len(courses[i].FeedbackSessions) {
			t.Errorf("table %d has %d rows, want %d", i, len(table.Sessions), len(courses[i].FeedbackSessions))
		}
	}

	if page.Account.GoogleID != "alice.g" {
		t.Errorf("account not carried through: %+v", page.Account)
	}
}

func TestBuildStudentHomePageGlobalIndex(t *testing.T) {
	courses, statuses := fixtureCourses()

	page, err := BuildStudentHomePage(testAccount, courses, statuses, time.UTC)
	if err != nil {
		t.Fatalf("BuildStudentHomePage: %v", err)
	}

	n := 0
	for _, table := range page.CourseTables {
		for _, row := range table.Sessions {
			if row.Index != strconv.Itoa(n) {
				t.Errorf("row %q index = %s, want %d", row.Name, row.Index, n)
			}
			if !strings.Contains(row.Actions, `id="viewFeedbackResults`+strconv.Itoa(n)+`"`) {
				t.Errorf("row %d actions do not use the page-wide index: %s", n, row.Actions)
			}
			n++
		}
	}
	if n != 3 {
		t.Fatalf("walked %d rows, want 3", n)
	}
}

func TestBuildStudentHomePageRows(t *testing.T) {
	courses, statuses := fixtureCourses()

	page, err := BuildStudentHomePage(testAccount, courses, statuses, time.UTC)
	if err != nil {
		t.Fatalf("BuildStudentHomePage: %v", err)
	}

	first := page.CourseTables[0].Sessions[0]
	if first.Name != "Mid-term &lt;peer&gt; review" {
		t.Errorf("name not escaped: %q", first.Name)
	}
	if first.EndTime != "Thu, 30 Apr 2026, 23:59" {
		t.Errorf("end time = %q", first.EndTime)
	}
	if first.Status != constants.StatusPending {
		t.Errorf("status = %q, want Pending", first.Status)
	}
	if !strings.Contains(first.Actions, "Start Submission") {
		t.Errorf("pending row should offer Start Submission: %s", first.Actions)
	}
	// raw name goes into the link, escaped for the query only
	if !strings.Contains(first.Actions, "fsname=Mid-term+%3Cpeer%3E+review") {
		t.Errorf("link should carry the query-escaped session name: %s", first.Actions)
	}

	second := page.CourseTables[0].Sessions[1]
	if second.Status != constants.StatusPublished {
		t.Errorf("status = %q, want Published", second.Status)
	}
	if !strings.Contains(second.Actions, "View Submission") {
		t.Errorf("closed submitted row should offer View Submission: %s", second.Actions)
	}

	third := page.CourseTables[2].Sessions[0]
	if third.Status != constants.StatusAwaiting {
		t.Errorf("status = %q, want Awaiting", third.Status)
	}
	if third.Tooltip != constants.TooltipStudentSessionStatusAwaiting {
		t.Errorf("tooltip = %q", third.Tooltip)
	}
}

func TestBuildStudentHomePageCourseLinks(t *testing.T) {
	courses, statuses := fixtureCourses()

	page, err := BuildStudentHomePage(testAccount, courses, statuses, time.UTC)
	if err != nil {
		t.Fatalf("BuildStudentHomePage: %v", err)
	}

	links := page.CourseTables[1].Links
	if len(links) != 1 {
		t.Fatalf("got %d links, want 1", len(links))
	}
	if links[0].Content != "View Team" {
		t.Errorf("link content = %q", links[0].Content)
	}
	if got, want := links[0].Attr("href"), "/page/studentCourseDetailsPage?user=alice.g&courseid=CS1010"; got != want {
		t.Errorf("href = %q, want %q", got, want)
	}
	if got := links[0].Attr("title"); got != constants.TooltipStudentCourseDetails {
		t.Errorf("title = %q", got)
	}
}

func TestBuildStudentHomePageMissingStatus(t *testing.T) {
	courses, statuses := fixtureCourses()
	delete(statuses, dto.SessionKey{CourseID: "MA1101", SessionName: "Tutorial feedback"})

	page, err := BuildStudentHomePage(testAccount, courses, statuses, time.UTC)
	if err == nil {
		t.Fatal("expected an error for a session without submission status")
	}
	if !errors.Is(err, ErrMissingSubmissionStatus) {
		t.Errorf("error %v does not wrap ErrMissingSubmissionStatus", err)
	}
	if page != nil {
		t.Errorf("no page expected on failure, got %+v", page)
	}
	if !strings.Contains(err.Error(), "MA1101") {
		t.Errorf("error should name the course: %v", err)
	}
}

func TestBuildStudentHomePageEmpty(t *testing.T) {
	page, err := BuildStudentHomePage(testAccount, nil, nil, nil)
	if err != nil {
		t.Fatalf("BuildStudentHomePage: %v", err)
	}
	if page.CourseTables == nil || len(page.CourseTables) != 0 {
		t.Errorf("want an empty, non-nil course table list, got %#v", page.CourseTables)
	}
}

func TestCompositeKeyDoesNotCollide(t *testing.T) {
	// "a%b"+"c" and "a"+"b%c" collapse to the same delimited string key
	statuses := dto.SubmissionStatusMap{
		{CourseID: "a%b", SessionName: "c"}: true,
	}
	if _, err := statuses.Lookup(dto.SessionKey{CourseID: "a", SessionName: "b%c"}); err == nil {
		t.Error("distinct (course, session) pairs must not share a status entry")
	}
}
