package feedback

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"studenthome_backend/internals/seeds/utils"
)

func TestSessionSeedDefaults(t *testing.T) {
	records, err := utils.DecodeJSONRecords[FeedbackSessionSeed]([]byte(`[{
		"course_id": " CS2103 ",
		"name": "Peer review",
		"creator_email": "Carol@Example.com",
		"start_time": "2026-03-01T09:00:00Z",
		"end_time": "2026-03-08T09:00:00Z"
	}]`), "sessions.json")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	m := records[0].ToModel()
	if m.FeedbackSessionCourseID != "CS2103" {
		t.Errorf("course id = %q", m.FeedbackSessionCourseID)
	}
	if m.FeedbackSessionCreatorEmail != "carol@example.com" {
		t.Errorf("creator email = %q", m.FeedbackSessionCreatorEmail)
	}
	if m.FeedbackSessionGracePeriodMinutes != 15 {
		t.Errorf("grace = %d, want 15", m.FeedbackSessionGracePeriodMinutes)
	}
	if m.FeedbackSessionTimeZone != "UTC" {
		t.Errorf("time zone = %q, want UTC", m.FeedbackSessionTimeZone)
	}
	if m.FeedbackSessionSettings != nil {
		t.Errorf("settings = %v, want nil", m.FeedbackSessionSettings)
	}
}

func TestSessionSeedExplicitZeroGrace(t *testing.T) {
	zero := 0
	m := FeedbackSessionSeed{GracePeriodMinutes: &zero}.ToModel()
	if m.FeedbackSessionGracePeriodMinutes != 0 {
		t.Errorf("grace = %d, want 0", m.FeedbackSessionGracePeriodMinutes)
	}
}

func TestSessionSeedValidation(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"end before start", `[{"course_id":"C","name":"S","creator_email":"a@b.co","start_time":"2026-03-08T09:00:00Z","end_time":"2026-03-01T09:00:00Z"}]`},
		{"bad time zone", `[{"course_id":"C","name":"S","creator_email":"a@b.co","start_time":"2026-03-01T09:00:00Z","end_time":"2026-03-08T09:00:00Z","time_zone":"Nowhere/Land"}]`},
		{"missing name", `[{"course_id":"C","creator_email":"a@b.co","start_time":"2026-03-01T09:00:00Z","end_time":"2026-03-08T09:00:00Z"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := utils.DecodeJSONRecords[FeedbackSessionSeed]([]byte(tt.raw), "sessions.json"); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestResponseSeedToModel(t *testing.T) {
	m, err := FeedbackResponseSeed{
		CourseID:       "CS2103",
		SessionName:    "Peer review",
		GiverEmail:     " Alice@Example.com",
		RecipientEmail: "%GENERAL%",
		Answer:         map[string]any{"text": "ok"},
	}.ToModel()
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}
	if m.FeedbackResponseGiverEmail != "alice@example.com" {
		t.Errorf("giver = %q", m.FeedbackResponseGiverEmail)
	}
	if m.FeedbackResponseQuestionNumber != 1 {
		t.Errorf("question = %d, want 1", m.FeedbackResponseQuestionNumber)
	}

	var answer map[string]string
	if err := json.Unmarshal(m.FeedbackResponseAnswer, &answer); err != nil {
		t.Fatalf("answer not JSON: %v", err)
	}
	if answer["text"] != "ok" {
		t.Errorf("answer = %v", answer)
	}
}

func TestShippedSeedFilesAreValid(t *testing.T) {
	dir := filepath.Join("..", "data")
	sessions, err := utils.LoadJSONRecords[FeedbackSessionSeed](filepath.Join(dir, "feedback_sessions.json"))
	if err != nil {
		t.Fatalf("sessions: %v", err)
	}
	responses, err := utils.LoadJSONRecords[FeedbackResponseSeed](filepath.Join(dir, "feedback_responses.json"))
	if err != nil {
		t.Fatalf("responses: %v", err)
	}

	known := make(map[string]bool, len(sessions))
	for _, s := range sessions {
		known[s.CourseID+"/"+s.Name] = true
	}
	for _, r := range responses {
		if !known[r.CourseID+"/"+r.SessionName] {
			t.Errorf("response references unknown session %s/%s", r.CourseID, r.SessionName)
		}
		if !strings.Contains(r.GiverEmail, "@") {
			t.Errorf("giver %q is not an email", r.GiverEmail)
		}
	}
}
