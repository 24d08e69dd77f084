package scheduler

import (
	"strings"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  "host=localhost user=test dbname=test sslmode=disable",
		PreferSimpleProtocol: true,
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true, SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}
	return db
}

func TestPublishDueQuery(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	stmt := publishDueQuery(dryRunDB(t), now).Statement
	sql := stmt.SQL.String()

	for _, want := range []string{
		`UPDATE "feedback_sessions" SET "feedback_session_published_at"=feedback_session_results_visible_from`,
		"feedback_session_published_at IS NULL",
		"feedback_session_results_visible_from IS NOT NULL",
		"feedback_session_results_visible_from <= $",
		`"feedback_sessions"."feedback_session_deleted_at" IS NULL`,
	} {
		if !strings.Contains(sql, want) {
			t.Errorf("SQL missing %q\n%s", want, sql)
		}
	}

	found := false
	for _, v := range stmt.Vars {
		if got, ok := v.(time.Time); ok && got.Equal(now) {
			found = true
		}
	}
	if !found {
		t.Errorf("now not bound in %v", stmt.Vars)
	}
}

func TestStartPublishResultsCronRejectsBadSchedule(t *testing.T) {
	if _, err := StartPublishResultsCron(dryRunDB(t), "not a schedule"); err == nil {
		t.Error("expected error for invalid schedule")
	}
}
