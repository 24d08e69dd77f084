package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"studenthome_backend/internals/features/feedback/sessions/model"
)

const publishJobTimeout = 2 * time.Minute

// StartPublishResultsCron stamps published_at on sessions whose results time
// has passed. Overlapping runs are skipped.
func StartPublishResultsCron(db *gorm.DB, schedule string) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))

	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishJobTimeout)
		defer cancel()

		n, err := PublishDueSessions(ctx, db, time.Now())
		if err != nil {
			log.Error().Err(err).Msg("[PUBLISH] publish due sessions")
			return
		}
		if n > 0 {
			log.Info().Int64("sessions", n).Msg("[PUBLISH] results published")
		}
	})
	if err != nil {
		return nil, fmt.Errorf("add publish cron %q: %w", schedule, err)
	}

	log.Info().Str("schedule", schedule).Msg("[PUBLISH] started")
	c.Start()
	return c, nil
}

// PublishDueSessions returns the number of sessions it published.
func PublishDueSessions(ctx context.Context, db *gorm.DB, now time.Time) (int64, error) {
	res := publishDueQuery(db.WithContext(ctx), now)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func publishDueQuery(db *gorm.DB, now time.Time) *gorm.DB {
	return db.Model(&model.FeedbackSessionModel{}).
		Where("feedback_session_published_at IS NULL").
		Where("feedback_session_results_visible_from IS NOT NULL").
		Where("feedback_session_results_visible_from <= ?", now).
		Update("feedback_session_published_at", gorm.Expr("feedback_session_results_visible_from"))
}
