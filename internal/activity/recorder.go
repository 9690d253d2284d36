package activity

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/2beens/fittrack/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=recorder_mocks_test.go -package=activity_test

// MaxDescriptionLen matches the activity_description column width, in characters.
const MaxDescriptionLen = 255

type entryRepo interface {
	Add(ctx context.Context, entry Entry) error
}

// Recorder appends entries to the activity log. A failed write is logged and
// counted, never returned: the action that triggered it has already happened.
type Recorder struct {
	repo    entryRepo
	metrics *metrics.Manager
	now     func() time.Time
}

func NewRecorder(repo entryRepo, metricsManager *metrics.Manager) *Recorder {
	return &Recorder{
		repo:    repo,
		metrics: metricsManager,
		now:     time.Now,
	}
}

func (r *Recorder) Record(ctx context.Context, entry Entry) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = r.now().UTC()
	}
	entry.Description = truncate(entry.Description, MaxDescriptionLen)

	if err := r.repo.Add(ctx, entry); err != nil {
		log.WithError(err).
			WithField("userId", entry.UserID).
			Errorf("activity log [%s] failed, continuing", entry.Type)
		if r.metrics != nil {
			r.metrics.CounterActivityLogFailures.Inc()
		}
	}
}

func truncate(s string, maxChars int) string {
	if utf8.RuneCountInString(s) <= maxChars {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxChars])
}
