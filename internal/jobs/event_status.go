package jobs

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/kartavya/website/internal/app/repositories"
)

// EventStatusJobName is the registry name of the event status refresher.
const EventStatusJobName = "event-status"

// EventStatusRefresher moves events along upcoming, ongoing and past.
type EventStatusRefresher interface {
	Refresh(ctx context.Context) (repositories.StatusRefreshResult, error)
}

// EventStatusJob runs the refresher on a schedule.
type EventStatusJob struct {
	refresher EventStatusRefresher
	spec      string
	timeout   time.Duration
	logger    zerolog.Logger
}

// NewEventStatusJob creates the job. An empty spec leaves it disabled, so
// stored statuses are only changed when a schedule is configured.
func NewEventStatusJob(refresher EventStatusRefresher, spec string, logger zerolog.Logger) *EventStatusJob {
	return &EventStatusJob{
		refresher: refresher,
		spec:      spec,
		timeout:   time.Minute,
		logger:    logger.With().Str("job", EventStatusJobName).Logger(),
	}
}

// Spec returns the cron schedule; empty when disabled.
func (j *EventStatusJob) Spec(context.Context) string {
	return j.spec
}

// Func returns the function cron invokes. Failures are logged and retried on
// the next tick.
func (j *EventStatusJob) Func(ctx context.Context) func() {
	return func() {
		runCtx, cancel := context.WithTimeout(ctx, j.timeout)
		defer cancel()

		start := time.Now()
		res, err := j.refresher.Refresh(runCtx)
		if err != nil {
			// The refresher already logged the cause.
			j.logger.Debug().Err(err).Msg("Event status run failed, retrying on next tick")
			return
		}
		j.logger.Debug().
			Int64("ongoing", res.Ongoing).
			Int64("past", res.Past).
			Dur("took", time.Since(start)).
			Msg("Event status run finished")
	}
}
