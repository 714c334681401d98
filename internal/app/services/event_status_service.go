package services

import (
	"context"
	"time"

	"github.com/kartavya/website/internal/app/models"
	"github.com/kartavya/website/internal/app/repositories"
	"github.com/kartavya/website/internal/pkg/metrics"
	"github.com/rs/zerolog"
)

// EventStatusUpdater is the write side of the event repository
type EventStatusUpdater interface {
	RefreshStatuses(ctx context.Context, now time.Time, window time.Duration) (repositories.StatusRefreshResult, error)
}

// EventStatusService keeps event statuses in step with the clock
type EventStatusService struct {
	events  EventStatusUpdater
	window  time.Duration
	metrics *metrics.Metrics
	logger  zerolog.Logger
	now     func() time.Time
}

// NewEventStatusService creates a new EventStatusService. window is how long
// after its start an event counts as ongoing.
func NewEventStatusService(events EventStatusUpdater, window time.Duration, m *metrics.Metrics, logger zerolog.Logger) *EventStatusService {
	return &EventStatusService{
		events:  events,
		window:  window,
		metrics: m,
		logger:  logger.With().Str("component", "event_status").Logger(),
		now:     time.Now,
	}
}

// Refresh moves started events to ongoing and finished ones to past.
func (s *EventStatusService) Refresh(ctx context.Context) (repositories.StatusRefreshResult, error) {
	result, err := s.events.RefreshStatuses(ctx, s.now(), s.window)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to refresh event statuses")
		return result, err
	}

	s.metrics.EventStatusesUpdated(string(models.EventStatusOngoing), result.Ongoing)
	s.metrics.EventStatusesUpdated(string(models.EventStatusPast), result.Past)
	if result.Ongoing > 0 || result.Past > 0 {
		s.logger.Info().Int64("ongoing", result.Ongoing).Int64("past", result.Past).Msg("Event statuses refreshed")
	}
	return result, nil
}
