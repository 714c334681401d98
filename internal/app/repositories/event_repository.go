package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/kartavya/website/internal/app/models"
)

// EventRepository maintains event lifecycle state
type EventRepository struct {
	db DBTX
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db DBTX) *EventRepository {
	return &EventRepository{db: db}
}

// StatusRefreshResult counts rows moved by RefreshStatuses
type StatusRefreshResult struct {
	Ongoing int64
	Past    int64
}

// RefreshStatuses moves events whose date is behind now: within window they
// become ongoing, older ones become past. Past events are never revived.
func (r *EventRepository) RefreshStatuses(ctx context.Context, now time.Time, window time.Duration) (StatusRefreshResult, error) {
	var result StatusRefreshResult
	cutoff := now.Add(-window)

	pastQuery, pastArgs, err := psql.Update(CollectionEvents).
		Set("status", models.EventStatusPast).
		Where(squirrel.Eq{"status": []string{string(models.EventStatusUpcoming), string(models.EventStatusOngoing)}}).
		Where(squirrel.Lt{"event_date": cutoff}).
		ToSql()
	if err != nil {
		return result, fmt.Errorf("failed to build past update: %w", err)
	}
	tag, err := r.db.Exec(ctx, pastQuery, pastArgs...)
	if err != nil {
		return result, fmt.Errorf("mark past events: %w", err)
	}
	result.Past = tag.RowsAffected()

	ongoingQuery, ongoingArgs, err := psql.Update(CollectionEvents).
		Set("status", models.EventStatusOngoing).
		Where(squirrel.Eq{"status": string(models.EventStatusUpcoming)}).
		Where(squirrel.LtOrEq{"event_date": now}).
		Where(squirrel.GtOrEq{"event_date": cutoff}).
		ToSql()
	if err != nil {
		return result, fmt.Errorf("failed to build ongoing update: %w", err)
	}
	tag, err = r.db.Exec(ctx, ongoingQuery, ongoingArgs...)
	if err != nil {
		return result, fmt.Errorf("mark ongoing events: %w", err)
	}
	result.Ongoing = tag.RowsAffected()

	return result, nil
}
