package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kartavya/website/internal/app/repositories"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventStatusRefresh(t *testing.T) {
	updater := &fakeEventUpdater{result: repositories.StatusRefreshResult{Ongoing: 1, Past: 2}}
	svc := NewEventStatusService(updater, 4*time.Hour, nil, zerolog.Nop())
	fixed := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	result, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Past)
	assert.Equal(t, fixed, updater.now)
	assert.Equal(t, 4*time.Hour, updater.window)
}

func TestEventStatusRefreshError(t *testing.T) {
	svc := NewEventStatusService(&fakeEventUpdater{err: errors.New("down")}, time.Hour, nil, zerolog.Nop())
	_, err := svc.Refresh(context.Background())
	assert.Error(t, err)
}
