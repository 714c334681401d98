package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kartavya/website/internal/config"
	"github.com/kartavya/website/internal/jobs"
)

var errStoreDown = errors.New("store down")

// downStore fails every statement, like a database that went away after startup.
type downStore struct{}

func (downStore) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errStoreDown
}

func (downStore) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errStoreDown
}

func (downStore) QueryRow(context.Context, string, ...any) pgx.Row {
	return errRow{}
}

func (downStore) Ping(context.Context) error { return errStoreDown }

type errRow struct{}

func (errRow) Scan(...any) error { return errStoreDown }

func newTestRouter(t *testing.T) (*Dependencies, http.Handler) {
	t.Helper()
	t.Chdir(t.TempDir())

	cfg, err := config.LoadConfig("missing.yaml")
	require.NoError(t, err)

	deps, err := BuildDependencies(cfg, downStore{}, zerolog.Nop())
	require.NoError(t, err)
	return deps, SetupRouter(cfg, deps, zerolog.Nop())
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestRouterDegradesWhenStoreIsDown(t *testing.T) {
	_, router := newTestRouter(t)

	home := get(router, "/")
	assert.Equal(t, http.StatusOK, home.Code)
	assert.Contains(t, home.Body.String(), "No NGOs currently incubated. Check back soon!")
	assert.NotEmpty(t, home.Header().Get("X-Request-ID"))

	ngos := get(router, "/api/v1/ngos")
	assert.Equal(t, http.StatusOK, ngos.Code)
	assert.JSONEq(t, `[]`, extractData(t, ngos.Body.String()))

	health := get(router, "/api/v1/health")
	assert.Equal(t, http.StatusOK, health.Code)
	assert.Contains(t, health.Body.String(), `"degraded"`)
}

func TestRouterServesPreviewImageAndMetrics(t *testing.T) {
	_, router := newTestRouter(t)

	img := get(router, "/functions/v1/og-image?title=Hello")
	assert.Equal(t, http.StatusOK, img.Code)
	assert.Equal(t, "image/svg+xml", img.Header().Get("Content-Type"))
	assert.Contains(t, img.Body.String(), "Hello")

	m := get(router, "/metrics")
	assert.Equal(t, http.StatusOK, m.Code)
	assert.Contains(t, m.Body.String(), "kartavya_og_images_total")
}

func TestSetupSchedulerLeavesEventStatusJobOffByDefault(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	deps, err := BuildDependencies(cfg, downStore{}, zerolog.Nop())
	require.NoError(t, err)

	scheduler, err := SetupScheduler(context.Background(), cfg, deps, zerolog.Nop())
	require.NoError(t, err)
	assert.Empty(t, scheduler.Jobs())
}

func TestSetupSchedulerRegistersConfiguredEventStatusJob(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("JOBS_EVENT_STATUS_SCHEDULE", "@every 15m")
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	deps, err := BuildDependencies(cfg, downStore{}, zerolog.Nop())
	require.NoError(t, err)

	scheduler, err := SetupScheduler(context.Background(), cfg, deps, zerolog.Nop())
	require.NoError(t, err)
	assert.Contains(t, scheduler.Jobs(), jobs.EventStatusJobName)
}

func extractData(t *testing.T, body string) string {
	t.Helper()
	start := strings.Index(body, `"data":`)
	require.GreaterOrEqual(t, start, 0, body)
	rest := body[start+len(`"data":`):]
	end := strings.Index(rest, `,"timestamp"`)
	require.GreaterOrEqual(t, end, 0, body)
	return rest[:end]
}
