package services

import (
	"context"
	"sync"
	"time"

	"github.com/kartavya/website/internal/app/models"
	"github.com/kartavya/website/internal/app/repositories"
	"github.com/kartavya/website/internal/pkg/apperrors"
)

// fakeContent is a ContentReader with fn fields; nil fns return empty results.
type fakeContent struct {
	mu    sync.Mutex
	calls map[string]int

	organizations func() ([]models.Organization, error)
	members       func(id string) ([]models.OrganizationMember, error)
	team          func() ([]models.TeamMember, error)
	mentors       func() ([]models.Mentor, error)
	podcasts      func() ([]models.Podcast, error)
	events        func() ([]models.Event, error)
}

func (f *fakeContent) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[name]++
}

func (f *fakeContent) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeContent) ListActiveOrganizations(context.Context) ([]models.Organization, error) {
	f.record("ngos")
	if f.organizations == nil {
		return nil, nil
	}
	return f.organizations()
}

func (f *fakeContent) FindActiveOrganization(_ context.Context, id string) (*models.Organization, error) {
	f.record("ngo")
	orgs, err := f.ListActiveOrganizations(context.Background())
	if err != nil {
		return nil, err
	}
	for _, o := range orgs {
		if o.ID == id {
			return &o, nil
		}
	}
	return nil, apperrors.ErrOrganizationNotFound
}

func (f *fakeContent) ListOrganizationMembers(_ context.Context, id string) ([]models.OrganizationMember, error) {
	f.record("members")
	if f.members == nil {
		return nil, nil
	}
	return f.members(id)
}

func (f *fakeContent) ListTeamMembers(context.Context) ([]models.TeamMember, error) {
	f.record("team")
	if f.team == nil {
		return nil, nil
	}
	return f.team()
}

func (f *fakeContent) ListMentors(context.Context) ([]models.Mentor, error) {
	f.record("mentors")
	if f.mentors == nil {
		return nil, nil
	}
	return f.mentors()
}

func (f *fakeContent) ListPodcasts(context.Context) ([]models.Podcast, error) {
	f.record("podcasts")
	if f.podcasts == nil {
		return nil, nil
	}
	return f.podcasts()
}

func (f *fakeContent) ListEvents(context.Context) ([]models.Event, error) {
	f.record("events")
	if f.events == nil {
		return nil, nil
	}
	return f.events()
}

type fakeWriter struct {
	inserted bool
	err      error
	calls    int
	tokens   []string
}

func (w *fakeWriter) Create(_ context.Context, _ models.Application, token string) (bool, error) {
	w.calls++
	w.tokens = append(w.tokens, token)
	return w.inserted, w.err
}

type fakeNotifier struct {
	err  error
	sent []models.Application
}

func (n *fakeNotifier) NotifyApplication(app models.Application) error {
	n.sent = append(n.sent, app)
	return n.err
}

type fakeEventUpdater struct {
	result repositories.StatusRefreshResult
	err    error
	now    time.Time
	window time.Duration
}

func (u *fakeEventUpdater) RefreshStatuses(_ context.Context, now time.Time, window time.Duration) (repositories.StatusRefreshResult, error) {
	u.now, u.window = now, window
	return u.result, u.err
}
