package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/kartavya/website/internal/app/models"
	"github.com/kartavya/website/internal/app/views"
	"github.com/kartavya/website/internal/pkg/apperrors"
	"github.com/kartavya/website/internal/pkg/validation"
)

// Sections is the page content as seen by one session.
type Sections struct {
	Organizations views.Section[models.Organization]
	Team          views.Section[models.TeamMember]
	Mentors       views.Section[models.Mentor]
	Podcasts      views.Section[models.Podcast]
	Events        views.Section[models.Event]
}

// Session keeps the state of one visitor: loaded sections, the event filter,
// the detail overlay and the application form.
type Session struct {
	client *Client
	logger zerolog.Logger

	overlay *views.DetailOverlay
	form    *views.ApplicationForm

	mu       sync.RWMutex
	sections Sections
	filter   views.EventFilter
}

// NewSession creates a session whose sections start out loading.
func NewSession(c *Client, revertAfter time.Duration, logger zerolog.Logger) *Session {
	logger = logger.With().Str("component", "session").Logger()
	return &Session{
		client:  c,
		logger:  logger,
		overlay: views.NewDetailOverlay(c.Members, logger),
		form: views.NewApplicationForm(views.FormConfig{
			Submitter:   c,
			Validate:    func(app models.Application) map[string]string { return validation.Struct(app) },
			RevertAfter: revertAfter,
			Logger:      logger,
		}),
		sections: Sections{
			Organizations: views.NewSection[models.Organization](views.SectionNGOs),
			Team:          views.NewSection[models.TeamMember](views.SectionTeam),
			Mentors:       views.NewSection[models.Mentor](views.SectionMentors),
			Podcasts:      views.NewSection[models.Podcast](views.SectionPodcasts),
			Events:        views.NewSection[models.Event](views.SectionEvents),
		},
		filter: views.FilterAll,
	}
}

func load[T any](ctx context.Context, s *Session, name views.SectionName, read func(context.Context) ([]T, error)) (section views.Section[T]) {
	section = views.NewSection[T](name)
	defer func() { section.Loading = false }()

	items, err := read(ctx)
	if err != nil {
		s.logger.Error().Err(err).Str("section", string(name)).Msg("Error fetching section")
		return section
	}
	section.Items = items
	return section
}

// Load fetches all five sections concurrently. A failed read leaves its
// section empty; Load itself only fails when ctx is done.
func (s *Session) Load(ctx context.Context) error {
	var next Sections
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error { next.Organizations = load(gctx, s, views.SectionNGOs, s.client.Organizations); return nil })
	g.Go(func() error { next.Team = load(gctx, s, views.SectionTeam, s.client.Team); return nil })
	g.Go(func() error { next.Mentors = load(gctx, s, views.SectionMentors, s.client.Mentors); return nil })
	g.Go(func() error { next.Podcasts = load(gctx, s, views.SectionPodcasts, s.client.Podcasts); return nil })
	g.Go(func() error {
		next.Events = load(gctx, s, views.SectionEvents, func(ctx context.Context) ([]models.Event, error) {
			return s.client.Events(ctx, views.FilterAll)
		})
		return nil
	})
	_ = g.Wait()

	s.mu.Lock()
	s.sections = next
	s.mu.Unlock()
	return ctx.Err()
}

// Sections returns the current section state.
func (s *Session) Sections() Sections {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sections
}

// SetFilter changes the event filter. Events are not re-fetched.
func (s *Session) SetFilter(f views.EventFilter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = f
}

// Filter is the active event filter.
func (s *Session) Filter() views.EventFilter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

// VisibleEvents applies the active filter to the loaded events.
func (s *Session) VisibleEvents() []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return views.FilterEvents(s.sections.Events.Items, s.filter)
}

// OpenOrganization selects a loaded NGO by id and starts fetching its members.
func (s *Session) OpenOrganization(ctx context.Context, id string) error {
	s.mu.RLock()
	var found *models.Organization
	for i := range s.sections.Organizations.Items {
		if s.sections.Organizations.Items[i].ID == id {
			org := s.sections.Organizations.Items[i]
			found = &org
			break
		}
	}
	s.mu.RUnlock()

	if found == nil {
		return fmt.Errorf("ngo %q: %w", id, apperrors.ErrOrganizationNotFound)
	}
	s.overlay.Open(ctx, *found)
	return nil
}

// Overlay exposes the detail overlay.
func (s *Session) Overlay() *views.DetailOverlay {
	return s.overlay
}

// Form exposes the application form.
func (s *Session) Form() *views.ApplicationForm {
	return s.form
}

// Apply fills the form with app and submits it once.
func (s *Session) Apply(ctx context.Context, app models.Application) error {
	s.form.SetValues(app)
	err := s.form.Submit(ctx)
	if errors.Is(err, apperrors.ErrRateLimited) {
		s.logger.Warn().Msg("Application rate limited by server")
	}
	return err
}

// Close stops background work owned by the session.
func (s *Session) Close() {
	s.overlay.Close()
	s.overlay.Wait()
	s.form.Dismiss()
}
