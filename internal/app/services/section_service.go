package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/kartavya/website/internal/app/models"
	"github.com/kartavya/website/internal/app/views"
	"github.com/kartavya/website/internal/pkg/apperrors"
	"github.com/kartavya/website/internal/pkg/metrics"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// ContentReader is the read side of the content repository
type ContentReader interface {
	ListActiveOrganizations(ctx context.Context) ([]models.Organization, error)
	FindActiveOrganization(ctx context.Context, id string) (*models.Organization, error)
	ListOrganizationMembers(ctx context.Context, organizationID string) ([]models.OrganizationMember, error)
	ListTeamMembers(ctx context.Context) ([]models.TeamMember, error)
	ListMentors(ctx context.Context) ([]models.Mentor, error)
	ListPodcasts(ctx context.Context) ([]models.Podcast, error)
	ListEvents(ctx context.Context) ([]models.Event, error)
}

// PageSections holds every data section of the home page
type PageSections struct {
	Organizations views.Section[models.Organization]
	Team          views.Section[models.TeamMember]
	Mentors       views.Section[models.Mentor]
	Podcasts      views.Section[models.Podcast]
	Events        views.Section[models.Event]
}

// SectionService defines the interface for loading site sections. Loads never
// fail: a read error is logged and the section comes back empty.
type SectionService interface {
	LoadOrganizations(ctx context.Context) views.Section[models.Organization]
	LoadTeam(ctx context.Context) views.Section[models.TeamMember]
	LoadMentors(ctx context.Context) views.Section[models.Mentor]
	LoadPodcasts(ctx context.Context) views.Section[models.Podcast]
	LoadEvents(ctx context.Context) views.Section[models.Event]
	LoadAll(ctx context.Context) PageSections
	LoadMembers(ctx context.Context, organizationID string) []models.OrganizationMember
	ListMembers(ctx context.Context, organizationID string) ([]models.OrganizationMember, error)
	FindOrganization(ctx context.Context, id string) (*models.Organization, error)
}

// sectionServiceImpl implements SectionService
type sectionServiceImpl struct {
	content ContentReader
	metrics *metrics.Metrics
	logger  zerolog.Logger
}

// NewSectionService creates a new SectionService
func NewSectionService(content ContentReader, m *metrics.Metrics, logger zerolog.Logger) SectionService {
	return &sectionServiceImpl{
		content: content,
		metrics: m,
		logger:  logger.With().Str("component", "section_service").Logger(),
	}
}

// fetchSection runs one read for a section. The loading flag is cleared on
// every exit path, and a failed read leaves the section empty.
func fetchSection[T any](ctx context.Context, s *sectionServiceImpl, name views.SectionName, read func(context.Context) ([]T, error)) (section views.Section[T]) {
	section = views.NewSection[T](name)
	defer func() { section.Loading = false }()

	items, err := read(ctx)
	if err != nil {
		s.logger.Error().Err(err).Str("section", string(name)).Msg("Error fetching section")
		s.metrics.SectionFetchFailed(string(name))
		return section
	}
	if items != nil {
		section.Items = items
	}
	return section
}

// LoadOrganizations loads the active NGOs
func (s *sectionServiceImpl) LoadOrganizations(ctx context.Context) views.Section[models.Organization] {
	return fetchSection(ctx, s, views.SectionNGOs, s.content.ListActiveOrganizations)
}

// LoadTeam loads the incubator team
func (s *sectionServiceImpl) LoadTeam(ctx context.Context) views.Section[models.TeamMember] {
	return fetchSection(ctx, s, views.SectionTeam, s.content.ListTeamMembers)
}

// LoadMentors loads the mentors
func (s *sectionServiceImpl) LoadMentors(ctx context.Context) views.Section[models.Mentor] {
	return fetchSection(ctx, s, views.SectionMentors, s.content.ListMentors)
}

// LoadPodcasts loads the podcast episodes
func (s *sectionServiceImpl) LoadPodcasts(ctx context.Context) views.Section[models.Podcast] {
	return fetchSection(ctx, s, views.SectionPodcasts, s.content.ListPodcasts)
}

// LoadEvents loads every event regardless of status
func (s *sectionServiceImpl) LoadEvents(ctx context.Context) views.Section[models.Event] {
	return fetchSection(ctx, s, views.SectionEvents, s.content.ListEvents)
}

// LoadAll loads the five sections concurrently and waits for all of them.
func (s *sectionServiceImpl) LoadAll(ctx context.Context) PageSections {
	var page PageSections
	var g errgroup.Group

	g.Go(func() error { page.Organizations = s.LoadOrganizations(ctx); return nil })
	g.Go(func() error { page.Team = s.LoadTeam(ctx); return nil })
	g.Go(func() error { page.Mentors = s.LoadMentors(ctx); return nil })
	g.Go(func() error { page.Podcasts = s.LoadPodcasts(ctx); return nil })
	g.Go(func() error { page.Events = s.LoadEvents(ctx); return nil })

	_ = g.Wait()
	return page
}

// ListMembers returns the members of one NGO, passing read errors through.
func (s *sectionServiceImpl) ListMembers(ctx context.Context, organizationID string) ([]models.OrganizationMember, error) {
	if _, err := uuid.Parse(organizationID); err != nil {
		return []models.OrganizationMember{}, nil
	}
	return s.content.ListOrganizationMembers(ctx, organizationID)
}

// LoadMembers returns the members of one NGO; a read error yields an empty list.
func (s *sectionServiceImpl) LoadMembers(ctx context.Context, organizationID string) []models.OrganizationMember {
	members, err := s.ListMembers(ctx, organizationID)
	if err != nil {
		s.logger.Error().Err(err).Str("ngo_id", organizationID).Msg("Error fetching NGO members")
		s.metrics.SectionFetchFailed("members")
		return []models.OrganizationMember{}
	}
	if members == nil {
		members = []models.OrganizationMember{}
	}
	return members
}

// FindOrganization returns one active NGO. Malformed ids are reported as not found.
func (s *sectionServiceImpl) FindOrganization(ctx context.Context, id string) (*models.Organization, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.ErrOrganizationNotFound
	}
	org, err := s.content.FindActiveOrganization(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrOrganizationNotFound) {
			s.logger.Error().Err(err).Str("ngo_id", id).Msg("Error fetching NGO")
		}
		return nil, err
	}
	return org, nil
}
