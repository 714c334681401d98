package controllers_test

import (
	"context"

	"github.com/kartavya/website/internal/app/models"
	"github.com/kartavya/website/internal/app/services"
	"github.com/kartavya/website/internal/app/views"
	"github.com/kartavya/website/internal/pkg/apperrors"
	"github.com/kartavya/website/internal/pkg/validation"
)

func loaded[T any](name views.SectionName, items []T) views.Section[T] {
	if items == nil {
		items = []T{}
	}
	return views.Section[T]{Name: name, Items: items}
}

type mockSectionService struct {
	organizationsFn func() []models.Organization
	eventsFn        func() []models.Event
	membersFn       func(id string) ([]models.OrganizationMember, error)
	findFn          func(id string) (*models.Organization, error)
	loadAllCalls    int
}

func (m *mockSectionService) orgs() []models.Organization {
	if m.organizationsFn != nil {
		return m.organizationsFn()
	}
	return nil
}

func (m *mockSectionService) LoadOrganizations(context.Context) views.Section[models.Organization] {
	return loaded(views.SectionNGOs, m.orgs())
}

func (m *mockSectionService) LoadTeam(context.Context) views.Section[models.TeamMember] {
	return loaded[models.TeamMember](views.SectionTeam, nil)
}

func (m *mockSectionService) LoadMentors(context.Context) views.Section[models.Mentor] {
	return loaded[models.Mentor](views.SectionMentors, nil)
}

func (m *mockSectionService) LoadPodcasts(context.Context) views.Section[models.Podcast] {
	return loaded[models.Podcast](views.SectionPodcasts, nil)
}

func (m *mockSectionService) LoadEvents(context.Context) views.Section[models.Event] {
	var events []models.Event
	if m.eventsFn != nil {
		events = m.eventsFn()
	}
	return loaded(views.SectionEvents, events)
}

func (m *mockSectionService) LoadAll(ctx context.Context) services.PageSections {
	m.loadAllCalls++
	return services.PageSections{
		Organizations: m.LoadOrganizations(ctx),
		Team:          m.LoadTeam(ctx),
		Mentors:       m.LoadMentors(ctx),
		Podcasts:      m.LoadPodcasts(ctx),
		Events:        m.LoadEvents(ctx),
	}
}

func (m *mockSectionService) ListMembers(_ context.Context, id string) ([]models.OrganizationMember, error) {
	if m.membersFn != nil {
		return m.membersFn(id)
	}
	return []models.OrganizationMember{}, nil
}

func (m *mockSectionService) LoadMembers(ctx context.Context, id string) []models.OrganizationMember {
	members, err := m.ListMembers(ctx, id)
	if err != nil {
		return []models.OrganizationMember{}
	}
	return members
}

func (m *mockSectionService) FindOrganization(_ context.Context, id string) (*models.Organization, error) {
	if m.findFn != nil {
		return m.findFn(id)
	}
	for _, o := range m.orgs() {
		if o.ID == id {
			return &o, nil
		}
	}
	return nil, apperrors.ErrOrganizationNotFound
}

type submitCall struct {
	app   models.Application
	token string
}

type mockApplicationService struct {
	submitFn func(app models.Application, token string) (services.SubmissionResult, error)
	calls    []submitCall
}

func (m *mockApplicationService) Validate(app models.Application) map[string]string {
	return validation.Struct(app)
}

func (m *mockApplicationService) Submit(ctx context.Context, app models.Application, token string) error {
	_, err := m.SubmitApplication(ctx, app, token)
	return err
}

func (m *mockApplicationService) SubmitApplication(_ context.Context, app models.Application, token string) (services.SubmissionResult, error) {
	m.calls = append(m.calls, submitCall{app: app, token: token})
	if m.submitFn != nil {
		return m.submitFn(app, token)
	}
	return services.SubmissionResult{}, nil
}

type mockPinger struct {
	err error
}

func (m mockPinger) Ping(context.Context) error { return m.err }

func validApplication() models.Application {
	return models.Application{
		NGOName:       "Seva Trust",
		ContactPerson: "Asha Rao",
		Email:         "asha@seva.org",
		Phone:         "+91 98200 00000",
		Description:   "Education for all",
		PitchDeckURL:  "https://drive.google.com/deck",
	}
}
