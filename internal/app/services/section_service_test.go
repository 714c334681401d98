package services

import (
	"context"
	"errors"
	"testing"

	"github.com/kartavya/website/internal/app/models"
	"github.com/kartavya/website/internal/app/views"
	"github.com/kartavya/website/internal/pkg/apperrors"
	"github.com/kartavya/website/internal/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orgA = "6f1d8c1e-2b1a-4c3e-9f5d-1a2b3c4d5e6f"

func TestLoadSectionSuccess(t *testing.T) {
	content := &fakeContent{
		team: func() ([]models.TeamMember, error) {
			return []models.TeamMember{{Name: "Priya"}, {Name: "Dev"}}, nil
		},
	}
	svc := NewSectionService(content, nil, zerolog.Nop())

	section := svc.LoadTeam(context.Background())
	assert.False(t, section.Loading)
	assert.Equal(t, views.StateReady, section.State())
	assert.Equal(t, "Priya", section.Items[0].Name)
	assert.Equal(t, 1, content.count("team"))
}

func TestLoadSectionEmpty(t *testing.T) {
	svc := NewSectionService(&fakeContent{}, nil, zerolog.Nop())

	section := svc.LoadMentors(context.Background())
	assert.False(t, section.Loading)
	assert.NotNil(t, section.Items)
	assert.Equal(t, views.StateEmpty, section.State())
}

func TestLoadSectionFailureDegradesToEmpty(t *testing.T) {
	m := metrics.New()
	content := &fakeContent{
		events: func() ([]models.Event, error) { return nil, errors.New("permission denied") },
	}
	svc := NewSectionService(content, m, zerolog.Nop())

	section := svc.LoadEvents(context.Background())
	assert.False(t, section.Loading, "loading is cleared even on failure")
	assert.Equal(t, views.StateEmpty, section.State())
	assert.Equal(t, 1, content.count("events"), "no retry")

	n, err := testutil.GatherAndCount(m.Registry(), "kartavya_section_fetch_failures_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestLoadAllIssuesOneReadPerSection(t *testing.T) {
	content := &fakeContent{
		organizations: func() ([]models.Organization, error) {
			return []models.Organization{{ID: orgA, Name: "Alpha"}}, nil
		},
		podcasts: func() ([]models.Podcast, error) { return nil, errors.New("timeout") },
	}
	svc := NewSectionService(content, nil, zerolog.Nop())

	page := svc.LoadAll(context.Background())
	assert.Equal(t, views.StateReady, page.Organizations.State())
	assert.Equal(t, views.StateEmpty, page.Podcasts.State())
	assert.Equal(t, views.StateEmpty, page.Team.State())
	assert.Equal(t, views.StateEmpty, page.Mentors.State())
	assert.Equal(t, views.StateEmpty, page.Events.State())
	for _, name := range []string{"ngos", "team", "mentors", "podcasts", "events"} {
		assert.Equal(t, 1, content.count(name), name)
	}
}

func TestLoadMembers(t *testing.T) {
	content := &fakeContent{
		members: func(id string) ([]models.OrganizationMember, error) {
			if id == orgA {
				return []models.OrganizationMember{{Name: "Ravi", OrganizationID: orgA}}, nil
			}
			return nil, errors.New("boom")
		},
	}
	svc := NewSectionService(content, nil, zerolog.Nop())

	assert.Len(t, svc.LoadMembers(context.Background(), orgA), 1)
	assert.Equal(t, []models.OrganizationMember{}, svc.LoadMembers(context.Background(), "9a9a9a9a-0000-4000-8000-000000000000"))
	assert.Equal(t, []models.OrganizationMember{}, svc.LoadMembers(context.Background(), "not-a-uuid"))
}

func TestFindOrganization(t *testing.T) {
	content := &fakeContent{
		organizations: func() ([]models.Organization, error) {
			return []models.Organization{{ID: orgA, Name: "Alpha"}}, nil
		},
	}
	svc := NewSectionService(content, nil, zerolog.Nop())

	org, err := svc.FindOrganization(context.Background(), orgA)
	require.NoError(t, err)
	assert.Equal(t, "Alpha", org.Name)

	_, err = svc.FindOrganization(context.Background(), "nope")
	assert.ErrorIs(t, err, apperrors.ErrOrganizationNotFound)
	assert.Zero(t, content.count("ngo"), "malformed ids never reach the store")

	_, err = svc.FindOrganization(context.Background(), "9a9a9a9a-0000-4000-8000-000000000000")
	assert.ErrorIs(t, err, apperrors.ErrOrganizationNotFound)
}
