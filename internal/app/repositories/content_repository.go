package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/kartavya/website/internal/app/models"
	"github.com/kartavya/website/internal/pkg/apperrors"
)

// Collection names as stored.
const (
	CollectionOrganizations = "ngos"
	CollectionMembers       = "ngo_members"
	CollectionTeam          = "team_members"
	CollectionMentors       = "mentors"
	CollectionPodcasts      = "podcasts"
	CollectionEvents        = "events"
	CollectionApplications  = "ngo_applications"
)

var (
	organizationColumns = []string{"id", "name", "logo_url", "description", "website", "founded_date", "incubation_date", "status", "created_at"}
	memberColumns       = []string{"id", "ngo_id", "name", "role", "photo_url", "bio", "created_at"}
	teamColumns         = []string{"id", "name", "role", "photo_url", "bio", "email", "linkedin", "display_order", "created_at"}
	mentorColumns       = []string{"id", "name", "photo_url", "expertise", "bio", "email", "phone", "linkedin", "display_order", "created_at"}
	podcastColumns      = []string{"id", "title", "description", "cover_image_url", "audio_url", "video_url", "published_date", "duration", "created_at"}
	eventColumns        = []string{"id", "title", "description", "event_date", "location", "image_url", "status", "created_at"}
)

// The queries below are the only reads the site issues.
var (
	ActiveOrganizationsQuery = CollectionQuery{
		Collection: CollectionOrganizations,
		Columns:    organizationColumns,
		Filter:     squirrel.Eq{"status": models.OrganizationStatusActive},
		OrderBy:    "incubation_date",
		Descending: true,
	}
	TeamQuery = CollectionQuery{
		Collection: CollectionTeam,
		Columns:    teamColumns,
		OrderBy:    "display_order",
	}
	MentorsQuery = CollectionQuery{
		Collection: CollectionMentors,
		Columns:    mentorColumns,
		OrderBy:    "display_order",
	}
	PodcastsQuery = CollectionQuery{
		Collection: CollectionPodcasts,
		Columns:    podcastColumns,
		OrderBy:    "published_date",
		Descending: true,
	}
	EventsQuery = CollectionQuery{
		Collection: CollectionEvents,
		Columns:    eventColumns,
		OrderBy:    "event_date",
		Descending: true,
	}
)

// MembersQuery returns the member read for one organization.
func MembersQuery(organizationID string) CollectionQuery {
	return CollectionQuery{
		Collection: CollectionMembers,
		Columns:    memberColumns,
		Filter:     squirrel.Eq{"ngo_id": organizationID},
		OrderBy:    "created_at",
	}
}

// ContentRepository reads the public site collections
type ContentRepository struct {
	db DBTX
}

// NewContentRepository creates a new ContentRepository
func NewContentRepository(db DBTX) *ContentRepository {
	return &ContentRepository{db: db}
}

// ListActiveOrganizations returns active NGOs, most recently incubated first
func (r *ContentRepository) ListActiveOrganizations(ctx context.Context) ([]models.Organization, error) {
	return selectAll[models.Organization](ctx, r.db, ActiveOrganizationsQuery)
}

// FindActiveOrganization returns one active NGO by id
func (r *ContentRepository) FindActiveOrganization(ctx context.Context, id string) (*models.Organization, error) {
	query, args, err := psql.Select(organizationColumns...).
		From(CollectionOrganizations).
		Where(squirrel.Eq{"id": id, "status": models.OrganizationStatusActive}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build organization query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query organization %s: %w", id, err)
	}
	org, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Organization])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("scan organization %s: %w", id, err)
	}
	return &org, nil
}

// ListOrganizationMembers returns the members of one NGO in insertion order
func (r *ContentRepository) ListOrganizationMembers(ctx context.Context, organizationID string) ([]models.OrganizationMember, error) {
	return selectAll[models.OrganizationMember](ctx, r.db, MembersQuery(organizationID))
}

// ListTeamMembers returns the incubator team by display order
func (r *ContentRepository) ListTeamMembers(ctx context.Context) ([]models.TeamMember, error) {
	return selectAll[models.TeamMember](ctx, r.db, TeamQuery)
}

// ListMentors returns mentors by display order
func (r *ContentRepository) ListMentors(ctx context.Context) ([]models.Mentor, error) {
	return selectAll[models.Mentor](ctx, r.db, MentorsQuery)
}

// ListPodcasts returns episodes, newest first
func (r *ContentRepository) ListPodcasts(ctx context.Context) ([]models.Podcast, error) {
	return selectAll[models.Podcast](ctx, r.db, PodcastsQuery)
}

// ListEvents returns all events, latest date first
func (r *ContentRepository) ListEvents(ctx context.Context) ([]models.Event, error) {
	return selectAll[models.Event](ctx, r.db, EventsQuery)
}
