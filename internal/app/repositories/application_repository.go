package repositories

import (
	"context"
	"fmt"

	"github.com/kartavya/website/internal/app/models"
	"github.com/kartavya/website/internal/pkg/helpers"
)

// ApplicationRepository writes NGO applications. It never reads them back.
type ApplicationRepository struct {
	db DBTX
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db DBTX) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create inserts one application. clientToken may be empty; when set, a
// second insert with the same token is absorbed and reported with inserted=false.
func (r *ApplicationRepository) Create(ctx context.Context, app models.Application, clientToken string) (inserted bool, err error) {
	query, args, err := psql.Insert(CollectionApplications).
		Columns("ngo_name", "contact_person", "email", "phone", "description", "pitch_deck_url", "website", "client_token").
		Values(app.NGOName, app.ContactPerson, app.Email, app.Phone, app.Description, app.PitchDeckURL, helpers.NullIfEmpty(app.Website), helpers.NullIfEmpty(clientToken)).
		Suffix("ON CONFLICT (client_token) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build application insert: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("insert application: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
