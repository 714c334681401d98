package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// psql is the statement builder shared by every repository.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// DBTX is the subset of pgxpool.Pool (and pgx.Tx) the repositories need.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories holds all the repository instances
type Repositories struct {
	ContentRepository     *ContentRepository
	ApplicationRepository *ApplicationRepository
	EventRepository       *EventRepository
	SeedRepository        *SeedRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db DBTX) *Repositories {
	return &Repositories{
		ContentRepository:     NewContentRepository(db),
		ApplicationRepository: NewApplicationRepository(db),
		EventRepository:       NewEventRepository(db),
		SeedRepository:        NewSeedRepository(db),
	}
}
