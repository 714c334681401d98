package repositories

import (
	"context"
	"fmt"
)

// SeedRepository inserts demo content. It is only used by the seed command.
type SeedRepository struct {
	db DBTX
}

// NewSeedRepository creates a new SeedRepository
func NewSeedRepository(db DBTX) *SeedRepository {
	return &SeedRepository{db: db}
}

// Count returns the number of rows in collection
func (r *SeedRepository) Count(ctx context.Context, collection string) (int64, error) {
	query, args, err := psql.Select("COUNT(*)").From(collection).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}
	var n int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", collection, err)
	}
	return n, nil
}

// Insert adds one row and returns its generated id
func (r *SeedRepository) Insert(ctx context.Context, collection string, row map[string]interface{}) (string, error) {
	query, args, err := psql.Insert(collection).SetMap(row).Suffix("RETURNING id::text").ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build insert into %s: %w", collection, err)
	}
	var id string
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}
	return id, nil
}
