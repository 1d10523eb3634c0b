package repository

import (
	"context"
	"fmt"

	"retail-store/internal/data/entity"
	"retail-store/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type LocationRepository interface {
	Create(ctx context.Context, location *entity.Location) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)
	FindAll(ctx context.Context) ([]*entity.Location, error)
	FindDefault(ctx context.Context) (*entity.Location, error)
}

type locationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewLocationRepository(db database.PgxIface, log *zap.Logger) LocationRepository {
	return &locationRepository{
		db:  db,
		log: log.With(zap.String("repository", "location")),
	}
}

func (lr *locationRepository) Create(ctx context.Context, location *entity.Location) error {
	query := `
		INSERT INTO locations (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := lr.db.Exec(ctx, query,
		location.ID,
		location.Name,
		location.CreatedAt,
		location.UpdatedAt,
	)

	if err != nil {
		lr.log.Error("Failed to create location",
			zap.Error(err),
			zap.String("name", location.Name),
		)
		return fmt.Errorf("create location %s: %w", location.Name, err)
	}

	return nil
}

func (lr *locationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM locations
		WHERE id = $1
	`

	var location entity.Location
	err := lr.db.QueryRow(ctx, query, id).Scan(
		&location.ID,
		&location.Name,
		&location.CreatedAt,
		&location.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		lr.log.Error("Failed to find location by ID",
			zap.Error(err),
			zap.String("location_id", id.String()),
		)
		return nil, fmt.Errorf("find location by ID %s: %w", id.String(), err)
	}

	return &location, nil
}

func (lr *locationRepository) FindAll(ctx context.Context) ([]*entity.Location, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM locations
		ORDER BY name
	`

	rows, err := lr.db.Query(ctx, query)
	if err != nil {
		lr.log.Error("Failed to get locations", zap.Error(err))
		return nil, fmt.Errorf("find all locations: %w", err)
	}
	defer rows.Close()

	var locations []*entity.Location
	for rows.Next() {
		var location entity.Location
		err := rows.Scan(
			&location.ID,
			&location.Name,
			&location.CreatedAt,
			&location.UpdatedAt,
		)
		if err != nil {
			lr.log.Error("Failed to scan location row", zap.Error(err))
			return nil, fmt.Errorf("scan location row: %w", err)
		}
		locations = append(locations, &location)
	}

	if err := rows.Err(); err != nil {
		lr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate location rows: %w", err)
	}

	return locations, nil
}

// FindDefault returns the store's fallback location: the earliest-created
// one. None existing is an absence, not an error.
func (lr *locationRepository) FindDefault(ctx context.Context) (*entity.Location, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM locations
		ORDER BY created_at, id
		LIMIT 1
	`

	var location entity.Location
	err := lr.db.QueryRow(ctx, query).Scan(
		&location.ID,
		&location.Name,
		&location.CreatedAt,
		&location.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		lr.log.Error("Failed to find default location", zap.Error(err))
		return nil, fmt.Errorf("find default location: %w", err)
	}

	return &location, nil
}
