package repository

import (
	"context"
	"fmt"

	"soil-farming-agent/internal/data/entity"
	"soil-farming-agent/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SoilRepository interface {
	Create(ctx context.Context, soil *entity.Soil) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Soil, error)
	FindAll(ctx context.Context) ([]*entity.Soil, error)
	Update(ctx context.Context, soil *entity.Soil) error
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
}

type soilRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSoilRepository(db database.PgxIface, log *zap.Logger) SoilRepository {
	return &soilRepository{
		db:  db,
		log: log.With(zap.String("repository", "soil")),
	}
}

func (r *soilRepository) Create(ctx context.Context, soil *entity.Soil) error {
	query := `
		INSERT INTO soils (id, name, description, suitable_crops, ph_level,
		                   nutrients, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		soil.ID,
		soil.Name,
		soil.Description,
		soil.SuitableCrops,
		soil.PHLevel,
		soil.Nutrients,
		soil.CreatedAt,
		soil.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create soil",
			zap.Error(err),
			zap.String("name", soil.Name),
		)
		return fmt.Errorf("create soil: %w", err)
	}

	return nil
}

func (r *soilRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Soil, error) {
	query := `
		SELECT id, name, description, suitable_crops, ph_level, nutrients,
		       created_at, updated_at
		FROM soils
		WHERE id = $1
	`

	var soil entity.Soil
	err := r.db.QueryRow(ctx, query, id).Scan(
		&soil.ID,
		&soil.Name,
		&soil.Description,
		&soil.SuitableCrops,
		&soil.PHLevel,
		&soil.Nutrients,
		&soil.CreatedAt,
		&soil.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find soil by ID",
			zap.Error(err),
			zap.String("soil_id", id.String()),
		)
		return nil, fmt.Errorf("find soil %s: %w", id.String(), err)
	}

	return &soil, nil
}

// FindAll returns every soil record; the portal lists are unpaginated
func (r *soilRepository) FindAll(ctx context.Context) ([]*entity.Soil, error) {
	query := `
		SELECT id, name, description, suitable_crops, ph_level, nutrients,
		       created_at, updated_at
		FROM soils
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all soils", zap.Error(err))
		return nil, fmt.Errorf("find all soils: %w", err)
	}
	defer rows.Close()

	var soils []*entity.Soil
	for rows.Next() {
		var soil entity.Soil
		err := rows.Scan(
			&soil.ID,
			&soil.Name,
			&soil.Description,
			&soil.SuitableCrops,
			&soil.PHLevel,
			&soil.Nutrients,
			&soil.CreatedAt,
			&soil.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan soil row", zap.Error(err))
			return nil, fmt.Errorf("scan soil row: %w", err)
		}
		soils = append(soils, &soil)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate soil rows: %w", err)
	}

	return soils, nil
}

func (r *soilRepository) Update(ctx context.Context, soil *entity.Soil) error {
	query := `
		UPDATE soils
		SET name = $2, description = $3, suitable_crops = $4, ph_level = $5,
		    nutrients = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		soil.ID,
		soil.Name,
		soil.Description,
		soil.SuitableCrops,
		soil.PHLevel,
		soil.Nutrients,
		soil.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update soil",
			zap.Error(err),
			zap.String("soil_id", soil.ID.String()),
		)
		return fmt.Errorf("update soil %s: %w", soil.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("soil %s not found", soil.ID.String())
	}

	return nil
}

// DeleteByIDs removes all matching records in one statement and reports how
// many rows went away. IDs with no matching record are silently ignored.
func (r *soilRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	query := `DELETE FROM soils WHERE id = ANY($1)`

	result, err := r.db.Exec(ctx, query, ids)
	if err != nil {
		r.log.Error("Failed to bulk delete soils",
			zap.Error(err),
			zap.Int("requested", len(ids)),
		)
		return 0, fmt.Errorf("bulk delete soils: %w", err)
	}

	deleted := result.RowsAffected()
	r.log.Info("Soils deleted",
		zap.Int("requested", len(ids)),
		zap.Int64("deleted", deleted),
	)
	return deleted, nil
}
