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

type DistributorRepository interface {
	Create(ctx context.Context, dist *entity.Distributor) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Distributor, error)
	FindAll(ctx context.Context) ([]*entity.Distributor, error)
	Update(ctx context.Context, dist *entity.Distributor) error
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
}

type distributorRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewDistributorRepository(db database.PgxIface, log *zap.Logger) DistributorRepository {
	return &distributorRepository{
		db:  db,
		log: log.With(zap.String("repository", "distributor")),
	}
}

func (r *distributorRepository) Create(ctx context.Context, dist *entity.Distributor) error {
	query := `
		INSERT INTO distributors (id, name, contact, seed_type, price, quantity,
		                          location, crops, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		dist.ID,
		dist.Name,
		dist.Contact,
		dist.SeedType,
		dist.Price,
		dist.Quantity,
		dist.Location,
		dist.Crops,
		dist.CreatedAt,
		dist.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create distributor",
			zap.Error(err),
			zap.String("name", dist.Name),
		)
		return fmt.Errorf("create distributor: %w", err)
	}

	return nil
}

func (r *distributorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Distributor, error) {
	query := `
		SELECT id, name, contact, seed_type, price, quantity, location, crops,
		       created_at, updated_at
		FROM distributors
		WHERE id = $1
	`

	var dist entity.Distributor
	err := r.db.QueryRow(ctx, query, id).Scan(
		&dist.ID,
		&dist.Name,
		&dist.Contact,
		&dist.SeedType,
		&dist.Price,
		&dist.Quantity,
		&dist.Location,
		&dist.Crops,
		&dist.CreatedAt,
		&dist.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find distributor by ID",
			zap.Error(err),
			zap.String("distributor_id", id.String()),
		)
		return nil, fmt.Errorf("find distributor %s: %w", id.String(), err)
	}

	return &dist, nil
}

func (r *distributorRepository) FindAll(ctx context.Context) ([]*entity.Distributor, error) {
	query := `
		SELECT id, name, contact, seed_type, price, quantity, location, crops,
		       created_at, updated_at
		FROM distributors
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all distributors", zap.Error(err))
		return nil, fmt.Errorf("find all distributors: %w", err)
	}
	defer rows.Close()

	var dists []*entity.Distributor
	for rows.Next() {
		var dist entity.Distributor
		err := rows.Scan(
			&dist.ID,
			&dist.Name,
			&dist.Contact,
			&dist.SeedType,
			&dist.Price,
			&dist.Quantity,
			&dist.Location,
			&dist.Crops,
			&dist.CreatedAt,
			&dist.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan distributor row", zap.Error(err))
			return nil, fmt.Errorf("scan distributor row: %w", err)
		}
		dists = append(dists, &dist)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate distributor rows: %w", err)
	}

	return dists, nil
}

func (r *distributorRepository) Update(ctx context.Context, dist *entity.Distributor) error {
	query := `
		UPDATE distributors
		SET name = $2, contact = $3, seed_type = $4, price = $5, quantity = $6,
		    location = $7, crops = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		dist.ID,
		dist.Name,
		dist.Contact,
		dist.SeedType,
		dist.Price,
		dist.Quantity,
		dist.Location,
		dist.Crops,
		dist.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update distributor",
			zap.Error(err),
			zap.String("distributor_id", dist.ID.String()),
		)
		return fmt.Errorf("update distributor %s: %w", dist.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("distributor %s not found", dist.ID.String())
	}

	return nil
}

func (r *distributorRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	query := `DELETE FROM distributors WHERE id = ANY($1)`

	result, err := r.db.Exec(ctx, query, ids)
	if err != nil {
		r.log.Error("Failed to bulk delete distributors",
			zap.Error(err),
			zap.Int("requested", len(ids)),
		)
		return 0, fmt.Errorf("bulk delete distributors: %w", err)
	}

	deleted := result.RowsAffected()
	r.log.Info("Distributors deleted",
		zap.Int("requested", len(ids)),
		zap.Int64("deleted", deleted),
	)
	return deleted, nil
}
