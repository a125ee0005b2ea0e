package repository

import (
	"context"
	"fmt"
	"strings"

	"soil-farming-agent/internal/data/entity"
	"soil-farming-agent/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BlogRepository interface {
	Create(ctx context.Context, blog *entity.Blog) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Blog, error)
	FindAll(ctx context.Context, titleQuery *string, ascending bool) ([]*entity.Blog, error)
	Update(ctx context.Context, blog *entity.Blog) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type blogRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBlogRepository(db database.PgxIface, log *zap.Logger) BlogRepository {
	return &blogRepository{
		db:  db,
		log: log.With(zap.String("repository", "blog")),
	}
}

func (r *blogRepository) Create(ctx context.Context, blog *entity.Blog) error {
	query := `
		INSERT INTO blogs (id, title, description, images, author_email,
		                   created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		blog.ID,
		blog.Title,
		blog.Description,
		blog.Images,
		blog.AuthorEmail,
		blog.CreatedAt,
		blog.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create blog",
			zap.Error(err),
			zap.String("title", blog.Title),
		)
		return fmt.Errorf("create blog: %w", err)
	}

	return nil
}

func (r *blogRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Blog, error) {
	query := `
		SELECT id, title, description, images, author_email, created_at, updated_at
		FROM blogs
		WHERE id = $1
	`

	var blog entity.Blog
	err := r.db.QueryRow(ctx, query, id).Scan(
		&blog.ID,
		&blog.Title,
		&blog.Description,
		&blog.Images,
		&blog.AuthorEmail,
		&blog.CreatedAt,
		&blog.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find blog by ID",
			zap.Error(err),
			zap.String("blog_id", id.String()),
		)
		return nil, fmt.Errorf("find blog %s: %w", id.String(), err)
	}

	return &blog, nil
}

// FindAll supports the list surface: optional case-insensitive substring match
// on title and creation-time ordering (ascending or descending).
func (r *blogRepository) FindAll(ctx context.Context, titleQuery *string, ascending bool) ([]*entity.Blog, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, title, description, images, author_email, created_at, updated_at
		FROM blogs
	`)

	args := []interface{}{}
	if titleQuery != nil && *titleQuery != "" {
		queryBuilder.WriteString(" WHERE title ILIKE $1")
		args = append(args, "%"+*titleQuery+"%")
	}

	if ascending {
		queryBuilder.WriteString(" ORDER BY created_at ASC")
	} else {
		queryBuilder.WriteString(" ORDER BY created_at DESC")
	}

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find blogs",
			zap.Error(err),
			zap.Stringp("query", titleQuery),
			zap.Bool("ascending", ascending),
		)
		return nil, fmt.Errorf("find blogs: %w", err)
	}
	defer rows.Close()

	var blogs []*entity.Blog
	for rows.Next() {
		var blog entity.Blog
		err := rows.Scan(
			&blog.ID,
			&blog.Title,
			&blog.Description,
			&blog.Images,
			&blog.AuthorEmail,
			&blog.CreatedAt,
			&blog.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan blog row", zap.Error(err))
			return nil, fmt.Errorf("scan blog row: %w", err)
		}
		blogs = append(blogs, &blog)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate blog rows: %w", err)
	}

	return blogs, nil
}

func (r *blogRepository) Update(ctx context.Context, blog *entity.Blog) error {
	query := `
		UPDATE blogs
		SET title = $2, description = $3, images = $4, author_email = $5,
		    updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		blog.ID,
		blog.Title,
		blog.Description,
		blog.Images,
		blog.AuthorEmail,
		blog.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update blog",
			zap.Error(err),
			zap.String("blog_id", blog.ID.String()),
		)
		return fmt.Errorf("update blog %s: %w", blog.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("blog %s not found", blog.ID.String())
	}

	return nil
}

func (r *blogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM blogs WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete blog",
			zap.Error(err),
			zap.String("blog_id", id.String()),
		)
		return fmt.Errorf("delete blog %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("blog %s not found", id.String())
	}

	r.log.Info("Blog deleted", zap.String("blog_id", id.String()))
	return nil
}
