package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"soil-farming-agent/internal/data/entity"
	"soil-farming-agent/internal/data/repository"
	"soil-farming-agent/internal/dto/request"
	"soil-farming-agent/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BlogService interface {
	List(ctx context.Context, query *request.BlogListQuery) ([]response.BlogResponse, error)
	Create(ctx context.Context, req *request.BlogCreateRequest) (*response.BlogResponse, error)
	Update(ctx context.Context, id, role string, req *request.BlogUpdateRequest) (*response.BlogResponse, error)
	Delete(ctx context.Context, id string) error
}

type blogService struct {
	blogs repository.BlogRepository
	log   *zap.Logger
}

func NewBlogService(blogs repository.BlogRepository, log *zap.Logger) BlogService {
	return &blogService{
		blogs: blogs,
		log:   log,
	}
}

func (s *blogService) List(ctx context.Context, query *request.BlogListQuery) ([]response.BlogResponse, error) {
	blogs, err := s.blogs.FindAll(ctx, query.TitleQuery, query.Ascending)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blogs")
	}

	return response.BlogsToResponse(blogs), nil
}

func (s *blogService) Create(ctx context.Context, req *request.BlogCreateRequest) (*response.BlogResponse, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("title required")
	}

	now := time.Now()
	blog := &entity.Blog{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       req.Title,
		Description: req.Description,
		Images:      listOrEmpty(req.Images),
		AuthorEmail: req.AuthorEmail,
	}

	if err := s.blogs.Create(ctx, blog); err != nil {
		return nil, fmt.Errorf("failed to create blog")
	}

	s.log.Info("Blog created",
		zap.String("blog_id", blog.ID.String()),
		zap.String("author", blog.AuthorEmail))

	resp := response.BlogToResponse(blog)
	return &resp, nil
}

// Update is allowed for an admin or the owning author; ownership is the
// asserted email in the form matching the stored authorEmail. Title and
// description are replaced wholesale; a fresh image upload replaces the whole
// image set, no upload keeps the stored set.
func (s *blogService) Update(ctx context.Context, id, role string, req *request.BlogUpdateRequest) (*response.BlogResponse, error) {
	blogID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("blog not found")
	}

	blog, err := s.blogs.FindByID(ctx, blogID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blog")
	}
	if blog == nil {
		return nil, fmt.Errorf("blog not found")
	}

	if role != string(entity.RoleAdmin) && blog.AuthorEmail != req.AuthorEmail {
		s.log.Warn("Blog update denied",
			zap.String("blog_id", blog.ID.String()),
			zap.String("asserted_email", req.AuthorEmail),
			zap.String("role", role))
		return nil, fmt.Errorf("unauthorized")
	}

	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("title required")
	}

	blog.Title = req.Title
	blog.Description = req.Description
	if req.Images != nil {
		blog.Images = req.Images
	}
	blog.UpdatedAt = time.Now()

	if err := s.blogs.Update(ctx, blog); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return nil, fmt.Errorf("blog not found")
		}
		return nil, fmt.Errorf("failed to update blog")
	}

	s.log.Info("Blog updated", zap.String("blog_id", blog.ID.String()))

	resp := response.BlogToResponse(blog)
	return &resp, nil
}

func (s *blogService) Delete(ctx context.Context, id string) error {
	blogID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("blog not found")
	}

	if err := s.blogs.Delete(ctx, blogID); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return fmt.Errorf("blog not found")
		}
		return fmt.Errorf("failed to delete blog")
	}

	return nil
}
