package response

import (
	"time"

	"soil-farming-agent/internal/data/entity"
)

type BlogResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Images      []string  `json:"images"`
	AuthorEmail string    `json:"authorEmail"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type BlogEnvelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Blog    BlogResponse `json:"blog"`
}

type BlogListEnvelope struct {
	Success bool           `json:"success"`
	Blogs   []BlogResponse `json:"blogs"`
}

func BlogToResponse(blog *entity.Blog) BlogResponse {
	return BlogResponse{
		ID:          blog.ID.String(),
		Title:       blog.Title,
		Description: blog.Description,
		Images:      emptyIfNil(blog.Images),
		AuthorEmail: blog.AuthorEmail,
		CreatedAt:   blog.CreatedAt,
		UpdatedAt:   blog.UpdatedAt,
	}
}

func BlogsToResponse(blogs []*entity.Blog) []BlogResponse {
	out := make([]BlogResponse, 0, len(blogs))
	for _, blog := range blogs {
		out = append(out, BlogToResponse(blog))
	}
	return out
}
