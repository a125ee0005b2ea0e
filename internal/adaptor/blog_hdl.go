package adaptor

import (
	"net/http"
	"strings"

	"soil-farming-agent/internal/dto/request"
	"soil-farming-agent/internal/dto/response"
	"soil-farming-agent/internal/usecase"
	"soil-farming-agent/pkg/upload"
	"soil-farming-agent/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// memory budget for multipart parsing; larger parts spill to temp files
const multipartMaxMemory = 32 << 20

type BlogHandler struct {
	service usecase.BlogService
	storage *upload.Storage
	log     *zap.Logger
}

func NewBlogHandler(service usecase.BlogService, storage *upload.Storage, log *zap.Logger) *BlogHandler {
	return &BlogHandler{
		service: service,
		storage: storage,
		log:     log.With(zap.String("handler", "blog")),
	}
}

// List handles GET /api/blogs?q=&sort=
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	query := &request.BlogListQuery{
		Ascending: params.Get("sort") == "asc", // default is newest first
	}
	if q := params.Get("q"); q != "" {
		query.TitleQuery = &q
	}

	blogs, err := h.service.List(r.Context(), query)
	if err != nil {
		h.handleServiceError(w, err, "list blogs")
		return
	}

	utils.WriteJSON(w, http.StatusOK, response.BlogListEnvelope{Success: true, Blogs: blogs})
}

// Create handles POST /api/blogs (multipart form, up to 5 images)
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(multipartMaxMemory); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form")
		return
	}

	req := &request.BlogCreateRequest{
		Title:       r.FormValue("title"),
		Description: formValuePtr(r, "description"),
		AuthorEmail: r.FormValue("authorEmail"),
	}

	images, err := h.storage.SaveImages(r.MultipartForm.File["images"])
	if err != nil {
		h.log.Error("Failed to store uploads", zap.Error(err))
		utils.ResponseInternalError(w, "Server error")
		return
	}
	req.Images = images

	blog, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "create blog")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, response.BlogEnvelope{Success: true, Blog: *blog})
}

// Update handles PUT /api/blogs/{id} (owner or admin, multipart form).
// New images, when uploaded, replace the whole stored set.
func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := r.ParseMultipartForm(multipartMaxMemory); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form")
		return
	}

	req := &request.BlogUpdateRequest{
		Title:       r.FormValue("title"),
		Description: formValuePtr(r, "description"),
		AuthorEmail: r.FormValue("authorEmail"),
	}

	if files := r.MultipartForm.File["images"]; len(files) > 0 {
		images, err := h.storage.SaveImages(files)
		if err != nil {
			h.log.Error("Failed to store uploads", zap.Error(err))
			utils.ResponseInternalError(w, "Server error")
			return
		}
		req.Images = images
	}

	role, _ := utils.GetRoleFromContext(r.Context())

	blog, err := h.service.Update(r.Context(), id, role, req)
	if err != nil {
		h.handleServiceError(w, err, "update blog")
		return
	}

	utils.WriteJSON(w, http.StatusOK, response.BlogEnvelope{
		Success: true,
		Message: "Blog updated",
		Blog:    *blog,
	})
}

// Delete handles DELETE /api/blogs/{id} (admin only)
func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err, "delete blog")
		return
	}

	utils.ResponseSuccess(w, "Deleted")
}

func (h *BlogHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, "Blog not found")

	case strings.Contains(errMsg, "unauthorized"):
		h.log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseForbidden(w, "Unauthorized")

	case strings.Contains(errMsg, "title required"):
		h.log.Warn(operation+" failed - missing title", zap.Error(err))
		utils.ResponseBadRequest(w, "Title required")

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Server error")
	}
}

// formValuePtr distinguishes an absent form field from an empty one
func formValuePtr(r *http.Request, key string) *string {
	if r.MultipartForm == nil {
		return nil
	}
	values, ok := r.MultipartForm.Value[key]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}
