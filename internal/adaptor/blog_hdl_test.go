package adaptor_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blogJSON struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Images      []string  `json:"images"`
	AuthorEmail string    `json:"authorEmail"`
	CreatedAt   time.Time `json:"createdAt"`
}

func doMultipart(t *testing.T, handler http.Handler, method, path string, fields map[string]string, files map[string][]byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	body, contentType := multipartBody(t, fields, files)

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", contentType)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func createBlog(t *testing.T, handler http.Handler, fields map[string]string, files map[string][]byte) blogJSON {
	t.Helper()

	w := doMultipart(t, handler, http.MethodPost, "/api/blogs", fields, files, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Success bool     `json:"success"`
		Blog    blogJSON `json:"blog"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	return resp.Blog
}

func listBlogs(t *testing.T, handler http.Handler, query string) []blogJSON {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/blogs"+query, nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Success bool       `json:"success"`
		Blogs   []blogJSON `json:"blogs"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	return resp.Blogs
}

func TestBlogCreateRequiresTitle(t *testing.T) {
	app, _ := newTestApp(t)

	w := doMultipart(t, app.Router, http.MethodPost, "/api/blogs",
		map[string]string{"description": "no title here"}, nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Title required")
}

func TestBlogCreateWithImages(t *testing.T) {
	app, _ := newTestApp(t)

	blog := createBlog(t, app.Router,
		map[string]string{"title": "Rice season", "authorEmail": "farmer@example.com"},
		map[string][]byte{"field.png": pngBytes})

	require.Len(t, blog.Images, 1)
	assert.True(t, strings.HasPrefix(blog.Images[0], "/"), "stored path must be relative with leading slash")
	assert.True(t, strings.HasSuffix(blog.Images[0], ".png"))
}

func TestBlogUploadFilterDropsSilently(t *testing.T) {
	app, _ := newTestApp(t)

	oversize := make([]byte, 6*1024*1024)
	copy(oversize, pngBytes)

	// One good file, one wrong type, one oversize: request still succeeds
	// and only the good file lands in the image set.
	blog := createBlog(t, app.Router,
		map[string]string{"title": "Harvest notes"},
		map[string][]byte{
			"ok.png":    pngBytes,
			"notes.txt": []byte("plain text, not an image"),
			"huge.png":  oversize,
		})

	require.Len(t, blog.Images, 1)
	assert.True(t, strings.HasSuffix(blog.Images[0], ".png"))
}

func TestBlogListFilterAndSort(t *testing.T) {
	app, _ := newTestApp(t)

	createBlog(t, app.Router, map[string]string{"title": "Growing Rice in monsoon"}, nil)
	createBlog(t, app.Router, map[string]string{"title": "Wheat basics"}, nil)
	createBlog(t, app.Router, map[string]string{"title": "RICE disease control"}, nil)

	// Case-insensitive substring filter on title
	matched := listBlogs(t, app.Router, "?q=rice")
	require.Len(t, matched, 2)
	for _, blog := range matched {
		assert.Contains(t, strings.ToLower(blog.Title), "rice")
	}

	// Default order is newest first
	all := listBlogs(t, app.Router, "")
	require.Len(t, all, 3)
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i-1].CreatedAt.Before(all[i].CreatedAt))
	}

	// sort=asc is strictly non-decreasing by creation time
	ascending := listBlogs(t, app.Router, "?sort=asc")
	require.Len(t, ascending, 3)
	for i := 1; i < len(ascending); i++ {
		assert.False(t, ascending[i].CreatedAt.Before(ascending[i-1].CreatedAt))
	}
}

func TestBlogUpdateOwnerOrAdmin(t *testing.T) {
	app, _ := newTestApp(t)

	blog := createBlog(t, app.Router,
		map[string]string{"title": "My field", "authorEmail": "owner@example.com"}, nil)

	// A stranger asserting neither admin nor the owning email is rejected
	w := doMultipart(t, app.Router, http.MethodPut, "/api/blogs/"+blog.ID,
		map[string]string{"title": "Defaced", "authorEmail": "other@example.com"}, nil,
		map[string]string{"x-role": "user"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Stored record is unchanged after the rejected update
	all := listBlogs(t, app.Router, "")
	require.Len(t, all, 1)
	assert.Equal(t, "My field", all[0].Title)

	// The owner may update
	w = doMultipart(t, app.Router, http.MethodPut, "/api/blogs/"+blog.ID,
		map[string]string{"title": "My field, revised", "authorEmail": "owner@example.com"}, nil, nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// So may an admin, regardless of email
	w = doMultipart(t, app.Router, http.MethodPut, "/api/blogs/"+blog.ID,
		map[string]string{"title": "Admin edit", "authorEmail": "someone@else.com"}, nil,
		map[string]string{"x-role": "admin"})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	all = listBlogs(t, app.Router, "")
	require.Len(t, all, 1)
	assert.Equal(t, "Admin edit", all[0].Title)
}

func TestBlogUpdateReplacesImageSet(t *testing.T) {
	app, _ := newTestApp(t)

	blog := createBlog(t, app.Router,
		map[string]string{"title": "Pics", "authorEmail": "owner@example.com"},
		map[string][]byte{"a.png": pngBytes, "b.png": pngBytes})
	require.Len(t, blog.Images, 2)

	// New upload replaces the whole set, no partial append
	w := doMultipart(t, app.Router, http.MethodPut, "/api/blogs/"+blog.ID,
		map[string]string{"title": "Pics", "authorEmail": "owner@example.com"},
		map[string][]byte{"c.png": pngBytes}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Blog blogJSON `json:"blog"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Blog.Images, 1)

	// No upload keeps the stored set
	w = doMultipart(t, app.Router, http.MethodPut, "/api/blogs/"+blog.ID,
		map[string]string{"title": "Pics again", "authorEmail": "owner@example.com"}, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Blog.Images, 1)
}

func TestBlogDeleteAdminOnly(t *testing.T) {
	app, _ := newTestApp(t)

	blog := createBlog(t, app.Router,
		map[string]string{"title": "Short lived", "authorEmail": "owner@example.com"}, nil)

	// Even the owner cannot delete without the admin role
	req := httptest.NewRequest(http.MethodDelete, "/api/blogs/"+blog.ID, nil)
	req.Header.Set("x-user-email", "owner@example.com")
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Unknown id is a 404 for an admin
	req = httptest.NewRequest(http.MethodDelete, "/api/blogs/"+uuid.NewString(), nil)
	req.Header.Set("x-role", "admin")
	w = httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Admin delete removes the record
	req = httptest.NewRequest(http.MethodDelete, "/api/blogs/"+blog.ID, nil)
	req.Header.Set("x-role", "admin")
	w = httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	assert.Empty(t, listBlogs(t, app.Router, ""))
}
