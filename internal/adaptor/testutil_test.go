package adaptor_test

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"sort"
	"strings"
	"sync"
	"testing"

	"soil-farming-agent/internal/data/entity"
	"soil-farming-agent/internal/data/repository"
	"soil-farming-agent/internal/wire"
	"soil-farming-agent/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestApp wires the real router and services over in-memory repositories
func newTestApp(t *testing.T) (*wire.App, *repository.Repository) {
	t.Helper()

	repos := &repository.Repository{
		User:        newFakeUserRepo(),
		Soil:        newFakeSoilRepo(),
		Distributor: newFakeDistributorRepo(),
		Blog:        newFakeBlogRepo(),
	}

	config := &utils.Config{
		Upload: utils.UploadConfig{
			Dir:       t.TempDir(),
			MaxFiles:  5,
			MaxSizeMB: 5,
		},
		Admin: utils.AdminConfig{
			Email:    "arkhan@gmail.com",
			Password: "zayed",
		},
	}

	app, err := wire.Wiring(repos, config, zap.NewNop())
	require.NoError(t, err)

	return app, repos
}

// multipartBody builds a multipart form with the given fields and image files
func multipartBody(t *testing.T, fields map[string]string, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for name, content := range files {
		fw, err := w.CreateFormFile("images", name)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return buf, w.FormDataContentType()
}

// minimal valid PNG header; enough for content sniffing
var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 13, 'I', 'H', 'D', 'R'}

// ==================== FAKE REPOSITORIES ====================

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.Email]; ok {
		return fmt.Errorf("create user %s: duplicate email", user.Email)
	}
	cp := *user
	f.users[user.Email] = &cp
	return nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[email]
	if !ok {
		return nil, nil
	}
	cp := *user
	return &cp, nil
}

type fakeSoilRepo struct {
	mu    sync.Mutex
	soils map[uuid.UUID]*entity.Soil
}

func newFakeSoilRepo() *fakeSoilRepo {
	return &fakeSoilRepo{soils: map[uuid.UUID]*entity.Soil{}}
}

func (f *fakeSoilRepo) Create(_ context.Context, soil *entity.Soil) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *soil
	f.soils[soil.ID] = &cp
	return nil
}

func (f *fakeSoilRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Soil, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	soil, ok := f.soils[id]
	if !ok {
		return nil, nil
	}
	cp := *soil
	return &cp, nil
}

func (f *fakeSoilRepo) FindAll(_ context.Context) ([]*entity.Soil, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Soil
	for _, soil := range f.soils {
		cp := *soil
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeSoilRepo) Update(_ context.Context, soil *entity.Soil) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.soils[soil.ID]; !ok {
		return fmt.Errorf("soil %s not found", soil.ID.String())
	}
	cp := *soil
	f.soils[soil.ID] = &cp
	return nil
}

func (f *fakeSoilRepo) DeleteByIDs(_ context.Context, ids []uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var deleted int64
	for _, id := range ids {
		if _, ok := f.soils[id]; ok {
			delete(f.soils, id)
			deleted++
		}
	}
	return deleted, nil
}

type fakeDistributorRepo struct {
	mu    sync.Mutex
	dists map[uuid.UUID]*entity.Distributor
}

func newFakeDistributorRepo() *fakeDistributorRepo {
	return &fakeDistributorRepo{dists: map[uuid.UUID]*entity.Distributor{}}
}

func (f *fakeDistributorRepo) Create(_ context.Context, dist *entity.Distributor) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *dist
	f.dists[dist.ID] = &cp
	return nil
}

func (f *fakeDistributorRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Distributor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	dist, ok := f.dists[id]
	if !ok {
		return nil, nil
	}
	cp := *dist
	return &cp, nil
}

func (f *fakeDistributorRepo) FindAll(_ context.Context) ([]*entity.Distributor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Distributor
	for _, dist := range f.dists {
		cp := *dist
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeDistributorRepo) Update(_ context.Context, dist *entity.Distributor) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.dists[dist.ID]; !ok {
		return fmt.Errorf("distributor %s not found", dist.ID.String())
	}
	cp := *dist
	f.dists[dist.ID] = &cp
	return nil
}

func (f *fakeDistributorRepo) DeleteByIDs(_ context.Context, ids []uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var deleted int64
	for _, id := range ids {
		if _, ok := f.dists[id]; ok {
			delete(f.dists, id)
			deleted++
		}
	}
	return deleted, nil
}

type fakeBlogRepo struct {
	mu    sync.Mutex
	blogs map[uuid.UUID]*entity.Blog
}

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{blogs: map[uuid.UUID]*entity.Blog{}}
}

func (f *fakeBlogRepo) Create(_ context.Context, blog *entity.Blog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *blog
	f.blogs[blog.ID] = &cp
	return nil
}

func (f *fakeBlogRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Blog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	blog, ok := f.blogs[id]
	if !ok {
		return nil, nil
	}
	cp := *blog
	return &cp, nil
}

func (f *fakeBlogRepo) FindAll(_ context.Context, titleQuery *string, ascending bool) ([]*entity.Blog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Blog
	for _, blog := range f.blogs {
		if titleQuery != nil && *titleQuery != "" &&
			!strings.Contains(strings.ToLower(blog.Title), strings.ToLower(*titleQuery)) {
			continue
		}
		cp := *blog
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if ascending {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeBlogRepo) Update(_ context.Context, blog *entity.Blog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.blogs[blog.ID]; !ok {
		return fmt.Errorf("blog %s not found", blog.ID.String())
	}
	cp := *blog
	f.blogs[blog.ID] = &cp
	return nil
}

func (f *fakeBlogRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.blogs[id]; !ok {
		return fmt.Errorf("blog %s not found", id.String())
	}
	delete(f.blogs, id)
	return nil
}
