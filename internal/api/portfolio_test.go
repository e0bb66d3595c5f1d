package api

import (
	"encoding/json"
	"net/http"
	"portfolio_backend/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCategoriesOrdered(t *testing.T) {
	env := newTestEnv(t, 5*1024*1024)
	env.createCategory(t, "Líčení pro focení", "liceni-pro-foceni", 4, "liceni")
	env.createCategory(t, "Svatební líčení", "svatebni-liceni", 1, "liceni")
	env.createCategory(t, "Svatební účesy", "svatebni-ucesy", 5, "ucesy")

	w, resp := env.do(t, http.MethodGet, "/api/portfolio/categories", nil, "")

	require.Equal(t, http.StatusOK, w.Code)
	var categories []domain.Category
	require.NoError(t, json.Unmarshal(resp.Data, &categories))
	require.Len(t, categories, 3)
	assert.Equal(t, "svatebni-liceni", categories[0].Slug)
	assert.Equal(t, "liceni-pro-foceni", categories[1].Slug)
	assert.Equal(t, "svatebni-ucesy", categories[2].Slug)
}

func TestListCategoriesFilteredBySection(t *testing.T) {
	env := newTestEnv(t, 5*1024*1024)
	env.createCategory(t, "Svatební líčení", "svatebni-liceni", 1, "liceni")
	env.createCategory(t, "Svatební účesy", "svatebni-ucesy", 2, "ucesy")

	w, resp := env.do(t, http.MethodGet, "/api/portfolio/categories?parent_section=ucesy", nil, "")

	require.Equal(t, http.StatusOK, w.Code)
	var categories []domain.Category
	require.NoError(t, json.Unmarshal(resp.Data, &categories))
	require.Len(t, categories, 1)
	assert.Equal(t, "svatebni-ucesy", categories[0].Slug)
}

func TestListImagesInvalidCategoryID(t *testing.T) {
	env := newTestEnv(t, 5*1024*1024)

	w, resp := env.do(t, http.MethodGet, "/api/portfolio/images/abc", nil, "")

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_CATEGORY_ID", resp.Error.Code)
	assert.Equal(t, "Neplatné ID kategorie", resp.Error.Message)
}

func TestListImagesUnknownCategory(t *testing.T) {
	env := newTestEnv(t, 5*1024*1024)

	w, resp := env.do(t, http.MethodGet, "/api/portfolio/images/999", nil, "")

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "CATEGORY_NOT_FOUND", resp.Error.Code)
	assert.Equal(t, "Kategorie nebyla nalezena", resp.Error.Message)
}

func TestListImagesOrderedByDisplayOrderThenRecency(t *testing.T) {
	env := newTestEnv(t, 5*1024*1024)
	category := env.createCategory(t, "Svatební líčení", "svatebni-liceni", 1, "liceni")

	// Explicit display order wins over recency
	first := domain.Image{CategoryID: category.ID, Filename: "b.jpg", OriginalFilename: "b.jpg",
		FilePath: "x/b.jpg", FileSize: 1, MimeType: "image/jpeg", UploadedBy: env.admin.ID, DisplayOrder: 1}
	second := domain.Image{CategoryID: category.ID, Filename: "a.jpg", OriginalFilename: "a.jpg",
		FilePath: "x/a.jpg", FileSize: 1, MimeType: "image/jpeg", UploadedBy: env.admin.ID, DisplayOrder: 2}
	require.NoError(t, env.db.Create(&first).Error)
	require.NoError(t, env.db.Create(&second).Error)

	w, resp := env.do(t, http.MethodGet, "/api/portfolio/images/1", nil, "")

	require.Equal(t, http.StatusOK, w.Code)
	var images []domain.Image
	require.NoError(t, json.Unmarshal(resp.Data, &images))
	require.Len(t, images, 2)
	assert.Equal(t, "b.jpg", images[0].Filename)
	assert.Equal(t, "a.jpg", images[1].Filename)
}

func TestListImagesServedFromCache(t *testing.T) {
	env := newTestEnv(t, 5*1024*1024)
	category := env.createCategory(t, "Svatební líčení", "svatebni-liceni", 1, "liceni")

	w, _ := env.do(t, http.MethodGet, "/api/portfolio/images/1", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, env.redis.Exists(imagesCacheKey(category.ID)))

	// A row added behind the cache is not visible until the TTL or an invalidation
	image := domain.Image{CategoryID: category.ID, Filename: "new.jpg", OriginalFilename: "new.jpg",
		FilePath: "x/new.jpg", FileSize: 1, MimeType: "image/jpeg", UploadedBy: env.admin.ID}
	require.NoError(t, env.db.Create(&image).Error)

	_, resp := env.do(t, http.MethodGet, "/api/portfolio/images/1", nil, "")
	var images []domain.Image
	require.NoError(t, json.Unmarshal(resp.Data, &images))
	assert.Len(t, images, 0)
}
