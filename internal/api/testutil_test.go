package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"portfolio_backend/internal/domain"
	"portfolio_backend/internal/middleware"
	"portfolio_backend/internal/storage"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	testJWTSecret     = "test-secret"
	testAdminPassword = "admin123"
)

// envelope mirrors the shared response shape for assertions
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// fakeMailer records contact messages instead of sending them
type fakeMailer struct {
	calls    int
	lastName string
	lastFrom string
	lastBody string
	err      error
}

func (m *fakeMailer) SendContactMessage(name, email, message string) error {
	m.calls++
	m.lastName = name
	m.lastFrom = email
	m.lastBody = message
	return m.err
}

// testEnv wires the handlers the way cmd/server does, against an in-memory
// database, miniredis and a temp upload directory
type testEnv struct {
	db     *gorm.DB
	rdb    *redis.Client
	redis  *miniredis.Miniredis
	router *gin.Engine
	mailer *fakeMailer
	store  *storage.FileStore
	dir    string
	admin  domain.User
}

func newTestEnv(t *testing.T, maxFileSize int64) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// Unique in-memory database per test
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Category{}, &domain.Image{}))

	// Seeded admin user
	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.DefaultCost)
	require.NoError(t, err)
	admin := domain.User{Username: "admin", PasswordHash: string(hash), Email: "admin@example.com"}
	require.NoError(t, db.Create(&admin).Error)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	dir := t.TempDir()
	store := storage.NewFileStore(dir)
	mailer := &fakeMailer{}

	r := gin.New()
	apiGroup := r.Group("/api")
	apiGroup.GET("/health", HealthHandler())
	apiGroup.POST("/auth/login", LoginHandler(db, testJWTSecret))
	apiGroup.GET("/portfolio/categories", ListCategoriesHandler(db, rdb))
	apiGroup.GET("/portfolio/images/:categoryId", ListCategoryImagesHandler(db, rdb))
	adminGroup := apiGroup.Group("/admin")
	adminGroup.Use(middleware.JWTAuthMiddleware(testJWTSecret))
	adminGroup.GET("/verify", VerifyTokenHandler())
	adminGroup.GET("/images", ListAllImagesHandler(db))
	adminGroup.POST("/images", UploadImageHandler(db, rdb, store, maxFileSize))
	adminGroup.DELETE("/images/:imageId", DeleteImageHandler(db, rdb, store))
	apiGroup.POST("/contact", ContactHandler(mailer))

	return &testEnv{db: db, rdb: rdb, redis: mr, router: r, mailer: mailer, store: store, dir: dir, admin: admin}
}

// createCategory inserts a category for tests
func (e *testEnv) createCategory(t *testing.T, name, slug string, order int, section string) domain.Category {
	t.Helper()
	category := domain.Category{NameCS: name, Slug: slug, DisplayOrder: order, ParentSection: section}
	require.NoError(t, e.db.Create(&category).Error)
	return category
}

// do performs a JSON request against the test router
func (e *testEnv) do(t *testing.T, method, path string, body any, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

// doUpload performs a multipart image upload against the test router
func (e *testEnv) doUpload(t *testing.T, token, fieldName, filename, contentType string, content []byte, categoryID string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if filename != "" {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, fieldName, filename))
		header.Set("Content-Type", contentType)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	if categoryID != "" {
		require.NoError(t, writer.WriteField("categoryId", categoryID))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/images", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}
