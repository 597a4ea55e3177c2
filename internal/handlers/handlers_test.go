package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aeiluminate/backend/internal/handlers"
	"github.com/aeiluminate/backend/internal/middleware"
	"github.com/aeiluminate/backend/internal/models"
	"github.com/aeiluminate/backend/internal/repositories"
	"github.com/aeiluminate/backend/internal/storage"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fakeUploader stores nothing and hands back deterministic URLs
type fakeUploader struct {
	uploads []string
	deleted []string
	fail    bool
}

func (f *fakeUploader) Upload(_ context.Context, filename, _ string, r io.Reader) (*storage.UploadResult, error) {
	if f.fail {
		return nil, fmt.Errorf("upload rejected")
	}
	if _, err := io.Copy(io.Discard, r); err != nil {
		return nil, err
	}
	fileID := uuid.NewString()
	f.uploads = append(f.uploads, fileID)
	return &storage.UploadResult{
		FileID:   fileID,
		MediaURL: "http://files.test/" + fileID,
	}, nil
}

func (f *fakeUploader) Delete(_ context.Context, fileID string) error {
	f.deleted = append(f.deleted, fileID)
	return nil
}

// fakeMailer records outgoing mail instead of talking to an SMTP server
type fakeMailer struct {
	otps         map[string]string
	applications []string
	accepted     []string
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{otps: map[string]string{}}
}

func (f *fakeMailer) SendApplicationReceived(to, applicationID string) error {
	f.applications = append(f.applications, to)
	return nil
}

func (f *fakeMailer) SendApplicationAccepted(to, applicationID string) error {
	f.accepted = append(f.accepted, to)
	return nil
}

func (f *fakeMailer) SendPasswordResetOTP(to, otp string) error {
	f.otps[to] = otp
	return nil
}

// testEnv wires the full route surface against an in-memory database. The
// protected group runs behind a stub gate that injects env.claims, so tests
// pick the caller by assigning it.
type testEnv struct {
	e        *echo.Echo
	db       *gorm.DB
	uploader *fakeUploader
	mail     *fakeMailer
	claims   *models.JwtCustomClaims
}

const testTokenSecret = "handler-test-secret"

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Alumni{},
		&models.AcademicProgram{},
		&models.Application{},
		&models.Post{},
		&models.Media{},
		&models.Like{},
		&models.Comment{},
		&models.Follow{},
		&models.Album{},
		&models.Event{},
		&models.InterestedUser{},
		&models.Conversation{},
		&models.Message{},
		&models.JobListing{},
		&models.PasswordReset{},
	))

	env := &testEnv{
		e:        echo.New(),
		db:       db,
		uploader: &fakeUploader{},
		mail:     newFakeMailer(),
	}

	userRepo := repositories.NewPostgresUserRepository(db)
	postRepo := repositories.NewPostgresPostRepository(db)
	likeRepo := repositories.NewPostgresLikeRepository(db)
	commentRepo := repositories.NewPostgresCommentRepository(db)
	followRepo := repositories.NewPostgresFollowRepository(db)
	albumRepo := repositories.NewPostgresAlbumRepository(db)
	eventRepo := repositories.NewPostgresEventRepository(db)
	conversationRepo := repositories.NewPostgresConversationRepository(db)
	jobRepo := repositories.NewPostgresJobListingRepository(db)
	resetRepo := repositories.NewPostgresPasswordResetRepository(db)

	authHandler := handlers.NewAuthHandler(userRepo, env.uploader, env.mail, testTokenSecret)

	public := env.e.Group("/api")
	authHandler.RegisterAuthRoutes(public)
	handlers.NewRecoveryHandler(resetRepo, userRepo, env.mail).RegisterRecoveryRoutes(public)

	api := env.e.Group("/api")
	api.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if env.claims == nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"tokenError": true})
			}
			c.Set(middleware.ContextUserKey, env.claims)
			return next(c)
		}
	})
	authHandler.RegisterApplicationRoutes(api)
	handlers.NewUserHandler(userRepo, followRepo, env.uploader).RegisterUserRoutes(api)
	handlers.NewPostHandler(postRepo, env.uploader).RegisterPostRoutes(api)
	handlers.NewLikeHandler(likeRepo, postRepo).RegisterLikeRoutes(api)
	handlers.NewCommentHandler(commentRepo, postRepo).RegisterCommentRoutes(api)
	handlers.NewAlbumHandler(albumRepo, env.uploader).RegisterAlbumRoutes(api)
	handlers.NewEventHandler(eventRepo, env.uploader).RegisterEventRoutes(api)
	handlers.NewConversationHandler(conversationRepo, userRepo).RegisterConversationRoutes(api)
	handlers.NewJobListingHandler(jobRepo).RegisterJobListingRoutes(api)

	return env
}

// loginAs seeds an account and makes it the caller on protected routes
func (env *testEnv) loginAs(t *testing.T, username string) *models.User {
	t.Helper()
	user := env.seedUser(t, username)
	env.claims = &models.JwtCustomClaims{UserID: user.UserID, Role: user.Role}
	return user
}

func (env *testEnv) seedUser(t *testing.T, username string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("Sup3r$ecret"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{
		UserID:    uuid.NewString(),
		Role:      models.RoleAlumni,
		Email:     username + "@example.com",
		Username:  username,
		Password:  string(hash),
		FirstName: "Test",
		LastName:  "User",
		CreatedAt: time.Now(),
	}
	require.NoError(t, env.db.Create(user).Error)
	return user
}

func (env *testEnv) doJSON(t *testing.T, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

// doMultipart posts a multipart form with the given fields and, per file
// field name, the given file names
func (env *testEnv) doMultipart(t *testing.T, path string, fields map[string]string, fileField string, fileNames []string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, name := range fileNames {
		part, err := w.CreateFormFile(fileField, name)
		require.NoError(t, err)
		_, err = part.Write([]byte("fake image bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
