package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aeiluminate/backend/internal/middleware"
	"github.com/aeiluminate/backend/internal/models"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, expiresAt time.Time) string {
	t.Helper()
	claims := &models.JwtCustomClaims{
		UserID: "user-1",
		Role:   models.RoleAlumni,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func runGate(t *testing.T, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()

	handler := func(c echo.Context) error {
		claims := c.Get(middleware.ContextUserKey).(*models.JwtCustomClaims)
		return c.JSON(http.StatusOK, echo.Map{"userId": claims.UserID})
	}
	gated := middleware.CookieAuthMiddleware(testSecret)(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, gated(c))
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestMissingCookie(t *testing.T) {
	rec := runGate(t, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["tokenError"])
	assert.Equal(t, "Please Login First", body["message"])
}

func TestExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, time.Now().Add(-time.Hour))
	rec := runGate(t, &http.Cookie{Name: middleware.TokenCookieName, Value: token})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["tokenError"])
	assert.Equal(t, true, body["expired"])
}

func TestTamperedToken(t *testing.T) {
	token := signToken(t, "wrong-secret", time.Now().Add(time.Hour))
	rec := runGate(t, &http.Cookie{Name: middleware.TokenCookieName, Value: token})

	assert.Equal(t, http.StatusForbidden, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["tokenError"])
	_, hasExpired := body["expired"]
	assert.False(t, hasExpired, "a bad signature is not reported as a timeout")
}

func TestGarbageToken(t *testing.T) {
	rec := runGate(t, &http.Cookie{Name: middleware.TokenCookieName, Value: "not-a-jwt"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestValidToken(t *testing.T) {
	token := signToken(t, testSecret, time.Now().Add(time.Hour))
	rec := runGate(t, &http.Cookie{Name: middleware.TokenCookieName, Value: token})

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "user-1", body["userId"])
}
