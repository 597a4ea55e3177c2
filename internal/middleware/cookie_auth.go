package middleware

import (
	"errors"
	"net/http"

	"github.com/aeiluminate/backend/internal/models"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

// TokenCookieName is the cookie carrying the signed session token
const TokenCookieName = "token"

// ContextUserKey is where verified claims are stored on the echo context
const ContextUserKey = "user"

// CookieAuthMiddleware checks for a valid session token in the request cookie
// and extracts the caller's identity. Responses carry a tokenError flag so
// the client can tell auth failures apart from other errors, and an expired
// flag for the session-timeout case.
func CookieAuthMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(TokenCookieName)
			if err != nil || cookie.Value == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"tokenError": true,
					"message":    "Please Login First",
				})
			}

			claims := &models.JwtCustomClaims{}
			token, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(secret), nil
			})

			if err != nil {
				if errors.Is(err, jwt.ErrTokenExpired) {
					return c.JSON(http.StatusUnauthorized, echo.Map{
						"tokenError": true,
						"expired":    true,
						"message":    "Session has expired. Please log in again.",
					})
				}
				return c.JSON(http.StatusForbidden, echo.Map{
					"tokenError": true,
					"message":    "Access verification failed. Please log in again.",
				})
			}

			if !token.Valid {
				return c.JSON(http.StatusForbidden, echo.Map{
					"tokenError": true,
					"message":    "Access verification failed. Please log in again.",
				})
			}

			// Store user claims in context
			c.Set(ContextUserKey, claims)

			return next(c)
		}
	}
}
