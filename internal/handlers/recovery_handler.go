package handlers

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"net/http"
	"time"
	"unicode"

	"github.com/aeiluminate/backend/internal/mailer"
	"github.com/aeiluminate/backend/internal/models"
	"github.com/aeiluminate/backend/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const otpValidity = 10 * time.Minute

// RecoveryHandler handles the password recovery flow: request a code,
// verify it, then set a new password
type RecoveryHandler struct {
	resetRepository repositories.PasswordResetRepository
	userRepository  repositories.UserRepository
	mail            mailer.Mailer
}

// NewRecoveryHandler creates a new RecoveryHandler
func NewRecoveryHandler(resetRepo repositories.PasswordResetRepository, userRepo repositories.UserRepository, mail mailer.Mailer) *RecoveryHandler {
	return &RecoveryHandler{
		resetRepository: resetRepo,
		userRepository:  userRepo,
		mail:            mail,
	}
}

// RegisterRecoveryRoutes registers password recovery routes. These are
// public, the caller has no session to authenticate with.
func (h *RecoveryHandler) RegisterRecoveryRoutes(g *echo.Group) {
	g.POST("/recover/send-otp", h.SendOTP)
	g.POST("/recover/verify-otp", h.VerifyOTP)
	g.POST("/recover/change-pass", h.ChangePassword)
}

// generateOTP returns a 5 digit numeric code, zero padded
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(100000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%05d", n.Int64()), nil
}

// validPassword reports whether a password meets the policy: at least 8
// characters with an uppercase letter, a lowercase letter, a digit and a
// symbol
func validPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var upper, lower, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}
	return upper && lower && digit && symbol
}

// SendOTP issues a recovery code to a registered email. A re-send replaces
// the previous code and restarts the validity window.
func (h *RecoveryHandler) SendOTP(c echo.Context) error {
	var req models.SendOTPRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.userRepository.GetUserByEmail(req.Email); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "No account with this email")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to look up account")
	}

	code, err := generateOTP()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate OTP")
	}

	reset := &models.PasswordReset{
		Email:     req.Email,
		Code:      code,
		ExpiresAt: time.Now().Add(otpValidity),
		CreatedAt: time.Now(),
	}
	if err := h.resetRepository.SaveCode(reset); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to store OTP")
	}

	if err := h.mail.SendPasswordResetOTP(req.Email, code); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to send OTP email")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "OTP sent"})
}

// VerifyOTP checks a recovery code against the stored one
func (h *RecoveryHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	reset, err := h.resetRepository.GetByEmail(req.Email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "No OTP requested for this email")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to look up OTP")
	}

	if time.Now().After(reset.ExpiresAt) {
		return echo.NewHTTPError(http.StatusBadRequest, "OTP has expired")
	}
	if reset.Code != req.OTP {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid OTP")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "OTP verified"})
}

// ChangePassword sets a new password after a verified recovery and
// invalidates the used code
func (h *RecoveryHandler) ChangePassword(c echo.Context) error {
	var req models.ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if !validPassword(req.NewPassword) {
		return echo.NewHTTPError(http.StatusBadRequest, "Password must be at least 8 characters with an uppercase letter, a lowercase letter, a number and a symbol")
	}

	if _, err := h.resetRepository.GetByEmail(req.Email); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusForbidden, "No verified recovery for this email")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to look up recovery")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to hash password")
	}

	if err := h.userRepository.UpdatePassword(req.Email, string(hashed)); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "No account with this email")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update password")
	}

	if err := h.resetRepository.DeleteByEmail(req.Email); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to clear recovery code")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Password changed successfully"})
}
