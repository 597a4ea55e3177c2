package models

import "time"

// PasswordReset stores the one-time code issued during password recovery.
// One row per email; re-sending replaces the row and resets the expiry.
type PasswordReset struct {
	Email     string    `json:"email" gorm:"primaryKey;size:255"`
	Code      string    `json:"-" gorm:"size:10"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

// SendOTPRequest defines the request body for requesting a recovery code
type SendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// VerifyOTPRequest defines the request body for verifying a recovery code
type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=5,numeric"`
}

// ChangePasswordRequest defines the request body for setting a new password
type ChangePasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	NewPassword string `json:"newPassword" validate:"required"`
}
