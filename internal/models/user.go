package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Roles recognized by the platform.
const (
	RoleAlumni  = "Alumni"
	RoleStudent = "Student"
	RoleFaculty = "Faculty"
)

// User represents a platform account
type User struct {
	UserID         string    `json:"userID" gorm:"primaryKey;size:36"`
	Role           string    `json:"role" gorm:"size:20;index"`
	Email          string    `json:"email" gorm:"uniqueIndex;size:255"`
	Username       string    `json:"username" gorm:"uniqueIndex;size:50"`
	Password       string    `json:"-"` // bcrypt hash, never serialized
	FirstName      string    `json:"firstName" gorm:"size:100"`
	MiddleName     string    `json:"middleName" gorm:"size:100"`
	LastName       string    `json:"lastName" gorm:"size:100"`
	Bio            string    `json:"bio"`
	Company        string    `json:"company" gorm:"size:150"`
	JobRole        string    `json:"job_role" gorm:"size:150"`
	PhoneNumber    string    `json:"phoneNumber" gorm:"size:30"`
	ProfilePicture string    `json:"profile_picture"`
	IsPrivate      bool      `json:"isPrivate" gorm:"default:false"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Alumni holds the graduate-specific extension of a user account
type Alumni struct {
	UserID        string `json:"userID" gorm:"primaryKey;size:36"`
	YearGraduated int    `json:"yearGraduated"`
	ProgramID     string `json:"programID" gorm:"size:36;index"`
	IsEmployed    bool   `json:"isEmployed"`
}

// TableName keeps the irregular plural out of gorm's pluralizer
func (Alumni) TableName() string { return "alumni" }

// AcademicProgram is a degree program an alumni graduated from
type AcademicProgram struct {
	ProgramID      string `json:"programID" gorm:"primaryKey;size:36"`
	SchoolName     string `json:"school_name" gorm:"size:150"`
	ProgramName    string `json:"program_name" gorm:"size:150"`
	Specialization string `json:"specialization" gorm:"size:150"`
}

// LoginRequest defines the request body for signing in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest defines the request body for creating a new account
type RegisterRequest struct {
	Email         string `json:"email" form:"email" validate:"required,email"`
	UserName      string `json:"userName" form:"userName" validate:"required,min=3,max=50"`
	Password      string `json:"password" form:"password" validate:"required,min=8"`
	FirstName     string `json:"firstName" form:"firstName" validate:"required,max=100"`
	MiddleName    string `json:"middleName" form:"middleName" validate:"required,max=100"`
	LastName      string `json:"lastName" form:"lastName" validate:"required,max=100"`
	RoleType      string `json:"roleType" form:"roleType" validate:"required,oneof=Alumni Student Faculty"`
	Program       string `json:"program" form:"program" validate:"required"`
	YearGraduated int    `json:"yearGraduated" form:"yearGraduated" validate:"required,min=1900,max=2100"`
	Employment    string `json:"employment" form:"employment" validate:"required"`
}

// UpdateUserDetailsRequest defines the request body for editing profile fields
type UpdateUserDetailsRequest struct {
	Username    string `json:"username,omitempty" validate:"omitempty,min=3,max=50"`
	FirstName   string `json:"firstName,omitempty" validate:"omitempty,max=100"`
	MiddleName  string `json:"middleName,omitempty" validate:"omitempty,max=100"`
	LastName    string `json:"lastName,omitempty" validate:"omitempty,max=100"`
	Bio         string `json:"bio,omitempty" validate:"omitempty,max=500"`
	Company     string `json:"company,omitempty" validate:"omitempty,max=150"`
	JobRole     string `json:"job_role,omitempty" validate:"omitempty,max=150"`
	PhoneNumber string `json:"phoneNumber,omitempty" validate:"omitempty,max=30"`
	IsPrivate   *bool  `json:"isPrivate,omitempty"`
}

// FollowInfo is a user row enriched with its follower count, as returned by
// the follower/following listings
type FollowInfo struct {
	UserID         string `json:"userID"`
	Username       string `json:"username"`
	ProfilePicture string `json:"profile_picture"`
	Role           string `json:"role"`
	TotalFollowers int64  `json:"total_followers"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}
