package handlers

import (
	"mime/multipart"
	"net/http"
	"time"

	"github.com/aeiluminate/backend/internal/models"
	"github.com/aeiluminate/backend/internal/repositories"
	"github.com/aeiluminate/backend/internal/storage"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// UserHandler handles HTTP requests related to users and follow edges
type UserHandler struct {
	userRepository   repositories.UserRepository
	followRepository repositories.FollowRepository
	uploader         storage.Uploader
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository, followRepo repositories.FollowRepository, uploader storage.Uploader) *UserHandler {
	return &UserHandler{
		userRepository:   userRepo,
		followRepository: followRepo,
		uploader:         uploader,
	}
}

// RegisterUserRoutes registers user-related routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.GET("/users", h.ListUsers)
	g.GET("/user/:id", h.GetUser)
	g.GET("/user/alumni_details/:id", h.GetAlumniDetails)
	g.GET("/user/follower/:id", h.GetFollowers)
	g.GET("/user/following/:id", h.GetFollowing)
	g.GET("/user/follower_count/:id", h.GetFollowerCount)
	g.GET("/user/following_count/:id", h.GetFollowingCount)
	g.GET("/user/follow_status/:id", h.GetFollowStatus)
	g.POST("/user/follow/:id", h.FollowUser)
	g.POST("/user/unfollow/:id", h.UnfollowUser)
	g.PATCH("/user/update/details", h.UpdateDetails)
	g.PATCH("/user/update/profile", h.UpdateProfilePicture)
	g.DELETE("/users/delete/:id", h.DeleteUser)
}

// ListUsers returns a page of users, excluding pending applicants, optionally
// filtered by a search key
func (h *UserHandler) ListUsers(c echo.Context) error {
	page, length, err := pageParams(c)
	if err != nil {
		return err
	}
	key := c.QueryParam("key")

	users, total, err := h.userRepository.ListUsers(page, length, key)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch users (Internal Server error)")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"results":    users,
		"users":      users,
		"totalUsers": total,
		"pagination": echo.Map{
			"currentPage":  page,
			"pageSize":     length,
			"totalRecords": total,
			"totalPages":   totalPages(total, length),
		},
	})
}

// GetUser returns a user's public profile (the password hash never
// serializes)
func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.userRepository.GetUserByID(c.Param("id"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch user (Internal Server Error)")
	}
	return c.JSON(http.StatusOK, echo.Map{"user": user})
}

// GetAlumniDetails returns the alumni profile row of a user
func (h *UserHandler) GetAlumniDetails(c echo.Context) error {
	details, err := h.userRepository.GetAlumniDetails(c.Param("id"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Alumni details not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch alumni details")
	}
	return c.JSON(http.StatusOK, details)
}

// GetFollowers returns the followers of a user with their follower counts
func (h *UserHandler) GetFollowers(c echo.Context) error {
	followers, err := h.followRepository.GetFollowers(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch followers")
	}
	return c.JSON(http.StatusOK, followers)
}

// GetFollowing returns the users a user is following
func (h *UserHandler) GetFollowing(c echo.Context) error {
	following, err := h.followRepository.GetFollowing(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch following users")
	}
	return c.JSON(http.StatusOK, following)
}

// GetFollowerCount returns how many followers a user has
func (h *UserHandler) GetFollowerCount(c echo.Context) error {
	count, err := h.followRepository.GetFollowersCount(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal Server Error (Failed to fetch follower count)")
	}
	return c.JSON(http.StatusOK, echo.Map{"count": count})
}

// GetFollowingCount returns how many users a user follows
func (h *UserHandler) GetFollowingCount(c echo.Context) error {
	count, err := h.followRepository.GetFollowingCount(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal Server Error (Failed to fetch following count)")
	}
	return c.JSON(http.StatusOK, echo.Map{"count": count})
}

// GetFollowStatus reports whether the caller follows the given user
func (h *UserHandler) GetFollowStatus(c echo.Context) error {
	claims := currentUser(c)

	isFollowing, err := h.followRepository.IsFollowing(claims.UserID, c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal Server Error (Failed to check follow status)")
	}
	return c.JSON(http.StatusOK, echo.Map{"isFollowing": isFollowing})
}

// FollowUser creates a follow edge from the caller to the given user
func (h *UserHandler) FollowUser(c echo.Context) error {
	claims := currentUser(c)
	targetID := c.Param("id")

	if claims.UserID == targetID {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot follow yourself")
	}

	if _, err := h.userRepository.GetUserByID(targetID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal Server Error (Failed to follow)")
	}

	isFollowing, err := h.followRepository.IsFollowing(claims.UserID, targetID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal Server Error (Failed to follow)")
	}
	if isFollowing {
		return echo.NewHTTPError(http.StatusConflict, "Already following this user")
	}

	follow := &models.Follow{
		FollowerID: claims.UserID,
		FollowedID: targetID,
		FollowedAt: time.Now(),
	}
	if err := h.followRepository.CreateFollow(follow); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal Server Error (Failed to follow)")
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Followed"})
}

// UnfollowUser removes the follow edge from the caller to the given user
func (h *UserHandler) UnfollowUser(c echo.Context) error {
	claims := currentUser(c)

	if err := h.followRepository.DeleteFollow(claims.UserID, c.Param("id")); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Follow relationship not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Unfollowed"})
}

// UpdateDetails edits the caller's profile fields
func (h *UserHandler) UpdateDetails(c echo.Context) error {
	claims := currentUser(c)

	var req models.UpdateUserDetailsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userRepository.GetUserByID(claims.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}

	if req.Username != "" && req.Username != user.Username {
		taken, err := h.userRepository.UsernameExists(req.Username)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to check username")
		}
		if taken {
			return echo.NewHTTPError(http.StatusConflict, "Username already exists")
		}
		user.Username = req.Username
	}
	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.MiddleName != "" {
		user.MiddleName = req.MiddleName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.Bio != "" {
		user.Bio = req.Bio
	}
	if req.Company != "" {
		user.Company = req.Company
	}
	if req.JobRole != "" {
		user.JobRole = req.JobRole
	}
	if req.PhoneNumber != "" {
		user.PhoneNumber = req.PhoneNumber
	}
	if req.IsPrivate != nil {
		user.IsPrivate = *req.IsPrivate
	}

	if err := h.userRepository.UpdateUser(user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update user details")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Details updated", "user": user})
}

// UpdateProfilePicture stores a new profile image and saves its view URL
func (h *UserHandler) UpdateProfilePicture(c echo.Context) error {
	claims := currentUser(c)

	file, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Profile image is required")
	}

	user, err := h.userRepository.GetUserByID(claims.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}

	media, err := uploadFiles(c.Request().Context(), h.uploader, []*multipart.FileHeader{file})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to store profile image")
	}

	user.ProfilePicture = media[0].MediaURL
	if err := h.userRepository.UpdateUser(user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update profile")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":         "Profile updated",
		"profile_picture": user.ProfilePicture,
	})
}

// DeleteUser removes the caller's own account
func (h *UserHandler) DeleteUser(c echo.Context) error {
	claims := currentUser(c)
	id := c.Param("id")

	if claims.UserID != id {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to delete this account")
	}

	if err := h.userRepository.DeleteUser(id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete user from database")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User deleted successfully"})
}
