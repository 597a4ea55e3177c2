package handlers

import (
	"net/http"
	"time"

	"github.com/aeiluminate/backend/internal/models"
	"github.com/aeiluminate/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// LikeHandler handles HTTP requests for liking and unliking posts
type LikeHandler struct {
	likeRepository repositories.LikeRepository
	postRepository repositories.PostRepository
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeRepo repositories.LikeRepository, postRepo repositories.PostRepository) *LikeHandler {
	return &LikeHandler{
		likeRepository: likeRepo,
		postRepository: postRepo,
	}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/post/like/:id", h.LikePost)
	g.POST("/post/unlike/:id", h.UnlikePost)
}

// LikePost records that the caller liked a post
func (h *LikeHandler) LikePost(c echo.Context) error {
	claims := currentUser(c)
	postID := c.Param("id")

	if _, err := h.postRepository.GetPostByID(postID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch post")
	}

	liked, err := h.likeRepository.HasUserLikedPost(postID, claims.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to check like status")
	}
	if liked {
		return echo.NewHTTPError(http.StatusConflict, "Post already liked")
	}

	like := &models.Like{
		PostID:  postID,
		UserID:  claims.UserID,
		LikedAt: time.Now(),
	}
	if err := h.likeRepository.CreateLike(like); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to like post")
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Post liked"})
}

// UnlikePost removes the caller's like from a post
func (h *LikeHandler) UnlikePost(c echo.Context) error {
	claims := currentUser(c)
	postID := c.Param("id")

	liked, err := h.likeRepository.HasUserLikedPost(postID, claims.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to check like status")
	}
	if !liked {
		return echo.NewHTTPError(http.StatusNotFound, "Like not found")
	}

	if err := h.likeRepository.DeleteLike(postID, claims.UserID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to unlike post")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Post unliked"})
}
