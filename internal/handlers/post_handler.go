package handlers

import (
	"net/http"
	"time"

	"github.com/aeiluminate/backend/internal/models"
	"github.com/aeiluminate/backend/internal/repositories"
	"github.com/aeiluminate/backend/internal/storage"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// PostHandler handles HTTP requests related to posts and lines
type PostHandler struct {
	postRepository repositories.PostRepository
	uploader       storage.Uploader
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository, uploader storage.Uploader) *PostHandler {
	return &PostHandler{
		postRepository: postRepo,
		uploader:       uploader,
	}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/post", h.CreatePost)
	g.POST("/line", h.CreateLine)
	g.GET("/posts", h.GetFeed)
	g.GET("/posts/:id", h.GetUserPosts)
	g.GET("/post/stats/:id", h.GetPostStats)
	g.DELETE("/post/:id", h.DeletePost)
}

// CreatePost creates a media post: every image is stored first, then the
// post and its media rows are written in one transaction
func (h *PostHandler) CreatePost(c echo.Context) error {
	claims := currentUser(c)

	caption := c.FormValue("caption")
	if caption == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Caption is required")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid multipart payload")
	}
	files := form.File["images"]
	// The client validates this too, but a post without media is a line and
	// must not come in through this route.
	if len(files) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "At least one image is required")
	}

	media, err := uploadFiles(c.Request().Context(), h.uploader, files)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to store post media")
	}

	post := &models.Post{
		PostID:    uuid.NewString(),
		UserID:    claims.UserID,
		Caption:   caption,
		CreatedAt: time.Now(),
		Media:     media,
	}

	if err := h.postRepository.CreatePost(post); err != nil {
		rollbackUploads(c.Request().Context(), h.uploader, media)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to add new post")
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "Post created successfully", "postID": post.PostID})
}

// CreateLine creates a caption-only post
func (h *PostHandler) CreateLine(c echo.Context) error {
	claims := currentUser(c)

	var req models.CreateLineRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post := &models.Post{
		PostID:    uuid.NewString(),
		UserID:    claims.UserID,
		Caption:   req.Caption,
		CreatedAt: time.Now(),
	}

	if err := h.postRepository.CreatePost(post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to add new post")
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "Post created successfully", "postID": post.PostID})
}

// GetFeed returns the paginated public feed
func (h *PostHandler) GetFeed(c echo.Context) error {
	page, length, err := pageParams(c)
	if err != nil {
		return err
	}

	posts, total, err := h.postRepository.ListFeed(page, length)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Error fetching paginated posts")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"posts":      posts,
		"totalPosts": total,
		"totalPage":  totalPages(total, length),
	})
}

// GetUserPosts returns every post authored by a user
func (h *PostHandler) GetUserPosts(c echo.Context) error {
	posts, err := h.postRepository.ListUserPosts(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Error fetching user posts")
	}
	return c.JSON(http.StatusOK, echo.Map{"posts": posts})
}

// GetPostStats returns like/reply counts and the caller's like status
func (h *PostHandler) GetPostStats(c echo.Context) error {
	claims := currentUser(c)

	stats, err := h.postRepository.GetPostStats(c.Param("id"), claims.UserID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Post stats not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to get post stats")
	}
	return c.JSON(http.StatusOK, stats)
}

// DeletePost removes a post the caller owns
func (h *PostHandler) DeletePost(c echo.Context) error {
	claims := currentUser(c)
	postID := c.Param("id")

	post, err := h.postRepository.GetPostByID(postID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch post")
	}

	if post.UserID != claims.UserID {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to delete this post")
	}

	if err := h.postRepository.DeletePost(postID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete post")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Post deleted"})
}
