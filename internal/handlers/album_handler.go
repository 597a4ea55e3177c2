package handlers

import (
	"net/http"
	"time"

	"github.com/aeiluminate/backend/internal/models"
	"github.com/aeiluminate/backend/internal/repositories"
	"github.com/aeiluminate/backend/internal/storage"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// AlbumHandler handles HTTP requests for albums
type AlbumHandler struct {
	albumRepository repositories.AlbumRepository
	uploader        storage.Uploader
}

// NewAlbumHandler creates a new AlbumHandler
func NewAlbumHandler(albumRepo repositories.AlbumRepository, uploader storage.Uploader) *AlbumHandler {
	return &AlbumHandler{
		albumRepository: albumRepo,
		uploader:        uploader,
	}
}

// RegisterAlbumRoutes registers album-related routes
func (h *AlbumHandler) RegisterAlbumRoutes(g *echo.Group) {
	g.POST("/album/new", h.CreateAlbum)
	g.POST("/album/add", h.AddToAlbum)
	g.GET("/album/all", h.ListAlbums)
	g.GET("/album/:id", h.GetAlbumPosts)
	g.GET("/album/information/:id", h.GetAlbumInfo)
}

// albumPostsFromForm stores the uploaded images and builds one post per
// request, all attached to the given album
func (h *AlbumHandler) albumPostsFromForm(c echo.Context, albumID, userID string) ([]models.Post, []models.Media, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid multipart payload")
	}
	files := form.File["images"]
	if len(files) == 0 {
		return nil, nil, echo.NewHTTPError(http.StatusBadRequest, "At least one image is required")
	}

	media, err := uploadFiles(c.Request().Context(), h.uploader, files)
	if err != nil {
		return nil, nil, echo.NewHTTPError(http.StatusInternalServerError, "Failed to store album media")
	}

	post := models.Post{
		PostID:    uuid.NewString(),
		UserID:    userID,
		Caption:   c.FormValue("caption"),
		AlbumID:   &albumID,
		CreatedAt: time.Now(),
		Media:     media,
	}
	return []models.Post{post}, media, nil
}

// CreateAlbum creates an album together with its first post
func (h *AlbumHandler) CreateAlbum(c echo.Context) error {
	claims := currentUser(c)

	title := c.FormValue("albumTitle")
	if title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Album title is required")
	}

	album := &models.Album{
		AlbumID:    uuid.NewString(),
		AlbumTitle: title,
		AlbumOwner: claims.UserID,
		CreatedAt:  time.Now(),
	}

	posts, media, err := h.albumPostsFromForm(c, album.AlbumID, claims.UserID)
	if err != nil {
		return err
	}

	if err := h.albumRepository.CreateAlbumWithPosts(album, posts); err != nil {
		rollbackUploads(c.Request().Context(), h.uploader, media)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create album")
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Album created successfully", "albumId": album.AlbumID})
}

// AddToAlbum appends a new post to an existing album the caller owns. The
// target album is named by the albumId form field alongside the images.
func (h *AlbumHandler) AddToAlbum(c echo.Context) error {
	claims := currentUser(c)

	albumID := c.FormValue("albumId")
	if albumID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Album ID is required")
	}

	album, err := h.albumRepository.GetAlbumByID(albumID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Album not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch album")
	}
	if album.AlbumOwner != claims.UserID {
		return echo.NewHTTPError(http.StatusForbidden, "You are not the owner of this album")
	}

	posts, media, err := h.albumPostsFromForm(c, albumID, claims.UserID)
	if err != nil {
		return err
	}

	if err := h.albumRepository.AddPostsToAlbum(albumID, posts); err != nil {
		rollbackUploads(c.Request().Context(), h.uploader, media)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to add to album")
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Added to album successfully"})
}

// ListAlbums returns the paginated album listing with each album's latest post
func (h *AlbumHandler) ListAlbums(c echo.Context) error {
	page, length, err := pageParams(c)
	if err != nil {
		return err
	}

	albums, total, err := h.albumRepository.ListAlbums(page, length)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Error fetching paginated albums")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"albums":      albums,
		"totalAlbums": total,
		"totalPage":   totalPages(total, length),
	})
}

// GetAlbumPosts returns every post inside an album
func (h *AlbumHandler) GetAlbumPosts(c echo.Context) error {
	posts, err := h.albumRepository.ListAlbumPosts(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch album posts")
	}
	return c.JSON(http.StatusOK, echo.Map{"posts": posts})
}

// GetAlbumInfo returns an album together with its owner's public fields
func (h *AlbumHandler) GetAlbumInfo(c echo.Context) error {
	info, err := h.albumRepository.GetAlbumInfo(c.Param("id"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Album not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch album information")
	}
	return c.JSON(http.StatusOK, info)
}
