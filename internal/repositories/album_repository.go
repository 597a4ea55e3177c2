package repositories

import (
	"github.com/aeiluminate/backend/internal/models"
	"gorm.io/gorm"
)

// AlbumRepository defines the interface for album data operations
type AlbumRepository interface {
	CreateAlbumWithPosts(album *models.Album, posts []models.Post) error
	AddPostsToAlbum(albumID string, posts []models.Post) error
	GetAlbumByID(id string) (*models.Album, error)
	GetAlbumInfo(id string) (*models.AlbumInfo, error)
	ListAlbums(page, length int) ([]models.AlbumSummary, int64, error)
	ListAlbumPosts(albumID string) ([]models.Post, error)
}

// PostgresAlbumRepository implements AlbumRepository for PostgreSQL
type PostgresAlbumRepository struct {
	db *gorm.DB
}

// NewPostgresAlbumRepository creates a new PostgresAlbumRepository
func NewPostgresAlbumRepository(db *gorm.DB) *PostgresAlbumRepository {
	return &PostgresAlbumRepository{db: db}
}

func createAlbumPosts(tx *gorm.DB, albumID string, posts []models.Post) error {
	for i := range posts {
		posts[i].AlbumID = &albumID
		media := posts[i].Media
		posts[i].Media = nil
		if err := tx.Create(&posts[i]).Error; err != nil {
			return err
		}
		for j := range media {
			media[j].PostID = posts[i].PostID
			if err := tx.Create(&media[j]).Error; err != nil {
				return err
			}
		}
		posts[i].Media = media
	}
	return nil
}

// CreateAlbumWithPosts creates the album and its initial posts atomically
func (r *PostgresAlbumRepository) CreateAlbumWithPosts(album *models.Album, posts []models.Post) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(album).Error; err != nil {
			return err
		}
		return createAlbumPosts(tx, album.AlbumID, posts)
	})
}

// AddPostsToAlbum appends posts to an existing album atomically
func (r *PostgresAlbumRepository) AddPostsToAlbum(albumID string, posts []models.Post) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return createAlbumPosts(tx, albumID, posts)
	})
}

// GetAlbumByID retrieves an album by ID
func (r *PostgresAlbumRepository) GetAlbumByID(id string) (*models.Album, error) {
	var album models.Album
	if err := r.db.First(&album, "album_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &album, nil
}

// GetAlbumInfo retrieves an album joined with its owner's public fields
func (r *PostgresAlbumRepository) GetAlbumInfo(id string) (*models.AlbumInfo, error) {
	var info models.AlbumInfo
	err := r.db.Table("albums").
		Select(`albums.album_id AS album_id,
			albums.album_title AS album_title,
			users.user_id AS user_id,
			users.username AS username,
			users.first_name AS first_name,
			users.last_name AS last_name,
			users.profile_picture AS profile_pic`).
		Joins("LEFT JOIN users ON albums.album_owner = users.user_id").
		Where("albums.album_id = ?", id).
		Scan(&info).Error
	if err != nil {
		return nil, err
	}
	if info.AlbumID == "" {
		return nil, gorm.ErrRecordNotFound
	}
	return &info, nil
}

// ListAlbums returns a page of albums, each with its most recent post, plus
// the total album count
func (r *PostgresAlbumRepository) ListAlbums(page, length int) ([]models.AlbumSummary, int64, error) {
	var total int64
	if err := r.db.Model(&models.Album{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var albums []models.AlbumSummary
	err := r.db.Table("albums").
		Select(`albums.album_id AS album_id,
			albums.album_title AS album_title,
			albums.album_owner AS album_owner,
			latest.post_id AS latest_post_id,
			latest.caption AS latest_post_caption,
			latest.created_at AS latest_post_created_at`).
		Joins(`LEFT JOIN posts latest ON latest.album_id = albums.album_id
			AND latest.created_at = (SELECT MAX(p2.created_at) FROM posts p2 WHERE p2.album_id = albums.album_id)`).
		Order("albums.album_title").
		Scopes(Paginate(page, length)).
		Scan(&albums).Error
	if err != nil {
		return nil, 0, err
	}
	return albums, total, nil
}

// ListAlbumPosts returns every post in an album, newest first, with media
func (r *PostgresAlbumRepository) ListAlbumPosts(albumID string) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Preload("Media").
		Where("album_id = ?", albumID).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}
