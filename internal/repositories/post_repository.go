package repositories

import (
	"github.com/aeiluminate/backend/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPostByID(id string) (*models.Post, error)
	ListFeed(page, length int) ([]models.Post, int64, error)
	ListUserPosts(userID string) ([]models.Post, error)
	GetPostStats(postID, viewerID string) (*models.PostStats, error)
	DeletePost(id string) error
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// CreatePost inserts the post and all of its media rows in one transaction,
// so a failed media insert rolls back the post as well
func (r *PostgresPostRepository) CreatePost(post *models.Post) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		media := post.Media
		post.Media = nil
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		for i := range media {
			media[i].PostID = post.PostID
			if err := tx.Create(&media[i]).Error; err != nil {
				return err
			}
		}
		post.Media = media
		return nil
	})
}

// GetPostByID retrieves a post with its media
func (r *PostgresPostRepository) GetPostByID(id string) (*models.Post, error) {
	var post models.Post
	if err := r.db.Preload("Media").First(&post, "post_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// ListFeed returns a page of public feed posts, newest first, plus the total
// count. Posts that belong to an album and posts from private accounts are
// excluded with the same predicate on both queries.
func (r *PostgresPostRepository) ListFeed(page, length int) ([]models.Post, int64, error) {
	base := r.db.Model(&models.Post{}).
		Joins("LEFT JOIN users ON posts.user_id = users.user_id").
		Where("posts.album_id IS NULL AND users.is_private = ?", false).
		Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.Post
	err := base.Preload("Media").
		Order("posts.created_at DESC").
		Scopes(Paginate(page, length)).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// ListUserPosts returns every post authored by a user, with media
func (r *PostgresPostRepository) ListUserPosts(userID string) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Preload("Media").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

// GetPostStats returns the like/reply counts of a post together with the
// author's public fields and the viewer's like status
func (r *PostgresPostRepository) GetPostStats(postID, viewerID string) (*models.PostStats, error) {
	var stats models.PostStats
	err := r.db.Table("posts").
		Select(`posts.post_id AS post_id,
			users.username AS posted_by,
			users.profile_picture AS profile_link,
			COUNT(DISTINCT likes.user_id) AS total_likes,
			COUNT(DISTINCT comments.comment_id) AS total_replies,
			MAX(CASE WHEN likes.user_id = ? THEN 1 ELSE 0 END) AS is_liked`, viewerID).
		Joins("LEFT JOIN likes ON posts.post_id = likes.post_id").
		Joins("LEFT JOIN comments ON posts.post_id = comments.post_id").
		Joins("LEFT JOIN users ON posts.user_id = users.user_id").
		Where("posts.post_id = ?", postID).
		Group("posts.post_id, users.username, users.profile_picture").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	if stats.PostID == "" {
		return nil, gorm.ErrRecordNotFound
	}
	return &stats, nil
}

// DeletePost removes a post and its media
func (r *PostgresPostRepository) DeletePost(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Media{}, "post_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Post{}, "post_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
