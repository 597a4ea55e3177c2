package repositories

import (
	"github.com/aeiluminate/backend/internal/models"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	CreateComment(comment *models.Comment) error
	GetCommentsByPostID(postID string) ([]models.CommentDetail, error)
	GetCommentsCountByPostID(postID string) (int64, error)
}

// PostgresCommentRepository implements CommentRepository for PostgreSQL
type PostgresCommentRepository struct {
	db *gorm.DB
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository
func NewPostgresCommentRepository(db *gorm.DB) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db}
}

// CreateComment creates a new comment
func (r *PostgresCommentRepository) CreateComment(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// GetCommentsByPostID retrieves all comments on a post joined with each
// author's public fields
func (r *PostgresCommentRepository) GetCommentsByPostID(postID string) ([]models.CommentDetail, error) {
	var comments []models.CommentDetail
	err := r.db.Table("comments").
		Select(`comments.comment_id AS comment_id,
			comments.content AS comment_content,
			comments.created_at AS comment_created_at,
			users.user_id AS user_id,
			users.username AS user_name,
			users.profile_picture AS user_profile_pic`).
		Joins("JOIN users ON comments.user_id = users.user_id").
		Where("comments.post_id = ?", postID).
		Order("comments.created_at ASC").
		Scan(&comments).Error
	return comments, err
}

// GetCommentsCountByPostID retrieves the count of comments on a post
func (r *PostgresCommentRepository) GetCommentsCountByPostID(postID string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Comment{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
