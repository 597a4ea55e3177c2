package repositories

import (
	"fmt"

	"github.com/aeiluminate/backend/internal/models"
	"gorm.io/gorm"
)

// FollowRepository defines the interface for follow data operations
type FollowRepository interface {
	CreateFollow(follow *models.Follow) error
	DeleteFollow(followerID, followedID string) error
	IsFollowing(followerID, followedID string) (bool, error)
	GetFollowers(userID string) ([]models.FollowInfo, error)
	GetFollowing(userID string) ([]models.FollowInfo, error)
	GetFollowersCount(userID string) (int64, error)
	GetFollowingCount(userID string) (int64, error)
}

// PostgresFollowRepository implements FollowRepository for PostgreSQL
type PostgresFollowRepository struct {
	db *gorm.DB
}

// NewPostgresFollowRepository creates a new PostgresFollowRepository
func NewPostgresFollowRepository(db *gorm.DB) *PostgresFollowRepository {
	return &PostgresFollowRepository{db: db}
}

func (r *PostgresFollowRepository) CreateFollow(follow *models.Follow) error {
	return r.db.Create(follow).Error
}

func (r *PostgresFollowRepository) DeleteFollow(followerID, followedID string) error {
	res := r.db.Where("follower_id = ? AND followed_id = ?", followerID, followedID).Delete(&models.Follow{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("follow relationship not found")
	}
	return nil
}

func (r *PostgresFollowRepository) IsFollowing(followerID, followedID string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Follow{}).Where("follower_id = ? AND followed_id = ?", followerID, followedID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// followInfoSelect joins follow edges to user rows and attaches each user's
// own follower count
const followInfoSelect = `users.user_id AS user_id,
	users.username AS username,
	users.profile_picture AS profile_picture,
	users.role AS role,
	(SELECT COUNT(*) FROM follows f2 WHERE f2.followed_id = users.user_id) AS total_followers`

func (r *PostgresFollowRepository) GetFollowers(userID string) ([]models.FollowInfo, error) {
	var users []models.FollowInfo
	err := r.db.Table("follows").
		Select(followInfoSelect).
		Joins("JOIN users ON follows.follower_id = users.user_id").
		Where("follows.followed_id = ?", userID).
		Scan(&users).Error
	return users, err
}

func (r *PostgresFollowRepository) GetFollowing(userID string) ([]models.FollowInfo, error) {
	var users []models.FollowInfo
	err := r.db.Table("follows").
		Select(followInfoSelect).
		Joins("JOIN users ON follows.followed_id = users.user_id").
		Where("follows.follower_id = ?", userID).
		Scan(&users).Error
	return users, err
}

func (r *PostgresFollowRepository) GetFollowersCount(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("followed_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *PostgresFollowRepository) GetFollowingCount(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("follower_id = ?", userID).Count(&count).Error
	return count, err
}
