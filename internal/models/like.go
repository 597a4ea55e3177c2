package models

import "time"

// Like marks that a user liked a post. The (post, user) pair is unique.
type Like struct {
	ID      uint      `json:"-" gorm:"primaryKey"`
	PostID  string    `json:"postID" gorm:"size:36;index;uniqueIndex:idx_post_user_like"`
	UserID  string    `json:"userID" gorm:"size:36;index;uniqueIndex:idx_post_user_like"`
	LikedAt time.Time `json:"likedAt"`
}
