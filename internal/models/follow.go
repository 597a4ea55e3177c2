package models

import "time"

// Follow represents a directed follower edge between two users
type Follow struct {
	ID         uint      `json:"-" gorm:"primaryKey"`
	FollowerID string    `json:"followerID" gorm:"size:36;index;uniqueIndex:idx_follower_followed"`
	FollowedID string    `json:"followedID" gorm:"size:36;index;uniqueIndex:idx_follower_followed"`
	FollowedAt time.Time `json:"followedAt"`
}
