package models

import "time"

// Album is a named collection of posts owned by a user
type Album struct {
	AlbumID    string    `json:"albumId" gorm:"primaryKey;size:36"`
	AlbumTitle string    `json:"albumTitle" gorm:"size:200"`
	AlbumOwner string    `json:"albumIdOwner" gorm:"size:36;index"`
	CreatedAt  time.Time `json:"createdAt"`
}

// AlbumSummary is an album joined with its most recent post, used by the
// paginated album listing
type AlbumSummary struct {
	AlbumID             string     `json:"albumId"`
	AlbumTitle          string     `json:"albumTitle"`
	AlbumOwner          string     `json:"albumIdOwner"`
	LatestPostID        *string    `json:"latestPostID"`
	LatestPostCaption   *string    `json:"latestPostCaption"`
	LatestPostCreatedAt *time.Time `json:"latestPostCreatedAt"`
}

// AlbumInfo is an album joined with its owner's public fields
type AlbumInfo struct {
	AlbumID    string `json:"albumId"`
	AlbumTitle string `json:"albumTitle"`
	UserID     string `json:"userId"`
	Username   string `json:"username"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	ProfilePic string `json:"profilePic"`
}
