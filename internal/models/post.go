package models

import "time"

// Post represents a feed post. A post with no media is a "line"; a post with
// a non-nil AlbumID belongs to an album and is excluded from the public feed.
type Post struct {
	PostID    string    `json:"postID" gorm:"primaryKey;size:36"`
	UserID    string    `json:"userID" gorm:"size:36;index"`
	Caption   string    `json:"caption"`
	AlbumID   *string   `json:"albumId,omitempty" gorm:"size:36;index"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
	Media     []Media   `json:"postMedia" gorm:"foreignKey:PostID;references:PostID"`
}

// Media is a stored file attached to a post
type Media struct {
	MediaID    string    `json:"mediaID" gorm:"primaryKey;size:64"`
	MediaType  string    `json:"mediaType" gorm:"size:100"`
	MediaURL   string    `json:"mediaURL"`
	UploadedAt time.Time `json:"uploadedAt"`
	PostID     string    `json:"postID" gorm:"size:36;index"`
}

// TableName keeps the irregular plural out of gorm's pluralizer
func (Media) TableName() string { return "media" }

// CreateLineRequest defines the request body for a caption-only post
type CreateLineRequest struct {
	Caption string `json:"caption" form:"caption" validate:"required,min=1,max=500"`
}

// PostStats carries the like/reply counts shown under a post
type PostStats struct {
	PostID       string `json:"postID"`
	PostedBy     string `json:"posted_by"`
	ProfileLink  string `json:"profile_link"`
	TotalLikes   int64  `json:"total_likes"`
	TotalReplies int64  `json:"total_replies"`
	IsLiked      int    `json:"is_liked"`
}
