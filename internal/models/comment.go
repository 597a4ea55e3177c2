package models

import "time"

// Comment represents a reply to a post
type Comment struct {
	CommentID string    `json:"commentID" gorm:"primaryKey;size:36"`
	Content   string    `json:"content"`
	PostID    string    `json:"postID" gorm:"size:36;index"`
	UserID    string    `json:"userID" gorm:"size:36;index"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateCommentRequest defines the request body for commenting on a post
type CreateCommentRequest struct {
	Comment string `json:"comment" validate:"required,min=1,max=500"`
}

// CommentDetail is a comment joined with its author's public fields
type CommentDetail struct {
	CommentID        string    `json:"commentID"`
	CommentContent   string    `json:"commentContent"`
	CommentCreatedAt time.Time `json:"commentCreatedAt"`
	UserID           string    `json:"userID"`
	UserName         string    `json:"userName"`
	UserProfilePic   string    `json:"userProfilePic"`
}
