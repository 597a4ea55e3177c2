package models

import "time"

// Event represents an alumni gathering or announcement
type Event struct {
	EventID       string    `json:"eventID" gorm:"primaryKey;size:36"`
	Title         string    `json:"title" gorm:"size:200"`
	Description   string    `json:"description"`
	EventDateTime time.Time `json:"eventDateTime"`
	Location      string    `json:"location" gorm:"size:255"`
	EventType     string    `json:"eventType" gorm:"size:50"`
	ImageURL      string    `json:"imageURL"`
	CreatedBy     string    `json:"createdBy" gorm:"size:36;index"`
	CreatedOn     time.Time `json:"createdOn" gorm:"index"`
}

// InterestedUser marks a user as interested in an event. The pair is unique.
type InterestedUser struct {
	ID      uint      `json:"-" gorm:"primaryKey"`
	EventID string    `json:"eventID" gorm:"size:36;index;uniqueIndex:idx_event_user_interest"`
	UserID  string    `json:"userID" gorm:"size:36;index;uniqueIndex:idx_event_user_interest"`
	AddedAt time.Time `json:"addedAt"`
}

// CreateEventRequest defines the request body for creating an event
type CreateEventRequest struct {
	Title         string `json:"title" form:"title" validate:"required,min=1,max=200"`
	Description   string `json:"description" form:"description" validate:"required"`
	EventDateTime string `json:"eventDateTime" form:"eventDateTime" validate:"required"`
	Location      string `json:"location" form:"location" validate:"required,max=255"`
	EventType     string `json:"eventType" form:"eventType" validate:"required,max=50"`
}
