package models

import "time"

// Application is a pending account request. While a user has an application
// row they are excluded from user listings; an administrator accepting the
// application deletes the row.
type Application struct {
	AppID       string    `json:"appID" gorm:"primaryKey;size:36"`
	DiplomaURL  string    `json:"diplomaURL"`
	SchoolIDURL string    `json:"schoolIdURL"`
	UserID      string    `json:"userID" gorm:"size:36;uniqueIndex"`
	CreatedAt   time.Time `json:"createdAt"`
}
