package models

import "time"

// JobListing is a job opening shared by an alumni
type JobListing struct {
	JobID       string    `json:"jobID" gorm:"primaryKey;size:36"`
	JobTitle    string    `json:"jobTitle" gorm:"size:200"`
	Company     string    `json:"company" gorm:"size:150"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	CreatedBy   string    `json:"createdBy" gorm:"size:36;index"`
	CreatedOn   time.Time `json:"createdOn" gorm:"index"`
}

// CreateJobListingRequest defines the request body for posting a job listing
type CreateJobListingRequest struct {
	JobTitle    string `json:"jobTitle" validate:"required,min=1,max=200"`
	Company     string `json:"company" validate:"required,max=150"`
	Description string `json:"description" validate:"required"`
	URL         string `json:"url" validate:"omitempty,url"`
}
