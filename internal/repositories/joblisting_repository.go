package repositories

import (
	"github.com/aeiluminate/backend/internal/models"
	"gorm.io/gorm"
)

// JobListingRepository defines the interface for job-listing data operations
type JobListingRepository interface {
	CreateJobListing(listing *models.JobListing) error
	GetJobListingByID(id string) (*models.JobListing, error)
	DeleteJobListing(id string) error
	ListJobListings(page, length int) ([]models.JobListing, int64, error)
}

// PostgresJobListingRepository implements JobListingRepository for PostgreSQL
type PostgresJobListingRepository struct {
	db *gorm.DB
}

// NewPostgresJobListingRepository creates a new PostgresJobListingRepository
func NewPostgresJobListingRepository(db *gorm.DB) *PostgresJobListingRepository {
	return &PostgresJobListingRepository{db: db}
}

// CreateJobListing creates a new job listing
func (r *PostgresJobListingRepository) CreateJobListing(listing *models.JobListing) error {
	return r.db.Create(listing).Error
}

// GetJobListingByID retrieves a job listing by ID
func (r *PostgresJobListingRepository) GetJobListingByID(id string) (*models.JobListing, error) {
	var listing models.JobListing
	if err := r.db.First(&listing, "job_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &listing, nil
}

// DeleteJobListing deletes a job listing by ID
func (r *PostgresJobListingRepository) DeleteJobListing(id string) error {
	res := r.db.Delete(&models.JobListing{}, "job_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListJobListings returns a page of job listings plus the total count
func (r *PostgresJobListingRepository) ListJobListings(page, length int) ([]models.JobListing, int64, error) {
	base := r.db.Model(&models.JobListing{}).Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var listings []models.JobListing
	err := base.Order("created_on DESC").
		Scopes(Paginate(page, length)).
		Find(&listings).Error
	if err != nil {
		return nil, 0, err
	}
	return listings, total, nil
}
