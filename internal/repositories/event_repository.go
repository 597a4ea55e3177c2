package repositories

import (
	"fmt"

	"github.com/aeiluminate/backend/internal/models"
	"gorm.io/gorm"
)

// EventRepository defines the interface for event data operations
type EventRepository interface {
	CreateEvent(event *models.Event) error
	GetEventByID(id string) (*models.Event, error)
	DeleteEvent(id string) error
	ListEvents(page, length int) ([]models.Event, int64, error)
	ListUserEvents(userID string) ([]models.Event, error)
	ListInterestedEvents(userID string) ([]models.Event, error)
	AddInterest(mark *models.InterestedUser) error
	RemoveInterest(eventID, userID string) error
	IsInterested(eventID, userID string) (bool, error)
	GetInterestedUsers(eventID string) ([]models.User, error)
}

// PostgresEventRepository implements EventRepository for PostgreSQL
type PostgresEventRepository struct {
	db *gorm.DB
}

// NewPostgresEventRepository creates a new PostgresEventRepository
func NewPostgresEventRepository(db *gorm.DB) *PostgresEventRepository {
	return &PostgresEventRepository{db: db}
}

// CreateEvent creates a new event
func (r *PostgresEventRepository) CreateEvent(event *models.Event) error {
	return r.db.Create(event).Error
}

// GetEventByID retrieves an event by ID
func (r *PostgresEventRepository) GetEventByID(id string) (*models.Event, error) {
	var event models.Event
	if err := r.db.First(&event, "event_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// DeleteEvent removes an event and its interest marks
func (r *PostgresEventRepository) DeleteEvent(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.InterestedUser{}, "event_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Event{}, "event_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// ListEvents returns a page of events, newest first, plus the total count
func (r *PostgresEventRepository) ListEvents(page, length int) ([]models.Event, int64, error) {
	base := r.db.Model(&models.Event{}).Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var events []models.Event
	err := base.Order("created_on DESC").
		Scopes(Paginate(page, length)).
		Find(&events).Error
	if err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

// ListUserEvents returns events created by a user
func (r *PostgresEventRepository) ListUserEvents(userID string) ([]models.Event, error) {
	var events []models.Event
	err := r.db.Where("created_by = ?", userID).Order("created_on DESC").Find(&events).Error
	return events, err
}

// ListInterestedEvents returns events a user has marked as interesting
func (r *PostgresEventRepository) ListInterestedEvents(userID string) ([]models.Event, error) {
	var events []models.Event
	err := r.db.Model(&models.Event{}).
		Joins("JOIN interested_users ON interested_users.event_id = events.event_id").
		Where("interested_users.user_id = ?", userID).
		Order("events.created_on DESC").
		Find(&events).Error
	return events, err
}

// AddInterest marks a user as interested in an event
func (r *PostgresEventRepository) AddInterest(mark *models.InterestedUser) error {
	return r.db.Create(mark).Error
}

// RemoveInterest removes an interest mark
func (r *PostgresEventRepository) RemoveInterest(eventID, userID string) error {
	res := r.db.Where("event_id = ? AND user_id = ?", eventID, userID).Delete(&models.InterestedUser{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("interest mark not found")
	}
	return nil
}

// IsInterested checks whether a user has marked an event as interesting
func (r *PostgresEventRepository) IsInterested(eventID, userID string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.InterestedUser{}).Where("event_id = ? AND user_id = ?", eventID, userID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetInterestedUsers returns the users interested in an event
func (r *PostgresEventRepository) GetInterestedUsers(eventID string) ([]models.User, error) {
	var users []models.User
	err := r.db.Model(&models.User{}).
		Joins("JOIN interested_users ON interested_users.user_id = users.user_id").
		Where("interested_users.event_id = ?", eventID).
		Find(&users).Error
	return users, err
}
