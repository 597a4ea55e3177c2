package repositories

import (
	"github.com/aeiluminate/backend/internal/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	CreateUser(user *models.User, alumni *models.Alumni) error
	RegisterApplicant(user *models.User, alumni *models.Alumni, app *models.Application) error
	GetApplicationByID(id string) (*models.Application, error)
	AcceptApplication(appID string) error
	GetUserByID(id string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UsernameExists(username string) (bool, error)
	EmailExists(email string) (bool, error)
	UpdateUser(user *models.User) error
	UpdatePassword(email, passwordHash string) error
	DeleteUser(id string) error
	ListUsers(page, length int, key string) ([]models.User, int64, error)
	GetAlumniDetails(userID string) (*models.Alumni, error)
}

// PostgresUserRepository implements UserRepository for PostgreSQL
type PostgresUserRepository struct {
	db *gorm.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository
func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// CreateUser creates a new user and, for alumni accounts, the alumni profile
// row in a single transaction
func (r *PostgresUserRepository) CreateUser(user *models.User, alumni *models.Alumni) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		if alumni != nil {
			if err := tx.Create(alumni).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// RegisterApplicant creates the user, alumni profile and pending application
// atomically so a failed step never leaves a half-registered account
func (r *PostgresUserRepository) RegisterApplicant(user *models.User, alumni *models.Alumni, app *models.Application) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		if alumni != nil {
			if err := tx.Create(alumni).Error; err != nil {
				return err
			}
		}
		return tx.Create(app).Error
	})
}

// GetApplicationByID retrieves a pending application by ID
func (r *PostgresUserRepository) GetApplicationByID(id string) (*models.Application, error) {
	var app models.Application
	if err := r.db.First(&app, "app_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

// AcceptApplication removes the pending application row, which lets the
// account appear in user listings
func (r *PostgresUserRepository) AcceptApplication(appID string) error {
	res := r.db.Delete(&models.Application{}, "app_id = ?", appID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetUserByID retrieves a user by ID
func (r *PostgresUserRepository) GetUserByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "user_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by email
func (r *PostgresUserRepository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UsernameExists checks whether a username is already taken
func (r *PostgresUserRepository) UsernameExists(username string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// EmailExists checks whether an email is already registered
func (r *PostgresUserRepository) EmailExists(email string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateUser updates an existing user
func (r *PostgresUserRepository) UpdateUser(user *models.User) error {
	return r.db.Save(user).Error
}

// UpdatePassword replaces the stored password hash for an account
func (r *PostgresUserRepository) UpdatePassword(email, passwordHash string) error {
	res := r.db.Model(&models.User{}).Where("email = ?", email).Update("password", passwordHash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteUser removes a user together with everything the account owns:
// posts with their media, likes and comments, follow edges in both
// directions, interest marks, owned albums and events, job listings, and
// the alumni, application and password-reset rows
func (r *PostgresUserRepository) DeleteUser(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "user_id = ?", id).Error; err != nil {
			return err
		}

		ownPosts := tx.Model(&models.Post{}).Select("post_id").Where("user_id = ?", id)
		if err := tx.Delete(&models.Media{}, "post_id IN (?)", ownPosts).Error; err != nil {
			return err
		}
		ownPosts = tx.Model(&models.Post{}).Select("post_id").Where("user_id = ?", id)
		if err := tx.Delete(&models.Like{}, "user_id = ? OR post_id IN (?)", id, ownPosts).Error; err != nil {
			return err
		}
		ownPosts = tx.Model(&models.Post{}).Select("post_id").Where("user_id = ?", id)
		if err := tx.Delete(&models.Comment{}, "user_id = ? OR post_id IN (?)", id, ownPosts).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Post{}, "user_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Album{}, "album_owner = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Follow{}, "follower_id = ? OR followed_id = ?", id, id).Error; err != nil {
			return err
		}
		ownEvents := tx.Model(&models.Event{}).Select("event_id").Where("created_by = ?", id)
		if err := tx.Delete(&models.InterestedUser{}, "user_id = ? OR event_id IN (?)", id, ownEvents).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Event{}, "created_by = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.JobListing{}, "created_by = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Alumni{}, "user_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Application{}, "user_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.PasswordReset{}, "email = ?", user.Email).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, "user_id = ?", id).Error
	})
}

// searchUsers composes the optional search-key predicate onto a user query
func searchUsers(key string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if key == "" {
			return db
		}
		like := "%" + key + "%"
		return db.Where(
			"users.username LIKE ? OR users.first_name LIKE ? OR users.middle_name LIKE ? OR users.last_name LIKE ? OR users.email LIKE ?",
			like, like, like, like, like,
		)
	}
}

// ListUsers returns a page of users excluding accounts with a pending
// application, optionally filtered by a search key, plus the total matching
// row count
func (r *PostgresUserRepository) ListUsers(page, length int, key string) ([]models.User, int64, error) {
	base := r.db.Model(&models.User{}).
		Joins("LEFT JOIN applications ON applications.user_id = users.user_id").
		Where("applications.user_id IS NULL").
		Scopes(searchUsers(key)).
		Session(&gorm.Session{}) // reusable for both the count and the page query

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	if err := base.Scopes(Paginate(page, length)).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// GetAlumniDetails retrieves the alumni profile row of a user
func (r *PostgresUserRepository) GetAlumniDetails(userID string) (*models.Alumni, error) {
	var alumni models.Alumni
	if err := r.db.First(&alumni, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &alumni, nil
}
