package repositories

import (
	"github.com/aeiluminate/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PasswordResetRepository defines the interface for recovery-code storage
type PasswordResetRepository interface {
	SaveCode(reset *models.PasswordReset) error
	GetByEmail(email string) (*models.PasswordReset, error)
	DeleteByEmail(email string) error
}

// PostgresPasswordResetRepository implements PasswordResetRepository for
// PostgreSQL
type PostgresPasswordResetRepository struct {
	db *gorm.DB
}

// NewPostgresPasswordResetRepository creates a new PostgresPasswordResetRepository
func NewPostgresPasswordResetRepository(db *gorm.DB) *PostgresPasswordResetRepository {
	return &PostgresPasswordResetRepository{db: db}
}

// SaveCode upserts the recovery code for an email; a re-send replaces the
// previous code and its expiry
func (r *PostgresPasswordResetRepository) SaveCode(reset *models.PasswordReset) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"code", "expires_at", "created_at"}),
	}).Create(reset).Error
}

// GetByEmail retrieves the pending recovery code for an email
func (r *PostgresPasswordResetRepository) GetByEmail(email string) (*models.PasswordReset, error) {
	var reset models.PasswordReset
	if err := r.db.First(&reset, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &reset, nil
}

// DeleteByEmail removes the recovery code for an email
func (r *PostgresPasswordResetRepository) DeleteByEmail(email string) error {
	return r.db.Delete(&models.PasswordReset{}, "email = ?", email).Error
}
