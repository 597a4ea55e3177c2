package repositories_test

import (
	"testing"

	"github.com/aeiluminate/backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database with the full schema
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Alumni{},
		&models.AcademicProgram{},
		&models.Application{},
		&models.Post{},
		&models.Media{},
		&models.Like{},
		&models.Comment{},
		&models.Follow{},
		&models.Album{},
		&models.Event{},
		&models.InterestedUser{},
		&models.Conversation{},
		&models.Message{},
		&models.JobListing{},
		&models.PasswordReset{},
	)
	require.NoError(t, err)

	return db
}
