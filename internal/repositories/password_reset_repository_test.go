package repositories_test

import (
	"testing"
	"time"

	"github.com/aeiluminate/backend/internal/models"
	"github.com/aeiluminate/backend/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSaveCodeUpsertsOnResend(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewPostgresPasswordResetRepository(db)

	first := time.Now().Add(10 * time.Minute)
	require.NoError(t, repo.SaveCode(&models.PasswordReset{
		Email: "user@example.com", Code: "11111", ExpiresAt: first, CreatedAt: time.Now(),
	}))

	second := time.Now().Add(20 * time.Minute)
	require.NoError(t, repo.SaveCode(&models.PasswordReset{
		Email: "user@example.com", Code: "22222", ExpiresAt: second, CreatedAt: time.Now(),
	}))

	got, err := repo.GetByEmail("user@example.com")
	require.NoError(t, err)
	assert.Equal(t, "22222", got.Code, "a re-send replaces the previous code")
	assert.WithinDuration(t, second, got.ExpiresAt, time.Second)

	var count int64
	require.NoError(t, db.Model(&models.PasswordReset{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "one reset row per email")
}

func TestDeleteByEmail(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewPostgresPasswordResetRepository(db)

	require.NoError(t, repo.SaveCode(&models.PasswordReset{
		Email: "user@example.com", Code: "12345", ExpiresAt: time.Now().Add(10 * time.Minute), CreatedAt: time.Now(),
	}))
	require.NoError(t, repo.DeleteByEmail("user@example.com"))

	_, err := repo.GetByEmail("user@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
