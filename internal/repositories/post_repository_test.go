package repositories_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/aeiluminate/backend/internal/models"
	"github.com/aeiluminate/backend/internal/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedUser(t *testing.T, db *gorm.DB, username string, private bool) *models.User {
	t.Helper()
	user := &models.User{
		UserID:    uuid.NewString(),
		Role:      models.RoleAlumni,
		Email:     username + "@example.com",
		Username:  username,
		Password:  "hash",
		FirstName: "Test",
		LastName:  "User",
		IsPrivate: private,
		CreatedAt: time.Now(),
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedPost(t *testing.T, db *gorm.DB, userID string, albumID *string, createdAt time.Time) *models.Post {
	t.Helper()
	post := &models.Post{
		PostID:    uuid.NewString(),
		UserID:    userID,
		Caption:   "caption",
		AlbumID:   albumID,
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

func TestCreatePostWithMedia(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewPostgresPostRepository(db)
	user := seedUser(t, db, "author", false)

	post := &models.Post{
		PostID:    uuid.NewString(),
		UserID:    user.UserID,
		Caption:   "two pictures",
		CreatedAt: time.Now(),
		Media: []models.Media{
			{MediaID: uuid.NewString(), MediaType: "image/png", MediaURL: "http://files/1", UploadedAt: time.Now()},
			{MediaID: uuid.NewString(), MediaType: "image/png", MediaURL: "http://files/2", UploadedAt: time.Now()},
		},
	}
	require.NoError(t, repo.CreatePost(post))

	got, err := repo.GetPostByID(post.PostID)
	require.NoError(t, err)
	assert.Equal(t, "two pictures", got.Caption)
	assert.Len(t, got.Media, 2)
	for _, m := range got.Media {
		assert.Equal(t, post.PostID, m.PostID)
	}
}

func TestCreatePostRollsBackOnMediaFailure(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewPostgresPostRepository(db)
	user := seedUser(t, db, "author", false)

	dup := uuid.NewString()
	post := &models.Post{
		PostID:    uuid.NewString(),
		UserID:    user.UserID,
		Caption:   "broken",
		CreatedAt: time.Now(),
		Media: []models.Media{
			{MediaID: dup, MediaType: "image/png", MediaURL: "http://files/1", UploadedAt: time.Now()},
			{MediaID: dup, MediaType: "image/png", MediaURL: "http://files/2", UploadedAt: time.Now()},
		},
	}
	require.Error(t, repo.CreatePost(post))

	var count int64
	require.NoError(t, db.Model(&models.Post{}).Count(&count).Error)
	assert.Zero(t, count, "a failed media insert must roll back the post")
}

func TestListFeedExcludesAlbumAndPrivatePosts(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewPostgresPostRepository(db)

	public := seedUser(t, db, "public", false)
	private := seedUser(t, db, "hidden", true)

	albumID := uuid.NewString()
	require.NoError(t, db.Create(&models.Album{
		AlbumID: albumID, AlbumTitle: "trip", AlbumOwner: public.UserID, CreatedAt: time.Now(),
	}).Error)

	visible := seedPost(t, db, public.UserID, nil, time.Now())
	seedPost(t, db, public.UserID, &albumID, time.Now())
	seedPost(t, db, private.UserID, nil, time.Now())

	posts, total, err := repo.ListFeed(1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, posts, 1)
	assert.Equal(t, visible.PostID, posts[0].PostID)
}

func TestListFeedPagination(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewPostgresPostRepository(db)
	user := seedUser(t, db, "prolific", false)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 7; i++ {
		seedPost(t, db, user.UserID, nil, base.Add(time.Duration(i)*time.Minute))
	}

	page1, total, err := repo.ListFeed(1, 3)
	require.NoError(t, err)
	assert.EqualValues(t, 7, total)
	assert.Len(t, page1, 3)

	page3, total, err := repo.ListFeed(3, 3)
	require.NoError(t, err)
	assert.EqualValues(t, 7, total)
	assert.Len(t, page3, 1)

	// Past the last page is empty, not an error
	page4, total, err := repo.ListFeed(4, 3)
	require.NoError(t, err)
	assert.EqualValues(t, 7, total)
	assert.Empty(t, page4)

	// Newest first, no row repeated between pages
	seen := map[string]bool{}
	for p := 1; p <= 3; p++ {
		rows, _, err := repo.ListFeed(p, 3)
		require.NoError(t, err)
		var last time.Time
		for i, row := range rows {
			assert.False(t, seen[row.PostID], "post %s returned twice", row.PostID)
			seen[row.PostID] = true
			if i > 0 {
				assert.False(t, row.CreatedAt.After(last))
			}
			last = row.CreatedAt
		}
	}
	assert.Len(t, seen, 7)
}

func TestGetPostStats(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewPostgresPostRepository(db)

	author := seedUser(t, db, "author", false)
	viewer := seedUser(t, db, "viewer", false)
	other := seedUser(t, db, "other", false)
	post := seedPost(t, db, author.UserID, nil, time.Now())

	require.NoError(t, db.Create(&models.Like{PostID: post.PostID, UserID: viewer.UserID, LikedAt: time.Now()}).Error)
	require.NoError(t, db.Create(&models.Like{PostID: post.PostID, UserID: other.UserID, LikedAt: time.Now()}).Error)
	for i := 0; i < 3; i++ {
		require.NoError(t, db.Create(&models.Comment{
			CommentID: uuid.NewString(),
			Content:   fmt.Sprintf("reply %d", i),
			PostID:    post.PostID,
			UserID:    other.UserID,
			CreatedAt: time.Now(),
		}).Error)
	}

	stats, err := repo.GetPostStats(post.PostID, viewer.UserID)
	require.NoError(t, err)
	assert.Equal(t, "author", stats.PostedBy)
	assert.EqualValues(t, 2, stats.TotalLikes)
	assert.EqualValues(t, 3, stats.TotalReplies)
	assert.Equal(t, 1, stats.IsLiked)

	stats, err = repo.GetPostStats(post.PostID, author.UserID)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.IsLiked)

	_, err = repo.GetPostStats(uuid.NewString(), viewer.UserID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeletePostRemovesMedia(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewPostgresPostRepository(db)
	user := seedUser(t, db, "author", false)

	post := &models.Post{
		PostID:    uuid.NewString(),
		UserID:    user.UserID,
		Caption:   "gone soon",
		CreatedAt: time.Now(),
		Media: []models.Media{
			{MediaID: uuid.NewString(), MediaType: "image/png", MediaURL: "http://files/1", UploadedAt: time.Now()},
		},
	}
	require.NoError(t, repo.CreatePost(post))
	require.NoError(t, repo.DeletePost(post.PostID))

	var mediaCount int64
	require.NoError(t, db.Model(&models.Media{}).Where("post_id = ?", post.PostID).Count(&mediaCount).Error)
	assert.Zero(t, mediaCount)

	err := repo.DeletePost(post.PostID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
