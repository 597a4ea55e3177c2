package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/aeiluminate/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowFlow(t *testing.T) {
	env := newTestEnv(t)
	follower := env.loginAs(t, "follower")
	target := env.seedUser(t, "target")

	rec := env.doJSON(t, http.MethodPost, "/api/user/follow/"+target.UserID, nil)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = env.doJSON(t, http.MethodPost, "/api/user/follow/"+target.UserID, nil)
	assert.Equal(t, http.StatusConflict, rec.Code, "following twice is rejected")

	rec = env.doJSON(t, http.MethodPost, "/api/user/follow/"+follower.UserID, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "users cannot follow themselves")

	rec = env.doJSON(t, http.MethodPost, "/api/user/follow/no-such-user", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.doJSON(t, http.MethodGet, "/api/user/follow_status/"+target.UserID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeJSON(t, rec)["isFollowing"])

	rec = env.doJSON(t, http.MethodGet, "/api/user/follower/"+target.UserID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var followers []models.FollowInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &followers))
	require.Len(t, followers, 1)
	assert.Equal(t, "follower", followers[0].Username)

	rec = env.doJSON(t, http.MethodPost, "/api/user/unfollow/"+target.UserID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.doJSON(t, http.MethodGet, "/api/user/follow_status/"+target.UserID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, decodeJSON(t, rec)["isFollowing"])
}

func TestGetUserHidesPassword(t *testing.T) {
	env := newTestEnv(t)
	env.loginAs(t, "viewer")
	target := env.seedUser(t, "subject")

	rec := env.doJSON(t, http.MethodGet, "/api/user/"+target.UserID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), target.Password)

	rec = env.doJSON(t, http.MethodGet, "/api/user/no-such-user", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateDetails(t *testing.T) {
	env := newTestEnv(t)
	user := env.loginAs(t, "editable")
	env.seedUser(t, "taken")

	rec := env.doJSON(t, http.MethodPatch, "/api/user/update/details", map[string]interface{}{
		"bio":       "hello there",
		"job_role":  "Engineer",
		"isPrivate": true,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated models.User
	require.NoError(t, env.db.First(&updated, "user_id = ?", user.UserID).Error)
	assert.Equal(t, "hello there", updated.Bio)
	assert.Equal(t, "Engineer", updated.JobRole)
	assert.True(t, updated.IsPrivate)

	rec = env.doJSON(t, http.MethodPatch, "/api/user/update/details", map[string]interface{}{
		"username": "taken",
	})
	assert.Equal(t, http.StatusConflict, rec.Code, "renaming onto an existing username is rejected")
}

func TestDeleteUserSelfOnly(t *testing.T) {
	env := newTestEnv(t)
	env.loginAs(t, "self")
	other := env.seedUser(t, "other")

	rec := env.doJSON(t, http.MethodDelete, "/api/users/delete/"+other.UserID, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.doJSON(t, http.MethodDelete, "/api/users/delete/"+env.claims.UserID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var count int64
	require.NoError(t, env.db.Model(&models.User{}).Where("user_id = ?", env.claims.UserID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestListUsersSearch(t *testing.T) {
	env := newTestEnv(t)
	env.loginAs(t, "searcher")
	env.seedUser(t, "amelia")
	env.seedUser(t, "amelie")
	env.seedUser(t, "bruno")

	rec := env.doJSON(t, http.MethodGet, "/api/users?page=1&length=10&key=amel", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeJSON(t, rec)
	assert.EqualValues(t, 2, body["totalUsers"])
	users, ok := body["users"].([]interface{})
	require.True(t, ok)
	assert.Len(t, users, 2)
}
