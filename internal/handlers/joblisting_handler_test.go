package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/aeiluminate/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createJob(t *testing.T, env *testEnv, title string) string {
	t.Helper()
	rec := env.doJSON(t, http.MethodPost, "/api/joblisting", map[string]string{
		"jobTitle":    title,
		"company":     "Acme Corp",
		"description": "Build things",
		"url":         "https://careers.example.com/1",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeJSON(t, rec)["jobID"].(string)
}

func TestJobListingPagination(t *testing.T) {
	env := newTestEnv(t)
	env.loginAs(t, "recruiter")

	for i := 0; i < 4; i++ {
		createJob(t, env, fmt.Sprintf("Role %d", i))
	}

	rec := env.doJSON(t, http.MethodGet, "/api/joblisting?page=2&length=3", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeJSON(t, rec)
	assert.EqualValues(t, 4, body["totalJobs"])
	assert.EqualValues(t, 2, body["totalPage"])
	jobs, ok := body["jobs"].([]interface{})
	require.True(t, ok)
	assert.Len(t, jobs, 1)
}

func TestCreateJobListingValidation(t *testing.T) {
	env := newTestEnv(t)
	env.loginAs(t, "recruiter")

	rec := env.doJSON(t, http.MethodPost, "/api/joblisting", map[string]string{
		"jobTitle": "Missing fields",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.doJSON(t, http.MethodPost, "/api/joblisting", map[string]string{
		"jobTitle":    "Bad URL",
		"company":     "Acme Corp",
		"description": "Build things",
		"url":         "not a url",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteJobListingOwnerOnly(t *testing.T) {
	env := newTestEnv(t)
	recruiter := env.loginAs(t, "recruiter")
	jobID := createJob(t, env, "Staff Engineer")

	env.loginAs(t, "bystander")
	rec := env.doJSON(t, http.MethodDelete, "/api/joblisting/"+jobID, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	env.claims = &models.JwtCustomClaims{UserID: recruiter.UserID, Role: recruiter.Role}
	rec = env.doJSON(t, http.MethodDelete, "/api/joblisting/"+jobID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.doJSON(t, http.MethodDelete, "/api/joblisting/"+jobID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
