package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/aeiluminate/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createEvent(t *testing.T, env *testEnv, title string) string {
	t.Helper()
	rec := env.doJSON(t, http.MethodPost, "/api/event", map[string]interface{}{
		"title":         title,
		"description":   "an alumni gathering",
		"eventDateTime": time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		"location":      "Main Hall",
		"eventType":     "Reunion",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeJSON(t, rec)["eventID"].(string)
}

func TestCreateAndListEvents(t *testing.T) {
	env := newTestEnv(t)
	env.loginAs(t, "organizer")

	for i := 0; i < 3; i++ {
		createEvent(t, env, "Event "+string(rune('A'+i)))
	}

	rec := env.doJSON(t, http.MethodGet, "/api/events?page=1&length=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeJSON(t, rec)
	assert.EqualValues(t, 3, body["totalEvents"])
	assert.EqualValues(t, 2, body["totalPage"])
	events, ok := body["events"].([]interface{})
	require.True(t, ok)
	assert.Len(t, events, 2)
}

func TestCreateEventRejectsBadDate(t *testing.T) {
	env := newTestEnv(t)
	env.loginAs(t, "organizer")

	rec := env.doJSON(t, http.MethodPost, "/api/event", map[string]interface{}{
		"title":         "Bad Date",
		"description":   "oops",
		"eventDateTime": "next tuesday",
		"location":      "Main Hall",
		"eventType":     "Reunion",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInterestLifecycle(t *testing.T) {
	env := newTestEnv(t)
	env.loginAs(t, "organizer")
	eventID := createEvent(t, env, "Homecoming")

	env.loginAs(t, "attendee")

	rec := env.doJSON(t, http.MethodGet, "/api/event/interested_status/"+eventID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, decodeJSON(t, rec)["isInterested"])

	rec = env.doJSON(t, http.MethodPost, "/api/event/interested/"+eventID, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, true, decodeJSON(t, rec)["isInterested"])

	// Marking again is a conflict, not a toggle-off
	rec = env.doJSON(t, http.MethodPost, "/api/event/interested/"+eventID, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = env.doJSON(t, http.MethodGet, "/api/event/interested_status/"+eventID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeJSON(t, rec)["isInterested"])

	rec = env.doJSON(t, http.MethodGet, "/api/event/stats/"+eventID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decodeJSON(t, rec)
	assert.EqualValues(t, 1, stats["totalInterested"])
	assert.Equal(t, true, stats["isInterested"])

	// Marked events show up in the caller's interested listing
	rec = env.doJSON(t, http.MethodGet, "/api/events/interested", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	events, ok := decodeJSON(t, rec)["events"].([]interface{})
	require.True(t, ok)
	require.Len(t, events, 1)

	rec = env.doJSON(t, http.MethodPost, "/api/event/uninterested/"+eventID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, decodeJSON(t, rec)["isInterested"])

	rec = env.doJSON(t, http.MethodGet, "/api/event/stats/"+eventID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 0, decodeJSON(t, rec)["totalInterested"])

	// Unmarking without a mark is not found
	rec = env.doJSON(t, http.MethodPost, "/api/event/uninterested/"+eventID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteEventOwnerOnly(t *testing.T) {
	env := newTestEnv(t)
	organizer := env.loginAs(t, "organizer")
	eventID := createEvent(t, env, "Short Lived")

	env.loginAs(t, "attendee")
	rec := env.doJSON(t, http.MethodPost, "/api/event/interested/"+eventID, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.doJSON(t, http.MethodDelete, "/api/event/"+eventID, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	env.claims = &models.JwtCustomClaims{UserID: organizer.UserID, Role: organizer.Role}
	rec = env.doJSON(t, http.MethodDelete, "/api/event/"+eventID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Interest marks go with the event
	var marks int64
	require.NoError(t, env.db.Model(&models.InterestedUser{}).Where("event_id = ?", eventID).Count(&marks).Error)
	assert.Zero(t, marks)
}
