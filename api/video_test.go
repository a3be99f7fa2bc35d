package api

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"adviceglobe/globe-api/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createVideo(t *testing.T, a *API, id, title, platform, location string, tags ...string) model.Video {
	t.Helper()

	video := model.Video{
		ID:          id,
		Title:       title,
		Description: "some advice",
		Platform:    platform,
		URL:         "https://example.com/" + id,
		Tags:        model.StringSlice(tags),
		Location:    location,
		Lat:         1.5,
		Lng:         2.5,
		CreatedAt:   time.Now(),
	}

	require.NoError(t, a.DB.Create(&video).Error)
	return video
}

func videoCount(t *testing.T, a *API) int64 {
	t.Helper()

	var n int64
	require.NoError(t, a.DB.Model(model.Video{}).Count(&n).Error)
	return n
}

func TestVideoListPagination(t *testing.T) {
	a, _ := newTestAPI(t)

	for i := 0; i < 5; i++ {
		video := createVideo(t, a, fmt.Sprintf("v%d", i), fmt.Sprintf("Video %d", i), "youtube", "Tokyo, Japan")
		// Spread creation times so the ordering is deterministic
		require.NoError(t, a.DB.Model(model.Video{}).Where("id = ?", video.ID).
			Update("created_at", time.Now().Add(time.Duration(i)*time.Minute)).Error)
	}

	w := doRequest(a, http.MethodGet, "/videos?page=2&limit=2", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	videos := body["videos"].([]any)
	pagination := body["pagination"].(map[string]any)

	assert.Len(t, videos, 2)
	assert.EqualValues(t, 2, pagination["page"])
	assert.EqualValues(t, 2, pagination["limit"])
	assert.EqualValues(t, 5, pagination["total"])
	assert.EqualValues(t, 3, pagination["pages"])

	// Newest first, page 2 starts at the third newest
	assert.Equal(t, "Video 2", videos[0].(map[string]any)["title"])
}

func TestVideoListFilters(t *testing.T) {
	a, _ := newTestAPI(t)

	createVideo(t, a, "v1", "Tokyo advice", "youtube", "Tokyo, Japan", "life-advice", "japan")
	createVideo(t, a, "v2", "NYC advice", "tiktok", "New York, USA", "motivation")
	createVideo(t, a, "v3", "Bali advice", "instagram", "Bali, Indonesia", "mindfulness", "nature")

	w := doRequest(a, http.MethodGet, "/videos?platform=tiktok", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	require.Len(t, body["videos"].([]any), 1)
	assert.Equal(t, "NYC advice", body["videos"].([]any)[0].(map[string]any)["title"])

	// Substring, case-insensitive
	w = doRequest(a, http.MethodGet, "/videos?location=tokyo", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	require.Len(t, body["videos"].([]any), 1)
	assert.Equal(t, "Tokyo advice", body["videos"].([]any)[0].(map[string]any)["title"])

	// Any requested tag matches
	w = doRequest(a, http.MethodGet, "/videos?tags=nature,motivation", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Len(t, body["videos"].([]any), 2)

	// A tag that is a substring of another must not match
	w = doRequest(a, http.MethodGet, "/videos?tags=advice", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Len(t, body["videos"].([]any), 0)
}

func TestVideoListBadQuery(t *testing.T) {
	a, _ := newTestAPI(t)

	assert.Equal(t, http.StatusBadRequest, doRequest(a, http.MethodGet, "/videos?page=abc", nil, "").Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(a, http.MethodGet, "/videos?page=0", nil, "").Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(a, http.MethodGet, "/videos?limit=0", nil, "").Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(a, http.MethodGet, "/videos?limit=101", nil, "").Code)
}

func TestVideoCreateRequiresAdmin(t *testing.T) {
	a, _ := newTestAPI(t)
	user := createUser(t, a, "user@x.com", "longenough1", model.RoleUser)

	payload := map[string]any{
		"title":       "New video",
		"description": "desc",
		"platform":    "youtube",
		"url":         "https://example.com/v",
		"location":    "Tokyo, Japan",
		"lat":         1.0,
		"lng":         2.0,
	}

	noToken := doRequest(a, http.MethodPost, "/videos", payload, "")
	assert.Equal(t, http.StatusUnauthorized, noToken.Code)

	badToken := doRequest(a, http.MethodPost, "/videos", payload, "garbage")
	assert.Equal(t, http.StatusUnauthorized, badToken.Code)

	userToken := doRequest(a, http.MethodPost, "/videos", payload, issueToken(t, a, user))
	assert.Equal(t, http.StatusForbidden, userToken.Code)

	assert.EqualValues(t, 0, videoCount(t, a))
}

func TestVideoCreate(t *testing.T) {
	a, _ := newTestAPI(t)
	admin := createUser(t, a, "admin@x.com", "longenough1", model.RoleAdmin)
	token := issueToken(t, a, admin)

	w := doRequest(a, http.MethodPost, "/videos", map[string]any{
		"title":       "New video",
		"description": "desc",
		"platform":    "youtube",
		"url":         "https://example.com/v",
		"tags":        []string{"advice", "tokyo"},
		"location":    "Tokyo, Japan",
		"lat":         0.0,
		"lng":         139.65,
	}, token)

	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.NotEmpty(t, body["id"])
	assert.Equal(t, "New video", body["title"])
	assert.EqualValues(t, 0, body["lat"])

	assert.EqualValues(t, 1, videoCount(t, a))
}

func TestVideoCreateMissingFields(t *testing.T) {
	a, _ := newTestAPI(t)
	admin := createUser(t, a, "admin@x.com", "longenough1", model.RoleAdmin)
	token := issueToken(t, a, admin)

	w := doRequest(a, http.MethodPost, "/videos", map[string]any{
		"title":       "New video",
		"description": "desc",
		"platform":    "youtube",
		"url":         "https://example.com/v",
		"location":    "Tokyo, Japan",
		// lat/lng missing
	}, token)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing required fields", decodeBody(t, w)["error"])
	assert.EqualValues(t, 0, videoCount(t, a))
}

func TestVideoUpdatePartial(t *testing.T) {
	a, _ := newTestAPI(t)
	admin := createUser(t, a, "admin@x.com", "longenough1", model.RoleAdmin)
	token := issueToken(t, a, admin)

	createVideo(t, a, "v1", "Old title", "youtube", "Tokyo, Japan", "old-tag")

	w := doRequest(a, http.MethodPut, "/videos/v1", map[string]any{
		"title": "New title",
		"lat":   50.5,
	}, token)

	require.Equal(t, http.StatusOK, w.Code)

	var stored model.Video
	require.NoError(t, a.DB.First(&stored, "id = ?", "v1").Error)
	assert.Equal(t, "New title", stored.Title)
	assert.Equal(t, 50.5, stored.Lat)

	// Unsupplied fields are untouched
	assert.Equal(t, "youtube", stored.Platform)
	assert.Equal(t, "Tokyo, Japan", stored.Location)
	assert.Equal(t, model.StringSlice{"old-tag"}, stored.Tags)
	assert.Equal(t, 2.5, stored.Lng)
}

func TestVideoUpdateNotFound(t *testing.T) {
	a, _ := newTestAPI(t)
	admin := createUser(t, a, "admin@x.com", "longenough1", model.RoleAdmin)

	w := doRequest(a, http.MethodPut, "/videos/missing", map[string]any{
		"title": "New title",
	}, issueToken(t, a, admin))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVideoDelete(t *testing.T) {
	a, _ := newTestAPI(t)
	admin := createUser(t, a, "admin@x.com", "longenough1", model.RoleAdmin)
	token := issueToken(t, a, admin)

	createVideo(t, a, "v1", "Video", "youtube", "Tokyo, Japan")

	w := doRequest(a, http.MethodDelete, "/videos/v1", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Video deleted successfully", decodeBody(t, w)["message"])
	assert.EqualValues(t, 0, videoCount(t, a))

	again := doRequest(a, http.MethodDelete, "/videos/v1", nil, token)
	assert.Equal(t, http.StatusNotFound, again.Code)
}

func TestVideoDeleteRequiresAdmin(t *testing.T) {
	a, _ := newTestAPI(t)
	user := createUser(t, a, "user@x.com", "longenough1", model.RoleUser)

	createVideo(t, a, "v1", "Video", "youtube", "Tokyo, Japan")

	w := doRequest(a, http.MethodDelete, "/videos/v1", nil, issueToken(t, a, user))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.EqualValues(t, 1, videoCount(t, a))
}
