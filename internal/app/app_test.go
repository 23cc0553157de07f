package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/Dias221467/waseela/internal/config"
	"github.com/Dias221467/waseela/internal/models"
	"github.com/Dias221467/waseela/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*App, http.Handler) {
	t.Helper()
	a, err := New(&config.Config{
		AllowedOrigins: []string{"*"},
		ActivityLimit:  100,
		DueSoonWindow:  24 * time.Hour,
	})
	require.NoError(t, err)
	return a, a.Router()
}

func do(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func unlockedByTitle(achs []models.Achievement) map[string]bool {
	out := map[string]bool{}
	for _, a := range achs {
		out[a.Title] = a.Unlocked
	}
	return out
}

func TestAPI_GoalLifecycleUnlocksAchievements(t *testing.T) {
	_, h := newTestApp(t)

	rec := do(t, h, http.MethodGet, "/achievements", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	for title, unlocked := range unlockedByTitle(decode[[]models.Achievement](t, rec)) {
		assert.False(t, unlocked, title)
	}

	rec = do(t, h, http.MethodPost, "/goals", map[string]string{"measurement": "no title"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/goals", map[string]string{
		"title":       "Run a half marathon",
		"measurement": "race result",
		"deadline":    "2026-09-01",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	goal := decode[models.Goal](t, rec)
	assert.Equal(t, "2026-09-01", goal.Deadline.String())
	assert.Empty(t, goal.Milestones)

	goalPath := "/goals/" + itoa(goal.ID)

	rec = do(t, h, http.MethodPost, goalPath+"/milestones", map[string]string{"text": "   "})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[models.Goal](t, rec).Milestones)

	rec = do(t, h, http.MethodPost, goalPath+"/milestones", map[string]string{"text": "Run 10k"})
	require.Equal(t, http.StatusOK, rec.Code)
	withMilestone := decode[models.Goal](t, rec)
	require.Len(t, withMilestone.Milestones, 1)

	rec = do(t, h, http.MethodPatch, goalPath+"/milestones/"+itoa(withMilestone.Milestones[0].ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[models.Goal](t, rec).Milestones[0].Completed)

	rec = do(t, h, http.MethodPatch, goalPath+"/milestones/999999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodPost, "/resources/2/bookmark", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decode[map[string]interface{}](t, rec)["bookmarked"])

	rec = do(t, h, http.MethodGet, "/achievements", nil)
	unlocked := unlockedByTitle(decode[[]models.Achievement](t, rec))
	assert.True(t, unlocked["First Step"])
	assert.True(t, unlocked["Goal Getter"])
	assert.True(t, unlocked["Curious Mind"])
	assert.False(t, unlocked["Milestone Master"])

	rec = do(t, h, http.MethodDelete, goalPath, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(t, h, http.MethodGet, goalPath, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodGet, "/achievements", nil)
	assert.True(t, unlockedByTitle(decode[[]models.Achievement](t, rec))["First Step"])

	rec = do(t, h, http.MethodGet, "/notifications", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.Notification](t, rec), 3)

	rec = do(t, h, http.MethodGet, "/activities?limit=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.Activity](t, rec), 2)
}

func TestAPI_UnknownIdentifiers(t *testing.T) {
	_, h := newTestApp(t)

	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodPut, "/goals/77", map[string]string{"title": "x"}).Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodDelete, "/goals/77", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodPost, "/goals/77/milestones", map[string]string{"text": "x"}).Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodPost, "/resources/99/bookmark", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/goals/abc", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodPost, "/notifications/5/read", nil).Code)

	rec := do(t, h, http.MethodGet, "/goals", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]models.Goal](t, rec))
}

func TestAPI_UpdateGoalReplacesRecord(t *testing.T) {
	_, h := newTestApp(t)

	goal := decode[models.Goal](t, do(t, h, http.MethodPost, "/goals", map[string]string{"title": "old"}))

	rec := do(t, h, http.MethodPut, "/goals/"+itoa(goal.ID), map[string]interface{}{
		"title":      "new",
		"relevance":  "career",
		"milestones": []map[string]interface{}{{"text": "a", "completed": true}},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[models.Goal](t, rec)
	assert.Equal(t, goal.ID, updated.ID)
	assert.Equal(t, "new", updated.Title)
	assert.Equal(t, goal.CreatedAt.String(), updated.CreatedAt.String())
	require.Len(t, updated.Milestones, 1)
	assert.NotZero(t, updated.Milestones[0].ID)
}

func TestAPI_ResourcesAndSuggestions(t *testing.T) {
	_, h := newTestApp(t)

	rec := do(t, h, http.MethodGet, "/resources?category=Education", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resources := decode[[]map[string]interface{}](t, rec)
	require.Len(t, resources, 1)
	assert.Equal(t, "Mastering a New Language", resources[0]["title"])
	assert.Equal(t, false, resources[0]["bookmarked"])

	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/resources?category=Finance", nil).Code)

	rec = do(t, h, http.MethodPost, "/suggestions", map[string]string{"prompt": "fitness"})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = do(t, h, http.MethodPost, "/suggestions/accept", models.GoalSuggestion{
		Specific: "Cycle 100km", Measurable: "GPS log", Achievable: "weekly rides", Relevant: "fitness", TimeBoundDays: 60,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	goal := decode[models.Goal](t, rec)
	assert.Equal(t, "Cycle 100km", goal.Title)
	assert.Equal(t, "weekly rides", goal.Achievability)

	y, m, d := time.Now().Date()
	want := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 60).Format("2006-01-02")
	assert.Equal(t, want, goal.Deadline.String())
}

func TestAPI_HealthAndRequestID(t *testing.T) {
	_, h := newTestApp(t)

	rec := do(t, h, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(middleware.RequestIDHeader, "fixed-id")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "fixed-id", rec.Header().Get(middleware.RequestIDHeader))

	rec = do(t, h, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "waseela_http_requests_total")
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func TestAPI_UpdateGoalMilestoneValidation(t *testing.T) {
	_, h := newTestApp(t)

	first := decode[models.Goal](t, do(t, h, http.MethodPost, "/goals", map[string]string{"title": "first"}))
	first = decode[models.Goal](t, do(t, h, http.MethodPost, "/goals/"+itoa(first.ID)+"/milestones", map[string]string{"text": "own"}))
	second := decode[models.Goal](t, do(t, h, http.MethodPost, "/goals", map[string]string{"title": "second"}))
	ownID := first.Milestones[0].ID

	for _, text := range []string{"", "   "} {
		rec := do(t, h, http.MethodPut, "/goals/"+itoa(second.ID), map[string]interface{}{
			"title":      "second",
			"milestones": []map[string]interface{}{{"text": text}},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code, "text %q", text)
	}

	rec := do(t, h, http.MethodPut, "/goals/"+itoa(second.ID), map[string]interface{}{
		"title": "second",
		"milestones": []map[string]interface{}{
			{"id": ownID, "text": "stolen"},
			{"id": 7, "text": "chosen"},
			{"id": 7, "text": "again"},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[models.Goal](t, rec)
	require.Len(t, updated.Milestones, 3)

	for i := 0; i < 5; i++ {
		first = decode[models.Goal](t, do(t, h, http.MethodPost, "/goals/"+itoa(first.ID)+"/milestones", map[string]string{"text": "later"}))
	}

	seen := map[int64]bool{}
	for _, g := range decode[[]models.Goal](t, do(t, h, http.MethodGet, "/goals", nil)) {
		for _, m := range g.Milestones {
			assert.False(t, seen[m.ID], "milestone id %d used twice", m.ID)
			seen[m.ID] = true
		}
	}

	rec = do(t, h, http.MethodPatch, "/goals/"+itoa(first.ID)+"/milestones/"+itoa(ownID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[models.Goal](t, rec).Milestones[0].Completed)
}
