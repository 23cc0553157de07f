package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Dias221467/waseela/internal/achievements"
	"github.com/Dias221467/waseela/internal/models"
	"github.com/Dias221467/waseela/internal/repository"
	"github.com/Dias221467/waseela/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAssistant struct {
	suggestion *models.GoalSuggestion
	err        error
}

func (s stubAssistant) SuggestGoal(ctx context.Context, prompt string) (*models.GoalSuggestion, error) {
	return s.suggestion, s.err
}

func newSuggestionHandler(asst services.Assistant) *SuggestionHandler {
	store := repository.NewStore(achievements.Defaults())
	activity := services.NewActivityService(repository.NewActivityRepository(10))
	notifications := services.NewNotificationService(repository.NewNotificationRepository(), store, nil, 0)
	achievementService := services.NewAchievementService(store, activity, notifications)
	goals := services.NewGoalService(store, activity, achievementService)
	return NewSuggestionHandler(services.NewSuggestionService(asst, goals))
}

func TestSuggestGoalHandler(t *testing.T) {
	suggestion := &models.GoalSuggestion{Specific: "Read 12 books", Measurable: "books finished", TimeBoundDays: 365}

	tests := []struct {
		name       string
		assistant  services.Assistant
		body       string
		wantStatus int
	}{
		{name: "ok", assistant: stubAssistant{suggestion: suggestion}, body: `{"prompt":"reading"}`, wantStatus: http.StatusOK},
		{name: "missing prompt", assistant: stubAssistant{suggestion: suggestion}, body: `{}`, wantStatus: http.StatusBadRequest},
		{name: "malformed body", assistant: stubAssistant{suggestion: suggestion}, body: `{`, wantStatus: http.StatusBadRequest},
		{name: "upstream failure", assistant: stubAssistant{err: errors.New("rate limited")}, body: `{"prompt":"reading"}`, wantStatus: http.StatusBadGateway},
		{name: "not configured", assistant: nil, body: `{"prompt":"reading"}`, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newSuggestionHandler(tt.assistant)
			req := httptest.NewRequest(http.MethodPost, "/suggestions", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.SuggestGoalHandler(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantStatus == http.StatusOK {
				var got models.GoalSuggestion
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, *suggestion, got)
			}
		})
	}
}
