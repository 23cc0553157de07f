package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dias221467/waseela/internal/metrics"
	"github.com/Dias221467/waseela/internal/models"
	"github.com/Dias221467/waseela/pkg/logger"
)

var ErrAssistantUnavailable = errors.New("goal-suggestion assistant is not configured")

// Assistant suggests a SMART goal for a free-text description.
type Assistant interface {
	SuggestGoal(ctx context.Context, prompt string) (*models.GoalSuggestion, error)
}

type SuggestionService struct {
	assistant Assistant
	goals     *GoalService
	now       func() time.Time
}

// NewSuggestionService creates the service. A nil assistant disables Suggest.
func NewSuggestionService(assistant Assistant, goals *GoalService) *SuggestionService {
	return &SuggestionService{
		assistant: assistant,
		goals:     goals,
		now:       time.Now,
	}
}

// Enabled reports whether an assistant is configured.
func (s *SuggestionService) Enabled() bool { return s.assistant != nil }

// Suggest asks the assistant for a goal suggestion.
func (s *SuggestionService) Suggest(ctx context.Context, prompt string) (*models.GoalSuggestion, error) {
	if s.assistant == nil {
		return nil, ErrAssistantUnavailable
	}

	suggestion, err := s.assistant.SuggestGoal(ctx, prompt)
	if err != nil {
		metrics.SuggestionRequests.WithLabelValues("error").Inc()
		logger.Log.WithError(err).Error("Failed to get goal suggestion")
		return nil, fmt.Errorf("failed to get goal suggestion: %w", err)
	}

	metrics.SuggestionRequests.WithLabelValues("ok").Inc()
	return suggestion, nil
}

// Accept turns a suggestion into a new goal. The suggestion's content is
// taken as-is; only the time-bound days are converted into a deadline.
func (s *SuggestionService) Accept(ctx context.Context, suggestion models.GoalSuggestion) *models.Goal {
	return s.goals.CreateGoal(ctx, suggestion.Draft(s.now()))
}
