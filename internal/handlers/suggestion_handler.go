package handlers

import (
	"errors"
	"net/http"

	"github.com/Dias221467/waseela/internal/models"
	"github.com/Dias221467/waseela/internal/services"
	"github.com/sirupsen/logrus"
)

type SuggestionHandler struct {
	Service *services.SuggestionService
}

func NewSuggestionHandler(service *services.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{Service: service}
}

type suggestRequest struct {
	Prompt string `json:"prompt" validate:"required,max=1000"`
}

// POST /suggestions
func (h *SuggestionHandler) SuggestGoalHandler(w http.ResponseWriter, r *http.Request) {
	if !h.Service.Enabled() {
		writeServiceError(w, services.ErrAssistantUnavailable)
		return
	}

	var req suggestRequest
	if err := decodeBody(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	suggestion, err := h.Service.Suggest(r.Context(), req.Prompt)
	if err != nil {
		if errors.Is(err, services.ErrAssistantUnavailable) {
			writeServiceError(w, err)
			return
		}
		logrus.WithError(err).Warn("Goal suggestion failed")
		http.Error(w, "Failed to get a suggestion", http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, suggestion)
}

// POST /suggestions/accept
func (h *SuggestionHandler) AcceptSuggestionHandler(w http.ResponseWriter, r *http.Request) {
	var suggestion models.GoalSuggestion
	if err := decodeBody(r, &suggestion); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	goal := h.Service.Accept(r.Context(), suggestion)
	logrus.WithField("goalID", goal.ID).Info("Suggestion accepted as goal")
	writeJSON(w, http.StatusCreated, goal)
}
