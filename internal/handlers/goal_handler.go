package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Dias221467/waseela/internal/models"
	"github.com/Dias221467/waseela/internal/services"
	"github.com/sirupsen/logrus"
)

// GoalHandler handles HTTP requests related to goals and milestones.
type GoalHandler struct {
	Service *services.GoalService
}

// NewGoalHandler creates a new instance of GoalHandler.
func NewGoalHandler(goalService *services.GoalService) *GoalHandler {
	return &GoalHandler{Service: goalService}
}

type milestoneRequest struct {
	ID        int64  `json:"id"`
	Text      string `json:"text" validate:"required,max=500"`
	Completed bool   `json:"completed"`
}

type updateGoalRequest struct {
	models.GoalDraft
	Milestones []milestoneRequest `json:"milestones" validate:"dive"`
}

type addMilestoneRequest struct {
	Text string `json:"text" validate:"max=500"`
}

// CreateGoalHandler handles the creation of a new goal.
func (h *GoalHandler) CreateGoalHandler(w http.ResponseWriter, r *http.Request) {
	var draft models.GoalDraft
	if err := decodeBody(r, &draft); err != nil {
		logrus.WithError(err).Warn("Invalid request payload during goal creation")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	goal := h.Service.CreateGoal(r.Context(), draft)

	logrus.WithField("goalID", goal.ID).Info("Goal successfully created")
	writeJSON(w, http.StatusCreated, goal)
}

// GetGoalsHandler returns every goal.
func (h *GoalHandler) GetGoalsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Service.ListGoals(r.Context()))
}

// GetGoalHandler handles fetching a single goal by its ID.
func (h *GoalHandler) GetGoalHandler(w http.ResponseWriter, r *http.Request) {
	goalID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	goal, err := h.Service.GetGoal(r.Context(), goalID)
	if err != nil {
		http.Error(w, "Goal not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, goal)
}

// UpdateGoalHandler replaces a goal with the request body.
func (h *GoalHandler) UpdateGoalHandler(w http.ResponseWriter, r *http.Request) {
	goalID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	log := logrus.WithField("goalID", goalID)

	var req updateGoalRequest
	if err := decodeBody(r, &req); err != nil {
		log.WithError(err).Warn("Invalid update payload")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	goal := models.Goal{
		ID:            goalID,
		Title:         req.Title,
		Measurement:   req.Measurement,
		Achievability: req.Achievability,
		Relevance:     req.Relevance,
		Deadline:      req.Deadline,
		Milestones:    make([]models.Milestone, 0, len(req.Milestones)),
	}
	for _, m := range req.Milestones {
		if strings.TrimSpace(m.Text) == "" {
			http.Error(w, "Milestone text cannot be blank", http.StatusBadRequest)
			return
		}
		goal.Milestones = append(goal.Milestones, models.Milestone{ID: m.ID, Text: m.Text, Completed: m.Completed})
	}

	updated, err := h.Service.UpdateGoal(r.Context(), goal)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	log.Info("Goal successfully updated")
	writeJSON(w, http.StatusOK, updated)
}

// DeleteGoalHandler handles deleting a goal by its ID.
func (h *GoalHandler) DeleteGoalHandler(w http.ResponseWriter, r *http.Request) {
	goalID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Service.DeleteGoal(r.Context(), goalID); err != nil {
		writeServiceError(w, err)
		return
	}

	logrus.WithField("goalID", goalID).Info("Goal deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}

// AddMilestoneHandler appends a milestone. Blank text leaves the goal unchanged.
func (h *GoalHandler) AddMilestoneHandler(w http.ResponseWriter, r *http.Request) {
	goalID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req addMilestoneRequest
	if err := decodeBody(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	goal, err := h.Service.AddMilestone(r.Context(), goalID, req.Text)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, goal)
}

// ToggleMilestoneHandler flips a milestone's completion flag.
func (h *GoalHandler) ToggleMilestoneHandler(w http.ResponseWriter, r *http.Request) {
	goalID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	milestoneID, err := pathID(r, "milestoneId")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	goal, err := h.Service.ToggleMilestone(r.Context(), goalID, milestoneID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, goal)
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrGoalNotFound),
		errors.Is(err, services.ErrMilestoneNotFound),
		errors.Is(err, services.ErrResourceNotFound),
		errors.Is(err, services.ErrNotificationNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, services.ErrAssistantUnavailable):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	default:
		logrus.WithError(err).Error("Unexpected service error")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
