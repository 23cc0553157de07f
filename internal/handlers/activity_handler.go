package handlers

import (
	"net/http"
	"strconv"

	"github.com/Dias221467/waseela/internal/services"
	"github.com/sirupsen/logrus"
)

const defaultActivityPage = 20

type ActivityHandler struct {
	Service *services.ActivityService
}

func NewActivityHandler(service *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{Service: service}
}

// GET /activities?limit=20
func (h *ActivityHandler) GetActivitiesHandler(w http.ResponseWriter, r *http.Request) {
	limit := defaultActivityPage
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			logrus.WithField("limit", raw).Warn("Invalid limit query param")
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	activities, err := h.Service.GetRecentActivities(r.Context(), limit)
	if err != nil {
		http.Error(w, "Failed to get activities", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, activities)
}
