package handlers

import (
	"net/http"

	"github.com/Dias221467/waseela/internal/services"
)

type AchievementHandler struct {
	Service *services.AchievementService
}

func NewAchievementHandler(service *services.AchievementService) *AchievementHandler {
	return &AchievementHandler{Service: service}
}

// GET /achievements
func (h *AchievementHandler) GetAchievementsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Service.ListAchievements(r.Context()))
}
