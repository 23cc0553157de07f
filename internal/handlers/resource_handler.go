package handlers

import (
	"net/http"

	"github.com/Dias221467/waseela/internal/services"
	"github.com/sirupsen/logrus"
)

type ResourceHandler struct {
	Service *services.ResourceService
}

func NewResourceHandler(service *services.ResourceService) *ResourceHandler {
	return &ResourceHandler{Service: service}
}

// GET /resources?category=Health
func (h *ResourceHandler) GetResourcesHandler(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if err := validate.Var(category, "omitempty,oneof=Career Health Education Personal"); err != nil {
		http.Error(w, "Invalid category", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, h.Service.ListResources(r.Context(), category))
}

// GET /bookmarks
func (h *ResourceHandler) GetBookmarksHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Service.Bookmarks(r.Context()))
}

// POST /resources/{id}/bookmark
func (h *ResourceHandler) ToggleBookmarkHandler(w http.ResponseWriter, r *http.Request) {
	resourceID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	bookmarked, err := h.Service.ToggleBookmark(r.Context(), resourceID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	logrus.WithFields(logrus.Fields{
		"resourceID": resourceID,
		"bookmarked": bookmarked,
	}).Info("Bookmark toggled")
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"resource_id": resourceID,
		"bookmarked":  bookmarked,
	})
}
