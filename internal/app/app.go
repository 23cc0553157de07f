// Package app wires configuration, state, services and the HTTP router.
package app

import (
	"fmt"
	"net/http"

	"github.com/Dias221467/waseela/internal/achievements"
	"github.com/Dias221467/waseela/internal/assistant"
	"github.com/Dias221467/waseela/internal/catalog"
	"github.com/Dias221467/waseela/internal/config"
	"github.com/Dias221467/waseela/internal/handlers"
	"github.com/Dias221467/waseela/internal/metrics"
	"github.com/Dias221467/waseela/internal/repository"
	"github.com/Dias221467/waseela/internal/services"
	"github.com/Dias221467/waseela/pkg/middleware"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

// App holds the single application state and everything built on top of it.
type App struct {
	Config *config.Config
	Store  *repository.Store
	Hub    *handlers.EventHub

	Activity      *services.ActivityService
	Notifications *services.NotificationService
	Achievements  *services.AchievementService
	Goals         *services.GoalService
	Resources     *services.ResourceService
	Suggestions   *services.SuggestionService
}

func New(cfg *config.Config) (*App, error) {
	cat, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load resource catalog: %w", err)
	}

	a := &App{
		Config: cfg,
		Store:  repository.NewStore(achievements.Defaults()),
		Hub:    handlers.NewEventHub(cfg.AllowedOrigins),
	}

	// --- Services ---
	a.Activity = services.NewActivityService(repository.NewActivityRepository(cfg.ActivityLimit))
	a.Notifications = services.NewNotificationService(repository.NewNotificationRepository(), a.Store, a.Hub, cfg.DueSoonWindow)
	a.Achievements = services.NewAchievementService(a.Store, a.Activity, a.Notifications)
	a.Goals = services.NewGoalService(a.Store, a.Activity, a.Achievements)
	a.Resources = services.NewResourceService(cat, a.Store, a.Activity, a.Achievements)

	var asst services.Assistant
	if cfg.OpenAIAPIKey != "" {
		asst = assistant.NewOpenAIAssistant(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)
	}
	a.Suggestions = services.NewSuggestionService(asst, a.Goals)

	return a, nil
}

// Router builds the HTTP API.
func (a *App) Router() http.Handler {
	goalHandler := handlers.NewGoalHandler(a.Goals)
	resourceHandler := handlers.NewResourceHandler(a.Resources)
	achievementHandler := handlers.NewAchievementHandler(a.Achievements)
	suggestionHandler := handlers.NewSuggestionHandler(a.Suggestions)
	activityHandler := handlers.NewActivityHandler(a.Activity)
	notificationHandler := handlers.NewNotificationHandler(a.Notifications)

	router := mux.NewRouter()

	// Goal routes
	goalRoutes := router.PathPrefix("/goals").Subrouter()
	goalRoutes.HandleFunc("", goalHandler.CreateGoalHandler).Methods("POST")
	goalRoutes.HandleFunc("", goalHandler.GetGoalsHandler).Methods("GET")
	goalRoutes.HandleFunc("/{id}", goalHandler.GetGoalHandler).Methods("GET")
	goalRoutes.HandleFunc("/{id}", goalHandler.UpdateGoalHandler).Methods("PUT")
	goalRoutes.HandleFunc("/{id}", goalHandler.DeleteGoalHandler).Methods("DELETE")
	goalRoutes.HandleFunc("/{id}/milestones", goalHandler.AddMilestoneHandler).Methods("POST")
	goalRoutes.HandleFunc("/{id}/milestones/{milestoneId}", goalHandler.ToggleMilestoneHandler).Methods("PATCH")

	// Resource routes
	router.HandleFunc("/resources", resourceHandler.GetResourcesHandler).Methods("GET")
	router.HandleFunc("/resources/{id}/bookmark", resourceHandler.ToggleBookmarkHandler).Methods("POST")
	router.HandleFunc("/bookmarks", resourceHandler.GetBookmarksHandler).Methods("GET")

	router.HandleFunc("/achievements", achievementHandler.GetAchievementsHandler).Methods("GET")

	// Suggestion routes
	router.HandleFunc("/suggestions", suggestionHandler.SuggestGoalHandler).Methods("POST")
	router.HandleFunc("/suggestions/accept", suggestionHandler.AcceptSuggestionHandler).Methods("POST")

	router.HandleFunc("/activities", activityHandler.GetActivitiesHandler).Methods("GET")

	// Notification routes
	router.HandleFunc("/notifications", notificationHandler.GetNotificationsHandler).Methods("GET")
	router.HandleFunc("/notifications/{id}/read", notificationHandler.MarkAsReadHandler).Methods("POST")
	router.HandleFunc("/notifications/{id}", notificationHandler.DeleteNotificationHandler).Methods("DELETE")

	router.HandleFunc("/ws/events", a.Hub.EventsWebSocketHandler).Methods("GET")

	router.Handle("/metrics", promhttp.Handler()).Methods("GET")
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}).Methods("GET")

	router.Use(middleware.LoggingMiddleware)
	router.Use(metrics.Middleware)

	c := cors.New(cors.Options{
		AllowedOrigins:   a.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
	})
	return c.Handler(router)
}
