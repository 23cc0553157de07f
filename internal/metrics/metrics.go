// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GoalMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "waseela_goal_mutations_total",
		Help: "Goal, milestone and bookmark mutations by operation.",
	}, []string{"operation"})

	AchievementsUnlocked = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "waseela_achievements_unlocked_total",
		Help: "Achievements that flipped to unlocked, by title.",
	}, []string{"achievement"})

	SuggestionRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "waseela_suggestion_requests_total",
		Help: "Goal-suggestion assistant calls by result.",
	}, []string{"result"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "waseela_http_requests_total",
		Help: "HTTP requests by route template and method.",
	}, []string{"route", "method"})
)

// Middleware counts requests per mux route template.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := "unmatched"
		if cur := mux.CurrentRoute(r); cur != nil {
			if tpl, err := cur.GetPathTemplate(); err == nil {
				route = tpl
			}
		}
		HTTPRequests.WithLabelValues(route, r.Method).Inc()
		next.ServeHTTP(w, r)
	})
}
