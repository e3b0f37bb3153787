package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/FACorreiaa/go-itinerary-planner/internal/api/activities"
	"github.com/FACorreiaa/go-itinerary-planner/internal/api/itinerary"
)

// Config contains dependencies needed for the router setup
type Config struct {
	ActivityHandler        *activities.Handler
	ItineraryHandler       *itinerary.Handler
	AuthenticateMiddleware func(http.Handler) http.Handler
}

// SetupRouter initializes and configures the main application router.
// Server-wide middleware (logger, requestID, recoverer) are expected to be
// applied before mounting this router in main.go.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Group(func(r chi.Router) {
			r.Post("/itineraries/plan", cfg.ItineraryHandler.PlanItinerary)
			r.Get("/itineraries/{planID}", cfg.ItineraryHandler.GetPlan)
			r.Get("/activities", cfg.ActivityHandler.ListActivities)
			r.Get("/activities/{activityID}", cfg.ActivityHandler.GetActivity)
		})

		// Catalog writes require authentication
		r.Group(func(r chi.Router) {
			r.Use(cfg.AuthenticateMiddleware)
			r.Post("/activities", cfg.ActivityHandler.IngestActivities)
		})
	})

	return r
}
