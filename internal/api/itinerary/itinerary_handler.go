package itinerary

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/FACorreiaa/go-itinerary-planner/internal/api"
)

// Handler exposes itinerary planning over HTTP.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// NewHandler creates a new itinerary Handler instance.
func NewHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// PlanItinerary handles POST /itineraries/plan.
func (h *Handler) PlanItinerary(w http.ResponseWriter, r *http.Request) {
	var req PlanRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	for date, cond := range req.Weather {
		if !cond.IsValid() {
			api.ErrorResponse(w, r, http.StatusBadRequest, "Unknown weather condition for "+date)
			return
		}
	}

	plan, err := h.service.PlanItinerary(r.Context(), req)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Planning failed", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to plan itinerary")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, plan)
}

// GetPlan handles GET /itineraries/{planID}.
func (h *Handler) GetPlan(w http.ResponseWriter, r *http.Request) {
	planID := chi.URLParam(r, "planID")
	if planID == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Missing plan ID")
		return
	}

	plan, err := h.service.GetPlan(r.Context(), planID)
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			api.ErrorResponse(w, r, http.StatusNotFound, "Plan not found")
			return
		}
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to fetch plan")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, plan)
}
