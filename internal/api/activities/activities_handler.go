package activities

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/FACorreiaa/go-itinerary-planner/internal/api"
	"github.com/FACorreiaa/go-itinerary-planner/internal/types"
)

// Handler exposes the activity catalog over HTTP.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// NewHandler creates a new activity Handler instance.
func NewHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// ListActivities handles GET /activities.
func (h *Handler) ListActivities(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.service.GetCatalog(r.Context())
	if err != nil {
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to load activity catalog")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, catalog.Activities())
}

// GetActivity handles GET /activities/{activityID}.
func (h *Handler) GetActivity(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "activityID")
	if id == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Missing activity ID")
		return
	}

	activity, err := h.service.GetActivity(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			api.ErrorResponse(w, r, http.StatusNotFound, "Activity not found")
			return
		}
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to fetch activity")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, activity)
}

// IngestActivities handles POST /activities.
func (h *Handler) IngestActivities(w http.ResponseWriter, r *http.Request) {
	var records []types.TourismActivity
	if err := api.DecodeJSONBody(w, r, &records); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if len(records) == 0 {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Empty activity batch")
		return
	}

	stored, err := h.service.IngestActivities(r.Context(), records)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Activity ingest failed", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	api.WriteJSONResponse(w, r, http.StatusCreated, map[string]int{"stored": stored})
}
