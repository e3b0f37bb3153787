package itinerary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-itinerary-planner/app/observability/metrics"
	"github.com/FACorreiaa/go-itinerary-planner/config"
	"github.com/FACorreiaa/go-itinerary-planner/internal/api/activities"
	"github.com/FACorreiaa/go-itinerary-planner/internal/planner"
	"github.com/FACorreiaa/go-itinerary-planner/internal/types"
)

// ErrPlanNotFound is returned when a plan ID is unknown or expired.
var ErrPlanNotFound = errors.New("plan not found")

// Defaults applied to plan requests that leave constraints unset.
const (
	defaultTripDays             = 3
	defaultMaxBudget            = 300.0
	defaultDailyStartHour       = 9
	defaultDailyEndHour         = 18
	defaultMaxDailyDuration     = 480
	defaultMaxWalkingDistanceKm = 5.0
)

func defaultInterests() []string {
	return []string{"cultural", "nature", "gastronomy"}
}

// PlanRequest is the body of a plan submission. Unset constraints fall back
// to documented defaults; a max_budget given explicitly as zero or negative
// means unlimited, while omitting it selects the default budget.
type PlanRequest struct {
	StartDate               time.Time                          `json:"start_date"`
	EndDate                 time.Time                          `json:"end_date"`
	MaxBudget               *float64                           `json:"max_budget,omitempty"`
	DailyStartHour          int                                `json:"daily_start_hour,omitempty"`
	DailyEndHour            int                                `json:"daily_end_hour,omitempty"`
	MaxDailyDurationMinutes int                                `json:"max_daily_duration_minutes,omitempty"`
	MaxWalkingDistanceKm    float64                            `json:"max_walking_distance_km,omitempty"`
	InterestCategories      []string                           `json:"interest_categories,omitempty"`
	Weights                 *types.CriteriaWeights             `json:"criteria_weights,omitempty"`
	Activities              []types.TourismActivity            `json:"activities,omitempty"`
	Weather                 map[string]types.WeatherCondition  `json:"weather,omitempty"`
	Seed                    uint64                             `json:"seed,omitempty"`
}

// Plan is a completed optimization run, addressable by ID until it expires
// from the cache.
type Plan struct {
	ID          string                `json:"id"`
	CreatedAt   time.Time             `json:"created_at"`
	Preferences types.UserPreferences `json:"preferences"`
	Itinerary   *types.Itinerary      `json:"itinerary"`
	Score       float64               `json:"score"`
	Generations int                   `json:"generations"`
	Converged   bool                  `json:"converged"`
}

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

// Service runs itinerary optimizations and serves completed plans.
type Service interface {
	PlanItinerary(ctx context.Context, req PlanRequest) (*Plan, error)
	GetPlan(ctx context.Context, planID string) (*Plan, error)
}

// ServiceImpl provides the implementation of Service.
type ServiceImpl struct {
	logger     *slog.Logger
	activities activities.Service
	plannerCfg config.Config
	planCache  *cache.Cache
}

// NewService creates a new ServiceImpl instance.
func NewService(activitySvc activities.Service, cfg config.Config, planCache *cache.Cache, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:     logger,
		activities: activitySvc,
		plannerCfg: cfg,
		planCache:  planCache,
	}
}

// PlanItinerary resolves the activity catalog, runs the genetic search under
// the configured run timeout and caches the resulting plan.
func (s *ServiceImpl) PlanItinerary(ctx context.Context, req PlanRequest) (*Plan, error) {
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "PlanItinerary")
	defer span.End()

	l := s.logger.With(slog.String("method", "PlanItinerary"))
	start := time.Now()

	prefs := resolvePreferences(req)
	catalog, err := s.resolveCatalog(ctx, req.Activities)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to resolve activity catalog")
		return nil, err
	}

	if m := metrics.Get(); m != nil {
		m.OptimizeRequestsTotal.Add(ctx, 1)
	}

	runCtx := ctx
	if timeout := s.plannerCfg.Planner.RunTimeout; timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	engineCfg := planner.Config{
		PopulationSize: s.plannerCfg.Planner.PopulationSize,
		MutationRate:   s.plannerCfg.Planner.MutationRate,
		MaxIterations:  s.plannerCfg.Planner.MaxIterations,
		Workers:        s.plannerCfg.Planner.Workers,
		Seed:           s.plannerCfg.Planner.Seed,
	}
	if req.Seed != 0 {
		engineCfg.Seed = req.Seed
	}

	engine := planner.New(catalog, &prefs, req.Weather, engineCfg, s.logger)
	result := engine.Optimize(runCtx)

	plan := &Plan{
		ID:          uuid.New().String(),
		CreatedAt:   time.Now().UTC(),
		Preferences: prefs,
		Itinerary:   result.Itinerary,
		Score:       result.Score,
		Generations: result.Generations,
		Converged:   result.Converged,
	}
	s.planCache.Set(plan.ID, plan, cache.DefaultExpiration)

	elapsed := time.Since(start)
	if m := metrics.Get(); m != nil {
		m.OptimizeDurationSeconds.Record(ctx, elapsed.Seconds())
		m.OptimizeGenerations.Record(ctx, int64(result.Generations))
		m.OptimizeBestScore.Record(ctx, result.Score)
	}

	l.InfoContext(ctx, "Optimization complete",
		slog.String("planID", plan.ID),
		slog.Float64("score", result.Score),
		slog.Int("generations", result.Generations),
		slog.Bool("converged", result.Converged),
		slog.Duration("elapsed", elapsed))
	span.SetAttributes(
		attribute.String("plan.id", plan.ID),
		attribute.Float64("plan.score", result.Score),
		attribute.Int("plan.generations", result.Generations),
	)
	return plan, nil
}

// GetPlan fetches a cached plan by ID.
func (s *ServiceImpl) GetPlan(ctx context.Context, planID string) (*Plan, error) {
	_, span := otel.Tracer("ItineraryService").Start(ctx, "GetPlan", trace.WithAttributes(
		attribute.String("plan.id", planID),
	))
	defer span.End()

	if _, err := uuid.Parse(planID); err != nil {
		return nil, fmt.Errorf("invalid plan ID %q: %w", planID, ErrPlanNotFound)
	}
	cached, ok := s.planCache.Get(planID)
	if !ok {
		return nil, ErrPlanNotFound
	}
	return cached.(*Plan), nil
}

// resolveCatalog prefers request-supplied activities and otherwise falls
// back to the stored catalog.
func (s *ServiceImpl) resolveCatalog(ctx context.Context, inline []types.TourismActivity) (*types.Catalog, error) {
	if len(inline) > 0 {
		return types.NewCatalog(inline), nil
	}
	return s.activities.GetCatalog(ctx)
}

func resolvePreferences(req PlanRequest) types.UserPreferences {
	prefs := types.UserPreferences{
		StartDate:               req.StartDate,
		EndDate:                 req.EndDate,
		DailyStartHour:          req.DailyStartHour,
		DailyEndHour:            req.DailyEndHour,
		MaxDailyDurationMinutes: req.MaxDailyDurationMinutes,
		MaxWalkingDistanceKm:    req.MaxWalkingDistanceKm,
		InterestCategories:      req.InterestCategories,
	}

	if prefs.StartDate.IsZero() {
		now := time.Now()
		prefs.StartDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	if prefs.EndDate.IsZero() || prefs.EndDate.Before(prefs.StartDate) {
		prefs.EndDate = prefs.StartDate.AddDate(0, 0, defaultTripDays-1)
	}
	if req.MaxBudget == nil {
		prefs.MaxBudget = defaultMaxBudget
	} else {
		prefs.MaxBudget = *req.MaxBudget
	}
	if prefs.DailyStartHour <= 0 {
		prefs.DailyStartHour = defaultDailyStartHour
	}
	if prefs.DailyEndHour <= 0 {
		prefs.DailyEndHour = defaultDailyEndHour
	}
	if prefs.DailyEndHour <= prefs.DailyStartHour {
		prefs.DailyEndHour = prefs.DailyStartHour + 1
	}
	if prefs.MaxDailyDurationMinutes <= 0 {
		prefs.MaxDailyDurationMinutes = defaultMaxDailyDuration
	}
	if prefs.MaxWalkingDistanceKm <= 0 {
		prefs.MaxWalkingDistanceKm = defaultMaxWalkingDistanceKm
	}
	if len(prefs.InterestCategories) == 0 {
		prefs.InterestCategories = defaultInterests()
	}
	if req.Weights != nil {
		prefs.Weights = *req.Weights
	} else {
		prefs.Weights = types.DefaultCriteriaWeights()
	}
	return prefs
}
