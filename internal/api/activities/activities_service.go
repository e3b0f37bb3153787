package activities

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-itinerary-planner/internal/types"
)

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

// Service defines the business logic contract for the activity catalog.
type Service interface {
	GetCatalog(ctx context.Context) (*types.Catalog, error)
	GetActivity(ctx context.Context, id string) (*types.TourismActivity, error)
	IngestActivities(ctx context.Context, records []types.TourismActivity) (int, error)
}

// ServiceImpl provides the implementation of Service.
type ServiceImpl struct {
	logger *slog.Logger
	repo   Repository
}

// NewService creates a new ServiceImpl instance.
func NewService(repo Repository, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger: logger,
		repo:   repo,
	}
}

// GetCatalog loads every stored activity and returns it as a normalized
// catalog. Records with missing or duplicate IDs are dropped during
// normalization.
func (s *ServiceImpl) GetCatalog(ctx context.Context) (*types.Catalog, error) {
	ctx, span := otel.Tracer("ActivityService").Start(ctx, "GetCatalog")
	defer span.End()

	l := s.logger.With(slog.String("method", "GetCatalog"))

	records, err := s.repo.ListActivities(ctx)
	if err != nil {
		l.ErrorContext(ctx, "Failed to list activities", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to list activities")
		return nil, err
	}

	catalog := types.NewCatalog(records)
	if dropped := len(records) - catalog.Len(); dropped > 0 {
		l.WarnContext(ctx, "Dropped invalid catalog records", slog.Int("dropped", dropped))
	}
	span.SetAttributes(attribute.Int("catalog.size", catalog.Len()))
	return catalog, nil
}

func (s *ServiceImpl) GetActivity(ctx context.Context, id string) (*types.TourismActivity, error) {
	ctx, span := otel.Tracer("ActivityService").Start(ctx, "GetActivity", trace.WithAttributes(
		attribute.String("activity.id", id),
	))
	defer span.End()

	return s.repo.GetActivity(ctx, id)
}

// IngestActivities validates and upserts a batch of catalog records,
// returning how many were stored. Invalid records fail the whole batch.
func (s *ServiceImpl) IngestActivities(ctx context.Context, records []types.TourismActivity) (int, error) {
	ctx, span := otel.Tracer("ActivityService").Start(ctx, "IngestActivities", trace.WithAttributes(
		attribute.Int("records.count", len(records)),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "IngestActivities"))

	for i, rec := range records {
		if err := validateRecord(rec); err != nil {
			span.SetStatus(codes.Error, "Invalid activity record")
			return 0, fmt.Errorf("record %d: %w", i, err)
		}
	}

	stored := 0
	for _, rec := range records {
		if err := s.repo.SaveActivity(ctx, rec); err != nil {
			l.ErrorContext(ctx, "Failed to save activity",
				slog.String("activityID", rec.ID), slog.Any("error", err))
			span.RecordError(err)
			return stored, err
		}
		stored++
	}

	l.InfoContext(ctx, "Ingested activities", slog.Int("stored", stored))
	return stored, nil
}

func validateRecord(rec types.TourismActivity) error {
	if rec.ID == "" {
		return fmt.Errorf("missing activity id")
	}
	if rec.Name == "" {
		return fmt.Errorf("activity %s: missing name", rec.ID)
	}
	if !rec.Type.IsValid() {
		return fmt.Errorf("activity %s: unknown activity type %q", rec.ID, rec.Type)
	}
	if rec.DurationMinutes <= 0 {
		return fmt.Errorf("activity %s: duration must be positive", rec.ID)
	}
	if rec.Cost < 0 {
		return fmt.Errorf("activity %s: cost must not be negative", rec.ID)
	}
	return nil
}
