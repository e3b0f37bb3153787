package activities

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-itinerary-planner/app/observability/metrics"
	"github.com/FACorreiaa/go-itinerary-planner/internal/types"
)

// ErrNotFound is returned when an activity ID has no row.
var ErrNotFound = errors.New("activity not found")

// PGXDB is the subset of pgxpool.Pool the repository needs. Narrowed so
// tests can substitute a pgxmock pool.
type PGXDB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// Ensure implementation satisfies the interface
var _ Repository = (*RepositoryImpl)(nil)

// Repository defines the persistence contract for the activity catalog.
type Repository interface {
	ListActivities(ctx context.Context) ([]types.TourismActivity, error)
	GetActivity(ctx context.Context, id string) (*types.TourismActivity, error)
	SaveActivity(ctx context.Context, activity types.TourismActivity) error
}

// RepositoryImpl provides the Postgres implementation of Repository.
type RepositoryImpl struct {
	logger *slog.Logger
	db     PGXDB
}

// NewRepository creates a new activity repository instance.
func NewRepository(db PGXDB, logger *slog.Logger) *RepositoryImpl {
	return &RepositoryImpl{
		logger: logger,
		db:     db,
	}
}

const activityColumns = `id, name, activity_type, location_name, latitude, longitude,
	duration_minutes, cost, rating, description,
	service_start_hour, service_end_hour, indoor, interest_categories`

func (r *RepositoryImpl) ListActivities(ctx context.Context) ([]types.TourismActivity, error) {
	ctx, span := otel.Tracer("ActivityRepository").Start(ctx, "ListActivities")
	defer span.End()

	start := time.Now()
	rows, err := r.db.Query(ctx, `SELECT `+activityColumns+` FROM activities ORDER BY id`)
	r.recordQuery(ctx, start, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to query activities")
		return nil, fmt.Errorf("error querying activities: %w", err)
	}
	defer rows.Close()

	var out []types.TourismActivity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("error scanning activity row: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("error iterating activity rows: %w", err)
	}

	span.SetAttributes(attribute.Int("activities.count", len(out)))
	return out, nil
}

func (r *RepositoryImpl) GetActivity(ctx context.Context, id string) (*types.TourismActivity, error) {
	ctx, span := otel.Tracer("ActivityRepository").Start(ctx, "GetActivity", trace.WithAttributes(
		attribute.String("activity.id", id),
	))
	defer span.End()

	start := time.Now()
	row := r.db.QueryRow(ctx, `SELECT `+activityColumns+` FROM activities WHERE id = $1`, id)
	a, err := scanActivity(row)
	r.recordQuery(ctx, start, err)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to fetch activity")
		return nil, fmt.Errorf("error fetching activity %s: %w", id, err)
	}
	return &a, nil
}

func (r *RepositoryImpl) SaveActivity(ctx context.Context, activity types.TourismActivity) error {
	ctx, span := otel.Tracer("ActivityRepository").Start(ctx, "SaveActivity", trace.WithAttributes(
		attribute.String("activity.id", activity.ID),
	))
	defer span.End()

	var locationName *string
	var lat, lon *float64
	if activity.Location != nil {
		locationName = &activity.Location.Name
		lat = &activity.Location.Latitude
		lon = &activity.Location.Longitude
	}

	start := time.Now()
	_, err := r.db.Exec(ctx, `
		INSERT INTO activities (`+activityColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			activity_type = EXCLUDED.activity_type,
			location_name = EXCLUDED.location_name,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			duration_minutes = EXCLUDED.duration_minutes,
			cost = EXCLUDED.cost,
			rating = EXCLUDED.rating,
			description = EXCLUDED.description,
			service_start_hour = EXCLUDED.service_start_hour,
			service_end_hour = EXCLUDED.service_end_hour,
			indoor = EXCLUDED.indoor,
			interest_categories = EXCLUDED.interest_categories,
			updated_at = now()`,
		activity.ID, activity.Name, string(activity.Type), locationName, lat, lon,
		activity.DurationMinutes, activity.Cost, activity.Rating, activity.Description,
		activity.ServiceStartHour, activity.ServiceEndHour, activity.Indoor, activity.InterestCategories,
	)
	r.recordQuery(ctx, start, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to save activity")
		return fmt.Errorf("error saving activity %s: %w", activity.ID, err)
	}
	return nil
}

func (r *RepositoryImpl) recordQuery(ctx context.Context, start time.Time, err error) {
	m := metrics.Get()
	if m == nil {
		return
	}
	m.DbQueryDurationSeconds.Record(ctx, time.Since(start).Seconds())
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		m.DbQueryErrorsTotal.Add(ctx, 1)
	}
}

func scanActivity(row pgx.Row) (types.TourismActivity, error) {
	var a types.TourismActivity
	var activityType string
	var locationName *string
	var lat, lon *float64

	err := row.Scan(
		&a.ID, &a.Name, &activityType, &locationName, &lat, &lon,
		&a.DurationMinutes, &a.Cost, &a.Rating, &a.Description,
		&a.ServiceStartHour, &a.ServiceEndHour, &a.Indoor, &a.InterestCategories,
	)
	if err != nil {
		return types.TourismActivity{}, err
	}

	a.Type = types.ActivityType(activityType)
	if locationName != nil && lat != nil && lon != nil {
		a.Location = &types.Location{Name: *locationName, Latitude: *lat, Longitude: *lon}
	}
	return a, nil
}
