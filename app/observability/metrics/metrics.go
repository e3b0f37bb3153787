package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	OptimizeRequestsTotal   metric.Int64Counter
	OptimizeDurationSeconds metric.Float64Histogram
	OptimizeGenerations     metric.Int64Histogram
	OptimizeBestScore       metric.Float64Histogram
	DbQueryDurationSeconds  metric.Float64Histogram
	DbQueryErrorsTotal      metric.Int64Counter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the global metric instruments exactly once,
// using the globally configured MeterProvider.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("itinerary-planner")
		var err error
		m := &AppMetrics{}

		m.OptimizeRequestsTotal, err = meter.Int64Counter(
			"optimize_requests_total",
			metric.WithDescription("Total number of itinerary optimization runs completed"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create optimize_requests_total: %v", err)
		}

		m.OptimizeDurationSeconds, err = meter.Float64Histogram(
			"optimize_duration_seconds",
			metric.WithDescription("Wall-clock duration of optimization runs in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create optimize_duration_seconds: %v", err)
		}

		m.OptimizeGenerations, err = meter.Int64Histogram(
			"optimize_generations",
			metric.WithDescription("Generations executed per optimization run"),
			metric.WithUnit("{generation}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create optimize_generations: %v", err)
		}

		m.OptimizeBestScore, err = meter.Float64Histogram(
			"optimize_best_score",
			metric.WithDescription("Best fitness score per optimization run"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create optimize_best_score: %v", err)
		}

		m.DbQueryDurationSeconds, err = meter.Float64Histogram(
			"db_query_duration_seconds",
			metric.WithDescription("Duration of database queries in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create db_query_duration_seconds: %v", err)
		}

		m.DbQueryErrorsTotal, err = meter.Int64Counter(
			"db_query_errors_total",
			metric.WithDescription("Total number of database query errors"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create db_query_errors_total: %v", err)
		}

		appMetrics = m
	})
}

// Get returns the initialized metrics, or nil before InitAppMetrics runs.
func Get() *AppMetrics {
	return appMetrics
}
