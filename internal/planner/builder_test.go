package planner

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-itinerary-planner/internal/types"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func builderCatalog(n int) *types.Catalog {
	records := make([]types.TourismActivity, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, types.TourismActivity{
			ID:               fmt.Sprintf("act-%02d", i),
			Name:             fmt.Sprintf("Activity %d", i),
			Cost:             float64(5 * i),
			Rating:           3.0 + 0.1*float64(i%20),
			DurationMinutes:  60 + 30*(i%4),
			ServiceStartHour: 8,
			ServiceEndHour:   20,
		})
	}
	return types.NewCatalog(records)
}

func builderPrefs(days int) *types.UserPreferences {
	start := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	return &types.UserPreferences{
		StartDate:               start,
		EndDate:                 start.AddDate(0, 0, days-1),
		MaxBudget:               300,
		DailyStartHour:          9,
		DailyEndHour:            18,
		MaxDailyDurationMinutes: 480,
		MaxWalkingDistanceKm:    5,
		Weights:                 types.DefaultCriteriaWeights(),
	}
}

func newTestEngine(catalog *types.Catalog, prefs *types.UserPreferences, weather map[string]types.WeatherCondition, cfg Config) *Engine {
	return New(catalog, prefs, weather, cfg, testLogger())
}

func TestRandomItinerary(t *testing.T) {
	e := newTestEngine(builderCatalog(20), builderPrefs(3), nil, Config{Seed: 7})

	it := e.randomItinerary(testRNG(7), NewUsedSet())
	require.Len(t, it.Days, 3)

	t.Run("consecutive dates from the start date", func(t *testing.T) {
		for i, day := range it.Days {
			want := time.Date(2026, 6, 10+i, 0, 0, 0, 0, time.UTC)
			assert.True(t, day.Date.Equal(want), "day %d date %v", i, day.Date)
		}
	})

	t.Run("no activity repeats across the plan", func(t *testing.T) {
		assertUniqueActivities(t, it)
	})

	t.Run("items scheduled inside the daily window", func(t *testing.T) {
		for _, day := range it.Days {
			for _, item := range day.Items {
				assert.GreaterOrEqual(t, item.StartTime.Hour(), 9)
				assert.Less(t, item.StartTime.Hour(), 18)
			}
		}
	})

	t.Run("transport fields within configured bounds", func(t *testing.T) {
		for _, day := range it.Days {
			for _, item := range day.Items {
				assert.GreaterOrEqual(t, item.TransportTimeMinutes, minTransportMinutes)
				assert.LessOrEqual(t, item.TransportTimeMinutes, maxTransportMinutes)
				assert.GreaterOrEqual(t, item.TransportCost, minTransportCost)
				assert.LessOrEqual(t, item.TransportCost, maxTransportCost)
			}
		}
	})
}

func TestRandomItinerary_EmptyCatalog(t *testing.T) {
	e := newTestEngine(types.NewCatalog(nil), builderPrefs(2), nil, Config{Seed: 1})

	it := e.randomItinerary(testRNG(1), NewUsedSet())
	require.Len(t, it.Days, 2)
	for _, day := range it.Days {
		assert.Empty(t, day.Items)
	}
}

func TestPickByRating(t *testing.T) {
	activities := []*types.TourismActivity{
		{ID: "low", Rating: 1.0},
		{ID: "high", Rating: 9.0},
	}

	rng := testRNG(42)
	counts := map[string]int{}
	for i := 0; i < 1000; i++ {
		counts[activities[pickByRating(rng, activities)].ID]++
	}

	// With a 9:1 rating ratio the high-rated pick should dominate.
	assert.Greater(t, counts["high"], counts["low"]*3)
	assert.Greater(t, counts["low"], 0)
}

func TestWeatherFor(t *testing.T) {
	weather := map[string]types.WeatherCondition{
		"2026-06-10": types.WeatherStormy,
		"2026-06-11": "hail",
	}
	e := newTestEngine(builderCatalog(5), builderPrefs(3), weather, Config{Seed: 1})

	day := func(d int) time.Time { return time.Date(2026, 6, d, 0, 0, 0, 0, time.UTC) }

	assert.Equal(t, types.WeatherStormy, e.weatherFor(day(10)))
	assert.Equal(t, types.WeatherSunny, e.weatherFor(day(11)), "invalid condition falls back to sunny")
	assert.Equal(t, types.WeatherSunny, e.weatherFor(day(12)), "unassigned day falls back to sunny")
}

func assertUniqueActivities(t *testing.T, it *types.Itinerary) {
	t.Helper()
	seen := map[string]bool{}
	for _, id := range it.ActivityIDs() {
		assert.False(t, seen[id], "activity %s scheduled twice", id)
		seen[id] = true
	}
}
