package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *Catalog {
	return NewCatalog([]TourismActivity{
		{
			ID: "museum", Name: "National Museum", Rating: 4.0, Cost: 15, DurationMinutes: 120,
			Location: &Location{Name: "Center", Latitude: 23.1136, Longitude: -82.3666},
		},
		{
			ID: "fort", Name: "Harbor Fort", Rating: 4.5, Cost: 10, DurationMinutes: 90,
			Location: &Location{Name: "Harbor", Latitude: 23.1500, Longitude: -82.3500},
		},
		{
			ID: "dinner", Name: "Paladar Dinner", Rating: 5.0, Cost: 30, DurationMinutes: 90,
		},
	})
}

func testItinerary() *Itinerary {
	day1 := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	return &Itinerary{
		Days: []DayPlan{
			{
				Date:    day1,
				Weather: WeatherSunny,
				Items: []ItineraryItem{
					{ActivityID: "museum", StartTime: day1.Add(9 * time.Hour), TransportTimeMinutes: 10, TransportCost: 5},
					{ActivityID: "fort", StartTime: day1.Add(12 * time.Hour), TransportTimeMinutes: 15, TransportCost: 4},
				},
			},
			{
				Date:    day1.AddDate(0, 0, 1),
				Weather: WeatherRainy,
				Items: []ItineraryItem{
					{ActivityID: "dinner", StartTime: day1.AddDate(0, 0, 1).Add(18 * time.Hour), TransportTimeMinutes: 12, TransportCost: 6},
				},
			},
		},
	}
}

func TestDayPlan_Totals(t *testing.T) {
	catalog := testCatalog()
	it := testItinerary()
	day := &it.Days[0]

	assert.Equal(t, 120+10+90+15, day.Duration(catalog))
	assert.InDelta(t, 15+5+10+4, day.Cost(catalog), 1e-9)

	// museum -> fort is a short hop across the city
	dist := day.WalkingDistance(catalog)
	assert.Greater(t, dist, 0.0)
	assert.Less(t, dist, 10.0)
}

func TestDayPlan_UnresolvedActivity(t *testing.T) {
	catalog := testCatalog()
	day := DayPlan{Items: []ItineraryItem{
		{ActivityID: "gone", TransportTimeMinutes: 10, TransportCost: 3},
	}}

	assert.Equal(t, 10, day.Duration(catalog), "missing activities contribute transport only")
	assert.InDelta(t, 3.0, day.Cost(catalog), 1e-9)
	assert.Zero(t, day.WalkingDistance(catalog))
}

func TestItinerary_Aggregates(t *testing.T) {
	catalog := testCatalog()
	it := testItinerary()

	assert.Equal(t, 3, it.TotalItems())
	assert.Equal(t, []string{"museum", "fort", "dinner"}, it.ActivityIDs())
	assert.InDelta(t, 55.0+15.0, it.TotalCost(catalog), 1e-9)
	assert.InDelta(t, (4.0+4.5+5.0)/3, it.AverageRating(catalog), 1e-9)
}

func TestItinerary_AverageRatingEmpty(t *testing.T) {
	catalog := testCatalog()
	it := &Itinerary{Days: []DayPlan{{}}}
	assert.Zero(t, it.AverageRating(catalog))
}

func TestItinerary_Clone(t *testing.T) {
	it := testItinerary()
	clone := it.Clone()

	require.Equal(t, it, clone)

	clone.Days[0].Items[0].ActivityID = "changed"
	clone.Days[1].Weather = WeatherStormy
	assert.Equal(t, "museum", it.Days[0].Items[0].ActivityID)
	assert.Equal(t, WeatherRainy, it.Days[1].Weather)
}

func TestUserPreferences_NumDays(t *testing.T) {
	start := time.Date(2026, 5, 1, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		end  time.Time
		want int
	}{
		{"same day", start, 1},
		{"inclusive range", start.AddDate(0, 0, 2), 3},
		{"time of day ignored", time.Date(2026, 5, 3, 1, 0, 0, 0, time.UTC), 3},
		{"end before start", start.AddDate(0, 0, -5), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := UserPreferences{StartDate: start, EndDate: tt.end}
			assert.Equal(t, tt.want, p.NumDays())
		})
	}
}

func TestUserPreferences_DailyBudget(t *testing.T) {
	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	p := UserPreferences{StartDate: start, EndDate: start.AddDate(0, 0, 2), MaxBudget: 300}
	assert.InDelta(t, 100.0, p.DailyBudget(), 1e-9)
	assert.True(t, p.HasBudgetLimit())

	unlimited := UserPreferences{StartDate: start, EndDate: start, MaxBudget: 0}
	assert.Zero(t, unlimited.DailyBudget())
	assert.False(t, unlimited.HasBudgetLimit())
}
