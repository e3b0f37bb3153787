package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocation_DistanceTo(t *testing.T) {
	havana := Location{Name: "Havana", Latitude: 23.1136, Longitude: -82.3666}
	santiago := Location{Name: "Santiago de Cuba", Latitude: 20.0247, Longitude: -75.8219}
	trinidad := Location{Name: "Trinidad", Latitude: 21.8021, Longitude: -79.9846}

	t.Run("zero distance to itself", func(t *testing.T) {
		assert.InDelta(t, 0.0, havana.DistanceTo(havana), 1e-9)
	})

	t.Run("symmetric", func(t *testing.T) {
		assert.InDelta(t, havana.DistanceTo(santiago), santiago.DistanceTo(havana), 1e-9)
	})

	t.Run("known great-circle distances", func(t *testing.T) {
		assert.InDelta(t, 759.0, havana.DistanceTo(santiago), 8.0)
		assert.InDelta(t, 285.0, havana.DistanceTo(trinidad), 3.0)
	})

	t.Run("triangle inequality", func(t *testing.T) {
		direct := havana.DistanceTo(santiago)
		viaTrinidad := havana.DistanceTo(trinidad) + trinidad.DistanceTo(santiago)
		assert.LessOrEqual(t, direct, viaTrinidad)
	})
}

func TestActivityType_IsValid(t *testing.T) {
	assert.True(t, ActivityMuseum.IsValid())
	assert.True(t, ActivityRestaurant.IsValid())
	assert.False(t, ActivityType("spa").IsValid())
	assert.False(t, ActivityType("").IsValid())
}

func TestWeatherCondition_IsValid(t *testing.T) {
	assert.True(t, WeatherSunny.IsValid())
	assert.True(t, WeatherStormy.IsValid())
	assert.False(t, WeatherCondition("hail").IsValid())
}

func TestTourismActivity_WeatherPenalty(t *testing.T) {
	indoor := TourismActivity{ID: "m1", Indoor: true}
	outdoor := TourismActivity{ID: "p1", Indoor: false}

	assert.InDelta(t, 0.1, indoor.WeatherPenalty(WeatherStormy), 1e-9)
	assert.InDelta(t, 0.1, indoor.WeatherPenalty(WeatherSunny), 1e-9)
	assert.InDelta(t, 0.8, outdoor.WeatherPenalty(WeatherRainy), 1e-9)
	assert.InDelta(t, 0.8, outdoor.WeatherPenalty(WeatherStormy), 1e-9)
	assert.InDelta(t, 0.1, outdoor.WeatherPenalty(WeatherCloudy), 1e-9)
}
