package types

import (
	"math"
	"time"
)

// ActivityType classifies a catalog entry.
type ActivityType string

const (
	ActivityTour          ActivityType = "tour"
	ActivityCultural      ActivityType = "cultural"
	ActivityMuseum        ActivityType = "museum"
	ActivityExcursion     ActivityType = "excursion"
	ActivityRestaurant    ActivityType = "restaurant"
	ActivityTransport     ActivityType = "transport"
	ActivityNature        ActivityType = "nature"
	ActivityEntertainment ActivityType = "entertainment"
	ActivityShopping      ActivityType = "shopping"
	ActivityAccommodation ActivityType = "accommodation"
)

// IsValid reports whether t is one of the known activity types.
func (t ActivityType) IsValid() bool {
	switch t {
	case ActivityTour, ActivityCultural, ActivityMuseum, ActivityExcursion,
		ActivityRestaurant, ActivityTransport, ActivityNature,
		ActivityEntertainment, ActivityShopping, ActivityAccommodation:
		return true
	}
	return false
}

// WeatherCondition is the categorical per-day weather label supplied by an
// external collaborator. The optimizer never calls a weather service.
type WeatherCondition string

const (
	WeatherSunny  WeatherCondition = "sunny"
	WeatherCloudy WeatherCondition = "cloudy"
	WeatherRainy  WeatherCondition = "rainy"
	WeatherStormy WeatherCondition = "stormy"
)

// IsValid reports whether w is one of the known weather conditions.
func (w WeatherCondition) IsValid() bool {
	switch w {
	case WeatherSunny, WeatherCloudy, WeatherRainy, WeatherStormy:
		return true
	}
	return false
}

// Location is a named geographic point.
type Location struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

const earthRadiusKm = 6371.0

// DistanceTo returns the great-circle distance to other in kilometers,
// computed with the Haversine formula.
func (l Location) DistanceTo(other Location) float64 {
	lat1 := l.Latitude * math.Pi / 180
	lon1 := l.Longitude * math.Pi / 180
	lat2 := other.Latitude * math.Pi / 180
	lon2 := other.Longitude * math.Pi / 180

	dlat := lat2 - lat1
	dlon := lon2 - lon1

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// TourismActivity is one bookable thing to do. Records are immutable once
// normalized into a Catalog; the optimizer only ever reads them.
type TourismActivity struct {
	ID                 string       `json:"id"`
	Name               string       `json:"name"`
	Type               ActivityType `json:"activity_type"`
	Location           *Location    `json:"location,omitempty"`
	DurationMinutes    int          `json:"duration_minutes"`
	Cost               float64      `json:"cost"`
	Rating             float64      `json:"rating"`
	Description        string       `json:"description,omitempty"`
	ServiceStartHour   int          `json:"service_start_hour"`
	ServiceEndHour     int          `json:"service_end_hour"`
	Indoor             bool         `json:"indoor"`
	InterestCategories []string     `json:"interest_categories,omitempty"`
}

// IsAvailableAt reports whether the activity's service window covers the
// hour of t. The window is half-open: [ServiceStartHour, ServiceEndHour).
func (a *TourismActivity) IsAvailableAt(t time.Time) bool {
	return a.ServiceStartHour <= t.Hour() && t.Hour() < a.ServiceEndHour
}

// WeatherPenalty returns the weather incompatibility penalty in [0,1] for
// scheduling this activity on a day with the given condition.
func (a *TourismActivity) WeatherPenalty(w WeatherCondition) float64 {
	if a.Indoor {
		return 0.1
	}
	if w == WeatherRainy || w == WeatherStormy {
		return 0.8
	}
	return 0.1
}
