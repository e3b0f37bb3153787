package types

import "time"

// CriteriaWeights holds the relative importance of each fitness criterion.
type CriteriaWeights struct {
	Cost     float64 `json:"cost"`
	Time     float64 `json:"time"`
	Rating   float64 `json:"rating"`
	Weather  float64 `json:"weather"`
	Interest float64 `json:"interest"`
}

// DefaultCriteriaWeights returns the documented default weighting.
func DefaultCriteriaWeights() CriteriaWeights {
	return CriteriaWeights{Cost: 0.25, Time: 0.2, Rating: 0.25, Weather: 0.15, Interest: 0.15}
}

// UserPreferences is the constraint and weighting configuration for one
// optimization run. It is assembled by an external preference-extraction
// collaborator and read-only during search.
type UserPreferences struct {
	StartDate               time.Time        `json:"start_date"`
	EndDate                 time.Time        `json:"end_date"` // inclusive
	MaxBudget               float64          `json:"max_budget"` // <= 0 means unlimited
	DailyStartHour          int              `json:"daily_start_hour"`
	DailyEndHour            int              `json:"daily_end_hour"`
	MaxDailyDurationMinutes int              `json:"max_daily_duration_minutes"`
	MaxWalkingDistanceKm    float64          `json:"max_walking_distance_km"`
	InterestCategories      []string         `json:"interest_categories,omitempty"`
	Weights                 CriteriaWeights  `json:"criteria_weights"`
}

// NumDays returns the number of calendar days in the inclusive date range.
// A range whose end precedes its start counts as a single day.
func (p *UserPreferences) NumDays() int {
	start := truncateToDay(p.StartDate)
	end := truncateToDay(p.EndDate)
	if end.Before(start) {
		return 1
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// DailyBudget returns the per-day budget slice, or 0 when the total budget
// is unlimited.
func (p *UserPreferences) DailyBudget() float64 {
	if p.MaxBudget <= 0 {
		return 0
	}
	return p.MaxBudget / float64(p.NumDays())
}

// HasBudgetLimit reports whether a positive total budget is configured.
func (p *UserPreferences) HasBudgetLimit() bool {
	return p.MaxBudget > 0
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
