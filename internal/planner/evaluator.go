package planner

import "github.com/FACorreiaa/go-itinerary-planner/internal/types"

// Evaluator scores itineraries against one user's preferences. It reads no
// mutable state, so distinct itineraries may be evaluated concurrently.
type Evaluator struct {
	prefs   *types.UserPreferences
	catalog *types.Catalog
}

// NewEvaluator returns an evaluator for the given preferences and catalog.
func NewEvaluator(prefs *types.UserPreferences, catalog *types.Catalog) *Evaluator {
	return &Evaluator{prefs: prefs, catalog: catalog}
}

// Evaluate returns the weighted, penalty-adjusted fitness of an itinerary,
// floored at 0. A plan with no scheduled items scores 0: an all-empty plan
// means insufficient data, not a valid solution.
func (e *Evaluator) Evaluate(it *types.Itinerary) float64 {
	if len(it.Days) == 0 || it.TotalItems() == 0 {
		return 0
	}

	w := e.prefs.Weights
	score := w.Cost*e.costScore(it) +
		w.Rating*e.ratingScore(it) +
		w.Time*e.timeScore(it) +
		w.Weather*e.weatherScore(it) +
		w.Interest*e.interestScore(it) -
		e.penalties(it)

	if score < 0 {
		return 0
	}
	return score
}

// costScore is 1 when the budget is unlimited. Dividing by MaxBudget is only
// valid behind the HasBudgetLimit guard.
func (e *Evaluator) costScore(it *types.Itinerary) float64 {
	if !e.prefs.HasBudgetLimit() {
		return 1.0
	}
	s := 1 - it.TotalCost(e.catalog)/e.prefs.MaxBudget
	if s < 0 {
		return 0
	}
	return s
}

func (e *Evaluator) ratingScore(it *types.Itinerary) float64 {
	return it.AverageRating(e.catalog) / 5.0
}

// timeScore is the fraction of scheduled time spent on activities rather
// than transport.
func (e *Evaluator) timeScore(it *types.Itinerary) float64 {
	activityMin := 0
	transportMin := 0
	for i := range it.Days {
		for _, item := range it.Days[i].Items {
			if a, ok := e.catalog.Get(item.ActivityID); ok {
				activityMin += a.DurationMinutes
			}
			transportMin += item.TransportTimeMinutes
		}
	}
	total := activityMin + transportMin
	if total == 0 {
		return 0
	}
	return float64(activityMin) / float64(total)
}

func (e *Evaluator) weatherScore(it *types.Itinerary) float64 {
	sum := 0.0
	count := 0
	for i := range it.Days {
		day := &it.Days[i]
		for _, item := range day.Items {
			if a, ok := e.catalog.Get(item.ActivityID); ok {
				sum += a.WeatherPenalty(day.Weather)
				count++
			}
		}
	}
	if count == 0 {
		return 1.0
	}
	return 1.0 - sum/float64(count)
}

// interestScore is 1 when the user expressed no interests: no preference
// means fully satisfied.
func (e *Evaluator) interestScore(it *types.Itinerary) float64 {
	if len(e.prefs.InterestCategories) == 0 {
		return 1.0
	}

	userInterests := make(map[string]struct{}, len(e.prefs.InterestCategories))
	for _, c := range e.prefs.InterestCategories {
		userInterests[c] = struct{}{}
	}

	sum := 0.0
	count := 0
	for i := range it.Days {
		for _, item := range it.Days[i].Items {
			a, ok := e.catalog.Get(item.ActivityID)
			if !ok {
				continue
			}
			matched := 0
			for _, c := range a.InterestCategories {
				if _, ok := userInterests[c]; ok {
					matched++
				}
			}
			sum += float64(matched) / float64(len(userInterests))
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// penalties sums the additive constraint-violation penalties: 0.5 per day
// over the duration cap, 0.3 per day over the walking cap, 0.2 per item
// scheduled outside its service window and 1.0 once for busting a positive
// budget.
func (e *Evaluator) penalties(it *types.Itinerary) float64 {
	penalty := 0.0
	for i := range it.Days {
		day := &it.Days[i]
		if day.Duration(e.catalog) > e.prefs.MaxDailyDurationMinutes {
			penalty += 0.5
		}
		if day.WalkingDistance(e.catalog) > e.prefs.MaxWalkingDistanceKm {
			penalty += 0.3
		}
		for _, item := range day.Items {
			if a, ok := e.catalog.Get(item.ActivityID); ok && !a.IsAvailableAt(item.StartTime) {
				penalty += 0.2
			}
		}
	}
	if e.prefs.HasBudgetLimit() && it.TotalCost(e.catalog) > e.prefs.MaxBudget {
		penalty += 1.0
	}
	return penalty
}
