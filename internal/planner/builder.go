package planner

import (
	"math/rand/v2"
	"time"

	"github.com/FACorreiaa/go-itinerary-planner/internal/types"
)

const (
	minTransportMinutes = 10
	maxTransportMinutes = 20
	minTransportCost    = 3.0
	maxTransportCost    = 8.0
)

// dateKey is the map key format for the externally supplied per-day weather
// assignment.
const dateKey = "2006-01-02"

// randomItinerary builds one population member: a rating-biased random day
// per date in the preference range, all days drawing from the same
// caller-owned used-activity set so no activity repeats across the plan.
func (e *Engine) randomItinerary(rng *rand.Rand, used UsedSet) *types.Itinerary {
	numDays := e.prefs.NumDays()
	dailyBudget := e.prefs.DailyBudget()

	days := make([]types.DayPlan, 0, numDays)
	date := dayStart(e.prefs.StartDate)
	for i := 0; i < numDays; i++ {
		days = append(days, e.randomDay(rng, date, dailyBudget, used))
		date = date.AddDate(0, 0, 1)
	}
	return &types.Itinerary{Days: days}
}

// randomDay assembles one day's schedule. Each pick is drawn with
// probability proportional to its rating, a deliberate quality bias over
// uniform sampling. Picked activities are consumed from the pool whether or
// not they fit the remaining budget slice.
func (e *Engine) randomDay(rng *rand.Rand, date time.Time, budget float64, used UsedSet) types.DayPlan {
	day := types.DayPlan{Date: date, Weather: e.weatherFor(date)}

	available := Available(e.catalog, budget, used)
	if len(available) == 0 {
		return day
	}

	current := time.Date(date.Year(), date.Month(), date.Day(), e.prefs.DailyStartHour, 0, 0, 0, date.Location())
	cost := 0.0

	for current.Hour() < e.prefs.DailyEndHour-1 && len(available) > 0 {
		idx := pickByRating(rng, available)
		activity := available[idx]
		available = append(available[:idx], available[idx+1:]...)
		used.Add(activity.ID)

		if budget > 0 && cost+activity.Cost > budget {
			continue
		}

		item := types.ItineraryItem{
			ActivityID:           activity.ID,
			StartTime:            current,
			TransportTimeMinutes: minTransportMinutes + rng.IntN(maxTransportMinutes-minTransportMinutes+1),
			TransportCost:        minTransportCost + rng.Float64()*(maxTransportCost-minTransportCost),
		}
		day.Items = append(day.Items, item)
		cost += activity.Cost + item.TransportCost
		current = current.Add(time.Duration(activity.DurationMinutes+item.TransportTimeMinutes) * time.Minute)
	}
	return day
}

// pickByRating returns an index drawn with probability proportional to each
// activity's rating.
func pickByRating(rng *rand.Rand, activities []*types.TourismActivity) int {
	total := 0.0
	for _, a := range activities {
		total += a.Rating
	}
	if total <= 0 {
		return rng.IntN(len(activities))
	}
	target := rng.Float64() * total
	for i, a := range activities {
		target -= a.Rating
		if target < 0 {
			return i
		}
	}
	return len(activities) - 1
}

func (e *Engine) weatherFor(date time.Time) types.WeatherCondition {
	if w, ok := e.weather[date.Format(dateKey)]; ok && w.IsValid() {
		return w
	}
	return types.WeatherSunny
}

func dayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
