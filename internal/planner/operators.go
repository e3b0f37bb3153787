package planner

import (
	"log/slog"
	"math/rand/v2"

	"github.com/FACorreiaa/go-itinerary-planner/internal/types"
)

// replaceBudgetFactor bounds the cost of a replacement activity relative to
// the one it displaces.
const replaceBudgetFactor = 1.2

// crossover breeds a child by picking, per day index, the whole DayPlan of
// one parent at random. A fresh used-activity set local to this child keeps
// the global-uniqueness invariant: walking the chosen day's items in order,
// only first occurrences survive.
//
// Parents always span the same date range, so mismatched day counts are an
// internal inconsistency; the fallback clones one parent wholesale.
func (e *Engine) crossover(rng *rand.Rand, parent1, parent2 *types.Itinerary) *types.Itinerary {
	if len(parent1.Days) != len(parent2.Days) {
		e.logger.Warn("crossover parents with mismatched day counts, cloning one parent",
			slog.Int("parent1_days", len(parent1.Days)),
			slog.Int("parent2_days", len(parent2.Days)))
		if rng.IntN(2) == 0 {
			return parent1.Clone()
		}
		return parent2.Clone()
	}

	used := NewUsedSet()
	days := make([]types.DayPlan, 0, len(parent1.Days))
	for i := range parent1.Days {
		src := &parent1.Days[i]
		if rng.IntN(2) == 1 {
			src = &parent2.Days[i]
		}

		items := make([]types.ItineraryItem, 0, len(src.Items))
		for _, item := range src.Items {
			if used.Contains(item.ActivityID) {
				continue
			}
			used.Add(item.ActivityID)
			items = append(items, item)
		}
		days = append(days, types.DayPlan{Date: src.Date, Items: items, Weather: src.Weather})
	}
	return &types.Itinerary{Days: days}
}

// mutate clones the individual and applies exactly one randomly chosen
// mutation operator.
func (e *Engine) mutate(rng *rand.Rand, individual *types.Itinerary) *types.Itinerary {
	mutated := individual.Clone()
	if len(mutated.Days) == 0 {
		return mutated
	}

	switch rng.IntN(3) {
	case 0:
		e.mutateSwap(rng, mutated)
	case 1:
		e.mutateReplace(rng, mutated)
	default:
		e.mutateShuffle(rng, mutated)
	}
	return mutated
}

// mutateSwap exchanges one randomly chosen item between two distinct days.
func (e *Engine) mutateSwap(rng *rand.Rand, it *types.Itinerary) {
	if len(it.Days) < 2 {
		return
	}
	perm := rng.Perm(len(it.Days))
	day1 := &it.Days[perm[0]]
	day2 := &it.Days[perm[1]]
	if len(day1.Items) == 0 || len(day2.Items) == 0 {
		return
	}

	i1 := rng.IntN(len(day1.Items))
	i2 := rng.IntN(len(day2.Items))
	day1.Items[i1], day2.Items[i2] = day2.Items[i2], day1.Items[i1]
}

// mutateReplace swaps a random item's activity for an unused one costing at
// most 1.2x the old activity, keeping the item's timing fields. When the
// pool has nothing to offer the item is left untouched.
func (e *Engine) mutateReplace(rng *rand.Rand, it *types.Itinerary) {
	day := &it.Days[rng.IntN(len(it.Days))]
	if len(day.Items) == 0 {
		return
	}

	idx := rng.IntN(len(day.Items))
	old := day.Items[idx]
	oldActivity, ok := e.catalog.Get(old.ActivityID)
	if !ok {
		return
	}

	used := usedFromItinerary(it)
	used.Remove(old.ActivityID)

	available := Available(e.catalog, oldActivity.Cost*replaceBudgetFactor, used)
	if len(available) == 0 {
		return
	}

	replacement := available[rng.IntN(len(available))]
	day.Items[idx] = types.ItineraryItem{
		ActivityID:           replacement.ID,
		StartTime:            old.StartTime,
		TransportTimeMinutes: old.TransportTimeMinutes,
		TransportCost:        old.TransportCost,
	}
}

// mutateShuffle reorders one day's items at random. Start times are
// deliberately left as assigned at construction; only the visit order (and
// with it the walking distance) changes.
func (e *Engine) mutateShuffle(rng *rand.Rand, it *types.Itinerary) {
	day := &it.Days[rng.IntN(len(it.Days))]
	if len(day.Items) < 2 {
		return
	}
	rng.Shuffle(len(day.Items), func(i, j int) {
		day.Items[i], day.Items[j] = day.Items[j], day.Items[i]
	})
}
