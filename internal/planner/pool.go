// Package planner implements the genetic itinerary optimizer: a population
// search over multi-day activity plans, scored against user preferences.
package planner

import "github.com/FACorreiaa/go-itinerary-planner/internal/types"

// UsedSet tracks which activity IDs are already scheduled while one plan is
// being assembled. A fresh set is created per optimization run and per
// crossover child; it is owned by its caller and never shared across
// concurrently bred individuals.
type UsedSet map[string]struct{}

// NewUsedSet returns an empty tracking set.
func NewUsedSet() UsedSet {
	return make(UsedSet)
}

// Add marks an activity ID as scheduled.
func (u UsedSet) Add(id string) {
	u[id] = struct{}{}
}

// Remove releases an activity ID back to the pool.
func (u UsedSet) Remove(id string) {
	delete(u, id)
}

// Contains reports whether an activity ID is already scheduled.
func (u UsedSet) Contains(id string) bool {
	_, ok := u[id]
	return ok
}

// usedFromItinerary rebuilds the tracking set for an existing plan.
func usedFromItinerary(it *types.Itinerary) UsedSet {
	used := NewUsedSet()
	for _, id := range it.ActivityIDs() {
		used.Add(id)
	}
	return used
}

// Available returns the catalog activities that are not in used and whose
// cost fits the budget ceiling. A ceiling <= 0 means unlimited. The result
// preserves catalog order so seeded runs stay reproducible.
func Available(catalog *types.Catalog, budget float64, used UsedSet) []*types.TourismActivity {
	out := make([]*types.TourismActivity, 0, catalog.Len())
	for _, a := range catalog.Activities() {
		if used.Contains(a.ID) {
			continue
		}
		if budget > 0 && a.Cost > budget {
			continue
		}
		out = append(out, a)
	}
	return out
}
