package types

const (
	defaultServiceStartHour = 9
	defaultServiceEndHour   = 17

	minRating = 1.0
	maxRating = 5.0
)

// Catalog is the read-only set of candidate activities for one optimization
// run. Construction order is preserved so that seeded runs are reproducible.
type Catalog struct {
	activities []*TourismActivity
	byID       map[string]*TourismActivity
}

// NewCatalog normalizes externally supplied records into a Catalog. This is
// the single boundary where heterogeneous sources are coerced into the fixed
// TourismActivity shape: records without an ID are dropped, later duplicates
// of an ID are dropped, ratings are clamped to [1,5] and zeroed service
// windows fall back to 9-17.
func NewCatalog(records []TourismActivity) *Catalog {
	c := &Catalog{
		activities: make([]*TourismActivity, 0, len(records)),
		byID:       make(map[string]*TourismActivity, len(records)),
	}
	for i := range records {
		a := records[i]
		if a.ID == "" {
			continue
		}
		if _, seen := c.byID[a.ID]; seen {
			continue
		}
		if a.Rating < minRating {
			a.Rating = minRating
		}
		if a.Rating > maxRating {
			a.Rating = maxRating
		}
		if a.ServiceStartHour == 0 && a.ServiceEndHour == 0 {
			a.ServiceStartHour = defaultServiceStartHour
			a.ServiceEndHour = defaultServiceEndHour
		}
		c.activities = append(c.activities, &a)
		c.byID[a.ID] = &a
	}
	return c
}

// Get returns the activity with the given ID, if present.
func (c *Catalog) Get(id string) (*TourismActivity, bool) {
	a, ok := c.byID[id]
	return a, ok
}

// Activities returns the normalized records in insertion order. Callers must
// not mutate the returned slice or its elements.
func (c *Catalog) Activities() []*TourismActivity {
	return c.activities
}

// Len returns the number of activities in the catalog.
func (c *Catalog) Len() int {
	return len(c.activities)
}
