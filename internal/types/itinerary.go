package types

import "time"

// ItineraryItem schedules one catalog activity. The activity is referenced
// by ID only; ownership stays with the catalog.
type ItineraryItem struct {
	ActivityID           string    `json:"activity_id"`
	StartTime            time.Time `json:"start_time"`
	TransportTimeMinutes int       `json:"transport_time_minutes"`
	TransportCost        float64   `json:"transport_cost"`
}

// DayPlan is one calendar day's ordered schedule within an Itinerary.
type DayPlan struct {
	Date    time.Time        `json:"date"`
	Items   []ItineraryItem  `json:"items"`
	Weather WeatherCondition `json:"weather"`
}

// Duration returns the day's total minutes: activity durations plus
// transport. Items that no longer resolve in the catalog contribute only
// their transport time.
func (d *DayPlan) Duration(catalog *Catalog) int {
	total := 0
	for _, item := range d.Items {
		if a, ok := catalog.Get(item.ActivityID); ok {
			total += a.DurationMinutes
		}
		total += item.TransportTimeMinutes
	}
	return total
}

// Cost returns the day's total cost including transport.
func (d *DayPlan) Cost(catalog *Catalog) float64 {
	total := 0.0
	for _, item := range d.Items {
		if a, ok := catalog.Get(item.ActivityID); ok {
			total += a.Cost
		}
		total += item.TransportCost
	}
	return total
}

// WalkingDistance sums the Haversine hops between consecutive located
// activities, in schedule order. Activities without a location are skipped.
func (d *DayPlan) WalkingDistance(catalog *Catalog) float64 {
	var prev *Location
	total := 0.0
	for _, item := range d.Items {
		a, ok := catalog.Get(item.ActivityID)
		if !ok || a.Location == nil {
			continue
		}
		if prev != nil {
			total += prev.DistanceTo(*a.Location)
		}
		prev = a.Location
	}
	return total
}

// Itinerary is a full candidate multi-day plan, the unit the search engine
// mutates, clones and ranks.
type Itinerary struct {
	Days         []DayPlan `json:"days"`
	FitnessScore float64   `json:"fitness_score"`
}

// TotalCost returns the plan-wide cost including transport.
func (it *Itinerary) TotalCost(catalog *Catalog) float64 {
	total := 0.0
	for i := range it.Days {
		total += it.Days[i].Cost(catalog)
	}
	return total
}

// AverageRating returns the mean rating over all scheduled activities, or 0
// when nothing is scheduled.
func (it *Itinerary) AverageRating(catalog *Catalog) float64 {
	sum := 0.0
	count := 0
	for i := range it.Days {
		for _, item := range it.Days[i].Items {
			if a, ok := catalog.Get(item.ActivityID); ok {
				sum += a.Rating
				count++
			}
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// TotalItems returns the number of scheduled items across all days.
func (it *Itinerary) TotalItems() int {
	n := 0
	for i := range it.Days {
		n += len(it.Days[i].Items)
	}
	return n
}

// ActivityIDs returns every scheduled activity ID in day and schedule order.
func (it *Itinerary) ActivityIDs() []string {
	ids := make([]string, 0, it.TotalItems())
	for i := range it.Days {
		for _, item := range it.Days[i].Items {
			ids = append(ids, item.ActivityID)
		}
	}
	return ids
}

// Clone returns a deep copy sharing no mutable state with the receiver.
func (it *Itinerary) Clone() *Itinerary {
	days := make([]DayPlan, len(it.Days))
	for i, day := range it.Days {
		items := make([]ItineraryItem, len(day.Items))
		copy(items, day.Items)
		days[i] = DayPlan{Date: day.Date, Items: items, Weather: day.Weather}
	}
	return &Itinerary{Days: days, FitnessScore: it.FitnessScore}
}
