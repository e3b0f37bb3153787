package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FACorreiaa/go-itinerary-planner/internal/types"
)

func poolCatalog() *types.Catalog {
	return types.NewCatalog([]types.TourismActivity{
		{ID: "cheap", Name: "Plaza Stroll", Cost: 0, Rating: 3.5, DurationMinutes: 60},
		{ID: "mid", Name: "City Museum", Cost: 20, Rating: 4.0, DurationMinutes: 120},
		{ID: "pricey", Name: "Catamaran Trip", Cost: 80, Rating: 4.8, DurationMinutes: 240},
	})
}

func TestUsedSet(t *testing.T) {
	used := NewUsedSet()
	assert.False(t, used.Contains("a"))

	used.Add("a")
	assert.True(t, used.Contains("a"))

	used.Remove("a")
	assert.False(t, used.Contains("a"))
}

func TestAvailable(t *testing.T) {
	catalog := poolCatalog()

	t.Run("filters used activities", func(t *testing.T) {
		used := NewUsedSet()
		used.Add("mid")
		ids := idsOf(Available(catalog, 0, used))
		assert.Equal(t, []string{"cheap", "pricey"}, ids)
	})

	t.Run("filters by budget ceiling", func(t *testing.T) {
		ids := idsOf(Available(catalog, 25, NewUsedSet()))
		assert.Equal(t, []string{"cheap", "mid"}, ids)
	})

	t.Run("zero budget means unlimited", func(t *testing.T) {
		ids := idsOf(Available(catalog, 0, NewUsedSet()))
		assert.Equal(t, []string{"cheap", "mid", "pricey"}, ids)
	})

	t.Run("preserves catalog order", func(t *testing.T) {
		ids := idsOf(Available(catalog, 0, NewUsedSet()))
		assert.Equal(t, []string{"cheap", "mid", "pricey"}, ids)
	})
}

func idsOf(activities []*types.TourismActivity) []string {
	ids := make([]string, 0, len(activities))
	for _, a := range activities {
		ids = append(ids, a.ID)
	}
	return ids
}
