package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goldenthread/pkg/models"
)

func TestResolveEndToEnd(t *testing.T) {
	dramas := []models.DramaRecord{{ID: "D1", TitleEn: "Show A"}}
	locations := []models.LocationRecord{{ID: "L1", NameEn: "Pier", Latitude: 13.7, Longitude: 100.5}}
	links := []models.LinkRecord{{DramaID: "D1", LocationID: "L1", OrderInTrip: 1, CarTravelMin: 10}}

	groups := Resolve(dramas, locations, links)
	require.Len(t, groups, 1)
	assert.InDelta(t, 13.7, groups[0].Latitude, 1e-9)
	assert.InDelta(t, 100.5, groups[0].Longitude, 1e-9)

	require.Len(t, groups[0].Views, 1)
	v := groups[0].Views[0]
	assert.Equal(t, "Show A", v.TitleEn)
	assert.Equal(t, 1, v.OrderInTrip)
	assert.Equal(t, 10, v.CarTravelMin)
}

func TestResolveSentinelCoordinatesSuppressed(t *testing.T) {
	locations := []models.LocationRecord{
		{ID: "L1", NameEn: "Hidden"}, // lat/lng both zero
		{ID: "L2", NameEn: "Shown", Latitude: 12.9},
	}
	// even a valid link can't resurrect a sentinel-position location
	links := []models.LinkRecord{{DramaID: "D1", LocationID: "L1", OrderInTrip: 1}}

	groups := Resolve(nil, locations, links)
	require.Len(t, groups, 1)
	assert.Equal(t, "L2", groups[0].LocationID)
}

func TestResolveDanglingDramaReference(t *testing.T) {
	locations := []models.LocationRecord{{ID: "L1", NameEn: "Set", Latitude: 1, Longitude: 1}}
	links := []models.LinkRecord{{DramaID: "D404", LocationID: "L1", SceneNotes: "warehouse scene", OrderInTrip: 2}}

	groups := Resolve(nil, locations, links)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Views, 1)

	v := groups[0].Views[0]
	assert.Equal(t, models.UnknownDramaTitle, v.TitleEn)
	assert.Empty(t, v.TitleTh)
	assert.Empty(t, v.DramaID)
	assert.Zero(t, v.ReleaseYear)
	// location and scene fields survive the dangling reference
	assert.Equal(t, "Set", v.NameEn)
	assert.Equal(t, "warehouse scene", v.SceneNotes)
	assert.Equal(t, 2, v.OrderInTrip)
}

func TestResolveLocationWithoutLinks(t *testing.T) {
	locations := []models.LocationRecord{{ID: "L1", NameEn: "Quiet", Latitude: 5, Longitude: 5}}

	groups := Resolve(nil, locations, nil)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Views, 1, "payload must never be empty")
	assert.Equal(t, models.NoDramaTitle, groups[0].Views[0].TitleEn)
}

func TestResolveLinkToUnknownLocation(t *testing.T) {
	// links don't create markers, locations do
	links := []models.LinkRecord{{DramaID: "D1", LocationID: "L404", OrderInTrip: 1}}
	groups := Resolve(nil, nil, links)
	assert.Empty(t, groups)
}

func TestResolveOrdersViewsWithinGroup(t *testing.T) {
	dramas := []models.DramaRecord{
		{ID: "D1", TitleEn: "First"},
		{ID: "D2", TitleEn: "Second"},
	}
	locations := []models.LocationRecord{{ID: "L1", Latitude: 1, Longitude: 1}}
	links := []models.LinkRecord{
		{DramaID: "D2", LocationID: "L1", OrderInTrip: 3},
		{DramaID: "D1", LocationID: "L1", OrderInTrip: 1},
		{DramaID: "D1", LocationID: "L1", OrderInTrip: 2},
	}

	groups := Resolve(dramas, locations, links)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Views, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{
		groups[0].Views[0].OrderInTrip,
		groups[0].Views[1].OrderInTrip,
		groups[0].Views[2].OrderInTrip,
	})
}

func TestResolveKeepsLocationOrder(t *testing.T) {
	locations := []models.LocationRecord{
		{ID: "L3", Latitude: 3, Longitude: 3},
		{ID: "L1", Latitude: 1, Longitude: 1},
		{ID: "L2", Latitude: 2, Longitude: 2},
	}
	groups := Resolve(nil, locations, nil)
	require.Len(t, groups, 3)
	assert.Equal(t, "L3", groups[0].LocationID)
	assert.Equal(t, "L1", groups[1].LocationID)
	assert.Equal(t, "L2", groups[2].LocationID)
}

func TestResolveKeysAreCaseSensitive(t *testing.T) {
	dramas := []models.DramaRecord{{ID: "d1", TitleEn: "Lowercase"}}
	locations := []models.LocationRecord{{ID: "L1", Latitude: 1, Longitude: 1}}
	links := []models.LinkRecord{{DramaID: "D1", LocationID: "L1", OrderInTrip: 1}}

	groups := Resolve(dramas, locations, links)
	require.Len(t, groups, 1)
	assert.Equal(t, models.UnknownDramaTitle, groups[0].Views[0].TitleEn)
}
