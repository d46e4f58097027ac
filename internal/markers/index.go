package markers

import (
	"math"

	"goldenthread/internal/mapview"
	"goldenthread/pkg/models"
)

// Icon sizing: 64px at the reference zoom 7, clamped to [32, 84].
const (
	baseIconSize  = 64
	referenceZoom = 7.0
	minIconSize   = 32
	maxIconSize   = 84

	// build-time icon size assumes a mid zoom; the first camera-idle
	// event corrects it.
	initialZoom = 10.0
)

// IconSizeForZoom maps a camera zoom level to a uniform marker icon size.
func IconSizeForZoom(zoom float64) int {
	size := int(math.Round(baseIconSize * zoom / referenceZoom))
	if size < minIconSize {
		return minIconSize
	}
	if size > maxIconSize {
		return maxIconSize
	}
	return size
}

// Entry ties one rendered marker to its resolved payload.
type Entry struct {
	MarkerID string
	Group    models.MarkerGroup
}

// Index is the authoritative mapping from rendered markers to resolved
// view data. Build replaces the whole set; nothing accumulates across
// catalog reloads. The index is owned by the interaction controller and
// mutated only through Build and RescaleForZoom.
type Index struct {
	surface    mapview.Surface
	entries    []Entry
	byMarker   map[string]int
	byLocation map[string]int
}

// Build clears the surface, renders one marker per group and fits the
// camera over the new set. Every group's Views payload is non-empty by
// construction of the join, so every marker is clickable.
func Build(surface mapview.Surface, groups []models.MarkerGroup) *Index {
	surface.ClearMarkers()

	idx := &Index{
		surface:    surface,
		entries:    make([]Entry, 0, len(groups)),
		byMarker:   make(map[string]int, len(groups)),
		byLocation: make(map[string]int, len(groups)),
	}

	size := IconSizeForZoom(initialZoom)
	positions := make([]mapview.LatLng, 0, len(groups))
	for _, g := range groups {
		pos := mapview.LatLng{Lat: g.Latitude, Lng: g.Longitude}
		id := surface.AddMarker(mapview.Marker{
			Position: pos,
			Title:    g.NameEn,
			Snippet:  g.Address,
			IconSize: size,
		})
		idx.byMarker[id] = len(idx.entries)
		idx.byLocation[g.LocationID] = len(idx.entries)
		idx.entries = append(idx.entries, Entry{MarkerID: id, Group: g})
		positions = append(positions, pos)
	}

	if len(positions) > 0 {
		surface.FitBounds(positions, 100)
	}
	return idx
}

func (idx *Index) Len() int {
	return len(idx.entries)
}

// ByMarker returns the payload attached to a rendered marker.
func (idx *Index) ByMarker(markerID string) (Entry, bool) {
	i, ok := idx.byMarker[markerID]
	if !ok {
		return Entry{}, false
	}
	return idx.entries[i], true
}

// ByLocation returns the marker rendered for a location id.
func (idx *Index) ByLocation(locationID string) (Entry, bool) {
	i, ok := idx.byLocation[locationID]
	if !ok {
		return Entry{}, false
	}
	return idx.entries[i], true
}

// RescaleForZoom recomputes the icon size for the reported zoom and
// applies it uniformly to all current markers.
func (idx *Index) RescaleForZoom(zoom float64) int {
	size := IconSizeForZoom(zoom)
	idx.surface.RescaleIcons(size)
	return size
}

// NextInItinerary finds the marker holding a view whose order_in_trip is
// exactly currentOrder+1. The second return is false when no such stop
// exists; that is a no-op for navigation, never an error.
func (idx *Index) NextInItinerary(currentOrder int) (Entry, bool) {
	want := currentOrder + 1
	for _, e := range idx.entries {
		for _, v := range e.Group.Views {
			if v.OrderInTrip == want {
				return e, true
			}
		}
	}
	return Entry{}, false
}
