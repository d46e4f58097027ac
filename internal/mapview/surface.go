package mapview

import "goldenthread/pkg/models"

// LatLng is a geographic position as the map surface understands it.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Marker describes a point for the surface to render. The surface assigns
// and returns the marker id; callers address the marker by that id from
// then on.
type Marker struct {
	Position LatLng `json:"position"`
	Title    string `json:"title"`
	Snippet  string `json:"snippet"`
	IconSize int    `json:"icon_size"`
}

// Surface is the externally-owned map: it renders markers, moves the
// camera and reports user gestures back. The service never does any
// projection math of its own.
type Surface interface {
	AddMarker(m Marker) string
	ClearMarkers()
	RescaleIcons(size int)
	AnimateCameraTo(pos LatLng, zoom float64)
	FitBounds(positions []LatLng, padding int)
}

// Panel is the externally-owned detail sheet below the map.
type Panel interface {
	ShowPanel(views []models.LocationMarkerView)
	HidePanel()
}

// EventHandler receives the surface's user gestures. Events arrive one at
// a time; the implementation serializes any rebuild they trigger.
type EventHandler interface {
	OnMarkerTapped(markerID string)
	OnBackgroundTapped()
	OnCameraIdle(zoom float64)
}
