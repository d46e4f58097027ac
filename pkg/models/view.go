package models

// Sentinel texts substituted by the join when a reference cannot resolve.
const (
	UnknownDramaTitle = "Unknown Drama"
	NoDramaTitle      = "No associated drama"
)

// LocationMarkerView is the denormalized join of one location with one
// drama visit. It is derived, never persisted: a catalog reload rebuilds
// every view from scratch.
type LocationMarkerView struct {
	LocationID   string  `json:"location_id"`
	NameEn       string  `json:"name_en"`
	NameTh       string  `json:"name_th"`
	Address      string  `json:"address"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	DramaID      string  `json:"drama_id,omitempty"`
	TitleEn      string  `json:"title_en"`
	TitleTh      string  `json:"title_th,omitempty"`
	ReleaseYear  int     `json:"release_year,omitempty"`
	SceneNotes   string  `json:"scene_notes,omitempty"`
	OrderInTrip  int     `json:"order_in_trip"`
	CarTravelMin int     `json:"car_travel_min"`
}

// MarkerGroup is everything attached to a single map marker: one location
// and its resolved views. Views is never empty; a location without links
// carries the NoDramaTitle sentinel view instead.
type MarkerGroup struct {
	LocationID string               `json:"location_id"`
	NameEn     string               `json:"name_en"`
	NameTh     string               `json:"name_th"`
	Address    string               `json:"address"`
	Latitude   float64              `json:"latitude"`
	Longitude  float64              `json:"longitude"`
	Views      []LocationMarkerView `json:"views"`
}
