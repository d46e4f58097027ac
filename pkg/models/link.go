package models

// LinkRecord associates one drama with one location, with per-visit trip
// metadata. The (drama, location) pair is not unique: a drama can revisit
// a location at a different itinerary position. Both foreign keys may
// dangle; resolution handles that, the record itself stays raw.
type LinkRecord struct {
	DramaID      string `json:"drama_id"`
	LocationID   string `json:"location_id"`
	SceneNotes   string `json:"scene_notes"`
	OrderInTrip  int    `json:"order_in_trip"`
	CarTravelMin int    `json:"car_travel_min"`
}
