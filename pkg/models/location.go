package models

// LocationRecord is one row of the locations table, immutable after loading.
// Latitude/longitude default to 0.0 when the sheet cell is empty or garbage;
// (0, 0) is the recognized "position unknown" sentinel, never a real site.
type LocationRecord struct {
	ID        string  `json:"id"`
	NameEn    string  `json:"name_en"`
	NameTh    string  `json:"name_th"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// HasPosition reports whether the location carries usable coordinates.
func (l LocationRecord) HasPosition() bool {
	return l.Latitude != 0.0 || l.Longitude != 0.0
}
