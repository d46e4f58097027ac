package models

// DramaRecord is one row of the dramas table, immutable after loading.
// The first four columns are always present; genre/duration/summary/poster
// only exist in the extended export of the sheet.
type DramaRecord struct {
	ID          string `json:"id"`
	TitleEn     string `json:"title_en"`
	TitleTh     string `json:"title_th"`
	ReleaseYear int    `json:"release_year"`
	Genre       string `json:"genre,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Summary     string `json:"summary,omitempty"`
	PosterURL   string `json:"poster_url,omitempty"`
}

// DisplayTitle prefers the English title and falls back to Thai,
// matching how the detail screen renders a drama heading.
func (d DramaRecord) DisplayTitle() string {
	if d.TitleEn != "" {
		return d.TitleEn
	}
	return d.TitleTh
}
