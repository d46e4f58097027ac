package catalog

import (
	"strings"

	"goldenthread/pkg/models"
)

// ListQuery filters the drama catalog the way the explore screen does:
// keyword search over both titles, any-match genre tag, and paging.
type ListQuery struct {
	Q      string
	Genre  string
	Limit  int
	Offset int
}

// DramaByID returns the drama or nil.
func (s *Snapshot) DramaByID(id string) *models.DramaRecord {
	for i := range s.Dramas {
		if s.Dramas[i].ID == id {
			return &s.Dramas[i]
		}
	}
	return nil
}

// ListDramas applies q against the snapshot and returns the page plus the
// total match count. Catalog order is preserved, so an empty query's first
// entries are the "popular" shelf.
func (s *Snapshot) ListDramas(q ListQuery) ([]models.DramaRecord, int) {
	limit := q.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := q.Offset
	if offset < 0 {
		offset = 0
	}

	var matched []models.DramaRecord
	for _, d := range s.Dramas {
		if !matchesQuery(d, q.Q) || !matchesGenre(d, q.Genre) {
			continue
		}
		matched = append(matched, d)
	}

	total := len(matched)
	if offset >= total {
		return []models.DramaRecord{}, total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matched[offset:end], total
}

// FindDrama returns the first drama whose English or Thai title contains
// the query, the behavior of pressing enter in the search box.
func (s *Snapshot) FindDrama(query string) *models.DramaRecord {
	for i, d := range s.Dramas {
		if matchesQuery(d, query) && strings.TrimSpace(query) != "" {
			return &s.Dramas[i]
		}
	}
	return nil
}

func matchesQuery(d models.DramaRecord, q string) bool {
	q = strings.TrimSpace(q)
	if q == "" {
		return true
	}
	q = strings.ToLower(q)
	return strings.Contains(strings.ToLower(d.TitleEn), q) ||
		strings.Contains(strings.ToLower(d.TitleTh), q)
}

// matchesGenre is an any-match contains test against the free-text genre
// tags, so "BL" matches "Romance, BL" and "drama" matches "Drama".
func matchesGenre(d models.DramaRecord, genre string) bool {
	genre = strings.TrimSpace(genre)
	if genre == "" {
		return true
	}
	return strings.Contains(strings.ToLower(d.Genre), strings.ToLower(genre))
}
