package csvtab

import (
	"bufio"
	"log"
	"strconv"
	"strings"

	"goldenthread/pkg/models"
)

// Table identifies one of the three catalog sheets.
type Table int

const (
	Dramas Table = iota
	Locations
	Links
)

func (t Table) String() string {
	switch t {
	case Dramas:
		return "dramas"
	case Locations:
		return "locations"
	case Links:
		return "drama_locations"
	default:
		return "unknown"
	}
}

// MinFields is the column count a row must reach to be usable at all.
// Shorter rows are skipped, never fatal.
func (t Table) MinFields() int {
	switch t {
	case Dramas:
		return 4
	case Locations:
		return 6
	case Links:
		return 5
	default:
		return 0
	}
}

// DecodeDramas parses the dramas sheet. Columns 0-3 (id, titleEn, titleTh,
// year) are required; genre, duration, summary and poster URL only exist
// in the extended export and stay empty when absent.
func DecodeDramas(raw string) []models.DramaRecord {
	var out []models.DramaRecord
	forEachRow(Dramas, raw, func(fields []string) {
		out = append(out, models.DramaRecord{
			ID:          fields[0],
			TitleEn:     fields[1],
			TitleTh:     fields[2],
			ReleaseYear: atoiDefault(fields[3]),
			Genre:       fieldAt(fields, 4),
			Duration:    fieldAt(fields, 5),
			Summary:     fieldAt(fields, 6),
			PosterURL:   fieldAt(fields, 7),
		})
	})
	return out
}

// DecodeLocations parses the locations sheet. Coordinates that fail to
// parse default to 0.0, the "position unknown" sentinel.
func DecodeLocations(raw string) []models.LocationRecord {
	var out []models.LocationRecord
	forEachRow(Locations, raw, func(fields []string) {
		out = append(out, models.LocationRecord{
			ID:        fields[0],
			NameEn:    fields[1],
			NameTh:    fields[2],
			Address:   fields[3],
			Latitude:  parseFloatDefault(fields[4]),
			Longitude: parseFloatDefault(fields[5]),
		})
	})
	return out
}

// DecodeLinks parses the drama↔location sheet. Order and travel minutes
// default to 0 on bad input rather than dropping the row.
func DecodeLinks(raw string) []models.LinkRecord {
	var out []models.LinkRecord
	forEachRow(Links, raw, func(fields []string) {
		out = append(out, models.LinkRecord{
			DramaID:      fields[0],
			LocationID:   fields[1],
			SceneNotes:   fields[2],
			OrderInTrip:  atoiDefault(fields[3]),
			CarTravelMin: atoiDefault(fields[4]),
		})
	})
	return out
}

// forEachRow walks the sheet line by line: one header line skipped, blank
// lines skipped, rows below the table's minimum column count logged and
// skipped. Rows that survive are handed to fn with at least MinFields
// fields.
func forEachRow(table Table, raw string, fn func(fields []string)) {
	sc := bufio.NewScanner(strings.NewReader(raw))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	header := true
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if header {
			header = false
			continue
		}
		fields := SplitLine(text)
		if len(fields) == 0 {
			continue
		}
		if len(fields) < table.MinFields() {
			log.Printf("[csvtab] %s: skipping line %d: %d fields, need %d",
				table, line, len(fields), table.MinFields())
			continue
		}
		fn(fields)
	}
}

func fieldAt(fields []string, i int) string {
	if i >= len(fields) {
		return ""
	}
	return fields[i]
}

func atoiDefault(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func parseFloatDefault(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0.0
	}
	return f
}
