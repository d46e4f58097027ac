package main

import (
	"context"
	"database/sql"
	"encoding/csv"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"goldenthread/pkg/database"
)

func main() {
	var (
		dramasOut    = flag.String("dramas", "data/dramas.csv", "output CSV path for dramas")
		locationsOut = flag.String("locations", "data/locations.csv", "output CSV path for locations")
		linksOut     = flag.String("links", "data/drama_locations.csv", "output CSV path for drama-location links")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.MustOpen(database.DefaultConfig())
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	if err := exportDramas(ctx, db, *dramasOut); err != nil {
		log.Fatalf("export dramas failed: %v", err)
	}
	if err := exportLocations(ctx, db, *locationsOut); err != nil {
		log.Fatalf("export locations failed: %v", err)
	}
	if err := exportLinks(ctx, db, *linksOut); err != nil {
		log.Fatalf("export links failed: %v", err)
	}

	log.Printf("exported %s, %s and %s", *dramasOut, *locationsOut, *linksOut)
}

func openWriter(outPath string) (*os.File, *csv.Writer, error) {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.Create(outPath)
	if err != nil {
		return nil, nil, err
	}
	return f, csv.NewWriter(f), nil
}

func exportDramas(ctx context.Context, db *sql.DB, outPath string) error {
	f, w, err := openWriter(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := w.Write([]string{"id", "title_en", "title_th", "release_year", "genre", "duration", "summary", "poster_url"}); err != nil {
		return err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, title_en, title_th, release_year, genre, duration, summary, poster_url
		FROM dramas
		ORDER BY id
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, titleEn              string
			titleTh, genre, duration sql.NullString
			summary, posterURL       sql.NullString
			year                     sql.NullInt64
		)
		if err := rows.Scan(&id, &titleEn, &titleTh, &year, &genre, &duration, &summary, &posterURL); err != nil {
			return err
		}

		yearStr := ""
		if year.Valid {
			yearStr = strconv.FormatInt(year.Int64, 10)
		}
		if err := w.Write([]string{
			id, titleEn, titleTh.String, yearStr,
			genre.String, duration.String, summary.String, posterURL.String,
		}); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	w.Flush()
	return w.Error()
}

func exportLocations(ctx context.Context, db *sql.DB, outPath string) error {
	f, w, err := openWriter(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := w.Write([]string{"id", "name_en", "name_th", "address", "latitude", "longitude"}); err != nil {
		return err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, name_en, name_th, address, latitude, longitude
		FROM locations
		ORDER BY id
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, nameEn      string
			nameTh, address sql.NullString
			lat, lng        float64
		)
		if err := rows.Scan(&id, &nameEn, &nameTh, &address, &lat, &lng); err != nil {
			return err
		}
		if err := w.Write([]string{
			id, nameEn, nameTh.String, address.String,
			strconv.FormatFloat(lat, 'f', -1, 64),
			strconv.FormatFloat(lng, 'f', -1, 64),
		}); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	w.Flush()
	return w.Error()
}

func exportLinks(ctx context.Context, db *sql.DB, outPath string) error {
	f, w, err := openWriter(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := w.Write([]string{"drama_id", "location_id", "scene_notes", "order_in_trip", "car_travel_min"}); err != nil {
		return err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT drama_id, location_id, scene_notes, order_in_trip, car_travel_min
		FROM drama_locations
		ORDER BY drama_id, order_in_trip
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			dramaID, locationID string
			notes               sql.NullString
			order, travel       int
		)
		if err := rows.Scan(&dramaID, &locationID, &notes, &order, &travel); err != nil {
			return err
		}
		if err := w.Write([]string{
			dramaID, locationID, notes.String,
			strconv.Itoa(order), strconv.Itoa(travel),
		}); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	w.Flush()
	return w.Error()
}
