package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"goldenthread/internal/csvtab"
	"goldenthread/pkg/database"
)

func main() {
	var (
		dramasIn    = flag.String("dramas", "data/dramas.csv", "input CSV path for dramas")
		locationsIn = flag.String("locations", "data/locations.csv", "input CSV path for locations")
		linksIn     = flag.String("links", "data/drama_locations.csv", "input CSV path for drama-location links")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.MustOpen(database.DefaultConfig())
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	if err := importDramas(ctx, db, *dramasIn); err != nil {
		log.Fatalf("import dramas failed: %v", err)
	}
	if err := importLocations(ctx, db, *locationsIn); err != nil {
		log.Fatalf("import locations failed: %v", err)
	}
	if err := importLinks(ctx, db, *linksIn); err != nil {
		log.Fatalf("import links failed: %v", err)
	}

	log.Printf("imported %s, %s and %s", *dramasIn, *locationsIn, *linksIn)
}

func importDramas(ctx context.Context, db *sql.DB, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	records := csvtab.DecodeDramas(string(raw))

	stmt, err := db.PrepareContext(ctx, `
		INSERT INTO dramas (id, title_en, title_th, release_year, genre, duration, summary, poster_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
		  title_en = excluded.title_en,
		  title_th = excluded.title_th,
		  release_year = excluded.release_year,
		  genre = excluded.genre,
		  duration = excluded.duration,
		  summary = excluded.summary,
		  poster_url = excluded.poster_url
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, d := range records {
		if d.ID == "" {
			continue
		}
		if _, err := stmt.ExecContext(ctx,
			d.ID, d.TitleEn, d.TitleTh, d.ReleaseYear,
			d.Genre, d.Duration, d.Summary, d.PosterURL,
		); err != nil {
			return fmt.Errorf("upsert drama %s: %w", d.ID, err)
		}
	}
	log.Printf("[import] %d dramas", len(records))
	return nil
}

func importLocations(ctx context.Context, db *sql.DB, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	records := csvtab.DecodeLocations(string(raw))

	stmt, err := db.PrepareContext(ctx, `
		INSERT INTO locations (id, name_en, name_th, address, latitude, longitude)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
		  name_en = excluded.name_en,
		  name_th = excluded.name_th,
		  address = excluded.address,
		  latitude = excluded.latitude,
		  longitude = excluded.longitude
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, l := range records {
		if l.ID == "" {
			continue
		}
		if _, err := stmt.ExecContext(ctx,
			l.ID, l.NameEn, l.NameTh, l.Address, l.Latitude, l.Longitude,
		); err != nil {
			return fmt.Errorf("upsert location %s: %w", l.ID, err)
		}
	}
	log.Printf("[import] %d locations", len(records))
	return nil
}

func importLinks(ctx context.Context, db *sql.DB, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	records := csvtab.DecodeLinks(string(raw))

	// the link table has no natural key (a drama may revisit a location),
	// so imports replace the whole table
	if _, err := db.ExecContext(ctx, `DELETE FROM drama_locations`); err != nil {
		return fmt.Errorf("clear links: %w", err)
	}

	stmt, err := db.PrepareContext(ctx, `
		INSERT INTO drama_locations (drama_id, location_id, scene_notes, order_in_trip, car_travel_min)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, l := range records {
		if l.DramaID == "" || l.LocationID == "" {
			continue
		}
		if _, err := stmt.ExecContext(ctx,
			l.DramaID, l.LocationID, l.SceneNotes, l.OrderInTrip, l.CarTravelMin,
		); err != nil {
			return fmt.Errorf("insert link %s/%s: %w", l.DramaID, l.LocationID, err)
		}
	}
	log.Printf("[import] %d links", len(records))
	return nil
}
