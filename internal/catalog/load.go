package catalog

import (
	"io/fs"
	"log"
	"time"

	"goldenthread/internal/csvtab"
	"goldenthread/pkg/models"
)

// Files names the three catalog sheets inside the data directory.
type Files struct {
	Dramas    string
	Locations string
	Links     string
}

func DefaultFiles() Files {
	return Files{
		Dramas:    "dramas.csv",
		Locations: "locations.csv",
		Links:     "drama_locations.csv",
	}
}

// Snapshot is one complete, immutable catalog load: the three record sets
// plus the resolved marker groups. A reload produces a fresh Snapshot;
// nothing is patched in place.
type Snapshot struct {
	Dramas    []models.DramaRecord
	Locations []models.LocationRecord
	Links     []models.LinkRecord
	Groups    []models.MarkerGroup
	LoadedAt  time.Time
}

// Load reads and resolves the catalog from fsys. Each table is its own
// failure domain: an unreadable sheet logs and degrades to an empty record
// set, it never stops the other two from loading.
func Load(fsys fs.FS, files Files) *Snapshot {
	snap := &Snapshot{
		Dramas:    csvtab.DecodeDramas(readTable(fsys, files.Dramas, csvtab.Dramas)),
		Locations: csvtab.DecodeLocations(readTable(fsys, files.Locations, csvtab.Locations)),
		Links:     csvtab.DecodeLinks(readTable(fsys, files.Links, csvtab.Links)),
		LoadedAt:  time.Now().UTC(),
	}
	snap.Groups = Resolve(snap.Dramas, snap.Locations, snap.Links)
	log.Printf("[catalog] loaded %d dramas, %d locations, %d links -> %d markers",
		len(snap.Dramas), len(snap.Locations), len(snap.Links), len(snap.Groups))
	return snap
}

func readTable(fsys fs.FS, name string, table csvtab.Table) string {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		log.Printf("[catalog] %s: read %s failed, treating as empty table: %v", table, name, err)
		return ""
	}
	return string(b)
}
