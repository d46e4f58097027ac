package interaction

import (
	"log"
	"sync"

	"goldenthread/internal/mapview"
	"goldenthread/internal/markers"
	"goldenthread/pkg/models"
)

// selectedZoom is the close-in zoom used whenever the camera centers on a
// tapped or navigated-to marker.
const selectedZoom = 15.0

// Controller owns the marker index and drives the surface and panel in
// response to map events. The host delivers events serially; the mutex
// exists so a reentrant or concurrent delivery cannot interleave with a
// rebuild, it is not a throughput device.
type Controller struct {
	mu      sync.Mutex
	surface mapview.Surface
	panel   mapview.Panel
	machine Machine
	index   *markers.Index
	ready   bool
}

func NewController(surface mapview.Surface, panel mapview.Panel) *Controller {
	return &Controller{surface: surface, panel: panel}
}

// MapReady marks the surface usable and performs the initial marker
// build. Until this is called, builds are deferred: events log and no-op.
func (c *Controller) MapReady(groups []models.MarkerGroup) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ready = true
	c.rebuildLocked(groups)
}

// OnCatalogReloaded discards all markers and panel content and rebuilds
// from the fresh groups. Any state returns to Idle.
func (c *Controller) OnCatalogReloaded(groups []models.MarkerGroup) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ready {
		log.Println("[interaction] map not ready, deferring marker build")
		return
	}
	c.rebuildLocked(groups)
}

func (c *Controller) rebuildLocked(groups []models.MarkerGroup) {
	c.machine.Apply(CatalogReloaded)
	c.panel.HidePanel()
	c.index = markers.Build(c.surface, groups)
	log.Printf("[interaction] built %d markers, state %s", c.index.Len(), c.machine.State())
}

// OnMarkerTapped pushes the marker's payload to the panel and animates
// the camera onto it. Unknown marker ids (stale clients racing a reload)
// are ignored.
func (c *Controller) OnMarkerTapped(markerID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.index == nil {
		log.Println("[interaction] marker tap before map ready, ignoring")
		return
	}
	entry, ok := c.index.ByMarker(markerID)
	if !ok {
		log.Printf("[interaction] tap on unknown marker %q, ignoring", markerID)
		return
	}

	c.machine.Apply(MarkerTapped)
	c.panel.ShowPanel(entry.Group.Views)
	c.surface.AnimateCameraTo(
		mapview.LatLng{Lat: entry.Group.Latitude, Lng: entry.Group.Longitude},
		selectedZoom,
	)
}

// OnBackgroundTapped hides the panel. The camera stays put.
func (c *Controller) OnBackgroundTapped() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.machine.Apply(BackgroundTapped) == PanelHidden {
		c.panel.HidePanel()
	}
}

// OnCameraIdle rescales all marker icons for the reported zoom.
func (c *Controller) OnCameraIdle(zoom float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.index == nil {
		return
	}
	c.index.RescaleForZoom(zoom)
}

// GoToNextPoint animates the camera to the marker holding the itinerary
// stop after currentOrder. Returns false (and does nothing) when the
// itinerary has no such stop.
func (c *Controller) GoToNextPoint(currentOrder int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.index == nil {
		return false
	}
	entry, ok := c.index.NextInItinerary(currentOrder)
	if !ok {
		return false
	}
	c.surface.AnimateCameraTo(
		mapview.LatLng{Lat: entry.Group.Latitude, Lng: entry.Group.Longitude},
		selectedZoom,
	)
	return true
}

// State reports the machine's current state for panel-visibility binding.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.machine.State()
}
