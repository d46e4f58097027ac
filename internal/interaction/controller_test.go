package interaction

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goldenthread/internal/mapview"
	"goldenthread/pkg/models"
)

type cameraMove struct {
	pos  mapview.LatLng
	zoom float64
}

type fakeUI struct {
	markerIDs  []string
	clears     int
	rescales   []int
	animates   []cameraMove
	fits       int
	panelViews [][]models.LocationMarkerView
	panelHides int
}

func (f *fakeUI) AddMarker(m mapview.Marker) string {
	id := fmt.Sprintf("m%d", len(f.markerIDs)+1)
	f.markerIDs = append(f.markerIDs, id)
	return id
}

func (f *fakeUI) ClearMarkers() { f.clears++ }

func (f *fakeUI) RescaleIcons(size int) { f.rescales = append(f.rescales, size) }

func (f *fakeUI) AnimateCameraTo(pos mapview.LatLng, zoom float64) {
	f.animates = append(f.animates, cameraMove{pos, zoom})
}

func (f *fakeUI) FitBounds(positions []mapview.LatLng, padding int) { f.fits++ }

func (f *fakeUI) ShowPanel(views []models.LocationMarkerView) {
	f.panelViews = append(f.panelViews, views)
}

func (f *fakeUI) HidePanel() { f.panelHides++ }

func testGroups() []models.MarkerGroup {
	return []models.MarkerGroup{
		{
			LocationID: "L1", NameEn: "Pier", Latitude: 13.7, Longitude: 100.5,
			Views: []models.LocationMarkerView{
				{LocationID: "L1", TitleEn: "Show A", OrderInTrip: 1},
			},
		},
		{
			LocationID: "L2", NameEn: "Beach", Latitude: 12.9, Longitude: 100.8,
			Views: []models.LocationMarkerView{
				{LocationID: "L2", TitleEn: "Show B", OrderInTrip: 2},
			},
		},
	}
}

func TestControllerTapFlow(t *testing.T) {
	ui := &fakeUI{}
	ctrl := NewController(ui, ui)
	ctrl.MapReady(testGroups())
	require.Equal(t, Idle, ctrl.State())

	// tap the first marker
	ctrl.OnMarkerTapped(ui.markerIDs[0])
	assert.Equal(t, Selected, ctrl.State())
	require.Len(t, ui.panelViews, 1)
	assert.Equal(t, "Show A", ui.panelViews[0][0].TitleEn)
	require.Len(t, ui.animates, 1)
	assert.InDelta(t, 15.0, ui.animates[0].zoom, 1e-9)
	assert.InDelta(t, 13.7, ui.animates[0].pos.Lat, 1e-9)

	// tap a different marker: panel content replaced, camera re-centers
	ctrl.OnMarkerTapped(ui.markerIDs[1])
	assert.Equal(t, Selected, ctrl.State())
	require.Len(t, ui.panelViews, 2)
	assert.Equal(t, "Show B", ui.panelViews[1][0].TitleEn)
	assert.Len(t, ui.animates, 2)
}

func TestControllerBackgroundTap(t *testing.T) {
	ui := &fakeUI{}
	ctrl := NewController(ui, ui)
	ctrl.MapReady(testGroups())
	hidesAfterBuild := ui.panelHides
	animatesBefore := len(ui.animates)

	ctrl.OnMarkerTapped(ui.markerIDs[0])
	ctrl.OnBackgroundTapped()
	assert.Equal(t, PanelHidden, ctrl.State())
	assert.Equal(t, hidesAfterBuild+1, ui.panelHides)
	assert.Len(t, ui.animates, animatesBefore+1, "background tap moves no camera")

	// background tap while idle changes nothing
	ui2 := &fakeUI{}
	ctrl2 := NewController(ui2, ui2)
	ctrl2.MapReady(testGroups())
	ctrl2.OnBackgroundTapped()
	assert.Equal(t, Idle, ctrl2.State())
}

func TestControllerReloadResets(t *testing.T) {
	ui := &fakeUI{}
	ctrl := NewController(ui, ui)
	ctrl.MapReady(testGroups())
	ctrl.OnMarkerTapped(ui.markerIDs[0])
	require.Equal(t, Selected, ctrl.State())

	staleMarker := ui.markerIDs[0]
	ctrl.OnCatalogReloaded(testGroups()[:1])
	assert.Equal(t, Idle, ctrl.State())
	assert.Equal(t, 2, ui.clears, "reload clears the previous marker set")

	// a stale marker id from before the reload is ignored
	panelsBefore := len(ui.panelViews)
	ctrl.OnMarkerTapped(staleMarker + "-stale")
	assert.Len(t, ui.panelViews, panelsBefore)
}

func TestControllerDeferredUntilMapReady(t *testing.T) {
	ui := &fakeUI{}
	ctrl := NewController(ui, ui)

	// events before readiness are no-ops, not crashes
	ctrl.OnCatalogReloaded(testGroups())
	ctrl.OnMarkerTapped("m1")
	ctrl.OnBackgroundTapped()
	ctrl.OnCameraIdle(9)
	assert.Zero(t, ui.clears)
	assert.Empty(t, ui.markerIDs)

	ctrl.MapReady(testGroups())
	assert.Len(t, ui.markerIDs, 2)
}

func TestControllerCameraIdleRescales(t *testing.T) {
	ui := &fakeUI{}
	ctrl := NewController(ui, ui)
	ctrl.MapReady(testGroups())

	ctrl.OnCameraIdle(7)
	assert.Equal(t, []int{64}, ui.rescales)
}

func TestControllerGoToNextPoint(t *testing.T) {
	ui := &fakeUI{}
	ctrl := NewController(ui, ui)
	ctrl.MapReady(testGroups())

	require.True(t, ctrl.GoToNextPoint(1))
	require.Len(t, ui.animates, 1)
	assert.InDelta(t, 12.9, ui.animates[0].pos.Lat, 1e-9, "camera moves to the order 2 stop")

	assert.False(t, ctrl.GoToNextPoint(2), "no order 3 stop exists")
	assert.Len(t, ui.animates, 1)
}
