package mapview

import (
	"fmt"
	"sync/atomic"

	"goldenthread/pkg/models"
)

// Bridge implements Surface and Panel by broadcasting map commands through
// the hub. Marker ids are assigned here ("m1", "m2", ...) so every
// connected client addresses the same marker the same way.
type Bridge struct {
	hub  *Hub
	next atomic.Int64
}

func NewBridge(hub *Hub) *Bridge {
	return &Bridge{hub: hub}
}

func (b *Bridge) AddMarker(m Marker) string {
	id := fmt.Sprintf("m%d", b.next.Add(1))
	b.hub.BroadcastJSON(MarkerAddCmd{Type: CmdMarkerAdd, MarkerID: id, Marker: m})
	return id
}

func (b *Bridge) ClearMarkers() {
	b.hub.BroadcastJSON(MarkerClearCmd{Type: CmdMarkerClear})
}

func (b *Bridge) RescaleIcons(size int) {
	b.hub.BroadcastJSON(MarkerRescaleCmd{Type: CmdMarkerRescale, IconSize: size})
}

func (b *Bridge) AnimateCameraTo(pos LatLng, zoom float64) {
	b.hub.BroadcastJSON(CameraAnimateCmd{Type: CmdCameraAnimate, Position: pos, Zoom: zoom})
}

func (b *Bridge) FitBounds(positions []LatLng, padding int) {
	b.hub.BroadcastJSON(CameraFitCmd{Type: CmdCameraFit, Positions: positions, Padding: padding})
}

func (b *Bridge) ShowPanel(views []models.LocationMarkerView) {
	b.hub.BroadcastJSON(PanelShowCmd{Type: CmdPanelShow, Views: views})
}

func (b *Bridge) HidePanel() {
	b.hub.BroadcastJSON(PanelHideCmd{Type: CmdPanelHide})
}
