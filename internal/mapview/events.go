package mapview

import "goldenthread/pkg/models"

// Outbound command stream, one JSON object per message. UI clients apply
// these against their local map and panel widgets.
const (
	CmdMarkerAdd     = "marker.add"
	CmdMarkerClear   = "marker.clear"
	CmdMarkerRescale = "marker.rescale"
	CmdCameraAnimate = "camera.animate"
	CmdCameraFit     = "camera.fit"
	CmdPanelShow     = "panel.show"
	CmdPanelHide     = "panel.hide"
)

type MarkerAddCmd struct {
	Type     string `json:"type"`
	MarkerID string `json:"marker_id"`
	Marker   Marker `json:"marker"`
}

type MarkerClearCmd struct {
	Type string `json:"type"`
}

type MarkerRescaleCmd struct {
	Type     string `json:"type"`
	IconSize int    `json:"icon_size"`
}

type CameraAnimateCmd struct {
	Type     string  `json:"type"`
	Position LatLng  `json:"position"`
	Zoom     float64 `json:"zoom"`
}

type CameraFitCmd struct {
	Type      string   `json:"type"`
	Positions []LatLng `json:"positions"`
	Padding   int      `json:"padding"`
}

type PanelShowCmd struct {
	Type  string                      `json:"type"`
	Views []models.LocationMarkerView `json:"views"`
}

type PanelHideCmd struct {
	Type string `json:"type"`
}

// Inbound gestures from UI clients.
const (
	EvMarkerTap  = "marker.tap"
	EvMapTap     = "map.tap"
	EvCameraIdle = "camera.idle"
)

type ClientEvent struct {
	Type     string  `json:"type"`
	MarkerID string  `json:"marker_id,omitempty"`
	Zoom     float64 `json:"zoom,omitempty"`
}
