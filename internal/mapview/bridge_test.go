package mapview

import (
	"bufio"
	"encoding/json"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goldenthread/pkg/models"
)

// dialFeed starts the TCP feed on an ephemeral port and returns a
// connected observer with the welcome line already consumed.
func dialFeed(t *testing.T, hub *Hub) *bufio.Scanner {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			hub.Add(conn)
			hub.Welcome(conn)
		}
	}()
	t.Cleanup(func() { _ = ln.Close() })

	conn, err := net.Dial("tcp", ln.Addr().String())
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	sc := bufio.NewScanner(conn)
	require.True(t, sc.Scan(), "welcome line")

	// wait for the hub to register the client before broadcasting
	deadline := time.Now().Add(2 * time.Second)
	for hub.Count() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	require.NotZero(t, hub.Count())
	return sc
}

func readCmd(t *testing.T, sc *bufio.Scanner) map[string]any {
	t.Helper()
	require.True(t, sc.Scan(), "expected a command line")
	var m map[string]any
	require.NoError(t, json.Unmarshal(sc.Bytes(), &m))
	return m
}

func TestBridgeCommandStream(t *testing.T) {
	hub := NewHub()
	sc := dialFeed(t, hub)
	bridge := NewBridge(hub)

	id := bridge.AddMarker(Marker{
		Position: LatLng{Lat: 13.7, Lng: 100.5},
		Title:    "Wat Arun",
		Snippet:  "Bangkok",
		IconSize: 64,
	})
	assert.Equal(t, "m1", id)

	cmd := readCmd(t, sc)
	assert.Equal(t, CmdMarkerAdd, cmd["type"])
	assert.Equal(t, "m1", cmd["marker_id"])

	assert.Equal(t, "m2", bridge.AddMarker(Marker{}), "ids are sequential")
	readCmd(t, sc)

	bridge.AnimateCameraTo(LatLng{Lat: 1, Lng: 2}, 15)
	cmd = readCmd(t, sc)
	assert.Equal(t, CmdCameraAnimate, cmd["type"])
	assert.InDelta(t, 15.0, cmd["zoom"].(float64), 1e-9)

	bridge.FitBounds([]LatLng{{Lat: 1, Lng: 1}}, 100)
	cmd = readCmd(t, sc)
	assert.Equal(t, CmdCameraFit, cmd["type"])

	bridge.ShowPanel([]models.LocationMarkerView{{TitleEn: "Show A"}})
	cmd = readCmd(t, sc)
	assert.Equal(t, CmdPanelShow, cmd["type"])

	bridge.HidePanel()
	assert.Equal(t, CmdPanelHide, readCmd(t, sc)["type"])

	bridge.RescaleIcons(84)
	cmd = readCmd(t, sc)
	assert.Equal(t, CmdMarkerRescale, cmd["type"])
	assert.InDelta(t, 84, cmd["icon_size"].(float64), 1e-9)

	bridge.ClearMarkers()
	assert.Equal(t, CmdMarkerClear, readCmd(t, sc)["type"])
}

type recordedEvents struct {
	taps       []string
	background int
	idleZooms  []float64
}

func (r *recordedEvents) OnMarkerTapped(markerID string) { r.taps = append(r.taps, markerID) }
func (r *recordedEvents) OnBackgroundTapped()            { r.background++ }
func (r *recordedEvents) OnCameraIdle(zoom float64)      { r.idleZooms = append(r.idleZooms, zoom) }

func TestDispatchClientEvents(t *testing.T) {
	rec := &recordedEvents{}

	dispatch([]byte(`{"type":"marker.tap","marker_id":"m3"}`), rec)
	dispatch([]byte(`{"type":"map.tap"}`), rec)
	dispatch([]byte(`{"type":"camera.idle","zoom":11.5}`), rec)
	dispatch([]byte(`{"type":"something.else"}`), rec)
	dispatch([]byte(`not json`), rec)
	dispatch([]byte(`{"type":"marker.tap"}`), nil) // nil handler is safe

	assert.Equal(t, []string{"m3"}, rec.taps)
	assert.Equal(t, 1, rec.background)
	assert.Equal(t, []float64{11.5}, rec.idleZooms)
}
