package mapview

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // OK for demo; restrict in production
	},
}

// WSHandler upgrades a UI client: it joins the command broadcast and its
// tap/idle gestures are dispatched to the event handler one at a time.
func WSHandler(hub *Hub, events EventHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}

		hub.AddWS(ws)
		log.Println("[mapview] ws client connected")

		_ = ws.WriteMessage(
			websocket.TextMessage,
			[]byte(`{"type":"welcome","transport":"websocket"}`+"\n"),
		)

		for {
			_, raw, err := ws.ReadMessage()
			if err != nil {
				break
			}
			dispatch(raw, events)
		}

		hub.RemoveWS(ws)
		log.Println("[mapview] ws client disconnected")
	}
}

func dispatch(raw []byte, events EventHandler) {
	if events == nil {
		return
	}
	var ev ClientEvent
	if err := json.Unmarshal(raw, &ev); err != nil {
		log.Printf("[mapview] bad client event: %v", err)
		return
	}
	switch ev.Type {
	case EvMarkerTap:
		events.OnMarkerTapped(ev.MarkerID)
	case EvMapTap:
		events.OnBackgroundTapped()
	case EvCameraIdle:
		events.OnCameraIdle(ev.Zoom)
	default:
		log.Printf("[mapview] ignoring client event type %q", ev.Type)
	}
}
