package catalog

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Svc *Service

	// OnReload is notified with the fresh snapshot after POST /reload,
	// so the marker index and interaction state can rebuild.
	OnReload func(*Snapshot)
}

func NewHandler(svc *Service, onReload func(*Snapshot)) *Handler {
	return &Handler{Svc: svc, OnReload: onReload}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dramas", h.listDramas)       // GET /catalog/dramas
	rg.GET("/search", h.search)           // GET /catalog/search?q=...
	rg.GET("/dramas/:id", h.getDrama)     // GET /catalog/dramas/:id
	rg.GET("/locations", h.listLocations) // GET /catalog/locations
	rg.GET("/markers", h.listMarkers)     // GET /catalog/markers
	rg.POST("/reload", h.reload)          // POST /catalog/reload
}

func (h *Handler) listDramas(c *gin.Context) {
	q := ListQuery{
		Q:      c.Query("q"),
		Genre:  c.Query("genre"),
		Limit:  parseInt(c.Query("limit"), 20),
		Offset: parseInt(c.Query("offset"), 0),
	}

	items, total := h.Svc.Snapshot().ListDramas(q)
	c.JSON(http.StatusOK, gin.H{
		"total":  total,
		"limit":  q.Limit,
		"offset": q.Offset,
		"items":  items,
	})
}

func (h *Handler) getDrama(c *gin.Context) {
	d := h.Svc.Snapshot().DramaByID(strings.TrimSpace(c.Param("id")))
	if d == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, d)
}

// search returns the first drama matching the query, the behavior of
// pressing enter in the search box rather than browsing the dropdown.
func (h *Handler) search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q required"})
		return
	}
	d := h.Svc.Snapshot().FindDrama(q)
	if d == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no match"})
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *Handler) listLocations(c *gin.Context) {
	snap := h.Svc.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"total": len(snap.Locations),
		"items": snap.Locations,
	})
}

func (h *Handler) listMarkers(c *gin.Context) {
	snap := h.Svc.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"loaded_at": snap.LoadedAt,
		"total":     len(snap.Groups),
		"items":     snap.Groups,
	})
}

func (h *Handler) reload(c *gin.Context) {
	snap := h.Svc.Reload()
	if h.OnReload != nil {
		h.OnReload(snap)
	}
	c.JSON(http.StatusOK, gin.H{
		"loaded_at": snap.LoadedAt,
		"dramas":    len(snap.Dramas),
		"locations": len(snap.Locations),
		"links":     len(snap.Links),
		"markers":   len(snap.Groups),
	})
}

func parseInt(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
