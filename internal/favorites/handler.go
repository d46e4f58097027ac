package favorites

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"goldenthread/internal/auth"
	"goldenthread/internal/catalog"
	"goldenthread/pkg/models"
)

type Handler struct {
	Store   Store
	Catalog *catalog.Service
}

func NewHandler(store Store, cat *catalog.Service) *Handler {
	return &Handler{Store: store, Catalog: cat}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/favorites", h.list)
	rg.GET("/favorites/:drama_id", h.getOne)
	rg.PUT("/favorites/:drama_id", h.add)
	rg.DELETE("/favorites/:drama_id", h.remove)
}

type favoriteItem struct {
	Favorite
	Drama *models.DramaRecord `json:"drama,omitempty"`
}

func (h *Handler) list(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	favs, err := h.Store.List(c.Request.Context(), claims.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}

	// enrich with catalog metadata; a favorite whose drama fell out of the
	// catalog still lists, just without the drama block
	snap := h.Catalog.Snapshot()
	items := make([]favoriteItem, 0, len(favs))
	for _, f := range favs {
		items = append(items, favoriteItem{
			Favorite: f,
			Drama:    snap.DramaByID(f.DramaID),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"total": len(items),
		"items": items,
	})
}

func (h *Handler) getOne(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	dramaID := strings.TrimSpace(c.Param("drama_id"))
	fav, err := h.Store.IsFavorite(c.Request.Context(), claims.UserID, dramaID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"drama_id": dramaID, "favorite": fav})
}

func (h *Handler) add(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	dramaID := strings.TrimSpace(c.Param("drama_id"))
	if dramaID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "drama_id required"})
		return
	}
	if h.Catalog.Snapshot().DramaByID(dramaID) == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown drama"})
		return
	}

	if err := h.Store.Add(c.Request.Context(), claims.UserID, dramaID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"drama_id": dramaID, "favorite": true})
}

func (h *Handler) remove(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	dramaID := strings.TrimSpace(c.Param("drama_id"))
	ok, err := h.Store.Remove(c.Request.Context(), claims.UserID, dramaID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"drama_id": dramaID, "favorite": false})
}
