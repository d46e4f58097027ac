package interaction

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// Handler exposes the controller to the UI layer: current state for panel
// binding, and the "go to next point" button.
type Handler struct {
	Ctrl *Controller
}

func NewHandler(ctrl *Controller) *Handler {
	return &Handler{Ctrl: ctrl}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/state", h.state)           // GET /interaction/state
	rg.POST("/next-point", h.nextPoint) // POST /interaction/next-point?order=N
}

func (h *Handler) state(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"state": h.Ctrl.State().String()})
}

func (h *Handler) nextPoint(c *gin.Context) {
	raw := strings.TrimSpace(c.Query("order"))
	order, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order must be an integer"})
		return
	}

	if !h.Ctrl.GoToNextPoint(order) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no next point"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "camera moving", "from_order": order})
}
