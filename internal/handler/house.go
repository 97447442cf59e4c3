package handler

import (
	"net/http"
	"strconv"

	"prestige/internal/model"
	"prestige/internal/repository"

	"github.com/gin-gonic/gin"
)

// HouseHandler handles house inventory HTTP requests
type HouseHandler struct {
	repo *repository.PostgresRepository
}

// NewHouseHandler creates a new house handler
func NewHouseHandler(repo *repository.PostgresRepository) *HouseHandler {
	return &HouseHandler{repo: repo}
}

// List handles GET /api/houses
func (h *HouseHandler) List(c *gin.Context) {
	houses, err := h.repo.ListHouses(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, houses)
}

// SetState handles PUT /api/houses/:id. The update is unconditional: a
// nonexistent id affects zero rows and still reports success, and the state
// value is stored as opaque text.
func (h *HouseHandler) SetState(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid house ID"})
		return
	}

	var req model.UpdateHouseStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.repo.SetHouseState(c.Request.Context(), id, req.State); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
