package handler

import (
	"net/http"
	"strconv"

	"prestige/internal/repository"

	"github.com/gin-gonic/gin"
)

// ImageHandler handles the four image catalog read paths
type ImageHandler struct {
	repo *repository.PostgresRepository
}

// NewImageHandler creates a new image handler
func NewImageHandler(repo *repository.PostgresRepository) *ImageHandler {
	return &ImageHandler{repo: repo}
}

// ListHouseImages handles GET /api/house-images with an optional ?houseId=
// filter. The other three catalogs are not house-scoped.
func (h *ImageHandler) ListHouseImages(c *gin.Context) {
	var houseID *int64
	if raw := c.Query("houseId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid houseId"})
			return
		}
		houseID = &id
	}

	images, err := h.repo.ListHouseImages(c.Request.Context(), houseID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, images)
}

// ListRoomImages handles GET /api/room-images
func (h *ImageHandler) ListRoomImages(c *gin.Context) {
	images, err := h.repo.ListRoomImages(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, images)
}

// ListGalleryImages handles GET /api/gallery-images
func (h *ImageHandler) ListGalleryImages(c *gin.Context) {
	images, err := h.repo.ListGalleryImages(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, images)
}

// ListFloorPlanImages handles GET /api/floor-images
func (h *ImageHandler) ListFloorPlanImages(c *gin.Context) {
	images, err := h.repo.ListFloorPlanImages(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, images)
}
