package handler

import (
	"net/http"

	"prestige/internal/repository"

	"github.com/gin-gonic/gin"
)

// VideoHandler serves the landing-page playlist
type VideoHandler struct {
	repo *repository.PostgresRepository
}

// NewVideoHandler creates a new video handler
func NewVideoHandler(repo *repository.PostgresRepository) *VideoHandler {
	return &VideoHandler{repo: repo}
}

// List handles GET /api/videos
func (h *VideoHandler) List(c *gin.Context) {
	videos, err := h.repo.ListVideos(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, videos)
}
