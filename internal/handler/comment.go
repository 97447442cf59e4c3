package handler

import (
	"net/http"
	"strconv"

	"prestige/internal/model"
	"prestige/internal/repository"

	"github.com/gin-gonic/gin"
)

// CommentHandler handles inquiry HTTP requests
type CommentHandler struct {
	repo *repository.PostgresRepository
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(repo *repository.PostgresRepository) *CommentHandler {
	return &CommentHandler{repo: repo}
}

// List handles GET /api/comments, newest first
func (h *CommentHandler) List(c *gin.Context) {
	comments, err := h.repo.ListComments(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// Create handles POST /api/comments. The date comes from the client and is
// stored as supplied. The house reference is only checked by the foreign key.
func (h *CommentHandler) Create(c *gin.Context) {
	var req model.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	comment, err := h.repo.CreateComment(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": comment})
}

// MarkSeen handles PUT /api/comments/mark-seen/:houseId
func (h *CommentHandler) MarkSeen(c *gin.Context) {
	houseID, err := strconv.ParseInt(c.Param("houseId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid house ID"})
		return
	}

	if err := h.repo.MarkCommentsSeenForHouse(c.Request.Context(), houseID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
