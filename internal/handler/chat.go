package handler

import (
	"net/http"

	"prestige/internal/model"
	"prestige/internal/service"

	"github.com/gin-gonic/gin"
)

// ChatHandler handles the prospect chat endpoint
type ChatHandler struct {
	chat *service.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chat *service.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// Chat handles POST /api/chat. Both message and sessionId are required.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Both message and sessionId are required"})
		return
	}

	reply, suggested, err := h.chat.HandleTurn(c.Request.Context(), req.SessionID, req.Message)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.ChatResponse{
		Response:        reply,
		SuggestedHouses: suggested,
	})
}
