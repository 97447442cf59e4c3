package handler

import (
	"errors"
	"log"
	"net/http"

	"prestige/internal/repository"
	"prestige/internal/service"

	"github.com/gin-gonic/gin"
)

// writeError translates a service/repository error into an HTTP status and a
// generic JSON body. Internal detail goes to the server log only.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, repository.ErrIntegrity):
		log.Printf("integrity error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database constraint violation"})
	case errors.Is(err, service.ErrChatNotConfigured):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Chat is not configured on this server"})
	case errors.Is(err, service.ErrUpstream), errors.Is(err, service.ErrMalformedResponse):
		log.Printf("upstream error: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "We're having trouble connecting right now, please try again later"})
	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service temporarily unavailable"})
	}
}
