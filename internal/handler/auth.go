package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"prestige/internal/model"
	"prestige/internal/repository"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// UserGetter looks up admin accounts by email.
type UserGetter interface {
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

// AuthHandler handles admin authentication
type AuthHandler struct {
	users UserGetter
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(users UserGetter) *AuthHandler {
	return &AuthHandler{users: users}
}

// Login handles POST /api/auth/login. Unknown email is 404, password
// mismatch is 401; the response never carries the password field.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	user, err := h.users.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Email not found"})
			return
		}
		writeError(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Incorrect password"})
		return
	}

	c.JSON(http.StatusOK, model.LoginResponse{
		Success: true,
		Message: "Login successful",
		Email:   user.Email,
	})
}
