package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"prestige/internal/model"
	"prestige/internal/repository"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type fakeUsers struct {
	user *model.User
}

func (f *fakeUsers) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	if f.user != nil && f.user.Email == email {
		return f.user, nil
	}
	return nil, repository.ErrNotFound
}

func newAuthRouter(users *fakeUsers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/auth/login", NewAuthHandler(users).Login)
	return router
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	users := &fakeUsers{user: &model.User{
		ID:       1,
		Email:    "admin@ambassadeur-prestige.com",
		Password: string(hash),
	}}
	router := newAuthRouter(users)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "unknown email",
			body:       `{"email":"nobody@example.com","password":"whatever"}`,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "wrong password",
			body:       `{"email":"admin@ambassadeur-prestige.com","password":"wrong"}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "correct credentials",
			body:       `{"email":"admin@ambassadeur-prestige.com","password":"correct-password"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing fields",
			body:       `{"email":"admin@ambassadeur-prestige.com"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("Expected status %d, got %d (body: %s)", tt.wantStatus, rec.Code, rec.Body.String())
			}
			if tt.wantStatus == http.StatusOK {
				if !strings.Contains(rec.Body.String(), users.user.Email) {
					t.Error("Successful login should echo the email")
				}
				if strings.Contains(rec.Body.String(), "password") {
					t.Error("Response body must not contain a password field")
				}
			}
		})
	}
}

func TestLogin_EmailNormalized(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	users := &fakeUsers{user: &model.User{Email: "admin@ambassadeur-prestige.com", Password: string(hash)}}
	router := newAuthRouter(users)

	req := httptest.NewRequest("POST", "/api/auth/login",
		strings.NewReader(`{"email":"  Admin@Ambassadeur-Prestige.com ","password":"pw"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected mixed-case email to log in, got %d", rec.Code)
	}
}
