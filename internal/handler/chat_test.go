package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"prestige/internal/model"
	"prestige/internal/service"

	"github.com/gin-gonic/gin"
)

type fakeHouseLister struct {
	houses []model.House
}

func (f *fakeHouseLister) ListActiveHouses(context.Context) ([]model.House, error) {
	return f.houses, nil
}

type fakeCompletion struct {
	reply string
	err   error
}

func (f *fakeCompletion) Complete(context.Context, []service.Message) (string, error) {
	return f.reply, f.err
}

func (f *fakeCompletion) IsEnabled() bool { return true }

func newChatRouter(lister *fakeHouseLister, completion *fakeCompletion) *gin.Engine {
	gin.SetMode(gin.TestMode)
	store := service.NewMemorySessionStore(time.Hour, 100)
	chat := service.NewChatService(lister, store, completion)
	router := gin.New()
	router.POST("/api/chat", NewChatHandler(chat).Chat)
	return router
}

func postChat(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestChat_MissingFields(t *testing.T) {
	router := newChatRouter(&fakeHouseLister{}, &fakeCompletion{reply: "hi"})

	tests := []struct {
		name string
		body string
	}{
		{name: "missing message", body: `{"sessionId":"s1"}`},
		{name: "missing sessionId", body: `{"message":"hello"}`},
		{name: "empty body", body: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postChat(router, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("Expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestChat_SuccessReturnsReplyAndSuggestions(t *testing.T) {
	lister := &fakeHouseLister{houses: []model.House{
		{ID: 1, Number: "1", State: model.StateActive, Type: "villa"},
		{ID: 10, Number: "10", State: model.StateActive, Type: "villa"},
	}}
	router := newChatRouter(lister, &fakeCompletion{reply: "Have a look at Unit 10."})

	rec := postChat(router, `{"message":"what do you have?","sessionId":"s1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d (body: %s)", rec.Code, rec.Body.String())
	}

	var resp model.ChatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Response != "Have a look at Unit 10." {
		t.Errorf("Unexpected reply: %q", resp.Response)
	}
	if len(resp.SuggestedHouses) != 1 || resp.SuggestedHouses[0].Number != "10" {
		t.Errorf("Expected only house 10 suggested, got %+v", resp.SuggestedHouses)
	}
}

func TestChat_UpstreamFailureIsGeneric(t *testing.T) {
	completion := &fakeCompletion{err: fmt.Errorf("%w: status 503", service.ErrUpstream)}
	router := newChatRouter(&fakeHouseLister{}, completion)

	rec := postChat(router, `{"message":"hello","sessionId":"s1"}`)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("Expected 502, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "503") {
		t.Error("Upstream detail must not leak into the response body")
	}
	if !strings.Contains(rec.Body.String(), "trouble connecting") {
		t.Errorf("Expected generic failure message, got: %s", rec.Body.String())
	}
}

func TestChat_NotConfigured(t *testing.T) {
	completion := &fakeCompletion{err: service.ErrChatNotConfigured}
	router := newChatRouter(&fakeHouseLister{}, completion)

	rec := postChat(router, `{"message":"hello","sessionId":"s1"}`)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("Expected 503, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "not configured") {
		t.Errorf("Expected configuration error message, got: %s", rec.Body.String())
	}
}
