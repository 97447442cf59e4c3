package service

import (
	"context"
	"strings"
	"sync"

	"prestige/internal/model"
)

// contextWindow is the maximum number of non-system messages forwarded to the
// completion API. The stored transcript itself is never truncated.
const contextWindow = 20

// HouseLister provides the active inventory for prompt building.
type HouseLister interface {
	ListActiveHouses(ctx context.Context) ([]model.House, error)
}

// ChatService orchestrates chat turns: session lookup, prompt refresh,
// completion call, and unit suggestion extraction.
type ChatService struct {
	houses HouseLister
	store  SessionStore
	client CompletionClient

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewChatService creates a new chat service
func NewChatService(houses HouseLister, store SessionStore, client CompletionClient) *ChatService {
	return &ChatService{
		houses: houses,
		store:  store,
		client: client,
		locks:  make(map[string]*sync.Mutex),
	}
}

// HandleTurn runs one chat round-trip for a session. Turns for the same
// session are serialized so concurrent requests cannot lose updates. On
// upstream failure the stored transcript is left untouched.
func (s *ChatService) HandleTurn(ctx context.Context, sessionID, userText string) (string, []model.House, error) {
	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	active, err := s.houses.ListActiveHouses(ctx)
	if err != nil {
		return "", nil, err
	}

	transcript, found, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return "", nil, err
	}

	// The system message always sits at position 0 and is rebuilt every turn
	// so the inventory is never stale by more than one round-trip.
	system := Message{Role: RoleSystem, Content: BuildPrompt(active)}
	if !found || len(transcript) == 0 {
		transcript = []Message{system}
	} else {
		transcript[0] = system
	}

	transcript = append(transcript, Message{Role: RoleUser, Content: userText})

	reply, err := s.client.Complete(ctx, effectiveContext(transcript))
	if err != nil {
		return "", nil, err
	}

	transcript = append(transcript, Message{Role: RoleAssistant, Content: reply})
	if err := s.store.Set(ctx, sessionID, transcript); err != nil {
		return "", nil, err
	}

	return reply, suggestHouses(reply, active), nil
}

// effectiveContext bounds what is forwarded upstream: the system message plus
// the last contextWindow non-system messages.
func effectiveContext(transcript []Message) []Message {
	if len(transcript) <= contextWindow+1 {
		return transcript
	}
	window := make([]Message, 0, contextWindow+1)
	window = append(window, transcript[0])
	window = append(window, transcript[len(transcript)-contextWindow:]...)
	return window
}

// suggestHouses collects the active houses whose display number appears in
// the reply. Matching is case-sensitive and token-bounded: an occurrence
// flanked by letters or digits does not count, so "Unit 10" suggests house
// "10" but not house "1".
func suggestHouses(reply string, active []model.House) []model.House {
	suggested := []model.House{}
	for _, h := range active {
		if h.Number != "" && containsToken(reply, h.Number) {
			suggested = append(suggested, h)
		}
	}
	return suggested
}

func containsToken(text, token string) bool {
	for start := 0; ; {
		i := strings.Index(text[start:], token)
		if i < 0 {
			return false
		}
		i += start
		end := i + len(token)
		if !alnumAt(text, i-1) && !alnumAt(text, end) {
			return true
		}
		start = i + 1
	}
}

func alnumAt(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return false
	}
	c := s[i]
	return c == '_' ||
		('0' <= c && c <= '9') ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z')
}

// sessionLock returns the mutex serializing turns for one session id.
func (s *ChatService) sessionLock(sessionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[sessionID] = lock
	}
	return lock
}
