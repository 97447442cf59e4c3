package service

import (
	"container/list"
	"context"
	"sync"
	"time"
)

// Message is one entry of a conversation transcript.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Conversation roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// SessionStore keeps transcripts keyed by an opaque client-supplied session id.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) ([]Message, bool, error)
	Set(ctx context.Context, sessionID string, transcript []Message) error
	Delete(ctx context.Context, sessionID string) error
}

type memoryEntry struct {
	sessionID  string
	transcript []Message
	lastSeen   time.Time
}

// MemorySessionStore is the default process-local backend. It is bounded: a
// session expires after TTL of inactivity, and once the session count exceeds
// the cap the least recently used one is evicted.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]*list.Element
	order    *list.List // front = most recently used
	ttl      time.Duration
	max      int
}

// NewMemorySessionStore creates a bounded in-memory store. max <= 0 means no
// session-count cap; ttl <= 0 means sessions never expire.
func NewMemorySessionStore(ttl time.Duration, max int) *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]*list.Element),
		order:    list.New(),
		ttl:      ttl,
		max:      max,
	}
}

// Get returns a copy of the stored transcript, refreshing recency.
func (s *MemorySessionStore) Get(_ context.Context, sessionID string) ([]Message, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	el, ok := s.sessions[sessionID]
	if !ok {
		return nil, false, nil
	}
	entry := el.Value.(*memoryEntry)
	if s.expired(entry) {
		s.remove(el)
		return nil, false, nil
	}

	entry.lastSeen = time.Now()
	s.order.MoveToFront(el)

	// Copy so the caller cannot mutate stored state without Set.
	transcript := make([]Message, len(entry.transcript))
	copy(transcript, entry.transcript)
	return transcript, true, nil
}

// Set stores the transcript, evicting expired and least recently used
// sessions as needed to stay within bounds.
func (s *MemorySessionStore) Set(_ context.Context, sessionID string, transcript []Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]Message, len(transcript))
	copy(stored, transcript)

	if el, ok := s.sessions[sessionID]; ok {
		entry := el.Value.(*memoryEntry)
		entry.transcript = stored
		entry.lastSeen = time.Now()
		s.order.MoveToFront(el)
		return nil
	}

	el := s.order.PushFront(&memoryEntry{
		sessionID:  sessionID,
		transcript: stored,
		lastSeen:   time.Now(),
	})
	s.sessions[sessionID] = el

	s.sweep()
	return nil
}

// Delete drops a session if present.
func (s *MemorySessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if el, ok := s.sessions[sessionID]; ok {
		s.remove(el)
	}
	return nil
}

// Len reports the number of live sessions.
func (s *MemorySessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *MemorySessionStore) expired(e *memoryEntry) bool {
	return s.ttl > 0 && time.Since(e.lastSeen) > s.ttl
}

// sweep drops expired sessions, then evicts from the LRU end until the count
// is back under the cap. Caller holds the lock.
func (s *MemorySessionStore) sweep() {
	for el := s.order.Back(); el != nil; {
		prev := el.Prev()
		if s.expired(el.Value.(*memoryEntry)) {
			s.remove(el)
		}
		el = prev
	}
	for s.max > 0 && len(s.sessions) > s.max {
		s.remove(s.order.Back())
	}
}

func (s *MemorySessionStore) remove(el *list.Element) {
	entry := el.Value.(*memoryEntry)
	s.order.Remove(el)
	delete(s.sessions, entry.sessionID)
}
