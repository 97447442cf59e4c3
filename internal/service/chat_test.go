package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"prestige/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLister struct {
	houses []model.House
	err    error
}

func (f *fakeLister) ListActiveHouses(context.Context) ([]model.House, error) {
	return f.houses, f.err
}

type fakeCompleter struct {
	mu       sync.Mutex
	reply    string
	err      error
	received [][]Message
}

func (f *fakeCompleter) Complete(_ context.Context, messages []Message) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := make([]Message, len(messages))
	copy(copied, messages)
	f.received = append(f.received, copied)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeCompleter) IsEnabled() bool { return true }

func (f *fakeCompleter) lastContext() []Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.received) == 0 {
		return nil
	}
	return f.received[len(f.received)-1]
}

func newTestChat(lister *fakeLister, completer *fakeCompleter) (*ChatService, *MemorySessionStore) {
	store := NewMemorySessionStore(time.Hour, 100)
	return NewChatService(lister, store, completer), store
}

func TestHandleTurn_FirstTurnSeedsTranscript(t *testing.T) {
	lister := &fakeLister{houses: []model.House{{Number: "2", Type: "villa"}}}
	completer := &fakeCompleter{reply: "Bonjour!"}
	svc, store := newTestChat(lister, completer)

	reply, _, err := svc.HandleTurn(context.Background(), "s1", "hello")
	require.NoError(t, err)
	assert.Equal(t, "Bonjour!", reply)

	transcript, found, err := store.Get(context.Background(), "s1")
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, transcript, 3)
	assert.Equal(t, RoleSystem, transcript[0].Role)
	assert.Equal(t, BuildPrompt(lister.houses), transcript[0].Content)
	assert.Equal(t, Message{Role: RoleUser, Content: "hello"}, transcript[1])
	assert.Equal(t, Message{Role: RoleAssistant, Content: "Bonjour!"}, transcript[2])
}

func TestHandleTurn_SecondTurnRefreshesSystemMessage(t *testing.T) {
	lister := &fakeLister{houses: []model.House{{Number: "2", Type: "villa"}}}
	completer := &fakeCompleter{reply: "ok"}
	svc, store := newTestChat(lister, completer)

	_, _, err := svc.HandleTurn(context.Background(), "s1", "first")
	require.NoError(t, err)

	// Inventory changes between turns; the system message must follow.
	lister.houses = []model.House{{Number: "7", Type: "duplex"}}

	_, _, err = svc.HandleTurn(context.Background(), "s1", "second")
	require.NoError(t, err)

	transcript, _, err := store.Get(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, transcript, 5)
	assert.Equal(t, BuildPrompt(lister.houses), transcript[0].Content)
	assert.Equal(t, "first", transcript[1].Content)
	assert.Equal(t, "second", transcript[3].Content)
}

func TestHandleTurn_UpstreamFailureLeavesTranscriptUntouched(t *testing.T) {
	lister := &fakeLister{houses: []model.House{{Number: "2", Type: "villa"}}}
	completer := &fakeCompleter{reply: "ok"}
	svc, store := newTestChat(lister, completer)

	_, _, err := svc.HandleTurn(context.Background(), "s1", "first")
	require.NoError(t, err)

	completer.err = fmt.Errorf("%w: status 500", ErrUpstream)
	_, _, err = svc.HandleTurn(context.Background(), "s1", "second")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUpstream))

	transcript, _, err := store.Get(context.Background(), "s1")
	require.NoError(t, err)
	assert.Len(t, transcript, 3, "failed turn must not be recorded")
}

func TestHandleTurn_ContextWindowTruncation(t *testing.T) {
	lister := &fakeLister{houses: []model.House{{Number: "2", Type: "villa"}}}
	completer := &fakeCompleter{reply: "ok"}
	svc, store := newTestChat(lister, completer)

	// Pre-populate a long transcript: system + 30 exchanges.
	transcript := []Message{{Role: RoleSystem, Content: "old system"}}
	for i := 0; i < 30; i++ {
		transcript = append(transcript,
			Message{Role: RoleUser, Content: fmt.Sprintf("u%d", i)},
			Message{Role: RoleAssistant, Content: fmt.Sprintf("a%d", i)},
		)
	}
	require.NoError(t, store.Set(context.Background(), "s1", transcript))

	_, _, err := svc.HandleTurn(context.Background(), "s1", "latest")
	require.NoError(t, err)

	sent := completer.lastContext()
	require.Len(t, sent, contextWindow+1)
	assert.Equal(t, RoleSystem, sent[0].Role, "window must lead with the system message")
	assert.Equal(t, "latest", sent[len(sent)-1].Content, "window must end with the new user message")
	for _, m := range sent[1:] {
		assert.NotEqual(t, RoleSystem, m.Role)
	}

	// The stored transcript keeps everything.
	stored, _, err := store.Get(context.Background(), "s1")
	require.NoError(t, err)
	assert.Len(t, stored, len(transcript)+2)
}

func TestHandleTurn_SuggestedHousesTokenBoundary(t *testing.T) {
	lister := &fakeLister{houses: []model.House{
		{Number: "1", Type: "villa"},
		{Number: "10", Type: "villa"},
	}}
	completer := &fakeCompleter{reply: "I recommend Unit 10 for your family."}
	svc, _ := newTestChat(lister, completer)

	_, suggested, err := svc.HandleTurn(context.Background(), "s1", "which unit?")
	require.NoError(t, err)
	require.Len(t, suggested, 1)
	assert.Equal(t, "10", suggested[0].Number)
}

func TestHandleTurn_SuggestionsOnlyFromActiveHouses(t *testing.T) {
	lister := &fakeLister{houses: []model.House{{Number: "2", Type: "villa"}}}
	completer := &fakeCompleter{reply: "Units 2 and 9 are great."}
	svc, _ := newTestChat(lister, completer)

	_, suggested, err := svc.HandleTurn(context.Background(), "s1", "hi")
	require.NoError(t, err)
	require.Len(t, suggested, 1)
	assert.Equal(t, "2", suggested[0].Number)
}

func TestHandleTurn_ConcurrentTurnsAreSerialized(t *testing.T) {
	lister := &fakeLister{houses: []model.House{{Number: "2", Type: "villa"}}}
	completer := &fakeCompleter{reply: "ok"}
	svc, store := newTestChat(lister, completer)

	const turns = 8
	var wg sync.WaitGroup
	for i := 0; i < turns; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, err := svc.HandleTurn(context.Background(), "s1", fmt.Sprintf("msg %d", i))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	transcript, _, err := store.Get(context.Background(), "s1")
	require.NoError(t, err)
	// system + (user, assistant) per turn, no lost updates
	assert.Len(t, transcript, 1+2*turns)
}
