package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisSessionStore keeps transcripts in Redis so multiple server processes
// can share sessions without sticky routing. Entries expire after TTL of
// inactivity (the TTL is reset on every write).
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionStore connects to Redis and verifies the connection.
func NewRedisSessionStore(addr, password string, db int, ttl time.Duration) (*RedisSessionStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return &RedisSessionStore{client: client, ttl: ttl}, nil
}

func sessionKey(sessionID string) string {
	return "chat:session:" + sessionID
}

// Get loads and decodes a transcript.
func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) ([]Message, bool, error) {
	raw, err := s.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to load session: %w", err)
	}
	var transcript []Message
	if err := json.Unmarshal(raw, &transcript); err != nil {
		return nil, false, fmt.Errorf("failed to decode session: %w", err)
	}
	return transcript, true, nil
}

// Set stores the transcript and refreshes its TTL.
func (s *RedisSessionStore) Set(ctx context.Context, sessionID string, transcript []Message) error {
	raw, err := json.Marshal(transcript)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(sessionID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// Delete drops a session.
func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Close releases the Redis connection.
func (s *RedisSessionStore) Close() error {
	return s.client.Close()
}
