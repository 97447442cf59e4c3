package service

import "errors"

var (
	// ErrChatNotConfigured means the completion API key is absent. Chat
	// requests fail with a clear message; the rest of the API keeps working.
	ErrChatNotConfigured = errors.New("chat completion API is not configured (missing API key)")
	// ErrUpstream means the completion call failed (non-2xx or network error)
	ErrUpstream = errors.New("upstream completion request failed")
	// ErrMalformedResponse means the completion response lacked the expected shape
	ErrMalformedResponse = errors.New("malformed completion response")
)
