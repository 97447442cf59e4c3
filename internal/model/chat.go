package model

// ChatRequest is the body of POST /api/chat
type ChatRequest struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"sessionId" binding:"required"`
}

// ChatResponse carries the assistant reply plus the active houses whose
// display number appears in it, used by the UI to render inline unit cards.
type ChatResponse struct {
	Response        string  `json:"response"`
	SuggestedHouses []House `json:"suggestedHouses"`
}
