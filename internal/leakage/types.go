package leakage

// ScreenRequest is published to screen.check by the chat service when an
// outgoing message needs contact-leakage review.
type ScreenRequest struct {
	SessionID string `json:"session_id"`
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	Ts        int64  `json:"ts"`
}

// ScreenResult is published back to the chat service for rejected messages.
type ScreenResult struct {
	SessionID string `json:"session_id"`
	ChatID    string `json:"chat_id"`
	Valid     bool   `json:"valid"`
	Reason    Reason `json:"reason,omitempty"`
	Message   string `json:"message,omitempty"`
}
