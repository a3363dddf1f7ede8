package domain

// SystemUsername marks notices originated by the server itself.
const SystemUsername = "System"

// MessageEvent is the single outbound chat event. Original carries the
// companion "hover" text: a less-transformed form of what was sent.
type MessageEvent struct {
	Type     string `json:"type"`
	Username string `json:"username"`
	Message  string `json:"message"`
	Original string `json:"original,omitempty"`
}

// JoinResponse is sent to the join requester only.
type JoinResponse struct {
	Type    string `json:"type"`
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func NewMessageEvent(username, message, original string) MessageEvent {
	return MessageEvent{Type: "message", Username: username, Message: message, Original: original}
}

func NewSystemNotice(message string) MessageEvent {
	return MessageEvent{Type: "message", Username: SystemUsername, Message: message}
}

func NewJoinResponse(success bool, message string) JoinResponse {
	return JoinResponse{Type: "join_response", Success: success, Message: message}
}
