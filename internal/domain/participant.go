package domain

import "errors"

const MaxUsernameLen = 36

var (
	ErrUsernameTooLong = errors.New("username too long")
	ErrUsernameEmpty   = errors.New("username empty")
)

// Participant is one connected chat user. The connection identity that
// keys it lives in the registry, not here.
type Participant struct {
	Username string   `json:"username"`
	Language Language `json:"language"`
	Room     RoomName `json:"room"`
}

// NewParticipant is a tiny helper to avoid ad-hoc struct literals in adapters.
func NewParticipant(username string, lang Language, room RoomName) (*Participant, error) {
	if len(username) == 0 {
		return nil, ErrUsernameEmpty
	}
	if len(username) > MaxUsernameLen {
		return nil, ErrUsernameTooLong
	}
	if !lang.Supported() {
		return nil, ErrUnsupportedLanguage
	}
	return &Participant{Username: username, Language: lang, Room: room}, nil
}
