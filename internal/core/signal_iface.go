package core

// Frame is a raw outbound payload (an encoded JSON event).
type Frame []byte

// SessionID identifies one live connection. Assigned by the transport
// (client token cookie), opaque to the core.
type SessionID string

// SignalConnection abstracts a system messaging transport.
// Owned by the adapter; the adapter must Close() it.
type SignalConnection interface {
	TrySend(Frame) error
	Close()
}
