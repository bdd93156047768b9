package core

// Frame is a raw outbound message payload.
type Frame []byte

// SessionID identifies one live client connection. It is the addressing
// unit for signaling relay and registry lookups.
type SessionID string

// SignalConnection abstracts for a system messaging transport.
// Owned by the adapter; the adapter must Close() it.
type SignalConnection interface {
	TrySend(Frame) error
	Close()
}
