package core

import (
	"encoding/json"

	"github.com/pentexy/vc/internal/domain"
)

// Wire names of outbound events.
const (
	EventError        = "error"
	EventUserJoined   = "user-joined"
	EventParticipants = "room-participants"
	EventOffer        = "offer"
	EventAnswer       = "answer"
	EventCandidate    = "ice-candidate"
	EventMuteUpdated  = "user-mute-updated"
	EventUserLeft     = "user-left"
	EventPong         = "pong"
)

// ParticipantDTO is a read-only view for snapshots (no transport fields).
type ParticipantDTO struct {
	ID    domain.UserID `json:"id"`
	Name  string        `json:"name"`
	Muted bool          `json:"muted"`
}

// ErrorEvent is unicast to the originating connection only.
type ErrorEvent struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// UserJoinedEvent goes to every room member except the joiner.
type UserJoinedEvent struct {
	Type     string        `json:"type"`
	UserID   domain.UserID `json:"userId"`
	UserName string        `json:"userName"`
}

// ParticipantsEvent goes to the joiner only and includes the joiner itself.
type ParticipantsEvent struct {
	Type         string           `json:"type"`
	RoomID       domain.RoomID    `json:"roomId"`
	Participants []ParticipantDTO `json:"participants"`
}

// MuteUpdatedEvent goes to the entire room, the originator included.
type MuteUpdatedEvent struct {
	Type   string        `json:"type"`
	UserID domain.UserID `json:"userId"`
	Muted  bool          `json:"muted"`
}

// UserLeftEvent goes to every remaining room member.
type UserLeftEvent struct {
	Type   string        `json:"type"`
	UserID domain.UserID `json:"userId"`
}

// OfferEvent, AnswerEvent and CandidateEvent carry opaque negotiation
// payloads between two peers. The relay never inspects the raw payload;
// Sender is stamped from the forwarding connection's handle.

type OfferEvent struct {
	Type   string          `json:"type"`
	Offer  json.RawMessage `json:"offer"`
	Sender SessionID       `json:"sender"`
}

type AnswerEvent struct {
	Type   string          `json:"type"`
	Answer json.RawMessage `json:"answer"`
	Sender SessionID       `json:"sender"`
}

type CandidateEvent struct {
	Type      string          `json:"type"`
	Candidate json.RawMessage `json:"candidate"`
	Sender    SessionID       `json:"sender"`
}
