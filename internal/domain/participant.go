// Package domain contains entities without logic, just meta-data.
package domain

import "errors"

const (
	MaxUserIDLen   = 64
	MaxUserNameLen = 36
)

var (
	ErrUserIDEmpty     = errors.New("user id empty")
	ErrUserIDTooLong   = errors.New("user id too long")
	ErrUserNameEmpty   = errors.New("user name empty")
	ErrUserNameTooLong = errors.New("user name too long")
)

type UserID string

// Participant is a room member: caller-supplied identity plus call state.
// UserID is unique only within a room. Never serialized directly; the wire
// view is core.ParticipantDTO.
type Participant struct {
	ID    UserID
	Name  string
	Muted bool
}

// NewParticipant validates identity fields and keeps construction obvious.
func NewParticipant(id UserID, name string) (*Participant, error) {
	if len(id) == 0 {
		return nil, ErrUserIDEmpty
	}
	if len(id) > MaxUserIDLen {
		return nil, ErrUserIDTooLong
	}
	if len(name) == 0 {
		return nil, ErrUserNameEmpty
	}
	if len(name) > MaxUserNameLen {
		return nil, ErrUserNameTooLong
	}
	return &Participant{ID: id, Name: name}, nil
}
