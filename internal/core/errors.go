package core

import "errors"

var (
	// ErrRoomNotFound is returned when a join targets a room id that does
	// not exist. Reported to the requester only.
	ErrRoomNotFound = errors.New("room not found")

	// ErrRoomFull is returned when a join targets a room at capacity.
	// Reported to the requester only.
	ErrRoomFull = errors.New("room is full")
)
