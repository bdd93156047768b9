package domain

import (
	"time"

	"github.com/google/uuid"
)

type RoomID string

func NewRoomID() RoomID {
	return RoomID(uuid.NewString())
}

// Room is meta only; live membership lives in the app layer.
type Room struct {
	ID        RoomID
	CreatedAt time.Time
}
