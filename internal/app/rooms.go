package app

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pentexy/vc/internal/core"
	"github.com/pentexy/vc/internal/domain"
)

// member pairs a participant with the transport endpoint bound to it.
type member struct {
	part *domain.Participant
	sid  core.SessionID
	conn core.SignalConnection
}

// Room is the live state of one signaling room. The members map is guarded
// by the SessionManager's lock, not by the store; the store only guards the
// room map itself.
type Room struct {
	Meta    *domain.Room
	members map[domain.UserID]*member
}

func (r *Room) MemberCount() int {
	return len(r.members)
}

// Snapshot is a read-only membership view suitable for the wire.
func (r *Room) Snapshot() []core.ParticipantDTO {
	out := make([]core.ParticipantDTO, 0, len(r.members))
	for _, m := range r.members {
		out = append(out, core.ParticipantDTO{ID: m.part.ID, Name: m.part.Name, Muted: m.part.Muted})
	}
	return out
}

// RoomStore holds all live rooms keyed by id.
type RoomStore struct {
	mu    sync.RWMutex
	rooms map[domain.RoomID]*Room
}

func NewRoomStore() *RoomStore {
	return &RoomStore{rooms: make(map[domain.RoomID]*Room)}
}

// Create inserts a fresh empty room and returns its id. Never fails.
func (s *RoomStore) Create() domain.RoomID {
	room := &Room{
		Meta:    &domain.Room{ID: domain.NewRoomID(), CreatedAt: time.Now()},
		members: make(map[domain.UserID]*member),
	}
	s.mu.Lock()
	s.rooms[room.Meta.ID] = room
	s.mu.Unlock()
	log.Info().Str("module", "app.rooms").Str("room", string(room.Meta.ID)).Msg("room created")
	return room.Meta.ID
}

func (s *RoomStore) Exists(id domain.RoomID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.rooms[id]
	return ok
}

func (s *RoomStore) Get(id domain.RoomID) (*Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, ok := s.rooms[id]
	return room, ok
}

// Delete removes a room only if it is still empty at call time. The
// emptiness re-check is what makes stale eviction timers safe.
func (s *RoomStore) Delete(id domain.RoomID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[id]
	if !ok || room.MemberCount() > 0 {
		return false
	}
	delete(s.rooms, id)
	log.Info().Str("module", "app.rooms").Str("room", string(id)).Msg("room deleted")
	return true
}
