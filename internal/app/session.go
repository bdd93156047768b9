package app

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pentexy/vc/internal/core"
	"github.com/pentexy/vc/internal/domain"
)

// SessionManager owns the join/leave/mute state machine over the room store
// and the connection registry. Every mutating operation runs under one lock,
// so the capacity check-then-insert and the cross-store updates are atomic.
type SessionManager struct {
	mu       sync.Mutex
	rooms    *RoomStore
	registry *Registry
	metrics  *Metrics

	maxMembers int
	evictGrace time.Duration
}

func NewSessionManager(rooms *RoomStore, registry *Registry, metrics *Metrics, maxMembers int, evictGrace time.Duration) *SessionManager {
	return &SessionManager{
		rooms:      rooms,
		registry:   registry,
		metrics:    metrics,
		maxMembers: maxMembers,
		evictGrace: evictGrace,
	}
}

// Join adds the participant to the room and binds the connection.
// On success the rest of the room receives user-joined and the joiner
// receives the full room-participants snapshot, itself included.
// A user id already present in the room is replaced (fresh join under a new
// connection); the stale connection's binding is removed so the registry
// never points at an evicted participant. A connection that is already a
// member somewhere leaves that room first, with the usual user-left
// notification and eviction scheduling.
func (s *SessionManager) Join(sid core.SessionID, conn core.SignalConnection, roomID domain.RoomID, userID domain.UserID, userName string) error {
	part, err := domain.NewParticipant(userID, userName)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms.Get(roomID)
	if !ok {
		s.metrics.Inc(MetricJoinRejected)
		return core.ErrRoomNotFound
	}

	// A failed join must not mutate anything, so the capacity verdict has
	// to account for the slots this join would reuse: the same user id
	// already in the target room, or this connection's own membership there.
	binding, bound := s.registry.Lookup(sid)
	_, replacing := room.members[userID]
	occupying := replacing || (bound && binding.RoomID == roomID)
	if !occupying && room.MemberCount() >= s.maxMembers {
		s.metrics.Inc(MetricJoinRejected)
		return core.ErrRoomFull
	}

	// A connection holds at most one membership: leaving the old room is
	// part of joining the new one.
	if bound {
		s.detachLocked(sid)
	}
	if prev, ok := room.members[userID]; ok && prev.sid != sid {
		s.registry.Unbind(prev.sid)
		s.metrics.Inc(MetricRejoins)
		log.Info().Str("module", "app.session").Str("sid", string(sid)).
			Str("old_sid", string(prev.sid)).Str("user", string(userID)).Msg("rejoin replaces prior connection")
	}

	room.members[userID] = &member{part: part, sid: sid, conn: conn}
	s.registry.Bind(sid, userID, roomID, conn)
	s.metrics.Inc(MetricJoins)
	log.Info().Str("module", "app.session").Str("sid", string(sid)).
		Str("room", string(roomID)).Str("user", string(userID)).Msg("joined room")

	s.broadcast(room, core.UserJoinedEvent{
		Type:     core.EventUserJoined,
		UserID:   userID,
		UserName: userName,
	}, sid)
	s.send(conn, core.ParticipantsEvent{
		Type:         core.EventParticipants,
		RoomID:       roomID,
		Participants: room.Snapshot(),
	})
	return nil
}

// ToggleMute updates the participant's mute flag and broadcasts the change
// to the whole room, the originator included. Calls from a connection with
// no current binding are a silent no-op.
func (s *SessionManager) ToggleMute(sid core.SessionID, muted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.registry.Lookup(sid)
	if !ok {
		return
	}
	room, ok := s.rooms.Get(b.RoomID)
	if !ok {
		return
	}
	m, ok := room.members[b.UserID]
	if !ok || m.sid != sid {
		return
	}

	m.part.Muted = muted
	s.metrics.Inc(MetricMuteUpdates)
	log.Debug().Str("module", "app.session").Str("sid", string(sid)).
		Str("user", string(b.UserID)).Bool("muted", muted).Msg("mute updated")
	s.broadcast(room, core.MuteUpdatedEvent{
		Type:   core.EventMuteUpdated,
		UserID: b.UserID,
		Muted:  muted,
	}, "")
}

// Disconnect removes the participant and its binding, notifies the rest of
// the room, and arms the eviction check when the room became empty.
// Departure is implicit; there is no explicit leave request in the protocol.
func (s *SessionManager) Disconnect(sid core.SessionID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detachLocked(sid)
}

// detachLocked runs the leave path for sid's current membership, if any:
// remove the participant, drop the binding, notify the remaining members,
// arm the eviction check when the room became empty. Callers hold s.mu.
func (s *SessionManager) detachLocked(sid core.SessionID) {
	b, ok := s.registry.Lookup(sid)
	if !ok {
		return
	}
	s.registry.Unbind(sid)

	room, ok := s.rooms.Get(b.RoomID)
	if !ok {
		return
	}
	m, ok := room.members[b.UserID]
	if !ok || m.sid != sid {
		return
	}

	delete(room.members, b.UserID)
	s.metrics.Inc(MetricLeaves)
	log.Info().Str("module", "app.session").Str("sid", string(sid)).
		Str("room", string(b.RoomID)).Str("user", string(b.UserID)).Msg("left room")

	s.broadcast(room, core.UserLeftEvent{Type: core.EventUserLeft, UserID: b.UserID}, "")

	if room.MemberCount() == 0 {
		s.scheduleEviction(b.RoomID)
	}
}

// scheduleEviction arms a one-shot check. Deletion is decided by the live
// member count when the timer fires, so redundant timers are harmless and a
// rejoin during the grace window needs no explicit cancel.
func (s *SessionManager) scheduleEviction(id domain.RoomID) {
	log.Debug().Str("module", "app.session").Str("room", string(id)).
		Dur("grace", s.evictGrace).Msg("room empty, eviction scheduled")
	time.AfterFunc(s.evictGrace, func() { s.evictIfEmpty(id) })
}

func (s *SessionManager) evictIfEmpty(id domain.RoomID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rooms.Delete(id) {
		s.metrics.Inc(MetricRoomsEvicted)
		log.Info().Str("module", "app.session").Str("room", string(id)).Msg("empty room evicted")
	}
}

// broadcast fans an event out to every room member except exclude.
// Sends are fire-and-forget; a slow receiver never stalls the caller.
func (s *SessionManager) broadcast(room *Room, v any, exclude core.SessionID) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "app.session").Msg("broadcast marshal")
		return
	}
	for _, m := range room.members {
		if exclude != "" && m.sid == exclude {
			continue
		}
		if err := m.conn.TrySend(data); err != nil {
			s.metrics.Inc(MetricSendDropped)
			log.Debug().Err(err).Str("module", "app.session").Str("sid", string(m.sid)).Msg("broadcast send dropped")
		}
	}
}

func (s *SessionManager) send(conn core.SignalConnection, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "app.session").Msg("send marshal")
		return
	}
	if err := conn.TrySend(data); err != nil {
		s.metrics.Inc(MetricSendDropped)
		log.Debug().Err(err).Str("module", "app.session").Msg("send dropped")
	}
}
