package app

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/pentexy/vc/internal/core"
	"github.com/pentexy/vc/internal/domain"
)

// Binding ties a live connection handle to the (user, room) pair it joined
// and to its outbound transport endpoint. A binding exists only while the
// room contains a participant with the same user id and handle.
type Binding struct {
	UserID domain.UserID
	RoomID domain.RoomID
	Conn   core.SignalConnection
}

type Registry struct {
	mu       sync.RWMutex
	bindings map[core.SessionID]Binding
}

func NewRegistry() *Registry {
	return &Registry{bindings: make(map[core.SessionID]Binding)}
}

func (r *Registry) Bind(sid core.SessionID, userID domain.UserID, roomID domain.RoomID, conn core.SignalConnection) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bindings[sid] = Binding{UserID: userID, RoomID: roomID, Conn: conn}
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Str("room", string(roomID)).Msg("bound connection")
}

func (r *Registry) Lookup(sid core.SessionID) (Binding, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.bindings[sid]
	return b, ok
}

func (r *Registry) Unbind(sid core.SessionID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.bindings, sid)
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Msg("unbound connection")
}
