package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pentexy/vc/internal/domain"
)

func TestRegistry_BindLookupUnbind(t *testing.T) {
	r := NewRegistry()
	conn := &fakeConn{}

	_, ok := r.Lookup("s1")
	assert.False(t, ok)

	r.Bind("s1", "u1", "room-1", conn)
	b, ok := r.Lookup("s1")
	require.True(t, ok)
	assert.Equal(t, domain.UserID("u1"), b.UserID)
	assert.Equal(t, domain.RoomID("room-1"), b.RoomID)
	assert.Same(t, conn, b.Conn.(*fakeConn))

	r.Unbind("s1")
	_, ok = r.Lookup("s1")
	assert.False(t, ok)

	// Unbinding an unknown handle is harmless.
	r.Unbind("s1")
}

func TestRegistry_RebindOverwrites(t *testing.T) {
	r := NewRegistry()
	r.Bind("s1", "u1", "room-1", &fakeConn{})
	r.Bind("s1", "u1", "room-2", &fakeConn{})

	b, ok := r.Lookup("s1")
	require.True(t, ok)
	assert.Equal(t, domain.RoomID("room-2"), b.RoomID)
}
