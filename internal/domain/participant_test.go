package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParticipant(t *testing.T) {
	tests := []struct {
		name    string
		id      UserID
		display string
		wantErr error
	}{
		{"valid", "u1", "Alice", nil},
		{"empty id", "", "Alice", ErrUserIDEmpty},
		{"long id", UserID(strings.Repeat("x", MaxUserIDLen+1)), "Alice", ErrUserIDTooLong},
		{"empty name", "u1", "", ErrUserNameEmpty},
		{"long name", "u1", strings.Repeat("x", MaxUserNameLen+1), ErrUserNameTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewParticipant(tt.id, tt.display)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.id, p.ID)
			assert.Equal(t, tt.display, p.Name)
			assert.False(t, p.Muted, "participants start unmuted")
		})
	}
}
