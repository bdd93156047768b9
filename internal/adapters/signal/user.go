package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/pentexy/vc/internal/core"
)

// handleToggleMute updates the caller's own mute flag. The session manager
// ignores connections that are not in a room, so no error goes back here.
func (ctl *Controller) handleToggleMute(
	sid core.SessionID,
	conn *wsSignalConn,
	data []byte,
) {
	type mutePayload struct {
		Type  string `json:"type"`
		Muted bool   `json:"muted"`
	}
	var p mutePayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad toggle-mute payload")
		ctl.sendJSON(conn, core.ErrorEvent{
			Type:    core.EventError,
			Message: "bad payload",
		})
		return
	}

	ctl.Sessions.ToggleMute(sid, p.Muted)
}
