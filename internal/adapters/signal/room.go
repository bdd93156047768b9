package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/pentexy/vc/internal/core"
	"github.com/pentexy/vc/internal/domain"
)

func (ctl *Controller) handleJoin(
	sid core.SessionID,
	conn *wsSignalConn,
	data []byte,
) {
	if !ctl.joinLimiter.Allow(sid) {
		log.Warn().Str("module", "signal").Str("sid", string(sid)).Msg("join rate limited")
		ctl.sendJSON(conn, core.ErrorEvent{
			Type:    core.EventError,
			Message: "too many join attempts",
		})
		return
	}

	type joinPayload struct {
		Type     string `json:"type"`
		RoomID   string `json:"roomId"`
		UserID   string `json:"userId"`
		UserName string `json:"userName"`
	}
	var p joinPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad join payload")
		ctl.sendJSON(conn, core.ErrorEvent{
			Type:    core.EventError,
			Message: "bad payload",
		})
		return
	}

	log.Info().Str("module", "signal").Str("sid", string(sid)).Str("room_id", p.RoomID).Msg("join")
	err := ctl.Sessions.Join(sid, conn, domain.RoomID(p.RoomID), domain.UserID(p.UserID), p.UserName)
	if err != nil {
		log.Warn().Err(err).Str("module", "signal").Str("sid", string(sid)).Str("room_id", p.RoomID).Msg("join rejected")
		ctl.sendJSON(conn, core.ErrorEvent{
			Type:    core.EventError,
			Message: err.Error(),
		})
	}
}
