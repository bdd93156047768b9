package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/pentexy/vc/internal/core"
)

// The offer/answer/candidate payloads below stay json.RawMessage on
// purpose: the relay must not know what an SDP or an ICE candidate looks
// like. The sender stamped on the forwarded event is the connection that
// actually sent the frame, not anything the client claims.

func (ctl *Controller) handleOffer(
	sid core.SessionID,
	data []byte,
) {
	type offerPayload struct {
		Type   string          `json:"type"`
		Target string          `json:"target"`
		Offer  json.RawMessage `json:"offer"`
	}
	var p offerPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad offer payload")
		return
	}
	ctl.Relay.Offer(sid, core.SessionID(p.Target), p.Offer)
}

func (ctl *Controller) handleAnswer(
	sid core.SessionID,
	data []byte,
) {
	type answerPayload struct {
		Type   string          `json:"type"`
		Target string          `json:"target"`
		Answer json.RawMessage `json:"answer"`
	}
	var p answerPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad answer payload")
		return
	}
	ctl.Relay.Answer(sid, core.SessionID(p.Target), p.Answer)
}

func (ctl *Controller) handleCandidate(
	sid core.SessionID,
	data []byte,
) {
	type candidatePayload struct {
		Type      string          `json:"type"`
		Target    string          `json:"target"`
		Candidate json.RawMessage `json:"candidate"`
	}
	var p candidatePayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad candidate payload")
		return
	}
	ctl.Relay.Candidate(sid, core.SessionID(p.Target), p.Candidate)
}
