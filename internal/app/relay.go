package app

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/pentexy/vc/internal/core"
)

// Relay forwards opaque negotiation payloads between two connection
// handles. It never inspects payload structure and never reports delivery
// failure back to the sender; retries are the peers' problem.
type Relay struct {
	registry *Registry
	metrics  *Metrics
}

func NewRelay(registry *Registry, metrics *Metrics) *Relay {
	return &Relay{registry: registry, metrics: metrics}
}

func (r *Relay) Offer(sender, target core.SessionID, offer json.RawMessage) {
	r.forward(target, core.OfferEvent{Type: core.EventOffer, Offer: offer, Sender: sender})
}

func (r *Relay) Answer(sender, target core.SessionID, answer json.RawMessage) {
	r.forward(target, core.AnswerEvent{Type: core.EventAnswer, Answer: answer, Sender: sender})
}

func (r *Relay) Candidate(sender, target core.SessionID, candidate json.RawMessage) {
	r.forward(target, core.CandidateEvent{Type: core.EventCandidate, Candidate: candidate, Sender: sender})
}

func (r *Relay) forward(target core.SessionID, v any) {
	b, ok := r.registry.Lookup(target)
	if !ok {
		r.metrics.Inc(MetricRelayDropped)
		log.Debug().Str("module", "app.relay").Str("target", string(target)).Msg("relay target unknown, dropped")
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "app.relay").Msg("relay marshal")
		return
	}
	if err := b.Conn.TrySend(data); err != nil {
		r.metrics.Inc(MetricRelayDropped)
		log.Debug().Err(err).Str("module", "app.relay").Str("target", string(target)).Msg("relay send dropped")
		return
	}
	r.metrics.Inc(MetricRelayForwarded)
}
