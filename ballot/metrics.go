// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric label values
const (
	sourcePrecheck   = "precheck"
	sourceConstraint = "constraint"

	reasonNotFound  = "not_found"
	reasonInvalid   = "invalid"
	reasonIntegrity = "integrity"
)

// Metrics counts ballot outcomes. A nil *Metrics records nothing.
type Metrics struct {
	created    *prometheus.CounterVec
	conflicts  *prometheus.CounterVec
	rejections *prometheus.CounterVec
}

// NewMetrics registers the ballot counters with reg. A nil reg leaves them
// unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		created: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ballots_created_total",
			Help: "number of committed ballots by vote type",
		}, []string{"vote_type"}),
		conflicts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ballot_conflicts_total",
			Help: "number of ballots rejected because the elector already voted",
		}, []string{"source"}),
		rejections: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ballot_rejections_total",
			Help: "number of ballots rejected for any other reason",
		}, []string{"reason"}),
	}
}

func (m *Metrics) ballotCreated(voteType string) {
	if m == nil {
		return
	}
	m.created.WithLabelValues(voteType).Inc()
}

func (m *Metrics) conflict(source string) {
	if m == nil {
		return
	}
	m.conflicts.WithLabelValues(source).Inc()
}

func (m *Metrics) rejected(reason string) {
	if m == nil {
		return
	}
	m.rejections.WithLabelValues(reason).Inc()
}
