package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	cacheHit   = "hit"
	cacheMiss  = "miss"
	cacheError = "error"
)

var (
	routingDecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedback_routing_decisions_total",
			Help: "Feedback gate evaluations by routing decision",
		},
		[]string{"decision"},
	)

	snapshotCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reputation_snapshot_cache_total",
			Help: "Snapshot cache lookups by result",
		},
		[]string{"result"},
	)
)
