package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Package-level counters so the evolution + view layers can record events
// without threading a metrics struct through every call.

var (
	SearchesStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pokedex_searches_started_total",
		Help: "Total number of search/navigation submissions",
	})

	PrimaryLookupFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pokedex_primary_lookup_failures_total",
		Help: "Total number of failed primary /pokemon lookups",
	})

	// DroppedChainRefs counts evolution nodes skipped because no numeric
	// ID could be parsed from their species URL. The drop itself stays
	// non-fatal; this just makes it observable.
	DroppedChainRefs = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pokedex_dropped_chain_refs_total",
		Help: "Total number of evolution chain nodes dropped due to unparseable species URLs",
	})

	ArtworkFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pokedex_artwork_fallbacks_total",
		Help: "Total number of evolution entries that kept the static fallback artwork URL",
	})

	StaleResultsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pokedex_stale_results_dropped_total",
		Help: "Total number of search results discarded because a newer search was issued",
	})
)
