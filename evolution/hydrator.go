package evolution

import (
	"context"
	"strconv"

	"golang.org/x/sync/errgroup"

	"pokedex/internal/metrics"
	"pokedex/pokeapi"
)

//
// ============================================================
// Artwork Hydrator
// ============================================================
//
// Hydrate tries to upgrade every stage entry's artwork URL via a live
// /pokemon lookup. Lookups fan out concurrently but each result is
// written back by index, so stage order and per-stage entry order always
// mirror the input. Failures keep the deterministic fallback already on
// the entry; Hydrate itself never fails.

// hydrateConcurrency caps in-flight lookups so a long branching chain
// does not hammer the API.
const hydrateConcurrency = 8

type Hydrator struct {
	api *pokeapi.Client
}

func NewHydrator(api *pokeapi.Client) *Hydrator {
	return &Hydrator{api: api}
}

func (h *Hydrator) Hydrate(ctx context.Context, stages []Stage) []Stage {
	out := make([]Stage, len(stages))
	for i, st := range stages {
		out[i] = Stage{Species: make([]StageSpecies, len(st.Species))}
		copy(out[i].Species, st.Species)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(hydrateConcurrency)

	for i := range out {
		for j := range out[i].Species {
			i, j := i, j
			g.Go(func() error {
				entry := &out[i].Species[j]

				p, err := h.api.GetPokemon(gctx, strconv.Itoa(entry.ID))
				if err != nil {
					metrics.ArtworkFallbacks.Inc()
					return nil // keep fallback URL
				}
				if art := p.Artwork(); art != "" {
					entry.ArtworkURL = art
				}
				return nil
			})
		}
	}

	// Goroutines never return errors; Wait is just the join point.
	_ = g.Wait()

	return out
}
