package evolution

import (
	"context"
	"fmt"
	"log"

	"pokedex/internal/metrics"
	"pokedex/pokeapi"
)

//
// ============================================================
// Evolution Resolver
// ============================================================
//
// Resolve walks species -> evolution chain and flattens the nested tree
// into stages ordered by depth, then trims everything up to and including
// the stage holding currentID. The result is only the stages the current
// species still evolves *into*.
//
// The two "nothing to show" cases (species has no chain resource, or the
// current species never appears in its own chain) return an empty slice
// and a nil error. A network or decode failure on either fetch returns an
// error so the caller can tell "no data" apart from "none known".

type Resolver struct {
	api *pokeapi.Client
}

func NewResolver(api *pokeapi.Client) *Resolver {
	return &Resolver{api: api}
}

func (r *Resolver) Resolve(ctx context.Context, speciesURL string, currentID int) ([]Stage, error) {
	sp, err := r.api.GetSpeciesByURL(ctx, speciesURL)
	if err != nil {
		return nil, fmt.Errorf("resolve species: %w", err)
	}

	// No chain reference at all: trivially nothing to show.
	if sp.EvolutionChain.URL == "" {
		return []Stage{}, nil
	}

	chain, err := r.api.GetChainByURL(ctx, sp.EvolutionChain.URL)
	if err != nil {
		return nil, fmt.Errorf("resolve chain: %w", err)
	}

	stages := flattenChain(&chain.Chain)

	// Locate the stage holding the current species.
	currentStage := -1
	for i, st := range stages {
		for _, s := range st.Species {
			if s.ID == currentID {
				currentStage = i
				break
			}
		}
		if currentStage >= 0 {
			break
		}
	}

	// Queried species not represented in its own chain: nothing to show.
	if currentStage < 0 {
		return []Stage{}, nil
	}

	return stages[currentStage+1:], nil
}

//
// ============================================================
// Tree flattening
// ============================================================
//

type queueItem struct {
	link  *pokeapi.ChainLink
	depth int
}

// flattenChain assigns every node of the tree to the stage at its depth
// from the root. Sibling order within a stage follows traversal order;
// only the depth ordering is guaranteed. Nodes whose species URL yields
// no numeric ID are dropped and counted, without aborting siblings.
func flattenChain(root *pokeapi.ChainLink) []Stage {
	var stages []Stage

	queue := []queueItem{{link: root, depth: 0}}
	for len(queue) > 0 {
		// pop
		item := queue[0]
		queue = queue[1:]

		for len(stages) <= item.depth {
			stages = append(stages, Stage{})
		}

		id, ok := pokeapi.IDFromURL(item.link.Species.URL)
		if ok {
			stages[item.depth].Species = append(stages[item.depth].Species, StageSpecies{
				ID:         id,
				Name:       item.link.Species.Name,
				ArtworkURL: pokeapi.ArtworkURL(id),
			})
		} else {
			metrics.DroppedChainRefs.Inc()
			log.Printf("[evolution] dropping chain node %q: no numeric ID in %q",
				item.link.Species.Name, item.link.Species.URL)
		}

		for i := range item.link.EvolvesTo {
			queue = append(queue, queueItem{
				link:  &item.link.EvolvesTo[i],
				depth: item.depth + 1,
			})
		}
	}

	// Drop stages that ended up empty so downstream indexes stay dense.
	out := make([]Stage, 0, len(stages))
	for _, st := range stages {
		if len(st.Species) > 0 {
			out = append(out, st)
		}
	}
	return out
}
