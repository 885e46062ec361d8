package view

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"pokedex/evolution"
	"pokedex/internal/metrics"
	"pokedex/pokeapi"
)

// Valid species ID range for navigation wrap-around.
const (
	MinSpeciesID = 1
	MaxSpeciesID = 1025
)

// EvoState is the three-way evolution display state. The three cases
// drive three different UI messages and must not collapse into each
// other: NotAttempted = "no data", Empty = "no known evolutions",
// Populated = render the stages.
type EvoState string

const (
	EvoNotAttempted EvoState = "not_attempted"
	EvoEmpty        EvoState = "empty"
	EvoPopulated    EvoState = "populated"
)

// Pokemon is the resolved display record. Replaced wholesale on every
// search; never mutated in place.
type Pokemon struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	DisplayName string   `json:"displayName"`
	HeightM     float64  `json:"heightM"`
	WeightKg    float64  `json:"weightKg"`
	Types       []string `json:"types"`
	SpriteURL   string   `json:"spriteURL"`
	ArtworkURL  string   `json:"artworkURL"`
	CryURL      string   `json:"cryURL"`
	SpeciesURL  string   `json:"-"`
}

// Snapshot is an immutable copy of the view state, safe to encode.
type Snapshot struct {
	Query      string            `json:"query"`
	Loading    bool              `json:"loading"`
	Error      string            `json:"error"`
	Pokemon    *Pokemon          `json:"pokemon"`
	EvoState   EvoState          `json:"evoState"`
	Evolutions []evolution.Stage `json:"evolutions"`
}

//
// ============================================================
// Session
// ============================================================
//
// Session owns all mutable view state. Each search takes a generation
// token; commits compare their token against the latest issued and are
// discarded when stale, so a slow earlier search can never overwrite the
// result of a faster later one. In-flight requests are not cancelled.

type Session struct {
	mu  sync.Mutex
	gen uint64

	api      *pokeapi.Client
	resolver *evolution.Resolver
	hydrator *evolution.Hydrator

	state Snapshot
}

func NewSession(api *pokeapi.Client) *Session {
	return &Session{
		api:      api,
		resolver: evolution.NewResolver(api),
		hydrator: evolution.NewHydrator(api),
		state: Snapshot{
			EvoState: EvoNotAttempted,
		},
	}
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Search runs one full search cycle: primary record, then evolution
// resolution + artwork hydration. It blocks until done and returns the
// state as of its own final commit (which may have lost to a newer
// search; the returned snapshot is then the newer state).
func (s *Session) Search(ctx context.Context, query string) Snapshot {
	metrics.SearchesStarted.Inc()
	gen := s.begin(query)

	p, err := s.api.GetPokemon(ctx, query)
	if err != nil {
		metrics.PrimaryLookupFailures.Inc()
		log.Printf("[view] primary lookup failed for %q: %v", query, err)
		s.commitError(gen, fmt.Sprintf("No Pokémon found for %q", strings.TrimSpace(query)))
		return s.Snapshot()
	}

	s.commitRecord(gen, toRecord(p))

	stages, err := s.resolver.Resolve(ctx, p.Species.URL, p.ID)
	switch {
	case err != nil:
		// Enrichment failure is never surfaced as an error; the
		// evolution section just shows "no data".
		log.Printf("[view] evolution resolve failed for %s: %v", p.Name, err)
		s.commitEvolutions(gen, EvoNotAttempted, nil)
	case len(stages) == 0:
		s.commitEvolutions(gen, EvoEmpty, nil)
	default:
		hydrated := s.hydrator.Hydrate(ctx, stages)
		s.commitEvolutions(gen, EvoPopulated, hydrated)
	}

	return s.Snapshot()
}

// Navigate computes the next species ID by wrapping arithmetic over the
// full valid range, then searches it. Without a current record it starts
// from the bottom of the range.
func (s *Session) Navigate(ctx context.Context, offset int) Snapshot {
	s.mu.Lock()
	current := MinSpeciesID
	if s.state.Pokemon != nil {
		current = s.state.Pokemon.ID
	}
	s.mu.Unlock()

	next := NextID(current, offset)
	return s.Search(ctx, fmt.Sprintf("%d", next))
}

// NextID wraps offset steps around [MinSpeciesID, MaxSpeciesID].
func NextID(current, offset int) int {
	r := MaxSpeciesID - MinSpeciesID + 1
	return ((current-MinSpeciesID+offset)%r+r)%r + MinSpeciesID
}

//
// ============================================================
// State commits (generation guarded)
// ============================================================
//

// begin bumps the generation and resets per-search state: prior error and
// evolution state are cleared, the in-flight flag goes up. The previous
// record stays visible until this search either replaces or clears it.
func (s *Session) begin(query string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	s.state.Query = query
	s.state.Loading = true
	s.state.Error = ""
	s.state.EvoState = EvoNotAttempted
	s.state.Evolutions = nil
	return s.gen
}

func (s *Session) commitError(gen uint64, msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		metrics.StaleResultsDropped.Inc()
		return
	}
	s.state.Loading = false
	s.state.Error = msg
	s.state.Pokemon = nil
	s.state.EvoState = EvoNotAttempted
	s.state.Evolutions = nil
}

func (s *Session) commitRecord(gen uint64, p *Pokemon) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		metrics.StaleResultsDropped.Inc()
		return
	}
	// still loading: evolution data is on its way
	s.state.Error = ""
	s.state.Pokemon = p
}

func (s *Session) commitEvolutions(gen uint64, es EvoState, stages []evolution.Stage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		metrics.StaleResultsDropped.Inc()
		return
	}
	s.state.Loading = false
	s.state.EvoState = es
	s.state.Evolutions = stages
}

//
// ============================================================
// Record mapping
// ============================================================
//

func toRecord(p *pokeapi.Pokemon) *Pokemon {
	return &Pokemon{
		ID:          p.ID,
		Name:        p.Name,
		DisplayName: displayName(p.Name),
		HeightM:     float64(p.Height) / 10, // API reports decimeters
		WeightKg:    float64(p.Weight) / 10, // API reports hectograms
		Types:       p.TypeNames(),
		SpriteURL:   p.Sprites.FrontDefault,
		ArtworkURL:  p.Artwork(),
		CryURL:      p.Cries.Latest,
		SpeciesURL:  p.Species.URL,
	}
}

// displayName turns "mr-mime" into "Mr Mime".
func displayName(apiName string) string {
	parts := strings.Split(apiName, "-")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}
