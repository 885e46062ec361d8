package pokeapi

// NamedResource is the {name, url} pair the API uses everywhere it points
// at another resource. The numeric ID is only present as the trailing
// path segment of URL.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Pokemon is the primary record returned by /pokemon/{nameOrId}.
type Pokemon struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Height int    `json:"height"` // decimeters
	Weight int    `json:"weight"` // hectograms

	Sprites struct {
		FrontDefault string `json:"front_default"`
		Other        struct {
			OfficialArtwork struct {
				FrontDefault string `json:"front_default"`
			} `json:"official-artwork"`
		} `json:"other"`
	} `json:"sprites"`

	Types []struct {
		Slot int           `json:"slot"`
		Type NamedResource `json:"type"`
	} `json:"types"`

	Cries struct {
		Latest string `json:"latest"`
		Legacy string `json:"legacy"`
	} `json:"cries"`

	Species NamedResource `json:"species"`
}

// TypeNames flattens the slotted type list into plain names.
func (p *Pokemon) TypeNames() []string {
	out := make([]string, 0, len(p.Types))
	for _, t := range p.Types {
		out = append(out, t.Type.Name)
	}
	return out
}

// Artwork returns the best artwork URL the primary record carries, falling
// back to the plain front sprite and then the static host template.
func (p *Pokemon) Artwork() string {
	if u := p.Sprites.Other.OfficialArtwork.FrontDefault; u != "" {
		return u
	}
	if p.Sprites.FrontDefault != "" {
		return p.Sprites.FrontDefault
	}
	return ArtworkURL(p.ID)
}

// Species is the record at /pokemon-species/{id}. EvolutionChain.URL can
// be empty when the species has no chain resource at all.
type Species struct {
	ID             int           `json:"id"`
	Name           string        `json:"name"`
	EvolutionChain struct {
		URL string `json:"url"`
	} `json:"evolution_chain"`
}

// EvolutionChain is the tree at /evolution-chain/{id}. Chain is the base
// form; EvolvesTo holds the direct next-stage evolutions (branching
// allowed).
type EvolutionChain struct {
	ID    int       `json:"id"`
	Chain ChainLink `json:"chain"`
}

type ChainLink struct {
	Species   NamedResource `json:"species"`
	EvolvesTo []ChainLink   `json:"evolves_to"`
}
