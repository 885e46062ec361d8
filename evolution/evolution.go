package evolution

// StageSpecies is one species entry inside a stage. ArtworkURL starts as
// the deterministic static-host fallback and may be upgraded by the
// hydrator.
type StageSpecies struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	ArtworkURL string `json:"artworkURL"`
}

// Stage holds every species at one depth of the evolution tree. Branching
// chains put multiple entries in the same stage; membership is not
// deduplicated across branches.
type Stage struct {
	Species []StageSpecies `json:"species"`
}
