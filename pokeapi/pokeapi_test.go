package pokeapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

const pikachuJSON = `{
	"id": 25,
	"name": "pikachu",
	"height": 4,
	"weight": 60,
	"sprites": {
		"front_default": "https://sprites.example/25.png",
		"other": {
			"official-artwork": {
				"front_default": "https://sprites.example/art/25.png"
			}
		}
	},
	"types": [
		{"slot": 1, "type": {"name": "electric", "url": "https://pokeapi.example/type/13/"}}
	],
	"cries": {"latest": "https://cries.example/25.ogg"},
	"species": {"name": "pikachu", "url": "https://pokeapi.example/pokemon-species/25/"}
}`

// ----------------------------------------------------
// GET /pokemon/{nameOrId}
// ----------------------------------------------------

func TestGetPokemon_ParsesPrimaryRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// input should have been trimmed + lowercased by the client
		if r.URL.Path != "/pokemon/pikachu" {
			http.Error(w, "unexpected path "+r.URL.Path, http.StatusNotFound)
			return
		}
		w.Write([]byte(pikachuJSON))
	}))
	defer srv.Close()

	old := BaseURL
	BaseURL = srv.URL
	defer func() { BaseURL = old }()

	c := NewClient()
	p, err := c.GetPokemon(context.Background(), "  Pikachu ")
	require.NoError(t, err)

	require.Equal(t, 25, p.ID)
	require.Equal(t, "pikachu", p.Name)
	require.Equal(t, 4, p.Height)
	require.Equal(t, 60, p.Weight)
	require.Equal(t, []string{"electric"}, p.TypeNames())
	require.Equal(t, "https://sprites.example/art/25.png", p.Artwork())
	require.Equal(t, "https://cries.example/25.ogg", p.Cries.Latest)
	require.Equal(t, "https://pokeapi.example/pokemon-species/25/", p.Species.URL)
}

func TestGetPokemon_NonSuccessStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	}))
	defer srv.Close()

	old := BaseURL
	BaseURL = srv.URL
	defer func() { BaseURL = old }()

	c := NewClient()
	_, err := c.GetPokemon(context.Background(), "missingno")
	require.Error(t, err)
	require.Contains(t, err.Error(), "404")
}

func TestGetPokemon_BadJSONIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	old := BaseURL
	BaseURL = srv.URL
	defer func() { BaseURL = old }()

	c := NewClient()
	_, err := c.GetPokemon(context.Background(), "pikachu")
	require.Error(t, err)
}

// ----------------------------------------------------
// Artwork fallback when the record has no official art
// ----------------------------------------------------

func TestArtwork_FallbackOrder(t *testing.T) {
	p := &Pokemon{ID: 7}
	require.Equal(t, ArtworkURL(7), p.Artwork())

	p.Sprites.FrontDefault = "front.png"
	require.Equal(t, "front.png", p.Artwork())

	p.Sprites.Other.OfficialArtwork.FrontDefault = "art.png"
	require.Equal(t, "art.png", p.Artwork())
}

// ----------------------------------------------------
// ID parsing from resource URLs
// ----------------------------------------------------

func TestIDFromURL(t *testing.T) {
	cases := []struct {
		url string
		id  int
		ok  bool
	}{
		{"https://pokeapi.co/api/v2/pokemon-species/25/", 25, true},
		{"https://pokeapi.co/api/v2/pokemon-species/1", 1, true},
		{"https://pokeapi.co/api/v2/pokemon-species/abc/", 0, false},
		{"https://pokeapi.co/api/v2/pokemon-species/-3/", 0, false},
		{"", 0, false},
	}

	for _, tc := range cases {
		id, ok := IDFromURL(tc.url)
		if ok != tc.ok || id != tc.id {
			t.Fatalf("IDFromURL(%q) = (%d,%v), want (%d,%v)", tc.url, id, ok, tc.id, tc.ok)
		}
	}
}
