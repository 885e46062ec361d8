package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// BaseURL and SpriteBaseURL are vars so tests can point the client at an
// httptest server.
var (
	BaseURL       = "https://pokeapi.co/api/v2"
	SpriteBaseURL = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon"
)

const userAgent = "PokedexGo/1.0 (jonny@example.com)"

// -------------------------------------------------------
// Core client
// -------------------------------------------------------

type Client struct {
	http *http.Client
}

func NewClient() *Client {
	return &Client{
		http: &http.Client{Timeout: 15 * time.Second},
	}
}

// NewClientWithTimeout lets main wire the timeout from config.
func NewClientWithTimeout(timeout time.Duration) *Client {
	return &Client{
		http: &http.Client{Timeout: timeout},
	}
}

func (c *Client) get(ctx context.Context, u string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("pokeapi: GET %s returned HTTP %d", u, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("pokeapi: decoding %s: %w", u, err)
	}
	return nil
}

//
// -------------------------------------------------------
// Lookup Pokemon by name or numeric ID
// -------------------------------------------------------

func (c *Client) GetPokemon(ctx context.Context, nameOrID string) (*Pokemon, error) {
	q := url.PathEscape(strings.ToLower(strings.TrimSpace(nameOrID)))
	u := fmt.Sprintf("%s/pokemon/%s", BaseURL, q)

	var out Pokemon
	if err := c.get(ctx, u, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

//
// -------------------------------------------------------
// Species + evolution chain (fetched by full URL, since
// the API hands them back as references)
// -------------------------------------------------------

func (c *Client) GetSpeciesByURL(ctx context.Context, speciesURL string) (*Species, error) {
	var out Species
	if err := c.get(ctx, speciesURL, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetChainByURL(ctx context.Context, chainURL string) (*EvolutionChain, error) {
	var out EvolutionChain
	if err := c.get(ctx, chainURL, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

//
// -------------------------------------------------------
// Static sprite host helpers
// -------------------------------------------------------

// ArtworkURL builds the deterministic fallback artwork URL for an ID.
// No network round trip; the hydrator only tries to improve on it.
func ArtworkURL(id int) string {
	return fmt.Sprintf("%s/other/official-artwork/%d.png", SpriteBaseURL, id)
}

// IDFromURL parses the numeric ID out of the trailing path segment of an
// API resource URL, e.g. ".../pokemon-species/25/" -> 25.
func IDFromURL(resourceURL string) (int, bool) {
	trimmed := strings.TrimRight(resourceURL, "/")
	i := strings.LastIndex(trimmed, "/")
	if i < 0 {
		return 0, false
	}
	id, err := strconv.Atoi(trimmed[i+1:])
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
