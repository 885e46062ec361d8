package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string        `json:"port"`
	PokeAPIBase   string        `json:"pokeapi_base_url"`
	SpriteBase    string        `json:"sprite_base_url"`
	HTTPTimeout   time.Duration `json:"-"`
	TimeoutSecond int           `json:"http_timeout_seconds"`
}

// Load resolves configuration in order:
// 1. .env file (best effort, dev convenience)
// 2. Environment variables (deploy safe)
// 3. config.json in the working directory
// 4. Built-in defaults
// Every field has a working default, so Load never fails on absence.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{
		Port:          "8080",
		PokeAPIBase:   "https://pokeapi.co/api/v2",
		SpriteBase:    "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon",
		TimeoutSecond: 15,
	}

	// ----- config.json first so env can still override it -----
	if b, err := os.ReadFile("config.json"); err == nil {
		if err := json.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("invalid config.json: %w", err)
		}
	}

	// ----- environment overrides -----
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("POKEAPI_BASE_URL"); v != "" {
		cfg.PokeAPIBase = v
	}
	if v := os.Getenv("SPRITE_BASE_URL"); v != "" {
		cfg.SpriteBase = v
	}
	if v := os.Getenv("HTTP_TIMEOUT_SECONDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid HTTP_TIMEOUT_SECONDS %q", v)
		}
		cfg.TimeoutSecond = n
	}

	cfg.HTTPTimeout = time.Duration(cfg.TimeoutSecond) * time.Second
	return cfg, nil
}
