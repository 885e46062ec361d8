package main

import (
	"encoding/json"
	"html/template"
	"log"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pokedex/internal/config"
	"pokedex/internal/suggest"
	"pokedex/internal/view"
	"pokedex/pokeapi"
)

var session *view.Session
var suggestions *suggest.Table

func init() {
	mime.AddExtensionType(".css", "text/css")
	mime.AddExtensionType(".js", "application/javascript")
}

// findProjectRoot walks up a few levels to find /static and /templates.
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}
	for i := 0; i < 8; i++ {
		static := filepath.Join(dir, "static")
		templates := filepath.Join(dir, "templates")
		if exists(static) && exists(templates) {
			return dir
		}
		dir = filepath.Dir(dir)
	}
	log.Fatal("Could not locate project root containing /static and /templates")
	return ""
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func main() {
	root := findProjectRoot()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	pokeapi.BaseURL = cfg.PokeAPIBase
	pokeapi.SpriteBaseURL = cfg.SpriteBase

	session = view.NewSession(pokeapi.NewClientWithTimeout(cfg.HTTPTimeout))
	suggestions = suggest.Load()
	log.Printf("Loaded %d suggestion entries", suggestions.Len())

	mux := http.NewServeMux()

	// static
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(filepath.Join(root, "static")))))

	// HTML template
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		t := template.Must(template.ParseFiles(filepath.Join(root, "templates", "pokedex.html")))
		t.Execute(w, nil)
	})

	// search API (background jobs + polling)
	mux.HandleFunc("/api/search/start", startSearchHandler)
	mux.HandleFunc("/api/navigate", navigateHandler)
	mux.HandleFunc("/api/search/status", searchStatusHandler)
	mux.HandleFunc("/api/state", stateHandler)
	mux.HandleFunc("/api/suggest", suggestHandler)

	// ops
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"ok": true})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}
	log.Println("Listening on :" + port)
	err = http.ListenAndServe(":"+port, mux)
	if err != nil {
		log.Fatal(err)
	}
}
