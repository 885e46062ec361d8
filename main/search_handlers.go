package main

import (
	"encoding/json"
	"net/http"
	"strings"

	"pokedex/internal/jobs"
	"pokedex/internal/view"
)

type searchRequest struct {
	Query string `json:"query"`
}

type navigateRequest struct {
	Offset int `json:"offset"`
}

// ------------------------------------------------------------
// POST /api/search/start
// ------------------------------------------------------------
func startSearchHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid_body"}`, http.StatusBadRequest)
		return
	}

	req.Query = strings.TrimSpace(req.Query)
	if req.Query == "" {
		http.Error(w, `{"error":"empty_query"}`, http.StatusBadRequest)
		return
	}

	job := jobs.Manager.CreateJob(req.Query)
	go view.RunBackgroundSearch(session, job, req.Query)

	json.NewEncoder(w).Encode(map[string]string{
		"jobID": job.ID,
	})
}

// ------------------------------------------------------------
// POST /api/navigate   body: {"offset": 1} or {"offset": -1}
// ------------------------------------------------------------
func navigateHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req navigateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid_body"}`, http.StatusBadRequest)
		return
	}
	if req.Offset != 1 && req.Offset != -1 {
		http.Error(w, `{"error":"offset_must_be_plus_or_minus_one"}`, http.StatusBadRequest)
		return
	}

	job := jobs.Manager.CreateJob("navigate")
	go view.RunBackgroundNavigate(session, job, req.Offset)

	json.NewEncoder(w).Encode(map[string]string{
		"jobID": job.ID,
	})
}

// ------------------------------------------------------------
// GET /api/search/status?jobID=<jobID>
// ------------------------------------------------------------
func searchStatusHandler(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("jobID")

	job, ok := jobs.Manager.Get(id)
	if !ok {
		http.Error(w, "job not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(job)
}

// ------------------------------------------------------------
// GET /api/state — current view snapshot
// ------------------------------------------------------------
func stateHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(session.Snapshot())
}

// ------------------------------------------------------------
// GET /api/suggest?q=<partial name or id>
// ------------------------------------------------------------
func suggestHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(suggestions.Suggest(q, 8))
}
