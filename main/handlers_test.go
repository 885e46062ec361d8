package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pokedex/internal/jobs"
	"pokedex/internal/suggest"
	"pokedex/internal/view"
	"pokedex/pokeapi"
)

// setupTestSession points the global session at a stub PokeAPI that only
// knows pikachu (no evolution data needed for the handler flow).
func setupTestSession(t *testing.T) {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/pokemon/pikachu" || r.URL.Path == "/pokemon/25" {
			fmt.Fprint(w, `{
				"id": 25, "name": "pikachu", "height": 4, "weight": 60,
				"sprites": {"front_default": "s.png", "other": {"official-artwork": {"front_default": "a.png"}}},
				"types": [{"slot": 1, "type": {"name": "electric", "url": ""}}],
				"species": {"name": "pikachu", "url": "http://127.0.0.1:1/pokemon-species/25/"}
			}`)
			return
		}
		http.Error(w, "not found", http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	old := pokeapi.BaseURL
	pokeapi.BaseURL = srv.URL
	t.Cleanup(func() { pokeapi.BaseURL = old })

	session = view.NewSession(pokeapi.NewClient())
	suggestions = suggest.Load()
}

func postJSON(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

// waitForJob polls the manager the way the frontend polls the endpoint.
func waitForJob(t *testing.T, id string) *jobs.Job {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		job, ok := jobs.Manager.Get(id)
		require.True(t, ok)
		if job.Status == jobs.StatusFinished || job.Status == jobs.StatusError {
			return job
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("job never finished")
	return nil
}

// ------------------------------------------------------------
// start -> poll -> finished
// ------------------------------------------------------------

func TestSearchFlow_StartAndPoll(t *testing.T) {
	setupTestSession(t)

	rec := postJSON(t, startSearchHandler, `{"query": "pikachu"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var start map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &start))
	require.NotEmpty(t, start["jobID"])

	job := waitForJob(t, start["jobID"])
	require.Equal(t, jobs.StatusFinished, job.Status)

	// status endpoint round-trips the job
	req := httptest.NewRequest("GET", "/api/search/status?jobID="+start["jobID"], nil)
	statusRec := httptest.NewRecorder()
	searchStatusHandler(statusRec, req)
	require.Equal(t, http.StatusOK, statusRec.Code)

	var polled jobs.Job
	require.NoError(t, json.Unmarshal(statusRec.Body.Bytes(), &polled))
	require.Equal(t, jobs.StatusFinished, polled.Status)

	// state endpoint reflects the committed record
	stateRec := httptest.NewRecorder()
	stateHandler(stateRec, httptest.NewRequest("GET", "/api/state", nil))

	var snap view.Snapshot
	require.NoError(t, json.Unmarshal(stateRec.Body.Bytes(), &snap))
	require.NotNil(t, snap.Pokemon)
	require.Equal(t, 25, snap.Pokemon.ID)
}

func TestSearchFlow_FailedLookupEndsInErrorJob(t *testing.T) {
	setupTestSession(t)

	rec := postJSON(t, startSearchHandler, `{"query": "missingno"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var start map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &start))

	job := waitForJob(t, start["jobID"])
	require.Equal(t, jobs.StatusError, job.Status)
	require.Contains(t, job.Error, "missingno")
}

// ------------------------------------------------------------
// request validation
// ------------------------------------------------------------

func TestStartSearch_RejectsEmptyQuery(t *testing.T) {
	setupTestSession(t)

	rec := postJSON(t, startSearchHandler, `{"query": "   "}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNavigate_RejectsBadOffset(t *testing.T) {
	setupTestSession(t)

	rec := postJSON(t, navigateHandler, `{"offset": 5}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// ------------------------------------------------------------
// suggestions endpoint
// ------------------------------------------------------------

func TestSuggestHandler(t *testing.T) {
	setupTestSession(t)

	req := httptest.NewRequest("GET", "/api/suggest?q=pika", nil)
	rec := httptest.NewRecorder()
	suggestHandler(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var items []suggest.Entry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.NotEmpty(t, items)
	require.Equal(t, "pikachu", items[0].Name)
}
