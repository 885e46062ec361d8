package jobs

import (
	"sync"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusRunning  Status = "running"
	StatusFinished Status = "finished"
	StatusError    Status = "error"
)

// Job tracks one background search from submission to completion. Result
// holds the session snapshot once the search finishes.
type Job struct {
	ID     string      `json:"id"`
	Status Status      `json:"status"`
	Query  string      `json:"query"`
	Result interface{} `json:"result"`
	Error  string      `json:"error"`
}

// ManagerStruct manages all jobs in-memory.
type ManagerStruct struct {
	mu   sync.RWMutex
	jobs map[string]*Job
}

// Manager is the global job manager used by the main package.
var Manager = &ManagerStruct{
	jobs: make(map[string]*Job),
}

// CreateJob allocates a new Job with a unique ID and stores it.
func (m *ManagerStruct) CreateJob(query string) *Job {
	j := &Job{
		ID:     uuid.NewString(),
		Status: StatusPending,
		Query:  query,
	}

	m.mu.Lock()
	m.jobs[j.ID] = j
	m.mu.Unlock()

	return j
}

// Update atomically updates a job, if it exists.
func (m *ManagerStruct) Update(id string, fn func(*Job)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if job, ok := m.jobs[id]; ok {
		fn(job)
	}
}

// Get returns a copy of a job by ID, safe to encode without holding the lock.
func (m *ManagerStruct) Get(id string) (*Job, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	job, ok := m.jobs[id]
	if !ok {
		return nil, false
	}
	cp := *job
	return &cp, true
}
