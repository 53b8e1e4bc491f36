package server

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/agilomatrix/racklabel/pkg/label"
)

// JobState is the lifecycle state of a generation job.
type JobState string

// Job lifecycle states.
const (
	JobStateRunning JobState = "running"
	JobStateDone    JobState = "done"
	JobStateFailed  JobState = "failed"
)

// DefaultJobTTL is how long finished jobs (and their artifacts) are kept
// in memory before a sweep removes them.
const DefaultJobTTL = time.Hour

// Job tracks one in-flight or finished generation run. Nothing about a
// job is ever written to disk; the uploaded data lives only for the
// duration of the run and the rendered artifact only until the TTL sweep.
type Job struct {
	ID       string        `json:"id"`
	State    JobState      `json:"state"`
	Variant  label.Variant `json:"variant"`
	Filename string        `json:"filename"`

	Processed       int    `json:"processed"`
	Total           int    `json:"total"`
	CurrentLocation string `json:"current_location,omitempty"`

	Skipped []string `json:"skipped,omitempty"`
	Error   string   `json:"error,omitempty"`

	Pages   int       `json:"pages,omitempty"`
	Created time.Time `json:"created"`

	pdf []byte
}

// JobStore is an in-memory registry of generation jobs keyed by UUID.
// Safe for concurrent use.
type JobStore struct {
	mu   sync.RWMutex
	jobs map[string]*Job
	ttl  time.Duration
	now  func() time.Time
}

// NewJobStore creates a job store. Non-positive TTLs fall back to
// DefaultJobTTL.
func NewJobStore(ttl time.Duration) *JobStore {
	if ttl <= 0 {
		ttl = DefaultJobTTL
	}
	return &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
		now:  time.Now,
	}
}

// Create registers a new running job and returns its ID.
// Expired jobs are swept opportunistically on each create.
func (s *JobStore) Create(filename string, v label.Variant) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()

	id := uuid.NewString()
	s.jobs[id] = &Job{
		ID:       id,
		State:    JobStateRunning,
		Variant:  v,
		Filename: filename,
		Created:  s.now(),
	}
	return id
}

// Get returns a snapshot of a job. The snapshot shares no mutable state
// with the store.
func (s *JobStore) Get(id string) (Job, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	j, ok := s.jobs[id]
	if !ok {
		return Job{}, false
	}
	snap := *j
	snap.Skipped = append([]string(nil), j.Skipped...)
	return snap, true
}

// PDF returns the rendered artifact of a finished job.
func (s *JobStore) PDF(id string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	j, ok := s.jobs[id]
	if !ok || j.State != JobStateDone {
		return nil, false
	}
	return j.pdf, true
}

// Progress updates a running job's position. Called synchronously from
// the engine's progress callback.
func (s *JobStore) Progress(id string, processed, total int, location string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if j, ok := s.jobs[id]; ok && j.State == JobStateRunning {
		j.Processed = processed
		j.Total = total
		j.CurrentLocation = location
	}
}

// Complete marks a job done and attaches its artifact.
func (s *JobStore) Complete(id string, pdf []byte, pages int, skipped []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if j, ok := s.jobs[id]; ok {
		j.State = JobStateDone
		j.Processed = j.Total
		j.CurrentLocation = ""
		j.Pages = pages
		j.Skipped = skipped
		j.pdf = pdf
	}
}

// Fail marks a job failed with a user-presentable reason.
func (s *JobStore) Fail(id string, reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if j, ok := s.jobs[id]; ok {
		j.State = JobStateFailed
		j.CurrentLocation = ""
		j.Error = reason
	}
}

// sweepLocked drops jobs past their TTL. Caller holds the write lock.
func (s *JobStore) sweepLocked() {
	cutoff := s.now().Add(-s.ttl)
	for id, j := range s.jobs {
		if j.Created.Before(cutoff) {
			delete(s.jobs, id)
		}
	}
}
