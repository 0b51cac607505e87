package service

import (
	"strings"
	"sync"

	"greenfitness-api/internal/models"

	"github.com/google/uuid"
)

// Search history kept per session, oldest dropped first.
const maxSearchHistory = 10

// Session is the explicit interaction context for one UI connection: the
// current query, result set, selection and studio filters. It replaces a
// process-global state bag; all mutation goes through the methods below.
type Session struct {
	ID string

	mu            sync.Mutex
	query         *models.SearchRequest
	result        *models.SearchResult
	selection     *models.CatalogEntry
	stations      []models.ChargingStation
	studioFilters map[string]bool
	history       []string
}

// SessionView is a read-only JSON snapshot of a session.
type SessionView struct {
	ID            string                   `json:"id"`
	Query         *models.SearchRequest    `json:"query,omitempty"`
	Result        *models.SearchResult     `json:"result,omitempty"`
	Selection     *models.CatalogEntry     `json:"selection,omitempty"`
	Stations      []models.ChargingStation `json:"stations,omitempty"`
	StudioFilters map[string]bool          `json:"studio_filters"`
	History       []string                 `json:"history"`
}

// ApplySearch installs a new query and its result, superseding and
// discarding the previous result set, selection and stations. Studio filters
// for newly seen names default to enabled; existing choices are kept.
func (s *Session) ApplySearch(req models.SearchRequest, result *models.SearchResult, names map[string]struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.query = &req
	s.result = result
	s.selection = nil
	s.stations = nil

	for name := range names {
		if _, ok := s.studioFilters[name]; !ok {
			s.studioFilters[name] = true
		}
	}

	if loc := strings.TrimSpace(req.Location); loc != "" {
		s.appendHistory(loc)
	}
}

func (s *Session) appendHistory(location string) {
	for _, h := range s.history {
		if h == location {
			return
		}
	}
	s.history = append(s.history, location)
	if len(s.history) > maxSearchHistory {
		s.history = s.history[1:]
	}
}

// ApplySelection records the selected entry and its nearby stations.
func (s *Session) ApplySelection(entry models.CatalogEntry, stations []models.ChargingStation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = &entry
	s.stations = stations
}

// ClearSelection drops the current selection and its stations.
func (s *Session) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = nil
	s.stations = nil
}

// SetStudioFilter toggles one studio chain on or off for display.
func (s *Session) SetStudioFilter(name string, enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.studioFilters[name] = enabled
}

// View returns a snapshot safe for serialization.
func (s *Session) View() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	filters := make(map[string]bool, len(s.studioFilters))
	for k, v := range s.studioFilters {
		filters[k] = v
	}
	history := make([]string, len(s.history))
	copy(history, s.history)

	return SessionView{
		ID:            s.ID,
		Query:         s.query,
		Result:        s.result,
		Selection:     s.selection,
		Stations:      s.stations,
		StudioFilters: filters,
		History:       history,
	}
}

// SessionStore owns all live sessions, keyed by ID.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewSessionStore creates an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*Session)}
}

// Create registers a new session and returns it.
func (st *SessionStore) Create() *Session {
	s := &Session{
		ID:            uuid.NewString(),
		studioFilters: make(map[string]bool),
	}
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// Get looks up a session by ID.
func (st *SessionStore) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}

// Delete removes a session.
func (st *SessionStore) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}
