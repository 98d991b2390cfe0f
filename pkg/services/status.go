package services

import (
	"sync"
	"time"

	"intellecta-site/pkg/models"
)

type sessionStatus struct {
	status models.SubmitStatus
	timer  *time.Timer
}

// StatusStore tracks the contact button status per visitor session.
// Idle sessions hold no entry; a done session returns to idle after resetAfter.
type StatusStore struct {
	sessions   map[string]*sessionStatus
	mu         sync.RWMutex
	resetAfter time.Duration
}

// NewStatusStore creates a store that resets finished sessions after resetAfter.
func NewStatusStore(resetAfter time.Duration) *StatusStore {
	return &StatusStore{
		sessions:   make(map[string]*sessionStatus),
		resetAfter: resetAfter,
	}
}

// Get returns the current status of a session.
func (s *StatusStore) Get(session string) models.SubmitStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if st, ok := s.sessions[session]; ok {
		return st.status
	}
	return models.StatusIdle
}

// Begin moves a session from idle to sending. An empty session is not tracked.
func (s *StatusStore) Begin(session string) error {
	if session == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current := models.StatusIdle
	if st, ok := s.sessions[session]; ok {
		current = st.status
	}
	next, err := current.Transition(models.StatusSending)
	if err != nil {
		return err
	}
	s.sessions[session] = &sessionStatus{status: next}
	return nil
}

// Finish moves a session from sending to done and schedules the return to idle.
func (s *StatusStore) Finish(session string) error {
	if session == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.sessions[session]
	if !ok {
		_, err := models.StatusIdle.Transition(models.StatusDone)
		return err
	}
	next, err := st.status.Transition(models.StatusDone)
	if err != nil {
		return err
	}
	st.status = next
	st.timer = time.AfterFunc(s.resetAfter, func() { s.reset(session) })
	return nil
}

func (s *StatusStore) reset(session string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.sessions[session]
	if !ok {
		return
	}
	if _, err := st.status.Transition(models.StatusIdle); err != nil {
		return
	}
	delete(s.sessions, session)
}

// Len reports how many sessions are not idle.
func (s *StatusStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Close stops pending resets.
func (s *StatusStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for session, st := range s.sessions {
		if st.timer != nil {
			st.timer.Stop()
		}
		delete(s.sessions, session)
	}
}
