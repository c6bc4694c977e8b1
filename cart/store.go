package cart

import "sync"

// Store holds one live Session per customer. Sessions are in-memory
// only: dropped on logout, gone on restart.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	opts     []Option
}

func NewStore(opts ...Option) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		opts:     opts,
	}
}

// Get returns the customer's session, creating it on first use.
func (st *Store) Get(userID string) *Session {
	st.mu.RLock()
	s, ok := st.sessions[userID]
	st.mu.RUnlock()
	if ok {
		return s
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if s, ok = st.sessions[userID]; ok {
		return s
	}
	s = NewSession(st.opts...)
	st.sessions[userID] = s
	return s
}

// Drop discards the customer's session, if any.
func (st *Store) Drop(userID string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, userID)
}
