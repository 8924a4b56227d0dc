package split

import "sync"

// Store holds the live session for each conversation id. Distinct ids are
// independent; turns within one id are sequential, so implementations only
// need to make the map operations themselves safe.
type Store interface {
	Get(id string) (*Session, bool)
	Create(id string) *Session
	Delete(id string)
	IDs() []string
}

// MemoryStore is the in-process Store. Sessions live and die with the
// process; there is no persistence.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*Session)}
}

func (m *MemoryStore) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[id]
	return sess, ok
}

// Create starts a fresh session for the id, overwriting any unfinished one.
func (m *MemoryStore) Create(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess := NewSession()
	m.sessions[id] = sess
	return sess
}

func (m *MemoryStore) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// IDs returns the ids of all live sessions.
func (m *MemoryStore) IDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return ids
}
