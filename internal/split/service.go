package split

import (
	"errors"
	"fmt"
	"sync"
)

// ErrNoSession is returned when a turn arrives for a conversation with no
// active session.
var ErrNoSession = errors.New("no active session")

// Service is the entry point the transport talks to. It owns the session
// store and serializes turn handling against status snapshots; the transport
// only ever hands it a conversation id and a line of text.
type Service struct {
	mu    sync.Mutex
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Start creates a fresh session for the conversation, discarding any
// unfinished one, and returns the opening prompt.
func (s *Service) Start(id string) Reply {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.store.Create(id)
	return Reply{Text: sess.Prompt()}
}

// Active reports whether the conversation has a live session.
func (s *Service) Active(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.store.Get(id)
	return ok
}

// Submit advances the conversation's state machine by one turn. Parse errors
// reject the turn without advancing state; the caller should relay the error
// and wait for corrected input. A settled session is removed from the store.
func (s *Service) Submit(id, line string) (Reply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.store.Get(id)
	if !ok {
		return Reply{}, fmt.Errorf("%w: %s", ErrNoSession, id)
	}
	reply, err := sess.HandleInput(line)
	if err != nil {
		return Reply{}, err
	}
	if reply.Settled {
		s.store.Delete(id)
	}
	return reply, nil
}

// Cancel discards the conversation's session. Calling it with no session
// active is a no-op.
func (s *Service) Cancel(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Delete(id)
}

// SessionInfo is a read-only snapshot of one live session.
type SessionInfo struct {
	ID           string  `json:"id"`
	Phase        string  `json:"phase"`
	Participants int     `json:"participants"`
	Remaining    float64 `json:"remaining"`
}

// Sessions snapshots every live session for status reporting.
func (s *Service) Sessions() []SessionInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	infos := make([]SessionInfo, 0)
	for _, id := range s.store.IDs() {
		sess, ok := s.store.Get(id)
		if !ok {
			continue
		}
		infos = append(infos, SessionInfo{
			ID:           id,
			Phase:        sess.Phase.String(),
			Participants: len(sess.Ledger.Order),
			Remaining:    sess.Ledger.Remaining(),
		})
	}
	return infos
}
