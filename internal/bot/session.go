package bot

import "sync"

// State is the position of a user's booking conversation.
type State int

const (
	StateIdle State = iota
	StateAwaitingDate
	StateAwaitingDocument
)

// Session is the per-user conversation state. ChosenDate is only set while
// the session is in StateAwaitingDocument.
type Session struct {
	State      State
	ChosenDate string
}

// SessionStore keeps one session per Telegram user id. Updates are handled
// on separate goroutines, so access goes through a mutex; a user with no
// entry is idle. Sessions live until completion, cancellation or process
// restart.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[int64]*Session)}
}

// Get returns a copy of the user's session; idle users get a zero session.
func (s *SessionStore) Get(userID int64) Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if sess, ok := s.sessions[userID]; ok {
		return *sess
	}
	return Session{State: StateIdle}
}

func (s *SessionStore) Put(userID int64, sess Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[userID] = &sess
}

// Reset returns the user to idle and discards any partial progress.
func (s *SessionStore) Reset(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, userID)
}
