package bot

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionStore_IdleByDefault(t *testing.T) {
	s := NewSessionStore()

	sess := s.Get(1)

	assert.Equal(t, StateIdle, sess.State)
	assert.Empty(t, sess.ChosenDate)
}

func TestSessionStore_PutGetReset(t *testing.T) {
	s := NewSessionStore()

	s.Put(1, Session{State: StateAwaitingDocument, ChosenDate: "2024-01-10"})

	sess := s.Get(1)
	assert.Equal(t, StateAwaitingDocument, sess.State)
	assert.Equal(t, "2024-01-10", sess.ChosenDate)

	s.Reset(1)
	assert.Equal(t, StateIdle, s.Get(1).State)
}

func TestSessionStore_UsersAreIndependent(t *testing.T) {
	s := NewSessionStore()

	s.Put(1, Session{State: StateAwaitingDate})
	s.Put(2, Session{State: StateAwaitingDocument, ChosenDate: "2024-01-10"})

	assert.Equal(t, StateAwaitingDate, s.Get(1).State)
	assert.Equal(t, StateAwaitingDocument, s.Get(2).State)

	s.Reset(1)
	assert.Equal(t, StateIdle, s.Get(1).State)
	assert.Equal(t, StateAwaitingDocument, s.Get(2).State)
}

func TestSessionStore_ConcurrentAccess(t *testing.T) {
	s := NewSessionStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			s.Put(id, Session{State: StateAwaitingDate})
			_ = s.Get(id)
			s.Reset(id)
		}(int64(i))
	}
	wg.Wait()
}
