package web

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fr4nk3nst1ner/jobboard/internal/board"
)

const sessionCookie = "jobboard_session"

type session struct {
	board    *board.Board
	lastSeen time.Time
}

// sessionStore gives every browser its own in-memory board
type sessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	max      int
	now      func() time.Time
	newBoard func() *board.Board
	sessions map[string]*session
}

func newSessionStore(ttl time.Duration, max int, newBoard func() *board.Board) *sessionStore {
	return &sessionStore{
		ttl:      ttl,
		max:      max,
		now:      time.Now,
		newBoard: newBoard,
		sessions: make(map[string]*session),
	}
}

// boardFor returns the caller's board, starting a new session when needed
func (s *sessionStore) boardFor(w http.ResponseWriter, r *http.Request) *board.Board {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.purgeLocked(now)

	if c, err := r.Cookie(sessionCookie); err == nil {
		if sess, ok := s.sessions[c.Value]; ok {
			sess.lastSeen = now
			return sess.board
		}
	}

	if s.max > 0 && len(s.sessions) >= s.max {
		s.evictOldestLocked()
	}

	id := uuid.NewString()
	sess := &session{board: s.newBoard(), lastSeen: now}
	s.sessions[id] = sess

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sess.board
}

func (s *sessionStore) purgeLocked(now time.Time) {
	if s.ttl <= 0 {
		return
	}
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) > s.ttl {
			delete(s.sessions, id)
		}
	}
}

func (s *sessionStore) evictOldestLocked() {
	var oldestID string
	var oldest time.Time
	for id, sess := range s.sessions {
		if oldestID == "" || sess.lastSeen.Before(oldest) {
			oldestID, oldest = id, sess.lastSeen
		}
	}
	delete(s.sessions, oldestID)
}

func (s *sessionStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
