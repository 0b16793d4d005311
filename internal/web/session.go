package web

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"sync"
)

const sessionCookie = "menu_scanner_session"

// session carries the per-visitor view state: the upload workflow and the
// saved-menus list. It lives only in memory and dies with the process.
type session struct {
	upload *UploadController
	list   *ListView
}

// sessionStore keeps sessions keyed by a random cookie id.
type sessionStore struct {
	backend Backend

	mu       sync.Mutex
	sessions map[string]*session
}

func newSessionStore(backend Backend) *sessionStore {
	return &sessionStore{
		backend:  backend,
		sessions: make(map[string]*session),
	}
}

// get returns the visitor's session, creating one (and setting the cookie)
// on first contact.
func (s *sessionStore) get(w http.ResponseWriter, r *http.Request) *session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cookie, err := r.Cookie(sessionCookie); err == nil {
		if sess, ok := s.sessions[cookie.Value]; ok {
			return sess
		}
	}

	id := newSessionID()
	sess := &session{
		upload: NewUploadController(s.backend),
		list:   NewListView(s.backend),
	}
	s.sessions[id] = sess

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sess
}

func newSessionID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return hex.EncodeToString(buf)
}
