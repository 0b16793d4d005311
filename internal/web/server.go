package web

import (
	"encoding/base64"
	"log/slog"
	"net/http"
	"strings"
)

// Server serves the menu-scanner web interface.
type Server struct {
	backend   Backend
	basicAuth BasicAuth
	sessions  *sessionStore
	mux       *http.ServeMux
}

// BasicAuth holds optional credentials guarding the page surface.
type BasicAuth struct {
	Username string
	Password string
}

// NewServer creates a new Server with default mux.
func NewServer(backend Backend, basicAuth BasicAuth) *Server {
	return NewServerWithMux(backend, basicAuth, http.NewServeMux())
}

// NewServerWithMux creates a new Server with a custom mux for testing.
func NewServerWithMux(backend Backend, basicAuth BasicAuth, mux *http.ServeMux) *Server {
	s := &Server{
		backend:   backend,
		basicAuth: basicAuth,
		sessions:  newSessionStore(backend),
		mux:       mux,
	}
	s.registerRoutes()
	return s
}

// authenticate checks basic auth credentials
func (s *Server) authenticate(r *http.Request) bool {
	if s.basicAuth.Username == "" && s.basicAuth.Password == "" {
		return true // No auth required if not configured
	}

	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Basic ") {
		return false
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(auth, "Basic "))
	if err != nil {
		return false
	}

	credentials := strings.SplitN(string(decoded), ":", 2)
	if len(credentials) != 2 {
		return false
	}

	return credentials[0] == s.basicAuth.Username && credentials[1] == s.basicAuth.Password
}

// requireAuth middleware
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.authenticate(r) {
			w.Header().Set("WWW-Authenticate", `Basic realm="Menu Scanner"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

// registerRoutes registers all routes on the server's mux.
// Routes must be registered from most specific to least specific to avoid conflicts
func (s *Server) registerRoutes() {
	// Static assets
	s.mux.HandleFunc("GET /static/app.css", s.requireAuth(s.handleStaticCSS))
	s.mux.HandleFunc("GET /static/app.js", s.requireAuth(s.handleStaticJS))

	// Saved menus (most specific paths first)
	s.mux.HandleFunc("POST /menus/{id}/delete", s.requireAuth(s.handleDeleteMenu))
	s.mux.HandleFunc("GET /menus/{id}", s.requireAuth(s.handleMenuDetail))
	s.mux.HandleFunc("GET /menus", s.requireAuth(s.handleListMenus))

	// Upload workflow
	s.mux.HandleFunc("POST /upload", s.requireAuth(s.handleUploadSelect))
	s.mux.HandleFunc("POST /upload/submit", s.requireAuth(s.handleUploadSubmit))
	s.mux.HandleFunc("POST /upload/remove", s.requireAuth(s.handleUploadRemove))

	// Upload page (register last as it's the catch-all)
	s.mux.HandleFunc("GET /", s.requireAuth(s.handleIndex))
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	slog.Info("Starting server", "address", addr)
	return http.ListenAndServe(addr, s.mux)
}

// ServeHTTP implements http.Handler for testing
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
