package server

import (
	"net/http"

	"github.com/sw33tLie/catalogo/internal/utils"
	"github.com/sw33tLie/catalogo/pkg/browse"
)

type Server struct {
	Session  *browse.Session
	Username string
	Password string
}

func New(session *browse.Session, user, pass string) *Server {
	return &Server{
		Session:  session,
		Username: user,
		Password: pass,
	}
}

// Handler returns the routes with basic auth applied when credentials are set.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// API Group
	mux.HandleFunc("GET /api/items", s.basicAuth(s.handleItems))
	mux.HandleFunc("GET /api/plan", s.basicAuth(s.handlePlan))
	mux.HandleFunc("GET /api/controls", s.basicAuth(s.handleControls))

	// Page
	mux.HandleFunc("GET /{$}", s.basicAuth(s.handleIndex))

	return mux
}

func (s *Server) Start(addr string) error {
	utils.Log.Infof("Starting server on %s (%d items)", addr, s.Session.Len())
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) basicAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.Username == "" && s.Password == "" {
			next(w, r)
			return
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != s.Username || pass != s.Password {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}
