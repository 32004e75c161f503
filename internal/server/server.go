package server

import (
	"net/http"

	"word-rush/internal/config"

	"gorm.io/gorm"
)

type Server struct {
	store    *Store
	db       *gorm.DB
	cfg      config.Config
	sessions *sessionStore
	limiter  *rateLimiter
}

func New(conn *gorm.DB, cfg config.Config) *Server {
	return &Server{
		store:    NewStore(),
		db:       conn,
		cfg:      cfg,
		sessions: newSessionStore(conn),
		limiter:  newRateLimiter(),
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/games", s.handleCreateGame)
	mux.HandleFunc("GET /api/games", s.handleListGames)
	mux.HandleFunc("GET /api/games/", s.handleGameSubroutes)
	mux.HandleFunc("POST /api/games/", s.handleGameSubroutes)
	mux.HandleFunc("GET /api/admin/words", s.handleAdminWords)
	mux.HandleFunc("POST /api/admin/words", s.handleAdminWordCreate)
	mux.HandleFunc("POST /api/admin/words/delete", s.handleAdminWordDelete)
	return mux
}
