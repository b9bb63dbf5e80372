package api

import (
	"net/http"

	"diving-backend/src/api/routes"
	"diving-backend/src/storage"
)

type Server struct {
	router *routes.Router
}

func DefaultApiServer(storage *storage.Storage) *Server {
	return &Server{router: routes.NewRouter(storage)}
}

func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

func (s *Server) Handler() http.Handler {
	return s.router.Handler()
}
