package app

import (
	"context"
	"net/http"
	"time"

	"field-sales/internal/handler"
)

type Server struct {
	httpServer *http.Server
}

func NewServer(serviceName string, handlers handler.Handlers) *Server {
	router := handler.NewRouter(serviceName, handlers)

	return &Server{
		httpServer: &http.Server{
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

func (s *Server) Run(addr string) error {
	s.httpServer.Addr = addr
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
