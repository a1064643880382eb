// Package web exposes the HTTP trigger surface for ranking refreshes.
package web

import (
	"context"
	"net/http"
	"time"

	"github.com/geeklink/ranking-service/cfg"
	"github.com/geeklink/ranking-service/pkg/log"
)

type Server struct {
	Logger  log.Logger
	Config  *cfg.Config
	handler *Handler
	mux     *http.ServeMux
	httpSrv *http.Server
}

func NewServer(config *cfg.Config, logger log.Logger, handler *Handler) (*Server, error) {
	s := &Server{
		Logger:  logger,
		Config:  config,
		handler: handler,
		mux:     http.NewServeMux(),
	}
	s.routes()

	s.httpSrv = &http.Server{
		Addr:         config.Server.Host + ":" + config.Server.Port,
		Handler:      withCors(s.mux),
		ReadTimeout:  time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.Server.WriteTimeout) * time.Second,
	}
	return s, nil
}

func (s *Server) ListenAndServe() error {
	s.Logger.Info(context.Background(), "HTTP server listening on %s", s.httpSrv.Addr)
	return s.httpSrv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

// withCors mirrors the permissive policy of the client-facing app: any
// origin may trigger a refresh.
func withCors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Cache-Control")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
