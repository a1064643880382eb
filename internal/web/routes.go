package web

import "net/http"

func (s *Server) routes() {
	s.mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("Hello World"))
	})

	s.mux.HandleFunc("POST /ranking-update", s.handler.UpdateRanking)
	s.mux.HandleFunc("POST /ranking-update-daily", s.handler.UpdateDailyRanking)
}
