package web

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/geeklink/ranking-service/pkg/log"
)

// RankingDriver is the refresh entry point the handlers trigger.
type RankingDriver interface {
	UpdateAll(ctx context.Context) error
	UpdateDaily(ctx context.Context) error
}

type Handler struct {
	Logger log.Logger
	Driver RankingDriver
}

func NewHandler(logger log.Logger, driver RankingDriver) (*Handler, error) {
	return &Handler{
		Logger: logger,
		Driver: driver,
	}, nil
}

// UpdateRanking refreshes the weekly and monthly rankings of every family.
func (h *Handler) UpdateRanking(w http.ResponseWriter, r *http.Request) {
	if err := h.Driver.UpdateAll(r.Context()); err != nil {
		h.Logger.Error(r.Context(), "Ranking update failed: %v", err)
		writeError(w, err)
		return
	}
	writeMessage(w, "Rankings updated successfully")
}

// UpdateDailyRanking refreshes the daily rankings and resets online users.
func (h *Handler) UpdateDailyRanking(w http.ResponseWriter, r *http.Request) {
	if err := h.Driver.UpdateDaily(r.Context()); err != nil {
		h.Logger.Error(r.Context(), "Daily ranking update failed: %v", err)
		writeError(w, err)
		return
	}
	writeMessage(w, "Daily rankings updated successfully")
}

func writeMessage(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}

func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":   "Internal Server Error",
		"details": err.Error(),
	})
}
