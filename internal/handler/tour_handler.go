package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"spicysmp_store/internal/store"
)

type TourHandler struct {
	logger *log.Logger
	flags  store.FlagStore
}

func NewTourHandler(logger *log.Logger, flags store.FlagStore) *TourHandler {
	return &TourHandler{
		logger: logger,
		flags:  flags,
	}
}

type TourResponsePayload struct {
	Seen bool `json:"seen"`
}

// ServeHTTP handles GET /tour?player= and POST /tour/dismiss?player=.
func (h *TourHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	player := r.URL.Query().Get("player")
	if player == "" {
		http.Error(w, "player query parameter is required", http.StatusBadRequest)
		return
	}

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/tour":
		seen, err := h.flags.Seen(r.Context(), player)
		if err != nil {
			h.logger.Printf("Error reading tour flag for %s: %v", player, err)
			http.Error(w, "Failed to read tour state", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(TourResponsePayload{Seen: seen}); err != nil {
			h.logger.Printf("Error encoding tour response: %v", err)
		}

	case r.Method == http.MethodPost && r.URL.Path == "/tour/dismiss":
		if err := h.flags.MarkSeen(r.Context(), player); err != nil {
			h.logger.Printf("Error marking tour seen for %s: %v", player, err)
			http.Error(w, "Failed to save tour state", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(TourResponsePayload{Seen: true}); err != nil {
			h.logger.Printf("Error encoding tour response: %v", err)
		}

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
