package main

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/automoto/playmates/shared/messages"
	"github.com/gorilla/mux"
)

const maxRequestBody = 1 << 16 // 64 KB

// Server holds the HTTP handlers' shared state.
type Server struct {
	board  *Board
	origin string
	top    int
}

func NewServer(board *Board, origin string, top int) *Server {
	return &Server{board: board, origin: origin, top: top}
}

// Routes builds the service router.
func (s *Server) Routes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/", s.ListLeaderboard).Methods(http.MethodGet)
	r.HandleFunc("/save-session", s.SaveSession).Methods(http.MethodPost)
	r.HandleFunc("/health", s.Health).Methods(http.MethodGet)
	r.Methods(http.MethodOptions).HandlerFunc(s.Preflight)
	r.Use(s.cors)
	return r
}

func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		next.ServeHTTP(w, r)
	})
}

func (s *Server) Preflight(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) ListLeaderboard(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, messages.LeaderboardResponse{
		Message: "Leaderboard retrieved",
		Data:    s.board.Top(s.top),
	})
}

func (s *Server) SaveSession(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	var req messages.SaveSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, messages.ErrorResponse{Message: "invalid json"})
		return
	}

	id, err := s.board.Save(req.Username, req.CaughtButterflies)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, messages.ErrorResponse{Message: err.Error()})
		return
	}

	log.Printf("[leaderboard] saved session %s: %q caught %d", id, req.Username, req.CaughtButterflies)

	writeJSON(w, http.StatusCreated, messages.SaveSessionResponse{
		ID:          id,
		Leaderboard: s.board.Top(s.top),
	})
}

func (s *Server) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, messages.HealthResponse{Status: messages.StatusHealthy})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[leaderboard] encode error: %v", err)
	}
}
