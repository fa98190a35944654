// Command leaderboard serves the butterfly catching leaderboard.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"
)

func main() {
	port := flag.Int("port", 8000, "HTTP listen port")
	origin := flag.String("origin", "http://localhost:3000", "Allowed CORS origin")
	top := flag.Int("top", 10, "Rows returned by the leaderboard")
	maxName := flag.Int("max-name", MaxNameLength, "Maximum username length in characters")
	flag.Parse()

	board := NewBoard(*maxName)
	srv := NewServer(board, *origin, *top)

	addr := fmt.Sprintf(":%d", *port)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("[leaderboard] starting on %s (origin=%s, top=%d)", addr, *origin, *top)
	if err := httpServer.ListenAndServe(); err != nil {
		log.Fatalf("[leaderboard] fatal: %v", err)
	}
}
