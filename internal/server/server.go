package server

import (
	"fmt"
	"log"
	"net/http"

	"agentes/internal/words"
)

// Server ties together the HTTP API and WebSocket handling.
type Server struct {
	handlers *Handlers
	port     int
	origin   string
}

func New(port int, frontendOrigin string, wordList []words.Entry) *Server {
	return &Server{
		handlers: NewHandlers(wordList),
		port:     port,
		origin:   frontendOrigin,
	}
}

func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", s.handlers.HandleHealth)
	mux.HandleFunc("GET /api/topics", s.handlers.HandleTopics)
	mux.HandleFunc("POST /api/rooms", s.handlers.HandleCreateRoom)
	mux.HandleFunc("POST /api/rooms/{code}/join", s.handlers.HandleJoinRoom)
	mux.HandleFunc("GET /api/rooms/{code}", s.handlers.HandleGetRoom)
	mux.HandleFunc("GET /api/qr", s.handlers.HandleQR)
	mux.HandleFunc("/ws", s.handlers.HandleWS)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("agentes server listening on %s", addr)
	return http.ListenAndServe(addr, s.cors(mux))
}

// cors allows the configured frontend origin on API responses.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
