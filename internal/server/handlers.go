package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/websocket"

	"agentes/internal/lobby"
	qr "agentes/internal/qrcode"
	"agentes/internal/words"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handlers holds the HTTP surface: room management, topics, QR join
// links and the WebSocket upgrade.
type Handlers struct {
	rooms    *lobby.Manager
	wordList []words.Entry

	mu   sync.Mutex
	hubs map[string]*Hub
}

func NewHandlers(wordList []words.Entry) *Handlers {
	return &Handlers{
		rooms:    lobby.NewManager(),
		wordList: wordList,
		hubs:     make(map[string]*Hub),
	}
}

type createRoomRequest struct {
	GameType string `json:"gameType"`
	Nickname string `json:"nickname"`
}

type joinRoomRequest struct {
	Nickname string `json:"nickname"`
}

type roomResponse struct {
	RoomCode string `json:"roomCode"`
	GameType string `json:"gameType"`
	PlayerID string `json:"playerId"`
	IsHost   bool   `json:"isHost,omitempty"`
}

// HandleCreateRoom creates a room, seats the creator as host and spins
// up the room's hub.
func (h *Handlers) HandleCreateRoom(w http.ResponseWriter, r *http.Request) {
	var req createRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	req.Nickname = strings.TrimSpace(req.Nickname)
	if req.Nickname == "" {
		httpError(w, http.StatusBadRequest, "nickname is required")
		return
	}

	gameType := lobby.GameAgents
	if strings.EqualFold(req.GameType, string(lobby.GameImpostor)) {
		gameType = lobby.GameImpostor
	}

	room := h.rooms.Create(gameType)
	host, err := room.Join(req.Nickname)
	if err != nil {
		httpError(w, http.StatusInternalServerError, err.Error())
		return
	}

	hub := NewHub(room, h.wordList)
	h.mu.Lock()
	h.hubs[room.Code] = hub
	h.mu.Unlock()
	go hub.Run()

	log.Printf("room %s created (%s) by %s", room.Code, gameType, host.ID)
	writeJSON(w, http.StatusCreated, roomResponse{
		RoomCode: room.Code,
		GameType: string(room.GameType),
		PlayerID: host.ID,
		IsHost:   true,
	})
}

// HandleJoinRoom adds a player to an existing room.
func (h *Handlers) HandleJoinRoom(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(r.PathValue("code"))
	room := h.rooms.Get(code)
	if room == nil {
		httpError(w, http.StatusNotFound, "room not found")
		return
	}

	var req joinRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	req.Nickname = strings.TrimSpace(req.Nickname)
	if req.Nickname == "" {
		httpError(w, http.StatusBadRequest, "nickname is required")
		return
	}

	player, err := room.Join(req.Nickname)
	if err != nil {
		httpError(w, http.StatusConflict, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, roomResponse{
		RoomCode: room.Code,
		GameType: string(room.GameType),
		PlayerID: player.ID,
	})
}

// HandleGetRoom returns the room roster.
func (h *Handlers) HandleGetRoom(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(r.PathValue("code"))
	room := h.rooms.Get(code)
	if room == nil {
		httpError(w, http.StatusNotFound, "room not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"roomCode": room.Code,
		"gameType": room.GameType,
		"players":  room.Players(),
		"started":  room.Started(),
	})
}

// HandleTopics lists the impostor word categories.
func (h *Handlers) HandleTopics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, words.Topics)
}

// HandleQR renders a QR code PNG pointing at the room join link.
func (h *Handlers) HandleQR(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(r.URL.Query().Get("room"))
	if code == "" {
		httpError(w, http.StatusBadRequest, "missing room parameter")
		return
	}
	if h.rooms.Get(code) == nil {
		httpError(w, http.StatusNotFound, "room not found")
		return
	}

	png, err := qr.Generate("http://" + r.Host + "/join?room=" + code)
	if err != nil {
		httpError(w, http.StatusInternalServerError, "QR generation failed")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// HandleHealth is the liveness probe.
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HandleWS upgrades a player's connection and hands it to the room hub.
func (h *Handlers) HandleWS(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(r.URL.Query().Get("room"))
	playerID := r.URL.Query().Get("player")
	if code == "" || playerID == "" {
		httpError(w, http.StatusBadRequest, "missing room or player parameter")
		return
	}

	h.mu.Lock()
	hub := h.hubs[code]
	h.mu.Unlock()
	if hub == nil {
		httpError(w, http.StatusNotFound, "room not found")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	client := NewClient(hub, conn, playerID)
	hub.register <- client

	go client.WritePump()
	go client.ReadPump()
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

func httpError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
