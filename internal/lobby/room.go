package lobby

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"agentes/internal/engine"
)

// GameType selects which engine a room runs.
type GameType string

const (
	GameAgents   GameType = "AGENTS"
	GameImpostor GameType = "IMPOSTOR"
)

// Room is one lobby: a code, a host, an ordered roster. Roster order is
// significant: it becomes the seating order at role assignment.
type Room struct {
	mu sync.Mutex

	Code     string
	GameType GameType
	HostID   string
	players  []engine.Participant
	started  bool
}

const (
	// MaxPlayers is intentionally looser than the engine bound: a room
	// can overfill, but role assignment will refuse to start it.
	MaxPlayers = 12
)

func newRoom(code string, gameType GameType) *Room {
	return &Room{Code: code, GameType: gameType}
}

// Join adds a player and returns the assigned identity. Joining an
// already-started room is rejected; reconnecting clients keep their
// original id and never come back through here.
func (r *Room) Join(nickname string) (engine.Participant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.started {
		return engine.Participant{}, fmt.Errorf("room %s already started", r.Code)
	}
	if len(r.players) >= MaxPlayers {
		return engine.Participant{}, fmt.Errorf("room %s is full", r.Code)
	}

	p := engine.Participant{
		ID:       uuid.NewString(),
		Nickname: nickname,
		Host:     len(r.players) == 0,
	}
	if p.Host {
		r.HostID = p.ID
	}
	r.players = append(r.players, p)
	return p, nil
}

// Leave removes a player. No-op once the game has started; eliminated
// and disconnected players keep their seats.
func (r *Room) Leave(playerID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.started {
		return
	}
	for i, p := range r.players {
		if p.ID == playerID {
			r.players = append(r.players[:i], r.players[i+1:]...)
			return
		}
	}
}

// Players returns the roster in join order.
func (r *Room) Players() []engine.Participant {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]engine.Participant(nil), r.players...)
}

// IsHost reports whether the given player created the room.
func (r *Room) IsHost(playerID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.HostID == playerID
}

// Start marks the room started. Only the host may start, and only once.
func (r *Room) Start(playerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if playerID != r.HostID {
		return fmt.Errorf("only the host can start the game")
	}
	if r.started {
		return fmt.Errorf("game already started")
	}
	r.started = true
	return nil
}

// Started reports whether the game has begun.
func (r *Room) Started() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.started
}
