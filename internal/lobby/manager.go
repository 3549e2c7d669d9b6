package lobby

import (
	"math/rand/v2"
	"sync"
)

// codeAlphabet omits ambiguous characters (I, L, O, 0, 1).
const codeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const codeLength = 5

// Manager owns all rooms in the process.
type Manager struct {
	mu    sync.Mutex
	rooms map[string]*Room
}

func NewManager() *Manager {
	return &Manager{rooms: make(map[string]*Room)}
}

// Create makes a room with a fresh unique code.
func (m *Manager) Create(gameType GameType) *Room {
	m.mu.Lock()
	defer m.mu.Unlock()

	var code string
	for {
		code = generateCode()
		if _, taken := m.rooms[code]; !taken {
			break
		}
	}
	room := newRoom(code, gameType)
	m.rooms[code] = room
	return room
}

// Get returns a room by code, or nil.
func (m *Manager) Get(code string) *Room {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rooms[code]
}

// Remove drops a room once its hub shuts down.
func (m *Manager) Remove(code string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rooms, code)
}

func generateCode() string {
	b := make([]byte, codeLength)
	for i := range b {
		b[i] = codeAlphabet[rand.IntN(len(codeAlphabet))]
	}
	return string(b)
}
