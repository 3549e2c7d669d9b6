package engine

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrPlayerCount is wrapped by AssignRoles for unsupported roster sizes.
var ErrPlayerCount = errors.New("unsupported player count")

// AssignRoles deals hidden roles for the given roster and produces the
// initial state in ROLE_REVEAL. The roster order fixes the seating
// order; roles are shuffled independently of seats. Rosters outside
// 5-10 players are a configuration error, not a state to clamp.
func AssignRoles(roomCode string, players []Participant) (*State, error) {
	counts, ok := roleTable[len(players)]
	if !ok {
		return nil, fmt.Errorf("%w: %d players, need %d-%d", ErrPlayerCount, len(players), MinPlayers, MaxPlayers)
	}

	pool := make([]Role, 0, len(players))
	pool = append(pool, RoleLeader)
	for i := 0; i < counts.infiltrated; i++ {
		pool = append(pool, RoleInfiltrated)
	}
	for i := 0; i < counts.citizens; i++ {
		pool = append(pool, RoleCitizen)
	}
	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	seated := make([]GamePlayer, len(players))
	for i, p := range players {
		role := pool[i]
		faction := FactionLoyal
		if role != RoleCitizen {
			faction = FactionInfiltrated
		}
		seated[i] = GamePlayer{
			ID:       p.ID,
			Nickname: p.Nickname,
			Host:     p.Host,
			Faction:  faction,
			Role:     role,
			Alive:    true,
		}
	}

	s := &State{
		RoomCode: roomCode,
		Phase:    PhaseRoleReveal,
		Players:  seated,
		Deck:     NewDeck(),
		Ready:    make(map[string]bool),
		roster:   append([]Participant(nil), players...),
	}
	s.PresidentID = s.nextPresident()
	return s, nil
}

// Restart redeals the same table: fresh roles, fresh deck, all progress
// discarded. Valid from any phase; the room decides when to call it.
func (s *State) Restart() (*State, error) {
	return AssignRoles(s.RoomCode, s.roster)
}
