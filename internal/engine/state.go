package engine

// Participant is the lobby-level identity handed to role assignment.
type Participant struct {
	ID       string `json:"id"`
	Nickname string `json:"nickname"`
	Host     bool   `json:"isHost,omitempty"`
}

// GamePlayer is a participant with a dealt hidden role. Role and faction
// are fixed for the game's lifetime; only Alive may change.
type GamePlayer struct {
	ID       string  `json:"id"`
	Nickname string  `json:"nickname"`
	Host     bool    `json:"isHost,omitempty"`
	Faction  Faction `json:"faction"`
	Role     Role    `json:"role"`
	Alive    bool    `json:"alive"`
}

// Investigation records the outcome of an investigate power for the
// acting president. The revealed faction is private knowledge; snapshots
// strip it for everyone else.
type Investigation struct {
	InvestigatorID string  `json:"investigatorId"`
	TargetID       string  `json:"targetId"`
	Faction        Faction `json:"faction"`
}

// State is the full authoritative game state for one room. Transitions
// never mutate a State in place: an accepted intent returns a fresh
// copy, a rejected one returns the identical pointer so callers can
// tell the two apart.
type State struct {
	RoomCode string       `json:"roomCode"`
	Phase    Phase        `json:"phase"`
	Players  []GamePlayer `json:"players"` // seating order, fixed at assignment

	PresidentID  string `json:"presidentId,omitempty"`
	ChancellorID string `json:"chancellorId,omitempty"`

	LoyalPolicies       int `json:"loyalPolicies"`
	InfiltratedPolicies int `json:"infiltratedPolicies"`
	Chaos               int `json:"chaos"` // election tracker, 0..2 between forced enactments

	Deck    []Card `json:"deck"`
	Discard []Card `json:"discard"`
	Hand    []Card `json:"hand,omitempty"` // held by the sitting government

	PendingPower  Power          `json:"pendingPower,omitempty"`
	Investigation *Investigation `json:"lastInvestigation,omitempty"`

	Winner Winner `json:"winner,omitempty"`

	Ready map[string]bool `json:"ready,omitempty"` // role-reveal gate

	// Original roster, kept so a restart can redeal the same table.
	roster []Participant
}

// clone returns a deep copy suitable for mutation by a transition.
func (s *State) clone() *State {
	next := *s
	next.Players = make([]GamePlayer, len(s.Players))
	copy(next.Players, s.Players)
	next.Deck = append([]Card(nil), s.Deck...)
	next.Discard = append([]Card(nil), s.Discard...)
	next.Hand = append([]Card(nil), s.Hand...)
	if s.Investigation != nil {
		inv := *s.Investigation
		next.Investigation = &inv
	}
	next.Ready = make(map[string]bool, len(s.Ready))
	for id, ok := range s.Ready {
		next.Ready[id] = ok
	}
	return &next
}

// Player returns the seated player with the given id, or nil.
func (s *State) Player(id string) *GamePlayer {
	for i := range s.Players {
		if s.Players[i].ID == id {
			return &s.Players[i]
		}
	}
	return nil
}

// AliveCount returns the number of players still in the game.
func (s *State) AliveCount() int {
	n := 0
	for i := range s.Players {
		if s.Players[i].Alive {
			n++
		}
	}
	return n
}

// seatOf returns the seat index of the given player, or -1.
func (s *State) seatOf(id string) int {
	for i := range s.Players {
		if s.Players[i].ID == id {
			return i
		}
	}
	return -1
}

// nextPresident scans forward in seating order, wrapping, for the next
// alive player after the current president. Eliminated players keep
// their seats and are skipped. With no sitting president the first
// alive seat is chosen.
func (s *State) nextPresident() string {
	cur := s.seatOf(s.PresidentID)
	if cur < 0 {
		for i := range s.Players {
			if s.Players[i].Alive {
				return s.Players[i].ID
			}
		}
		return ""
	}
	for step := 1; step <= len(s.Players); step++ {
		seat := (cur + step) % len(s.Players)
		if seat == cur {
			continue
		}
		if s.Players[seat].Alive {
			return s.Players[seat].ID
		}
	}
	return s.PresidentID
}
