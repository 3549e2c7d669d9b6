package engine

// Snapshots are what actually leaves the server. The State carries full
// hidden information; SnapshotFor strips it down to what one recipient
// is allowed to see, so a naive broadcast can never leak a role, the
// deck order or another player's investigation result.

// SeatView is one seated player as a given recipient sees them.
type SeatView struct {
	ID       string  `json:"id"`
	Nickname string  `json:"nickname"`
	Host     bool    `json:"isHost,omitempty"`
	Alive    bool    `json:"alive"`
	Faction  Faction `json:"faction,omitempty"` // only when known to the viewer
	Role     Role    `json:"role,omitempty"`
}

// Snapshot is the per-recipient state sent after every accepted intent.
type Snapshot struct {
	RoomCode string     `json:"roomCode"`
	Phase    string     `json:"phase"`
	Players  []SeatView `json:"players"`

	PresidentID  string `json:"presidentId,omitempty"`
	ChancellorID string `json:"chancellorId,omitempty"`

	LoyalPolicies       int `json:"loyalPolicies"`
	InfiltratedPolicies int `json:"infiltratedPolicies"`
	Chaos               int `json:"chaos"`

	DeckSize    int `json:"deckSize"`
	DiscardSize int `json:"discardSize"`

	Hand []Card `json:"hand,omitempty"` // only for the player holding it

	PendingPower  Power          `json:"pendingPower,omitempty"`
	Investigation *Investigation `json:"lastInvestigation,omitempty"`

	Winner Winner `json:"winner,omitempty"`

	ReadyCount int  `json:"readyCount,omitempty"`
	YouReady   bool `json:"youReady,omitempty"`
}

// SnapshotFor builds the state visible to one player. Infiltrated
// players know each other and the leader; loyal citizens know only
// themselves. Once the game is over every role is public.
func (s *State) SnapshotFor(playerID string) Snapshot {
	viewer := s.Player(playerID)

	snap := Snapshot{
		RoomCode:            s.RoomCode,
		Phase:               s.Phase.String(),
		PresidentID:         s.PresidentID,
		ChancellorID:        s.ChancellorID,
		LoyalPolicies:       s.LoyalPolicies,
		InfiltratedPolicies: s.InfiltratedPolicies,
		Chaos:               s.Chaos,
		DeckSize:            len(s.Deck),
		DiscardSize:         len(s.Discard),
		Winner:              s.Winner,
		ReadyCount:          len(s.Ready),
		YouReady:            s.Ready[playerID],
	}

	over := s.Phase == PhaseGameOver
	viewerInfiltrated := viewer != nil && viewer.Faction == FactionInfiltrated

	snap.Players = make([]SeatView, len(s.Players))
	for i := range s.Players {
		p := &s.Players[i]
		sv := SeatView{
			ID:       p.ID,
			Nickname: p.Nickname,
			Host:     p.Host,
			Alive:    p.Alive,
		}
		if over || p.ID == playerID || viewerInfiltrated {
			sv.Faction = p.Faction
			sv.Role = p.Role
		}
		snap.Players[i] = sv
	}

	if s.holdsHand(playerID) {
		snap.Hand = append([]Card(nil), s.Hand...)
	}

	if s.PresidentID == playerID {
		snap.PendingPower = s.PendingPower
	}

	if inv := s.Investigation; inv != nil && inv.InvestigatorID == playerID {
		copied := *inv
		snap.Investigation = &copied
	}

	return snap
}

// holdsHand reports whether the given player is the one currently
// required to discard from the legislative hand.
func (s *State) holdsHand(playerID string) bool {
	switch s.Phase {
	case PhaseLegislationPresident:
		return s.PresidentID == playerID
	case PhaseLegislationAgent:
		return s.ChancellorID == playerID
	}
	return false
}
