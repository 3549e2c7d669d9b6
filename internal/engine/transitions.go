package engine

// Transitions validate phase and actor before touching anything. An
// out-of-phase or wrong-actor intent is not an error: it returns the
// unchanged state pointer, which lets the transport treat redelivered
// or stale intents as safe no-ops.

// chaosLimit is the election tracker cap: the third consecutive
// rejected government force-enacts the top card of the deck.
const chaosLimit = 3

// MarkReady records that a seated player has seen their role. Once the
// whole table is ready the game moves to chancellor nomination.
func (s *State) MarkReady(playerID string) *State {
	if s.Phase != PhaseRoleReveal {
		return s
	}
	p := s.Player(playerID)
	if p == nil || s.Ready[playerID] {
		return s
	}

	next := s.clone()
	next.Ready[playerID] = true
	if len(next.Ready) >= len(next.Players) {
		next.Phase = PhaseChooseChancellor
	}
	return next
}

// NominateChancellor is the sitting president proposing a government.
// The nominee must be alive and someone other than the president.
func (s *State) NominateChancellor(presidentID, chancellorID string) *State {
	if s.Phase != PhaseChooseChancellor || s.PresidentID != presidentID {
		return s
	}
	if chancellorID == presidentID {
		return s
	}
	target := s.Player(chancellorID)
	if target == nil || !target.Alive {
		return s
	}

	next := s.clone()
	next.ChancellorID = chancellorID
	next.Phase = PhaseVoting
	return next
}

// SubmitVotes applies a complete tally as one atomic transition. The
// transport accumulates individual ballots until every alive player has
// voted; the engine only ever sees the finished tally. Approval needs a
// strict majority of alive players, counting only ballots cast by
// seated alive players.
func (s *State) SubmitVotes(tally map[string]bool) *State {
	if s.Phase != PhaseVoting {
		return s
	}

	approvals := 0
	for id, approve := range tally {
		p := s.Player(id)
		if p == nil || !p.Alive || !approve {
			continue
		}
		approvals++
	}

	if approvals*2 > s.AliveCount() {
		return s.approveGovernment()
	}

	next := s.clone()
	next.Chaos++
	next.ChancellorID = ""
	if next.Chaos >= chaosLimit {
		// Forced enactment: top card goes into play without a
		// government, powers do not unlock for it.
		var top []Card
		top, next.Deck, next.Discard = Draw(next.Deck, next.Discard, 1)
		next.Chaos = 0
		return next.enactForced(top[0])
	}
	next.Phase = PhaseChooseChancellor
	next.PresidentID = next.nextPresident()
	return next
}

func (s *State) approveGovernment() *State {
	next := s.clone()
	next.Chaos = 0

	// Assassination by election: once three infiltrated policies are in
	// play, electing the leader as chancellor ends the game outright.
	if next.InfiltratedPolicies >= 3 {
		if ch := next.Player(next.ChancellorID); ch != nil && ch.Role == RoleLeader {
			next.Winner = WinnerInfiltrators
			next.Phase = PhaseGameOver
			return next
		}
	}

	next.Hand, next.Deck, next.Discard = Draw(next.Deck, next.Discard, 3)
	next.Phase = PhaseLegislationPresident
	return next
}

// PresidentDiscard is the first legislative step: the president removes
// one of the three drawn cards, passing the rest to the chancellor.
func (s *State) PresidentDiscard(playerID string, cardIndex int) *State {
	if s.Phase != PhaseLegislationPresident || s.PresidentID != playerID {
		return s
	}
	if cardIndex < 0 || cardIndex >= len(s.Hand) {
		return s
	}

	next := s.clone()
	next.Discard = append(next.Discard, next.Hand[cardIndex])
	next.Hand = append(next.Hand[:cardIndex], next.Hand[cardIndex+1:]...)
	next.Phase = PhaseLegislationAgent
	return next
}

// ChancellorDiscard is the second legislative step: the chancellor
// enacts the card at cardIndex and the leftover is discarded.
func (s *State) ChancellorDiscard(playerID string, cardIndex int) *State {
	if s.Phase != PhaseLegislationAgent || s.ChancellorID != playerID {
		return s
	}
	if cardIndex < 0 || cardIndex >= len(s.Hand) {
		return s
	}

	next := s.clone()
	enacted := next.Hand[cardIndex]
	next.Hand = append(next.Hand[:cardIndex], next.Hand[cardIndex+1:]...)
	next.Discard = append(next.Discard, next.Hand...)
	next.Hand = nil
	return next.applyPolicy(enacted)
}

// applyPolicy puts an enacted card into play, checks win conditions and
// routes to the next phase. Chaos resets on every enactment.
func (s *State) applyPolicy(card Card) *State {
	s.Chaos = 0
	s.ChancellorID = ""

	if card == CardLoyal {
		s.LoyalPolicies++
		if s.LoyalPolicies >= 5 {
			s.Winner = WinnerLoyalists
			s.Phase = PhaseGameOver
			return s
		}
		s.Phase = PhaseChooseChancellor
		s.PresidentID = s.nextPresident()
		return s
	}

	s.InfiltratedPolicies++
	if s.InfiltratedPolicies >= 6 {
		s.Winner = WinnerInfiltrators
		s.Phase = PhaseGameOver
		return s
	}

	switch s.InfiltratedPolicies {
	case 3:
		s.PendingPower = PowerInvestigate
	case 4, 5:
		s.PendingPower = PowerExecute
	}
	if s.PendingPower != "" {
		s.Phase = PhasePowerResolution
		return s
	}
	s.Phase = PhaseChooseChancellor
	s.PresidentID = s.nextPresident()
	return s
}

// enactForced applies a chaos-forced policy. The card counts toward win
// conditions but unlocks no power and the presidency rotates as usual.
func (s *State) enactForced(card Card) *State {
	s.Chaos = 0
	s.ChancellorID = ""

	if card == CardLoyal {
		s.LoyalPolicies++
		if s.LoyalPolicies >= 5 {
			s.Winner = WinnerLoyalists
			s.Phase = PhaseGameOver
			return s
		}
	} else {
		s.InfiltratedPolicies++
		if s.InfiltratedPolicies >= 6 {
			s.Winner = WinnerInfiltrators
			s.Phase = PhaseGameOver
			return s
		}
	}

	s.Phase = PhaseChooseChancellor
	s.PresidentID = s.nextPresident()
	return s
}
