package engine

// Powers are resolved by the sitting president while the game is in
// POWER_RESOLUTION with the matching power pending. Each unlock grants
// exactly one use; resolving it clears the pending power before the
// presidency rotates.

// Execute eliminates an alive target. Shooting the leader ends the game
// for the loyalists on the spot.
func (s *State) Execute(actorID, targetID string) *State {
	if s.Phase != PhasePowerResolution || s.PendingPower != PowerExecute {
		return s
	}
	if s.PresidentID != actorID {
		return s
	}
	target := s.Player(targetID)
	if target == nil || !target.Alive {
		return s
	}

	next := s.clone()
	victim := next.Player(targetID)
	victim.Alive = false
	next.PendingPower = ""

	if victim.Role == RoleLeader {
		next.Winner = WinnerLoyalists
		next.Phase = PhaseGameOver
		return next
	}

	next.Chaos = 0
	next.ChancellorID = ""
	next.Phase = PhaseChooseChancellor
	next.PresidentID = next.nextPresident()
	return next
}

// Investigate reveals a target's faction to the acting president. The
// target is untouched; only the investigation record changes, and
// snapshots keep the revealed faction private to the investigator.
func (s *State) Investigate(actorID, targetID string) *State {
	if s.Phase != PhasePowerResolution || s.PendingPower != PowerInvestigate {
		return s
	}
	if s.PresidentID != actorID || actorID == targetID {
		return s
	}
	target := s.Player(targetID)
	if target == nil || !target.Alive {
		return s
	}

	next := s.clone()
	next.Investigation = &Investigation{
		InvestigatorID: actorID,
		TargetID:       targetID,
		Faction:        target.Faction,
	}
	next.PendingPower = ""
	next.Chaos = 0
	next.ChancellorID = ""
	next.Phase = PhaseChooseChancellor
	next.PresidentID = next.nextPresident()
	return next
}
