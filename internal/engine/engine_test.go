package engine_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"agentes/internal/engine"
)

func roster(n int) []engine.Participant {
	ps := make([]engine.Participant, n)
	for i := range ps {
		ps[i] = engine.Participant{
			ID:       fmt.Sprintf("p%d", i+1),
			Nickname: fmt.Sprintf("Player %d", i+1),
			Host:     i == 0,
		}
	}
	return ps
}

func newGame(t *testing.T, n int) *engine.State {
	t.Helper()
	s, err := engine.AssignRoles("ROOM1", roster(n))
	if err != nil {
		t.Fatalf("AssignRoles(%d): %v", n, err)
	}
	return s
}

// allReady walks the role-reveal gate for every seated player.
func allReady(t *testing.T, s *engine.State) *engine.State {
	t.Helper()
	for _, p := range s.Players {
		s = s.MarkReady(p.ID)
	}
	if s.Phase != engine.PhaseChooseChancellor {
		t.Fatalf("after all ready: phase %s, want CHOOSE_CHANCELLOR", s.Phase)
	}
	return s
}

// checkConservation verifies the fixed 17-card economy.
func checkConservation(t *testing.T, s *engine.State) {
	t.Helper()
	total := s.LoyalPolicies + s.InfiltratedPolicies + len(s.Deck) + len(s.Discard) + len(s.Hand)
	if total != 17 {
		t.Fatalf("card conservation broken: %d policies + %d deck + %d discard + %d hand != 17",
			s.LoyalPolicies+s.InfiltratedPolicies, len(s.Deck), len(s.Discard), len(s.Hand))
	}
}

func TestAssignRolesTable(t *testing.T) {
	tests := []struct {
		players     int
		citizens    int
		infiltrated int
	}{
		{5, 3, 1},
		{6, 4, 1},
		{7, 4, 2},
		{8, 5, 2},
		{9, 5, 3},
		{10, 6, 3},
	}
	for _, tt := range tests {
		s := newGame(t, tt.players)
		var leaders, infiltrated, citizens int
		for _, p := range s.Players {
			switch p.Role {
			case engine.RoleLeader:
				leaders++
				if p.Faction != engine.FactionInfiltrated {
					t.Errorf("%d players: leader has faction %s", tt.players, p.Faction)
				}
			case engine.RoleInfiltrated:
				infiltrated++
			case engine.RoleCitizen:
				citizens++
			}
			if !p.Alive {
				t.Errorf("%d players: %s dealt dead", tt.players, p.ID)
			}
		}
		if leaders != 1 || infiltrated != tt.infiltrated || citizens != tt.citizens {
			t.Errorf("%d players: got %d/%d/%d leader/infiltrated/citizens, want 1/%d/%d",
				tt.players, leaders, infiltrated, citizens, tt.infiltrated, tt.citizens)
		}
		if len(s.Players) != tt.players {
			t.Errorf("%d players: seated %d", tt.players, len(s.Players))
		}
	}
}

func TestAssignRolesRejectsBadCounts(t *testing.T) {
	for _, n := range []int{0, 1, 4, 11, 20} {
		if _, err := engine.AssignRoles("ROOM1", roster(n)); err == nil {
			t.Errorf("AssignRoles(%d) accepted an unsupported roster", n)
		}
	}
}

func TestInitialState(t *testing.T) {
	s := newGame(t, 5)
	if s.Phase != engine.PhaseRoleReveal {
		t.Errorf("phase = %s, want ROLE_REVEAL", s.Phase)
	}
	if s.LoyalPolicies != 0 || s.InfiltratedPolicies != 0 || s.Chaos != 0 {
		t.Errorf("counters not zeroed: %d/%d/%d", s.LoyalPolicies, s.InfiltratedPolicies, s.Chaos)
	}
	if len(s.Deck) != 17 || len(s.Discard) != 0 {
		t.Errorf("deck/discard = %d/%d, want 17/0", len(s.Deck), len(s.Discard))
	}
	if s.PresidentID != s.Players[0].ID {
		t.Errorf("president = %s, want first seat %s", s.PresidentID, s.Players[0].ID)
	}
	var loyal, infiltrated int
	for _, c := range s.Deck {
		if c == engine.CardLoyal {
			loyal++
		} else {
			infiltrated++
		}
	}
	if loyal != 6 || infiltrated != 11 {
		t.Errorf("deck composition %d loyal / %d infiltrated, want 6/11", loyal, infiltrated)
	}
}

func TestShuffleDoesNotMutate(t *testing.T) {
	deck := engine.NewDeck()
	before := append([]engine.Card(nil), deck...)
	engine.Shuffle(deck)
	for i := range deck {
		if deck[i] != before[i] {
			t.Fatal("Shuffle mutated its input")
		}
	}
}

func TestDrawReshufflesKeepsMultiset(t *testing.T) {
	deck := []engine.Card{engine.CardLoyal, engine.CardInfiltrated}
	discard := []engine.Card{engine.CardInfiltrated, engine.CardInfiltrated, engine.CardLoyal}

	drawn, newDeck, newDiscard := engine.Draw(deck, discard, 4)
	if len(drawn) != 4 {
		t.Fatalf("drew %d cards, want 4", len(drawn))
	}
	if len(newDeck)+len(newDiscard) != 1 {
		t.Fatalf("%d cards left in circulation, want 1", len(newDeck)+len(newDiscard))
	}

	count := func(cards ...[]engine.Card) (loyal, infiltrated int) {
		for _, cs := range cards {
			for _, c := range cs {
				if c == engine.CardLoyal {
					loyal++
				} else {
					infiltrated++
				}
			}
		}
		return
	}
	loyal, infiltrated := count(drawn, newDeck, newDiscard)
	if loyal != 2 || infiltrated != 3 {
		t.Errorf("multiset changed: %d loyal / %d infiltrated, want 2/3", loyal, infiltrated)
	}
}

func TestDrawOverCirculationPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Draw beyond circulation did not panic")
		}
	}()
	engine.Draw([]engine.Card{engine.CardLoyal}, nil, 2)
}

func TestReadyGate(t *testing.T) {
	s := newGame(t, 5)

	next := s.MarkReady("nobody")
	if next != s {
		t.Error("unknown player marked ready produced a new state")
	}

	for i, p := range s.Players {
		s = s.MarkReady(p.ID)
		if i < len(s.Players)-1 && s.Phase != engine.PhaseRoleReveal {
			t.Fatalf("gate opened after %d of %d players", i+1, len(s.Players))
		}
	}
	if s.Phase != engine.PhaseChooseChancellor {
		t.Fatalf("phase = %s after all ready", s.Phase)
	}

	// Double-ready in the wrong phase is ignored.
	if s.MarkReady(s.Players[0].ID) != s {
		t.Error("MarkReady accepted outside ROLE_REVEAL")
	}
}

func TestNominateChancellor(t *testing.T) {
	s := allReady(t, newGame(t, 5))
	president := s.PresidentID
	nominee := s.Players[1].ID
	if nominee == president {
		nominee = s.Players[2].ID
	}

	// Wrong actor.
	if s.NominateChancellor(nominee, president) != s {
		t.Error("non-president nomination accepted")
	}
	// Self-nomination.
	if s.NominateChancellor(president, president) != s {
		t.Error("self-nomination accepted")
	}

	next := s.NominateChancellor(president, nominee)
	if next == s {
		t.Fatal("valid nomination ignored")
	}
	if next.Phase != engine.PhaseVoting || next.ChancellorID != nominee {
		t.Fatalf("after nomination: phase %s chancellor %s", next.Phase, next.ChancellorID)
	}
	// Input state untouched.
	if s.ChancellorID != "" || s.Phase != engine.PhaseChooseChancellor {
		t.Error("nomination mutated the prior state")
	}
}

func vote(s *engine.State, approve bool) map[string]bool {
	tally := make(map[string]bool)
	for _, p := range s.Players {
		if p.Alive {
			tally[p.ID] = approve
		}
	}
	return tally
}

func nominate(t *testing.T, s *engine.State) *engine.State {
	t.Helper()
	for _, p := range s.Players {
		if p.Alive && p.ID != s.PresidentID {
			next := s.NominateChancellor(s.PresidentID, p.ID)
			if next == s {
				t.Fatalf("nomination of %s ignored", p.ID)
			}
			return next
		}
	}
	t.Fatal("no eligible chancellor")
	return nil
}

func TestApprovedGovernmentDrawsThree(t *testing.T) {
	s := nominate(t, allReady(t, newGame(t, 5)))
	next := s.SubmitVotes(vote(s, true))
	if next.Phase != engine.PhaseLegislationPresident {
		t.Fatalf("phase = %s, want LEGISLATION_PRESIDENT", next.Phase)
	}
	if len(next.Hand) != 3 {
		t.Fatalf("hand = %d cards, want 3", len(next.Hand))
	}
	if next.Chaos != 0 {
		t.Errorf("chaos = %d after approval, want 0", next.Chaos)
	}
	checkConservation(t, next)
}

func TestRejectedGovernmentRaisesChaos(t *testing.T) {
	s := nominate(t, allReady(t, newGame(t, 5)))
	president := s.PresidentID

	next := s.SubmitVotes(vote(s, false))
	if next.Phase != engine.PhaseChooseChancellor {
		t.Fatalf("phase = %s, want CHOOSE_CHANCELLOR", next.Phase)
	}
	if next.Chaos != 1 {
		t.Errorf("chaos = %d, want 1", next.Chaos)
	}
	if next.ChancellorID != "" {
		t.Error("chancellor survived a rejected government")
	}
	if next.PresidentID == president {
		t.Error("presidency did not rotate after rejection")
	}
}

func TestThreeRejectionsForceEnactment(t *testing.T) {
	s := allReady(t, newGame(t, 5))

	for round := 0; round < 3; round++ {
		s = nominate(t, s)
		s = s.SubmitVotes(vote(s, false))
		checkConservation(t, s)
	}

	if s.Chaos != 0 {
		t.Errorf("chaos = %d after forced enactment, want 0", s.Chaos)
	}
	if s.LoyalPolicies+s.InfiltratedPolicies != 1 {
		t.Errorf("%d policies enacted, want exactly 1", s.LoyalPolicies+s.InfiltratedPolicies)
	}
	if s.Phase != engine.PhaseChooseChancellor {
		t.Errorf("phase = %s, want CHOOSE_CHANCELLOR", s.Phase)
	}
	if s.PendingPower != "" {
		t.Errorf("forced enactment unlocked power %s", s.PendingPower)
	}
}

func TestVoteMajorityCountsAliveOnly(t *testing.T) {
	s := allReady(t, newGame(t, 6))
	// Eliminate two seats so 4 remain: 3 of 4 approvals is a majority
	// even though it is exactly half of the original table.
	dead := 0
	for i := range s.Players {
		if s.Players[i].ID != s.PresidentID && dead < 2 {
			s.Players[i].Alive = false
			dead++
		}
	}
	s = nominate(t, s)

	tally := make(map[string]bool)
	approvals := 0
	for _, p := range s.Players {
		if !p.Alive {
			continue
		}
		tally[p.ID] = approvals < 3
		approvals++
	}
	next := s.SubmitVotes(tally)
	if next.Phase != engine.PhaseLegislationPresident {
		t.Fatalf("3/4 alive approvals rejected: phase %s", next.Phase)
	}
}

func TestFifthLoyalPolicyWins(t *testing.T) {
	s := nominate(t, allReady(t, newGame(t, 5)))
	s.LoyalPolicies = 4
	s.Chaos = 2
	s.Hand = []engine.Card{engine.CardLoyal, engine.CardLoyal, engine.CardInfiltrated}
	s.Phase = engine.PhaseLegislationPresident

	s = s.PresidentDiscard(s.PresidentID, 2)
	if s.Phase != engine.PhaseLegislationAgent {
		t.Fatalf("phase = %s after president discard", s.Phase)
	}
	s = s.ChancellorDiscard(s.ChancellorID, 0)
	if s.Phase != engine.PhaseGameOver || s.Winner != engine.WinnerLoyalists {
		t.Fatalf("phase %s winner %q, want GAME_OVER/LOYALISTS", s.Phase, s.Winner)
	}
}

func TestSixthInfiltratedPolicyWins(t *testing.T) {
	s := nominate(t, allReady(t, newGame(t, 5)))
	s.InfiltratedPolicies = 5
	s.Hand = []engine.Card{engine.CardInfiltrated, engine.CardInfiltrated}
	s.Phase = engine.PhaseLegislationAgent

	s = s.ChancellorDiscard(s.ChancellorID, 0)
	if s.Phase != engine.PhaseGameOver || s.Winner != engine.WinnerInfiltrators {
		t.Fatalf("phase %s winner %q, want GAME_OVER/INFILTRATORS", s.Phase, s.Winner)
	}
}

func TestPowerUnlocks(t *testing.T) {
	tests := []struct {
		before int
		power  engine.Power
	}{
		{0, ""},
		{1, ""},
		{2, engine.PowerInvestigate},
		{3, engine.PowerExecute},
		{4, engine.PowerExecute},
	}
	for _, tt := range tests {
		s := nominate(t, allReady(t, newGame(t, 7)))
		s.InfiltratedPolicies = tt.before
		s.Hand = []engine.Card{engine.CardInfiltrated, engine.CardLoyal}
		s.Phase = engine.PhaseLegislationAgent

		s = s.ChancellorDiscard(s.ChancellorID, 0)
		if s.PendingPower != tt.power {
			t.Errorf("infiltrated %d->%d: pending power %q, want %q",
				tt.before, tt.before+1, s.PendingPower, tt.power)
		}
		wantPhase := engine.PhaseChooseChancellor
		if tt.power != "" {
			wantPhase = engine.PhasePowerResolution
		}
		if s.Phase != wantPhase {
			t.Errorf("infiltrated %d->%d: phase %s, want %s", tt.before, tt.before+1, s.Phase, wantPhase)
		}
	}
}

func TestExecuteLeaderEndsGame(t *testing.T) {
	s := allReady(t, newGame(t, 7))
	s.Phase = engine.PhasePowerResolution
	s.PendingPower = engine.PowerExecute
	s.InfiltratedPolicies = 4

	var leaderID string
	for _, p := range s.Players {
		if p.Role == engine.RoleLeader {
			leaderID = p.ID
		}
	}
	if leaderID == s.PresidentID {
		// Move the presidency so the shot is not a suicide.
		s.PresidentID = otherAlive(t, s, leaderID)
	}

	next := s.Execute(s.PresidentID, leaderID)
	if next == s {
		t.Fatal("execute ignored")
	}
	if next.Phase != engine.PhaseGameOver || next.Winner != engine.WinnerLoyalists {
		t.Fatalf("phase %s winner %q, want GAME_OVER/LOYALISTS", next.Phase, next.Winner)
	}
	if next.Player(leaderID).Alive {
		t.Error("executed leader still alive")
	}
}

func TestExecuteCitizenRotatesOn(t *testing.T) {
	s := allReady(t, newGame(t, 7))
	s.Phase = engine.PhasePowerResolution
	s.PendingPower = engine.PowerExecute

	var targetID string
	for _, p := range s.Players {
		if p.Role == engine.RoleCitizen && p.ID != s.PresidentID {
			targetID = p.ID
			break
		}
	}

	next := s.Execute(s.PresidentID, targetID)
	if next.Phase != engine.PhaseChooseChancellor {
		t.Fatalf("phase = %s, want CHOOSE_CHANCELLOR", next.Phase)
	}
	if next.Player(targetID).Alive {
		t.Error("executed player still alive")
	}
	if next.PendingPower != "" {
		t.Error("pending power survived its use")
	}
	if next.PresidentID == s.PresidentID || next.PresidentID == targetID {
		t.Errorf("presidency rotated to %s", next.PresidentID)
	}

	// The unlock is single-use: a second shot is ignored.
	again := next.Execute(next.PresidentID, s.PresidentID)
	if again != next {
		t.Error("execute accepted without a pending power")
	}
}

func TestInvestigateOnlyRecordsResult(t *testing.T) {
	s := allReady(t, newGame(t, 7))
	s.Phase = engine.PhasePowerResolution
	s.PendingPower = engine.PowerInvestigate
	s.InfiltratedPolicies = 3
	president := s.PresidentID
	targetID := otherAlive(t, s, president)
	targetFaction := s.Player(targetID).Faction

	next := s.Investigate(president, targetID)
	if next == s {
		t.Fatal("investigate ignored")
	}
	if !next.Player(targetID).Alive {
		t.Error("investigation changed alive status")
	}
	if next.LoyalPolicies != s.LoyalPolicies || next.InfiltratedPolicies != s.InfiltratedPolicies {
		t.Error("investigation changed policy counters")
	}
	inv := next.Investigation
	if inv == nil || inv.TargetID != targetID || inv.Faction != targetFaction || inv.InvestigatorID != president {
		t.Fatalf("investigation record = %+v", inv)
	}
	if next.Phase != engine.PhaseChooseChancellor || next.PendingPower != "" {
		t.Errorf("after investigation: phase %s pending %q", next.Phase, next.PendingPower)
	}
}

func TestAssassinationByElection(t *testing.T) {
	s := allReady(t, newGame(t, 7))
	s.InfiltratedPolicies = 3

	var leaderID string
	for _, p := range s.Players {
		if p.Role == engine.RoleLeader {
			leaderID = p.ID
		}
	}
	if leaderID == s.PresidentID {
		s.PresidentID = otherAlive(t, s, leaderID)
	}

	s = s.NominateChancellor(s.PresidentID, leaderID)
	next := s.SubmitVotes(vote(s, true))
	if next.Phase != engine.PhaseGameOver || next.Winner != engine.WinnerInfiltrators {
		t.Fatalf("electing the leader at 3+ policies: phase %s winner %q", next.Phase, next.Winner)
	}
	if len(next.Hand) != 0 {
		t.Error("legislation drawn despite immediate win")
	}
}

func TestRotationSkipsEliminated(t *testing.T) {
	s := allReady(t, newGame(t, 5))
	// Kill everyone but seats 0 and 3.
	for i := range s.Players {
		if i != 0 && i != 3 {
			s.Players[i].Alive = false
		}
	}
	s.PresidentID = s.Players[0].ID

	s.Phase = engine.PhasePowerResolution
	s.PendingPower = engine.PowerExecute
	// Rotation must land on seat 3 and terminate.
	next := s.Execute(s.PresidentID, s.Players[3].ID)
	// Seat 3 died to the shot, so the presidency wraps back around the
	// dead seats to seat 0.
	if next.Phase == engine.PhaseGameOver {
		return // seat 3 happened to be the leader; also a valid outcome
	}
	if next.PresidentID != s.Players[0].ID {
		t.Fatalf("president = %s, want wrap back to seat 0", next.PresidentID)
	}
}

func TestTerminalStateIsAbsorbing(t *testing.T) {
	s := allReady(t, newGame(t, 5))
	s.Phase = engine.PhaseGameOver
	s.Winner = engine.WinnerLoyalists

	if s.MarkReady(s.Players[0].ID) != s {
		t.Error("MarkReady accepted after game over")
	}
	if s.NominateChancellor(s.PresidentID, s.Players[1].ID) != s {
		t.Error("nomination accepted after game over")
	}
	if s.SubmitVotes(vote(s, true)) != s {
		t.Error("votes accepted after game over")
	}
	if s.PresidentDiscard(s.PresidentID, 0) != s {
		t.Error("discard accepted after game over")
	}
	if s.Execute(s.PresidentID, s.Players[1].ID) != s {
		t.Error("execute accepted after game over")
	}
}

func TestRestartRedealsSameRoster(t *testing.T) {
	s := allReady(t, newGame(t, 6))
	s.LoyalPolicies = 3
	s.Players[2].Alive = false
	s.Phase = engine.PhaseGameOver
	s.Winner = engine.WinnerLoyalists

	fresh, err := s.Restart()
	if err != nil {
		t.Fatalf("Restart: %v", err)
	}
	if fresh.Phase != engine.PhaseRoleReveal {
		t.Errorf("phase = %s, want ROLE_REVEAL", fresh.Phase)
	}
	if fresh.LoyalPolicies != 0 || fresh.Winner != "" || len(fresh.Deck) != 17 {
		t.Error("restart kept game progress")
	}
	if len(fresh.Players) != 6 {
		t.Fatalf("restart seated %d players", len(fresh.Players))
	}
	for i, p := range fresh.Players {
		if !p.Alive {
			t.Errorf("seat %d not revived on restart", i)
		}
		if p.ID != s.Players[i].ID {
			t.Errorf("seat %d changed identity on restart", i)
		}
	}
}

func TestSnapshotHidesHiddenInformation(t *testing.T) {
	s := allReady(t, newGame(t, 7))

	var citizenID, leaderID string
	for _, p := range s.Players {
		switch p.Role {
		case engine.RoleCitizen:
			if citizenID == "" {
				citizenID = p.ID
			}
		case engine.RoleLeader:
			leaderID = p.ID
		}
	}

	snap := s.SnapshotFor(citizenID)
	if snap.DeckSize != 17 {
		t.Errorf("snapshot deck size %d", snap.DeckSize)
	}
	for _, sv := range snap.Players {
		if sv.ID == citizenID {
			if sv.Role != engine.RoleCitizen {
				t.Error("viewer cannot see own role")
			}
			continue
		}
		if sv.Role != "" || sv.Faction != "" {
			t.Errorf("citizen sees %s's role %q", sv.ID, sv.Role)
		}
	}

	// Infiltrated players know the whole conspiracy.
	snap = s.SnapshotFor(leaderID)
	for _, sv := range snap.Players {
		if sv.Role == "" {
			t.Errorf("leader cannot see %s's role", sv.ID)
		}
	}
}

func TestSnapshotScopesInvestigation(t *testing.T) {
	s := allReady(t, newGame(t, 7))
	s.Phase = engine.PhasePowerResolution
	s.PendingPower = engine.PowerInvestigate
	president := s.PresidentID
	targetID := otherAlive(t, s, president)

	next := s.Investigate(president, targetID)
	if next.SnapshotFor(president).Investigation == nil {
		t.Error("investigator cannot see their own result")
	}
	if next.SnapshotFor(targetID).Investigation != nil {
		t.Error("investigation result leaked to the target")
	}
}

func TestSnapshotScopesHand(t *testing.T) {
	s := nominate(t, allReady(t, newGame(t, 5)))
	s = s.SubmitVotes(vote(s, true))

	if len(s.SnapshotFor(s.PresidentID).Hand) != 3 {
		t.Error("president cannot see the drawn hand")
	}
	if s.SnapshotFor(s.ChancellorID).Hand != nil {
		t.Error("hand visible to the chancellor before the president discards")
	}

	s = s.PresidentDiscard(s.PresidentID, 0)
	if len(s.SnapshotFor(s.ChancellorID).Hand) != 2 {
		t.Error("chancellor cannot see the remaining hand")
	}
	if s.SnapshotFor(s.PresidentID).Hand != nil {
		t.Error("hand still visible to the president after passing it on")
	}
}

// TestRandomPlaythroughsConserveCards drives full games with random
// valid intents and checks the card economy after every transition.
func TestRandomPlaythroughsConserveCards(t *testing.T) {
	for run := 0; run < 50; run++ {
		n := 5 + rand.IntN(6)
		s := allReady(t, newGame(t, n))

		for step := 0; step < 500 && s.Phase != engine.PhaseGameOver; step++ {
			prev := s
			switch s.Phase {
			case engine.PhaseChooseChancellor:
				s = nominate(t, s)
			case engine.PhaseVoting:
				tally := make(map[string]bool)
				for _, p := range s.Players {
					if p.Alive {
						tally[p.ID] = rand.IntN(2) == 0
					}
				}
				s = s.SubmitVotes(tally)
			case engine.PhaseLegislationPresident:
				s = s.PresidentDiscard(s.PresidentID, rand.IntN(3))
			case engine.PhaseLegislationAgent:
				s = s.ChancellorDiscard(s.ChancellorID, rand.IntN(2))
			case engine.PhasePowerResolution:
				targetID := randomAliveOther(s, s.PresidentID)
				if s.PendingPower == engine.PowerExecute {
					s = s.Execute(s.PresidentID, targetID)
				} else {
					s = s.Investigate(s.PresidentID, targetID)
				}
			}
			if s == prev && s.Phase != engine.PhaseGameOver {
				t.Fatalf("run %d: valid intent ignored in phase %s", run, prev.Phase)
			}
			checkConservation(t, s)
			if p := s.Player(s.PresidentID); s.Phase != engine.PhaseGameOver && (p == nil || !p.Alive) {
				t.Fatalf("run %d: president %s is not alive", run, s.PresidentID)
			}
		}
	}
}

// otherAlive returns the first alive player other than exclude.
func otherAlive(t *testing.T, s *engine.State, exclude string) string {
	t.Helper()
	for _, p := range s.Players {
		if p.Alive && p.ID != exclude {
			return p.ID
		}
	}
	t.Fatal("no alive player available")
	return ""
}

func randomAliveOther(s *engine.State, exclude string) string {
	var ids []string
	for _, p := range s.Players {
		if p.Alive && p.ID != exclude {
			ids = append(ids, p.ID)
		}
	}
	return ids[rand.IntN(len(ids))]
}
