// Package impostor implements the companion word-guessing game: one
// hidden impostor, everyone else shares a secret word, a vote decides
// who gets ejected. It follows the same delivery pattern as the main
// engine: pure transitions that return a fresh state when accepted and
// the identical pointer when the intent is out of phase.
package impostor

import (
	"math/rand/v2"

	"agentes/internal/words"
)

// Phase of the impostor round.
type Phase string

const (
	PhaseLobby      Phase = "LOBBY"
	PhaseWordReveal Phase = "WORD_REVEAL"
	PhaseDiscussion Phase = "DISCUSSION"
	PhaseVoting     Phase = "VOTING"
	PhaseResult     Phase = "RESULT"
)

// Winner of an impostor round.
type Winner string

const (
	WinnerCivilians Winner = "CIVILIANS"
	WinnerImpostor  Winner = "IMPOSTOR"
)

// Player is one participant in the round.
type Player struct {
	ID         string `json:"id"`
	Nickname   string `json:"nickname"`
	IsImpostor bool   `json:"isImpostor"`
	HasVoted   bool   `json:"hasVoted"`
	VoteTarget string `json:"voteTargetId,omitempty"`
}

// Ballot pairs a voter with their suspect, for the result screen.
type Ballot struct {
	VoterID  string `json:"voterId"`
	TargetID string `json:"targetId"`
}

// State is the full impostor-game state for one room.
type State struct {
	RoomCode   string   `json:"roomCode"`
	Phase      Phase    `json:"phase"`
	Players    []Player `json:"players"`
	SecretWord string   `json:"secretWord,omitempty"`
	Category   string   `json:"category,omitempty"`
	Difficulty string   `json:"difficulty,omitempty"`
	ImpostorID string   `json:"impostorId,omitempty"`
	Winner     Winner   `json:"winner,omitempty"`
	Ballots    []Ballot `json:"votingResults,omitempty"`

	Ready map[string]bool `json:"-"`
}

func (s *State) clone() *State {
	next := *s
	next.Players = append([]Player(nil), s.Players...)
	next.Ballots = append([]Ballot(nil), s.Ballots...)
	next.Ready = make(map[string]bool, len(s.Ready))
	for id, ok := range s.Ready {
		next.Ready[id] = ok
	}
	return &next
}

// New creates a round in LOBBY with no word dealt yet.
func New(roomCode string, players []Player, category, difficulty string) *State {
	seated := append([]Player(nil), players...)
	return &State{
		RoomCode:   roomCode,
		Phase:      PhaseLobby,
		Players:    seated,
		Category:   category,
		Difficulty: difficulty,
		Ready:      make(map[string]bool),
	}
}

// StartRound picks a secret word and a hidden impostor, moving the room
// to the word-reveal gate.
func (s *State) StartRound(list []words.Entry) *State {
	if len(s.Players) == 0 {
		return s
	}
	next := s.clone()
	impostor := rand.IntN(len(next.Players))
	for i := range next.Players {
		next.Players[i].IsImpostor = i == impostor
		next.Players[i].HasVoted = false
		next.Players[i].VoteTarget = ""
	}
	next.ImpostorID = next.Players[impostor].ID
	next.SecretWord = words.Random(list, next.Category, next.Difficulty).Word
	next.Phase = PhaseWordReveal
	next.Winner = ""
	next.Ballots = nil
	next.Ready = make(map[string]bool)
	return next
}

// MarkReady records a player as having seen the word; once everyone has,
// discussion begins.
func (s *State) MarkReady(playerID string) *State {
	if s.Phase != PhaseWordReveal {
		return s
	}
	found := false
	for i := range s.Players {
		if s.Players[i].ID == playerID {
			found = true
		}
	}
	if !found || s.Ready[playerID] {
		return s
	}
	next := s.clone()
	next.Ready[playerID] = true
	if len(next.Ready) >= len(next.Players) {
		next.Phase = PhaseDiscussion
	}
	return next
}

// AdvanceToVoting ends the discussion.
func (s *State) AdvanceToVoting() *State {
	if s.Phase != PhaseDiscussion {
		return s
	}
	next := s.clone()
	next.Phase = PhaseVoting
	return next
}

// CastVote records a suspect; the last ballot finalizes the round.
func (s *State) CastVote(voterID, targetID string) *State {
	if s.Phase != PhaseVoting {
		return s
	}
	idx := -1
	for i := range s.Players {
		if s.Players[i].ID == voterID {
			idx = i
		}
	}
	if idx < 0 || s.Players[idx].HasVoted {
		return s
	}

	next := s.clone()
	next.Players[idx].HasVoted = true
	next.Players[idx].VoteTarget = targetID

	for i := range next.Players {
		if !next.Players[i].HasVoted {
			return next
		}
	}
	return next.finalize()
}

// finalize tallies ballots: the plurality suspect loses, ties favor the
// impostor.
func (s *State) finalize() *State {
	tally := make(map[string]int)
	for i := range s.Players {
		p := &s.Players[i]
		if p.VoteTarget != "" {
			tally[p.VoteTarget]++
			s.Ballots = append(s.Ballots, Ballot{VoterID: p.ID, TargetID: p.VoteTarget})
		}
	}

	maxVotes := 0
	var mostVoted []string
	for _, p := range s.Players {
		switch votes := tally[p.ID]; {
		case votes > maxVotes:
			maxVotes = votes
			mostVoted = []string{p.ID}
		case votes == maxVotes && votes > 0:
			mostVoted = append(mostVoted, p.ID)
		}
	}

	s.Winner = WinnerImpostor
	if len(mostVoted) == 1 && mostVoted[0] == s.ImpostorID {
		s.Winner = WinnerCivilians
	}
	s.Phase = PhaseResult
	return s
}

// Restart clears the round back to LOBBY with the same roster.
func (s *State) Restart() *State {
	next := s.clone()
	for i := range next.Players {
		next.Players[i].IsImpostor = false
		next.Players[i].HasVoted = false
		next.Players[i].VoteTarget = ""
	}
	next.Phase = PhaseLobby
	next.SecretWord = ""
	next.ImpostorID = ""
	next.Winner = ""
	next.Ballots = nil
	next.Ready = make(map[string]bool)
	return next
}

// SnapshotFor hides the secret word from the impostor and the impostor's
// identity from everyone until the result.
func (s *State) SnapshotFor(playerID string) State {
	snap := *s
	snap.Players = append([]Player(nil), s.Players...)
	if s.Phase != PhaseResult {
		if playerID == s.ImpostorID {
			snap.SecretWord = ""
		}
		snap.ImpostorID = ""
		for i := range snap.Players {
			if snap.Players[i].ID != playerID {
				snap.Players[i].IsImpostor = false
				snap.Players[i].VoteTarget = ""
			}
		}
	}
	return snap
}
