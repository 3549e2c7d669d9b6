package server

// VoteBox accumulates government ballots for one room between the
// VOTING phase starting and the tally being applied. It is only ever
// touched from the room's hub goroutine, which is what serializes all
// intents for the room, so it needs no locking of its own.
type VoteBox struct {
	ballots map[string]bool
}

func NewVoteBox() *VoteBox {
	return &VoteBox{ballots: make(map[string]bool)}
}

// Cast records a ballot. A player voting twice keeps their first vote.
func (v *VoteBox) Cast(playerID string, approve bool) {
	if _, voted := v.ballots[playerID]; voted {
		return
	}
	v.ballots[playerID] = approve
}

// Count returns how many ballots are in.
func (v *VoteBox) Count() int {
	return len(v.ballots)
}

// Tally returns the accumulated ballots and empties the box.
func (v *VoteBox) Tally() map[string]bool {
	out := v.ballots
	v.ballots = make(map[string]bool)
	return out
}

// Reset drops any buffered ballots, for restarts mid-vote.
func (v *VoteBox) Reset() {
	v.ballots = make(map[string]bool)
}
