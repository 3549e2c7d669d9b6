package engine

// Phase represents the current phase of the game state machine.
type Phase int

const (
	PhaseLobby                Phase = iota // waiting for the room to start
	PhaseRoleReveal                        // players looking at their secret roles
	PhaseChooseChancellor                  // president nominating a chancellor
	PhaseVoting                            // room voting on the proposed government
	PhaseLegislationPresident              // president discarding 1 of 3 drawn cards
	PhaseLegislationAgent                  // chancellor enacting 1 of the remaining 2
	PhasePowerResolution                   // president resolving an unlocked power
	PhaseGameOver                          // terminal, absorbing
)

var phaseNames = map[Phase]string{
	PhaseLobby:                "LOBBY",
	PhaseRoleReveal:           "ROLE_REVEAL",
	PhaseChooseChancellor:     "CHOOSE_CHANCELLOR",
	PhaseVoting:               "VOTING",
	PhaseLegislationPresident: "LEGISLATION_PRESIDENT",
	PhaseLegislationAgent:     "LEGISLATION_AGENT",
	PhasePowerResolution:      "POWER_RESOLUTION",
	PhaseGameOver:             "GAME_OVER",
}

func (p Phase) String() string {
	if s, ok := phaseNames[p]; ok {
		return s
	}
	return "Unknown"
}
