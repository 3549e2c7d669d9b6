package protocol

// Message types: Server → Client
const (
	MsgRoomUpdate  = "room_update"
	MsgGameStarted = "game_started"
	MsgGameState   = "game_state"
	MsgError       = "error"
)

// Message types: Client → Server
const (
	MsgStartGame = "start_game"

	// Agentes Secretos intents
	MsgAgentsReady             = "agents_ready"
	MsgAgentsChooseChancellor  = "agents_choose_chancellor"
	MsgAgentsVote              = "agents_vote"
	MsgAgentsPresidentDiscard  = "agents_president_discard"
	MsgAgentsChancellorDiscard = "agents_chancellor_discard"
	MsgAgentsExecute           = "agents_execute"
	MsgAgentsInvestigate       = "agents_investigate"
	MsgAgentsRestart           = "agents_restart"

	// Impostor intents
	MsgImpostorReady    = "impostor_ready"
	MsgImpostorToVoting = "impostor_to_voting"
	MsgImpostorVote     = "impostor_vote"
	MsgImpostorRestart  = "impostor_restart"
)

// RoomUpdate is broadcast whenever the roster changes.
type RoomUpdate struct {
	RoomCode string       `json:"roomCode"`
	GameType string       `json:"gameType"`
	Players  []RoomPlayer `json:"players"`
	Started  bool         `json:"started"`
}

type RoomPlayer struct {
	ID       string `json:"id"`
	Nickname string `json:"nickname"`
	IsHost   bool   `json:"isHost,omitempty"`
}

// GameStarted announces which engine the room is now running.
type GameStarted struct {
	RoomCode string `json:"roomCode"`
	GameType string `json:"gameType"`
}

// StartGameMsg carries the host's start options.
type StartGameMsg struct {
	Category   string `json:"category,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
}

// TargetMsg carries intents aimed at another player.
type TargetMsg struct {
	TargetID string `json:"targetId"`
}

// ChancellorMsg is the president's nomination.
type ChancellorMsg struct {
	ChancellorID string `json:"chancellorId"`
}

// VoteMsg is a single government ballot.
type VoteMsg struct {
	Vote bool `json:"vote"`
}

// DiscardMsg is a legislative discard by hand index.
type DiscardMsg struct {
	CardIndex int `json:"cardIndex"`
}

// ErrorMsg is sent to a client on error.
type ErrorMsg struct {
	Message string `json:"message"`
}
