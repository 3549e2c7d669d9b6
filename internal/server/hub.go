package server

import (
	"encoding/json"
	"log"

	"agentes/internal/engine"
	"agentes/internal/impostor"
	"agentes/internal/lobby"
	"agentes/internal/protocol"
	"agentes/internal/words"
)

// Hub owns one room: its connections, its game state and its vote
// buffer. Every intent for the room flows through the incoming channel
// and is handled to completion on the hub goroutine, which is the
// serialization guarantee the engine's read-then-replace transitions
// rely on. The engine states themselves are replaced wholesale, never
// mutated.
type Hub struct {
	room     *lobby.Room
	wordList []words.Entry

	agents *engine.State
	imp    *impostor.State
	votes  *VoteBox

	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	incoming   chan Intent
	quit       chan struct{}
}

func NewHub(room *lobby.Room, wordList []words.Entry) *Hub {
	return &Hub{
		room:       room,
		wordList:   wordList,
		votes:      NewVoteBox(),
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		incoming:   make(chan Intent, 256),
		quit:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.sendRoomUpdate()
			h.sendStateTo(client)

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.sendRoomUpdate()
			}

		case msg := <-h.incoming:
			h.handleIntent(msg)

		case <-h.quit:
			return
		}
	}
}

// Close stops the hub goroutine.
func (h *Hub) Close() {
	close(h.quit)
}

func (h *Hub) handleIntent(msg Intent) {
	switch msg.Envelope.Type {
	case protocol.MsgStartGame:
		h.handleStartGame(msg)

	case protocol.MsgAgentsReady:
		h.applyAgents(func(s *engine.State) *engine.State {
			return s.MarkReady(msg.Client.PlayerID)
		})

	case protocol.MsgAgentsChooseChancellor:
		var m protocol.ChancellorMsg
		if !h.decode(msg, &m) {
			return
		}
		h.applyAgents(func(s *engine.State) *engine.State {
			return s.NominateChancellor(msg.Client.PlayerID, m.ChancellorID)
		})

	case protocol.MsgAgentsVote:
		h.handleAgentsVote(msg)

	case protocol.MsgAgentsPresidentDiscard:
		var m protocol.DiscardMsg
		if !h.decode(msg, &m) {
			return
		}
		h.applyAgents(func(s *engine.State) *engine.State {
			return s.PresidentDiscard(msg.Client.PlayerID, m.CardIndex)
		})

	case protocol.MsgAgentsChancellorDiscard:
		var m protocol.DiscardMsg
		if !h.decode(msg, &m) {
			return
		}
		h.applyAgents(func(s *engine.State) *engine.State {
			return s.ChancellorDiscard(msg.Client.PlayerID, m.CardIndex)
		})

	case protocol.MsgAgentsExecute:
		var m protocol.TargetMsg
		if !h.decode(msg, &m) {
			return
		}
		h.applyAgents(func(s *engine.State) *engine.State {
			return s.Execute(msg.Client.PlayerID, m.TargetID)
		})

	case protocol.MsgAgentsInvestigate:
		var m protocol.TargetMsg
		if !h.decode(msg, &m) {
			return
		}
		h.applyAgents(func(s *engine.State) *engine.State {
			return s.Investigate(msg.Client.PlayerID, m.TargetID)
		})

	case protocol.MsgAgentsRestart:
		h.handleAgentsRestart(msg)

	case protocol.MsgImpostorReady:
		h.applyImpostor(func(s *impostor.State) *impostor.State {
			return s.MarkReady(msg.Client.PlayerID)
		})

	case protocol.MsgImpostorToVoting:
		h.applyImpostor(func(s *impostor.State) *impostor.State {
			return s.AdvanceToVoting()
		})

	case protocol.MsgImpostorVote:
		var m protocol.TargetMsg
		if !h.decode(msg, &m) {
			return
		}
		h.applyImpostor(func(s *impostor.State) *impostor.State {
			return s.CastVote(msg.Client.PlayerID, m.TargetID)
		})

	case protocol.MsgImpostorRestart:
		h.handleImpostorRestart(msg)

	default:
		h.sendError(msg.Client, "unknown message type "+msg.Envelope.Type)
	}
}

func (h *Hub) handleStartGame(msg Intent) {
	var opts protocol.StartGameMsg
	if len(msg.Envelope.Payload) > 0 && !h.decode(msg, &opts) {
		return
	}
	if err := h.room.Start(msg.Client.PlayerID); err != nil {
		h.sendError(msg.Client, err.Error())
		return
	}

	switch h.room.GameType {
	case lobby.GameImpostor:
		roster := h.room.Players()
		players := make([]impostor.Player, len(roster))
		for i, p := range roster {
			players[i] = impostor.Player{ID: p.ID, Nickname: p.Nickname}
		}
		h.imp = impostor.New(h.room.Code, players, opts.Category, opts.Difficulty).
			StartRound(h.wordList)

	default:
		state, err := engine.AssignRoles(h.room.Code, h.room.Players())
		if err != nil {
			h.sendError(msg.Client, err.Error())
			return
		}
		h.agents = state
		h.votes.Reset()
	}

	h.broadcast(protocol.MustEnvelope(protocol.MsgGameStarted, protocol.GameStarted{
		RoomCode: h.room.Code,
		GameType: string(h.room.GameType),
	}))
	h.broadcastState()
}

// handleAgentsVote buffers ballots until every alive player has voted,
// then applies the whole tally as one transition.
func (h *Hub) handleAgentsVote(msg Intent) {
	if h.agents == nil || h.agents.Phase != engine.PhaseVoting {
		return
	}
	var m protocol.VoteMsg
	if !h.decode(msg, &m) {
		return
	}
	if p := h.agents.Player(msg.Client.PlayerID); p == nil || !p.Alive {
		return
	}

	h.votes.Cast(msg.Client.PlayerID, m.Vote)
	if h.votes.Count() < h.agents.AliveCount() {
		return
	}

	tally := h.votes.Tally()
	h.applyAgents(func(s *engine.State) *engine.State {
		return s.SubmitVotes(tally)
	})
}

func (h *Hub) handleAgentsRestart(msg Intent) {
	if h.agents == nil {
		return
	}
	fresh, err := h.agents.Restart()
	if err != nil {
		h.sendError(msg.Client, err.Error())
		return
	}
	h.agents = fresh
	h.votes.Reset()
	h.broadcastState()
}

func (h *Hub) handleImpostorRestart(msg Intent) {
	if h.imp == nil {
		return
	}
	h.imp = h.imp.Restart().StartRound(h.wordList)
	h.broadcastState()
}

// applyAgents runs one transition and rebroadcasts only if it was
// accepted. A returned identical pointer means the intent was out of
// phase or from the wrong actor and the room state is unchanged.
func (h *Hub) applyAgents(transition func(*engine.State) *engine.State) {
	if h.agents == nil {
		return
	}
	next := transition(h.agents)
	if next == h.agents {
		return
	}
	h.agents = next
	if next.Phase != engine.PhaseVoting {
		h.votes.Reset()
	}
	h.broadcastState()
}

func (h *Hub) applyImpostor(transition func(*impostor.State) *impostor.State) {
	if h.imp == nil {
		return
	}
	next := transition(h.imp)
	if next == h.imp {
		return
	}
	h.imp = next
	h.broadcastState()
}

// broadcastState sends each connected client its own view of the state.
func (h *Hub) broadcastState() {
	for client := range h.clients {
		h.sendStateTo(client)
	}
}

func (h *Hub) sendStateTo(client *Client) {
	switch {
	case h.agents != nil:
		snap := h.agents.SnapshotFor(client.PlayerID)
		client.SendEnvelope(protocol.MustEnvelope(protocol.MsgGameState, snap))
	case h.imp != nil:
		snap := h.imp.SnapshotFor(client.PlayerID)
		client.SendEnvelope(protocol.MustEnvelope(protocol.MsgGameState, snap))
	}
}

func (h *Hub) sendRoomUpdate() {
	roster := h.room.Players()
	players := make([]protocol.RoomPlayer, len(roster))
	for i, p := range roster {
		players[i] = protocol.RoomPlayer{ID: p.ID, Nickname: p.Nickname, IsHost: p.Host}
	}
	h.broadcast(protocol.MustEnvelope(protocol.MsgRoomUpdate, protocol.RoomUpdate{
		RoomCode: h.room.Code,
		GameType: string(h.room.GameType),
		Players:  players,
		Started:  h.room.Started(),
	}))
}

func (h *Hub) broadcast(env protocol.Envelope) {
	data, err := json.Marshal(env)
	if err != nil {
		log.Printf("broadcast marshal error: %v", err)
		return
	}
	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			log.Printf("client %s buffer full", client.PlayerID)
		}
	}
}

func (h *Hub) decode(msg Intent, v interface{}) bool {
	if err := json.Unmarshal(msg.Envelope.Payload, v); err != nil {
		h.sendError(msg.Client, "invalid payload for "+msg.Envelope.Type)
		return false
	}
	return true
}

func (h *Hub) sendError(client *Client, message string) {
	client.SendEnvelope(protocol.MustEnvelope(protocol.MsgError, protocol.ErrorMsg{Message: message}))
}
