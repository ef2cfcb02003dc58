package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	stdnet "net"
	"sync"

	"github.com/peterkuimelis/gwent/internal/game"
	"github.com/peterkuimelis/gwent/internal/log"
	gwentnet "github.com/peterkuimelis/gwent/internal/net"
)

// DecisionType identifies what kind of decision the game engine is waiting for.
type DecisionType string

const (
	DecisionChooseAction DecisionType = "choose_action"
	DecisionGameOver     DecisionType = "game_over"
)

// PendingDecision represents a decision the game engine is waiting for.
type PendingDecision struct {
	Type    DecisionType          `json:"type"`
	Player  int                   `json:"player"`
	State   *gwentnet.StateView   `json:"state"`
	Actions []gwentnet.ActionView `json:"actions,omitempty"`
}

// ActionResponse is sent back from the take_action tool to the controller.
type ActionResponse struct {
	Index int
}

// ToolResponse is the JSON envelope returned by all MCP tools.
type ToolResponse struct {
	MatchID  string               `json:"match_id,omitempty"`
	Events   []gwentnet.EventView `json:"events"`
	State    *gwentnet.StateView  `json:"state,omitempty"`
	Pending  *PendingView         `json:"pending,omitempty"`
	GameOver bool                 `json:"game_over"`
	Winner   int                  `json:"winner,omitempty"`
	Result   string               `json:"result,omitempty"`
	Port     string               `json:"port,omitempty"`
}

// PendingView is the pending decision as presented in the tool response JSON.
type PendingView struct {
	Type      DecisionType          `json:"type"`
	ForPlayer string                `json:"for_player"`
	Actions   []gwentnet.ActionView `json:"actions,omitempty"`
}

// SessionOptions configures a new session.
type SessionOptions struct {
	DecksFile    string
	AgentDeck    int
	AgentPlayer  int
	Opponent     string // "human" (TCP) or "ai"
	OpponentDeck int    // used for the built-in AI
	Port         string
	Seed         int64
	MaxTurns     int
}

// GameSession holds the state of a single MCP game session.
type GameSession struct {
	match       *game.Match
	agentCtrl   *MCPController
	humanCtrl   *gwentnet.NetworkController
	agentPlayer int

	listener  stdnet.Listener
	humanConn stdnet.Conn

	pendingCh      chan *PendingDecision
	currentPending *PendingDecision

	mu       sync.Mutex
	events   []gwentnet.EventView
	gameOver bool
	winner   int
	result   string
}

// NewGameSession creates a new game session and starts the match. Against a
// human it listens on opts.Port and blocks until `gwent join` connects.
func NewGameSession(opts SessionOptions) (*GameSession, error) {
	_, agentCards, err := game.DeckByNumber(opts.DecksFile, opts.AgentDeck)
	if err != nil {
		return nil, fmt.Errorf("load agent deck: %w", err)
	}

	sess := &GameSession{
		agentPlayer: opts.AgentPlayer,
		pendingCh:   make(chan *PendingDecision, 1),
		winner:      -1,
	}
	sess.agentCtrl = NewMCPController(opts.AgentPlayer, sess)
	otherPlayer := 1 - opts.AgentPlayer

	var (
		otherCards []*game.Card
		otherCtrl  game.PlayerController
		otherName  = "Opponent"
	)
	switch opts.Opponent {
	case "ai":
		deck := opts.OpponentDeck
		if deck == 0 {
			deck = opts.AgentDeck
		}
		if _, otherCards, err = game.DeckByNumber(opts.DecksFile, deck); err != nil {
			return nil, fmt.Errorf("load ai deck: %w", err)
		}
		otherCtrl = &game.AIController{Player: otherPlayer}
		otherName = "AI"
	case "", "human":
		ln, err := stdnet.Listen("tcp", ":"+opts.Port)
		if err != nil {
			return nil, fmt.Errorf("listen on port %s: %w", opts.Port, err)
		}
		conn, err := ln.Accept()
		if err != nil {
			ln.Close()
			return nil, fmt.Errorf("accept: %w", err)
		}
		dec := json.NewDecoder(conn)
		var joinMsg gwentnet.ClientMessage
		if err := dec.Decode(&joinMsg); err != nil {
			conn.Close()
			ln.Close()
			return nil, fmt.Errorf("read join message: %w", err)
		}
		humanDeck := joinMsg.DeckNumber
		if humanDeck == 0 {
			humanDeck = 2
		}
		if _, otherCards, err = game.DeckByNumber(opts.DecksFile, humanDeck); err != nil {
			conn.Close()
			ln.Close()
			return nil, fmt.Errorf("load human deck: %w", err)
		}
		if joinMsg.Name != "" {
			otherName = joinMsg.Name
		}
		sess.listener = ln
		sess.humanConn = conn
		// The join message was read with dec; keep using it so no buffered bytes are lost.
		sess.humanCtrl = gwentnet.NewNetworkControllerWithDecoder(conn, dec, otherPlayer)
		otherCtrl = sess.humanCtrl
	default:
		return nil, fmt.Errorf("unknown opponent %q", opts.Opponent)
	}

	cfg := game.MatchConfig{
		Logger:         log.NewMemoryLogger(),
		Seed:           opts.Seed,
		MaxTurns:       opts.MaxTurns,
		StartingPlayer: 0,
	}
	var ctrl0, ctrl1 game.PlayerController
	if opts.AgentPlayer == 0 {
		cfg.Deck0, cfg.Deck1 = agentCards, otherCards
		cfg.Names = [2]string{"Agent", otherName}
		ctrl0, ctrl1 = sess.agentCtrl, otherCtrl
	} else {
		cfg.Deck0, cfg.Deck1 = otherCards, agentCards
		cfg.Names = [2]string{otherName, "Agent"}
		ctrl0, ctrl1 = otherCtrl, sess.agentCtrl
	}
	sess.match = game.NewMatch(cfg, ctrl0, ctrl1)

	go sess.run()
	return sess, nil
}

func (s *GameSession) run() {
	winner, err := s.match.Run(context.Background())
	result := s.match.Result
	if err != nil {
		result = fmt.Sprintf("error: %v", err)
	} else if result == "" {
		result = fmt.Sprintf("Game over. Winner: player %d", winner)
	}

	if s.humanCtrl != nil {
		_ = s.humanCtrl.SendGameOver(winner, result, s.match.ID)
		s.humanConn.Close()
		s.listener.Close()
	}

	s.mu.Lock()
	s.gameOver = true
	s.winner = winner
	s.result = result
	s.mu.Unlock()

	s.pendingCh <- &PendingDecision{
		Type:   DecisionGameOver,
		Player: winner,
		State:  gwentnet.BuildStateView(s.match.State, s.agentPlayer),
	}
}

// appendEvent adds an event to the session's event log. Thread-safe.
func (s *GameSession) appendEvent(ev gwentnet.EventView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

// drainEvents returns all accumulated events and clears the buffer.
func (s *GameSession) drainEvents() []gwentnet.EventView {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := s.events
	s.events = nil
	if events == nil {
		events = []gwentnet.EventView{}
	}
	return events
}

// waitForPending blocks until the next decision arrives from the game engine,
// then builds a ToolResponse with accumulated events + the pending decision.
func (s *GameSession) waitForPending(ctx context.Context) (*ToolResponse, error) {
	var pending *PendingDecision
	select {
	case pending = <-s.pendingCh:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	s.currentPending = pending

	resp := &ToolResponse{
		MatchID: s.match.ID,
		Events:  s.drainEvents(),
		State:   pending.State,
	}

	if pending.Type == DecisionGameOver {
		s.mu.Lock()
		resp.GameOver = true
		resp.Winner = s.winner
		resp.Result = s.result
		s.mu.Unlock()
		return resp, nil
	}

	resp.Pending = &PendingView{
		Type:      pending.Type,
		ForPlayer: s.playerLabel(pending.Player),
		Actions:   pending.Actions,
	}
	return resp, nil
}

// playerLabel returns "agent" or "opponent" for the given player index.
func (s *GameSession) playerLabel(player int) string {
	if player == s.agentPlayer {
		return "agent"
	}
	return "opponent"
}

// respondJSON marshals a ToolResponse to a JSON string.
func respondJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal error: %v"}`, err)
	}
	return string(data)
}
