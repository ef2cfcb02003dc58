package mcp

import (
	"context"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/peterkuimelis/gwent/internal/game"
	gwentnet "github.com/peterkuimelis/gwent/internal/net"
)

// Settings are the process-wide defaults the tools start games with.
type Settings struct {
	DecksFile string
	Port      string
	Seed      int64
	MaxTurns  int
}

var (
	sessionMu     sync.Mutex
	activeSession *GameSession // one per stdio process
	settings      = Settings{DecksFile: "decks.yaml", Port: "9999"}
)

// Configure sets the defaults used by start_game.
func Configure(s Settings) {
	sessionMu.Lock()
	defer sessionMu.Unlock()
	settings = s
}

// RegisterTools adds all game tools to the MCP server.
func RegisterTools(s *server.MCPServer) {
	s.AddTool(startGameTool(), handleStartGame)
	s.AddTool(takeActionTool(), handleTakeAction)
	s.AddTool(getGameStateTool(), handleGetGameState)
	s.AddTool(listCardsTool(), handleListCards)
}

// --- Tool definitions ---

func startGameTool() mcp.Tool {
	return mcp.NewTool("start_game",
		mcp.WithDescription("Start a new Gwent match. Returns the initial game state and first pending decision. "+
			"Against a human, the opponent connects via `gwent join --addr localhost:<port> --deck N` in a separate terminal "+
			"and this call blocks until they connect."),
		mcp.WithNumber("agent_deck", mcp.Required(), mcp.Description("Deck number for the agent (1-indexed from decks.yaml)")),
		mcp.WithNumber("agent_player", mcp.Required(), mcp.Description("Which player the agent is: 0 = opens round one, 1 = goes second")),
		mcp.WithString("opponent", mcp.Description("'human' (default) or 'ai'"), mcp.Enum("human", "ai")),
		mcp.WithNumber("opponent_deck", mcp.Description("Deck number for the built-in AI opponent")),
	)
}

func takeActionTool() mcp.Tool {
	return mcp.NewTool("take_action",
		mcp.WithDescription("Choose an action from the pending action list: play a card from hand or pass the round."),
		mcp.WithNumber("index", mcp.Required(), mcp.Description("0-based index of the action to take from the actions list")),
	)
}

func getGameStateTool() mcp.Tool {
	return mcp.NewTool("get_game_state",
		mcp.WithDescription("Get the current board, accumulated events, and pending decision without submitting a response. Read-only."),
	)
}

func listCardsTool() mcp.Tool {
	return mcp.NewTool("list_cards",
		mcp.WithDescription("List every card in the catalog with its row, power and ability."),
	)
}

// --- Tool handlers ---

func currentSession() *GameSession {
	sessionMu.Lock()
	defer sessionMu.Unlock()
	return activeSession
}

func handleStartGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionMu.Lock()
	if activeSession != nil {
		sessionMu.Unlock()
		return mcp.NewToolResultError("A game is already running. Only one game at a time is supported."), nil
	}
	cfg := settings
	sessionMu.Unlock()

	agentDeck := request.GetInt("agent_deck", 0)
	agentPlayer := request.GetInt("agent_player", 0)
	opponent := request.GetString("opponent", "human")

	if agentDeck < 1 {
		return mcp.NewToolResultError("agent_deck must be >= 1"), nil
	}
	if agentPlayer != 0 && agentPlayer != 1 {
		return mcp.NewToolResultError("agent_player must be 0 or 1"), nil
	}

	sess, err := NewGameSession(SessionOptions{
		DecksFile:    cfg.DecksFile,
		AgentDeck:    agentDeck,
		AgentPlayer:  agentPlayer,
		Opponent:     opponent,
		OpponentDeck: request.GetInt("opponent_deck", 0),
		Port:         cfg.Port,
		Seed:         cfg.Seed,
		MaxTurns:     cfg.MaxTurns,
	})
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to start game: %v", err), nil
	}

	sessionMu.Lock()
	activeSession = sess
	sessionMu.Unlock()

	resp, err := sess.waitForPending(ctx)
	if err != nil {
		return mcp.NewToolResultErrorf("Error waiting for first decision: %v", err), nil
	}
	if opponent != "ai" {
		resp.Port = cfg.Port
	}
	finishIfOver(resp)

	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handleTakeAction(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := currentSession()
	if sess == nil {
		return mcp.NewToolResultError("No game is running. Use start_game first."), nil
	}

	pending := sess.currentPending
	if pending == nil {
		return mcp.NewToolResultError("No pending decision."), nil
	}
	if pending.Player != sess.agentPlayer {
		return mcp.NewToolResultError("Waiting for the opponent to respond."), nil
	}
	if pending.Type != DecisionChooseAction {
		return mcp.NewToolResultErrorf("No action is pending: decision is '%s'.", pending.Type), nil
	}

	index := request.GetInt("index", -1)
	if index < 0 || index >= len(pending.Actions) {
		return mcp.NewToolResultErrorf("Invalid index %d. Must be 0-%d.", index, len(pending.Actions)-1), nil
	}

	sess.agentCtrl.responseCh <- ActionResponse{Index: index}

	resp, err := sess.waitForPending(ctx)
	if err != nil {
		return mcp.NewToolResultErrorf("Error waiting for next decision: %v", err), nil
	}
	finishIfOver(resp)

	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func finishIfOver(resp *ToolResponse) {
	if !resp.GameOver {
		return
	}
	sessionMu.Lock()
	activeSession = nil
	sessionMu.Unlock()
}

func handleGetGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := currentSession()
	if sess == nil {
		return mcp.NewToolResultError("No game is running. Use start_game first."), nil
	}

	events := sess.drainEvents()

	sess.mu.Lock()
	gameOver := sess.gameOver
	winner := sess.winner
	result := sess.result
	sess.mu.Unlock()

	resp := &ToolResponse{
		MatchID:  sess.match.ID,
		Events:   events,
		GameOver: gameOver,
		Winner:   winner,
		Result:   result,
	}

	pending := sess.currentPending
	switch {
	case gameOver:
		if pending != nil {
			resp.State = pending.State
		}
	case pending != nil && pending.Player == sess.agentPlayer:
		// The engine is blocked on the agent, so the snapshot is stable.
		resp.State = pending.State
		resp.Pending = &PendingView{
			Type:      pending.Type,
			ForPlayer: "agent",
			Actions:   pending.Actions,
		}
	case pending != nil:
		resp.State = pending.State
		resp.Pending = &PendingView{Type: DecisionChooseAction, ForPlayer: "opponent"}
	}

	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handleListCards(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var views []gwentnet.CardView
	for _, name := range game.CardNames() {
		card := game.LookupCard(name)
		views = append(views, gwentnet.DefinitionView(card))
	}
	return mcp.NewToolResultText(respondJSON(views)), nil
}
