package mcp

import (
	"context"

	"github.com/peterkuimelis/gwent/internal/game"
	"github.com/peterkuimelis/gwent/internal/log"
	"github.com/peterkuimelis/gwent/internal/net"
)

// MCPController implements game.PlayerController by sending decisions
// to the MCP session's pending channel and blocking on a response channel.
type MCPController struct {
	player     int
	session    *GameSession
	responseCh chan ActionResponse
}

// NewMCPController creates a controller for the given player.
func NewMCPController(player int, session *GameSession) *MCPController {
	return &MCPController{
		player:     player,
		session:    session,
		responseCh: make(chan ActionResponse),
	}
}

// ChooseAction implements game.PlayerController.
func (c *MCPController) ChooseAction(ctx context.Context, state *game.GameState, actions []game.Action) (game.Action, error) {
	var views []net.ActionView
	for i, a := range actions {
		views = append(views, net.ActionView{Index: i, Desc: a.String()})
	}

	pending := &PendingDecision{
		Type:    DecisionChooseAction,
		Player:  c.player,
		State:   net.BuildStateView(state, c.player),
		Actions: views,
	}
	select {
	case c.session.pendingCh <- pending:
	case <-ctx.Done():
		return game.Action{}, ctx.Err()
	}

	var ar ActionResponse
	select {
	case ar = <-c.responseCh:
	case <-ctx.Done():
		return game.Action{}, ctx.Err()
	}

	if ar.Index < 0 || ar.Index >= len(actions) {
		return actions[len(actions)-1], nil
	}
	return actions[ar.Index], nil
}

// Notify implements game.PlayerController. Only the agent's controller
// records events so each one is reported once.
func (c *MCPController) Notify(ctx context.Context, event log.GameEvent) error {
	c.session.appendEvent(net.NewEventView(event))
	return nil
}
