package net

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"sync"

	"github.com/peterkuimelis/gwent/internal/game"
	"github.com/peterkuimelis/gwent/internal/log"
)

// NetworkController implements game.PlayerController over a TCP connection.
type NetworkController struct {
	conn   net.Conn
	enc    *json.Encoder
	dec    *json.Decoder
	player int // which player this controller is (0 or 1)
	mu     sync.Mutex
}

// NewNetworkController creates a new controller for the given connection.
func NewNetworkController(conn net.Conn, player int) *NetworkController {
	return &NetworkController{
		conn:   conn,
		enc:    json.NewEncoder(conn),
		dec:    json.NewDecoder(conn),
		player: player,
	}
}

// NewNetworkControllerWithDecoder creates a controller that keeps reading
// from dec, for connections whose handshake was already decoded.
func NewNetworkControllerWithDecoder(conn net.Conn, dec *json.Decoder, player int) *NetworkController {
	return &NetworkController{
		conn:   conn,
		enc:    json.NewEncoder(conn),
		dec:    dec,
		player: player,
	}
}

// BuildStateView creates a StateView from the perspective of the given player.
func BuildStateView(state *game.GameState, player int) *StateView {
	me := player
	opp := 1 - me

	return &StateView{
		Round:      state.Round(),
		IsYourTurn: state.CurrentIndex() == me,
		You:        BuildPlayerView(state.Players[me], true),
		Opponent:   BuildPlayerView(state.Players[opp], false),
	}
}

// BuildPlayerView describes one side of the board. The hand is listed only
// for its owner.
func BuildPlayerView(p *game.Player, isOwner bool) PlayerView {
	pv := PlayerView{
		Name:         p.Name,
		Health:       p.Health(),
		Passed:       p.HasEndedRound(),
		HandCount:    p.Hand.Len(),
		DeckCount:    p.Deck.Len(),
		DiscardCount: len(p.Discard),
		Melee:        buildRowView(p, game.CardTypeMelee),
		Range:        buildRowView(p, game.CardTypeRange),
		Siege:        buildRowView(p, game.CardTypeSiege),
		Strength:     p.CalculatePlayerStrength(),
	}
	for _, c := range p.WeatherCards() {
		pv.Weather = append(pv.Weather, BuildCardView(c))
	}
	if isOwner {
		for _, c := range p.Hand.Cards() {
			pv.Hand = append(pv.Hand, BuildCardView(c))
		}
	}
	return pv
}

func buildRowView(p *game.Player, row game.CardType) RowView {
	rv := RowView{Cards: []CardView{}, Strength: p.CalculateZoneStrength(row)}
	for _, c := range p.PowerCardsOnBoard(row) {
		rv.Cards = append(rv.Cards, BuildCardView(c))
	}
	return rv
}

// BuildCardView creates a CardView for a card instance.
func BuildCardView(ci *game.CardInstance) CardView {
	cv := CardView{
		ID:   ci.ID,
		Name: ci.Card.Name,
		Row:  ci.Card.CardType.String(),
	}
	if ci.Card.Ability != game.AbilityEmpty {
		cv.Ability = ci.Card.Ability.String()
	}
	if ci.IsPower() {
		cv.Power = ci.BasePower()
		cv.Strength = ci.Strength()
		cv.Weather = ci.WeatherMod
		cv.Morale = ci.MoraleMod
		cv.Bond = ci.BondMod
	}
	return cv
}

// DefinitionView describes a catalog card that is not in play.
func DefinitionView(c *game.Card) CardView {
	cv := CardView{
		Name:   c.Name,
		Row:    c.CardType.String(),
		Power:  c.Power,
		Flavor: c.Flavor,
		Image:  c.Image,
	}
	if c.Ability != game.AbilityEmpty {
		cv.Ability = c.Ability.String()
	}
	return cv
}

// NewEventView converts a logged event for the wire.
func NewEventView(event log.GameEvent) EventView {
	return EventView{
		Round:   event.Round,
		Turn:    event.Turn,
		Player:  event.Player,
		Type:    event.Type.String(),
		Card:    event.Card,
		Details: event.Details,
	}
}

// send sends a server message to the client. Must be called with mu held.
func (nc *NetworkController) send(msg ServerMessage) error {
	return nc.enc.Encode(msg)
}

// recv reads a client message. Must be called with mu held.
func (nc *NetworkController) recv() (ClientMessage, error) {
	var msg ClientMessage
	err := nc.dec.Decode(&msg)
	return msg, err
}

// ChooseAction implements game.PlayerController.
func (nc *NetworkController) ChooseAction(ctx context.Context, state *game.GameState, actions []game.Action) (game.Action, error) {
	nc.mu.Lock()
	defer nc.mu.Unlock()

	var views []ActionView
	for i, a := range actions {
		views = append(views, ActionView{Index: i, Desc: a.String()})
	}

	msg := ServerMessage{
		Type:    "choose_action",
		Actions: views,
		State:   BuildStateView(state, nc.player),
	}
	if err := nc.send(msg); err != nil {
		return game.Action{}, fmt.Errorf("send choose_action: %w", err)
	}

	resp, err := nc.recv()
	if err != nil {
		return game.Action{}, fmt.Errorf("recv action: %w", err)
	}

	if resp.Index < 0 || resp.Index >= len(actions) {
		return actions[len(actions)-1], nil // fallback to pass
	}
	return actions[resp.Index], nil
}

// SendGameOver sends a game_over message to the client.
func (nc *NetworkController) SendGameOver(winner int, result, matchID string) error {
	nc.mu.Lock()
	defer nc.mu.Unlock()
	return nc.send(ServerMessage{Type: "game_over", Winner: winner, Result: result, MatchID: matchID})
}

// Notify implements game.PlayerController.
func (nc *NetworkController) Notify(ctx context.Context, event log.GameEvent) error {
	nc.mu.Lock()
	defer nc.mu.Unlock()

	ev := NewEventView(event)
	return nc.send(ServerMessage{Type: "notify", Event: &ev})
}
