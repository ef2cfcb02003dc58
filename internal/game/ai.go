package game

import (
	"context"

	"github.com/peterkuimelis/gwent/internal/log"
)

// PlayerAI is a player driven by a fixed heuristic: open with a weather card
// while the board has none, otherwise play the strongest unit, otherwise pass.
type PlayerAI struct {
	*Player
}

// NewPlayerAI creates a computer-controlled player.
func NewPlayerAI(name string, deck *Deck) *PlayerAI {
	return &PlayerAI{Player: NewPlayer(name, deck)}
}

// SelectCard returns the card the heuristic would play, or nil to pass.
// The board and hand are not changed.
func (ai *PlayerAI) SelectCard(gs *GameState) *CardInstance {
	if len(gs.WeatherCards()) == 0 {
		if weather := ai.Hand.WeatherCards(); len(weather) > 0 {
			return weather[0]
		}
	}
	return ai.Hand.StrongestPowerCard()
}

// ChooseCard takes the AI's turn: the selected card is moved from hand to
// position 0 of its row, or the AI passes when nothing is playable.
// Returns the placed card, or nil after passing. The caller activates the
// placed card's ability.
func (ai *PlayerAI) ChooseCard(gs *GameState) (*CardInstance, error) {
	card := ai.SelectCard(gs)
	if card == nil {
		ai.PassRound()
		return nil, nil
	}
	if err := ai.AddCardToBoard(0, card); err != nil {
		return nil, err
	}
	ai.Hand.Remove(card)
	return card, nil
}

// AIController adapts the PlayerAI heuristic to the PlayerController
// interface so a match can seat it opposite a human or another AI.
type AIController struct {
	Player int // seat index the controller plays for
}

// ChooseAction picks the action matching the heuristic's selection, falling
// back to pass.
func (c *AIController) ChooseAction(ctx context.Context, state *GameState, actions []Action) (Action, error) {
	ai := &PlayerAI{Player: state.Players[c.Player]}
	choice := ai.SelectCard(state)
	pass := Action{Type: ActionPass, Player: c.Player}
	for _, a := range actions {
		switch a.Type {
		case ActionPlayCard:
			if choice != nil && a.Card == choice {
				a.Position = 0
				return a, nil
			}
		case ActionPass:
			pass = a
		}
	}
	return pass, nil
}

// Notify implements PlayerController.
func (c *AIController) Notify(ctx context.Context, event log.GameEvent) error {
	return nil
}
