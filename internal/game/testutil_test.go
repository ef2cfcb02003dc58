package game

import (
	"context"
	"testing"

	"github.com/peterkuimelis/gwent/internal/log"
)

// ScriptedController is a PlayerController that follows a predefined script of actions.
// Used in tests to deterministically drive the game.
type ScriptedController struct {
	t       *testing.T
	name    string
	actions []ScriptedAction
	pos     int
}

type ScriptedAction struct {
	// Match by ActionType: picks the first action of this type
	Type ActionType
	// Optional: match by card name as well
	CardName string
	// Optional: insertion index for played cards; -1 appends
	Position int
}

func NewScriptedController(t *testing.T, name string) *ScriptedController {
	return &ScriptedController{t: t, name: name}
}

func (sc *ScriptedController) AddPlay(cardName string) *ScriptedController {
	sc.actions = append(sc.actions, ScriptedAction{Type: ActionPlayCard, CardName: cardName, Position: -1})
	return sc
}

func (sc *ScriptedController) AddPlayAt(cardName string, position int) *ScriptedController {
	sc.actions = append(sc.actions, ScriptedAction{Type: ActionPlayCard, CardName: cardName, Position: position})
	return sc
}

func (sc *ScriptedController) AddPass() *ScriptedController {
	sc.actions = append(sc.actions, ScriptedAction{Type: ActionPass})
	return sc
}

// Done reports whether every scripted action was consumed.
func (sc *ScriptedController) Done() bool {
	return sc.pos >= len(sc.actions)
}

func (sc *ScriptedController) ChooseAction(ctx context.Context, state *GameState, actions []Action) (Action, error) {
	if sc.pos < len(sc.actions) {
		scripted := sc.actions[sc.pos]
		for _, a := range actions {
			if a.Type != scripted.Type {
				continue
			}
			if scripted.CardName != "" && (a.Card == nil || a.Card.Card.Name != scripted.CardName) {
				continue
			}
			sc.pos++
			if a.Type == ActionPlayCard {
				a.Position = scripted.Position
			}
			return a, nil
		}
		sc.t.Logf("[%s] scripted %s %q not available, passing", sc.name, scripted.Type, scripted.CardName)
	}

	// Script exhausted or not applicable: pass.
	for _, a := range actions {
		if a.Type == ActionPass {
			return a, nil
		}
	}
	return actions[len(actions)-1], nil
}

func (sc *ScriptedController) Notify(ctx context.Context, event log.GameEvent) error {
	return nil
}

// --- Test state helpers ---

// testBoard is a bare two-player state with empty decks and an arena for
// creating cards.
type testBoard struct {
	gs    *GameState
	arena *Arena
}

func newTestBoard() *testBoard {
	return &testBoard{
		gs:    NewGameState(NewPlayer("P1", nil), NewPlayer("P2", nil), 0),
		arena: NewArena(),
	}
}

// card creates an instance owned by player.
func (b *testBoard) card(player int, def *Card) *CardInstance {
	return b.arena.Create(def, player)
}

// play places def on player's board with that player to move and activates
// its ability, the way a match turn does.
func (b *testBoard) play(t *testing.T, player int, def *Card) *CardInstance {
	t.Helper()
	ci := b.card(player, def)
	b.playInstance(t, player, ci)
	return ci
}

func (b *testBoard) playInstance(t *testing.T, player int, ci *CardInstance) {
	t.Helper()
	b.gs.current = player
	if err := b.gs.Players[player].AddCardToBoard(-1, ci); err != nil {
		t.Fatalf("AddCardToBoard(%s): %v", ci.Card.Name, err)
	}
	ci.Ability().Activate(b.gs, ci)
}

// remove deactivates ci and takes it off its owner's board.
func (b *testBoard) remove(t *testing.T, ci *CardInstance) {
	t.Helper()
	b.gs.current = ci.Owner
	ci.Ability().Deactivate(b.gs, ci)
	if !b.gs.Players[ci.Owner].RemoveCardFromBoard(ci) {
		t.Fatalf("%s was not on the board", ci.Card.Name)
	}
}

// repeat returns n copies of a constructor's card.
func repeat(ctor func() *Card, n int) []*Card {
	cards := make([]*Card, 0, n)
	for i := 0; i < n; i++ {
		cards = append(cards, ctor())
	}
	return cards
}

// makeDeck concatenates card lists; the first card is drawn first.
func makeDeck(groups ...[]*Card) []*Card {
	var deck []*Card
	for _, g := range groups {
		deck = append(deck, g...)
	}
	return deck
}

func cards(ctors ...func() *Card) []*Card {
	result := make([]*Card, 0, len(ctors))
	for _, c := range ctors {
		result = append(result, c())
	}
	return result
}

// runMatchToCompletion runs a match and returns the logger for inspection.
func runMatchToCompletion(t *testing.T, cfg MatchConfig, p0, p1 PlayerController) (*Match, *log.MemoryLogger) {
	t.Helper()
	logger := log.NewMemoryLogger()
	cfg.Logger = logger
	cfg.NoShuffle = true // deterministic tests
	if cfg.MaxTurns == 0 {
		cfg.MaxTurns = 100 // reasonable default for tests
	}

	match := NewMatch(cfg, p0, p1)

	winner, err := match.Run(context.Background())
	if err != nil {
		t.Logf("Event log:\n%s", log.FormatAll(logger.Events()))
		t.Fatalf("Match error: %v", err)
	}

	t.Logf("Match result: winner=%d (%s)", winner, match.Result)
	t.Logf("Event log:\n%s", log.FormatAll(logger.Events()))

	return match, logger
}
