package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/peterkuimelis/gwent/internal/log"
)

// PlayerController is the interface that human (network) and AI players implement.
type PlayerController interface {
	// ChooseAction presents available actions and waits for the player to pick one.
	ChooseAction(ctx context.Context, state *GameState, actions []Action) (Action, error)

	// Notify sends a game event notification (no response needed).
	Notify(ctx context.Context, event log.GameEvent) error
}

// MatchConfig holds configuration for creating a new match.
type MatchConfig struct {
	ID             string    // match identifier; a UUID is generated when empty
	Names          [2]string // display names; default "P1"/"P2"
	Deck0          []*Card   // Player 0's deck (card definitions)
	Deck1          []*Card   // Player 1's deck (card definitions)
	Logger         log.EventLogger
	Seed           int64 // RNG seed (0 for random)
	NoShuffle      bool  // skip deck shuffle (for deterministic tests)
	MaxTurns       int   // stop after this many turns (0 = default limit)
	HandSize       int   // opening hand size (0 = InitialHandSize)
	StartingPlayer int   // who opens round one
}

// Match drives a full game between two players: turns, passing, round
// resolution and lives. It is the only place that pairs board placement
// with ability activation.
type Match struct {
	ID          string
	State       *GameState
	Arena       *Arena
	Controllers [2]PlayerController
	Logger      log.EventLogger

	Turn int // counted across the whole match

	// Result
	Winner int // 0, 1, or -1 (no winner yet / draw)
	Over   bool
	Result string

	ctx       context.Context
	noShuffle bool
	maxTurns  int
	handSize  int
}

// NewMatch creates a new match from the given config and player controllers.
func NewMatch(cfg MatchConfig, p0, p1 PlayerController) *Match {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewMemoryLogger()
	}
	id := cfg.ID
	if id == "" {
		id = uuid.NewString()
	}

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}

	arena := NewArena()
	names := cfg.Names
	for i, def := range [2]string{"P1", "P2"} {
		if names[i] == "" {
			names[i] = def
		}
	}
	pl0 := NewPlayer(names[0], NewDeck(arena.CreateAll(cfg.Deck0, 0), rng))
	pl1 := NewPlayer(names[1], NewDeck(arena.CreateAll(cfg.Deck1, 1), rng))

	maxTurns := cfg.MaxTurns
	if maxTurns == 0 {
		maxTurns = 200 // safety limit
	}
	handSize := cfg.HandSize
	if handSize == 0 {
		handSize = InitialHandSize
	}

	return &Match{
		ID:          id,
		State:       NewGameState(pl0, pl1, cfg.StartingPlayer),
		Arena:       arena,
		Controllers: [2]PlayerController{p0, p1},
		Logger:      logger,
		Winner:      -1,
		ctx:         context.Background(),
		noShuffle:   cfg.NoShuffle,
		maxTurns:    maxTurns,
		handSize:    handSize,
	}
}

// Run executes the entire match loop. Returns the winner (0, 1, or -1 for draw).
func (m *Match) Run(ctx context.Context) (int, error) {
	m.ctx = ctx
	m.Setup()

	for !m.Over {
		if m.Turn >= m.maxTurns {
			m.Over = true
			m.Winner = -1
			m.Result = fmt.Sprintf("Turn limit reached (%d turns)", m.maxTurns)
			m.log(log.NewTieEvent(m.State.Round(), m.Turn, "turn limit"))
			break
		}
		if err := m.Step(); err != nil {
			return m.Winner, err
		}
		if err := m.ctx.Err(); err != nil {
			return -1, err
		}
	}

	return m.Winner, nil
}

// Setup shuffles both decks (unless disabled), deals opening hands and
// announces round one. Run calls it; drivers that step manually call it once.
func (m *Match) Setup() {
	gs := m.State

	for i, p := range gs.Players {
		if !m.noShuffle {
			p.Deck.Shuffle()
			m.log(log.NewShuffleEvent(gs.Round(), m.Turn, i))
		}
		for _, c := range p.DrawCards(m.handSize) {
			m.log(log.NewDrawEvent(gs.Round(), m.Turn, i, c.Card.Name))
		}
	}

	m.log(log.NewRoundEvent(gs.Round(), gs.StartingIndex()))
}

// Step runs one decision for the player whose turn it is.
func (m *Match) Step() error {
	if m.Over {
		return ErrMatchOver
	}
	gs := m.State
	tp := gs.CurrentIndex()

	if m.bothPassed() {
		m.endRound()
		return nil
	}
	if gs.CurrentPlayer().HasEndedRound() {
		gs.SwitchTurn()
		return nil
	}

	m.Turn++
	m.log(log.NewTurnEvent(gs.Round(), m.Turn, tp))

	actions := m.LegalActions(tp)
	chosen, err := m.Controllers[tp].ChooseAction(m.ctx, gs, actions)
	if err != nil {
		return fmt.Errorf("player %d choose action: %w", tp, err)
	}
	chosen.Player = tp

	if err := m.Apply(chosen); err != nil {
		if errors.Is(err, ErrDuplicateWeather) {
			// Rejected plays leave the board untouched; the player passes instead.
			chosen = Action{Type: ActionPass, Player: tp}
			if err := m.Apply(chosen); err != nil {
				return err
			}
		} else {
			return err
		}
	}

	if m.bothPassed() {
		m.endRound()
		return nil
	}
	if !gs.OpposingPlayer().HasEndedRound() {
		gs.SwitchTurn()
	}
	return nil
}

// LegalActions lists the plays open to player: every card in hand that can
// legally reach the board, plus pass.
func (m *Match) LegalActions(player int) []Action {
	p := m.State.Players[player]
	var actions []Action
	if p.HasEndedRound() {
		return actions
	}
	for _, c := range p.Hand.Cards() {
		if c.IsWeather() && hasWeather(p, c.Card.Name) {
			continue
		}
		actions = append(actions, Action{
			Type:     ActionPlayCard,
			Player:   player,
			Card:     c,
			Position: -1,
			Desc:     fmt.Sprintf("Play %s (%s %d, %s)", c.Card.Name, c.Card.CardType, c.Card.Power, c.Card.Ability),
		})
	}
	actions = append(actions, Action{Type: ActionPass, Player: player, Desc: "Pass round"})
	return actions
}

func hasWeather(p *Player, name string) bool {
	for _, w := range p.WeatherCards() {
		if w.Card.Name == name {
			return true
		}
	}
	return false
}

// Apply executes an action for its player.
func (m *Match) Apply(a Action) error {
	if m.Over {
		return ErrMatchOver
	}
	switch a.Type {
	case ActionPass:
		if a.Player != m.State.CurrentIndex() {
			return ErrNotYourTurn
		}
		m.State.Players[a.Player].PassRound()
		m.log(log.NewPassEvent(m.State.Round(), m.Turn, a.Player))
		return nil
	case ActionPlayCard:
		return m.PlayCard(a.Player, a.Card, a.Position)
	default:
		return fmt.Errorf("unknown action type %d", a.Type)
	}
}

// PlayCard moves a card from player's hand to the board, activates its
// ability and recomputes the board. Placement that fails (duplicate
// weather) leaves hand and board unchanged.
func (m *Match) PlayCard(player int, card *CardInstance, position int) error {
	gs := m.State
	p := gs.Players[player]
	switch {
	case card == nil:
		return fmt.Errorf("play card: %w", ErrCardNotInHand)
	case !gs.IsPlayerTurn(p):
		return ErrNotYourTurn
	case p.HasEndedRound():
		return ErrPlayerPassed
	case !p.Hand.Contains(card):
		return fmt.Errorf("%s: %w", card.Card.Name, ErrCardNotInHand)
	}

	if err := p.AddCardToBoard(position, card); err != nil {
		m.log(log.NewRejectedEvent(gs.Round(), m.Turn, player, card.Card.Name, err.Error()))
		return err
	}
	p.Hand.Remove(card)
	m.log(log.NewPlayCardEvent(gs.Round(), m.Turn, player, card.Card.Name, card.Card.CardType.String(), indexOf(p.Row(card.Card.CardType), card)))

	ability := card.Ability()
	if ability.Kind() != AbilityEmpty {
		m.log(log.NewActivateEvent(gs.Round(), m.Turn, player, card.Card.Name, ability.Name()))
	}
	handBefore := p.Hand.Len()
	ability.Activate(gs, card)
	for _, c := range p.Hand.Cards()[handBefore:] {
		m.log(log.NewDrawEvent(gs.Round(), m.Turn, player, c.Card.Name))
	}
	if ability.Kind() == AbilityClearWeather {
		m.log(log.NewWeatherClearedEvent(gs.Round(), m.Turn, player, card.Card.Name))
	}

	gs.RecomputeModifiers()
	return nil
}

// RemoveCard deactivates a card's ability and takes it off the board into
// its owner's discard pile.
func (m *Match) RemoveCard(card *CardInstance) bool {
	gs := m.State
	p := gs.Players[card.Owner]
	if indexOf(p.Row(card.Card.CardType), card) < 0 {
		return false
	}
	ability := card.Ability()
	ability.Deactivate(gs, card)
	if ability.Kind() != AbilityEmpty {
		m.log(log.NewDeactivateEvent(gs.Round(), m.Turn, card.Owner, card.Card.Name, ability.Name()))
	}
	p.RemoveCardFromBoard(card)
	card.ResetModifiers()
	p.Discard = append(p.Discard, card)
	gs.RecomputeModifiers()
	return true
}

func indexOf(cards []*CardInstance, card *CardInstance) int {
	for i, c := range cards {
		if c == card {
			return i
		}
	}
	return -1
}

func (m *Match) bothPassed() bool {
	return m.State.Players[0].HasEndedRound() && m.State.Players[1].HasEndedRound()
}

// endRound scores the round, takes lives, clears the board and either ends
// the match or opens the next round.
func (m *Match) endRound() {
	gs := m.State
	s0 := gs.Players[0].CalculatePlayerStrength()
	s1 := gs.Players[1].CalculatePlayerStrength()
	m.log(log.NewStrengthEvent(gs.Round(), m.Turn, s0, s1))

	var losers []int
	switch {
	case s0 > s1:
		m.log(log.NewRoundWinEvent(gs.Round(), m.Turn, 0, s0, s1))
		losers = []int{1}
	case s1 > s0:
		m.log(log.NewRoundWinEvent(gs.Round(), m.Turn, 1, s1, s0))
		losers = []int{0}
	default:
		m.log(log.NewRoundTieEvent(gs.Round(), m.Turn, s0))
		losers = []int{0, 1}
	}
	for _, i := range losers {
		left := gs.Players[i].ReduceHealth()
		m.log(log.NewLifeLostEvent(gs.Round(), m.Turn, i, left))
	}

	if len(gs.WeatherCards()) > 0 {
		AbilityFor(AbilityClearWeather).Activate(gs, nil)
		m.log(log.NewWeatherClearedEvent(gs.Round(), m.Turn, gs.CurrentIndex(), "end of round"))
	}
	for i, p := range gs.Players {
		n := p.BoardCount()
		p.ClearBoard()
		m.log(log.NewBoardClearedEvent(gs.Round(), m.Turn, i, n))
	}

	if m.checkWinCondition() {
		return
	}

	gs.StartNewRound()
	for _, p := range gs.Players {
		p.ResetRound()
	}
	m.log(log.NewRoundEvent(gs.Round(), gs.StartingIndex()))
}

// checkWinCondition ends the match when a player is out of lives.
func (m *Match) checkWinCondition() bool {
	gs := m.State
	p0Out := gs.Players[0].Health() <= 0
	p1Out := gs.Players[1].Health() <= 0

	switch {
	case p0Out && p1Out:
		m.Over = true
		m.Winner = -1
		m.Result = "Draw - both players are out of lives"
		m.log(log.NewTieEvent(gs.Round(), m.Turn, "both players out of lives"))
	case p0Out:
		m.Over = true
		m.Winner = 1
		m.Result = fmt.Sprintf("%s wins - %s is out of lives", gs.Players[1].Name, gs.Players[0].Name)
		m.log(log.NewWinEvent(gs.Round(), m.Turn, 1, "opponent out of lives"))
	case p1Out:
		m.Over = true
		m.Winner = 0
		m.Result = fmt.Sprintf("%s wins - %s is out of lives", gs.Players[0].Name, gs.Players[1].Name)
		m.log(log.NewWinEvent(gs.Round(), m.Turn, 0, "opponent out of lives"))
	}
	return m.Over
}

// log emits a game event through the logger and notifies both players.
func (m *Match) log(event log.GameEvent) {
	m.Logger.Log(event)
	for i := 0; i < 2; i++ {
		if m.Controllers[i] != nil {
			_ = m.Controllers[i].Notify(m.ctx, event)
		}
	}
}
