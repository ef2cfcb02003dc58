package game

import "fmt"

const (
	StartingHealth  = 2
	InitialHandSize = 10
)

// Player represents one player's entire state.
type Player struct {
	Name    string
	Hand    *Hand
	Deck    *Deck
	Discard []*CardInstance

	board  map[CardType][]*CardInstance
	health int
	passed bool
}

// NewPlayer creates a player with full health, an empty hand and board.
func NewPlayer(name string, deck *Deck) *Player {
	if deck == nil {
		deck = NewDeck(nil, nil)
	}
	return &Player{
		Name:   name,
		Hand:   NewHand(),
		Deck:   deck,
		board:  make(map[CardType][]*CardInstance),
		health: StartingHealth,
	}
}

func (p *Player) String() string {
	return p.Name
}

// DrawFromDeck moves the front card of the deck into the hand. Returns the
// drawn card, or nil if the deck is empty.
func (p *Player) DrawFromDeck() *CardInstance {
	card := p.Deck.Draw()
	if card == nil {
		return nil
	}
	p.Hand.Add(card)
	return card
}

// DrawCards draws up to n cards and returns those actually drawn.
func (p *Player) DrawCards(n int) []*CardInstance {
	var drawn []*CardInstance
	for i := 0; i < n; i++ {
		card := p.DrawFromDeck()
		if card == nil {
			break
		}
		drawn = append(drawn, card)
	}
	return drawn
}

// AddCardToBoard places a card into its row. Power cards are inserted at
// position, clamped to the row; an out-of-range position appends. Weather
// cards are rejected with ErrDuplicateWeather if an identical card is already
// active on this player's weather row.
//
// Placement does not activate the card's ability; the caller does that.
func (p *Player) AddCardToBoard(position int, card *CardInstance) error {
	switch card.Card.CardType {
	case CardTypeMelee, CardTypeRange, CardTypeSiege:
		p.insert(card.Card.CardType, position, card)
		return nil
	case CardTypeWeather:
		for _, w := range p.board[CardTypeWeather] {
			if w.Card.Name == card.Card.Name {
				return fmt.Errorf("%s: %w", card.Card.Name, ErrDuplicateWeather)
			}
		}
		p.insert(CardTypeWeather, position, card)
		return nil
	default:
		panic(fmt.Sprintf("unsupported card type %d for %q", card.Card.CardType, card.Card.Name))
	}
}

func (p *Player) insert(row CardType, position int, card *CardInstance) {
	cards := p.board[row]
	if position < 0 || position > len(cards) {
		position = len(cards)
	}
	cards = append(cards, nil)
	copy(cards[position+1:], cards[position:])
	cards[position] = card
	p.board[row] = cards
}

// RemoveCardFromBoard removes a card from its row by identity. The caller
// deactivates the card's ability first. Returns false if it was not on the
// board.
func (p *Player) RemoveCardFromBoard(card *CardInstance) bool {
	row := card.Card.CardType
	for i, c := range p.board[row] {
		if c == card {
			p.board[row] = append(p.board[row][:i], p.board[row][i+1:]...)
			return true
		}
	}
	return false
}

// ClearBoard empties every row into the discard pile. No ability is
// deactivated; modifiers of discarded cards are reset.
func (p *Player) ClearBoard() {
	for _, row := range append(Rows(), CardTypeWeather) {
		p.ClearZone(row)
	}
}

// ClearZone empties one row into the discard pile.
func (p *Player) ClearZone(row CardType) {
	for _, c := range p.board[row] {
		c.ResetModifiers()
		p.Discard = append(p.Discard, c)
	}
	delete(p.board, row)
}

// ClearWeatherEffects empties the weather row.
func (p *Player) ClearWeatherEffects() {
	p.ClearZone(CardTypeWeather)
}

// Row returns a copy of the cards in the given row, in position order.
func (p *Player) Row(row CardType) []*CardInstance {
	return append([]*CardInstance(nil), p.board[row]...)
}

// PowerCardsOnBoard returns the power cards in the given row. Asking for the
// weather row returns nil.
func (p *Player) PowerCardsOnBoard(row CardType) []*CardInstance {
	if row == CardTypeWeather {
		return nil
	}
	return p.Row(row)
}

// AllPowerCardsOnBoard returns the power cards of all three rows.
func (p *Player) AllPowerCardsOnBoard() []*CardInstance {
	var result []*CardInstance
	for _, row := range Rows() {
		result = append(result, p.board[row]...)
	}
	return result
}

// WeatherCards returns the cards in this player's weather row.
func (p *Player) WeatherCards() []*CardInstance {
	return p.Row(CardTypeWeather)
}

// BoardCount returns the number of cards on the board, weather included.
func (p *Player) BoardCount() int {
	n := 0
	for _, cards := range p.board {
		n += len(cards)
	}
	return n
}

// CalculateZoneStrength sums the effective strength of one row.
func (p *Player) CalculateZoneStrength(row CardType) int {
	total := 0
	for _, c := range p.PowerCardsOnBoard(row) {
		total += c.Strength()
	}
	return total
}

// CalculatePlayerStrength sums the effective strength of all rows.
func (p *Player) CalculatePlayerStrength() int {
	total := 0
	for _, row := range Rows() {
		total += p.CalculateZoneStrength(row)
	}
	return total
}

// Health returns the remaining lives.
func (p *Player) Health() int {
	return p.health
}

// ReduceHealth removes one life and returns what is left. The result may
// reach zero or below; the caller decides elimination.
func (p *Player) ReduceHealth() int {
	p.health--
	return p.health
}

// PassRound ends this player's participation in the current round.
func (p *Player) PassRound() {
	p.passed = true
}

// HasEndedRound reports whether the player has passed this round.
func (p *Player) HasEndedRound() bool {
	return p.passed
}

// ResetRound clears the passed flag at the start of a round.
func (p *Player) ResetRound() {
	p.passed = false
}

// --- GameState ---

// GameState holds both players and the turn pointer.
type GameState struct {
	Players [2]*Player

	current  int // whose turn it is
	starting int // who opens the current round
	round    int // 1-based
}

// NewGameState creates a state where the starting player moves first.
func NewGameState(p0, p1 *Player, startingPlayer int) *GameState {
	startingPlayer &= 1
	return &GameState{
		Players:  [2]*Player{p0, p1},
		current:  startingPlayer,
		starting: startingPlayer,
		round:    1,
	}
}

// Opponent returns the index of the other player.
func (gs *GameState) Opponent(player int) int {
	return 1 - player
}

// CurrentIndex returns the index of the player whose turn it is.
func (gs *GameState) CurrentIndex() int {
	return gs.current
}

// StartingIndex returns the index of the player who opened this round.
func (gs *GameState) StartingIndex() int {
	return gs.starting
}

// CurrentPlayer returns the player whose turn it is.
func (gs *GameState) CurrentPlayer() *Player {
	return gs.Players[gs.current]
}

// OpposingPlayer returns the player waiting for their turn.
func (gs *GameState) OpposingPlayer() *Player {
	return gs.Players[gs.Opponent(gs.current)]
}

// IsPlayerTurn reports whether it is p's turn.
func (gs *GameState) IsPlayerTurn(p *Player) bool {
	return gs.CurrentPlayer() == p
}

// PlayerIndex returns the index of p, or -1 if p is not in this game.
func (gs *GameState) PlayerIndex(p *Player) int {
	for i, pl := range gs.Players {
		if pl == p {
			return i
		}
	}
	return -1
}

// SwitchTurn hands the turn to the other player.
func (gs *GameState) SwitchTurn() {
	gs.current = gs.Opponent(gs.current)
}

// Round returns the 1-based round number.
func (gs *GameState) Round() int {
	return gs.round
}

// StartNewRound alternates the opening player and gives them the turn.
// Boards, health and passed flags are left to the caller.
func (gs *GameState) StartNewRound() {
	gs.starting = gs.Opponent(gs.starting)
	gs.current = gs.starting
	gs.round++
}

// WeatherCards returns the weather rows of both players, player one first.
func (gs *GameState) WeatherCards() []*CardInstance {
	var result []*CardInstance
	for _, p := range gs.Players {
		result = append(result, p.WeatherCards()...)
	}
	return result
}
