package game

import (
	"errors"
	"testing"
)

func TestTurnAlternation(t *testing.T) {
	gs := NewGameState(NewPlayer("A", nil), NewPlayer("B", nil), 1)

	if gs.CurrentIndex() != 1 || gs.StartingIndex() != 1 {
		t.Fatalf("current=%d starting=%d, want 1 and 1", gs.CurrentIndex(), gs.StartingIndex())
	}
	if gs.CurrentPlayer().Name != "B" || gs.OpposingPlayer().Name != "A" {
		t.Errorf("current=%s opposing=%s", gs.CurrentPlayer(), gs.OpposingPlayer())
	}

	gs.SwitchTurn()
	if gs.CurrentIndex() != 0 {
		t.Errorf("after switch current = %d, want 0", gs.CurrentIndex())
	}
	if !gs.IsPlayerTurn(gs.Players[0]) || gs.IsPlayerTurn(gs.Players[1]) {
		t.Error("IsPlayerTurn disagrees with CurrentIndex")
	}

	gs.SwitchTurn()
	gs.SwitchTurn()
	if gs.CurrentIndex() != 0 {
		t.Errorf("after three switches current = %d, want 0", gs.CurrentIndex())
	}
}

func TestStartNewRoundAlternatesOpener(t *testing.T) {
	gs := NewGameState(NewPlayer("A", nil), NewPlayer("B", nil), 0)
	gs.SwitchTurn() // mid-round, P2 to move

	gs.StartNewRound()
	if gs.Round() != 2 {
		t.Errorf("round = %d, want 2", gs.Round())
	}
	if gs.StartingIndex() != 1 || gs.CurrentIndex() != 1 {
		t.Errorf("round 2: starting=%d current=%d, want 1 and 1", gs.StartingIndex(), gs.CurrentIndex())
	}

	gs.StartNewRound()
	if gs.StartingIndex() != 0 || gs.CurrentIndex() != 0 {
		t.Errorf("round 3: starting=%d current=%d, want 0 and 0", gs.StartingIndex(), gs.CurrentIndex())
	}
}

func TestPlayerIndex(t *testing.T) {
	a, b := NewPlayer("A", nil), NewPlayer("B", nil)
	gs := NewGameState(a, b, 0)
	if gs.PlayerIndex(b) != 1 {
		t.Errorf("PlayerIndex(b) = %d", gs.PlayerIndex(b))
	}
	if gs.PlayerIndex(NewPlayer("C", nil)) != -1 {
		t.Error("stranger should not be found")
	}
}

func TestAddCardToBoardPositions(t *testing.T) {
	b := newTestBoard()
	p := b.gs.Players[0]

	ves := b.card(0, Ves())
	siegfried := b.card(0, SiegfriedOfDenesle())
	infantry := b.card(0, PoorInfantry())
	soldier := b.card(0, RedanianFootSoldier())

	for _, step := range []struct {
		pos  int
		card *CardInstance
	}{
		{0, ves},
		{0, siegfried}, // front
		{99, infantry}, // clamps to the end
		{1, soldier},   // middle
	} {
		if err := p.AddCardToBoard(step.pos, step.card); err != nil {
			t.Fatalf("AddCardToBoard(%d, %s): %v", step.pos, step.card, err)
		}
	}

	row := p.Row(CardTypeMelee)
	want := []*CardInstance{siegfried, soldier, ves, infantry}
	if len(row) != len(want) {
		t.Fatalf("row has %d cards, want %d", len(row), len(want))
	}
	for i := range want {
		if row[i] != want[i] {
			t.Errorf("row[%d] = %s, want %s", i, row[i], want[i])
		}
	}
	if p.BoardCount() != 4 {
		t.Errorf("BoardCount = %d, want 4", p.BoardCount())
	}
	if got := p.CalculateZoneStrength(CardTypeMelee); got != 12 {
		t.Errorf("melee strength = %d, want 12", got)
	}
}

func TestDuplicateWeatherRejected(t *testing.T) {
	b := newTestBoard()
	p := b.gs.Players[0]

	if err := p.AddCardToBoard(-1, b.card(0, BitingFrost())); err != nil {
		t.Fatalf("first frost: %v", err)
	}
	err := p.AddCardToBoard(-1, b.card(0, BitingFrost()))
	if !errors.Is(err, ErrDuplicateWeather) {
		t.Fatalf("second frost: err = %v, want ErrDuplicateWeather", err)
	}
	if n := len(p.WeatherCards()); n != 1 {
		t.Errorf("weather row has %d cards after rejection, want 1", n)
	}

	// A different weather card, or the same one on the other side, is fine.
	if err := p.AddCardToBoard(-1, b.card(0, TorrentialRain())); err != nil {
		t.Errorf("rain: %v", err)
	}
	if err := b.gs.Players[1].AddCardToBoard(-1, b.card(1, BitingFrost())); err != nil {
		t.Errorf("opponent frost: %v", err)
	}
}

func TestAddCardToBoardUnsupportedTypePanics(t *testing.T) {
	b := newTestBoard()
	odd := b.card(0, &Card{Name: "Oddity", CardType: CardType(42)})

	defer func() {
		if recover() == nil {
			t.Error("expected panic for unsupported card type")
		}
	}()
	_ = b.gs.Players[0].AddCardToBoard(0, odd)
}

func TestRemoveCardFromBoard(t *testing.T) {
	b := newTestBoard()
	p := b.gs.Players[0]
	ves := b.play(t, 0, Ves())

	if !p.RemoveCardFromBoard(ves) {
		t.Fatal("RemoveCardFromBoard returned false for a placed card")
	}
	if p.RemoveCardFromBoard(ves) {
		t.Error("second removal should report false")
	}
	if p.BoardCount() != 0 {
		t.Errorf("BoardCount = %d, want 0", p.BoardCount())
	}
}

func TestClearBoardDiscardsAndResets(t *testing.T) {
	b := newTestBoard()
	p := b.gs.Players[0]

	b.play(t, 0, BlueStripesCommando())
	c := b.play(t, 0, BlueStripesCommando())
	b.play(t, 0, BitingFrost())
	if c.BondMod == 0 || c.WeatherMod == 0 {
		t.Fatalf("setup: modifiers not applied (bond=%d weather=%d)", c.BondMod, c.WeatherMod)
	}

	p.ClearBoard()

	if p.BoardCount() != 0 {
		t.Errorf("BoardCount = %d after ClearBoard", p.BoardCount())
	}
	if len(p.Discard) != 3 {
		t.Errorf("discard = %d, want 3", len(p.Discard))
	}
	if c.BondMod != 0 || c.WeatherMod != 0 || c.MoraleMod != 0 {
		t.Errorf("modifiers not reset: %+v", *c)
	}
}

func TestPowerCardsOnBoardExcludesWeather(t *testing.T) {
	b := newTestBoard()
	b.play(t, 0, BitingFrost())
	b.play(t, 0, Ves())

	p := b.gs.Players[0]
	if got := p.PowerCardsOnBoard(CardTypeWeather); got != nil {
		t.Errorf("PowerCardsOnBoard(Weather) = %v, want nil", got)
	}
	if got := len(p.AllPowerCardsOnBoard()); got != 1 {
		t.Errorf("AllPowerCardsOnBoard = %d, want 1", got)
	}
	if got := p.CalculatePlayerStrength(); got != 1 {
		t.Errorf("strength = %d, want 1 (Ves under frost)", got)
	}
}

func TestHealthAndPassing(t *testing.T) {
	p := NewPlayer("A", nil)
	if p.Health() != StartingHealth {
		t.Fatalf("health = %d, want %d", p.Health(), StartingHealth)
	}
	if got := p.ReduceHealth(); got != 1 {
		t.Errorf("ReduceHealth = %d, want 1", got)
	}
	if got := p.ReduceHealth(); got != 0 {
		t.Errorf("ReduceHealth = %d, want 0", got)
	}

	p.PassRound()
	if !p.HasEndedRound() {
		t.Error("PassRound did not end the round")
	}
	p.ResetRound()
	if p.HasEndedRound() {
		t.Error("ResetRound did not clear the passed flag")
	}
}

func TestStrengthOfWeatherCardIsZero(t *testing.T) {
	b := newTestBoard()
	frost := b.card(0, BitingFrost())
	if frost.Strength() != 0 || frost.IsPower() || !frost.IsWeather() {
		t.Errorf("weather card: strength=%d power=%v weather=%v", frost.Strength(), frost.IsPower(), frost.IsWeather())
	}
}
