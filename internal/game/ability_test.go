package game

import "testing"

func strengths(cards ...*CardInstance) []int {
	result := make([]int, len(cards))
	for i, c := range cards {
		result[i] = c.Strength()
	}
	return result
}

func assertStrengths(t *testing.T, got []int, want ...int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d strengths %v, want %v", len(got), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("strengths = %v, want %v", got, want)
			return
		}
	}
}

func TestBondDoublesPerIdenticalCard(t *testing.T) {
	b := newTestBoard()

	first := b.play(t, 0, CrinfridReaversHunter())
	assertStrengths(t, strengths(first), 5)

	second := b.play(t, 0, CrinfridReaversHunter())
	assertStrengths(t, strengths(first, second), 15, 15)

	third := b.play(t, 0, CrinfridReaversHunter())
	assertStrengths(t, strengths(first, second, third), 25, 25, 25)
	if third.BondMod != 20 {
		t.Errorf("BondMod = %d, want 20", third.BondMod)
	}
}

func TestBondIgnoresOtherNamesAndRows(t *testing.T) {
	b := newTestBoard()

	commando := b.play(t, 0, BlueStripesCommando())
	hunter := b.play(t, 0, CrinfridReaversHunter())
	ves := b.play(t, 0, Ves())

	assertStrengths(t, strengths(commando, hunter, ves), 4, 5, 5)
}

func TestBondIsPerPlayer(t *testing.T) {
	b := newTestBoard()

	theirs1 := b.play(t, 1, BlueStripesCommando())
	theirs2 := b.play(t, 1, BlueStripesCommando())
	mine := b.play(t, 0, BlueStripesCommando())

	assertStrengths(t, strengths(theirs1, theirs2), 12, 12)
	assertStrengths(t, strengths(mine), 4)
}

func TestBondDeactivateRecomputesGroup(t *testing.T) {
	b := newTestBoard()

	c1 := b.play(t, 0, BlueStripesCommando())
	c2 := b.play(t, 0, BlueStripesCommando())
	c3 := b.play(t, 0, BlueStripesCommando())
	assertStrengths(t, strengths(c1, c2, c3), 20, 20, 20)

	b.remove(t, c3)
	assertStrengths(t, strengths(c1, c2), 12, 12)
	if c3.BondMod != 0 {
		t.Errorf("removed card keeps BondMod %d", c3.BondMod)
	}

	b.remove(t, c2)
	assertStrengths(t, strengths(c1), 4)
}

func TestMoraleBoostsRow(t *testing.T) {
	b := newTestBoard()

	ballista := b.play(t, 0, Ballista())
	e1 := b.play(t, 0, KaedweniSiegeExpert())
	assertStrengths(t, strengths(ballista, e1), 7, 1)

	e2 := b.play(t, 0, KaedweniSiegeExpert())
	e3 := b.play(t, 0, KaedweniSiegeExpert())

	// Each expert boosts everything else in the row, including the other experts.
	assertStrengths(t, strengths(ballista, e1, e2, e3), 9, 3, 3, 3)
	for _, e := range []*CardInstance{e1, e2, e3} {
		if e.MoraleMod != 2 {
			t.Errorf("expert MoraleMod = %d, want 2", e.MoraleMod)
		}
	}
}

func TestMoraleStaysInItsRow(t *testing.T) {
	b := newTestBoard()

	ves := b.play(t, 0, Ves())
	ballista := b.play(t, 0, Ballista())
	b.play(t, 0, DandelionBard())

	assertStrengths(t, strengths(ves, ballista), 6, 6)
}

func TestMoraleDeactivate(t *testing.T) {
	b := newTestBoard()

	ballista := b.play(t, 0, Ballista())
	e1 := b.play(t, 0, KaedweniSiegeExpert())
	e2 := b.play(t, 0, KaedweniSiegeExpert())
	assertStrengths(t, strengths(ballista, e1, e2), 8, 2, 2)

	b.remove(t, e2)
	assertStrengths(t, strengths(ballista, e1), 7, 1)
	if e2.MoraleMod != 0 {
		t.Errorf("removed card keeps MoraleMod %d", e2.MoraleMod)
	}
}

func TestFrostHitsMeleeOnBothSides(t *testing.T) {
	b := newTestBoard()

	ves := b.play(t, 0, Ves())
	geralt := b.play(t, 0, GeraltOfRivia())
	ballista := b.play(t, 0, Ballista())
	siegfried := b.play(t, 1, SiegfriedOfDenesle())

	b.play(t, 0, BitingFrost())

	assertStrengths(t, strengths(ves, siegfried), 1, 1)
	assertStrengths(t, strengths(geralt), 15)
	assertStrengths(t, strengths(ballista), 6)
	if geralt.WeatherMod != 0 {
		t.Errorf("hero WeatherMod = %d, want 0", geralt.WeatherMod)
	}
}

func TestFogAndRainRows(t *testing.T) {
	b := newTestBoard()

	keira := b.play(t, 0, KeiraMetz())
	yennefer := b.play(t, 0, YenneferOfVengerberg())
	trebuchet := b.play(t, 1, Trebuchet())
	ves := b.play(t, 1, Ves())

	b.play(t, 0, ImpenetrableFog())
	assertStrengths(t, strengths(keira, yennefer, trebuchet, ves), 1, 7, 6, 5)

	b.play(t, 1, TorrentialRain())
	assertStrengths(t, strengths(keira, yennefer, trebuchet, ves), 1, 7, 1, 5)
}

func TestClearWeatherRestoresStrength(t *testing.T) {
	b := newTestBoard()

	ves := b.play(t, 0, Ves())
	trebuchet := b.play(t, 1, Trebuchet())
	b.play(t, 0, BitingFrost())
	b.play(t, 1, TorrentialRain())
	assertStrengths(t, strengths(ves, trebuchet), 1, 1)

	b.play(t, 1, ClearWeather())

	assertStrengths(t, strengths(ves, trebuchet), 5, 6)
	if n := len(b.gs.WeatherCards()); n != 0 {
		t.Errorf("%d weather cards left on the board", n)
	}
	if got := len(b.gs.Players[0].Discard); got != 1 {
		t.Errorf("P1 discard = %d, want 1 (Biting Frost)", got)
	}
	if got := len(b.gs.Players[1].Discard); got != 2 {
		t.Errorf("P2 discard = %d, want 2 (Torrential Rain, Clear Weather)", got)
	}
}

func TestActivationIsIdempotent(t *testing.T) {
	b := newTestBoard()

	c1 := b.play(t, 0, BlueStripesCommando())
	c2 := b.play(t, 0, BlueStripesCommando())
	frost := b.play(t, 0, BitingFrost())
	expert := b.play(t, 0, DandelionBard())

	before := strengths(c1, c2, expert)
	for i := 0; i < 3; i++ {
		c1.Ability().Activate(b.gs, c1)
		frost.Ability().Activate(b.gs, frost)
		expert.Ability().Activate(b.gs, expert)
	}
	after := strengths(c1, c2, expert)
	assertStrengths(t, after, before...)
}

func TestRecomputeModifiersMatchesActivation(t *testing.T) {
	b := newTestBoard()

	ves := b.play(t, 0, Ves())
	c1 := b.play(t, 0, BlueStripesCommando())
	c2 := b.play(t, 0, BlueStripesCommando())
	dandelion := b.play(t, 0, DandelionBard())
	b.play(t, 1, BitingFrost())

	// 4 base, +1 morale, +8 bond, -3 frost
	assertStrengths(t, strengths(c1, c2), 10, 10)
	before := strengths(ves, c1, c2, dandelion)

	b.gs.RecomputeModifiers()
	assertStrengths(t, strengths(ves, c1, c2, dandelion), before...)

	// A unit placed without activation picks up standing effects on recompute.
	late := b.card(0, SiegfriedOfDenesle())
	if err := b.gs.Players[0].AddCardToBoard(-1, late); err != nil {
		t.Fatal(err)
	}
	assertStrengths(t, strengths(late), 5)
	b.gs.RecomputeModifiers()
	assertStrengths(t, strengths(late), 2) // 5 base, +1 morale, frost to 1
}

func TestSpyDrawsTwo(t *testing.T) {
	b := newTestBoard()
	p := b.gs.Players[0]
	p.Deck = NewDeck(b.arena.CreateAll(cards(Ves, Ballista, Trebuchet), 0), nil)

	b.play(t, 0, PrinceStennis())

	if p.Hand.Len() != 2 {
		t.Errorf("hand = %d, want 2", p.Hand.Len())
	}
	if p.Deck.Len() != 1 {
		t.Errorf("deck = %d, want 1", p.Deck.Len())
	}
	if b.gs.Players[1].Hand.Len() != 0 {
		t.Error("spy drew for the opponent")
	}

	// Only one card left: the second spy draws what there is.
	b.play(t, 0, Thaler())
	if p.Hand.Len() != 3 || p.Deck.Len() != 0 {
		t.Errorf("hand = %d deck = %d, want 3 and 0", p.Hand.Len(), p.Deck.Len())
	}
}

func TestParseAbility(t *testing.T) {
	tests := []struct {
		in   string
		want AbilityKind
	}{
		{"", AbilityEmpty},
		{"none", AbilityEmpty},
		{"bond", AbilityBond},
		{"Morale", AbilityMorale},
		{"FROST", AbilityFrost},
		{"fog", AbilityFog},
		{"rain", AbilityRain},
		{"clear weather", AbilityClearWeather},
		{"Clear_Weather", AbilityClearWeather},
		{"spy", AbilitySpy},
		{"Hero", AbilityHero},
	}
	for _, tt := range tests {
		got, err := ParseAbility(tt.in)
		if err != nil {
			t.Errorf("ParseAbility(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAbility(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	if _, err := ParseAbility("medic"); err == nil {
		t.Error("ParseAbility(medic): expected error")
	}
}

func TestAbilityNames(t *testing.T) {
	if got := AbilityClearWeather.String(); got != "Clear Weather" {
		t.Errorf("AbilityClearWeather = %q", got)
	}
	if got := AbilityKind(99).String(); got != "None" {
		t.Errorf("unknown kind = %q, want None", got)
	}
}
