package game

import (
	"fmt"
	"strings"
)

// AbilityKind identifies one of the closed set of card abilities.
type AbilityKind int

const (
	AbilityEmpty AbilityKind = iota
	AbilityBond
	AbilityMorale
	AbilityFrost
	AbilityFog
	AbilityRain
	AbilityClearWeather
	AbilitySpy
	AbilityHero
)

func (k AbilityKind) String() string {
	return AbilityFor(k).Name()
}

// Ability installs and removes a card's effect on the board.
//
// Activate and Deactivate recompute the affected modifiers from the current
// board rather than adjusting them incrementally, so repeated activation
// without an intervening deactivation is harmless. source is the card whose
// ability is being (de)activated; it may be nil when an effect is refreshed
// without a specific origin.
type Ability interface {
	Kind() AbilityKind
	Name() string
	Description() string
	Activate(gs *GameState, source *CardInstance)
	Deactivate(gs *GameState, source *CardInstance)
}

var abilities = map[AbilityKind]Ability{
	AbilityEmpty:        emptyAbility{},
	AbilityBond:         bondAbility{},
	AbilityMorale:       moraleAbility{},
	AbilityFrost:        weatherAbility{kind: AbilityFrost, name: "Frost", row: CardTypeMelee},
	AbilityFog:          weatherAbility{kind: AbilityFog, name: "Fog", row: CardTypeRange},
	AbilityRain:         weatherAbility{kind: AbilityRain, name: "Rain", row: CardTypeSiege},
	AbilityClearWeather: clearWeatherAbility{},
	AbilitySpy:          spyAbility{},
	AbilityHero:         heroAbility{},
}

// AbilityFor returns the implementation of the given kind. Unknown kinds
// resolve to the empty ability.
func AbilityFor(kind AbilityKind) Ability {
	if a, ok := abilities[kind]; ok {
		return a
	}
	return emptyAbility{}
}

// ParseAbility resolves an ability by name (case-insensitive). The empty
// string and "none" both map to the empty ability.
func ParseAbility(name string) (AbilityKind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "", "none", "empty":
		return AbilityEmpty, nil
	case "clear weather", "clear_weather", "clearweather":
		return AbilityClearWeather, nil
	}
	for kind, a := range abilities {
		if strings.ToLower(a.Name()) == n {
			return kind, nil
		}
	}
	return AbilityEmpty, fmt.Errorf("unknown ability %q", name)
}

// IsImmuneToWeather reports whether weather effects skip this card.
func IsImmuneToWeather(ci *CardInstance) bool {
	return ci.Card.Ability == AbilityHero
}

// --- Empty ---

type emptyAbility struct{}

func (emptyAbility) Kind() AbilityKind                         { return AbilityEmpty }
func (emptyAbility) Name() string                              { return "None" }
func (emptyAbility) Description() string                       { return "No special ability." }
func (emptyAbility) Activate(gs *GameState, _ *CardInstance)   {}
func (emptyAbility) Deactivate(gs *GameState, _ *CardInstance) {}

// --- Hero ---

// heroAbility only marks the card; weather abilities consult
// IsImmuneToWeather.
type heroAbility struct{}

func (heroAbility) Kind() AbilityKind { return AbilityHero }
func (heroAbility) Name() string      { return "Hero" }
func (heroAbility) Description() string {
	return "Not affected by weather."
}
func (heroAbility) Activate(gs *GameState, _ *CardInstance)   {}
func (heroAbility) Deactivate(gs *GameState, _ *CardInstance) {}

// --- Spy ---

type spyAbility struct{}

func (spyAbility) Kind() AbilityKind { return AbilitySpy }
func (spyAbility) Name() string      { return "Spy" }
func (spyAbility) Description() string {
	return "Draw two cards from your deck."
}

// Activate draws two cards for the player whose turn it is. An exhausted
// deck simply yields fewer cards.
func (spyAbility) Activate(gs *GameState, _ *CardInstance) {
	gs.CurrentPlayer().DrawCards(2)
}

func (spyAbility) Deactivate(gs *GameState, _ *CardInstance) {}

// --- Frost / Fog / Rain ---

type weatherAbility struct {
	kind AbilityKind
	name string
	row  CardType
}

func (w weatherAbility) Kind() AbilityKind { return w.kind }
func (w weatherAbility) Name() string      { return w.name }
func (w weatherAbility) Description() string {
	return fmt.Sprintf("Sets the strength of every non-hero %s unit on both sides to 1.", strings.ToLower(w.row.String()))
}

// Row returns the row this weather affects.
func (w weatherAbility) Row() CardType { return w.row }

func (w weatherAbility) Activate(gs *GameState, _ *CardInstance) {
	for _, p := range gs.Players {
		for _, ci := range p.PowerCardsOnBoard(w.row) {
			if IsImmuneToWeather(ci) {
				continue
			}
			ci.WeatherMod = 1 - ci.BasePower()
		}
	}
}

func (w weatherAbility) Deactivate(gs *GameState, _ *CardInstance) {
	for _, p := range gs.Players {
		for _, ci := range p.PowerCardsOnBoard(w.row) {
			ci.WeatherMod = 0
		}
	}
}

// --- Clear Weather ---

type clearWeatherAbility struct{}

func (clearWeatherAbility) Kind() AbilityKind { return AbilityClearWeather }
func (clearWeatherAbility) Name() string      { return "Clear Weather" }
func (clearWeatherAbility) Description() string {
	return "Removes all weather effects from the board."
}

// Activate deactivates every weather card on both sides, then empties both
// weather rows. The clear weather card itself goes with them.
func (clearWeatherAbility) Activate(gs *GameState, _ *CardInstance) {
	for _, ci := range gs.WeatherCards() {
		if ci.Card.Ability == AbilityClearWeather {
			continue
		}
		ci.Ability().Deactivate(gs, ci)
	}
	for _, p := range gs.Players {
		p.ClearWeatherEffects()
	}
}

func (clearWeatherAbility) Deactivate(gs *GameState, _ *CardInstance) {}

// --- Morale ---

type moraleAbility struct{}

func (moraleAbility) Kind() AbilityKind { return AbilityMorale }
func (moraleAbility) Name() string      { return "Morale" }
func (moraleAbility) Description() string {
	return "Adds +1 to every other unit in the same row."
}

func (moraleAbility) Activate(gs *GameState, _ *CardInstance) {
	applyMorale(gs.CurrentPlayer(), nil)
}

// Deactivate recomputes the current player's rows as if source had already
// left the board, and zeroes source's own morale.
func (moraleAbility) Deactivate(gs *GameState, source *CardInstance) {
	applyMorale(gs.CurrentPlayer(), source)
	if source != nil {
		source.MoraleMod = 0
	}
}

// applyMorale assigns morale per row: with n morale cards in a row, every
// other unit gets n and each morale card gets n-1. excluded is not counted
// and not assigned.
func applyMorale(p *Player, excluded *CardInstance) {
	for _, row := range Rows() {
		cards := p.PowerCardsOnBoard(row)
		n := 0
		for _, ci := range cards {
			if ci != excluded && ci.Card.Ability == AbilityMorale {
				n++
			}
		}
		for _, ci := range cards {
			if ci == excluded {
				continue
			}
			if ci.Card.Ability == AbilityMorale {
				ci.MoraleMod = n - 1
			} else {
				ci.MoraleMod = n
			}
		}
	}
}

// --- Bond ---

type bondAbility struct{}

func (bondAbility) Kind() AbilityKind { return AbilityBond }
func (bondAbility) Name() string      { return "Bond" }
func (bondAbility) Description() string {
	return "Doubles for each identical bond unit in the same row."
}

func (bondAbility) Activate(gs *GameState, _ *CardInstance) {
	applyBond(gs.CurrentPlayer(), nil)
}

// Deactivate zeroes source's bond group, then recomputes the group without
// source so the remaining members keep any bond they still form.
func (bondAbility) Deactivate(gs *GameState, source *CardInstance) {
	p := gs.CurrentPlayer()
	if source != nil {
		for _, ci := range p.PowerCardsOnBoard(source.Card.CardType) {
			if ci.Card.Name == source.Card.Name && ci.Card.Ability == AbilityBond {
				ci.BondMod = 0
			}
		}
		source.BondMod = 0
	}
	applyBond(p, source)
}

// applyBond groups same-named bond cards per row; each member of a group of
// size n > 1 gets base * 2^(n-1) as its bond modifier.
func applyBond(p *Player, excluded *CardInstance) {
	for _, row := range Rows() {
		groups := make(map[string][]*CardInstance)
		for _, ci := range p.PowerCardsOnBoard(row) {
			if ci == excluded || ci.Card.Ability != AbilityBond {
				continue
			}
			groups[ci.Card.Name] = append(groups[ci.Card.Name], ci)
		}
		for _, group := range groups {
			n := len(group)
			for _, ci := range group {
				if n > 1 {
					ci.BondMod = ci.BasePower() * (1 << (n - 1))
				} else {
					ci.BondMod = 0
				}
			}
		}
	}
}

// RecomputeModifiers strips and reapplies every board effect on both sides
// from the current board, the way a fresh activation of each would.
func (gs *GameState) RecomputeModifiers() {
	for _, p := range gs.Players {
		applyMorale(p, nil)
		applyBond(p, nil)
		for _, ci := range p.AllPowerCardsOnBoard() {
			ci.WeatherMod = 0
		}
	}
	for _, w := range gs.WeatherCards() {
		if w.Card.Ability == AbilityClearWeather {
			continue
		}
		w.Ability().Activate(gs, w)
	}
}
