package game

import (
	"fmt"
	"strings"
)

// --- Enums ---

// CardType is the board row a card is played into.
type CardType int

const (
	CardTypeMelee CardType = iota
	CardTypeRange
	CardTypeSiege
	CardTypeWeather
)

func (ct CardType) String() string {
	switch ct {
	case CardTypeMelee:
		return "Melee"
	case CardTypeRange:
		return "Range"
	case CardTypeSiege:
		return "Siege"
	case CardTypeWeather:
		return "Weather"
	default:
		return "Unknown"
	}
}

// ParseCardType maps a row name (case-insensitive) to its CardType.
func ParseCardType(s string) (CardType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "melee", "close":
		return CardTypeMelee, nil
	case "range", "ranged":
		return CardTypeRange, nil
	case "siege":
		return CardTypeSiege, nil
	case "weather":
		return CardTypeWeather, nil
	default:
		return 0, fmt.Errorf("unknown card type %q", s)
	}
}

// Rows returns the three rows that hold power cards, in board order.
func Rows() []CardType {
	return []CardType{CardTypeMelee, CardTypeRange, CardTypeSiege}
}

// --- Card definition (static, from registry) ---

// Card is the immutable definition of a card.
type Card struct {
	Name     string
	Flavor   string
	Image    string
	CardType CardType
	Power    int // base power rating; zero for weather cards
	Ability  AbilityKind
}

func (c *Card) String() string {
	return c.Name
}

// --- CardInstance (runtime card in deck/hand/board) ---

// CardInstance is one physical card in a match. The same pointer travels
// between deck, hand and board; modifier fields are written only by
// abilities.
type CardInstance struct {
	Card  *Card
	ID    int // unique instance ID within a match
	Owner int // player index (0 or 1)

	WeatherMod int
	MoraleMod  int
	BondMod    int
}

func (ci *CardInstance) String() string {
	if ci == nil {
		return "(empty)"
	}
	return ci.Card.Name
}

// DisplayString returns a human-readable description for the event log.
func (ci *CardInstance) DisplayString() string {
	if ci == nil {
		return "(empty)"
	}
	if ci.IsPower() {
		return fmt.Sprintf("%s (%s %d)", ci.Card.Name, ci.Card.CardType, ci.Strength())
	}
	return ci.Card.Name
}

// IsPower reports whether the card is a unit played into melee, range or siege.
func (ci *CardInstance) IsPower() bool {
	switch ci.Card.CardType {
	case CardTypeMelee, CardTypeRange, CardTypeSiege:
		return true
	}
	return false
}

// IsWeather reports whether the card belongs in the weather row.
func (ci *CardInstance) IsWeather() bool {
	return ci.Card.CardType == CardTypeWeather
}

// Ability returns the behavior bound to this card.
func (ci *CardInstance) Ability() Ability {
	return AbilityFor(ci.Card.Ability)
}

// BasePower returns the card's unmodified power rating.
func (ci *CardInstance) BasePower() int {
	return ci.Card.Power
}

// Strength returns the effective strength (base + all modifiers).
// Weather cards have no strength.
func (ci *CardInstance) Strength() int {
	if !ci.IsPower() {
		return 0
	}
	s := ci.Card.Power + ci.MoraleMod + ci.BondMod
	if !IsImmuneToWeather(ci) {
		s += ci.WeatherMod
	}
	return s
}

// ResetModifiers zeroes every modifier.
func (ci *CardInstance) ResetModifiers() {
	ci.WeatherMod = 0
	ci.MoraleMod = 0
	ci.BondMod = 0
}

// --- Action types ---

type ActionType int

const (
	ActionPlayCard ActionType = iota
	ActionPass
)

func (a ActionType) String() string {
	switch a {
	case ActionPlayCard:
		return "Play Card"
	case ActionPass:
		return "Pass"
	default:
		return "Unknown"
	}
}

// Action represents a player action with all necessary details.
type Action struct {
	Type     ActionType
	Player   int
	Card     *CardInstance // card being played
	Position int           // insertion index within the row
	Desc     string        // human-readable description
}

func (a Action) String() string {
	if a.Desc != "" {
		return a.Desc
	}
	return a.Type.String()
}
