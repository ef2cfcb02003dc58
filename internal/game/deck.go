package game

import (
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"
)

// Deck is the ordered pile a player draws from. The front of the deck is
// drawn first. The construction order is retained so the deck can be reset.
type Deck struct {
	original []*CardInstance
	cards    []*CardInstance
	rng      *rand.Rand
}

// NewDeck creates a deck in the given order. A nil rng uses the global
// source for shuffling.
func NewDeck(cards []*CardInstance, rng *rand.Rand) *Deck {
	return &Deck{
		original: append([]*CardInstance(nil), cards...),
		cards:    append([]*CardInstance(nil), cards...),
		rng:      rng,
	}
}

// Draw removes and returns the front card, or nil if the deck is empty.
func (d *Deck) Draw() *CardInstance {
	if len(d.cards) == 0 {
		return nil
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card
}

// Shuffle randomizes the order of the cards still in the deck.
func (d *Deck) Shuffle() {
	swap := func(i, j int) { d.cards[i], d.cards[j] = d.cards[j], d.cards[i] }
	if d.rng != nil {
		d.rng.Shuffle(len(d.cards), swap)
		return
	}
	rand.Shuffle(len(d.cards), swap)
}

// Reset restores the construction order, returning drawn cards to the deck.
func (d *Deck) Reset() {
	d.cards = append(d.cards[:0:0], d.original...)
}

// Len returns the number of cards remaining.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards, front first.
func (d *Deck) Cards() []*CardInstance {
	return append([]*CardInstance(nil), d.cards...)
}

// --- Deck files ---

// DeckFile represents the top-level YAML structure.
type DeckFile struct {
	Decks []DeckEntry `yaml:"decks"`
}

// DeckEntry represents a single deck in the YAML file.
type DeckEntry struct {
	Name  string      `yaml:"name"`
	Cards []CardEntry `yaml:"cards"`
}

// CardEntry represents a card and its count in a deck.
type CardEntry struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

// ParseDeckFile parses a YAML deck file and returns a map of deck name → card slice.
func ParseDeckFile(path string) (map[string][]*Card, error) {
	df, err := readDeckFile(path)
	if err != nil {
		return nil, err
	}

	decks := make(map[string][]*Card)
	for _, deck := range df.Decks {
		cards, err := deck.Build()
		if err != nil {
			return nil, fmt.Errorf("deck %q: %w", deck.Name, err)
		}
		decks[deck.Name] = cards
	}
	return decks, nil
}

// DeckByNumber returns the Nth deck (1-indexed) from the deck file.
func DeckByNumber(path string, n int) (string, []*Card, error) {
	df, err := readDeckFile(path)
	if err != nil {
		return "", nil, err
	}

	if n < 1 || n > len(df.Decks) {
		return "", nil, fmt.Errorf("deck %d not found (have %d decks)", n, len(df.Decks))
	}

	deck := df.Decks[n-1]
	cards, err := deck.Build()
	if err != nil {
		return "", nil, fmt.Errorf("deck %q: %w", deck.Name, err)
	}
	return deck.Name, cards, nil
}

// ParseDeckYAML decodes deck file contents.
func ParseDeckYAML(data []byte) (DeckFile, error) {
	var df DeckFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return DeckFile{}, fmt.Errorf("parse deck YAML: %w", err)
	}
	return df, nil
}

// Build resolves every entry against the card registry, expanding counts.
func (e DeckEntry) Build() ([]*Card, error) {
	var cards []*Card
	for _, entry := range e.Cards {
		if _, ok := CardRegistry[entry.Name]; !ok {
			return nil, fmt.Errorf("unknown card %q", entry.Name)
		}
		for i := 0; i < entry.Count; i++ {
			cards = append(cards, LookupCard(entry.Name))
		}
	}
	return cards, nil
}

func readDeckFile(path string) (DeckFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DeckFile{}, err
	}
	return ParseDeckYAML(data)
}
