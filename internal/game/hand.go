package game

// Hand holds the cards a player may play. Order only matters for display.
type Hand struct {
	cards []*CardInstance
}

// NewHand creates a hand holding the given cards.
func NewHand(cards ...*CardInstance) *Hand {
	return &Hand{cards: append([]*CardInstance(nil), cards...)}
}

// Add puts a card into the hand.
func (h *Hand) Add(card *CardInstance) {
	h.cards = append(h.cards, card)
}

// Remove takes a card out of the hand by identity. Returns false if the
// card was not held.
func (h *Hand) Remove(card *CardInstance) bool {
	for i, c := range h.cards {
		if c == card {
			h.cards = append(h.cards[:i], h.cards[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether the card is held.
func (h *Hand) Contains(card *CardInstance) bool {
	for _, c := range h.cards {
		if c == card {
			return true
		}
	}
	return false
}

// Cards returns a copy of the held cards in insertion order.
func (h *Hand) Cards() []*CardInstance {
	return append([]*CardInstance(nil), h.cards...)
}

// Len returns the number of held cards.
func (h *Hand) Len() int {
	return len(h.cards)
}

// Clear empties the hand.
func (h *Hand) Clear() {
	h.cards = nil
}

// WeatherCards returns the held weather cards.
func (h *Hand) WeatherCards() []*CardInstance {
	var result []*CardInstance
	for _, c := range h.cards {
		if c.IsWeather() {
			result = append(result, c)
		}
	}
	return result
}

// StrongestPowerCard returns the power card with the highest base power.
// Ties go to the first one held. Returns nil if there is none.
func (h *Hand) StrongestPowerCard() *CardInstance {
	var best *CardInstance
	for _, c := range h.cards {
		if !c.IsPower() {
			continue
		}
		if best == nil || c.BasePower() > best.BasePower() {
			best = c
		}
	}
	return best
}
