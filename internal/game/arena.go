package game

// Arena owns every card instance of a match and hands out stable IDs.
// Deck, hand and board all hold the arena's pointers, so a modifier written
// through one of them is visible through all of them.
type Arena struct {
	cards []*CardInstance
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// Create instantiates a card definition for the given owner. IDs start at 1.
func (a *Arena) Create(card *Card, owner int) *CardInstance {
	ci := &CardInstance{
		Card:  card,
		ID:    len(a.cards) + 1,
		Owner: owner,
	}
	a.cards = append(a.cards, ci)
	return ci
}

// CreateAll instantiates a list of definitions in order.
func (a *Arena) CreateAll(cards []*Card, owner int) []*CardInstance {
	result := make([]*CardInstance, 0, len(cards))
	for _, c := range cards {
		result = append(result, a.Create(c, owner))
	}
	return result
}

// Get returns the card with the given ID, or nil.
func (a *Arena) Get(id int) *CardInstance {
	if id < 1 || id > len(a.cards) {
		return nil
	}
	return a.cards[id-1]
}

// Len returns the number of cards created.
func (a *Arena) Len() int {
	return len(a.cards)
}
