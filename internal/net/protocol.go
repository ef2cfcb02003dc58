package net

// Message types for the JSON protocol over TCP.

// --- Server → Client messages ---

// ServerMessage is the envelope for all server-to-client messages.
type ServerMessage struct {
	Type string `json:"type"`

	// For "notify"
	Event *EventView `json:"event,omitempty"`

	// For "choose_action"
	Actions []ActionView `json:"actions,omitempty"`
	State   *StateView   `json:"state,omitempty"`

	// For "game_over"
	Winner  int    `json:"winner,omitempty"`
	Result  string `json:"result,omitempty"`
	MatchID string `json:"match_id,omitempty"`
}

// EventView is a simplified game event for the client.
type EventView struct {
	Round   int    `json:"round"`
	Turn    int    `json:"turn"`
	Player  int    `json:"player"`
	Type    string `json:"type"`
	Card    string `json:"card,omitempty"`
	Details string `json:"details"`
}

// ActionView is a numbered action choice.
type ActionView struct {
	Index int    `json:"index"`
	Desc  string `json:"desc"`
}

// CardView describes one card on the board or in hand.
type CardView struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Row      string `json:"row"`
	Ability  string `json:"ability,omitempty"`
	Power    int    `json:"power,omitempty"`
	Strength int    `json:"strength,omitempty"`
	Weather  int    `json:"weather_mod,omitempty"`
	Morale   int    `json:"morale_mod,omitempty"`
	Bond     int    `json:"bond_mod,omitempty"`
	Flavor   string `json:"flavor,omitempty"`
	Image    string `json:"image,omitempty"`
}

// RowView is one board row with its total strength.
type RowView struct {
	Cards    []CardView `json:"cards"`
	Strength int        `json:"strength"`
}

// StateView is the game state from one player's perspective.
type StateView struct {
	You        PlayerView `json:"you"`
	Opponent   PlayerView `json:"opponent"`
	Round      int        `json:"round"`
	IsYourTurn bool       `json:"is_your_turn"`
}

// PlayerView shows one side of the board.
type PlayerView struct {
	Name         string     `json:"name"`
	Health       int        `json:"health"`
	Passed       bool       `json:"passed"`
	HandCount    int        `json:"hand_count"`
	Hand         []CardView `json:"hand,omitempty"` // only for "you"
	DeckCount    int        `json:"deck_count"`
	DiscardCount int        `json:"discard_count"`
	Melee        RowView    `json:"melee"`
	Range        RowView    `json:"range"`
	Siege        RowView    `json:"siege"`
	Weather      []CardView `json:"weather"`
	Strength     int        `json:"strength"`
}

// --- Client → Server messages ---

// ClientMessage is the envelope for all client-to-server messages.
type ClientMessage struct {
	Type string `json:"type"`

	// For "action"
	Index int `json:"index,omitempty"`

	// For "join" (initial handshake)
	DeckNumber int    `json:"deck_number,omitempty"`
	Name       string `json:"name,omitempty"`
}
