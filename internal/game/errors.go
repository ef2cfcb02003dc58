package game

import "errors"

var (
	// ErrDuplicateWeather is returned when a weather card is played while an
	// identical one is already active on the same player's weather row.
	ErrDuplicateWeather = errors.New("weather already active")

	// ErrCardNotInHand is returned when an action names a card the player
	// does not hold.
	ErrCardNotInHand = errors.New("card not in hand")

	// ErrPlayerPassed is returned when a player who has ended the round
	// tries to play a card.
	ErrPlayerPassed = errors.New("player has passed this round")

	// ErrNotYourTurn is returned when a player acts out of turn.
	ErrNotYourTurn = errors.New("not this player's turn")

	// ErrMatchOver is returned when an action arrives after the match ended.
	ErrMatchOver = errors.New("match is over")
)
