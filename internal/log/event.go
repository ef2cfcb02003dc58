package log

// EventType enumerates all observable game events.
type EventType int

const (
	EventNewRound EventType = iota
	EventNewTurn
	EventDraw
	EventShuffle
	EventPlayCard
	EventActivate
	EventDeactivate
	EventWeatherCleared
	EventPass
	EventStrength
	EventRoundWin
	EventRoundTie
	EventLifeLost
	EventBoardCleared
	EventWin
	EventDraw_Tie
	EventRejected // a play the engine refused (e.g. duplicate weather)
)

func (e EventType) String() string {
	switch e {
	case EventNewRound:
		return "NewRound"
	case EventNewTurn:
		return "NewTurn"
	case EventDraw:
		return "Draw"
	case EventShuffle:
		return "Shuffle"
	case EventPlayCard:
		return "PlayCard"
	case EventActivate:
		return "Activate"
	case EventDeactivate:
		return "Deactivate"
	case EventWeatherCleared:
		return "WeatherCleared"
	case EventPass:
		return "Pass"
	case EventStrength:
		return "Strength"
	case EventRoundWin:
		return "RoundWin"
	case EventRoundTie:
		return "RoundTie"
	case EventLifeLost:
		return "LifeLost"
	case EventBoardCleared:
		return "BoardCleared"
	case EventWin:
		return "Win"
	case EventDraw_Tie:
		return "Draw(tie)"
	case EventRejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}

// GameEvent represents a single observable event in a match.
type GameEvent struct {
	Seq     int       // monotonic sequence number
	Round   int       // which round (1-based)
	Turn    int       // which turn (1-based, counted across the match)
	Player  int       // acting player (0 or 1)
	Type    EventType // event type
	Card    string    // card name (if applicable)
	Details string    // human-readable detail string
}
