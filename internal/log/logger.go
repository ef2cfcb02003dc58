package log

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// EventLogger is the interface for logging game events.
type EventLogger interface {
	Log(event GameEvent)
	Events() []GameEvent
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	mu     sync.Mutex
	events []GameEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event GameEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []GameEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]GameEvent(nil), l.events...)
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []GameEvent {
	var result []GameEvent
	for _, e := range l.Events() {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() GameEvent {
	events := l.Events()
	if len(events) == 0 {
		return GameEvent{}
	}
	return events[len(events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event GameEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- Formatting ---

// playerName returns "P1" or "P2" for display.
func playerName(p int) string {
	return fmt.Sprintf("P%d", p+1)
}

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e GameEvent) string {
	return fmt.Sprintf("R%d T%-3d| %s", e.Round, e.Turn, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []GameEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewRoundEvent(round int, startingPlayer int) GameEvent {
	return GameEvent{
		Round:   round,
		Player:  startingPlayer,
		Type:    EventNewRound,
		Details: fmt.Sprintf("=== Round %d (%s opens) ===", round, playerName(startingPlayer)),
	}
}

func NewTurnEvent(round, turn int, player int) GameEvent {
	return GameEvent{
		Round:   round,
		Turn:    turn,
		Player:  player,
		Type:    EventNewTurn,
		Details: fmt.Sprintf("--- Turn %d (%s) ---", turn, playerName(player)),
	}
}

func NewDrawEvent(round, turn int, player int, cardName string) GameEvent {
	return GameEvent{
		Round:   round,
		Turn:    turn,
		Player:  player,
		Type:    EventDraw,
		Card:    cardName,
		Details: fmt.Sprintf("%s draws %s", playerName(player), cardName),
	}
}

func NewShuffleEvent(round, turn int, player int) GameEvent {
	return GameEvent{
		Round:   round,
		Turn:    turn,
		Player:  player,
		Type:    EventShuffle,
		Details: fmt.Sprintf("%s shuffles their deck", playerName(player)),
	}
}

func NewPlayCardEvent(round, turn int, player int, cardName string, row string, position int) GameEvent {
	return GameEvent{
		Round:   round,
		Turn:    turn,
		Player:  player,
		Type:    EventPlayCard,
		Card:    cardName,
		Details: fmt.Sprintf("%s plays %s to %s row (position %d)", playerName(player), cardName, row, position+1),
	}
}

func NewActivateEvent(round, turn int, player int, cardName string, ability string) GameEvent {
	return GameEvent{
		Round:   round,
		Turn:    turn,
		Player:  player,
		Type:    EventActivate,
		Card:    cardName,
		Details: fmt.Sprintf("%s activates %s (%s)", playerName(player), cardName, ability),
	}
}

func NewDeactivateEvent(round, turn int, player int, cardName string, ability string) GameEvent {
	return GameEvent{
		Round:   round,
		Turn:    turn,
		Player:  player,
		Type:    EventDeactivate,
		Card:    cardName,
		Details: fmt.Sprintf("%s's %s (%s) is deactivated", playerName(player), cardName, ability),
	}
}

func NewWeatherClearedEvent(round, turn int, player int, reason string) GameEvent {
	return GameEvent{
		Round:   round,
		Turn:    turn,
		Player:  player,
		Type:    EventWeatherCleared,
		Details: fmt.Sprintf("Weather cleared (%s)", reason),
	}
}

func NewPassEvent(round, turn int, player int) GameEvent {
	return GameEvent{
		Round:   round,
		Turn:    turn,
		Player:  player,
		Type:    EventPass,
		Details: fmt.Sprintf("%s passes", playerName(player)),
	}
}

func NewStrengthEvent(round, turn int, strength0, strength1 int) GameEvent {
	return GameEvent{
		Round:   round,
		Turn:    turn,
		Type:    EventStrength,
		Details: fmt.Sprintf("Strength: P1 %d, P2 %d", strength0, strength1),
	}
}

func NewRoundWinEvent(round, turn int, winner int, strength, other int) GameEvent {
	return GameEvent{
		Round:   round,
		Turn:    turn,
		Player:  winner,
		Type:    EventRoundWin,
		Details: fmt.Sprintf("%s wins round %d (%d vs %d)", playerName(winner), round, strength, other),
	}
}

func NewRoundTieEvent(round, turn int, strength int) GameEvent {
	return GameEvent{
		Round:   round,
		Turn:    turn,
		Type:    EventRoundTie,
		Details: fmt.Sprintf("Round %d tied at %d", round, strength),
	}
}

func NewLifeLostEvent(round, turn int, player int, remaining int) GameEvent {
	return GameEvent{
		Round:   round,
		Turn:    turn,
		Player:  player,
		Type:    EventLifeLost,
		Details: fmt.Sprintf("%s loses a life (%d left)", playerName(player), remaining),
	}
}

func NewBoardClearedEvent(round, turn int, player int, count int) GameEvent {
	return GameEvent{
		Round:   round,
		Turn:    turn,
		Player:  player,
		Type:    EventBoardCleared,
		Details: fmt.Sprintf("%s's board is cleared (%d cards discarded)", playerName(player), count),
	}
}

func NewWinEvent(round, turn int, winner int, reason string) GameEvent {
	return GameEvent{
		Round:   round,
		Turn:    turn,
		Player:  winner,
		Type:    EventWin,
		Details: fmt.Sprintf("%s wins the match (%s)", playerName(winner), reason),
	}
}

func NewTieEvent(round, turn int, reason string) GameEvent {
	return GameEvent{
		Round:   round,
		Turn:    turn,
		Player:  -1,
		Type:    EventDraw_Tie,
		Details: fmt.Sprintf("Match drawn (%s)", reason),
	}
}

func NewRejectedEvent(round, turn int, player int, cardName string, reason string) GameEvent {
	return GameEvent{
		Round:   round,
		Turn:    turn,
		Player:  player,
		Type:    EventRejected,
		Card:    cardName,
		Details: fmt.Sprintf("%s cannot play %s: %s", playerName(player), cardName, reason),
	}
}
