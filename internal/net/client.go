package net

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"strings"
)

// Client connects to a game server and provides a terminal REPL.
type Client struct {
	conn net.Conn
	in   io.Reader
	out  io.Writer
}

// Connect connects to a server, sends the deck choice, and runs the REPL.
func Connect(ctx context.Context, addr string, deckNumber int, name string) error {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.Close()

	enc := json.NewEncoder(conn)
	if err := enc.Encode(ClientMessage{Type: "join", DeckNumber: deckNumber, Name: name}); err != nil {
		return fmt.Errorf("send join: %w", err)
	}

	fmt.Println("Connected! Waiting for game to start...")

	client := &Client{conn: conn}
	return client.RunREPL(ctx)
}

// NewClient wraps an established connection. Nil in and out default to the
// terminal.
func NewClient(conn net.Conn, in io.Reader, out io.Writer) *Client {
	return &Client{conn: conn, in: in, out: out}
}

func (c *Client) stdout() io.Writer {
	if c.out != nil {
		return c.out
	}
	return os.Stdout
}

// RunREPL reads server messages and handles them interactively.
func (c *Client) RunREPL(ctx context.Context) error {
	dec := json.NewDecoder(c.conn)
	enc := json.NewEncoder(c.conn)
	in := c.in
	if in == nil {
		in = os.Stdin
	}
	reader := bufio.NewReader(in)
	w := c.stdout()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		var msg ServerMessage
		if err := dec.Decode(&msg); err != nil {
			return fmt.Errorf("read message: %w", err)
		}

		switch msg.Type {
		case "notify":
			c.renderEvent(msg.Event)

		case "choose_action":
			c.renderState(msg.State)
			c.renderActions(msg.Actions)
			idx := c.readChoice(reader, len(msg.Actions))
			if err := enc.Encode(ClientMessage{Type: "action", Index: idx}); err != nil {
				return fmt.Errorf("send action: %w", err)
			}

		case "game_over":
			fmt.Fprintln(w)
			fmt.Fprintln(w, "═══════════════════════════════════")
			fmt.Fprintln(w, "          GAME OVER")
			fmt.Fprintln(w, "═══════════════════════════════════")
			fmt.Fprintln(w, msg.Result)
			if msg.MatchID != "" {
				fmt.Fprintf(w, "Match %s\n", msg.MatchID)
			}
			fmt.Fprintln(w, "═══════════════════════════════════")
			return nil
		}
	}
}

func (c *Client) renderEvent(ev *EventView) {
	if ev == nil {
		return
	}
	// Format like the TextLogger
	fmt.Fprintf(c.stdout(), "R%d T%-3d| %s\n", ev.Round, ev.Turn, ev.Details)
}

func (c *Client) renderState(sv *StateView) {
	if sv == nil {
		return
	}
	w := c.stdout()

	fmt.Fprintln(w)
	fmt.Fprintln(w, "╔══════════════════════════════════════════════════════╗")

	opp := sv.Opponent
	fmt.Fprintf(w, "║  %s  Lives: %d  Hand: %d  Deck: %d  Strength: %d%s\n",
		opp.Name, opp.Health, opp.HandCount, opp.DeckCount, opp.Strength, passedTag(opp.Passed))
	fmt.Fprintf(w, "║  Siege:   %s\n", formatRow(opp.Siege))
	fmt.Fprintf(w, "║  Range:   %s\n", formatRow(opp.Range))
	fmt.Fprintf(w, "║  Melee:   %s\n", formatRow(opp.Melee))

	fmt.Fprintf(w, "║───── Weather: %s %s\n", formatCards(opp.Weather), formatCards(sv.You.Weather))

	you := sv.You
	fmt.Fprintf(w, "║  Melee:   %s\n", formatRow(you.Melee))
	fmt.Fprintf(w, "║  Range:   %s\n", formatRow(you.Range))
	fmt.Fprintf(w, "║  Siege:   %s\n", formatRow(you.Siege))
	fmt.Fprintf(w, "║  YOU (%s)  Lives: %d  Hand: %d  Deck: %d  Strength: %d%s\n",
		you.Name, you.Health, you.HandCount, you.DeckCount, you.Strength, passedTag(you.Passed))
	fmt.Fprintln(w, "╚══════════════════════════════════════════════════════╝")

	turnInfo := fmt.Sprintf("Round %d", sv.Round)
	if sv.IsYourTurn {
		turnInfo += " | Your turn"
	} else {
		turnInfo += " | Opponent's turn"
	}
	fmt.Fprintln(w, turnInfo)
}

func passedTag(passed bool) string {
	if passed {
		return "  [PASSED]"
	}
	return ""
}

func formatRow(rv RowView) string {
	return fmt.Sprintf("(%d) %s", rv.Strength, formatCards(rv.Cards))
}

func formatCards(cards []CardView) string {
	if len(cards) == 0 {
		return "[ ]"
	}
	parts := make([]string, 0, len(cards))
	for _, cv := range cards {
		parts = append(parts, formatCard(cv))
	}
	return strings.Join(parts, " ")
}

func formatCard(cv CardView) string {
	if cv.Row == "Weather" {
		return fmt.Sprintf("[%s]", cv.Name)
	}
	if cv.Strength != cv.Power {
		return fmt.Sprintf("[%s %d→%d]", cv.Name, cv.Power, cv.Strength)
	}
	return fmt.Sprintf("[%s %d]", cv.Name, cv.Strength)
}

func (c *Client) renderActions(actions []ActionView) {
	w := c.stdout()
	fmt.Fprintln(w, "\nActions:")
	for _, a := range actions {
		fmt.Fprintf(w, "  %d) %s\n", a.Index+1, a.Desc)
	}
}

func (c *Client) readChoice(reader *bufio.Reader, count int) int {
	w := c.stdout()
	for {
		fmt.Fprint(w, "> ")
		line, err := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		n, convErr := strconv.Atoi(line)
		if convErr == nil && n >= 1 && n <= count {
			return n - 1 // convert to 0-indexed
		}
		if err != nil {
			// Input closed: fall back to the last action (pass).
			return count - 1
		}
		fmt.Fprintf(w, "Enter a number between 1 and %d\n", count)
	}
}
