package net

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"os"

	"github.com/peterkuimelis/gwent/internal/game"
	"github.com/peterkuimelis/gwent/internal/log"
)

// Server hosts a match between the local player and one TCP client.
type Server struct {
	DeckFile string
	Port     string
	HostDeck int // host's deck number (1-indexed)
	HostName string
	Seed     int64
	MaxTurns int
}

// Run starts the server, waits for a client to join, then runs the match.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", ":"+s.Port)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	defer ln.Close()

	fmt.Printf("Waiting for opponent on port %s...\n", s.Port)

	// Accept exactly one connection (the joiner)
	conn, err := ln.Accept()
	if err != nil {
		return fmt.Errorf("accept: %w", err)
	}
	defer conn.Close()

	fmt.Printf("Opponent connected from %s\n", conn.RemoteAddr())

	// Read the joiner's deck choice
	dec := json.NewDecoder(conn)
	var joinMsg ClientMessage
	if err := dec.Decode(&joinMsg); err != nil {
		return fmt.Errorf("read join message: %w", err)
	}
	if joinMsg.Type != "join" {
		return fmt.Errorf("expected join message, got %q", joinMsg.Type)
	}
	joinerDeck := joinMsg.DeckNumber
	if joinerDeck == 0 {
		joinerDeck = 2
	}

	fmt.Printf("Opponent chose deck %d\n", joinerDeck)

	hostDeckName, hostCards, err := game.DeckByNumber(s.DeckFile, s.HostDeck)
	if err != nil {
		return fmt.Errorf("load host deck: %w", err)
	}
	joinerDeckName, joinerCards, err := game.DeckByNumber(s.DeckFile, joinerDeck)
	if err != nil {
		return fmt.Errorf("load joiner deck: %w", err)
	}

	fmt.Printf("Host: %s (%d cards)\n", hostDeckName, len(hostCards))
	fmt.Printf("Joiner: %s (%d cards)\n", joinerDeckName, len(joinerCards))

	// The host plays through an in-process pipe so both sides share one protocol.
	hostConn, hostServerConn := net.Pipe()
	defer hostConn.Close()

	// Player 0 = host, Player 1 = joiner
	hostCtrl := NewNetworkController(hostServerConn, 0)
	joinerCtrl := NewNetworkControllerWithDecoder(conn, dec, 1)

	match := game.NewMatch(game.MatchConfig{
		Names:    [2]string{s.HostName, joinMsg.Name},
		Deck0:    hostCards,
		Deck1:    joinerCards,
		Logger:   log.NewTextLogger(os.Stdout),
		Seed:     s.Seed,
		MaxTurns: s.MaxTurns,
	}, hostCtrl, joinerCtrl)

	errCh := make(chan error, 2)
	go func() {
		client := &Client{conn: hostConn}
		errCh <- client.RunREPL(ctx)
	}()

	go func() {
		winner, err := match.Run(ctx)
		if err != nil {
			errCh <- fmt.Errorf("match error: %w", err)
			return
		}
		_ = joinerCtrl.SendGameOver(winner, match.Result, match.ID)
		_ = hostCtrl.SendGameOver(winner, match.Result, match.ID)
		errCh <- nil
	}()

	// Wait for either the match or the REPL to finish
	return <-errCh
}

// Solo runs a local match between the terminal player and the built-in AI.
type Solo struct {
	DeckFile   string
	PlayerDeck int
	AIDeck     int
	PlayerName string
	Seed       int64
	MaxTurns   int
	Logger     log.EventLogger
}

// Run plays the match to completion and returns the winner index.
func (s *Solo) Run(ctx context.Context) (int, error) {
	_, playerCards, err := game.DeckByNumber(s.DeckFile, s.PlayerDeck)
	if err != nil {
		return -1, fmt.Errorf("load player deck: %w", err)
	}
	_, aiCards, err := game.DeckByNumber(s.DeckFile, s.AIDeck)
	if err != nil {
		return -1, fmt.Errorf("load ai deck: %w", err)
	}

	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()

	humanCtrl := NewNetworkController(serverConn, 0)
	match := game.NewMatch(game.MatchConfig{
		Names:    [2]string{s.PlayerName, "AI"},
		Deck0:    playerCards,
		Deck1:    aiCards,
		Logger:   s.Logger,
		Seed:     s.Seed,
		MaxTurns: s.MaxTurns,
	}, humanCtrl, &game.AIController{Player: 1})

	replErr := make(chan error, 1)
	go func() {
		replErr <- NewClient(clientConn, nil, nil).RunREPL(ctx)
	}()

	winner, err := match.Run(ctx)
	if err != nil {
		return -1, fmt.Errorf("match error: %w", err)
	}
	_ = humanCtrl.SendGameOver(winner, match.Result, match.ID)
	<-replErr
	return winner, nil
}
