package main

import (
	"fmt"
	"os"

	"github.com/peterkuimelis/gwent/internal/game"
	"github.com/peterkuimelis/gwent/internal/log"
	gwentnet "github.com/peterkuimelis/gwent/internal/net"
	"github.com/spf13/cobra"
)

func hostCmd() *cobra.Command {
	var (
		deck int
		port string
		name string
	)
	cmd := &cobra.Command{
		Use:   "host",
		Short: "Start a game server and play as Player 1",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := &gwentnet.Server{
				DeckFile: cfg.DecksFile,
				Port:     port,
				HostDeck: deck,
				HostName: name,
				Seed:     cfg.Seed,
				MaxTurns: cfg.MaxTurns,
			}
			return srv.Run(cmd.Context())
		},
	}
	cmd.Flags().IntVar(&deck, "deck", 1, "deck number to use (from decks.yaml)")
	cmd.Flags().StringVar(&port, "port", cfg.Port, "TCP port to listen on")
	cmd.Flags().StringVar(&name, "name", "Host", "display name")
	return cmd
}

func joinCmd() *cobra.Command {
	var (
		deck int
		addr string
		name string
	)
	cmd := &cobra.Command{
		Use:   "join",
		Short: "Connect to a game server and play as Player 2",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return gwentnet.Connect(cmd.Context(), addr, deck, name)
		},
	}
	cmd.Flags().IntVar(&deck, "deck", 2, "deck number to use (from decks.yaml)")
	cmd.Flags().StringVar(&addr, "addr", cfg.Addr, "server address to connect to")
	cmd.Flags().StringVar(&name, "name", "Guest", "display name")
	return cmd
}

func soloCmd() *cobra.Command {
	var (
		deck, aiDeck int
		name         string
		verbose      bool
	)
	cmd := &cobra.Command{
		Use:   "solo",
		Short: "Play against the built-in AI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var logger log.EventLogger = log.NewMemoryLogger()
			if verbose {
				logger = log.NewTextLogger(os.Stderr)
			}
			solo := &gwentnet.Solo{
				DeckFile:   cfg.DecksFile,
				PlayerDeck: deck,
				AIDeck:     aiDeck,
				PlayerName: name,
				Seed:       cfg.Seed,
				MaxTurns:   cfg.MaxTurns,
				Logger:     logger,
			}
			_, err := solo.Run(cmd.Context())
			return err
		},
	}
	cmd.Flags().IntVar(&deck, "deck", 1, "your deck number")
	cmd.Flags().IntVar(&aiDeck, "ai-deck", 2, "the AI's deck number")
	cmd.Flags().StringVar(&name, "name", "You", "display name")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "also write the event log to stderr")
	return cmd
}

func simulateCmd() *cobra.Command {
	var deck0, deck1 int
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run an AI versus AI match and print the event log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name0, cards0, err := game.DeckByNumber(cfg.DecksFile, deck0)
			if err != nil {
				return err
			}
			name1, cards1, err := game.DeckByNumber(cfg.DecksFile, deck1)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			match := game.NewMatch(game.MatchConfig{
				Names:    [2]string{name0, name1},
				Deck0:    cards0,
				Deck1:    cards1,
				Logger:   log.NewTextLogger(out),
				Seed:     cfg.Seed,
				MaxTurns: cfg.MaxTurns,
			}, &game.AIController{Player: 0}, &game.AIController{Player: 1})

			if _, err := match.Run(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(out, "\n%s (match %s)\n", match.Result, match.ID)
			return nil
		},
	}
	cmd.Flags().IntVar(&deck0, "deck0", 1, "deck number for player 1")
	cmd.Flags().IntVar(&deck1, "deck1", 2, "deck number for player 2")
	return cmd
}
