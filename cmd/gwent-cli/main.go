package main

import (
	"fmt"
	"os"

	"github.com/peterkuimelis/gwent/internal/config"
	"github.com/spf13/cobra"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "gwent",
	Short: "Play Gwent matches in the terminal",
	Long: `gwent hosts, joins and simulates two-player Gwent matches.

Defaults come from GWENT_* environment variables; flags override them.`,
	SilenceUsage: true,
}

func main() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rootCmd.PersistentFlags().StringVar(&cfg.DecksFile, "decks", cfg.DecksFile, "path to decks YAML file")
	rootCmd.PersistentFlags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "shuffle seed (0 for random)")
	rootCmd.PersistentFlags().IntVar(&cfg.MaxTurns, "max-turns", cfg.MaxTurns, "end the match as a draw after this many turns")

	rootCmd.AddCommand(hostCmd(), joinCmd(), soloCmd(), simulateCmd(), cardsCmd(), versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
