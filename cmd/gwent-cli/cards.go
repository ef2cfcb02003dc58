package main

import (
	"fmt"
	"runtime"
	"text/tabwriter"

	"github.com/peterkuimelis/gwent/internal/game"
	"github.com/spf13/cobra"
)

// Version is injected via ldflags at build time.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the application version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "gwent %s (%s/%s)\n", Version, runtime.GOOS, runtime.GOARCH)
	},
}

func cardsCmd() *cobra.Command {
	var row string
	cmd := &cobra.Command{
		Use:   "cards",
		Short: "List the card catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter *game.CardType
			if row != "" {
				ct, err := game.ParseCardType(row)
				if err != nil {
					return err
				}
				filter = &ct
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tROW\tPOWER\tABILITY")
			for _, name := range game.CardNames() {
				c := game.LookupCard(name)
				if filter != nil && c.CardType != *filter {
					continue
				}
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", c.Name, c.CardType, c.Power, c.Ability)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&row, "row", "", "only list cards of this type (melee, range, siege, weather)")
	return cmd
}
