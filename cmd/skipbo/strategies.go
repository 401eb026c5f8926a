package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/signalnine/skipbo-sim/strategy"
)

var strategyHelp = map[string]string{
	"simple": "plays the first legal move, discards to the smallest side stack",
	"bad":    "plays only its draw stack card, discards like simple",
	"good":   "plays its draw stack first, builds toward it, blocks the next player, holds risky cards",
}

// NewStrategiesCmd lists the names accepted by --players.
func NewStrategiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List available strategies",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range strategy.Names() {
				fmt.Fprintf(cmd.OutOrStdout(), "  %-8s %s\n", name, strategyHelp[name])
			}
		},
	}
}
