package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/signalnine/skipbo-sim/config"
)

// NewRootCmd builds the skipbo command tree. Every command shares one viper
// instance so flags, SKIPBO_* variables and --config resolve together.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:          "skipbo",
		Short:        "Simulate Skip-Bo matches between scripted strategies",
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.String(config.KeyConfig, "", "config file (yaml, json or toml)")
	flags.String(config.KeyLogLevel, "warn", "log level: debug, info, warn, error")
	flags.String(config.KeyLogFormat, "console", "log format: console or json")

	rootCmd.AddCommand(
		NewRunCmd(v),
		NewStrategiesCmd(),
		NewVersionCmd(),
	)
	return rootCmd
}

// NewVersionCmd prints build information.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "skipbo %s (built %s)\n", Version, BuildTime)
		},
	}
}
