// Command mazelearn plays and runs experiments on coin collecting maze
// environments
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "mazelearn",
	Short: "Coin collecting maze environments",
	Long: `mazelearn hosts coin collecting maze environments: a player explores
a maze collecting coins while patrollers pace the corridors.

Mazes can be played by hand in the terminal, rendered to images, or used
to run online experiments with a random agent.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		log.SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"logging level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(levelsCmd, runCmd, playCmd, renderCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
