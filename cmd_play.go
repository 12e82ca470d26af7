package main

import (
	"fmt"
	"io"
	"time"

	"github.com/gdamore/tcell"
	"github.com/pkg/errors"
	"github.com/samuelfneumann/mazelearn/environment/maze"
	"github.com/samuelfneumann/mazelearn/environment/maze/humanui"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var playDelay time.Duration

var playCmd = &cobra.Command{
	Use:   "play [id]",
	Short: "Play a maze in the terminal",
	Long: `Play a maze with the arrow keys. Press q to quit.

The player view follows you around the maze while the teaser view shows
the whole level. If no key is pressed within --delay, the patrollers move
without you.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := "dense"
		if len(args) > 0 {
			id = args[0]
		}

		// Log lines would draw over the game
		logger := log.New()
		logger.SetOutput(io.Discard)

		env, _, err := maze.Make(id, 1, maze.WithLogger(logger))
		if err != nil {
			return err
		}

		scr, err := tcell.NewScreen()
		if err != nil {
			return errors.Wrap(err, "play: could not create screen")
		}
		if err := scr.Init(); err != nil {
			return errors.Wrap(err, "play: could not initialise screen")
		}

		ui := humanui.New(scr, humanui.WithDelay(playDelay),
			humanui.WithLogger(logger))
		ret, err := ui.Play(env)
		scr.Fini()
		if err != nil {
			return err
		}

		fmt.Printf("return %.0f after %d turns (%v)\n", ret, env.Turn(),
			env.CurrentTimeStep().Info[maze.InfoCause])
		return nil
	},
}

func init() {
	playCmd.Flags().DurationVar(&playDelay, "delay", humanui.DefaultDelay,
		"time to wait for a key before the patrollers move, 0 waits forever")
}
