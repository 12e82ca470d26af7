package main

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/samuelfneumann/mazelearn/agent/random"
	"github.com/samuelfneumann/mazelearn/environment/maze"
	"github.com/samuelfneumann/mazelearn/environment/maze/game"
	"github.com/samuelfneumann/mazelearn/environment/maze/render"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	renderSteps  int
	renderSeed   uint64
	renderOut    string
	renderCell   int
	renderANSI   bool
	renderColour bool
)

var renderCmd = &cobra.Command{
	Use:   "render [id]",
	Short: "Render the views of a maze",
	Long: `Take --steps random steps in a maze, then render the player and teaser
views to a PNG image (--out) and/or the terminal (--ansi).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := "dense"
		if len(args) > 0 {
			id = args[0]
		}

		env, step, err := maze.Make(id, 1)
		if err != nil {
			return err
		}
		a, err := random.New(env, renderSeed)
		if err != nil {
			return err
		}

		for i := 0; i < renderSteps && !step.Last(); i++ {
			if step, _, err = env.Step(a.SelectAction(step)); err != nil {
				return err
			}
		}
		log.WithFields(log.Fields{
			"turn":  env.Turn(),
			"coins": env.CoinsRemaining(),
			"end":   step.EndType(),
		}).Debug("rendering")

		var views []*game.Board
		for _, c := range env.Croppers() {
			views = append(views, c.Crop(env.Board()))
		}

		palette := render.DefaultPalette()
		if renderOut != "" {
			if err := render.SavePNG(renderOut, renderCell, palette,
				views...); err != nil {
				return err
			}
			fmt.Println("saved", renderOut)
		}
		if renderANSI || renderOut == "" {
			au := aurora.NewAurora(renderColour)
			for _, v := range views {
				fmt.Println(render.ANSI(v, au, palette))
				fmt.Println()
			}
		}
		return nil
	},
}

func init() {
	f := renderCmd.Flags()
	f.IntVar(&renderSteps, "steps", 0, "random steps to take before rendering")
	f.Uint64Var(&renderSeed, "seed", 1, "random agent seed")
	f.StringVar(&renderOut, "out", "", "PNG file to save the views to")
	f.IntVar(&renderCell, "cell", 16, "pixels per maze cell")
	f.BoolVar(&renderANSI, "ansi", false, "print the views to the terminal")
	f.BoolVar(&renderColour, "colour", true, "colour terminal output")
}
