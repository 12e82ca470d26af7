package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/samuelfneumann/mazelearn/environment/maze"
	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the registered mazes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tLEVEL\tSIZE\tCOINS\tPATROLLERS")

		for _, id := range maze.Registered() {
			r, _ := maze.Lookup(id)
			tm, err := r.Level.TileMap()
			if err != nil {
				return fmt.Errorf("level %v: %v", id, err)
			}
			rows, cols := tm.Dims()
			fmt.Fprintf(w, "%v\t%v\t%dx%d\t%d\t%d\n", id, r.Level.Name, rows,
				cols, tm.Coins().Count(), len(tm.Patrollers()))
		}
		return w.Flush()
	},
}
