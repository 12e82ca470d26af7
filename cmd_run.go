package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/samuelfneumann/mazelearn/agent/random"
	"github.com/samuelfneumann/mazelearn/environment/envconfig"
	"github.com/samuelfneumann/mazelearn/experiment"
	"github.com/samuelfneumann/mazelearn/experiment/tracker"
	"github.com/samuelfneumann/mazelearn/utils/progressbar"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	runConfig   string
	runEnv      string
	runSteps    uint
	runCutoff   uint
	runDiscount float64
	runSeed     uint64
	runOut      string
	runProgress bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an online experiment",
	Long: `Run an online experiment and save the return, length, and coins
collected of every episode under a fresh directory in --out.

The experiment is read from --config if given, otherwise it runs a
random agent on --env.`,
	Example: `  # Random agent on the dense maze for 100000 steps
  mazelearn run --env dense --steps 100000 --cutoff 500

  # Experiment from a JSON config
  mazelearn run --config experiment.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := runExperimentConfig()
		if err != nil {
			return err
		}

		dir := filepath.Join(runOut, uuid.New().String())
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "run: could not create output directory")
		}
		if err := writeJSON(filepath.Join(dir, "config.json"), c); err != nil {
			return err
		}

		trackers := map[string]tracker.Tracker{
			"return": tracker.NewReturn(filepath.Join(dir, "return.bin")),
			"length": tracker.NewEpisodeLength(filepath.Join(dir, "length.bin")),
			"coins":  tracker.NewCoinsCollected(filepath.Join(dir, "coins.bin")),
		}
		var opts []experiment.Option
		if runProgress {
			opts = append(opts, experiment.WithProgressBar(
				progressbar.New(os.Stderr, "steps", 40, int(c.MaxSteps))))
		}

		exp, err := c.CreateExp(runSeed, opts, trackers["return"],
			trackers["length"], trackers["coins"])
		if err != nil {
			return err
		}

		log.WithFields(log.Fields{
			"env":   c.EnvConf.Environment,
			"steps": c.MaxSteps,
			"dir":   dir,
		}).Info("starting experiment")

		if err := exp.Run(); err != nil {
			return err
		}
		if err := exp.Save(); err != nil {
			return err
		}

		for _, name := range []string{"return", "length", "coins"} {
			fmt.Printf("%-7s %v\n", name,
				tracker.Summarise(trackers[name].Data()))
		}
		fmt.Println("saved to", dir)
		return nil
	},
}

func init() {
	f := runCmd.Flags()
	f.StringVar(&runConfig, "config", "", "JSON experiment config")
	f.StringVar(&runEnv, "env", "dense", "registered maze id")
	f.UintVar(&runSteps, "steps", 10000, "total environment steps")
	f.UintVar(&runCutoff, "cutoff", 0, "maximum steps per episode, 0 for none")
	f.Float64Var(&runDiscount, "discount", 0.99, "discount factor")
	f.Uint64Var(&runSeed, "seed", 1, "agent seed")
	f.StringVar(&runOut, "out", "runs", "directory to save runs in")
	f.BoolVar(&runProgress, "progress", false, "display a progress bar")
}

func runExperimentConfig() (experiment.Config, error) {
	if runConfig != "" {
		return experiment.LoadConfig(runConfig)
	}
	return experiment.Config{
		Type:      experiment.OnlineExp,
		MaxSteps:  runSteps,
		EnvConf:   envconfig.NewConfig(runEnv, runCutoff, runDiscount),
		AgentConf: random.NewConfig(),
	}, nil
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "writeJSON: could not marshal")
	}
	return errors.Wrap(os.WriteFile(path, data, 0o644), "writeJSON")
}
