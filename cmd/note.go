package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"edotone/model"
	"edotone/naming"
	"edotone/playback"
	"edotone/tuning"
	"edotone/util"
)

var (
	noteDivision int
	noteTuning   string
)

func init() {
	rootCmd.AddCommand(noteCmd)
	noteCmd.Flags().IntVarP(&noteDivision, "division", "n", 12, "equal divisions of the octave")
	noteCmd.Flags().StringVarP(&noteTuning, "tuning", "t", "equal", "tuning mode: equal or just")
}

var noteCmd = &cobra.Command{
	Use:   "note [step]",
	Short: "Plays a single scale step",
	Long:  `Plays a single scale step of the division as a tone`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		step := 0
		if len(args) == 1 {
			arg, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			step = arg
		}
		return playStep(noteDivision, step, noteTuning)
	},
}

func playStep(n int, step int, tuningName string) error {
	if n < 1 {
		return fmt.Errorf("note in %v steps: %w", n, tuning.ErrInvalidDivision)
	}
	mode, err := model.ParseTuningMode(tuningName)
	if err != nil {
		return err
	}

	step = util.Mod(step, n)
	freq := tuning.EqualTemperament(n, step)
	if mode == model.JustIntonation {
		freq = tuning.JustApprox(n, step)
	}
	fmt.Printf("step %3d  %-16s %10.2f Hz\n", step, naming.Heuristic(n, step), freq)

	engine := playback.NewEngine()
	if err := engine.PlayNote(freq); err != nil {
		return err
	}
	engine.Wait()
	return nil
}
