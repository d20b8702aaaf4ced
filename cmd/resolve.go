package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"edotone/chord"
	"edotone/model"
	"edotone/naming"
)

var (
	resolveDivision int
	resolveRoot     int
	resolveChord    string
	resolveTuning   string
)

func init() {
	rootCmd.AddCommand(resolveCmd)
	addSelectionFlags(resolveCmd)
}

func addSelectionFlags(c *cobra.Command) {
	c.Flags().IntVarP(&resolveDivision, "division", "n", 12, "equal divisions of the octave")
	c.Flags().IntVarP(&resolveRoot, "root", "r", 0, "root step within the division")
	c.Flags().StringVarP(&resolveChord, "chord", "c", "Major", "chord formula name")
	c.Flags().StringVarP(&resolveTuning, "tuning", "t", "equal", "tuning mode: equal or just")
}

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolves a chord to steps and frequencies",
	Long:  `Resolves a chord to steps and frequencies`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rc, err := resolveSelection()
		if err != nil {
			return err
		}
		printResolved(rc)
		return nil
	},
}

func resolveSelection() (model.ResolvedChord, error) {
	mode, err := model.ParseTuningMode(resolveTuning)
	if err != nil {
		return model.ResolvedChord{}, err
	}
	return chord.Resolve(resolveRoot, resolveChord, resolveDivision, mode)
}

func printResolved(rc model.ResolvedChord) {
	if len(rc.Voices) == 0 {
		fmt.Printf("No %q in %v-EDO\n", rc.Chord, rc.Division)
		return
	}
	fmt.Printf("%s %s in %v-EDO (%s):\n",
		naming.Heuristic(rc.Division, rc.Root), rc.Chord, rc.Division, rc.Tuning)
	for _, v := range rc.Voices {
		fmt.Printf("  step %3d  %-16s %10.2f Hz\n", v.Step, naming.Heuristic(rc.Division, v.Step), v.Frequency)
	}
}
