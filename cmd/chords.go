package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"edotone/formula"
	"edotone/tuning"
)

func init() {
	rootCmd.AddCommand(chordsCmd)
}

var chordsCmd = &cobra.Command{
	Use:   "chords [division]",
	Short: "Lists the chord formulas available in a division",
	Long:  `Lists the chord formulas available in a division with their step offsets`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n := 12
		if len(args) == 1 {
			arg, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			n = arg
		}
		if n < 1 {
			return fmt.Errorf("chords for %v steps: %w", n, tuning.ErrInvalidDivision)
		}
		for _, name := range formula.NamesFor(n) {
			offsets, _ := formula.Lookup(name, n)
			fmt.Printf("%-20s %v\n", name, offsets)
		}
		return nil
	},
}
