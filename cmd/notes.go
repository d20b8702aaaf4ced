package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"edotone/naming"
	"edotone/tuning"
)

func init() {
	rootCmd.AddCommand(notesCmd)
}

var notesCmd = &cobra.Command{
	Use:   "notes [division]",
	Short: "Prints the step table for a division",
	Long:  `Prints every step of the division with its name, equal-temperament frequency and approximate just-intonation frequency`,
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
		return printNotes(n)
	},
}

func printNotes(n int) error {
	names, err := naming.Names(n)
	if err != nil {
		return err
	}
	et, err := tuning.EqualTemperamentTable(n)
	if err != nil {
		return err
	}
	ji, err := tuning.JustApproxTable(n)
	if err != nil {
		return err
	}

	fmt.Printf("%3s  %-16s %12s %12s\n", "#", "name", "equal (Hz)", "just (Hz)")
	for s := 0; s < n; s++ {
		fmt.Printf("%3d  %-16s %12.2f %12.2f\n", s, names[s], et[s], ji[s])
	}
	return nil
}
