package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"edotone/constants"
)

func init() {
	rootCmd.AddCommand(divisionsCmd)
}

var divisionsCmd = &cobra.Command{
	Use:   "divisions",
	Short: "Lists the supported octave divisions",
	Long:  `Lists the supported octave divisions`,
	Run: func(cmd *cobra.Command, args []string) {
		for _, n := range constants.Divisions {
			fmt.Printf("%v-EDO\n", n)
		}
	},
}
