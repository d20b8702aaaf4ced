package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "edotone",
	Short: "Microtonal scale and chord workbench",
	Long: `Computes note tables and chords for equal divisions of the octave
(12, 19, 24, 31, ...) under equal temperament and just intonation,
and plays them as tones.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
