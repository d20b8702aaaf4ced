package cmd

import (
	"github.com/spf13/cobra"

	"edotone/playback"
)

func init() {
	rootCmd.AddCommand(playCmd)
	addSelectionFlags(playCmd)
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Resolves a chord and plays it",
	Long:  `Resolves a chord and plays it through the default audio device`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rc, err := resolveSelection()
		if err != nil {
			return err
		}
		printResolved(rc)

		engine := playback.NewEngine()
		if err := engine.PlayChord(rc.Frequencies()); err != nil {
			return err
		}
		engine.Wait()
		return nil
	},
}
