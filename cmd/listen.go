package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver

	"edotone/chord"
	"edotone/model"
	"edotone/playback"
	"edotone/tuning"
	"edotone/util"
)

// MIDI note number for middle C, which maps to step 0 of every division.
const middleC = 60

func init() {
	rootCmd.AddCommand(listenCmd)
	addSelectionFlags(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Plays chords from a MIDI keyboard",
	Long: `Listens on the first MIDI input port. Each key press picks the chord
root relative to middle C and plays the selected chord in the selected
division and tuning.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := model.ParseTuningMode(resolveTuning)
		if err != nil {
			return err
		}
		return listen(resolveDivision, resolveChord, mode)
	},
}

func listen(n int, chordName string, mode model.TuningMode) error {
	if n < 1 {
		return fmt.Errorf("listen over %v steps: %w", n, tuning.ErrInvalidDivision)
	}

	defer midi.CloseDriver()

	in, err := midi.InPort(0)
	if err != nil {
		return fmt.Errorf("no MIDI input port: %w", err)
	}

	engine := playback.NewEngine()

	var mu sync.Mutex
	var root model.Step

	trigger := func() {
		mu.Lock()
		r := root
		mu.Unlock()

		rc, err := chord.Resolve(r, chordName, n, mode)
		if err != nil {
			fmt.Printf("Could not resolve chord: %v\n", err)
			return
		}
		printResolved(rc)
		if err := engine.PlayChord(rc.Frequencies()); err != nil {
			fmt.Printf("Could not play chord: %v\n", err)
		}
	}

	// coalesce rapid note-ons so a glissando triggers once
	debounced := debounce.New(30 * time.Millisecond)

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			mu.Lock()
			root = util.Mod(int(key)-middleC, n)
			mu.Unlock()
			debounced(trigger)
		default:
			// ignore
		}
	})
	if err != nil {
		return fmt.Errorf("cannot listen to MIDI port: %w", err)
	}
	defer stop()

	fmt.Printf("Listening on %v... press Ctrl+C to quit\n", in)
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
	return nil
}
