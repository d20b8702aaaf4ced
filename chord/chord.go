package chord

import (
	"fmt"

	"edotone/formula"
	"edotone/model"
	"edotone/tuning"
	"edotone/util"
)

// StepIndices returns the absolute scale step of each chord tone, wrapped
// into [0, n). An unknown formula name yields an empty slice so the caller
// highlights nothing and plays nothing.
func StepIndices(root model.Step, name string, n int) []model.Step {
	offsets, ok := formula.Lookup(name, n)
	if !ok {
		return nil
	}
	res := make([]model.Step, len(offsets))
	for i, off := range offsets {
		res[i] = util.Mod(root+off, n)
	}
	return res
}

// Resolve combines a root step, formula name and division into sounding
// voices under the given tuning mode. Voice order follows the formula's
// offsets, root first; the just-intonation ratio tables rely on that
// positional alignment.
//
// The root is wrapped into [0, n). In equal temperament each voice's
// frequency uses the unwrapped step root+offset, so chord tones keep
// ascending past the octave the same way the just ratios do; only the
// reported Step is octave-reduced.
func Resolve(root model.Step, name string, n int, mode model.TuningMode) (model.ResolvedChord, error) {
	rc := model.ResolvedChord{Chord: name, Division: n, Tuning: mode}
	if n < 1 {
		return rc, fmt.Errorf("resolve %q over %v steps: %w", name, n, tuning.ErrInvalidDivision)
	}
	root = util.Mod(root, n)
	rc.Root = root

	offsets, ok := formula.Lookup(name, n)
	if !ok {
		return rc, nil
	}

	var justFreqs []float64
	if mode == model.JustIntonation {
		justFreqs = tuning.JustChord(n, root, name, len(offsets))
	}

	rc.Voices = make([]model.Voice, len(offsets))
	for i, off := range offsets {
		v := model.Voice{Step: util.Mod(root+off, n)}
		if mode == model.JustIntonation {
			v.Frequency = justFreqs[i]
		} else {
			v.Frequency = tuning.EqualTemperament(n, root+off)
		}
		rc.Voices[i] = v
	}
	return rc, nil
}
