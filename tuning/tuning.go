package tuning

import (
	"errors"
	"fmt"
	"math"

	"edotone/constants"
	"edotone/formula"
	"edotone/util"
)

// ErrInvalidDivision is returned when an octave cannot be split into the
// requested number of steps.
var ErrInvalidDivision = errors.New("division must be a positive integer")

// StandardJIRatio maps each 12-tone chromatic step to its just-intonation
// ratio above the tonic.
var StandardJIRatio = [12]float64{
	1,
	16.0 / 15,
	9.0 / 8,
	6.0 / 5,
	5.0 / 4,
	4.0 / 3,
	45.0 / 32,
	3.0 / 2,
	8.0 / 5,
	5.0 / 3,
	9.0 / 5,
	15.0 / 8,
}

// EqualTemperament returns the frequency of step s in an n-division octave.
// s is not wrapped into [0, n): steps at or above n reach the next octave,
// negative steps reach the previous one.
func EqualTemperament(n int, s int) float64 {
	return constants.GetBaseFreq() * math.Pow(2, float64(s)/float64(n))
}

// JustApprox returns a just-intonation frequency for step s of an n-division
// octave by snapping it to the nearest 12-tone neighbor. Arbitrary microtonal
// steps have no canonical just ratio, so this is an approximation meant for
// displaying the full step circle, not for chord playback.
func JustApprox(n int, s int) float64 {
	p := float64(s) * constants.SemitonesPerOctave / float64(n)
	r := int(math.Round(p))
	oct := math.Floor(p / constants.SemitonesPerOctave)
	return constants.GetBaseFreq() * StandardJIRatio[util.Mod(r, 12)] * math.Pow(2, oct)
}

// EqualTemperamentTable returns the frequency of every step in [0, n).
func EqualTemperamentTable(n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("equal temperament table for %v steps: %w", n, ErrInvalidDivision)
	}
	res := make([]float64, n)
	for s := 0; s < n; s++ {
		res[s] = EqualTemperament(n, s)
	}
	return res, nil
}

// JustApproxTable returns the JustApprox frequency of every step in [0, n).
// Display only; see JustApprox.
func JustApproxTable(n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("just intonation table for %v steps: %w", n, ErrInvalidDivision)
	}
	res := make([]float64, n)
	for s := 0; s < n; s++ {
		res[s] = JustApprox(n, s)
	}
	return res, nil
}

// JustChord returns count frequencies for playing the named chord in just
// intonation. The root is pinned to its equal-temperament frequency and the
// remaining voices are tuned as exact ratios above it, so the chord is pure
// internally while the root stays on the familiar reference pitch.
//
// Resolution order: the formula's own ratio table (padded by repeating the
// last ratio when the chord has more voices than ratios), then the formula's
// 12-tone semitone offsets mapped through StandardJIRatio, then equal spacing
// across one octave. The last resort is not music, just a guarantee that
// every voice gets some frequency.
func JustChord(n int, root int, name string, count int) []float64 {
	rootFreq := EqualTemperament(n, root)
	freqs := make([]float64, count)

	if ratios, ok := formula.JustRatios(name); ok && len(ratios) > 0 {
		for i := 0; i < count; i++ {
			freqs[i] = rootFreq * ratios[util.Min(i, len(ratios)-1)]
		}
		return freqs
	}

	if offsets, ok := formula.Canonical(name); ok && len(offsets) > 0 {
		for i := 0; i < count; i++ {
			off := offsets[util.Min(i, len(offsets)-1)]
			ratio := StandardJIRatio[util.Mod(off, 12)]
			freqs[i] = rootFreq * ratio * math.Pow(2, math.Floor(float64(off)/12))
		}
		return freqs
	}

	for i := 0; i < count; i++ {
		freqs[i] = rootFreq * math.Pow(2, float64(i)/float64(count))
	}
	return freqs
}
