// Package naming labels scale steps for display. Labels never feed back into
// frequency math or chord resolution, which work purely on step indices.
package naming

import (
	"fmt"
	"math"

	"edotone/constants"
	"edotone/tuning"
	"edotone/util"
)

// Snapping thresholds for the fractional semitone position of a step. These
// are presentation choices, not physics.
const (
	naturalThreshold = 0.05
	halfSharpBand    = 0.1
)

var chromatic = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Divisions whose steps all have conventional names get a manual table
// instead of the heuristic.
var manual = map[int][]string{
	12: chromatic,
}

// Heuristic labels a single step of an n-division octave by its position
// relative to the 12-tone chromatic scale: close to a semitone gets that
// semitone's name, close to the midpoint gets a half-sharp, anything else
// gets the lower semitone plus the residual offset in cents.
func Heuristic(n int, s int) string {
	if n < 1 {
		// labels are presentation only and must never fail; a step of a
		// nonsense division still gets some label
		return Ordinal(s)
	}
	s = util.Mod(s, n)
	p := float64(s) * constants.SemitonesPerOctave / float64(n)
	base := int(math.Floor(p))
	frac := p - float64(base)
	idx := util.Mod(base, 12)
	switch {
	case frac < naturalThreshold:
		return chromatic[idx]
	case frac > 1-naturalThreshold:
		return chromatic[util.Mod(idx+1, 12)]
	case math.Abs(frac-0.5) <= halfSharpBand:
		return chromatic[idx] + " half-sharp"
	default:
		return fmt.Sprintf("%s +%d¢", chromatic[idx], int(math.Round(frac*100)))
	}
}

// Ordinal labels a step with no pitch interpretation at all.
func Ordinal(s int) string {
	return fmt.Sprintf("Step %d", s)
}

// Names returns a display label for every step in [0, n). Divisions with a
// manual table use it verbatim; the divisions offered in the selector go
// through the heuristic; anything else gets ordinal labels.
func Names(n int) ([]string, error) {
	if n < 1 {
		return nil, fmt.Errorf("note names for %v steps: %w", n, tuning.ErrInvalidDivision)
	}
	if table, ok := manual[n]; ok {
		return append([]string(nil), table...), nil
	}
	supported := false
	for _, d := range constants.Divisions {
		if d == n {
			supported = true
			break
		}
	}
	res := make([]string, n)
	for s := 0; s < n; s++ {
		if supported {
			res[s] = Heuristic(n, s)
		} else {
			res[s] = Ordinal(s)
		}
	}
	return res, nil
}
