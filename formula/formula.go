package formula

import (
	"math"

	"edotone/constants"
)

// Formula is a named interval pattern. Offsets are steps above the root in
// the division the formula is defined for; the first offset is always 0.
// Ratios, when present, are the exact just-intonation frequency ratios for
// each voice relative to the root.
type Formula struct {
	Name    string
	Offsets []int
	Ratios  []float64
}

// The canonical archetypes, defined in 12-tone semitones. Order matters for
// display.
var canonicalOrder = []string{
	"Major",
	"Minor",
	"Diminished",
	"Augmented",
	"Major 7th",
	"Minor 7th",
	"Dominant 7th",
	"Sus2",
	"Sus4",
}

var canonical = map[string]Formula{
	"Major":        {Name: "Major", Offsets: []int{0, 4, 7}, Ratios: []float64{1, 5.0 / 4, 3.0 / 2}},
	"Minor":        {Name: "Minor", Offsets: []int{0, 3, 7}, Ratios: []float64{1, 6.0 / 5, 3.0 / 2}},
	"Diminished":   {Name: "Diminished", Offsets: []int{0, 3, 6}, Ratios: []float64{1, 6.0 / 5, 7.0 / 5}},
	"Augmented":    {Name: "Augmented", Offsets: []int{0, 4, 8}, Ratios: []float64{1, 5.0 / 4, 8.0 / 5}},
	"Major 7th":    {Name: "Major 7th", Offsets: []int{0, 4, 7, 11}, Ratios: []float64{1, 5.0 / 4, 3.0 / 2, 15.0 / 8}},
	"Minor 7th":    {Name: "Minor 7th", Offsets: []int{0, 3, 7, 10}, Ratios: []float64{1, 6.0 / 5, 3.0 / 2, 9.0 / 5}},
	"Dominant 7th": {Name: "Dominant 7th", Offsets: []int{0, 4, 7, 10}, Ratios: []float64{1, 5.0 / 4, 3.0 / 2, 7.0 / 4}},
	"Sus2":         {Name: "Sus2", Offsets: []int{0, 2, 7}, Ratios: []float64{1, 9.0 / 8, 3.0 / 2}},
	"Sus4":         {Name: "Sus4", Offsets: []int{0, 5, 7}, Ratios: []float64{1, 4.0 / 3, 3.0 / 2}},
}

// Division-specific formulas, defined directly in that division's steps
// rather than derived by rescaling. 31-EDO distinguishes the septimal
// supermajor and subminor thirds that 12-EDO cannot represent; 24-EDO gets a
// neutral triad and quarter-tone-tagged aliases of the standard pair.
var extras = map[int][]Formula{
	24: {
		{Name: "Neutral", Offsets: []int{0, 7, 14}, Ratios: []float64{1, 11.0 / 9, 3.0 / 2}},
		{Name: "Quarter-tone Major", Offsets: []int{0, 8, 14}, Ratios: []float64{1, 5.0 / 4, 3.0 / 2}},
		{Name: "Quarter-tone Minor", Offsets: []int{0, 6, 14}, Ratios: []float64{1, 6.0 / 5, 3.0 / 2}},
	},
	31: {
		{Name: "Supermajor", Offsets: []int{0, 9, 13}, Ratios: []float64{1, 9.0 / 7, 3.0 / 2}},
		{Name: "Subminor", Offsets: []int{0, 6, 13}, Ratios: []float64{1, 7.0 / 6, 3.0 / 2}},
	},
}

// The seventh chords are also written without the space; accept both.
var aliases = map[string]string{
	"Major7th":    "Major 7th",
	"Minor7th":    "Minor 7th",
	"Dominant7th": "Dominant 7th",
}

func canonicalName(name string) string {
	if c, ok := aliases[name]; ok {
		return c
	}
	return name
}

// Canonical returns the 12-tone semitone offsets for a canonical formula
// name. Division-specific extras are not canonical.
func Canonical(name string) ([]int, bool) {
	f, ok := canonical[canonicalName(name)]
	if !ok {
		return nil, false
	}
	return append([]int(nil), f.Offsets...), true
}

// JustRatios returns the just-intonation ratios for name, canonical or
// division-specific.
func JustRatios(name string) ([]float64, bool) {
	if f, ok := canonical[canonicalName(name)]; ok {
		return append([]float64(nil), f.Ratios...), true
	}
	for _, fs := range extras {
		for _, f := range fs {
			if f.Name == name && f.Ratios != nil {
				return append([]float64(nil), f.Ratios...), true
			}
		}
	}
	return nil, false
}

// Rescale projects 12-tone semitone offsets onto an n-division octave by
// rounding each offset to the nearest step. The projection is lossy: for
// small n, distinct formulas may land on the same steps. That is accepted.
func Rescale(offsets []int, n int) []int {
	res := make([]int, len(offsets))
	for i, off := range offsets {
		res[i] = int(math.Round(float64(off) * float64(n) / constants.SemitonesPerOctave))
	}
	return res
}

// Lookup resolves a formula name to offsets in n-division steps. Extras for
// the division shadow nothing: their names never collide with the canonical
// set.
func Lookup(name string, n int) ([]int, bool) {
	for _, f := range extras[n] {
		if f.Name == name {
			return append([]int(nil), f.Offsets...), true
		}
	}
	if f, ok := canonical[canonicalName(name)]; ok {
		return Rescale(f.Offsets, n), true
	}
	return nil, false
}

// NamesFor lists the formula names available in an n-division octave: the
// canonical nine in fixed order, then any division-specific extras.
func NamesFor(n int) []string {
	res := append([]string(nil), canonicalOrder...)
	for _, f := range extras[n] {
		res = append(res, f.Name)
	}
	return res
}
