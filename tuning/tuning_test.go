package tuning

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"edotone/constants"
)

func TestStepZeroIsBaseFreq(t *testing.T) {
	assert := assert.New(t)
	for _, n := range constants.Divisions {
		assert.Equal(constants.BaseFreq, EqualTemperament(n, 0))
	}
}

func TestOctaveDoubling(t *testing.T) {
	for _, n := range constants.Divisions {
		t.Run(fmt.Sprintf("%v-EDO", n), func(t *testing.T) {
			for s := 0; s < n; s++ {
				low := EqualTemperament(n, s)
				high := EqualTemperament(n, s+n)
				assert.InDelta(t, 2*low, high, 1e-9)
			}
		})
	}
}

func TestNegativeStepsReachLowerOctave(t *testing.T) {
	assert.InDelta(t, constants.BaseFreq/2, EqualTemperament(12, -12), 1e-9)
}

func TestEqualTemperamentTable(t *testing.T) {
	assert := assert.New(t)

	table, err := EqualTemperamentTable(12)
	assert.NoError(err)
	assert.Len(table, 12)
	assert.InDelta(311.13, table[3], 0.01)  // D#
	assert.InDelta(392.00, table[7], 0.01)  // G
	assert.InDelta(493.89, table[11], 0.01) // B
}

func TestTableRejectsBadDivision(t *testing.T) {
	assert := assert.New(t)

	_, err := EqualTemperamentTable(0)
	assert.ErrorIs(err, ErrInvalidDivision)
	_, err = JustApproxTable(-3)
	assert.ErrorIs(err, ErrInvalidDivision)
}

func TestJustApproxTwelveMatchesRatioTable(t *testing.T) {
	// in 12-EDO every step lands exactly on its chromatic neighbor
	for s := 0; s < 12; s++ {
		want := constants.BaseFreq * StandardJIRatio[s]
		assert.InDelta(t, want, JustApprox(12, s), 1e-9)
	}
}

func TestJustApproxSnapsToNearestSemitone(t *testing.T) {
	// step 1 of 24 is a quarter tone, 0.5 semitones: rounds up to C#
	want := constants.BaseFreq * StandardJIRatio[1]
	assert.InDelta(t, want, JustApprox(24, 1), 1e-9)

	// step 18 of 31 is ~6.97 semitones: rounds to the fifth
	want = constants.BaseFreq * 3 / 2
	assert.InDelta(t, want, JustApprox(31, 18), 1e-9)
}

func TestJustChordMajor(t *testing.T) {
	freqs := JustChord(12, 0, "Major", 3)

	assert := assert.New(t)
	assert.InDelta(constants.BaseFreq, freqs[0], 1e-9)
	assert.InDelta(constants.BaseFreq*5/4, freqs[1], 1e-9)
	assert.InDelta(constants.BaseFreq*3/2, freqs[2], 1e-9)
}

func TestJustChordRootAnchoredToEqualTemperament(t *testing.T) {
	// the root keeps its ET pitch; only the upper voices are retuned
	freqs := JustChord(12, 9, "Minor", 3)

	assert := assert.New(t)
	assert.InDelta(EqualTemperament(12, 9), freqs[0], 1e-9)
	assert.InDelta(EqualTemperament(12, 9)*6/5, freqs[1], 1e-9)
}

func TestJustChordPadsWithLastRatio(t *testing.T) {
	freqs := JustChord(12, 0, "Major", 5)

	assert := assert.New(t)
	assert.Len(freqs, 5)
	assert.InDelta(freqs[2], freqs[3], 1e-9)
	assert.InDelta(freqs[2], freqs[4], 1e-9)
}

func TestJustChordUnknownNameFallsBackToEqualSpacing(t *testing.T) {
	freqs := JustChord(12, 0, "No Such Chord", 4)

	assert := assert.New(t)
	assert.Len(freqs, 4)
	for i, f := range freqs {
		want := constants.BaseFreq * math.Pow(2, float64(i)/4)
		assert.InDelta(want, f, 1e-9)
	}
}

func TestJustChordSupermajorUsesOwnRatios(t *testing.T) {
	freqs := JustChord(31, 0, "Supermajor", 3)

	assert := assert.New(t)
	assert.InDelta(constants.BaseFreq*9/7, freqs[1], 1e-9)
	assert.InDelta(constants.BaseFreq*3/2, freqs[2], 1e-9)
}
