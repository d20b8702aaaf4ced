package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTwelveToneNames(t *testing.T) {
	names, err := Names(12)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}, names)
}

func TestQuarterToneNames(t *testing.T) {
	names, err := Names(24)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal("C", names[0])
	assert.Equal("C half-sharp", names[1])
	assert.Equal("C#", names[2])
	assert.Equal("F half-sharp", names[11])
}

func TestHeuristicCentsFallback(t *testing.T) {
	// step 1 of 19-EDO sits 63 cents above C: too far from C, C# and the
	// half-sharp band
	assert.Equal(t, "C +63¢", Heuristic(19, 1))
}

func TestHeuristicSnapsNearNaturals(t *testing.T) {
	assert := assert.New(t)
	// step 13 of 31-EDO is ~5.03 semitones, within the natural threshold of F
	assert.Equal("F", Heuristic(31, 13))
	// step 18 of 31-EDO is ~6.97 semitones, close enough to G from below
	assert.Equal("G", Heuristic(31, 18))
}

func TestHeuristicWrapsSteps(t *testing.T) {
	assert.Equal(t, Heuristic(12, 3), Heuristic(12, 15))
	assert.Equal(t, Heuristic(12, 3), Heuristic(12, -9))
}

func TestOrdinalFallbackForUnlistedDivisions(t *testing.T) {
	names, err := Names(7)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal("Step 0", names[0])
	assert.Equal("Step 6", names[6])
}

func TestHeuristicBadDivisionFallsBackToOrdinal(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("Step 3", Heuristic(0, 3))
	assert.Equal("Step 3", Heuristic(-5, 3))
}

func TestNamesRejectsBadDivision(t *testing.T) {
	_, err := Names(0)
	assert.Error(t, err)
}

func TestNamesNeverAffectFrequencies(t *testing.T) {
	// labels are presentation only: computing them twice gives identical
	// slices with no shared backing state
	a, err := Names(24)
	assert.NoError(t, err)
	b, err := Names(24)
	assert.NoError(t, err)
	a[0] = "mutated"
	assert.Equal(t, "C", b[0])
}
