package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"edotone/model"
	"edotone/tuning"
)

func TestNewDefaults(t *testing.T) {
	s := New()

	assert := assert.New(t)
	assert.Equal(12, s.Division)
	assert.Equal(model.EqualTemperament, s.Tuning)
	assert.Equal(0, s.Root)
	assert.Equal("Major", s.Chord)
	assert.NotEqual(New().ID, s.ID)
}

func TestSetDivisionRewrapsRoot(t *testing.T) {
	s := New()
	s.SetRoot(20)
	assert.Equal(t, 8, s.Root)

	assert.NoError(t, s.SetDivision(19))
	s.SetRoot(20)
	assert.Equal(t, 1, s.Root)

	// shrinking the division wraps an out-of-range root back in
	s.SetRoot(18)
	assert.NoError(t, s.SetDivision(12))
	assert.Equal(t, 6, s.Root)
}

func TestSetDivisionRejectsNonPositive(t *testing.T) {
	s := New()
	assert.ErrorIs(t, s.SetDivision(0), tuning.ErrInvalidDivision)
	assert.Equal(t, 12, s.Division)
}

func TestResolveUsesSelection(t *testing.T) {
	s := New()
	assert.NoError(t, s.SetDivision(31))
	s.SetChord("Supermajor")
	s.SetTuning(model.JustIntonation)

	rc, err := s.Resolve()

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]model.Step{0, 9, 13}, rc.Steps())
	assert.Equal(model.JustIntonation, rc.Tuning)
}
