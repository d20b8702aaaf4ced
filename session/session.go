// Package session holds the current selection tuple. The core packages stay
// stateless; whoever orchestrates them owns a Session and passes its fields
// into each query.
package session

import (
	"fmt"

	"github.com/google/uuid"

	"edotone/chord"
	"edotone/constants"
	"edotone/model"
	"edotone/tuning"
	"edotone/util"
)

type Session struct {
	ID       uuid.UUID        `json:"id"`
	Division int              `json:"division"`
	Tuning   model.TuningMode `json:"tuning"`
	Root     model.Step       `json:"root"`
	Chord    string           `json:"chord"`
}

func New() *Session {
	return &Session{
		ID:       uuid.New(),
		Division: constants.Divisions[0],
		Tuning:   model.EqualTemperament,
		Root:     0,
		Chord:    "Major",
	}
}

// SetDivision rewraps the root so it stays a valid step of the new division.
func (s *Session) SetDivision(n int) error {
	if n < 1 {
		return fmt.Errorf("set division %v: %w", n, tuning.ErrInvalidDivision)
	}
	s.Division = n
	s.Root = util.Mod(s.Root, n)
	return nil
}

func (s *Session) SetRoot(root model.Step) {
	s.Root = util.Mod(root, s.Division)
}

func (s *Session) SetTuning(m model.TuningMode) {
	s.Tuning = m
}

func (s *Session) SetChord(name string) {
	s.Chord = name
}

// Resolve runs the current selection through the chord resolver.
func (s *Session) Resolve() (model.ResolvedChord, error) {
	return chord.Resolve(s.Root, s.Chord, s.Division, s.Tuning)
}
