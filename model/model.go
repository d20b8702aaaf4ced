package model

import "fmt"

// Step is an integer scale position within a division. Steps are
// octave-equivalent: arithmetic on them is taken modulo the division.
type Step = int

// TuningMode selects which frequency function applies when a chord is
// resolved.
type TuningMode int

const (
	EqualTemperament TuningMode = iota
	JustIntonation
)

func (m TuningMode) String() string {
	switch m {
	case EqualTemperament:
		return "equal"
	case JustIntonation:
		return "just"
	}
	return "unknown"
}

func ParseTuningMode(s string) (TuningMode, error) {
	switch s {
	case "equal", "et", "":
		return EqualTemperament, nil
	case "just", "ji":
		return JustIntonation, nil
	}
	return EqualTemperament, fmt.Errorf("unknown tuning mode %q", s)
}

func (m TuningMode) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

func (m *TuningMode) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := ParseTuningMode(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Voice is one sounding tone of a resolved chord.
type Voice struct {
	Step      Step    `json:"step"`
	Frequency float64 `json:"frequency"`
}

// ResolvedChord is the result of combining a root step, a chord formula name
// and a division under a tuning mode. Voices keep the formula's offset order,
// root first. An unknown formula name produces zero voices.
type ResolvedChord struct {
	Root     Step       `json:"root"`
	Chord    string     `json:"chord"`
	Division int        `json:"division"`
	Tuning   TuningMode `json:"tuning"`
	Voices   []Voice    `json:"voices"`
}

func (rc ResolvedChord) Steps() []Step {
	var res []Step
	for _, v := range rc.Voices {
		res = append(res, v.Step)
	}
	return res
}

func (rc ResolvedChord) Frequencies() []float64 {
	var res []float64
	for _, v := range rc.Voices {
		res = append(res, v.Frequency)
	}
	return res
}
