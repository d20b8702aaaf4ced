package constants

import (
	"os"
	"strconv"
)

// BaseFreq is middle C in Hz. Every frequency the engine produces is derived
// from it.
const BaseFreq = 261.63

// SemitonesPerOctave is the canonical division that chord formulas and note
// names are defined in before being rescaled.
const SemitonesPerOctave = 12

// Divisions lists the equal divisions of the octave offered by default, in
// display order.
var Divisions = []int{12, 19, 24, 31}

func GetPort() string {
	port := os.Getenv("EDOTONE_PORT")
	if port != "" {
		return port
	}
	return "8080"
}

// GetBaseFreq allows recalibrating the reference pitch, e.g. for A=432
// ensembles. Anything unparseable or non-positive falls back to middle C.
func GetBaseFreq() float64 {
	v := os.Getenv("EDOTONE_BASE_FREQ")
	if v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			return f
		}
	}
	return BaseFreq
}
