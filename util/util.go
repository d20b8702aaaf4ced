package util

import (
	"golang.org/x/exp/constraints"
)

// Mod is a floored modulo: for n > 0 the result always lands in [0, n),
// even for negative v. Go's % operator keeps the sign of the dividend,
// which breaks octave-equivalence for steps below the tonic.
func Mod[A constraints.Integer](v A, n A) A {
	m := v % n
	if m < 0 {
		m += n
	}
	return m
}

func Min[A constraints.Ordered](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}
