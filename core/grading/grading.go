// Package grading computes final evaluation grades from raw scores and a discipline's weight profile.
package grading

import "github.com/saraquenta/Sistema-EAME/core"

// Weights is a discipline's weight profile, in percent. Theory+Practice+Other is expected to be 100.
type Weights struct {
	Theory   int
	Practice int
	Other    int
}

// Sum returns Theory+Practice+Other.
func (w Weights) Sum() int {
	return w.Theory + w.Practice + w.Other
}

// Scores are the four raw sub-scores of an evaluation, each expected in [0,100].
type Scores struct {
	Theory     float64
	Practice   float64
	Attendance float64
	Notebook   float64
}

// Final returns the weighted final grade rounded half-up to 2 decimals:
//
//	theory*wT/100 + practice*wP/100 + ((attendance+notebook)/2)*wO/100
//
// Neither inputs nor output are clamped; callers validate scores and weights beforehand.
func Final(s Scores, w Weights) float64 {
	theory := s.Theory * float64(w.Theory) / 100
	practice := s.Practice * float64(w.Practice) / 100
	other := (s.Attendance + s.Notebook) / 2 * float64(w.Other) / 100
	return core.Round2(theory + practice + other)
}

// Mean returns the arithmetic mean of grades, or 0 when there are none.
func Mean(grades []float64) float64 {
	if len(grades) == 0 {
		return 0
	}
	var sum float64
	for _, g := range grades {
		sum += g
	}
	return sum / float64(len(grades))
}
