// Package grading computes weighted performance from already-scored grades.
// It is pure and synchronous: callers supply a slice of grades that all belong
// to the same (student, course section, period) scope; the package never
// filters or re-validates that contract.
package grading

import (
	"math"

	"github.com/dcampus/evaluation-service/internal/models"
)

// DefaultPassingThreshold is the passing cut used when callers do not
// configure one. Pass/fail is a presentation concern; the aggregator only
// exposes the comparison.
const DefaultPassingThreshold = 70.0

// Warning flags a grade that could not contribute to the average.
type Warning struct {
	GradeID string `json:"grade_id"`
	Reason  string `json:"reason"`
}

const reasonDegenerateMaxScore = "max score is zero, grade contributes nothing"

// WeightedAverage returns sum(score/maxScore * weight) over the supplied
// grades, rounded to one decimal place, half away from zero.
//
// An empty slice yields 0: "no grades yet" is a valid state distinct from a
// score of zero. A grade with MaxScore == 0 contributes 0 to the sum and is
// reported as a warning instead of dividing by zero.
func WeightedAverage(grades []models.Grade) (float64, []Warning) {
	if len(grades) == 0 {
		return 0, nil
	}

	var sum float64
	var warnings []Warning
	for i := range grades {
		g := &grades[i]
		if g.MaxScore == 0 {
			warnings = append(warnings, Warning{GradeID: g.ID, Reason: reasonDegenerateMaxScore})
			continue
		}
		sum += g.Score / g.MaxScore * float64(g.Weight)
	}

	return roundTenth(sum), warnings
}

// IsPassing compares a weighted average against a threshold.
func IsPassing(average, threshold float64) bool {
	return average >= threshold
}

// math.Round rounds half away from zero, which is the grading convention
// here (91.65 -> 91.7, not banker's rounding).
func roundTenth(x float64) float64 {
	return math.Round(x*10) / 10
}
