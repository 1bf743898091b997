package grading

import (
	"testing"

	"github.com/dcampus/evaluation-service/internal/models"
	"github.com/stretchr/testify/assert"
)

func grade(id string, score, maxScore float64, weight int) models.Grade {
	return models.Grade{ID: id, Score: score, MaxScore: maxScore, Weight: weight}
}

func TestWeightedAverage_Empty(t *testing.T) {
	avg, warnings := WeightedAverage(nil)
	assert.Equal(t, 0.0, avg)
	assert.Empty(t, warnings)

	avg, warnings = WeightedAverage([]models.Grade{})
	assert.Equal(t, 0.0, avg)
	assert.Empty(t, warnings)
}

func TestWeightedAverage_PerfectScores(t *testing.T) {
	grades := []models.Grade{
		grade("g1", 100, 100, 20),
		grade("g2", 50, 50, 40),
		grade("g3", 10, 10, 15),
		grade("g4", 100, 100, 25),
	}

	avg, warnings := WeightedAverage(grades)
	assert.Equal(t, 100.0, avg)
	assert.Empty(t, warnings)
}

func TestWeightedAverage_TypicalStudent(t *testing.T) {
	// 0.20*92 + 0.40*88 + 0.15*95 + 0.25*95 = 18.4 + 35.2 + 14.25 + 23.75
	grades := []models.Grade{
		grade("g1", 92, 100, 20),
		grade("g2", 88, 100, 40),
		grade("g3", 95, 100, 15),
		grade("g4", 95, 100, 25),
	}

	avg, warnings := WeightedAverage(grades)
	assert.Equal(t, 91.6, avg)
	assert.Empty(t, warnings)
}

func TestWeightedAverage_RoundsHalfAwayFromZero(t *testing.T) {
	// 91.65 must round up to 91.7.
	grades := []models.Grade{
		grade("g1", 91.65, 100, 100),
	}

	avg, _ := WeightedAverage(grades)
	assert.Equal(t, 91.7, avg)
}

func TestWeightedAverage_DegenerateMaxScore(t *testing.T) {
	grades := []models.Grade{
		grade("g1", 80, 100, 50),
		grade("g2", 10, 0, 50),
	}

	avg, warnings := WeightedAverage(grades)
	assert.Equal(t, 40.0, avg)
	assert.Len(t, warnings, 1)
	assert.Equal(t, "g2", warnings[0].GradeID)
}

func TestWeightedAverage_PartialPlan(t *testing.T) {
	// Grades for only part of a plan produce a partial accumulation, not a
	// normalized average.
	grades := []models.Grade{
		grade("g1", 78, 100, 20),
		grade("g2", 65, 100, 40),
	}

	avg, _ := WeightedAverage(grades)
	assert.Equal(t, 41.6, avg)
}

func TestIsPassing(t *testing.T) {
	assert.True(t, IsPassing(70, DefaultPassingThreshold))
	assert.True(t, IsPassing(91.6, DefaultPassingThreshold))
	assert.False(t, IsPassing(69.9, DefaultPassingThreshold))
	assert.True(t, IsPassing(60, 60))
}
