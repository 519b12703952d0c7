// internal/engine/grading/grading.go
package grading

import (
	"errors"
	"fmt"
	"strings"

	"eligibility-workers/internal/models"
)

// ErrIncomparable is returned when a GPA cannot be placed on the unit scale:
// the OTHER system, an unknown system, or an unknown ordinal grade label.
// Callers must surface this as NOT_APPLICABLE, never as a failed criterion.
var ErrIncomparable = errors.New("grading system not comparable")

// Ordering is the result of comparing two normalized grades.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// numericRanges holds the closed value range of each numeric grading system.
var numericRanges = map[models.GradingSystem][2]float64{
	models.GradingPercentage: {0, 100},
	models.GradingGPA4:       {0, 4.0},
	models.GradingGPA5:       {0, 5.0},
	models.GradingCGPA10:     {0, 10.0},
}

// ordinalTables list each ordinal system's grades from worst to best. Grades
// map to evenly spaced unit values: the worst grade is 0, the best is 1.
var ordinalTables = map[models.GradingSystem][]string{
	models.GradingLetter: {"F", "E", "D", "C", "B", "A"},
	models.GradingWASSCE: {"F9", "E8", "D7", "C6", "C5", "C4", "B3", "B2", "A1"},
	models.GradingUKClass: {
		"ORDINARY", "THIRD", "LOWER_SECOND", "UPPER_SECOND", "FIRST",
	},
}

// Normalize converts a GPA into a unit score in [0,1]. Numeric values are
// clamped into the system's range first, so a plausible data-entry edge case
// at the boundary never fails the applicant.
func Normalize(g models.GPA) (float64, error) {
	if r, ok := numericRanges[g.System]; ok {
		lo, hi := r[0], r[1]
		v := g.Value
		if v < lo {
			v = lo
		}
		if v > hi {
			v = hi
		}
		return (v - lo) / (hi - lo), nil
	}

	if table, ok := ordinalTables[g.System]; ok {
		label := strings.ToUpper(strings.TrimSpace(g.Grade))
		for i, grade := range table {
			if grade == label {
				return float64(i) / float64(len(table)-1), nil
			}
		}
		return 0, fmt.Errorf("%w: unknown %s grade %q", ErrIncomparable, g.System, g.Grade)
	}

	return 0, fmt.Errorf("%w: system %q", ErrIncomparable, g.System)
}

// Compare orders a profile GPA against a required GPA across grading systems
// by normalizing both to unit scores. Mismatched systems are never compared
// on raw numbers; if either side cannot be normalized the comparison is
// incomparable and the error carries the reason.
func Compare(profile, required models.GPA) (Ordering, error) {
	p, err := Normalize(profile)
	if err != nil {
		return Equal, err
	}
	r, err := Normalize(required)
	if err != nil {
		return Equal, err
	}

	switch {
	case p < r:
		return Less, nil
	case p > r:
		return Greater, nil
	default:
		return Equal, nil
	}
}
