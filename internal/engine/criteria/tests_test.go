// internal/engine/criteria/tests_test.go
package criteria

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"eligibility-workers/internal/models"
)

func TestTestScore(t *testing.T) {
	tests := []struct {
		name           string
		test           models.TestType
		scores         map[models.TestType]float64
		minimums       map[models.TestType]float64
		expectedStatus models.CriterionStatus
	}{
		{
			name:           "no minimum configured for this test",
			test:           models.TestIELTS,
			scores:         map[models.TestType]float64{models.TestIELTS: 7.5},
			minimums:       map[models.TestType]float64{models.TestTOEFL: 90},
			expectedStatus: models.StatusNotApplicable,
		},
		{
			name:           "score meets minimum",
			test:           models.TestIELTS,
			scores:         map[models.TestType]float64{models.TestIELTS: 7.0},
			minimums:       map[models.TestType]float64{models.TestIELTS: 6.5},
			expectedStatus: models.StatusSatisfied,
		},
		{
			name:           "score exactly at minimum",
			test:           models.TestTOEFL,
			scores:         map[models.TestType]float64{models.TestTOEFL: 90},
			minimums:       map[models.TestType]float64{models.TestTOEFL: 90},
			expectedStatus: models.StatusSatisfied,
		},
		{
			name:           "score below minimum",
			test:           models.TestGRE,
			scores:         map[models.TestType]float64{models.TestGRE: 300},
			minimums:       map[models.TestType]float64{models.TestGRE: 310},
			expectedStatus: models.StatusNotSatisfied,
		},
		{
			name:           "minimum configured but no score on profile",
			test:           models.TestIELTS,
			scores:         nil,
			minimums:       map[models.TestType]float64{models.TestIELTS: 6.5},
			expectedStatus: models.StatusNotSatisfied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := &models.AcademicProfile{TestScores: tt.scores}
			req := &models.RequirementSet{TestMinimums: tt.minimums}

			result := TestScore(tt.test, profile, req)

			assert.Equal(t, models.TestCriterion(tt.test), result.Criterion)
			assert.Equal(t, tt.expectedStatus, result.Status)
		})
	}
}
