// internal/engine/criteria/academic_test.go
package criteria

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"eligibility-workers/internal/models"
)

func TestEducationLevel(t *testing.T) {
	tests := []struct {
		name           string
		profileLevel   models.EducationLevel
		acceptedLevels []models.EducationLevel
		expectedStatus models.CriterionStatus
	}{
		{
			name:           "level in accepted set",
			profileLevel:   models.EducationUndergraduate,
			acceptedLevels: []models.EducationLevel{models.EducationUndergraduate, models.EducationMasters},
			expectedStatus: models.StatusSatisfied,
		},
		{
			name:           "level not in accepted set",
			profileLevel:   models.EducationHighSchool,
			acceptedLevels: []models.EducationLevel{models.EducationMasters},
			expectedStatus: models.StatusNotSatisfied,
		},
		{
			name:           "empty accepted set is unrestricted",
			profileLevel:   models.EducationHighSchool,
			acceptedLevels: nil,
			expectedStatus: models.StatusNotApplicable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := &models.AcademicProfile{EducationLevel: tt.profileLevel}
			req := &models.RequirementSet{AcceptedLevels: tt.acceptedLevels}

			result := EducationLevel(profile, req)

			assert.Equal(t, models.CriterionEducationLevel, result.Criterion)
			assert.Equal(t, tt.expectedStatus, result.Status)
			assert.NotEmpty(t, result.Detail)
		})
	}
}

func TestGPACriterion(t *testing.T) {
	tests := []struct {
		name           string
		profileGPA     *models.GPA
		minimumGPA     *models.GPA
		expectedStatus models.CriterionStatus
	}{
		{
			name:           "no minimum configured",
			profileGPA:     &models.GPA{Value: 2.0, System: models.GradingGPA4},
			minimumGPA:     nil,
			expectedStatus: models.StatusNotApplicable,
		},
		{
			name:           "minimum configured but no profile GPA",
			profileGPA:     nil,
			minimumGPA:     &models.GPA{Value: 3.0, System: models.GradingGPA4},
			expectedStatus: models.StatusNotSatisfied,
		},
		{
			name:           "same system above minimum",
			profileGPA:     &models.GPA{Value: 3.5, System: models.GradingGPA4},
			minimumGPA:     &models.GPA{Value: 3.0, System: models.GradingGPA4},
			expectedStatus: models.StatusSatisfied,
		},
		{
			name:           "same system exactly at minimum",
			profileGPA:     &models.GPA{Value: 3.0, System: models.GradingGPA4},
			minimumGPA:     &models.GPA{Value: 3.0, System: models.GradingGPA4},
			expectedStatus: models.StatusSatisfied,
		},
		{
			name:           "same system below minimum",
			profileGPA:     &models.GPA{Value: 2.5, System: models.GradingGPA4},
			minimumGPA:     &models.GPA{Value: 3.0, System: models.GradingGPA4},
			expectedStatus: models.StatusNotSatisfied,
		},
		{
			name:           "cross system percentage above GPA_4 minimum",
			profileGPA:     &models.GPA{Value: 90, System: models.GradingPercentage},
			minimumGPA:     &models.GPA{Value: 3.0, System: models.GradingGPA4},
			expectedStatus: models.StatusSatisfied,
		},
		{
			name:           "cross system CGPA_10 below percentage minimum",
			profileGPA:     &models.GPA{Value: 5.0, System: models.GradingCGPA10},
			minimumGPA:     &models.GPA{Value: 70, System: models.GradingPercentage},
			expectedStatus: models.StatusNotSatisfied,
		},
		{
			name:           "incomparable system falls back to manual review",
			profileGPA:     &models.GPA{Value: 12, System: models.GradingOther},
			minimumGPA:     &models.GPA{Value: 3.0, System: models.GradingGPA4},
			expectedStatus: models.StatusNotApplicable,
		},
		{
			name:           "unknown letter grade falls back to manual review",
			profileGPA:     &models.GPA{Grade: "Z", System: models.GradingLetter},
			minimumGPA:     &models.GPA{Grade: "C", System: models.GradingLetter},
			expectedStatus: models.StatusNotApplicable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := &models.AcademicProfile{GPA: tt.profileGPA}
			req := &models.RequirementSet{MinimumGPA: tt.minimumGPA}

			result := GPA(profile, req)

			assert.Equal(t, models.CriterionGPA, result.Criterion)
			assert.Equal(t, tt.expectedStatus, result.Status)
		})
	}
}
