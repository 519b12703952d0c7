// internal/engine/evaluator_test.go
package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eligibility-workers/internal/models"
)

var evalTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func createTestProfile() *models.AcademicProfile {
	return &models.AcademicProfile{
		ApplicantID:    "applicant-1",
		EducationLevel: models.EducationUndergraduate,
		FieldOfStudy:   "Computer Science",
		GPA:            &models.GPA{Value: 3.2, System: models.GradingGPA4},
		Institution:    "University of Lagos",
	}
}

func createTestDocuments(types ...models.DocumentType) []models.DocumentHolding {
	uploaded := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	docs := make([]models.DocumentHolding, 0, len(types))
	for _, dt := range types {
		docs = append(docs, models.DocumentHolding{Type: dt, UploadedAt: uploaded})
		uploaded = uploaded.Add(time.Hour)
	}
	return docs
}

func createTestRequirementSet() *models.RequirementSet {
	return &models.RequirementSet{
		ProgramID:      "program-1",
		ProgramName:    "MSc Computer Science",
		AcceptedLevels: []models.EducationLevel{models.EducationUndergraduate, models.EducationMasters},
		MinimumGPA:     &models.GPA{Value: 3.0, System: models.GradingGPA4},
		RequiredDocuments: []models.DocumentType{
			models.DocPassportCopy, models.DocTranscript, models.DocBirthCertificate,
		},
	}
}

func TestEvaluateGatingDocumentsMissing(t *testing.T) {
	profile := createTestProfile()
	docs := createTestDocuments(models.DocPassportCopy, models.DocTranscript)
	req := createTestRequirementSet()

	report, err := Evaluate(profile, docs, req, DefaultPolicy(), evalTime)
	require.NoError(t, err)

	// GPA passes, but the gating documents criterion dominates.
	gpa, ok := report.Criterion(models.CriterionGPA)
	require.True(t, ok)
	assert.Equal(t, models.StatusSatisfied, gpa.Status)

	documents, ok := report.Criterion(models.CriterionDocuments)
	require.True(t, ok)
	assert.Equal(t, models.StatusNotSatisfied, documents.Status)
	assert.Contains(t, documents.Detail, "BIRTH_CERTIFICATE")

	assert.Equal(t, models.VerdictIneligible, report.Verdict)
}

func TestEvaluateAllApplicableSatisfied(t *testing.T) {
	profile := createTestProfile()
	docs := createTestDocuments(
		models.DocPassportCopy, models.DocTranscript, models.DocBirthCertificate,
	)
	req := createTestRequirementSet()

	report, err := Evaluate(profile, docs, req, DefaultPolicy(), evalTime)
	require.NoError(t, err)

	assert.Equal(t, models.VerdictEligible, report.Verdict)
	assert.Equal(t, 100.0, report.Score)

	for _, c := range report.Criteria {
		if c.Status == models.StatusSatisfied {
			assert.Greater(t, c.Contribution, 0.0)
		} else {
			assert.Equal(t, models.StatusNotApplicable, c.Status)
			assert.Zero(t, c.Contribution)
		}
	}
}

func TestEvaluatePartialVerdict(t *testing.T) {
	profile := createTestProfile()
	profile.GPA = &models.GPA{Value: 2.5, System: models.GradingGPA4}
	docs := createTestDocuments(
		models.DocPassportCopy, models.DocTranscript, models.DocBirthCertificate,
	)
	req := createTestRequirementSet()

	report, err := Evaluate(profile, docs, req, DefaultPolicy(), evalTime)
	require.NoError(t, err)

	// Hard gates pass, the scoring-only GPA criterion fails.
	assert.Equal(t, models.VerdictPartial, report.Verdict)
	assert.Less(t, report.Score, 100.0)
	assert.GreaterOrEqual(t, report.Score, 0.0)
}

func TestEvaluateDeterminism(t *testing.T) {
	profile := createTestProfile()
	profile.TestScores = map[models.TestType]float64{models.TestIELTS: 7.0}
	docs := createTestDocuments(
		models.DocPassportCopy, models.DocTranscript, models.DocBirthCertificate,
	)
	req := createTestRequirementSet()
	req.TestMinimums = map[models.TestType]float64{
		models.TestIELTS: 6.5,
		models.TestTOEFL: 90,
	}

	first, err := Evaluate(profile, docs, req, DefaultPolicy(), evalTime)
	require.NoError(t, err)
	second, err := Evaluate(profile, docs, req, DefaultPolicy(), evalTime)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEvaluateVacuousNonRestriction(t *testing.T) {
	profile := createTestProfile()
	docs := createTestDocuments(
		models.DocPassportCopy, models.DocTranscript, models.DocBirthCertificate,
	)
	req := createTestRequirementSet()
	req.AcceptedInstitutions = nil
	req.AcceptedCourses = nil
	req.AcceptedFundingTypes = nil

	report, err := Evaluate(profile, docs, req, DefaultPolicy(), evalTime)
	require.NoError(t, err)

	for _, name := range []models.CriterionName{
		models.CriterionInstitution, models.CriterionCourse, models.CriterionFundingType,
	} {
		c, ok := report.Criterion(name)
		require.True(t, ok)
		assert.Equal(t, models.StatusNotApplicable, c.Status, "criterion %s", name)
		assert.Zero(t, c.Contribution)
	}
	assert.Equal(t, models.VerdictEligible, report.Verdict)
}

func TestEvaluateMissingTestScoreIsNotAPass(t *testing.T) {
	profile := createTestProfile()
	docs := createTestDocuments(
		models.DocPassportCopy, models.DocTranscript, models.DocBirthCertificate,
	)
	req := createTestRequirementSet()
	req.TestMinimums = map[models.TestType]float64{models.TestIELTS: 6.5}

	report, err := Evaluate(profile, docs, req, DefaultPolicy(), evalTime)
	require.NoError(t, err)

	ielts, ok := report.Criterion(models.TestCriterion(models.TestIELTS))
	require.True(t, ok)
	assert.Equal(t, models.StatusNotSatisfied, ielts.Status)
	assert.Equal(t, models.VerdictPartial, report.Verdict)
}

func TestEvaluateCrossSystemGPA(t *testing.T) {
	profile := createTestProfile()
	profile.GPA = &models.GPA{Value: 3.5, System: models.GradingGPA4}
	docs := createTestDocuments(
		models.DocPassportCopy, models.DocTranscript, models.DocBirthCertificate,
	)
	req := createTestRequirementSet()
	req.MinimumGPA = &models.GPA{Value: 70, System: models.GradingPercentage}

	report, err := Evaluate(profile, docs, req, DefaultPolicy(), evalTime)
	require.NoError(t, err)

	gpa, ok := report.Criterion(models.CriterionGPA)
	require.True(t, ok)
	assert.Equal(t, models.StatusSatisfied, gpa.Status)
}

func TestEvaluateScoreBounds(t *testing.T) {
	docs := createTestDocuments(models.DocPassportCopy)
	noYears := 3.0

	tests := []struct {
		name    string
		profile *models.AcademicProfile
		req     *models.RequirementSet
	}{
		{
			name: "everything fails",
			profile: &models.AcademicProfile{
				ApplicantID:    "applicant-2",
				EducationLevel: models.EducationHighSchool,
			},
			req: &models.RequirementSet{
				ProgramID:                  "program-2",
				AcceptedLevels:             []models.EducationLevel{models.EducationDoctorate},
				MinimumGPA:                 &models.GPA{Value: 3.9, System: models.GradingGPA4},
				RequiredDocuments:          []models.DocumentType{models.DocCV},
				TestMinimums:               map[models.TestType]float64{models.TestGMAT: 700},
				WorkExperienceRequired:     true,
				MinimumWorkExperienceYears: &noYears,
			},
		},
		{
			name:    "minimal requirement set",
			profile: createTestProfile(),
			req: &models.RequirementSet{
				ProgramID:         "program-3",
				RequiredDocuments: []models.DocumentType{models.DocPassportCopy},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := Evaluate(tt.profile, docs, tt.req, DefaultPolicy(), evalTime)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, report.Score, 0.0)
			assert.LessOrEqual(t, report.Score, 100.0)
		})
	}
}

func TestEvaluateInvalidRequirementSetDegrades(t *testing.T) {
	profile := createTestProfile()
	req := &models.RequirementSet{ProgramID: "program-4"}

	report, err := Evaluate(profile, nil, req, DefaultPolicy(), evalTime)
	require.NoError(t, err)

	assert.True(t, report.ConfigInvalid)
	assert.Contains(t, report.ConfigDetail, "requiredDocuments")
	assert.Equal(t, models.VerdictIneligible, report.Verdict)
	assert.Empty(t, report.Criteria)
}

func TestEvaluateInputErrors(t *testing.T) {
	req := createTestRequirementSet()

	tests := []struct {
		name          string
		profile       *models.AcademicProfile
		req           *models.RequirementSet
		expectedField string
	}{
		{
			name:          "nil profile",
			profile:       nil,
			req:           req,
			expectedField: "profile",
		},
		{
			name:          "empty applicant id",
			profile:       &models.AcademicProfile{EducationLevel: models.EducationMasters},
			req:           req,
			expectedField: "profile.applicantId",
		},
		{
			name:          "empty education level",
			profile:       &models.AcademicProfile{ApplicantID: "applicant-1"},
			req:           req,
			expectedField: "profile.educationLevel",
		},
		{
			name:          "nil requirement set",
			profile:       createTestProfile(),
			req:           nil,
			expectedField: "requirementSet",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := Evaluate(tt.profile, nil, tt.req, DefaultPolicy(), evalTime)
			assert.Nil(t, report)

			var inputErr *InputError
			require.ErrorAs(t, err, &inputErr)
			assert.Equal(t, tt.expectedField, inputErr.Field)
		})
	}
}

func TestEvaluateCustomPolicy(t *testing.T) {
	profile := createTestProfile()
	profile.GPA = &models.GPA{Value: 2.0, System: models.GradingGPA4}
	docs := createTestDocuments(
		models.DocPassportCopy, models.DocTranscript, models.DocBirthCertificate,
	)
	req := createTestRequirementSet()

	policy := DefaultPolicy()
	policy.GatingCriteria[models.CriterionGPA] = true

	report, err := Evaluate(profile, docs, req, policy, evalTime)
	require.NoError(t, err)

	// GPA fails and gates under the custom policy.
	assert.Equal(t, models.VerdictIneligible, report.Verdict)
}
