// internal/workers/eligibility/evaluate-eligibility/handler_test.go
package evaluateeligibility

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	commonerrors "eligibility-workers/internal/common/errors"
	"eligibility-workers/internal/common/logger"
	"eligibility-workers/internal/models"
)

// testLogger implements logger.Logger and writes to the test log.
type testLogger struct {
	t *testing.T
}

func (l *testLogger) Debug(msg string, fields map[string]interface{}) { l.t.Logf("DEBUG: %s %v", msg, fields) }
func (l *testLogger) Info(msg string, fields map[string]interface{})  { l.t.Logf("INFO: %s %v", msg, fields) }
func (l *testLogger) Warn(msg string, fields map[string]interface{})  { l.t.Logf("WARN: %s %v", msg, fields) }
func (l *testLogger) Error(msg string, fields map[string]interface{}) { l.t.Logf("ERROR: %s %v", msg, fields) }
func (l *testLogger) WithFields(fields map[string]interface{}) logger.Logger { return l }
func (l *testLogger) WithError(err error) logger.Logger                      { return l }

func setupHandler(t *testing.T) (*Handler, sqlmock.Sqlmock, *miniredis.Miniredis) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	h := NewHandler(LoadConfig(), db, rdb, &testLogger{t: t})
	return h, mock, mr
}

func createTestInput() *Input {
	return &Input{
		ApplicantID: "applicant-1",
		Profile: &models.AcademicProfile{
			ApplicantID:    "applicant-1",
			EducationLevel: models.EducationUndergraduate,
			GPA:            &models.GPA{Value: 3.4, System: models.GradingGPA4},
		},
		Documents: []models.DocumentHolding{
			{Type: models.DocPassportCopy, UploadedAt: time.Now()},
			{Type: models.DocTranscript, UploadedAt: time.Now()},
		},
		RequirementSet: &models.RequirementSet{
			ProgramID:         "program-1",
			AcceptedLevels:    []models.EducationLevel{models.EducationUndergraduate},
			MinimumGPA:        &models.GPA{Value: 3.0, System: models.GradingGPA4},
			RequiredDocuments: []models.DocumentType{models.DocPassportCopy, models.DocTranscript},
		},
	}
}

func TestExecuteWithInlineData(t *testing.T) {
	h, _, _ := setupHandler(t)

	output, err := h.Execute(context.Background(), createTestInput())
	require.NoError(t, err)

	assert.Equal(t, models.VerdictEligible, output.Verdict)
	assert.Equal(t, 100.0, output.Score)
	require.NotNil(t, output.Report)
	assert.Equal(t, "program-1", output.Report.ProgramID)
}

func TestExecuteLoadsProfileFromDatabase(t *testing.T) {
	h, mock, mr := setupHandler(t)

	input := createTestInput()
	input.Profile = nil

	gpaJSON, _ := json.Marshal(models.GPA{Value: 3.4, System: models.GradingGPA4})
	rows := sqlmock.NewRows([]string{
		"education_level", "field_of_study", "gpa", "institution", "test_scores", "work_experience",
	}).AddRow("UNDERGRADUATE", "Computer Science", gpaJSON, "University of Lagos", nil, nil)

	mock.ExpectQuery("SELECT education_level, field_of_study").
		WithArgs("applicant-1").
		WillReturnRows(rows)

	output, err := h.Execute(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, models.VerdictEligible, output.Verdict)

	// Profile lands in the cache for the next evaluation.
	assert.True(t, mr.Exists("applicant:profile:applicant-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecuteUsesCachedProfile(t *testing.T) {
	h, mock, mr := setupHandler(t)

	profile := models.AcademicProfile{
		ApplicantID:    "applicant-1",
		EducationLevel: models.EducationUndergraduate,
		GPA:            &models.GPA{Value: 3.4, System: models.GradingGPA4},
	}
	data, _ := json.Marshal(profile)
	require.NoError(t, mr.Set("applicant:profile:applicant-1", string(data)))

	input := createTestInput()
	input.Profile = nil

	output, err := h.Execute(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, models.VerdictEligible, output.Verdict)

	// No database round trip expected.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecuteProfileNotFound(t *testing.T) {
	h, mock, _ := setupHandler(t)

	input := createTestInput()
	input.Profile = nil

	mock.ExpectQuery("SELECT education_level, field_of_study").
		WithArgs("applicant-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"education_level", "field_of_study", "gpa", "institution", "test_scores", "work_experience",
		}))

	output, err := h.Execute(context.Background(), input)
	assert.Nil(t, output)

	stdErr, ok := err.(*commonerrors.StandardError)
	require.True(t, ok)
	assert.Equal(t, commonerrors.ErrCodeProfileNotFound, stdErr.Code)
}

func TestExecuteLoadsRequirementSetFromDatabase(t *testing.T) {
	h, mock, _ := setupHandler(t)

	input := createTestInput()
	req := input.RequirementSet
	input.RequirementSet = nil
	input.ProgramID = "program-1"

	payload, _ := json.Marshal(req)
	mock.ExpectQuery("SELECT payload FROM program_requirement_sets").
		WithArgs("program-1").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow(payload))

	output, err := h.Execute(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, models.VerdictEligible, output.Verdict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecuteRequirementSetNotFound(t *testing.T) {
	h, mock, _ := setupHandler(t)

	input := createTestInput()
	input.RequirementSet = nil
	input.ProgramID = "missing-program"

	mock.ExpectQuery("SELECT payload FROM program_requirement_sets").
		WithArgs("missing-program").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}))

	output, err := h.Execute(context.Background(), input)
	assert.Nil(t, output)

	stdErr, ok := err.(*commonerrors.StandardError)
	require.True(t, ok)
	assert.Equal(t, commonerrors.ErrCodeRequirementSetNotFound, stdErr.Code)
}

func TestExecuteMissingProfileAndApplicantID(t *testing.T) {
	h, _, _ := setupHandler(t)

	output, err := h.Execute(context.Background(), &Input{
		RequirementSet: createTestInput().RequirementSet,
	})
	assert.Nil(t, output)

	stdErr, ok := err.(*commonerrors.StandardError)
	require.True(t, ok)
	assert.Equal(t, commonerrors.ErrCodeProfileMalformed, stdErr.Code)
}

func TestExecuteInvalidRequirementSetStillReports(t *testing.T) {
	h, _, _ := setupHandler(t)

	input := createTestInput()
	input.RequirementSet = &models.RequirementSet{ProgramID: "program-broken"}

	output, err := h.Execute(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, models.VerdictIneligible, output.Verdict)
	assert.True(t, output.Report.ConfigInvalid)
}
