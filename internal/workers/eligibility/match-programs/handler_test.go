// internal/workers/eligibility/match-programs/handler_test.go
package matchprograms

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

type testLogger struct {
	t *testing.T
}

func (l *testLogger) Debug(msg string, fields map[string]interface{}) { l.t.Logf("DEBUG: %s %v", msg, fields) }
func (l *testLogger) Info(msg string, fields map[string]interface{})  { l.t.Logf("INFO: %s %v", msg, fields) }
func (l *testLogger) Warn(msg string, fields map[string]interface{})  { l.t.Logf("WARN: %s %v", msg, fields) }
func (l *testLogger) Error(msg string, fields map[string]interface{}) { l.t.Logf("ERROR: %s %v", msg, fields) }
func (l *testLogger) WithFields(fields map[string]interface{}) logger.Logger { return l }
func (l *testLogger) WithError(err error) logger.Logger                      { return l }

func setupHandler(t *testing.T) (*Handler, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	h := NewHandler(LoadConfig(), db, rdb, &testLogger{t: t})
	return h, mock
}

func createTestProfile() *models.AcademicProfile {
	return &models.AcademicProfile{
		ApplicantID:    "applicant-1",
		EducationLevel: models.EducationUndergraduate,
		GPA:            &models.GPA{Value: 3.4, System: models.GradingGPA4},
	}
}

func createTestDocuments() []models.DocumentHolding {
	now := time.Now()
	return []models.DocumentHolding{
		{Type: models.DocPassportCopy, UploadedAt: now},
		{Type: models.DocTranscript, UploadedAt: now},
	}
}

func createRequirementSet(programID string, displayOrder int) *models.RequirementSet {
	return &models.RequirementSet{
		ProgramID:         programID,
		DisplayOrder:      displayOrder,
		AcceptedLevels:    []models.EducationLevel{models.EducationUndergraduate},
		MinimumGPA:        &models.GPA{Value: 3.0, System: models.GradingGPA4},
		RequiredDocuments: []models.DocumentType{models.DocPassportCopy, models.DocTranscript},
	}
}

func TestExecuteWithInlineRequirementSets(t *testing.T) {
	h, _ := setupHandler(t)

	input := &Input{
		ApplicantID: "applicant-1",
		Profile:     createTestProfile(),
		Documents:   createTestDocuments(),
		RequirementSets: []*models.RequirementSet{
			createRequirementSet("program-a", 1),
			createRequirementSet("program-b", 2),
		},
	}

	output, err := h.Execute(context.Background(), input)
	require.NoError(t, err)

	assert.NotEmpty(t, output.BatchID)
	require.Len(t, output.Results, 2)
	assert.False(t, output.Truncated)
	assert.Equal(t, "program-a", output.Results[0].ProgramID)
	assert.Equal(t, "program-b", output.Results[1].ProgramID)
	for _, r := range output.Results {
		require.NotNil(t, r.Report)
		assert.Equal(t, models.VerdictEligible, r.Report.Verdict)
	}
}

func TestExecuteLoadsRequirementSetsFromDatabase(t *testing.T) {
	h, mock := setupHandler(t)

	input := &Input{
		ApplicantID: "applicant-1",
		Profile:     createTestProfile(),
		Documents:   createTestDocuments(),
		ProgramIDs:  []string{"program-a", "program-b"},
	}

	payloadA, _ := json.Marshal(createRequirementSet("program-a", 1))
	payloadB, _ := json.Marshal(createRequirementSet("program-b", 2))

	mock.ExpectQuery("SELECT program_id, payload").
		WillReturnRows(sqlmock.NewRows([]string{"program_id", "payload"}).
			AddRow("program-b", payloadB).
			AddRow("program-a", payloadA))

	output, err := h.Execute(context.Background(), input)
	require.NoError(t, err)

	require.Len(t, output.Results, 2)
	// Candidate order survives the unordered result set.
	assert.Equal(t, "program-a", output.Results[0].ProgramID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecuteMalformedProgramIsPerItemError(t *testing.T) {
	h, _ := setupHandler(t)

	malformed := &models.RequirementSet{ProgramID: "malformed"}

	input := &Input{
		ApplicantID: "applicant-1",
		Profile:     createTestProfile(),
		Documents:   createTestDocuments(),
		RequirementSets: []*models.RequirementSet{
			createRequirementSet("program-a", 1),
			malformed,
			createRequirementSet("program-b", 2),
		},
	}

	output, err := h.Execute(context.Background(), input)
	require.NoError(t, err)

	require.Len(t, output.Results, 3)
	last := output.Results[2]
	assert.Equal(t, "malformed", last.ProgramID)
	require.NotNil(t, last.Report)
	assert.True(t, last.Report.ConfigInvalid)
}

func TestExecuteEmptyCandidateList(t *testing.T) {
	h, _ := setupHandler(t)

	output, err := h.Execute(context.Background(), &Input{
		ApplicantID: "applicant-1",
		Profile:     createTestProfile(),
		Documents:   createTestDocuments(),
	})
	require.NoError(t, err)
	assert.Empty(t, output.Results)
	assert.False(t, output.Truncated)
}

func TestExecuteMissingProfile(t *testing.T) {
	h, _ := setupHandler(t)

	output, err := h.Execute(context.Background(), &Input{
		ProgramIDs: []string{"program-a"},
	})
	assert.Nil(t, output)

	stdErr, ok := err.(*commonerrors.StandardError)
	require.True(t, ok)
	assert.Equal(t, commonerrors.ErrCodeProfileMalformed, stdErr.Code)
}
