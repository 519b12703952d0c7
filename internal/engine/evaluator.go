// internal/engine/evaluator.go

// Package engine computes eligibility reports. Evaluation is a pure function
// of the profile, the document holdings, the requirement set, the policy, and
// the evaluation time; the same inputs always produce the same report.
package engine

import (
	"strings"
	"time"

	"eligibility-workers/internal/engine/criteria"
	"eligibility-workers/internal/models"
)

// Evaluate scores one profile against one program's requirement set.
//
// Criteria that do not apply (unrestricted dimensions, insufficient data for
// study duration, incomparable grading systems) are excluded from both sides
// of the score, so a program that checks three things scores over those three
// only. An invalid requirement set never fails the call: it yields an
// INELIGIBLE report with ConfigInvalid set, because configuration mistakes
// belong to the program admin, not the applicant.
func Evaluate(profile *models.AcademicProfile, docs []models.DocumentHolding, req *models.RequirementSet, policy Policy, now time.Time) (*models.EligibilityReport, error) {
	if err := checkInputs(profile, req); err != nil {
		return nil, err
	}

	report := &models.EligibilityReport{
		ProgramID:   req.ProgramID,
		ProgramName: req.ProgramName,
		EvaluatedAt: now,
	}

	if err := req.Validate(); err != nil {
		report.Verdict = models.VerdictIneligible
		report.ConfigInvalid = true
		report.ConfigDetail = err.Error()
		return report, nil
	}

	latest := models.LatestByType(docs)

	results := []models.CriterionResult{
		criteria.EducationLevel(profile, req),
		criteria.GPA(profile, req),
		criteria.Documents(latest, req),
	}
	for _, test := range models.AllTestTypes {
		results = append(results, criteria.TestScore(test, profile, req))
	}
	results = append(results,
		criteria.WorkExperience(profile, req, now),
		criteria.Institution(profile, latest, req),
		criteria.Course(profile, latest, req),
		criteria.FundingType(latest, req),
		criteria.StudyDuration(latest, req),
		criteria.CompletionDate(latest, req, now),
	)

	var applicableWeight, satisfiedWeight float64
	for _, r := range results {
		if r.Status == models.StatusNotApplicable {
			continue
		}
		applicableWeight += r.Weight
		if r.Status == models.StatusSatisfied {
			satisfiedWeight += r.Weight
		}
	}

	// RequiredDocuments is never empty past Validate, so the documents
	// criterion always applies and the denominator is positive.
	score := 100 * satisfiedWeight / applicableWeight
	for i, r := range results {
		if r.Status == models.StatusSatisfied {
			results[i].Contribution = 100 * r.Weight / applicableWeight
		}
	}

	report.Score = score
	report.Criteria = results
	report.Verdict = verdict(results, score, policy)
	return report, nil
}

func verdict(results []models.CriterionResult, score float64, policy Policy) models.Verdict {
	anyFailed := false
	for _, r := range results {
		if r.Status != models.StatusNotSatisfied {
			continue
		}
		if policy.gates(r.Criterion) {
			return models.VerdictIneligible
		}
		anyFailed = true
	}

	if !anyFailed && score >= policy.EligibleScoreThreshold {
		return models.VerdictEligible
	}
	return models.VerdictPartial
}

func checkInputs(profile *models.AcademicProfile, req *models.RequirementSet) error {
	if profile == nil {
		return newInputError("profile", "must not be nil")
	}
	if strings.TrimSpace(profile.ApplicantID) == "" {
		return newInputError("profile.applicantId", "must not be empty")
	}
	if profile.EducationLevel == "" {
		return newInputError("profile.educationLevel", "must not be empty")
	}
	if req == nil {
		return newInputError("requirementSet", "must not be nil")
	}
	return nil
}
