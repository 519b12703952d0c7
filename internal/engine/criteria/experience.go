// internal/engine/criteria/experience.go
package criteria

import (
	"fmt"
	"sort"
	"time"

	"eligibility-workers/internal/models"
)

// WorkExperience totals non-overlapping months across the profile's entries,
// treating current positions as open-ended through the evaluation time. With
// no configured minimum, any non-zero experience satisfies the requirement.
func WorkExperience(profile *models.AcademicProfile, req *models.RequirementSet, now time.Time) models.CriterionResult {
	if !req.WorkExperienceRequired {
		return notApplicable(models.CriterionWorkExperience, "program does not require work experience")
	}

	months := totalExperienceMonths(profile.WorkExperience, now)
	years := float64(months) / 12.0

	if req.MinimumWorkExperienceYears == nil {
		if months > 0 {
			return satisfied(models.CriterionWorkExperience,
				fmt.Sprintf("%.1f years of work experience recorded", years))
		}
		return notSatisfied(models.CriterionWorkExperience,
			"program requires work experience but none is recorded")
	}

	if years < *req.MinimumWorkExperienceYears {
		return notSatisfied(models.CriterionWorkExperience,
			fmt.Sprintf("%.1f years of work experience is below the required %.1f years",
				years, *req.MinimumWorkExperienceYears))
	}
	return satisfied(models.CriterionWorkExperience,
		fmt.Sprintf("%.1f years of work experience meets the required %.1f years",
			years, *req.MinimumWorkExperienceYears))
}

// totalExperienceMonths merges overlapping employment intervals before
// counting, so concurrent positions are not double counted.
func totalExperienceMonths(entries []models.WorkExperience, now time.Time) int {
	type interval struct{ start, end time.Time }

	var spans []interval
	for _, e := range entries {
		end := now
		if !e.Current && e.EndDate != nil {
			end = *e.EndDate
		}
		if e.StartDate.IsZero() || !end.After(e.StartDate) {
			continue
		}
		spans = append(spans, interval{start: e.StartDate, end: end})
	}
	if len(spans) == 0 {
		return 0
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].start.Before(spans[j].start) })

	merged := []interval{spans[0]}
	for _, s := range spans[1:] {
		last := &merged[len(merged)-1]
		if !s.start.After(last.end) {
			if s.end.After(last.end) {
				last.end = s.end
			}
			continue
		}
		merged = append(merged, s)
	}

	total := 0
	for _, m := range merged {
		total += wholeMonthsBetween(m.start, m.end)
	}
	return total
}

// wholeMonthsBetween counts completed calendar months from start to end.
func wholeMonthsBetween(start, end time.Time) int {
	if !end.After(start) {
		return 0
	}
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if end.Day() < start.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}
