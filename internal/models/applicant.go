// internal/models/applicant.go
package models

import "time"

// EducationLevel is the applicant's highest completed (or current) level of study.
type EducationLevel string

const (
	EducationHighSchool    EducationLevel = "HIGH_SCHOOL"
	EducationDiploma       EducationLevel = "DIPLOMA"
	EducationUndergraduate EducationLevel = "UNDERGRADUATE"
	EducationMasters       EducationLevel = "MASTERS"
	EducationDoctorate     EducationLevel = "DOCTORATE"
)

// GradingSystem identifies the scale a GPA value was recorded on.
type GradingSystem string

const (
	GradingPercentage GradingSystem = "PERCENTAGE"
	GradingGPA4       GradingSystem = "GPA_4"
	GradingGPA5       GradingSystem = "GPA_5"
	GradingCGPA10     GradingSystem = "CGPA_10"
	GradingLetter     GradingSystem = "LETTER"
	GradingWASSCE     GradingSystem = "WASSCE"
	GradingUKClass    GradingSystem = "UK_CLASS"
	GradingOther      GradingSystem = "OTHER"
)

// TestType is a standardized test the applicant may have taken.
type TestType string

const (
	TestTOEFL    TestType = "TOEFL"
	TestIELTS    TestType = "IELTS"
	TestDuolingo TestType = "DUOLINGO"
	TestPTE      TestType = "PTE"
	TestSAT      TestType = "SAT"
	TestACT      TestType = "ACT"
	TestGRE      TestType = "GRE"
	TestGMAT     TestType = "GMAT"
)

// AllTestTypes lists every supported test in a stable order.
var AllTestTypes = []TestType{
	TestTOEFL, TestIELTS, TestDuolingo, TestPTE,
	TestSAT, TestACT, TestGRE, TestGMAT,
}

// GPA is a grade value together with the scale it was recorded on.
// Grade carries the letter/band for ordinal systems (LETTER, WASSCE, UK_CLASS);
// Value carries the number for numeric systems.
type GPA struct {
	Value  float64       `json:"value"`
	Grade  string        `json:"grade,omitempty"`
	System GradingSystem `json:"system"`
}

// WorkExperience is one employment entry on the applicant's profile.
// Current marks an open-ended position; EndDate is nil in that case.
type WorkExperience struct {
	Company     string     `json:"company"`
	Title       string     `json:"title"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Current     bool       `json:"current"`
	Description string     `json:"description,omitempty"`
}

// AcademicProfile is the applicant's declared education facts as collected by
// the profile wizard. The engine never mutates it.
type AcademicProfile struct {
	ApplicantID        string               `json:"applicantId"`
	EducationLevel     EducationLevel       `json:"educationLevel"`
	FieldOfStudy       string               `json:"fieldOfStudy,omitempty"`
	GPA                *GPA                 `json:"gpa,omitempty"`
	Institution        string               `json:"institution,omitempty"`
	TestScores         map[TestType]float64 `json:"testScores,omitempty"`
	WorkExperience     []WorkExperience     `json:"workExperience,omitempty"`
	PreferredCountries []string             `json:"preferredCountries,omitempty"`
	UpdatedAt          time.Time            `json:"updatedAt"`
}
