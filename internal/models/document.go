// internal/models/document.go
package models

import "time"

// DocumentType classifies an uploaded document. Classification happens in the
// upload service; the engine only sees the resulting metadata.
type DocumentType string

const (
	DocPassportCopy         DocumentType = "PASSPORT_COPY"
	DocTranscript           DocumentType = "TRANSCRIPT"
	DocBirthCertificate     DocumentType = "BIRTH_CERTIFICATE"
	DocDegreeCertificate    DocumentType = "DEGREE_CERTIFICATE"
	DocCV                   DocumentType = "CV"
	DocRecommendationLetter DocumentType = "RECOMMENDATION_LETTER"
	DocStatementOfPurpose   DocumentType = "STATEMENT_OF_PURPOSE"
	DocFinancialStatement   DocumentType = "FINANCIAL_STATEMENT"
	DocEnglishCertificate   DocumentType = "ENGLISH_CERTIFICATE"
)

// FundingType is how the applicant intends to pay, as declared on a document.
type FundingType string

const (
	FundingSelf        FundingType = "SELF_FUNDED"
	FundingScholarship FundingType = "SCHOLARSHIP"
	FundingLoan        FundingType = "LOAN"
	FundingSponsor     FundingType = "SPONSOR"
	FundingGovernment  FundingType = "GOVERNMENT"
)

// DocumentMeta is the optional structured metadata attached to a document
// upload (e.g. the institution and course named on a transcript).
type DocumentMeta struct {
	Institution string      `json:"institution,omitempty"`
	Course      string      `json:"course,omitempty"`
	FundingType FundingType `json:"fundingType,omitempty"`
	StartDate   *time.Time  `json:"startDate,omitempty"`
	EndDate     *time.Time  `json:"endDate,omitempty"`
}

// DocumentHolding is one classified upload. Holdings are append-only; when the
// applicant re-uploads a type, the most recent upload wins for scoring.
type DocumentHolding struct {
	Type       DocumentType  `json:"type"`
	UploadedAt time.Time     `json:"uploadedAt"`
	Meta       *DocumentMeta `json:"meta,omitempty"`
}

// LatestByType reduces holdings to the scoring view: one document per type,
// most recent upload winning.
func LatestByType(docs []DocumentHolding) map[DocumentType]DocumentHolding {
	latest := make(map[DocumentType]DocumentHolding, len(docs))
	for _, d := range docs {
		if prev, ok := latest[d.Type]; !ok || d.UploadedAt.After(prev.UploadedAt) {
			latest[d.Type] = d
		}
	}
	return latest
}
