package profile

// StudyLevel is the requested programme level.
type StudyLevel string

const (
	StudyLevelUnknown       StudyLevel = ""
	StudyLevelUndergraduate StudyLevel = "ug"
	StudyLevelPostgraduate  StudyLevel = "pg"
)

// Profile is a student's (partially filled) application profile.
// Every field is optional: a nil pointer means "not provided", and the
// matching predicates treat missing data as non-constraining unless
// stated otherwise. The profile is built once per request and is never
// mutated by the engine.
type Profile struct {
	GPA            *float64   `json:"gpa,omitempty"`
	IELTS          *float64   `json:"ielts,omitempty"`
	PTE            *float64   `json:"pte,omitempty"`
	TOEFL          *float64   `json:"toefl,omitempty"`
	EnglishWaiver  *bool      `json:"englishWaiver,omitempty"`
	MOICertificate *bool      `json:"moiCertificate,omitempty"`
	BudgetGBP      *float64   `json:"budgetGbp,omitempty"`
	LocationPref   string     `json:"locationPref,omitempty"`
	StudyLevel     StudyLevel `json:"studyLevel,omitempty"`
	FieldOfStudy   string     `json:"fieldOfStudy,omitempty"`
}

// HasEnglishProof reports whether any form of English proficiency evidence
// is present on the profile (score, waiver or MOI certificate).
func (p Profile) HasEnglishProof() bool {
	if p.IELTS != nil || p.PTE != nil || p.TOEFL != nil {
		return true
	}
	if p.EnglishWaiver != nil && *p.EnglishWaiver {
		return true
	}
	if p.MOICertificate != nil && *p.MOICertificate {
		return true
	}
	return false
}
