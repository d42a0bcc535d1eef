package recommend

import (
	"strings"

	"github.com/sabin7k/ukstudy/pkg/catalog"
	"github.com/sabin7k/ukstudy/pkg/nlp"
	"github.com/sabin7k/ukstudy/pkg/profile"
)

// Catalog records without an extractable GPA minimum are held to this bar.
const defaultMinGPA = 2.5

// meetsGPA is the primary eligibility gate: a profile without a GPA is
// excluded, everything else is compared against the record's stated minimum.
func meetsGPA(u catalog.University, gpa *float64) bool {
	if gpa == nil {
		return false
	}
	min, ok := catalog.ExtractMinimum(u.Requirements.Undergraduate, "GPA")
	if !ok {
		min = defaultMinGPA
	}
	return *gpa >= min
}

// englishTests pairs profile scores with the catalog token naming the test.
func englishTests(p profile.Profile) []struct {
	score *float64
	token string
} {
	return []struct {
		score *float64
		token string
	}{
		{p.IELTS, "IELTS"},
		{p.PTE, "PTE"},
		{p.TOEFL, "TOEFL"},
	}
}

// meetsEnglish passes on a waiver or MOI certificate, or when any provided
// test score meets the record's stated minimum for that test. Absent scores
// never block: a student still gathering documents is not excluded. The
// predicate fails only when scores were provided, the record states minimums
// for them, and none is met.
func meetsEnglish(u catalog.University, p profile.Profile) bool {
	if !p.HasEnglishProof() {
		return true
	}
	if truthy(p.EnglishWaiver) || truthy(p.MOICertificate) {
		return true
	}
	ug := u.Requirements.Undergraduate
	constrained := false
	for _, t := range englishTests(p) {
		if t.score == nil {
			continue
		}
		min, ok := catalog.ExtractMinimum(ug, t.token)
		if !ok {
			continue
		}
		constrained = true
		if *t.score >= min {
			return true
		}
	}
	return !constrained
}

// withinBudget passes when the budget is unconstrained, the fee is unknown,
// or the fee fits. tolerance scales the budget (1.0 strict, 1.1 relaxed).
func withinBudget(u catalog.University, budget *float64, tolerance float64) bool {
	if budget == nil {
		return true
	}
	fee, ok := catalog.FeeFor(u)
	if !ok {
		return true
	}
	return fee <= *budget*tolerance
}

// matchesLocation treats "london" and "outside london" as whole-catalog
// partitions; any other preference is a plain substring match against the
// record's name and location. "outside london" is checked first since the
// phrase contains "london".
func matchesLocation(u catalog.University, pref string) bool {
	pref = nlp.Fold(pref)
	if pref == "" {
		return true
	}
	name := nlp.Fold(u.Name)
	loc := nlp.Fold(u.Location)
	switch {
	case strings.Contains(pref, "outside london"):
		return !strings.Contains(name, "london") && !strings.Contains(loc, "london")
	case strings.Contains(pref, "london"):
		return strings.Contains(name, "london") || strings.Contains(loc, "london")
	default:
		return strings.Contains(name, pref) || strings.Contains(loc, pref)
	}
}

// meetsStudyLevel is intentionally permissive: the catalog is
// programme-agnostic, so a level preference never excludes a record.
func meetsStudyLevel(_ catalog.University, _ profile.StudyLevel) bool {
	return true
}

// matchesField passes when no field preference was given, or when the field
// appears in the record's name or requirement prose.
func matchesField(u catalog.University, field string) bool {
	if strings.TrimSpace(field) == "" {
		return true
	}
	return nlp.ContainsFold(u.Name, field) ||
		nlp.ContainsFold(catalog.CombinedRequirements(u), field)
}

func truthy(b *bool) bool {
	return b != nil && *b
}
