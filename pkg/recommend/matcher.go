package recommend

import (
	"fmt"
	"strings"

	"github.com/sabin7k/ukstudy/pkg/catalog"
	"github.com/sabin7k/ukstudy/pkg/profile"
)

// Relaxed-mode constants: the budget stretch factor and the GPA bar below
// which a surviving record always carries a foundation-programme note.
const (
	relaxedBudgetTolerance = 1.10
	relaxedGPAFloor        = 2.0
)

// MatchStrict runs every predicate unmodified over the snapshot and returns
// matches sorted ascending by fee (unknown fees last), capped at 10.
// An empty snapshot or an empty profile yields an empty slice, not an error.
func MatchStrict(p profile.Profile, snap catalog.Snapshot) []Result {
	results := make([]Result, 0, len(snap.Universities))
	for _, u := range snap.Universities {
		if !meetsGPA(u, p.GPA) {
			continue
		}
		if !meetsEnglish(u, p) {
			continue
		}
		if !withinBudget(u, p.BudgetGBP, 1.0) {
			continue
		}
		if !matchesLocation(u, p.LocationPref) {
			continue
		}
		if !meetsStudyLevel(u, p.StudyLevel) {
			continue
		}
		if !matchesField(u, p.FieldOfStudy) {
			continue
		}
		results = append(results, buildResult(u, ""))
	}
	sortByFee(results)
	return truncate(results, strictResultCap)
}

// MatchRelaxed trades strictness for recall when strict matching comes back
// empty (or on explicit request). English, study-level and field predicates
// are dropped; the budget stretches by 10%; a low GPA no longer excludes a
// record but annotates it instead. Location preference still applies.
// Capped at 15 after sorting.
func MatchRelaxed(p profile.Profile, snap catalog.Snapshot) []Result {
	results := make([]Result, 0, len(snap.Universities))
	for _, u := range snap.Universities {
		if !withinBudget(u, p.BudgetGBP, relaxedBudgetTolerance) {
			continue
		}
		if !matchesLocation(u, p.LocationPref) {
			continue
		}
		results = append(results, buildResult(u, relaxationNote(u, p)))
	}
	sortByFee(results)
	return truncate(results, relaxedResultCap)
}

// relaxationNote describes which relaxed dimension a record actually
// exercised. It reuses the same extraction functions as strict matching so
// the note can never disagree with the predicates.
func relaxationNote(u catalog.University, p profile.Profile) string {
	var notes []string
	if p.GPA != nil {
		min, ok := catalog.ExtractMinimum(u.Requirements.Undergraduate, "GPA")
		if ok && *p.GPA < min {
			notes = append(notes, "may need foundation program")
		} else if !ok && *p.GPA < relaxedGPAFloor {
			notes = append(notes, "may need foundation program")
		}
	}
	if p.BudgetGBP != nil {
		if fee, ok := catalog.FeeFor(u); ok && fee > *p.BudgetGBP {
			notes = append(notes, fmt.Sprintf("£%.0f over budget", fee-*p.BudgetGBP))
		}
	}
	return strings.Join(notes, ", ")
}

// MatchesByBudget answers "what can I afford" without a full profile:
// records with a known fee at or under the budget, cheapest first, capped.
func MatchesByBudget(budget float64, snap catalog.Snapshot) []Result {
	results := make([]Result, 0, len(snap.Universities))
	for _, u := range snap.Universities {
		fee, ok := catalog.FeeFor(u)
		if !ok || fee > budget {
			continue
		}
		results = append(results, buildResult(u, ""))
	}
	sortByFee(results)
	return truncate(results, listResultCap)
}

// waiverKeywords mark requirement prose that mentions an alternative to a
// standard English test.
var waiverKeywords = []string{
	"waiver", "english waiver", "moi", "medium of instruction", "duolingo",
	"oxford test", "ielts waiver", "apply without ielts", "languagecert",
	"university test",
}

// WaiverFriendly lists records whose requirement text mentions an English
// waiver or MOI acceptance, sorted by fee then name.
func WaiverFriendly(snap catalog.Snapshot) []Result {
	results := make([]Result, 0, len(snap.Universities))
	for _, u := range snap.Universities {
		text := strings.ToLower(catalog.CombinedRequirements(u))
		if !containsAny(text, waiverKeywords) {
			continue
		}
		results = append(results, buildResult(u, ""))
	}
	sortByFeeThenName(results)
	return truncate(results, listResultCap)
}

// MostAffordable lists every record with an extractable fee, cheapest first.
func MostAffordable(snap catalog.Snapshot) []Result {
	results := make([]Result, 0, len(snap.Universities))
	for _, u := range snap.Universities {
		if _, ok := catalog.FeeFor(u); !ok {
			continue
		}
		results = append(results, buildResult(u, ""))
	}
	sortByFee(results)
	return truncate(results, listResultCap)
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

func buildResult(u catalog.University, note string) Result {
	var feePtr *float64
	if fee, ok := catalog.FeeFor(u); ok {
		f := fee
		feePtr = &f
	}
	loc := catalog.LocationFromName(u.Name)
	if loc == "" {
		loc = u.Location
	}
	return Result{
		Name:     catalog.DisplayName(u.Name),
		Fee:      feePtr,
		Location: loc,
		Ranking:  u.Ranking,
		Note:     note,
	}
}
