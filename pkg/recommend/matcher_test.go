package recommend

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sabin7k/ukstudy/pkg/catalog"
	"github.com/sabin7k/ukstudy/pkg/profile"
)

func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

// testCatalog mirrors the shape of the production snapshot: three records
// with fees 15000/18000/25000, one of them demanding GPA 3.7.
func testCatalog() catalog.Snapshot {
	return catalog.Snapshot{Universities: []catalog.University{
		{
			Name: "City University of London\nLocation: London, United Kingdom",
			Requirements: catalog.Requirements{
				Undergraduate: "GPA 3.7 IELTS 7.0",
				Postgraduate:  "Fee: 15000",
			},
		},
		{
			Name: "Teesside University\nLocation: Middlesbrough, United Kingdom",
			Requirements: catalog.Requirements{
				Undergraduate: "GPA 2.5 IELTS 6.0",
				Postgraduate:  "Fee: 18000",
			},
		},
		{
			Name: "University of Bristol\nLocation: Bristol, United Kingdom",
			Requirements: catalog.Requirements{
				Undergraduate: "GPA 3.0 IELTS 6.5",
				Postgraduate:  "Fee: 25000",
			},
		},
	}}
}

func TestMatchStrict_EndToEnd(t *testing.T) {
	p := profile.Profile{
		GPA:          floatPtr(3.5),
		IELTS:        floatPtr(6.5),
		BudgetGBP:    floatPtr(20000),
		LocationPref: "outside london",
		StudyLevel:   profile.StudyLevelPostgraduate,
	}
	// London record is excluded by location (and by its GPA 3.7 demand);
	// the 25000 record busts the budget; only the 18000 record remains.
	results := MatchStrict(p, testCatalog())
	require.Len(t, results, 1)
	assert.Equal(t, "Teesside University", results[0].Name)
	require.NotNil(t, results[0].Fee)
	assert.InDelta(t, 18000, *results[0].Fee, 1e-9)
	assert.Equal(t, "Middlesbrough", results[0].Location)
	assert.Empty(t, results[0].Note)
}

func TestMatchStrict_GPAAbsentExcludesEverything(t *testing.T) {
	p := profile.Profile{BudgetGBP: floatPtr(30000)}
	assert.Empty(t, MatchStrict(p, testCatalog()))
}

func TestMatchStrict_BudgetInvariant(t *testing.T) {
	budget := 20000.0
	p := profile.Profile{GPA: floatPtr(4.0), BudgetGBP: &budget}
	for _, r := range MatchStrict(p, testCatalog()) {
		if r.Fee != nil {
			assert.LessOrEqual(t, *r.Fee, budget, r.Name)
		}
	}
}

func TestMatchStrict_UnknownFeePassesBudget(t *testing.T) {
	snap := catalog.Snapshot{Universities: []catalog.University{
		{
			Name:         "University of Nowhere",
			Requirements: catalog.Requirements{Undergraduate: "GPA 2.5", Postgraduate: "nan"},
		},
	}}
	p := profile.Profile{GPA: floatPtr(3.0), BudgetGBP: floatPtr(100)}
	results := MatchStrict(p, snap)
	require.Len(t, results, 1)
	assert.Nil(t, results[0].Fee)
}

func TestMatchStrict_EnglishScoreBelowMinimumExcludes(t *testing.T) {
	p := profile.Profile{GPA: floatPtr(3.0), IELTS: floatPtr(5.0)}
	results := MatchStrict(p, testCatalog())
	assert.Empty(t, results)
}

func TestMatchStrict_EnglishWaiverOverridesScores(t *testing.T) {
	p := profile.Profile{GPA: floatPtr(3.0), IELTS: floatPtr(5.0), EnglishWaiver: boolPtr(true)}
	results := MatchStrict(p, testCatalog())
	assert.NotEmpty(t, results)
}

func TestMatchStrict_AbsentEnglishScoresNeverBlock(t *testing.T) {
	p := profile.Profile{GPA: floatPtr(3.0)}
	results := MatchStrict(p, testCatalog())
	// GPA 3.0 clears Teesside (2.5) and Bristol (3.0) but not City (3.7).
	require.Len(t, results, 2)
	assert.Equal(t, "Teesside University", results[0].Name)
	assert.Equal(t, "University of Bristol", results[1].Name)
}

func TestMatchStrict_LondonPartition(t *testing.T) {
	p := profile.Profile{GPA: floatPtr(4.0), IELTS: floatPtr(7.5), LocationPref: "london"}
	results := MatchStrict(p, testCatalog())
	require.Len(t, results, 1)
	assert.Equal(t, "City University of London", results[0].Name)
}

func TestMatchStrict_FieldPreference(t *testing.T) {
	snap := catalog.Snapshot{Universities: []catalog.University{
		{
			Name:         "Imperial Technical Institute",
			Requirements: catalog.Requirements{Undergraduate: "GPA 2.5 Computer Science programmes, Fee: 16000"},
		},
		{
			Name:         "Riverside Arts College",
			Requirements: catalog.Requirements{Undergraduate: "GPA 2.5 Fine Arts, Fee: 14000"},
		},
	}}
	p := profile.Profile{GPA: floatPtr(3.0), FieldOfStudy: "computer science"}
	results := MatchStrict(p, snap)
	require.Len(t, results, 1)
	assert.Equal(t, "Imperial Technical Institute", results[0].Name)
}

func TestMatchStrict_EmptyCatalog(t *testing.T) {
	p := profile.Profile{GPA: floatPtr(3.0)}
	assert.Empty(t, MatchStrict(p, catalog.Snapshot{}))
}

func TestMatchStrict_Deterministic(t *testing.T) {
	p := profile.Profile{GPA: floatPtr(3.5), BudgetGBP: floatPtr(30000)}
	first := MatchStrict(p, testCatalog())
	second := MatchStrict(p, testCatalog())
	assert.Equal(t, first, second)
}

// Relaxing a single predicate must never shrink the match set.
func TestMatchStrict_MonotonicInPermissiveness(t *testing.T) {
	base := profile.Profile{
		GPA:          floatPtr(3.0),
		IELTS:        floatPtr(6.0),
		BudgetGBP:    floatPtr(20000),
		LocationPref: "outside london",
		FieldOfStudy: "engineering",
	}
	relaxations := []profile.Profile{
		{GPA: base.GPA, IELTS: base.IELTS, BudgetGBP: base.BudgetGBP, LocationPref: base.LocationPref}, // drop field
		{GPA: base.GPA, IELTS: base.IELTS, BudgetGBP: base.BudgetGBP, FieldOfStudy: base.FieldOfStudy}, // drop location
		{GPA: base.GPA, IELTS: base.IELTS, LocationPref: base.LocationPref, FieldOfStudy: base.FieldOfStudy}, // drop budget
		{GPA: base.GPA, BudgetGBP: base.BudgetGBP, LocationPref: base.LocationPref, FieldOfStudy: base.FieldOfStudy}, // drop english
	}
	strictCount := len(MatchStrict(base, testCatalog()))
	for i, relaxed := range relaxations {
		assert.GreaterOrEqual(t, len(MatchStrict(relaxed, testCatalog())), strictCount,
			"relaxation %d shrank the match set", i)
	}
}

func TestMatchRelaxed_BudgetTolerance(t *testing.T) {
	// Budget 15000 stretches to 16500: the 18000 and 25000 records stay out,
	// the 15000 record survives with a foundation note (GPA 1.8 < 3.7).
	p := profile.Profile{GPA: floatPtr(1.8), BudgetGBP: floatPtr(15000)}
	results := MatchRelaxed(p, testCatalog())
	require.Len(t, results, 1)
	assert.Equal(t, "City University of London", results[0].Name)
	assert.Contains(t, results[0].Note, "may need foundation program")
}

func TestMatchRelaxed_OverBudgetNote(t *testing.T) {
	p := profile.Profile{GPA: floatPtr(3.9), BudgetGBP: floatPtr(17000)}
	results := MatchRelaxed(p, testCatalog())
	// 18000 fits within 17000*1.1=18700 and is annotated with the overshoot.
	var teesside *Result
	for i := range results {
		if results[i].Name == "Teesside University" {
			teesside = &results[i]
		}
	}
	require.NotNil(t, teesside)
	assert.Contains(t, teesside.Note, "£1000 over budget")
}

func TestMatchRelaxed_DropsEnglishAndField(t *testing.T) {
	p := profile.Profile{GPA: floatPtr(2.2), IELTS: floatPtr(4.0), FieldOfStudy: "astrogation"}
	results := MatchRelaxed(p, testCatalog())
	assert.Len(t, results, 3)
}

func TestMatchRelaxed_Cap(t *testing.T) {
	var unis []catalog.University
	for i := 0; i < 40; i++ {
		unis = append(unis, catalog.University{
			Name:         fmt.Sprintf("University %02d", i),
			Requirements: catalog.Requirements{Postgraduate: fmt.Sprintf("Fee: %d", 12000+i*100)},
		})
	}
	results := MatchRelaxed(profile.Profile{}, catalog.Snapshot{Universities: unis})
	assert.Len(t, results, 15)
}

func TestMatchesByBudget(t *testing.T) {
	results := MatchesByBudget(20000, testCatalog())
	require.Len(t, results, 2)
	assert.InDelta(t, 15000, *results[0].Fee, 1e-9)
	assert.InDelta(t, 18000, *results[1].Fee, 1e-9)
}

func TestWaiverFriendly(t *testing.T) {
	snap := catalog.Snapshot{Universities: []catalog.University{
		{
			Name:         "Coventry University",
			Requirements: catalog.Requirements{Undergraduate: "IELTS waiver available with MOI, Fee: 14500"},
		},
		{
			Name:         "Strict Tests University",
			Requirements: catalog.Requirements{Undergraduate: "IELTS 7.0 mandatory, Fee: 13000"},
		},
	}}
	results := WaiverFriendly(snap)
	require.Len(t, results, 1)
	assert.Equal(t, "Coventry University", results[0].Name)
}

func TestMostAffordable_SortsAndSkipsUnknownFees(t *testing.T) {
	snap := testCatalog()
	snap.Universities = append(snap.Universities, catalog.University{
		Name:         "No Fee Data University",
		Requirements: catalog.Requirements{Undergraduate: "GPA 2.5"},
	})
	results := MostAffordable(snap)
	require.Len(t, results, 3)
	assert.InDelta(t, 15000, *results[0].Fee, 1e-9)
	assert.InDelta(t, 25000, *results[2].Fee, 1e-9)
}
