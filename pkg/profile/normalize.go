package profile

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrUnparseable means no GPA or percentage could be read from the input.
// The caller should ask the student to rephrase rather than default anything.
var ErrUnparseable = errors.New("could not read a gpa or percentage from the input")

// AmbiguousValueError is returned when a number in GPA context falls into the
// percentage band (4.0, 100]. Policy: ask for clarification, never guess.
type AmbiguousValueError struct {
	Value float64
}

func (e AmbiguousValueError) Error() string {
	return fmt.Sprintf("value %g may be a percentage or an off-scale gpa; clarification needed", e.Value)
}

// OutOfRangeError is returned when a parsed value cannot be a GPA on the
// 0.0-4.0 scale nor a percentage.
type OutOfRangeError struct {
	Value float64
}

func (e OutOfRangeError) Error() string {
	return fmt.Sprintf("value %g is outside the 0.0-4.0 gpa range", e.Value)
}

// GPAResult is the outcome of normalizing free-form academic score input.
type GPAResult struct {
	GPA            float64
	FromPercentage bool
	Percentage     float64 // original value when FromPercentage is true
}

// Percentage phrasing is more specific than GPA phrasing and is scanned
// first, so that "my percentage is 70" is not captured by a loose GPA rule.
var percentPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%`),
	regexp.MustCompile(`(\d+(?:\.\d+)?)\s*percent(?:age)?`),
	regexp.MustCompile(`my\s*percentage\s*(?:is\s*)?(\d+(?:\.\d+)?)`),
	regexp.MustCompile(`percentage\s*(?:is\s*)?(\d+(?:\.\d+)?)`),
}

// GPA patterns, strictest first. The two-group rule reconstructs decimals the
// upstream tokenizer split apart ("2 . 8"). The bare-number rule goes last.
var gpaPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+(?:\.\d+)?)\s*gpa`),
	regexp.MustCompile(`gpa\s*(?:is\s*)?(\d+(?:\.\d+)?)`),
	regexp.MustCompile(`it'?s\s*(\d+(?:\.\d+)?)`),
	regexp.MustCompile(`my\s*gpa\s*(?:is\s*)?(\d+(?:\.\d+)?)`),
	regexp.MustCompile(`(\d+\.\d+)`),
	regexp.MustCompile(`(\d+)\s*\.\s*(\d+)`),
	regexp.MustCompile(`^(\d+(?:\.\d+)?)$`),
}

// NormalizeGPA turns raw user text and/or a previously parsed slot value into
// a canonical GPA on the 0.0-4.0 scale.
//
// Resolution order, first success wins:
//  1. the slot value, when present: (4,100] is converted as a percentage,
//     [0,4] is accepted as-is, anything else falls through to text scanning;
//  2. percentage-shaped phrases in the text;
//  3. GPA-shaped phrases, including tokenized decimals;
//  4. adjacent single-digit tokens ("2 8") recombined as a decimal.
//
// A bare number in (4,100] found in GPA context yields AmbiguousValueError.
// The function is pure; messaging the student is the caller's job.
func NormalizeGPA(raw string, slot *float64) (GPAResult, error) {
	if slot != nil {
		v := *slot
		switch {
		case v > 4.0 && v <= 100:
			return GPAResult{GPA: PercentageToGPA(v), FromPercentage: true, Percentage: v}, nil
		case v >= 0.0 && v <= 4.0:
			return GPAResult{GPA: v}, nil
		}
		// out of both ranges: fall through and try the text
	}

	text := strings.ToLower(strings.TrimSpace(raw))

	for _, re := range percentPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		p, err := strconv.ParseFloat(m[1], 64)
		if err != nil || p < 0 || p > 100 {
			continue
		}
		return GPAResult{GPA: PercentageToGPA(p), FromPercentage: true, Percentage: p}, nil
	}

	for _, re := range gpaPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if len(m) > 2 {
			// tokenized decimal: "<int> . <frac>"
			v, err := strconv.ParseFloat(m[1]+"."+m[2], 64)
			if err != nil {
				continue
			}
			return validated(v)
		}
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		if v > 4.0 && v <= 100 {
			return GPAResult{}, AmbiguousValueError{Value: v}
		}
		if v > 100 {
			return GPAResult{}, OutOfRangeError{Value: v}
		}
		return validated(v)
	}

	// Last resort: two adjacent digit tokens where the second is a single
	// digit ("2 8" meaning 2.8).
	tokens := strings.Fields(text)
	for i := 0; i+1 < len(tokens); i++ {
		if !isDigits(tokens[i]) || !isDigits(tokens[i+1]) || len(tokens[i+1]) != 1 {
			continue
		}
		v, err := strconv.ParseFloat(tokens[i]+"."+tokens[i+1], 64)
		if err != nil || v > 4.0 {
			continue
		}
		return validated(v)
	}

	return GPAResult{}, ErrUnparseable
}

func validated(gpa float64) (GPAResult, error) {
	if gpa < 0.0 || gpa > 4.0 {
		return GPAResult{}, OutOfRangeError{Value: gpa}
	}
	return GPAResult{GPA: gpa}, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ValidateIELTS checks the 0.0-9.0 band and echoes the offending value.
func ValidateIELTS(score float64) error {
	if score < 0.0 || score > 9.0 {
		return fmt.Errorf("ielts score %g is outside the 0.0-9.0 band", score)
	}
	return nil
}

var budgetCleaner = strings.NewReplacer("£", "", ",", "", " ", "")

// NormalizeBudget parses a budget amount written as "20000", "£20,000" etc.
func NormalizeBudget(raw string) (float64, error) {
	s := budgetCleaner.Replace(strings.TrimSpace(raw))
	if s == "" {
		return 0, ErrUnparseable
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%q is not a valid budget amount in GBP", raw)
	}
	return v, nil
}

var (
	ugKeywords = []string{"ug", "undergrad", "undergraduate", "bachelor", "bachelors"}
	pgKeywords = []string{"pg", "postgrad", "postgraduate", "masters", "master", "msc", "ma", "mba"}

	levelNonWord = regexp.MustCompile(`[^a-z0-9]+`)
)

// NormalizeStudyLevel maps free-text level descriptions onto ug/pg.
// Keywords match whole tokens only, so "ma" does not fire inside "diploma".
func NormalizeStudyLevel(raw string) (StudyLevel, bool) {
	text := levelNonWord.ReplaceAllString(strings.ToLower(raw), " ")
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return StudyLevelUnknown, false
	}
	has := func(keywords []string) bool {
		for _, t := range tokens {
			for _, k := range keywords {
				if t == k {
					return true
				}
			}
		}
		return false
	}
	if has(ugKeywords) {
		return StudyLevelUndergraduate, true
	}
	if has(pgKeywords) {
		return StudyLevelPostgraduate, true
	}
	return StudyLevelUnknown, false
}
