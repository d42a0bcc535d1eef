package catalog

import (
	"regexp"
	"strconv"
	"strings"
)

// Fee extraction cascade, strictest first. Order matters: a number the label
// pattern attributes correctly could be misread by the magnitude fallback.
var (
	feeLabelRe    = regexp.MustCompile(`(?i)fee:?\s*(\d+)`)
	feeCurrencyRe = regexp.MustCompile(`(?i)£\s*(\d+)|(\d+)\s*gbp`)
	feeNumberRe   = regexp.MustCompile(`\b(\d{5,6})\b`)
)

// Plausible annual tuition band for the magnitude fallback: an unlabelled
// 5-6 digit number in admissions prose within this band is taken as a fee.
const (
	feeBandLow  = 10000
	feeBandHigh = 50000
)

// isBlank reports whether requirement text carries no information.
func isBlank(text string) bool {
	switch strings.TrimSpace(text) {
	case "", "nan", "NaN":
		return true
	}
	return false
}

// ExtractFee scans unstructured requirement text for a tuition fee.
// Cascade, first match wins:
//  1. an explicit "Fee: <n>" label;
//  2. a number with a currency glyph before it or a currency code after it;
//  3. a standalone 5-6 digit number inside the plausible tuition band.
//
// Returns false when no candidate is found. Never errors: malformed text is
// simply "not found".
func ExtractFee(text string) (float64, bool) {
	if isBlank(text) {
		return 0, false
	}
	if m := feeLabelRe.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return v, true
		}
	}
	if m := feeCurrencyRe.FindStringSubmatch(text); m != nil {
		digits := m[1]
		if digits == "" {
			digits = m[2]
		}
		if v, err := strconv.ParseFloat(digits, 64); err == nil {
			return v, true
		}
	}
	for _, m := range feeNumberRe.FindAllStringSubmatch(text, -1) {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		if v >= feeBandLow && v <= feeBandHigh {
			return v, true
		}
	}
	return 0, false
}

// FeeFor extracts the tuition fee for a record, preferring postgraduate
// prose over undergraduate (the upstream data lists fees there first).
func FeeFor(u University) (float64, bool) {
	text := u.Requirements.Postgraduate
	if isBlank(text) {
		text = u.Requirements.Undergraduate
	}
	return ExtractFee(text)
}

// ExtractMinimum finds the first number token following a test-name token
// (e.g. "GPA", "IELTS") in requirement text. The token match is exact, as
// the catalog consistently uppercases test names. A missing token or a
// malformed number yields false, never an error.
func ExtractMinimum(text, token string) (float64, bool) {
	if isBlank(text) || token == "" {
		return 0, false
	}
	idx := strings.Index(text, token)
	if idx < 0 {
		return 0, false
	}
	rest := strings.Fields(text[idx+len(token):])
	if len(rest) == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimFunc(rest[0], isNumericPadding), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func isNumericPadding(r rune) bool {
	return !(r >= '0' && r <= '9') && r != '.'
}

var (
	locationLineRe = regexp.MustCompile(`Location:\s*([^\n]+)`)
	ukSuffixRe     = regexp.MustCompile(`,\s*(?:United Kingdom|UK).*$`)
)

// knownCities are scanned as a fallback when the name has no Location line.
var knownCities = []string{
	"London", "Manchester", "Birmingham", "Liverpool", "Leeds", "Sheffield",
	"Bristol", "Nottingham", "Southampton", "Portsmouth", "Brighton",
	"Leicester", "Coventry", "Derby", "Huddersfield", "Greenwich",
	"Hertfordshire", "Hatfield", "Kent", "Essex",
}

// LocationFromName pulls a city out of a catalog name. Some upstream records
// embed "Location: <city>, United Kingdom" inside the name field; others
// just mention the city. Returns "" when nothing is recognizable.
func LocationFromName(name string) string {
	if name == "" {
		return ""
	}
	if m := locationLineRe.FindStringSubmatch(name); m != nil {
		loc := strings.TrimSpace(m[1])
		return strings.TrimSpace(ukSuffixRe.ReplaceAllString(loc, ""))
	}
	for _, city := range knownCities {
		if strings.Contains(name, city) {
			return city
		}
	}
	return ""
}

// DisplayName trims a record name to its first line, dropping any embedded
// location block.
func DisplayName(name string) string {
	line, _, _ := strings.Cut(name, "\n")
	return strings.TrimSpace(line)
}

// CombinedRequirements joins both study-level texts for keyword scans.
func CombinedRequirements(u University) string {
	return u.Requirements.Postgraduate + "\n" + u.Requirements.Undergraduate
}
