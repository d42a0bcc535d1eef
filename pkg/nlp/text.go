package nlp

import (
	"regexp"
	"strings"
)

var reSpaces = regexp.MustCompile(`\s+`)

// Fold lowercases a string and collapses whitespace runs. Catalog prose and
// user preferences are folded the same way before substring matching.
func Fold(s string) string {
	s = strings.ToLower(s)
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// ContainsFold reports whether needle occurs in hay, both folded.
func ContainsFold(hay, needle string) bool {
	if needle == "" {
		return false
	}
	return strings.Contains(Fold(hay), Fold(needle))
}

var reNonWord = regexp.MustCompile(`[^a-z0-9]+`)

// FoldedWords returns the set of lowercase word tokens in s.
func FoldedWords(s string) map[string]bool {
	words := make(map[string]bool)
	for _, w := range reNonWord.Split(Fold(s), -1) {
		if w != "" {
			words[w] = true
		}
	}
	return words
}

// ContainsAnyFold reports whether any of the needles occurs in hay, folded.
func ContainsAnyFold(hay string, needles []string) bool {
	folded := Fold(hay)
	for _, n := range needles {
		n = Fold(n)
		if n == "" {
			continue
		}
		if strings.Contains(folded, n) {
			return true
		}
	}
	return false
}
