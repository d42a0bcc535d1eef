package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	assert.Equal(t, "university of london", Fold("  University   of\tLONDON "))
	assert.Equal(t, "", Fold("   "))
}

func TestContainsFold(t *testing.T) {
	assert.True(t, ContainsFold("University of Bristol", "BRISTOL"))
	assert.False(t, ContainsFold("University of Bristol", "london"))
	assert.False(t, ContainsFold("anything", ""))
}

func TestContainsAnyFold(t *testing.T) {
	assert.True(t, ContainsAnyFold("IELTS waiver available", []string{"moi", "waiver"}))
	assert.False(t, ContainsAnyFold("IELTS required", []string{"moi", "waiver"}))
	assert.False(t, ContainsAnyFold("text", nil))
}

func TestFoldedWords(t *testing.T) {
	words := FoldedWords("I want to study IT, not law.")
	assert.True(t, words["it"])
	assert.True(t, words["law"])
	assert.False(t, words["university"])
}

func TestCanonicalField(t *testing.T) {
	cases := map[string]string{
		"I want to study computer science in the UK": "Computer Science",
		"looking for a data science masters":         "Data Science",
		"interested in an MBA":                       "MBA",
		"software development roles":                 "Software Engineering",
		"civil engineering please":                   "Civil Engineering",
	}
	for text, want := range cases {
		got, ok := CanonicalField(text)
		assert.True(t, ok, text)
		assert.Equal(t, want, got, text)
	}
}

func TestCanonicalField_ShortKeywordsNeedWholeWords(t *testing.T) {
	// "it" must not fire inside other words.
	_, ok := CanonicalField("university choices")
	assert.False(t, ok)

	got, ok := CanonicalField("I want to study IT")
	assert.True(t, ok)
	assert.Equal(t, "Information Technology", got)
}

func TestCanonicalField_NoMatch(t *testing.T) {
	_, ok := CanonicalField("tell me about the weather")
	assert.False(t, ok)
}
