package nlp

import "strings"

// fieldAliases maps keywords found in free text to a display name for the
// field of study. Ordered: more specific phrases come before their
// substrings ("computer science" before "science", "data science" likewise).
var fieldAliases = []struct {
	keyword   string
	canonical string
}{
	{"computer science", "Computer Science"},
	{"data science", "Data Science"},
	{"software", "Software Engineering"},
	{"mechanical", "Mechanical Engineering"},
	{"civil", "Civil Engineering"},
	{"electrical", "Electrical Engineering"},
	{"engineering", "Engineering"},
	{"biotechnology", "Biotechnology"},
	{"accounting", "Accounting"},
	{"marketing", "Marketing"},
	{"management", "Management"},
	{"finance", "Finance"},
	{"business", "Business"},
	{"economics", "Economics"},
	{"psychology", "Psychology"},
	{"medicine", "Medicine"},
	{"pharmacy", "Pharmacy"},
	{"nursing", "Nursing"},
	{"law", "Law"},
	{"mba", "MBA"},
	{"mathematics", "Mathematics"},
	{"chemistry", "Chemistry"},
	{"physics", "Physics"},
	{"architecture", "Architecture"},
	{"design", "Design"},
	{"journalism", "Journalism"},
	{"media", "Media Studies"},
	{"education", "Education"},
	{"it", "Information Technology"},
}

// CanonicalField extracts a field of study mentioned in free text and returns
// its display name. The second result is false when nothing matched.
// Short keywords ("it", "law", "mba") must appear as whole words so they
// don't fire inside unrelated text.
func CanonicalField(text string) (string, bool) {
	folded := Fold(text)
	words := FoldedWords(text)
	for _, a := range fieldAliases {
		if len(a.keyword) <= 3 {
			if words[a.keyword] {
				return a.canonical, true
			}
			continue
		}
		if strings.Contains(folded, a.keyword) {
			return a.canonical, true
		}
	}
	return "", false
}
