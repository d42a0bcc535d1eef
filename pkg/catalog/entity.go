package catalog

// Requirements carries the admission/fee prose for each study level.
// The text is unstructured and may be empty or the literal "nan" (an
// artifact of the upstream spreadsheet conversion).
type Requirements struct {
	Undergraduate string `json:"undergraduate"`
	Postgraduate  string `json:"postgraduate"`
}

// University is one read-only catalog record. Name may itself embed a
// "Location: <city>" line; that quirk is part of the external data contract
// and is handled by LocationFromName.
type University struct {
	Name         string       `json:"name"`
	Location     string       `json:"location,omitempty"`
	Requirements Requirements `json:"requirements"`
	Ranking      string       `json:"ranking,omitempty"`
}

// Snapshot is an immutable, in-memory catalog. It is loaded once by the
// caller and shared read-only across requests; the engine never mutates it.
type Snapshot struct {
	Universities []University
}

// Len returns the number of records in the snapshot.
func (s Snapshot) Len() int { return len(s.Universities) }
