package recommend

// Result is one recommended university. Produced fresh per request and
// handed to the presentation layer; never persisted.
type Result struct {
	Name     string   `json:"name"`
	Fee      *float64 `json:"fee,omitempty"`
	Location string   `json:"location,omitempty"`
	Ranking  string   `json:"ranking,omitempty"`
	// Note explains, in relaxed mode, which loosened dimension the record
	// actually exercised ("may need foundation program", "£N over budget").
	Note string `json:"note,omitempty"`
}

// Presentation caps, applied after sorting. They are a presentation
// contract, not a matching contract.
const (
	strictResultCap  = 10
	relaxedResultCap = 15
	listResultCap    = 10
)
