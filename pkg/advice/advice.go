// Package advice serves static guidance data: the document checklist for
// UK applications and the official living-cost estimates.
package advice

import (
	"encoding/json"
	"io"
	"os"
)

// CostBand holds UKVI living-cost estimates for one region.
type CostBand struct {
	Student9MonthsGBP float64 `json:"student_9_months_gbp"`
	StudentMonthlyGBP float64 `json:"student_monthly_gbp"`
}

type LivingCost struct {
	InsideLondon  CostBand `json:"inside_london"`
	OutsideLondon CostBand `json:"outside_london"`
}

// Checklist is the full guidance document.
type Checklist struct {
	LivingCost        LivingCost `json:"living_cost"`
	DocumentChecklist []string   `json:"document_checklist"`
}

// Parse decodes checklist JSON from r.
func Parse(r io.Reader) (Checklist, error) {
	var c Checklist
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return Checklist{}, err
	}
	return c, nil
}

// Load reads and decodes the checklist file at path.
func Load(path string) (Checklist, error) {
	f, err := os.Open(path)
	if err != nil {
		return Checklist{}, err
	}
	defer f.Close()
	return Parse(f)
}
