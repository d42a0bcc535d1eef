package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortByFee_UnknownLastAndStable(t *testing.T) {
	results := []Result{
		{Name: "No Fee A"},
		{Name: "Mid", Fee: floatPtr(18000)},
		{Name: "Cheap First", Fee: floatPtr(15000)},
		{Name: "Cheap Second", Fee: floatPtr(15000)},
		{Name: "No Fee B"},
	}
	sortByFee(results)

	assert.Equal(t, "Cheap First", results[0].Name)
	assert.Equal(t, "Cheap Second", results[1].Name) // tie keeps input order
	assert.Equal(t, "Mid", results[2].Name)
	assert.Equal(t, "No Fee A", results[3].Name)
	assert.Equal(t, "No Fee B", results[4].Name)
}

func TestTruncate(t *testing.T) {
	results := make([]Result, 12)
	assert.Len(t, truncate(results, 10), 10)
	assert.Len(t, truncate(results[:3], 10), 3)
}
