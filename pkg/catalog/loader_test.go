package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalogJSON = `{
  "universities": [
    {
      "name": "University of Greenwich\nLocation: Greenwich, United Kingdom",
      "requirements": {"undergraduate": "GPA 2.5 IELTS 6.0", "postgraduate": "Fee: 15500"},
      "ranking": "751-800"
    },
    {
      "name": "nan",
      "requirements": {"undergraduate": "", "postgraduate": ""}
    },
    {
      "name": "",
      "requirements": {"undergraduate": "Fee: 12000", "postgraduate": ""}
    },
    {
      "name": "Teesside University",
      "requirements": {"undergraduate": "nan", "postgraduate": "nan"}
    }
  ]
}`

func TestParseSnapshot(t *testing.T) {
	snap, err := ParseSnapshot(strings.NewReader(sampleCatalogJSON))
	require.NoError(t, err)

	// Unnamed and "nan" records are dropped at load time.
	require.Equal(t, 2, snap.Len())
	assert.Equal(t, "Teesside University", snap.Universities[1].Name)

	fee, ok := FeeFor(snap.Universities[0])
	require.True(t, ok)
	assert.InDelta(t, 15500, fee, 1e-9)
}

func TestParseSnapshot_BadJSON(t *testing.T) {
	_, err := ParseSnapshot(strings.NewReader("{not json"))
	assert.Error(t, err)
}

func TestParseSnapshot_EmptyCatalog(t *testing.T) {
	snap, err := ParseSnapshot(strings.NewReader(`{"universities": []}`))
	require.NoError(t, err)
	assert.Equal(t, 0, snap.Len())
}
