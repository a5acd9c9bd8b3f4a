package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymptomCatalogShape(t *testing.T) {
	require.Len(t, SymptomCatalog, 10)

	seen := map[string]bool{}
	categories := map[string]bool{}
	for _, s := range SymptomCatalog {
		assert.False(t, seen[s.Key], "duplicate key %s", s.Key)
		seen[s.Key] = true
		assert.NotEmpty(t, s.Label)
		categories[s.Category] = true
	}
	assert.Len(t, categories, 5)

	// the score ceiling follows the catalog, not a hardcoded count
	assert.Equal(t, SeverityMax*len(SymptomCatalog), MaxScore)
	assert.Equal(t, 30, MaxScore)
}

func TestSymptomByKey(t *testing.T) {
	s, ok := SymptomByKey("hotFlashes")
	require.True(t, ok)
	assert.Equal(t, "Hot flashes", s.Label)

	_, ok = SymptomByKey("headache")
	assert.False(t, ok)

	assert.True(t, IsSymptomKey("libido"))
	assert.False(t, IsSymptomKey(""))
}

func TestSymptomsByCategoryCoversCatalog(t *testing.T) {
	groups := SymptomsByCategory()
	total := 0
	for _, g := range groups {
		assert.NotEmpty(t, g.Category)
		total += len(g.Symptoms)
	}
	assert.Equal(t, len(SymptomCatalog), total)
	// first group follows catalog order
	require.NotEmpty(t, groups)
	assert.Equal(t, CategoryVasomotor, groups[0].Category)
}

func TestClampSeverity(t *testing.T) {
	// in-range values are unchanged
	for v := 0; v <= 3; v++ {
		assert.Equal(t, v, ClampSeverity(v))
	}
	assert.Equal(t, 0, ClampSeverity(-1))
	assert.Equal(t, 3, ClampSeverity(5))
	assert.Equal(t, 3, ClampSeverity(100))
}
