package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDateKey(t *testing.T) {
	assert.True(t, IsDateKey("2024-01-31"))
	assert.True(t, IsDateKey("1999-12-01"))

	assert.False(t, IsDateKey("2024-1-31"))
	assert.False(t, IsDateKey("2024-13-40"))
	assert.False(t, IsDateKey("2024-02-30"))
	assert.False(t, IsDateKey("20240131"))
	assert.False(t, IsDateKey(""))
}

func TestSymptomValuesSum(t *testing.T) {
	sv := SymptomValues{"hotFlashes": 3, "mood": 2}
	assert.Equal(t, 5, sv.Sum())

	// unknown keys never contribute
	sv["headache"] = 3
	assert.Equal(t, 5, sv.Sum())

	assert.Equal(t, 0, SymptomValues{}.Sum())
	assert.Equal(t, 0, SymptomValues(nil).Sum())
}

func TestSymptomValuesNormalized(t *testing.T) {
	sv := SymptomValues{"hotFlashes": 5, "mood": -1, "headache": 2}
	norm := sv.Normalized()

	require.Len(t, norm, len(SymptomCatalog))
	assert.Equal(t, 3, norm["hotFlashes"])
	assert.Equal(t, 0, norm["mood"])
	assert.Equal(t, 0, norm["sleep"])
	_, hasUnknown := norm["headache"]
	assert.False(t, hasUnknown)

	// original map is untouched
	assert.Equal(t, 5, sv["hotFlashes"])
}

func TestSymptomValuesUnknownKeys(t *testing.T) {
	sv := SymptomValues{"hotFlashes": 1, "headache": 2, "cramps": 1}
	unknown := sv.UnknownKeys()
	assert.ElementsMatch(t, []string{"headache", "cramps"}, unknown)

	assert.Empty(t, SymptomValues{"mood": 1}.UnknownKeys())
}

func TestDailyLogNormalize(t *testing.T) {
	l := &DailyLog{
		Date:     "2024-05-01",
		Symptoms: SymptomValues{"hotFlashes": 9, "fatigue": 2},
		Score:    999, // stale, must be recomputed
		Notes:    "  rough night  ",
	}
	l.Normalize()

	assert.Equal(t, 5, l.Score) // 3 clamped + 2
	assert.Equal(t, "rough night", l.Notes)
	assert.Len(t, l.Symptoms, len(SymptomCatalog))
}

func TestDailyLogScoreMatchesSumAfterNormalize(t *testing.T) {
	l := &DailyLog{Date: "2024-05-02", Symptoms: SymptomValues{}}
	for _, s := range SymptomCatalog {
		l.Symptoms[s.Key] = 3
	}
	l.Normalize()
	assert.Equal(t, MaxScore, l.Score)
	assert.Equal(t, l.Symptoms.Sum(), l.Score)
}

func TestDailyLogValidate(t *testing.T) {
	l := &DailyLog{Date: "2024-05-01", Symptoms: SymptomValues{}}
	l.Normalize()
	assert.NoError(t, l.Validate())

	bad := &DailyLog{Date: "2024-13-40"}
	assert.Error(t, bad.Validate())
}
