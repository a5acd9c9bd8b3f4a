package models

// Symptom severity bounds for a single day.
const (
	SeverityMin = 0
	SeverityMax = 3
)

// MaxScore is the highest possible daily score (all symptoms at SeverityMax).
var MaxScore = SeverityMax * len(SymptomCatalog)

// Symptom describes one entry of the fixed symptom catalog. The key set is
// closed: anything outside it in imported data is not a known symptom.
type Symptom struct {
	Key      string
	Label    string
	Category string
}

// Display-only category names.
const (
	CategoryVasomotor   = "Vasomotor"
	CategorySleepEnergy = "Sleep & Energy"
	CategoryMood        = "Mood"
	CategoryCognition   = "Cognition"
	CategoryBody        = "Body"
)

// SymptomCatalog is the fixed, ordered set of tracked symptoms. The order is
// also the display order and the CSV column order.
var SymptomCatalog = []Symptom{
	{Key: "hotFlashes", Label: "Hot flashes", Category: CategoryVasomotor},
	{Key: "nightSweats", Label: "Night sweats", Category: CategoryVasomotor},
	{Key: "sleep", Label: "Sleep quality", Category: CategorySleepEnergy},
	{Key: "fatigue", Label: "Fatigue", Category: CategorySleepEnergy},
	{Key: "mood", Label: "Mood / irritability", Category: CategoryMood},
	{Key: "anxiety", Label: "Anxiety", Category: CategoryMood},
	{Key: "brainFog", Label: "Brain fog", Category: CategoryCognition},
	{Key: "jointAches", Label: "Joint aches", Category: CategoryBody},
	{Key: "dryness", Label: "Dryness / discomfort", Category: CategoryBody},
	{Key: "libido", Label: "Libido changes", Category: CategoryBody},
}

// SymptomKeys returns the catalog keys in catalog order.
func SymptomKeys() []string {
	keys := make([]string, len(SymptomCatalog))
	for i, s := range SymptomCatalog {
		keys[i] = s.Key
	}
	return keys
}

// SymptomByKey looks up a catalog entry. ok is false for unknown keys.
func SymptomByKey(key string) (Symptom, bool) {
	for _, s := range SymptomCatalog {
		if s.Key == key {
			return s, true
		}
	}
	return Symptom{}, false
}

// IsSymptomKey reports whether key belongs to the catalog.
func IsSymptomKey(key string) bool {
	_, ok := SymptomByKey(key)
	return ok
}

// SymptomGroup is one display category with its catalog entries.
type SymptomGroup struct {
	Category string
	Symptoms []Symptom
}

// SymptomsByCategory groups the catalog for display, preserving catalog order
// within each group and the order in which categories first appear.
func SymptomsByCategory() []SymptomGroup {
	var out []SymptomGroup
	index := map[string]int{}
	for _, s := range SymptomCatalog {
		i, ok := index[s.Category]
		if !ok {
			i = len(out)
			index[s.Category] = i
			out = append(out, SymptomGroup{Category: s.Category})
		}
		out[i].Symptoms = append(out[i].Symptoms, s)
	}
	return out
}

// ClampSeverity maps any value onto the valid [0,3] range. Values already in
// range come back unchanged.
func ClampSeverity(v int) int {
	if v < SeverityMin {
		return SeverityMin
	}
	if v > SeverityMax {
		return SeverityMax
	}
	return v
}
