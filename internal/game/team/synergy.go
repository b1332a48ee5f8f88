package team

import "github.com/udisondev/teyvatcalc/internal/model"

// SynergyWeights configures the synergy score. The score is
//
//	min(ElementCap, ElementPoints × reactive elements covered)
//	+ min(CategoryCap, CategoryPoints × buff categories present)
//
// clipped to Max. Positive weights keep the score monotonic in coverage.
type SynergyWeights struct {
	ElementPoints  float64 `yaml:"element_points" json:"element_points"`
	ElementCap     float64 `yaml:"element_cap" json:"element_cap"`
	CategoryPoints float64 `yaml:"category_points" json:"category_points"`
	CategoryCap    float64 `yaml:"category_cap" json:"category_cap"`
	Max            float64 `yaml:"max" json:"max"`
}

// DefaultSynergyWeights gives up to 40 points for elements and 60 for
// buff categories.
var DefaultSynergyWeights = SynergyWeights{
	ElementPoints:  10,
	ElementCap:     40,
	CategoryPoints: 15,
	CategoryCap:    60,
	Max:            100,
}

// Coverage marks every element referenced by a buff, a scenario or one of
// the extra elements (team members).
func Coverage(buffs []model.TeamBuff, scenarios []model.DamageScenario, extra []model.Element) map[model.Element]bool {
	cov := make(map[model.Element]bool, len(model.Elements))
	for _, e := range model.Elements {
		cov[e] = false
	}
	mark := func(e model.Element) {
		if e.Valid() {
			cov[e] = true
		}
	}
	for _, b := range buffs {
		mark(b.Element)
	}
	for _, s := range scenarios {
		mark(s.Element)
	}
	for _, e := range extra {
		mark(e)
	}
	return cov
}

// ReactiveCovered counts the covered elements that can trigger reactions.
func ReactiveCovered(cov map[model.Element]bool) int {
	n := 0
	for _, e := range model.ReactiveElements {
		if cov[e] {
			n++
		}
	}
	return n
}

// PresentCategories reports which scored categories the buffs cover.
func PresentCategories(buffs []model.TeamBuff) map[Category]bool {
	present := make(map[Category]bool, len(Categories))
	for _, b := range buffs {
		if c, ok := CategoryOf(b.Type); ok {
			present[c] = true
		}
	}
	return present
}

// Score computes the synergy score from coverage and the enabled buffs.
func (w SynergyWeights) Score(cov map[model.Element]bool, buffs []model.TeamBuff) float64 {
	elements := min(w.ElementCap, w.ElementPoints*float64(ReactiveCovered(cov)))
	categories := min(w.CategoryCap, w.CategoryPoints*float64(len(PresentCategories(buffs))))
	return max(0, min(w.Max, elements+categories))
}
