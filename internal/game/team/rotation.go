package team

import (
	"slices"
	"strings"

	"github.com/udisondev/teyvatcalc/internal/model"
)

// RotationSeparator joins the steps of a rotation suggestion.
const RotationSeparator = " → "

func precedence(t model.BuffType) int {
	switch t {
	case model.BuffResShred:
		return 0
	case model.BuffDmgBonus:
		return 1
	default:
		return 2
	}
}

// Rotation orders buff sources by category precedence (res shred, then
// damage bonus, then ATK/crit/EM), each source once at its earliest
// category and in order of first appearance, followed by the scenario names
// in the order supplied.
func Rotation(buffs []model.TeamBuff, scenarios []model.DamageScenario) []string {
	type step struct {
		source string
		rank   int
		first  int
	}
	var steps []step
	index := make(map[string]int)
	for i, b := range buffs {
		if b.Source == "" {
			continue
		}
		r := precedence(b.Type)
		if j, ok := index[b.Source]; ok {
			steps[j].rank = min(steps[j].rank, r)
			continue
		}
		index[b.Source] = len(steps)
		steps = append(steps, step{source: b.Source, rank: r, first: i})
	}
	slices.SortStableFunc(steps, func(a, b step) int {
		if a.rank != b.rank {
			return a.rank - b.rank
		}
		return a.first - b.first
	})

	order := make([]string, 0, len(steps)+len(scenarios))
	for _, s := range steps {
		order = append(order, s.source)
	}
	for _, s := range scenarios {
		order = append(order, s.Name)
	}
	return order
}

// RenderRotation joins a rotation order for display.
func RenderRotation(order []string) string {
	return strings.Join(order, RotationSeparator)
}
