package team

import (
	"slices"

	"github.com/udisondev/teyvatcalc/internal/calcerr"
	"github.com/udisondev/teyvatcalc/internal/model"
)

// Investment is the marginal damage contribution of one buff source.
type Investment struct {
	Source          string  `json:"source"`
	Contribution    float64 `json:"contribution_percent"`
	IncreaseWithout float64 `json:"increase_without_percent"`
}

// InvestmentPriority ranks buff sources by their marginal contribution:
// the total average increase with every buff minus the increase with that
// source's buffs removed. Ties keep first-appearance order.
func InvestmentPriority(main model.CharacterCombatStats, buffs []model.TeamBuff, scenarios []model.DamageScenario, spec model.EnemySpec, opts Options) ([]Investment, error) {
	enabled, err := Enabled(buffs)
	if err != nil {
		return nil, err
	}

	var discard calcerr.Flags
	all, err := evaluate(main, enabled, scenarios, spec, opts, &discard)
	if err != nil {
		return nil, err
	}

	var sources []string
	seen := map[string]bool{}
	for _, b := range enabled {
		if !seen[b.Source] {
			seen[b.Source] = true
			sources = append(sources, b.Source)
		}
	}

	out := make([]Investment, 0, len(sources))
	for _, src := range sources {
		without := slices.DeleteFunc(slices.Clone(enabled), func(b model.TeamBuff) bool {
			return b.Source == src
		})
		ev, err := evaluate(main, without, scenarios, spec, opts, &discard)
		if err != nil {
			return nil, err
		}
		out = append(out, Investment{
			Source:          src,
			Contribution:    all.totalIncrease - ev.totalIncrease,
			IncreaseWithout: ev.totalIncrease,
		})
	}
	slices.SortStableFunc(out, func(a, b Investment) int {
		switch {
		case a.Contribution > b.Contribution:
			return -1
		case a.Contribution < b.Contribution:
			return 1
		}
		return 0
	})
	return out, nil
}
