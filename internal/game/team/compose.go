// Package team composes team buffs into a buffed damage snapshot and scores
// team synergy.
package team

import (
	"fmt"

	"github.com/udisondev/teyvatcalc/internal/calcerr"
	"github.com/udisondev/teyvatcalc/internal/data"
	"github.com/udisondev/teyvatcalc/internal/game/combat"
	"github.com/udisondev/teyvatcalc/internal/game/enemy"
	"github.com/udisondev/teyvatcalc/internal/model"
)

// Options carries the constant inputs of a composition.
type Options struct {
	Reference *data.Reference
	Enemy     enemy.Defaults
	Synergy   SynergyWeights
	// MemberElements are the elements of the team members; they count
	// towards elemental coverage.
	MemberElements []model.Element
}

// ScenarioIncrease compares one scenario with and without buffs.
type ScenarioIncrease struct {
	Name            string  `json:"name"`
	BaseAverage     float64 `json:"base_average"`
	BuffedAverage   float64 `json:"buffed_average"`
	IncreasePercent float64 `json:"increase_percent"`
}

// Analysis is the outcome of composing a team's buffs.
type Analysis struct {
	BuffedStats       model.CharacterCombatStats          `json:"buffed_stats"`
	BuffedEnemy       enemy.Multipliers                   `json:"buffed_enemy"`
	BaseDamage        []combat.DamageBreakdownEntry       `json:"base_damage"`
	BuffedDamage      []combat.DamageBreakdownEntry       `json:"buffed_damage"`
	DamageIncrease    []ScenarioIncrease                  `json:"damage_increase"`
	TotalBaseAverage  float64                             `json:"total_base_average"`
	TotalBuffed       float64                             `json:"total_buffed_average"`
	TotalIncrease     float64                             `json:"total_increase_percent"`
	TotalMultipliers  map[model.BuffType]float64          `json:"total_multipliers"`
	CategorizedBuffs  map[model.BuffType][]model.TeamBuff `json:"categorized_buffs"`
	ElementalCoverage map[model.Element]bool              `json:"elemental_coverage"`
	SynergyScore      float64                             `json:"synergy_score"`
	RotationOrder     []string                            `json:"rotation_order"`
	Rotation          string                              `json:"recommended_rotation"`
	Flags             []calcerr.Flag                      `json:"flags,omitempty"`
}

// Compose applies the enabled buffs to the main character and the enemy,
// re-runs every scenario buffed and unbuffed, and scores the team.
func Compose(main model.CharacterCombatStats, buffs []model.TeamBuff, scenarios []model.DamageScenario, spec model.EnemySpec, opts Options) (Analysis, error) {
	enabled, err := Enabled(buffs)
	if err != nil {
		return Analysis{}, err
	}

	var flags calcerr.Flags
	ev, err := evaluate(main, enabled, scenarios, spec, opts, &flags)
	if err != nil {
		return Analysis{}, err
	}

	a := Analysis{
		BuffedStats:      ev.stats,
		BuffedEnemy:      ev.enemy,
		BaseDamage:       ev.base,
		BuffedDamage:     ev.buffed,
		DamageIncrease:   ev.increase,
		TotalBaseAverage: ev.totalBase,
		TotalBuffed:      ev.totalBuffed,
		TotalIncrease:    ev.totalIncrease,
	}
	a.TotalMultipliers, a.CategorizedBuffs = Categorize(enabled)
	a.ElementalCoverage = Coverage(enabled, scenarios, opts.MemberElements)
	a.SynergyScore = opts.Synergy.Score(a.ElementalCoverage, enabled)
	a.RotationOrder = Rotation(enabled, scenarios)
	a.Rotation = RenderRotation(a.RotationOrder)
	a.Flags = flags.List()
	return a, nil
}

type evaluation struct {
	stats         model.CharacterCombatStats
	enemy         enemy.Multipliers
	base          []combat.DamageBreakdownEntry
	buffed        []combat.DamageBreakdownEntry
	increase      []ScenarioIncrease
	totalBase     float64
	totalBuffed   float64
	totalIncrease float64
}

// evaluate computes the buffed and unbuffed breakdowns for enabled buffs.
func evaluate(main model.CharacterCombatStats, enabled []model.TeamBuff, scenarios []model.DamageScenario, spec model.EnemySpec, opts Options, flags *calcerr.Flags) (evaluation, error) {
	baseMult, err := enemy.Resolve(spec, main.Level, opts.Enemy)
	if err != nil {
		return evaluation{}, err
	}
	buffedStats, buffedSpec := ApplyBuffs(main, spec, enabled, scenarios, opts.Enemy)
	buffedMult, err := enemy.Resolve(buffedSpec, main.Level, opts.Enemy)
	if err != nil {
		return evaluation{}, err
	}

	ev := evaluation{
		stats:    buffedStats,
		enemy:    buffedMult,
		base:     make([]combat.DamageBreakdownEntry, 0, len(scenarios)),
		buffed:   make([]combat.DamageBreakdownEntry, 0, len(scenarios)),
		increase: make([]ScenarioIncrease, 0, len(scenarios)),
	}
	for _, s := range scenarios {
		b, err := combat.ComputeScenario(main, s, baseMult, opts.Reference)
		if err != nil {
			return evaluation{}, err
		}
		u, err := combat.ComputeScenario(buffedStats, s, buffedMult, opts.Reference)
		if err != nil {
			return evaluation{}, err
		}
		ev.base = append(ev.base, b)
		ev.buffed = append(ev.buffed, u)
		ev.increase = append(ev.increase, ScenarioIncrease{
			Name:            s.Name,
			BaseAverage:     b.Average,
			BuffedAverage:   u.Average,
			IncreasePercent: increasePercent(b.Average, u.Average, fmt.Sprintf("damage_increase.%s", s.Name), flags),
		})
		ev.totalBase += b.TotalAverage
		ev.totalBuffed += u.TotalAverage
	}
	ev.totalIncrease = increasePercent(ev.totalBase, ev.totalBuffed, "total_increase_percent", flags)
	return ev, nil
}

// increasePercent returns (buffed − base)/base × 100, or 0 with a flag
// when base is 0.
func increasePercent(base, buffed float64, field string, flags *calcerr.Flags) float64 {
	if base == 0 {
		flags.Add(field, calcerr.ReasonZeroBase)
		return 0
	}
	return flags.Finite(field, (buffed-base)/base*100)
}
