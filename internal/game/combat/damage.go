// Package combat implements the damage formula for a single scenario.
package combat

import (
	"github.com/udisondev/teyvatcalc/internal/calcerr"
	"github.com/udisondev/teyvatcalc/internal/data"
	"github.com/udisondev/teyvatcalc/internal/game/enemy"
	"github.com/udisondev/teyvatcalc/internal/model"
)

// DamageBreakdownEntry is the outcome of one scenario.
type DamageBreakdownEntry struct {
	Name        string            `json:"name"`
	AbilityType model.AbilityType `json:"ability_type"`
	Element     model.Element     `json:"element"`
	ScalingStat model.ScalingStat `json:"scaling_stat"`
	HitCount    int               `json:"hit_count"`

	ScalingValue          float64 `json:"scaling_value"`
	TalentMultiplier      float64 `json:"talent_multiplier"`
	BaseDamage            float64 `json:"base_dmg"`
	DamageBonus           float64 `json:"dmg_bonus"`
	DamageBonusMultiplier float64 `json:"dmg_bonus_multiplier"`
	DefenseMultiplier     float64 `json:"def_multiplier"`
	ResistanceMultiplier  float64 `json:"res_multiplier"`
	CritRate              float64 `json:"crit_rate"`
	CritDmg               float64 `json:"crit_dmg"`

	Average float64 `json:"average"`
	Crit    float64 `json:"crit"`
	NonCrit float64 `json:"non_crit"`

	Reaction             model.ReactionType `json:"reaction,omitempty"`
	TransformativeDamage float64            `json:"transformative_damage,omitempty"`
	ReactionMultiplier   float64            `json:"reaction_multiplier,omitempty"`
	AmplifiedAverage     float64            `json:"amplified_average,omitempty"`

	// TotalAverage is the expected damage including reactions:
	// (AmplifiedAverage or Average) + TransformativeDamage.
	TotalAverage float64 `json:"total_average"`
}

// ComputeScenario calculates damage for one scenario.
//
//	base      = scaling × talent% × hits + flat
//	mitigated = base × (1 + (elemBonus + addBonus)/100) × defMult × resMult
//	average   = mitigated × (1 + CR/100 × CD/100)
//
// CR is clamped to [0,100] and CD to >= 0 here, never at storage.
// A zero talent multiplier yields an all-zero entry. Reaction damage is
// computed separately and never folded into Average.
func ComputeScenario(stats model.CharacterCombatStats, s model.DamageScenario, mult enemy.Multipliers, ref *data.Reference) (DamageBreakdownEntry, error) {
	if err := ValidateScenario(s); err != nil {
		return DamageBreakdownEntry{}, err
	}

	e := DamageBreakdownEntry{
		Name:             s.Name,
		AbilityType:      s.AbilityType,
		Element:          s.Element,
		ScalingStat:      s.ScalingStat,
		HitCount:         s.HitCount,
		TalentMultiplier: s.TalentMultiplierPercent,
	}
	if s.Reaction != nil {
		e.Reaction = s.Reaction.Type
	}
	if s.TalentMultiplierPercent == 0 {
		return e, nil
	}

	e.ScalingValue = ScalingValue(stats, s.ScalingStat)
	e.BaseDamage = e.ScalingValue*s.TalentMultiplierPercent/100*float64(s.HitCount) + s.AdditiveFlatBonus
	e.DamageBonus = stats.DmgBonus(s.Element) + s.AdditiveDamageBonusPercent
	e.DamageBonusMultiplier = 1 + e.DamageBonus/100
	e.DefenseMultiplier = mult.DefenseMultiplier
	e.ResistanceMultiplier = mult.ResistanceMultiplier[s.Element]

	mitigated := e.BaseDamage * e.DamageBonusMultiplier * e.DefenseMultiplier * e.ResistanceMultiplier

	e.CritRate = EffectiveCritRate(stats.CritRate)
	e.CritDmg = EffectiveCritDmg(stats.CritDmg)
	e.NonCrit = mitigated
	e.Crit = mitigated * (1 + e.CritDmg/100)
	e.Average = mitigated * (1 + e.CritRate/100*e.CritDmg/100)
	e.TotalAverage = e.Average

	if s.Reaction != nil {
		if err := applyReaction(&e, stats, s, mult, ref); err != nil {
			return DamageBreakdownEntry{}, err
		}
	}
	return e, nil
}

// EffectiveCritRate clamps a crit rate to [0,100].
func EffectiveCritRate(cr float64) float64 {
	return min(max(cr, 0), 100)
}

// EffectiveCritDmg floors a crit damage at 0.
func EffectiveCritDmg(cd float64) float64 {
	return max(cd, 0)
}

// Sanitize replaces NaN and infinite values with 0, recording a flag per
// replaced field under prefix.
func (e *DamageBreakdownEntry) Sanitize(prefix string, flags *calcerr.Flags) {
	fields := []struct {
		name string
		v    *float64
	}{
		{"scaling_value", &e.ScalingValue},
		{"base_dmg", &e.BaseDamage},
		{"dmg_bonus", &e.DamageBonus},
		{"dmg_bonus_multiplier", &e.DamageBonusMultiplier},
		{"def_multiplier", &e.DefenseMultiplier},
		{"res_multiplier", &e.ResistanceMultiplier},
		{"average", &e.Average},
		{"crit", &e.Crit},
		{"non_crit", &e.NonCrit},
		{"transformative_damage", &e.TransformativeDamage},
		{"reaction_multiplier", &e.ReactionMultiplier},
		{"amplified_average", &e.AmplifiedAverage},
		{"total_average", &e.TotalAverage},
	}
	for _, f := range fields {
		*f.v = flags.Finite(prefix+"."+f.name, *f.v)
	}
}
