package calc

import (
	"maps"
	"slices"

	"github.com/udisondev/teyvatcalc/internal/calcerr"
	"github.com/udisondev/teyvatcalc/internal/game/combat"
	"github.com/udisondev/teyvatcalc/internal/game/enemy"
	"github.com/udisondev/teyvatcalc/internal/game/team"
	"github.com/udisondev/teyvatcalc/internal/model"
)

// Result is the uniform outcome of every mode.
type Result struct {
	Mode            Mode                          `json:"mode"`
	CharacterName   string                        `json:"character_name"`
	CharacterStats  model.CharacterCombatStats    `json:"character_stats"`
	BuildQuality    combat.BuildQuality           `json:"build_quality"`
	UnknownStats    []string                      `json:"unknown_stats,omitempty"`
	Enemy           enemy.Multipliers             `json:"enemy"`
	DamageBreakdown []combat.DamageBreakdownEntry `json:"damage_breakdown"`
	TotalAverage    float64                       `json:"total_average"`

	Team *team.Analysis `json:"team_analysis,omitempty"`

	RoleDistribution   map[string]team.Role `json:"role_distribution,omitempty"`
	Strengths          []string             `json:"strengths,omitempty"`
	Weaknesses         []string             `json:"weaknesses,omitempty"`
	InvestmentPriority []team.Investment    `json:"investment_priority,omitempty"`

	Flags []calcerr.Flag `json:"flags,omitempty"`
}

// sanitize replaces every non-finite number in r with 0 and records the
// flags, appending them to the flags already collected.
func (r *Result) sanitize(flags *calcerr.Flags) {
	r.CharacterStats.Sanitize("character_stats", flags)
	r.BuildQuality.TotalAtk = flags.Finite("build_quality.total_atk", r.BuildQuality.TotalAtk)
	r.BuildQuality.CritValue = flags.Finite("build_quality.crit_value", r.BuildQuality.CritValue)
	r.BuildQuality.CritRatio = flags.Finite("build_quality.crit_ratio", r.BuildQuality.CritRatio)
	r.Enemy.Sanitize("enemy", flags)
	sanitizeEntries("damage_breakdown", r.DamageBreakdown, flags)
	r.TotalAverage = flags.Finite("total_average", r.TotalAverage)

	if a := r.Team; a != nil {
		sanitizeTeam(a, flags)
	}
	for i := range r.InvestmentPriority {
		inv := &r.InvestmentPriority[i]
		inv.Contribution = flags.Finite("investment_priority."+inv.Source, inv.Contribution)
		inv.IncreaseWithout = flags.Finite("investment_priority."+inv.Source+".without", inv.IncreaseWithout)
	}
	r.Flags = flags.List()
}

func sanitizeTeam(a *team.Analysis, flags *calcerr.Flags) {
	a.BuffedStats.Sanitize("team_analysis.buffed_stats", flags)
	a.BuffedEnemy.Sanitize("team_analysis.buffed_enemy", flags)
	sanitizeEntries("team_analysis.base_damage", a.BaseDamage, flags)
	sanitizeEntries("team_analysis.buffed_damage", a.BuffedDamage, flags)
	for i := range a.DamageIncrease {
		inc := &a.DamageIncrease[i]
		prefix := "team_analysis.damage_increase." + inc.Name
		inc.BaseAverage = flags.Finite(prefix+".base_average", inc.BaseAverage)
		inc.BuffedAverage = flags.Finite(prefix+".buffed_average", inc.BuffedAverage)
		inc.IncreasePercent = flags.Finite(prefix+".increase_percent", inc.IncreasePercent)
	}
	a.TotalBaseAverage = flags.Finite("team_analysis.total_base_average", a.TotalBaseAverage)
	a.TotalBuffed = flags.Finite("team_analysis.total_buffed_average", a.TotalBuffed)
	a.TotalIncrease = flags.Finite("team_analysis.total_increase_percent", a.TotalIncrease)
	for _, t := range slices.Sorted(maps.Keys(a.TotalMultipliers)) {
		a.TotalMultipliers[t] = flags.Finite("team_analysis.total_multipliers."+string(t), a.TotalMultipliers[t])
	}
	for _, t := range slices.Sorted(maps.Keys(a.CategorizedBuffs)) {
		for i := range a.CategorizedBuffs[t] {
			b := &a.CategorizedBuffs[t][i]
			b.Value = flags.Finite("team_analysis.categorized_buffs."+string(t)+"."+b.Source, b.Value)
		}
	}
	a.SynergyScore = flags.Finite("team_analysis.synergy_score", a.SynergyScore)
	a.Flags = nil
}

func sanitizeEntries(prefix string, entries []combat.DamageBreakdownEntry, flags *calcerr.Flags) {
	for i := range entries {
		entries[i].Sanitize(prefix+"."+entries[i].Name, flags)
	}
}
