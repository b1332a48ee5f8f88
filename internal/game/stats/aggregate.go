// Package stats resolves a raw character build into combat stats.
package stats

import (
	"github.com/udisondev/teyvatcalc/internal/data"
	"github.com/udisondev/teyvatcalc/internal/model"
)

// Baseline holds the universal starting values every character has before
// any equipment.
type Baseline struct {
	CritRate       float64
	CritDmg        float64
	EnergyRecharge float64
}

// DefaultBaseline is the game's universal 5% crit rate, 50% crit damage
// and 100% energy recharge.
var DefaultBaseline = Baseline{CritRate: 5, CritDmg: 50, EnergyRecharge: 100}

// BaselineOf returns the baseline carried by reference data.
func BaselineOf(ref *data.Reference) Baseline {
	if ref == nil {
		return DefaultBaseline
	}
	return Baseline{
		CritRate:       ref.BaseCritRate,
		CritDmg:        ref.BaseCritDmg,
		EnergyRecharge: ref.BaseEnergyRecharge,
	}
}

// Resolve merges base stats, weapon and artifacts into combat stats.
//
// ATK/HP/DEF keep base, percent and flat parts separate so later buffs
// compose correctly; the totals are base × (1 + pct/100) + flat.
// The weapon's base attack always counts as flat ATK. A missing weapon or
// missing artifacts are not errors.
func Resolve(build model.CharacterBuild, base Baseline) model.CharacterCombatStats {
	s := model.CharacterCombatStats{
		Level:             build.Level,
		BaseAtk:           build.BaseAtk,
		BaseHp:            build.BaseHp,
		BaseDef:           build.BaseDef,
		CritRate:          base.CritRate,
		CritDmg:           base.CritDmg,
		EnergyRecharge:    base.EnergyRecharge,
		ElementalDmgBonus: make(map[model.Element]float64, len(model.Elements)),
	}
	for _, e := range model.Elements {
		s.ElementalDmgBonus[e] = 0
	}

	if w := build.Weapon; w != nil {
		s.FlatAtk += w.BaseAttack
		if w.SubStat != nil {
			apply(&s, *w.SubStat)
		}
	}
	for _, a := range build.Artifacts {
		apply(&s, a.MainStat)
		for _, sub := range a.SubStats {
			apply(&s, sub)
		}
	}
	for _, line := range build.BonusStats {
		apply(&s, line)
	}
	return s
}

// apply adds one stat line to s. Unknown names are ignored.
func apply(s *model.CharacterCombatStats, line model.StatLine) {
	a, elem := classify(line.Name)
	v := line.Value
	switch a {
	case attrAtk:
		s.FlatAtk += v
	case attrAtkPercent:
		s.AtkPercent += v
	case attrHp:
		s.FlatHp += v
	case attrHpPercent:
		s.HpPercent += v
	case attrDef:
		s.FlatDef += v
	case attrDefPercent:
		s.DefPercent += v
	case attrCritRate:
		s.CritRate += v
	case attrCritDmg:
		s.CritDmg += v
	case attrEnergyRecharge:
		s.EnergyRecharge += v
	case attrElementalMastery:
		s.ElementalMastery += v
	case attrHealingBonus:
		s.HealingBonus += v
	case attrIncomingHealingBonus:
		s.IncomingHealingBonus += v
	case attrDmgBonus:
		s.ElementalDmgBonus[elem] += v
	}
}

// UnknownStats returns the stat names in build that Resolve ignores.
func UnknownStats(build model.CharacterBuild) []string {
	var unknown []string
	check := func(line model.StatLine) {
		if a, _ := classify(line.Name); a == attrUnknown {
			unknown = append(unknown, line.Name)
		}
	}
	if build.Weapon != nil && build.Weapon.SubStat != nil {
		check(*build.Weapon.SubStat)
	}
	for _, a := range build.Artifacts {
		check(a.MainStat)
		for _, sub := range a.SubStats {
			check(sub)
		}
	}
	for _, line := range build.BonusStats {
		check(line)
	}
	return unknown
}
