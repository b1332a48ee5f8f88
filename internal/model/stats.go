package model

import (
	"maps"
	"slices"

	"github.com/udisondev/teyvatcalc/internal/calcerr"
)

// CharacterCombatStats is the resolved numeric state of a character at
// calculation time. CritRate is stored unclamped so buff stacking is not
// lossy; consumers clamp it at the point of use.
//
// A snapshot is never mutated in place by the engine: every transformation
// works on a Clone.
type CharacterCombatStats struct {
	Level int `json:"level"`

	BaseAtk float64 `json:"base_atk"`
	BaseHp  float64 `json:"base_hp"`
	BaseDef float64 `json:"base_def"`

	FlatAtk float64 `json:"flat_atk"`
	FlatHp  float64 `json:"flat_hp"`
	FlatDef float64 `json:"flat_def"`

	AtkPercent float64 `json:"atk_percent"`
	HpPercent  float64 `json:"hp_percent"`
	DefPercent float64 `json:"def_percent"`

	CritRate             float64 `json:"crit_rate"`
	CritDmg              float64 `json:"crit_dmg"`
	EnergyRecharge       float64 `json:"energy_recharge"`
	ElementalMastery     float64 `json:"elemental_mastery"`
	HealingBonus         float64 `json:"healing_bonus"`
	IncomingHealingBonus float64 `json:"incoming_healing_bonus"`

	ElementalDmgBonus map[Element]float64 `json:"elemental_dmg_bonus"`
}

// TotalAtk returns base × (1 + ATK%) + flat ATK.
func (s CharacterCombatStats) TotalAtk() float64 {
	return s.BaseAtk*(1+s.AtkPercent/100) + s.FlatAtk
}

// TotalHp returns base × (1 + HP%) + flat HP.
func (s CharacterCombatStats) TotalHp() float64 {
	return s.BaseHp*(1+s.HpPercent/100) + s.FlatHp
}

// TotalDef returns base × (1 + DEF%) + flat DEF.
func (s CharacterCombatStats) TotalDef() float64 {
	return s.BaseDef*(1+s.DefPercent/100) + s.FlatDef
}

// DmgBonus returns the damage bonus for the element, 0 when absent.
func (s CharacterCombatStats) DmgBonus(e Element) float64 {
	return s.ElementalDmgBonus[e]
}

// Clone returns a deep copy of the snapshot.
func (s CharacterCombatStats) Clone() CharacterCombatStats {
	c := s
	c.ElementalDmgBonus = make(map[Element]float64, len(s.ElementalDmgBonus))
	for k, v := range s.ElementalDmgBonus {
		c.ElementalDmgBonus[k] = v
	}
	return c
}

// Sanitize replaces NaN and infinite values with 0, recording a flag per
// replaced field under prefix.
func (s *CharacterCombatStats) Sanitize(prefix string, flags *calcerr.Flags) {
	for _, f := range []struct {
		name string
		v    *float64
	}{
		{"base_atk", &s.BaseAtk},
		{"base_hp", &s.BaseHp},
		{"base_def", &s.BaseDef},
		{"flat_atk", &s.FlatAtk},
		{"flat_hp", &s.FlatHp},
		{"flat_def", &s.FlatDef},
		{"atk_percent", &s.AtkPercent},
		{"hp_percent", &s.HpPercent},
		{"def_percent", &s.DefPercent},
		{"crit_rate", &s.CritRate},
		{"crit_dmg", &s.CritDmg},
		{"energy_recharge", &s.EnergyRecharge},
		{"elemental_mastery", &s.ElementalMastery},
		{"healing_bonus", &s.HealingBonus},
		{"incoming_healing_bonus", &s.IncomingHealingBonus},
	} {
		*f.v = flags.Finite(prefix+"."+f.name, *f.v)
	}
	for _, e := range slices.Sorted(maps.Keys(s.ElementalDmgBonus)) {
		s.ElementalDmgBonus[e] = flags.Finite(prefix+".elemental_dmg_bonus."+string(e), s.ElementalDmgBonus[e])
	}
}
