package team

import (
	"github.com/udisondev/teyvatcalc/internal/calcerr"
	"github.com/udisondev/teyvatcalc/internal/game/enemy"
	"github.com/udisondev/teyvatcalc/internal/model"
)

// Category groups buff types for synergy scoring.
type Category string

const (
	CategoryAtk      Category = "atk"
	CategoryDmgBonus Category = "dmg_bonus"
	CategoryResShred Category = "res_shred"
	CategoryCrit     Category = "crit"
)

// Categories lists the scored buff categories.
var Categories = [...]Category{CategoryAtk, CategoryDmgBonus, CategoryResShred, CategoryCrit}

// CategoryOf returns the scored category of a buff type, false for buff
// types that are not scored (elemental mastery).
func CategoryOf(t model.BuffType) (Category, bool) {
	switch t {
	case model.BuffAtkPercent:
		return CategoryAtk, true
	case model.BuffDmgBonus:
		return CategoryDmgBonus, true
	case model.BuffResShred:
		return CategoryResShred, true
	case model.BuffCritRate, model.BuffCritDmg:
		return CategoryCrit, true
	}
	return "", false
}

// Enabled returns the enabled buffs after validating every buff.
// Disabled buffs are dropped entirely.
func Enabled(buffs []model.TeamBuff) ([]model.TeamBuff, error) {
	out := make([]model.TeamBuff, 0, len(buffs))
	for _, b := range buffs {
		if !b.Type.Valid() {
			return nil, calcerr.InvalidInput("buffs.buff_type", "%s: unknown buff type %q", b.Source, b.Type)
		}
		if b.Element != "" && !b.Element.Valid() {
			return nil, calcerr.InvalidInput("buffs.element", "%s: unknown element %q", b.Source, b.Element)
		}
		if b.Enabled {
			out = append(out, b)
		}
	}
	return out, nil
}

// ApplyBuffs returns a buffed copy of stats and enemy. The inputs are not
// modified.
//
// A dmg_bonus with an element only counts when some scenario deals that
// element; without an element it applies to every element. A res_shred
// lowers the resistance of its element, or of all elements.
func ApplyBuffs(stats model.CharacterCombatStats, spec model.EnemySpec, buffs []model.TeamBuff, scenarios []model.DamageScenario, d enemy.Defaults) (model.CharacterCombatStats, model.EnemySpec) {
	out := stats.Clone()
	target := spec.Clone()

	used := make(map[model.Element]bool, len(scenarios))
	for _, s := range scenarios {
		used[s.Element] = true
	}

	for _, b := range buffs {
		switch b.Type {
		case model.BuffAtkPercent:
			out.AtkPercent += b.Value
		case model.BuffCritRate:
			out.CritRate += b.Value
		case model.BuffCritDmg:
			out.CritDmg += b.Value
		case model.BuffElementalMastery:
			out.ElementalMastery += b.Value
		case model.BuffDmgBonus:
			if b.Element == "" {
				for _, e := range model.Elements {
					out.ElementalDmgBonus[e] += b.Value
				}
			} else if used[b.Element] {
				out.ElementalDmgBonus[b.Element] += b.Value
			}
		case model.BuffResShred:
			target = enemy.Shred(target, b.Element, b.Value, d.Resistance)
		}
	}
	return out, target
}

// Categorize sums buff values per buff type and groups the buffs.
func Categorize(buffs []model.TeamBuff) (map[model.BuffType]float64, map[model.BuffType][]model.TeamBuff) {
	totals := make(map[model.BuffType]float64)
	groups := make(map[model.BuffType][]model.TeamBuff)
	for _, b := range buffs {
		totals[b.Type] += b.Value
		groups[b.Type] = append(groups[b.Type], b)
	}
	return totals, groups
}
