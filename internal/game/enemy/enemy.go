// Package enemy turns an enemy description into damage mitigation
// multipliers.
package enemy

import (
	"maps"
	"math"
	"slices"

	"github.com/udisondev/teyvatcalc/internal/calcerr"
	"github.com/udisondev/teyvatcalc/internal/model"
)

// Defaults fills in what a request leaves unspecified.
type Defaults struct {
	// AttackerLevel is used when the acting character's level is unknown,
	// so comparisons stay standardized.
	AttackerLevel int
	// Resistance is used for elements absent from the resistance table.
	Resistance float64
}

// StandardDefaults is a level 90 attacker against a 10% resistance enemy.
var StandardDefaults = Defaults{AttackerLevel: 90, Resistance: 10}

// Multipliers is the resolved mitigation applied to a hit.
type Multipliers struct {
	EnemyLevel           int                       `json:"enemy_level"`
	AttackerLevel        int                       `json:"attacker_level"`
	EnemyDefense         float64                   `json:"enemy_defense"`
	DefenseMultiplier    float64                   `json:"defense_multiplier"`
	Resistance           map[model.Element]float64 `json:"resistance"`
	ResistanceMultiplier map[model.Element]float64 `json:"resistance_multiplier"`
}

// Resolve computes the defense multiplier and the per-element resistance
// multipliers.
//
//	enemyDef = (enemyLevel×5 + 500) × (1 − defRed/100)
//	defMult  = (atkLevel + 100) / (atkLevel + 100 + enemyDef)
//
// attackerLevel 0 means unknown and falls back to d.AttackerLevel.
// Infinite resistances are accepted here because stacked shreds can produce
// them; Validate rejects them in caller input.
func Resolve(spec model.EnemySpec, attackerLevel int, d Defaults) (Multipliers, error) {
	if err := check(spec); err != nil {
		return Multipliers{}, err
	}
	if attackerLevel < 0 {
		return Multipliers{}, calcerr.InvalidInput("character.level", "must not be negative, got %d", attackerLevel)
	}
	if attackerLevel == 0 {
		attackerLevel = d.AttackerLevel
	}

	enemyDef := (float64(spec.Level)*5 + 500) * (1 - spec.DefenseReductionPercent/100)
	atk := float64(attackerLevel) + 100

	m := Multipliers{
		EnemyLevel:           spec.Level,
		AttackerLevel:        attackerLevel,
		EnemyDefense:         enemyDef,
		DefenseMultiplier:    atk / (atk + enemyDef),
		Resistance:           make(map[model.Element]float64, len(model.Elements)),
		ResistanceMultiplier: make(map[model.Element]float64, len(model.Elements)),
	}
	for _, e := range model.Elements {
		r := ResistanceOf(spec, e, d.Resistance)
		m.Resistance[e] = r
		m.ResistanceMultiplier[e] = ResistanceMultiplier(r)
	}
	return m, nil
}

// Validate rejects an enemy description that cannot be resolved, including
// infinite resistances.
func Validate(spec model.EnemySpec) error {
	if err := check(spec); err != nil {
		return err
	}
	for _, e := range slices.Sorted(maps.Keys(spec.Resistances)) {
		if math.IsInf(spec.Resistances[e], 0) {
			return calcerr.InvalidInput("enemy.resistances."+string(e), "must be finite, got %g", spec.Resistances[e])
		}
	}
	return nil
}

func check(spec model.EnemySpec) error {
	if spec.Level < 0 {
		return calcerr.InvalidInput("enemy.level", "must not be negative, got %d", spec.Level)
	}
	if r := spec.DefenseReductionPercent; !(r >= 0 && r < 100) {
		return calcerr.InvalidInput("enemy.defense_reduction_percent", "must be in [0,100), got %g", r)
	}
	for _, e := range slices.Sorted(maps.Keys(spec.Resistances)) {
		if math.IsNaN(spec.Resistances[e]) {
			return calcerr.InvalidInput("enemy.resistances."+string(e), "must be a number, got NaN")
		}
	}
	return nil
}

// Sanitize replaces NaN and infinite values with 0, recording a flag per
// replaced field under prefix.
func (m *Multipliers) Sanitize(prefix string, flags *calcerr.Flags) {
	m.EnemyDefense = flags.Finite(prefix+".enemy_defense", m.EnemyDefense)
	m.DefenseMultiplier = flags.Finite(prefix+".defense_multiplier", m.DefenseMultiplier)
	for _, e := range slices.Sorted(maps.Keys(m.Resistance)) {
		m.Resistance[e] = flags.Finite(prefix+".resistance."+string(e), m.Resistance[e])
	}
	for _, e := range slices.Sorted(maps.Keys(m.ResistanceMultiplier)) {
		m.ResistanceMultiplier[e] = flags.Finite(prefix+".resistance_multiplier."+string(e), m.ResistanceMultiplier[e])
	}
}

// ResistanceMultiplier maps a resistance percent to a damage multiplier.
// Negative resistance counts half; above 75% returns diminish.
func ResistanceMultiplier(r float64) float64 {
	switch {
	case r < 0:
		return 1 - r/200
	case r <= 75:
		return 1 - r/100
	default:
		return 1 / (4*r/100 + 1)
	}
}

// ResistanceOf returns the resistance of element e, or def when the spec
// does not list it.
func ResistanceOf(spec model.EnemySpec, e model.Element, def float64) float64 {
	if r, ok := spec.Resistances[e]; ok {
		return r
	}
	return def
}

// Shred returns a copy of spec with the resistance of element lowered by
// value, or of every element when element is empty. Missing elements are
// materialized from def first. There is no floor.
func Shred(spec model.EnemySpec, element model.Element, value, def float64) model.EnemySpec {
	out := spec.Clone()
	for _, e := range model.Elements {
		if _, ok := out.Resistances[e]; !ok {
			out.Resistances[e] = def
		}
		if element == "" || element == e {
			out.Resistances[e] -= value
		}
	}
	return out
}
