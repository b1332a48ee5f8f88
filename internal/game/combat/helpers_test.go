package combat

import (
	"github.com/udisondev/teyvatcalc/internal/game/enemy"
	"github.com/udisondev/teyvatcalc/internal/model"
)

// newTestStats returns the reference character used across damage tests:
// 300 base ATK, 311 flat ATK, 50% ATK, 60/120 crit, level 90.
func newTestStats() model.CharacterCombatStats {
	return model.CharacterCombatStats{
		Level:             90,
		BaseAtk:           300,
		FlatAtk:           311,
		AtkPercent:        50,
		BaseHp:            10000,
		BaseDef:           600,
		CritRate:          60,
		CritDmg:           120,
		EnergyRecharge:    100,
		ElementalDmgBonus: map[model.Element]float64{},
	}
}

// newTestScenario returns a single-hit 150% ATK pyro skill.
func newTestScenario() model.DamageScenario {
	return model.DamageScenario{
		Name:                    "Skill",
		AbilityType:             model.AbilitySkill,
		Element:                 model.Pyro,
		ScalingStat:             model.ScaleAtk,
		HitCount:                1,
		TalentMultiplierPercent: 150,
	}
}

func mustMultipliers(spec model.EnemySpec) enemy.Multipliers {
	m, err := enemy.Resolve(spec, 90, enemy.StandardDefaults)
	if err != nil {
		panic(err)
	}
	return m
}
