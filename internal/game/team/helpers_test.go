package team

import (
	"github.com/udisondev/teyvatcalc/internal/data"
	"github.com/udisondev/teyvatcalc/internal/game/enemy"
	"github.com/udisondev/teyvatcalc/internal/model"
)

func newTestMain() model.CharacterCombatStats {
	return model.CharacterCombatStats{
		Level:             90,
		BaseAtk:           300,
		FlatAtk:           311,
		AtkPercent:        50,
		CritRate:          60,
		CritDmg:           120,
		EnergyRecharge:    100,
		ElementalDmgBonus: map[model.Element]float64{model.Pyro: 46.6},
	}
}

func newTestScenarios() []model.DamageScenario {
	mk := func(name string, a model.AbilityType, mult float64) model.DamageScenario {
		return model.DamageScenario{
			Name: name, AbilityType: a, Element: model.Pyro, ScalingStat: model.ScaleAtk,
			HitCount: 1, TalentMultiplierPercent: mult,
		}
	}
	return []model.DamageScenario{
		mk("Normal Attack", model.AbilityNormal, 80),
		mk("Elemental Skill", model.AbilitySkill, 200),
		mk("Elemental Burst", model.AbilityBurst, 400),
	}
}

func newTestOptions() Options {
	return Options{
		Reference: data.MustDefaultReference(),
		Enemy:     enemy.StandardDefaults,
		Synergy:   DefaultSynergyWeights,
	}
}

func pyroEnemy() model.EnemySpec {
	return model.EnemySpec{Level: 90, Resistances: map[model.Element]float64{model.Pyro: 10}}
}

func buff(source string, t model.BuffType, v float64, e model.Element) model.TeamBuff {
	return model.TeamBuff{Source: source, Type: t, Value: v, Element: e, Enabled: true}
}
