package calc

import (
	"github.com/udisondev/teyvatcalc/internal/data"
	"github.com/udisondev/teyvatcalc/internal/model"
)

var defaultAbilities = [...]struct {
	name    string
	ability model.AbilityType
}{
	{"Normal Attack", model.AbilityNormal},
	{"Elemental Skill", model.AbilitySkill},
	{"Elemental Burst", model.AbilityBurst},
}

// DefaultScenarios builds the normal attack, skill and burst scenarios of a
// build. Every hit deals the character's element and scales with ATK.
func DefaultScenarios(b model.CharacterBuild, ref *data.Reference) []model.DamageScenario {
	out := make([]model.DamageScenario, 0, len(defaultAbilities))
	for _, a := range defaultAbilities {
		out = append(out, model.DamageScenario{
			Name:                    a.name,
			AbilityType:             a.ability,
			Element:                 b.Element,
			ScalingStat:             model.ScaleAtk,
			HitCount:                1,
			TalentMultiplierPercent: TalentMultiplier(b, a.ability, ref),
		})
	}
	return out
}

// TalentMultiplier returns the multiplier (percent) of ability at the
// build's talent level. The build's own table wins; otherwise the reference
// level 1 multiplier is scaled by talent growth.
func TalentMultiplier(b model.CharacterBuild, ability model.AbilityType, ref *data.Reference) float64 {
	level := max(b.Talents.Level(ability), 1)
	if row := b.TalentMultipliers[ability]; len(row) > 0 {
		return row[min(level, len(row))-1]
	}
	return ref.TalentMultiplier(ability, level)
}

// ReactionVariants returns a copy of every skill and burst scenario per
// reaction.
func ReactionVariants(scenarios []model.DamageScenario, reactions []model.Reaction) []model.DamageScenario {
	var out []model.DamageScenario
	for _, r := range reactions {
		for _, s := range scenarios {
			if s.AbilityType != model.AbilitySkill && s.AbilityType != model.AbilityBurst {
				continue
			}
			out = append(out, s.WithReaction(r))
		}
	}
	return out
}
