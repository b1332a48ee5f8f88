package combat

import (
	"github.com/udisondev/teyvatcalc/internal/calcerr"
	"github.com/udisondev/teyvatcalc/internal/data"
	"github.com/udisondev/teyvatcalc/internal/game/enemy"
	"github.com/udisondev/teyvatcalc/internal/model"
)

// TransformativeEMBonus returns the elemental mastery bonus (percent) to
// transformative reactions: 1600 × EM / (EM + 2000).
func TransformativeEMBonus(em float64) float64 {
	if em <= 0 {
		return 0
	}
	return 1600 * em / (em + 2000)
}

// AmplifyingEMBonus returns the elemental mastery bonus (percent) to
// vaporize and melt: 278 × EM / (EM + 1400).
func AmplifyingEMBonus(em float64) float64 {
	if em <= 0 {
		return 0
	}
	return 278 * em / (em + 1400)
}

// TransformativeDamage returns the damage of a transformative reaction.
//
//	dmg = coefficient × levelMult(level) × (1 + (emBonus + bonus)/100) × resMult
//
// It ignores defense and cannot crit.
func TransformativeDamage(coefficient float64, level int, em, bonus, resMult float64) float64 {
	return coefficient * data.LevelMultiplier(level) * (1 + (TransformativeEMBonus(em)+bonus)/100) * resMult
}

func applyReaction(e *DamageBreakdownEntry, stats model.CharacterCombatStats, s model.DamageScenario, mult enemy.Multipliers, ref *data.Reference) error {
	if ref == nil {
		return calcerr.Configuration("reaction %q requested without reference data", s.Reaction.Type)
	}
	coef, ok := ref.Reaction(s.Reaction.Type)
	if !ok {
		return calcerr.InvalidInput("scenario.reaction.type", "%q: unknown reaction %q", s.Name, s.Reaction.Type)
	}

	switch coef.Kind {
	case data.ReactionAmplifying:
		e.ReactionMultiplier = coef.ForTrigger(s.Element) *
			(1 + (AmplifyingEMBonus(stats.ElementalMastery)+s.Reaction.Bonus)/100)
		e.AmplifiedAverage = e.Average * e.ReactionMultiplier
		e.TotalAverage = e.AmplifiedAverage
	default:
		dmgElem := coef.DamageElement(s.Element)
		e.TransformativeDamage = TransformativeDamage(coef.Coefficient, mult.EnemyLevel,
			stats.ElementalMastery, s.Reaction.Bonus, mult.ResistanceMultiplier[dmgElem])
		e.TotalAverage = e.Average + e.TransformativeDamage
	}
	return nil
}
