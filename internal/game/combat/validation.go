package combat

import (
	"github.com/udisondev/teyvatcalc/internal/calcerr"
	"github.com/udisondev/teyvatcalc/internal/model"
)

// ValidateScenario checks the structural validity of a scenario.
// Returns an input validation error naming the offending field.
//
// Checks:
//   - hit count is at least 1 (never clamped)
//   - ability type, element and scaling stat are known
//   - talent multiplier is not negative
func ValidateScenario(s model.DamageScenario) error {
	if s.HitCount < 1 {
		return calcerr.InvalidInput("scenario.hit_count", "%q: must be >= 1, got %d", s.Name, s.HitCount)
	}
	if _, ok := model.ParseAbilityType(string(s.AbilityType)); !ok {
		return calcerr.InvalidInput("scenario.ability_type", "%q: unknown ability type %q", s.Name, s.AbilityType)
	}
	if !s.Element.Valid() {
		return calcerr.InvalidInput("scenario.element", "%q: unknown element %q", s.Name, s.Element)
	}
	switch s.ScalingStat {
	case model.ScaleAtk, model.ScaleHp, model.ScaleDef, model.ScaleEM:
	default:
		return calcerr.InvalidInput("scenario.scaling_stat", "%q: unknown scaling stat %q", s.Name, s.ScalingStat)
	}
	if s.TalentMultiplierPercent < 0 {
		return calcerr.InvalidInput("scenario.talent_multiplier_percent", "%q: must not be negative", s.Name)
	}
	return nil
}

// ScalingValue returns the stat named by scaling from s.
func ScalingValue(s model.CharacterCombatStats, scaling model.ScalingStat) float64 {
	switch scaling {
	case model.ScaleHp:
		return s.TotalHp()
	case model.ScaleDef:
		return s.TotalDef()
	case model.ScaleEM:
		return s.ElementalMastery
	default:
		return s.TotalAtk()
	}
}
