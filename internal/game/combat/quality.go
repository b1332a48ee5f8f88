package combat

import (
	"github.com/udisondev/teyvatcalc/internal/calcerr"
	"github.com/udisondev/teyvatcalc/internal/model"
)

// Build quality ratings by crit value.
const (
	RatingExcellent = "excellent"
	RatingGood      = "good"
	RatingAverage   = "average"
	RatingNeedsWork = "needs work"
)

// BuildQuality summarizes how well a build's crit stats are invested.
type BuildQuality struct {
	TotalAtk  float64 `json:"total_atk"`
	CritValue float64 `json:"crit_value"`
	CritRatio float64 `json:"crit_ratio"`
	Rating    string  `json:"build_quality"`
}

// EvaluateBuild computes crit value (2×CR + CD, on effective values) and
// the CD:CR ratio. A zero crit rate reports ratio 0 with a flag.
func EvaluateBuild(s model.CharacterCombatStats, flags *calcerr.Flags) BuildQuality {
	cr := EffectiveCritRate(s.CritRate)
	cd := EffectiveCritDmg(s.CritDmg)

	q := BuildQuality{
		TotalAtk:  s.TotalAtk(),
		CritValue: 2*cr + cd,
	}
	if cr == 0 {
		flags.Add("character_stats.crit_ratio", calcerr.ReasonZeroCritRate)
	} else {
		q.CritRatio = cd / cr
	}

	switch {
	case q.CritValue >= 200:
		q.Rating = RatingExcellent
	case q.CritValue >= 160:
		q.Rating = RatingGood
	case q.CritValue >= 120:
		q.Rating = RatingAverage
	default:
		q.Rating = RatingNeedsWork
	}
	return q
}
