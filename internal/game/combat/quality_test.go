package combat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/teyvatcalc/internal/calcerr"
)

func TestEvaluateBuild(t *testing.T) {
	tests := []struct {
		name      string
		cr, cd    float64
		value     float64
		ratio     float64
		rating    string
		flagCount int
	}{
		{"reference build", 60, 120, 240, 2, RatingExcellent, 0},
		{"good", 50, 70, 170, 1.4, RatingGood, 0},
		{"average", 40, 50, 130, 1.25, RatingAverage, 0},
		{"base stats", 5, 50, 60, 10, RatingNeedsWork, 0},
		{"overcapped crit rate", 130, 100, 300, 1, RatingExcellent, 0},
		{"zero crit rate", 0, 100, 100, 0, RatingNeedsWork, 1},
		{"negative crit rate", -10, 100, 100, 0, RatingNeedsWork, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := newTestStats()
			stats.CritRate = tt.cr
			stats.CritDmg = tt.cd

			var flags calcerr.Flags
			q := EvaluateBuild(stats, &flags)

			assert.InDelta(t, tt.value, q.CritValue, tolerance)
			assert.InDelta(t, tt.ratio, q.CritRatio, tolerance)
			assert.Equal(t, tt.rating, q.Rating)
			assert.Len(t, flags.List(), tt.flagCount)
			assert.False(t, math.IsNaN(q.CritRatio))
		})
	}
}
