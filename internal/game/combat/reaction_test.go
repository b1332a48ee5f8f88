package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/teyvatcalc/internal/calcerr"
	"github.com/udisondev/teyvatcalc/internal/data"
	"github.com/udisondev/teyvatcalc/internal/model"
)

func TestTransformativeReactionIsAdditive(t *testing.T) {
	ref := data.MustDefaultReference()
	mult := mustMultipliers(model.EnemySpec{Level: 90})

	plain, err := ComputeScenario(newTestStats(), newTestScenario(), mult, ref)
	require.NoError(t, err)

	s := newTestScenario().WithReaction(model.Reaction{Type: model.ReactionOverloaded})
	e, err := ComputeScenario(newTestStats(), s, mult, ref)
	require.NoError(t, err)

	assert.Equal(t, "Skill (overloaded)", e.Name)
	assert.Equal(t, plain.Average, e.Average, "reaction must not change average")
	want := 2.75 * data.LevelMultiplier(90) * 0.9
	assert.InDelta(t, want, e.TransformativeDamage, tolerance)
	assert.InDelta(t, e.Average+e.TransformativeDamage, e.TotalAverage, tolerance)
}

func TestTransformativeReactionUsesReactionElement(t *testing.T) {
	ref := data.MustDefaultReference()
	mult := mustMultipliers(model.EnemySpec{Level: 90, Resistances: map[model.Element]float64{
		model.Cryo: 50, model.Electro: 10,
	}})

	s := newTestScenario()
	s.Element = model.Electro
	s.Reaction = &model.Reaction{Type: model.ReactionSuperconduct}

	e, err := ComputeScenario(newTestStats(), s, mult, ref)
	require.NoError(t, err)
	assert.InDelta(t, 1.5*data.LevelMultiplier(90)*0.5, e.TransformativeDamage, tolerance)
}

func TestTransformativeDamageMonotonic(t *testing.T) {
	prev := 0.0
	for em := 0.0; em <= 2000; em += 50 {
		cur := TransformativeDamage(2.0, 90, em, 0, 0.9)
		assert.GreaterOrEqual(t, cur, prev, "em=%v", em)
		prev = cur
	}

	prev = 0
	for lvl := 1; lvl <= 100; lvl++ {
		cur := TransformativeDamage(2.0, lvl, 100, 0, 0.9)
		assert.GreaterOrEqual(t, cur, prev, "level=%d", lvl)
		prev = cur
	}

	assert.Greater(t, TransformativeDamage(2.0, 90, 100, 40, 0.9), TransformativeDamage(2.0, 90, 100, 0, 0.9))
}

func TestEMBonuses(t *testing.T) {
	assert.Zero(t, TransformativeEMBonus(0))
	assert.Zero(t, TransformativeEMBonus(-100))
	assert.InDelta(t, 800.0, TransformativeEMBonus(2000), tolerance)
	assert.Zero(t, AmplifyingEMBonus(0))
	assert.InDelta(t, 139.0, AmplifyingEMBonus(1400), tolerance)
}

func TestAmplifyingReaction(t *testing.T) {
	ref := data.MustDefaultReference()
	mult := mustMultipliers(model.EnemySpec{Level: 90})

	stats := newTestStats()
	stats.ElementalMastery = 1400

	s := newTestScenario()
	s.Element = model.Hydro
	s.Reaction = &model.Reaction{Type: model.ReactionVaporize, Bonus: 15}

	e, err := ComputeScenario(stats, s, mult, ref)
	require.NoError(t, err)

	wantMult := 2.0 * (1 + (139.0+15)/100)
	assert.InDelta(t, wantMult, e.ReactionMultiplier, tolerance)
	assert.InDelta(t, e.Average*wantMult, e.AmplifiedAverage, tolerance)
	assert.Equal(t, e.AmplifiedAverage, e.TotalAverage)
	assert.Zero(t, e.TransformativeDamage)
}

func TestUnknownReaction(t *testing.T) {
	s := newTestScenario()
	s.Reaction = &model.Reaction{Type: "quicken"}

	_, err := ComputeScenario(newTestStats(), s, mustMultipliers(model.EnemySpec{Level: 90}), data.MustDefaultReference())
	require.ErrorIs(t, err, calcerr.ErrInputValidation)
	assert.Equal(t, "scenario.reaction.type", calcerr.FieldOf(err))

	_, err = ComputeScenario(newTestStats(), s, mustMultipliers(model.EnemySpec{Level: 90}), nil)
	assert.ErrorIs(t, err, calcerr.ErrConfiguration)
}
