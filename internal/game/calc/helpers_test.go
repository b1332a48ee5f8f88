package calc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/udisondev/teyvatcalc/internal/data"
	"github.com/udisondev/teyvatcalc/internal/model"
)

// testBuild resolves to 761 total ATK, 60% CR and 120% CD.
func testBuild() *model.CharacterBuild {
	return &model.CharacterBuild{
		Name:    "Hu Tao",
		Element: model.Pyro,
		Level:   90,
		BaseAtk: 300,
		BaseHp:  15000,
		BaseDef: 800,
		Weapon:  &model.Weapon{Name: "Deathmatch", BaseAttack: 311},
		BonusStats: []model.StatLine{
			{Name: "ATK%", Value: 50},
			{Name: "CRIT Rate", Value: 55},
			{Name: "CRIT DMG", Value: 70},
		},
		Talents: model.Talents{Normal: 1, Skill: 1, Burst: 1},
		TalentMultipliers: map[model.AbilityType][]float64{
			model.AbilityNormal: {100},
			model.AbilitySkill:  {150},
			model.AbilityBurst:  {300},
		},
	}
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New(data.MustDefaultReference(), DefaultOptions())
	require.NoError(t, err)
	return e
}

func entry(t *testing.T, r *Result, name string) int {
	t.Helper()
	for i, e := range r.DamageBreakdown {
		if e.Name == name {
			return i
		}
	}
	require.Failf(t, "entry not found", "no breakdown entry %q", name)
	return -1
}
