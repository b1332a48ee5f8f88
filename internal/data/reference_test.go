package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/teyvatcalc/internal/model"
)

func TestDefaultReference(t *testing.T) {
	ref, err := DefaultReference()
	require.NoError(t, err)

	assert.Equal(t, 5.0, ref.BaseCritRate)
	assert.Equal(t, 50.0, ref.BaseCritDmg)
	assert.Equal(t, 100.0, ref.BaseEnergyRecharge)
	assert.Equal(t, 90, ref.ReferenceLevel)
	assert.Len(t, ref.TalentGrowth, 15)

	again, err := DefaultReference()
	require.NoError(t, err)
	assert.Same(t, ref, again, "embedded reference must be parsed once")
}

func TestReactionTable(t *testing.T) {
	ref := MustDefaultReference()

	overloaded, ok := ref.Reaction(model.ReactionOverloaded)
	require.True(t, ok)
	assert.Equal(t, ReactionTransformative, overloaded.Kind)
	assert.Equal(t, model.Pyro, overloaded.DamageElement(model.Electro))

	swirl, ok := ref.Reaction(model.ReactionSwirl)
	require.True(t, ok)
	assert.Equal(t, model.Hydro, swirl.DamageElement(model.Hydro), "swirl deals the swirled element")

	vape, ok := ref.Reaction(model.ReactionVaporize)
	require.True(t, ok)
	assert.Equal(t, ReactionAmplifying, vape.Kind)
	assert.Equal(t, 2.0, vape.ForTrigger(model.Hydro))
	assert.Equal(t, 1.5, vape.ForTrigger(model.Pyro))
	assert.Equal(t, 1.5, vape.ForTrigger(model.Geo), "unknown trigger falls back to coefficient")

	_, ok = ref.Reaction("spread")
	assert.False(t, ok)
}

func TestTalentMultiplier(t *testing.T) {
	ref := MustDefaultReference()

	tests := []struct {
		name    string
		ability model.AbilityType
		level   int
		want    float64
	}{
		{"skill level 1", model.AbilitySkill, 1, 150},
		{"skill level 10", model.AbilitySkill, 10, 270},
		{"burst level 13", model.AbilityBurst, 13, 637.5},
		{"charged uses normal row", model.AbilityCharged, 1, 50},
		{"level 0 clamps to 1", model.AbilityNormal, 0, 50},
		{"level 20 clamps to 15", model.AbilityNormal, 20, 118.75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ref.TalentMultiplier(tt.ability, tt.level), 1e-9)
		})
	}
}

func TestKnownBuffsFor(t *testing.T) {
	ref := MustDefaultReference()

	buffs := ref.KnownBuffsFor("Bennett")
	require.Len(t, buffs, 1)
	assert.Equal(t, model.TeamBuff{Source: "Bennett", Type: model.BuffAtkPercent, Value: 50, Enabled: true}, buffs[0])

	buffs = ref.KnownBuffsFor("  CHEVREUSE ")
	assert.Len(t, buffs, 3)

	assert.Nil(t, ref.KnownBuffsFor("Nobody"))

	// Returned slices are copies.
	buffs = ref.KnownBuffsFor("zhongli")
	buffs[0].Value = 999
	assert.Equal(t, 20.0, ref.KnownBuffsFor("zhongli")[0].Value)
}

func TestParseReferenceRejectsBadTables(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty reactions", "reference_level: 90\ntalent_growth: [100]\n"},
		{"zero coefficient", "reference_level: 90\ntalent_growth: [100]\nreactions:\n  bloom: {kind: transformative, coefficient: 0}\n"},
		{"unknown kind", "reference_level: 90\ntalent_growth: [100]\nreactions:\n  bloom: {kind: weird, coefficient: 2}\n"},
		{"decreasing growth", "reference_level: 90\ntalent_growth: [100, 90]\nreactions:\n  bloom: {kind: transformative, coefficient: 2}\n"},
		{"missing level", "talent_growth: [100]\nreactions:\n  bloom: {kind: transformative, coefficient: 2}\n"},
		{"bad known buff", "reference_level: 90\ntalent_growth: [100]\nreactions:\n  bloom: {kind: transformative, coefficient: 2}\nknown_buffs:\n  x:\n    - {buff_type: luck, value: 1}\n"},
		{"not yaml", "reactions: [unclosed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseReference([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadReference(t *testing.T) {
	ref, err := LoadReference("")
	require.NoError(t, err)
	assert.Equal(t, MustDefaultReference(), ref)

	path := filepath.Join(t.TempDir(), "ref.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"base_crit_rate: 10\nbase_crit_dmg: 60\nreference_level: 80\ntalent_growth: [100]\n"+
			"reactions:\n  bloom: {kind: transformative, coefficient: 2, element: dendro}\n"), 0o644))

	ref, err = LoadReference(path)
	require.NoError(t, err)
	assert.Equal(t, 10.0, ref.BaseCritRate)
	assert.Equal(t, 80, ref.ReferenceLevel)

	_, err = LoadReference(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
