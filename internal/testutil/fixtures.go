package testutil

import "github.com/udisondev/teyvatcalc/internal/model"

// Fixtures holds shared test data.
var Fixtures = struct {
	UID      string
	OtherUID string
}{
	UID:      "700000001",
	OtherUID: "800000002",
}

// HuTaoBuild returns a fully equipped pyro HP scaler.
// Each call returns a fresh copy.
func HuTaoBuild() model.CharacterBuild {
	return model.CharacterBuild{
		Name:    "Hu Tao",
		Element: model.Pyro,
		Level:   90,
		BaseAtk: 106,
		BaseHp:  15552,
		BaseDef: 876,
		Weapon: &model.Weapon{
			Name:       "Staff of Homa",
			Level:      90,
			Refinement: 1,
			BaseAttack: 608,
			SubStat:    &model.StatLine{Name: "CRIT DMG", Value: 66.2},
		},
		Artifacts: []model.Artifact{
			{Slot: "flower", SetName: "Crimson Witch of Flames", MainStat: model.StatLine{Name: "HP", Value: 4780},
				SubStats: []model.StatLine{{Name: "CRIT Rate", Value: 7.0}, {Name: "ATK%", Value: 5.8}}},
			{Slot: "goblet", SetName: "Crimson Witch of Flames", MainStat: model.StatLine{Name: "Pyro DMG Bonus", Value: 46.6}},
			{Slot: "circlet", SetName: "Crimson Witch of Flames", MainStat: model.StatLine{Name: "CRIT Rate", Value: 31.1}},
		},
		BonusStats: []model.StatLine{{Name: "CRIT DMG", Value: 38.4}},
		Talents:    model.Talents{Normal: 10, Skill: 10, Burst: 10},
		TalentMultipliers: map[model.AbilityType][]float64{
			model.AbilitySkill: {3.84, 4.07, 4.3, 4.6, 4.83, 5.06, 5.36, 5.66, 5.96, 6.26},
		},
	}
}

// BennettBuild returns a healer build.
func BennettBuild() model.CharacterBuild {
	return model.CharacterBuild{
		Name:    "Bennett",
		Element: model.Pyro,
		Level:   90,
		BaseAtk: 191,
		BaseHp:  12397,
		BaseDef: 771,
		Weapon:  &model.Weapon{Name: "Mistsplitter Reforged", BaseAttack: 674},
		Artifacts: []model.Artifact{
			{Slot: "circlet", SetName: "Noblesse Oblige", MainStat: model.StatLine{Name: "Healing Bonus", Value: 35.9}},
		},
		BonusStats: []model.StatLine{{Name: "Energy Recharge", Value: 26.7}},
		Talents:    model.Talents{Normal: 1, Skill: 9, Burst: 13},
	}
}
