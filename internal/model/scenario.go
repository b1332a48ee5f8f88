package model

import "strings"

// AbilityType classifies the action a scenario models.
type AbilityType string

const (
	AbilityNormal  AbilityType = "normal"
	AbilityCharged AbilityType = "charged"
	AbilityPlunge  AbilityType = "plunge"
	AbilitySkill   AbilityType = "skill"
	AbilityBurst   AbilityType = "burst"
)

// ParseAbilityType accepts both the short names and the long forms used by
// the game API ("normal_attack", "elemental_skill", ...).
func ParseAbilityType(s string) (AbilityType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "normal", "normal_attack":
		return AbilityNormal, true
	case "charged", "charged_attack":
		return AbilityCharged, true
	case "plunge", "plunge_attack", "plunging_attack":
		return AbilityPlunge, true
	case "skill", "elemental_skill":
		return AbilitySkill, true
	case "burst", "elemental_burst":
		return AbilityBurst, true
	}
	return "", false
}

// ScalingStat names the attribute an ability's damage is proportional to.
type ScalingStat string

const (
	ScaleAtk ScalingStat = "atk"
	ScaleHp  ScalingStat = "hp"
	ScaleDef ScalingStat = "def"
	ScaleEM  ScalingStat = "em"
)

// ReactionType names an elemental reaction.
type ReactionType string

const (
	ReactionOverloaded     ReactionType = "overloaded"
	ReactionSuperconduct   ReactionType = "superconduct"
	ReactionElectroCharged ReactionType = "electro_charged"
	ReactionSwirl          ReactionType = "swirl"
	ReactionShattered      ReactionType = "shattered"
	ReactionBurning        ReactionType = "burning"
	ReactionBloom          ReactionType = "bloom"
	ReactionHyperbloom     ReactionType = "hyperbloom"
	ReactionBurgeon        ReactionType = "burgeon"
	ReactionVaporize       ReactionType = "vaporize"
	ReactionMelt           ReactionType = "melt"
)

// Reaction attaches an elemental reaction to a scenario.
// Bonus is an additional reaction damage bonus in percent (sets, passives).
type Reaction struct {
	Type  ReactionType `json:"type" yaml:"type"`
	Bonus float64      `json:"bonus,omitempty" yaml:"bonus,omitempty"`
}

// DamageScenario is one named combat action. It is immutable input and
// produces exactly one breakdown entry.
type DamageScenario struct {
	Name                       string      `json:"name" yaml:"name"`
	AbilityType                AbilityType `json:"ability_type" yaml:"ability_type"`
	Element                    Element     `json:"element" yaml:"element"`
	ScalingStat                ScalingStat `json:"scaling_stat" yaml:"scaling_stat"`
	HitCount                   int         `json:"hit_count" yaml:"hit_count"`
	TalentMultiplierPercent    float64     `json:"talent_multiplier_percent" yaml:"talent_multiplier_percent"`
	AdditiveFlatBonus          float64     `json:"additive_flat_bonus,omitempty" yaml:"additive_flat_bonus,omitempty"`
	AdditiveDamageBonusPercent float64     `json:"additive_damage_bonus_percent,omitempty" yaml:"additive_damage_bonus_percent,omitempty"`
	Reaction                   *Reaction   `json:"reaction,omitempty" yaml:"reaction,omitempty"`
}

// WithReaction returns a copy of s carrying the reaction, renamed after it.
func (s DamageScenario) WithReaction(r Reaction) DamageScenario {
	s.Name = s.Name + " (" + string(r.Type) + ")"
	s.Reaction = &r
	return s
}
