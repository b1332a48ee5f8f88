package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// BuffType is a team buff category.
type BuffType string

const (
	BuffAtkPercent       BuffType = "atk_percent"
	BuffDmgBonus         BuffType = "dmg_bonus"
	BuffResShred         BuffType = "res_shred"
	BuffCritRate         BuffType = "crit_rate"
	BuffCritDmg          BuffType = "crit_dmg"
	BuffElementalMastery BuffType = "elemental_mastery"
)

// BuffTypes lists every buff category.
var BuffTypes = [...]BuffType{
	BuffAtkPercent, BuffDmgBonus, BuffResShred,
	BuffCritRate, BuffCritDmg, BuffElementalMastery,
}

// Valid reports whether t is a known buff category.
func (t BuffType) Valid() bool {
	for _, known := range BuffTypes {
		if t == known {
			return true
		}
	}
	return false
}

// TeamBuff is one named buff contributed by a team member or an effect.
// An empty Element means the buff applies to every element.
type TeamBuff struct {
	Source  string   `json:"source" yaml:"source"`
	Type    BuffType `json:"buff_type" yaml:"buff_type"`
	Value   float64  `json:"value" yaml:"value"`
	Element Element  `json:"element,omitempty" yaml:"element,omitempty"`
	Enabled bool     `json:"enabled" yaml:"enabled"`
}

// TeamMember is a party member. Build is optional and only used to
// classify the member's role; Buffs, when empty, fall back to the known
// buffs of the member's name.
type TeamMember struct {
	Name    string          `json:"name" yaml:"name"`
	Element Element         `json:"element,omitempty" yaml:"element,omitempty"`
	Build   *CharacterBuild `json:"build,omitempty" yaml:"build,omitempty"`
	Buffs   []TeamBuff      `json:"buffs,omitempty" yaml:"buffs,omitempty"`
}

// UnmarshalJSON defaults Enabled to true when the field is absent.
func (b *TeamBuff) UnmarshalJSON(data []byte) error {
	type raw TeamBuff
	tmp := raw{Enabled: true}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*b = TeamBuff(tmp)
	return nil
}

// UnmarshalYAML defaults Enabled to true when the field is absent.
func (b *TeamBuff) UnmarshalYAML(value *yaml.Node) error {
	type raw TeamBuff
	tmp := raw{Enabled: true}
	if err := value.Decode(&tmp); err != nil {
		return err
	}
	*b = TeamBuff(tmp)
	return nil
}
