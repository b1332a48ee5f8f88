package calc

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/teyvatcalc/internal/calcerr"
	"github.com/udisondev/teyvatcalc/internal/model"
)

// Format is the encoding of a request document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// BuildRef points at a stored build to use as the main character.
type BuildRef struct {
	UID  string `json:"uid" yaml:"uid"`
	Name string `json:"name" yaml:"name"`
}

// Envelope is the mode-tagged document form of a request.
type Envelope struct {
	Mode      Mode                   `json:"mode" yaml:"mode"`
	Character *model.CharacterBuild  `json:"character,omitempty" yaml:"character,omitempty"`
	BuildRef  *BuildRef              `json:"build_ref,omitempty" yaml:"build_ref,omitempty"`
	Enemy     *model.EnemySpec       `json:"enemy,omitempty" yaml:"enemy,omitempty"`
	Members   []model.TeamMember     `json:"team_members,omitempty" yaml:"team_members,omitempty"`
	Buffs     []model.TeamBuff       `json:"team_buffs,omitempty" yaml:"team_buffs,omitempty"`
	Reactions []model.Reaction       `json:"reactions,omitempty" yaml:"reactions,omitempty"`
	Scenarios []model.DamageScenario `json:"scenarios,omitempty" yaml:"scenarios,omitempty"`
}

// DecodeEnvelope parses a request document without interpreting its mode.
func DecodeEnvelope(raw []byte, format Format) (Envelope, error) {
	var env Envelope
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&env); err != nil {
			return Envelope{}, fmt.Errorf("decoding json request: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		if err := dec.Decode(&env); err != nil {
			return Envelope{}, fmt.Errorf("decoding yaml request: %w", err)
		}
	default:
		return Envelope{}, calcerr.Configuration("unknown request format %q", format)
	}
	return env, nil
}

// Request converts the envelope into the typed request of its mode.
// An unknown mode is a configuration error.
func (e Envelope) Request() (Request, error) {
	switch e.Mode {
	case ModeSimple:
		return SimpleRequest{Character: e.Character, Enemy: e.Enemy}, nil
	case ModeTeam:
		return e.team(), nil
	case ModeMechanical:
		return MechanicalRequest{Character: e.Character, Enemy: e.Enemy, Reactions: e.Reactions, Scenarios: e.Scenarios}, nil
	case ModeAdvanced:
		return AdvancedRequest{Character: e.Character, Enemy: e.Enemy, Scenarios: e.Scenarios, Buffs: e.Buffs}, nil
	case ModeComprehensiveTeam:
		return ComprehensiveTeamRequest{TeamRequest: e.team()}, nil
	}
	return nil, calcerr.Configuration("unknown calculation mode %q", e.Mode)
}

func (e Envelope) team() TeamRequest {
	return TeamRequest{Character: e.Character, Enemy: e.Enemy, Members: e.Members, Buffs: e.Buffs}
}

// Decode parses a request document into its typed request.
func Decode(raw []byte, format Format) (Request, error) {
	env, err := DecodeEnvelope(raw, format)
	if err != nil {
		return nil, err
	}
	return env.Request()
}
