package model

// StatLine is a single named stat roll: an artifact main stat, a substat,
// a weapon secondary stat or a manually entered bonus.
type StatLine struct {
	Name  string  `json:"name" yaml:"name"`
	Value float64 `json:"value" yaml:"value"`
}

// Weapon is the equipped weapon of a build.
type Weapon struct {
	Name       string    `json:"name,omitempty" yaml:"name,omitempty"`
	Level      int       `json:"level,omitempty" yaml:"level,omitempty"`
	Refinement int       `json:"refinement,omitempty" yaml:"refinement,omitempty"`
	BaseAttack float64   `json:"base_attack" yaml:"base_attack"`
	SubStat    *StatLine `json:"sub_stat,omitempty" yaml:"sub_stat,omitempty"`
}

// Artifact is one equipped artifact piece.
type Artifact struct {
	Slot     string     `json:"slot,omitempty" yaml:"slot,omitempty"`
	SetName  string     `json:"set_name,omitempty" yaml:"set_name,omitempty"`
	Level    int        `json:"level,omitempty" yaml:"level,omitempty"`
	MainStat StatLine   `json:"main_stat" yaml:"main_stat"`
	SubStats []StatLine `json:"sub_stats,omitempty" yaml:"sub_stats,omitempty"`
}

// Talents holds the upgrade level of each active talent (1..15).
type Talents struct {
	Normal int `json:"normal,omitempty" yaml:"normal,omitempty"`
	Skill  int `json:"skill,omitempty" yaml:"skill,omitempty"`
	Burst  int `json:"burst,omitempty" yaml:"burst,omitempty"`
}

// Level returns the talent level for the ability.
// Normal, charged and plunge attacks share the normal attack talent.
func (t Talents) Level(a AbilityType) int {
	switch a {
	case AbilitySkill:
		return t.Skill
	case AbilityBurst:
		return t.Burst
	default:
		return t.Normal
	}
}

// CharacterBuild is the raw, caller-owned description of a character.
// Weapon and Artifacts are optional: a partially configured character
// still resolves with whatever is present.
type CharacterBuild struct {
	Name    string  `json:"name" yaml:"name"`
	Element Element `json:"element" yaml:"element"`
	Level   int     `json:"level" yaml:"level"`
	BaseAtk float64 `json:"base_atk" yaml:"base_atk"`
	BaseHp  float64 `json:"base_hp" yaml:"base_hp"`
	BaseDef float64 `json:"base_def" yaml:"base_def"`

	Weapon    *Weapon    `json:"weapon,omitempty" yaml:"weapon,omitempty"`
	Artifacts []Artifact `json:"artifacts,omitempty" yaml:"artifacts,omitempty"`

	// BonusStats carries ascension stats and manual entries.
	BonusStats []StatLine `json:"bonus_stats,omitempty" yaml:"bonus_stats,omitempty"`

	Talents Talents `json:"talents" yaml:"talents"`

	// TalentMultipliers optionally maps an ability to its multiplier (in
	// percent) per talent level, index 0 = level 1.
	TalentMultipliers map[AbilityType][]float64 `json:"talent_multipliers,omitempty" yaml:"talent_multipliers,omitempty"`
}
