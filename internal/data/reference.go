package data

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/teyvatcalc/internal/calcerr"
	"github.com/udisondev/teyvatcalc/internal/model"
)

//go:embed reference.yaml
var embeddedReference []byte

// ReactionKind distinguishes reactions that deal their own damage from
// reactions that multiply the triggering hit.
type ReactionKind string

const (
	ReactionTransformative ReactionKind = "transformative"
	ReactionAmplifying     ReactionKind = "amplifying"
)

// ReactionCoefficient is one row of the reaction table.
type ReactionCoefficient struct {
	Kind        ReactionKind              `yaml:"kind"`
	Coefficient float64                   `yaml:"coefficient"`
	Element     model.Element             `yaml:"element"`  // transformative damage element; empty = trigger element
	Triggers    map[model.Element]float64 `yaml:"triggers"` // amplifying multiplier per trigger element
}

// ForTrigger returns the amplifying multiplier when the reaction is
// triggered by element e, falling back to Coefficient.
func (c ReactionCoefficient) ForTrigger(e model.Element) float64 {
	if v, ok := c.Triggers[e]; ok {
		return v
	}
	return c.Coefficient
}

// DamageElement returns the element the transformative damage is dealt as.
func (c ReactionCoefficient) DamageElement(trigger model.Element) model.Element {
	if c.Element != "" {
		return c.Element
	}
	return trigger
}

// Reference is the immutable constant data the engine calculates with.
// Accessors return copies; a loaded Reference is safe for concurrent use.
type Reference struct {
	BaseCritRate       float64 `yaml:"base_crit_rate"`
	BaseCritDmg        float64 `yaml:"base_crit_dmg"`
	BaseEnergyRecharge float64 `yaml:"base_energy_recharge"`
	ReferenceLevel     int     `yaml:"reference_level"`

	Reactions                map[model.ReactionType]ReactionCoefficient `yaml:"reactions"`
	TalentGrowth             []float64                                  `yaml:"talent_growth"`
	DefaultTalentMultipliers map[model.AbilityType]float64              `yaml:"default_talent_multipliers"`
	KnownBuffs               map[string][]model.TeamBuff                `yaml:"known_buffs"`
}

var defaultReference = sync.OnceValues(func() (*Reference, error) {
	return ParseReference(embeddedReference)
})

// DefaultReference returns the embedded reference data, parsed once.
func DefaultReference() (*Reference, error) {
	return defaultReference()
}

// LoadReference loads reference data from a YAML file.
// An empty path returns the embedded data.
func LoadReference(path string) (*Reference, error) {
	if path == "" {
		return DefaultReference()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading reference data %s: %w", path, err)
	}
	ref, err := ParseReference(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing reference data %s: %w", path, err)
	}
	return ref, nil
}

// ParseReference decodes and validates reference data.
func ParseReference(raw []byte) (*Reference, error) {
	var ref Reference
	if err := yaml.Unmarshal(raw, &ref); err != nil {
		return nil, fmt.Errorf("decoding reference yaml: %w", err)
	}
	if err := ref.validate(); err != nil {
		return nil, calcerr.Configuration("invalid reference data: %v", err)
	}

	known := make(map[string][]model.TeamBuff, len(ref.KnownBuffs))
	for name, buffs := range ref.KnownBuffs {
		known[NormalizeName(name)] = buffs
	}
	ref.KnownBuffs = known
	return &ref, nil
}

func (r *Reference) validate() error {
	if r.BaseCritDmg < 0 || r.BaseCritRate < 0 {
		return fmt.Errorf("base crit constants must not be negative")
	}
	if r.ReferenceLevel <= 0 {
		return fmt.Errorf("reference_level must be positive, got %d", r.ReferenceLevel)
	}
	if len(r.Reactions) == 0 {
		return fmt.Errorf("reaction table is empty")
	}
	for name, c := range r.Reactions {
		if c.Coefficient <= 0 {
			return fmt.Errorf("reaction %s: coefficient must be positive", name)
		}
		switch c.Kind {
		case ReactionTransformative, ReactionAmplifying:
		default:
			return fmt.Errorf("reaction %s: unknown kind %q", name, c.Kind)
		}
	}
	if len(r.TalentGrowth) == 0 {
		return fmt.Errorf("talent_growth is empty")
	}
	for i := 1; i < len(r.TalentGrowth); i++ {
		if r.TalentGrowth[i] < r.TalentGrowth[i-1] {
			return fmt.Errorf("talent_growth must be non-decreasing at level %d", i+1)
		}
	}
	for name, buffs := range r.KnownBuffs {
		for _, b := range buffs {
			if !b.Type.Valid() {
				return fmt.Errorf("known buff %s: unknown buff type %q", name, b.Type)
			}
		}
	}
	return nil
}

// Reaction returns the coefficient row for reaction t.
func (r *Reference) Reaction(t model.ReactionType) (ReactionCoefficient, bool) {
	c, ok := r.Reactions[t]
	return c, ok
}

// TalentMultiplier returns the default multiplier (percent) of ability at
// talent level. Levels are clamped to the growth table; charged and plunge
// attacks use the normal attack row.
func (r *Reference) TalentMultiplier(ability model.AbilityType, level int) float64 {
	base, ok := r.DefaultTalentMultipliers[ability]
	if !ok {
		base = r.DefaultTalentMultipliers[model.AbilityNormal]
	}
	return base * r.TalentGrowthAt(level) / 100
}

// TalentGrowthAt returns the growth percent for level, clamped to the table.
func (r *Reference) TalentGrowthAt(level int) float64 {
	if level < 1 {
		level = 1
	}
	if level > len(r.TalentGrowth) {
		level = len(r.TalentGrowth)
	}
	return r.TalentGrowth[level-1]
}

// KnownBuffsFor returns the default buffs of a character, sourced and
// enabled. Names match case- and separator-insensitively.
func (r *Reference) KnownBuffsFor(name string) []model.TeamBuff {
	buffs := r.KnownBuffs[NormalizeName(name)]
	if len(buffs) == 0 {
		return nil
	}
	out := make([]model.TeamBuff, len(buffs))
	for i, b := range buffs {
		b.Source = name
		b.Enabled = true
		out[i] = b
	}
	return out
}

// KnownCharacters returns the names with default buffs, sorted.
func (r *Reference) KnownCharacters() []string {
	names := make([]string, 0, len(r.KnownBuffs))
	for n := range r.KnownBuffs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// NormalizeName folds a character name for lookups: "Hu Tao", "hu_tao"
// and "HUTAO" are the same character.
func NormalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer(" ", "", "_", "", "-", "").Replace(name)
}
