package stats

import (
	"strings"

	"github.com/udisondev/teyvatcalc/internal/model"
)

// attr is a resolvable character attribute.
type attr int

const (
	attrUnknown attr = iota
	attrAtk
	attrAtkPercent
	attrHp
	attrHpPercent
	attrDef
	attrDefPercent
	attrCritRate
	attrCritDmg
	attrEnergyRecharge
	attrElementalMastery
	attrHealingBonus
	attrIncomingHealingBonus
	attrDmgBonus // element carried separately
)

var separators = strings.NewReplacer(" ", "", "_", "", "-", "", ".", "", "%", "")

// plain attribute names after normalization, without element damage bonuses.
var plainNames = map[string]attr{
	"atk":                  attrAtk,
	"attack":               attrAtk,
	"baseattack":           attrAtk,
	"hp":                   attrHp,
	"maxhp":                attrHp,
	"def":                  attrDef,
	"defense":              attrDef,
	"defence":              attrDef,
	"critrate":             attrCritRate,
	"critical":             attrCritRate,
	"criticalrate":         attrCritRate,
	"cr":                   attrCritRate,
	"critdmg":              attrCritDmg,
	"critdamage":           attrCritDmg,
	"criticalhurt":         attrCritDmg,
	"criticaldamage":       attrCritDmg,
	"cd":                   attrCritDmg,
	"energyrecharge":       attrEnergyRecharge,
	"chargeefficiency":     attrEnergyRecharge,
	"er":                   attrEnergyRecharge,
	"elementalmastery":     attrElementalMastery,
	"elementmastery":       attrElementalMastery,
	"em":                   attrElementalMastery,
	"healingbonus":         attrHealingBonus,
	"healadd":              attrHealingBonus,
	"incominghealingbonus": attrIncomingHealingBonus,
	"healedadd":            attrIncomingHealingBonus,
}

// elementAliases maps element spellings, including the game API's internal
// names, to elements.
var elementAliases = map[string]model.Element{
	"pyro":     model.Pyro,
	"fire":     model.Pyro,
	"hydro":    model.Hydro,
	"water":    model.Hydro,
	"electro":  model.Electro,
	"elec":     model.Electro,
	"cryo":     model.Cryo,
	"ice":      model.Cryo,
	"anemo":    model.Anemo,
	"wind":     model.Anemo,
	"geo":      model.Geo,
	"rock":     model.Geo,
	"dendro":   model.Dendro,
	"grass":    model.Dendro,
	"physical": model.Physical,
}

// percentMarkers are trailing unit words, longest first.
var percentMarkers = []string{"percentage", "percent", "pct"}

var dmgBonusSuffixes = []string{"dmgbonus", "damagebonus", "addhurt", "dmg"}

// classify maps a stat name to an attribute. Matching ignores case,
// separators and the unit: "ATK%", "atk_percent", "ATK Percentage" and
// "FIGHT_PROP_ATTACK_PERCENT" are all ATK%, while "ATK" is flat ATK.
func classify(name string) (attr, model.Element) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.TrimPrefix(n, "fight_prop_")

	percent := strings.Contains(n, "%")
	n = separators.Replace(n)
	for _, marker := range percentMarkers {
		if stem, ok := strings.CutSuffix(n, marker); ok {
			n, percent = stem, true
			break
		}
	}

	for _, suffix := range dmgBonusSuffixes {
		if prefix, ok := strings.CutSuffix(n, suffix); ok {
			if e, ok := elementAliases[prefix]; ok {
				return attrDmgBonus, e
			}
		}
	}

	a, ok := plainNames[n]
	if !ok {
		return attrUnknown, ""
	}
	if percent {
		switch a {
		case attrAtk:
			return attrAtkPercent, ""
		case attrHp:
			return attrHpPercent, ""
		case attrDef:
			return attrDefPercent, ""
		}
	}
	return a, ""
}
