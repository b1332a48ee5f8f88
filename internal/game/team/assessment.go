package team

import (
	"fmt"
	"strings"

	"github.com/udisondev/teyvatcalc/internal/model"
)

// Synergy thresholds used by Assess.
const (
	HighSynergy = 80
	LowSynergy  = 50
)

// Assessment lists the textual strengths and weaknesses of a team.
type Assessment struct {
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
}

// Assess derives strengths and weaknesses from coverage, synergy and role
// distribution. The output order is deterministic.
func Assess(a Analysis, roles map[string]Role) Assessment {
	var out Assessment

	switch {
	case a.SynergyScore >= HighSynergy:
		out.Strengths = append(out.Strengths, fmt.Sprintf("High team synergy (%.0f/100)", a.SynergyScore))
	case a.SynergyScore < LowSynergy:
		out.Weaknesses = append(out.Weaknesses, fmt.Sprintf("Low team synergy (%.0f/100)", a.SynergyScore))
	}

	var covered []string
	for _, e := range model.ReactiveElements {
		if a.ElementalCoverage[e] {
			covered = append(covered, string(e))
		}
	}
	switch {
	case len(covered) >= 3:
		out.Strengths = append(out.Strengths, "Broad elemental coverage: "+strings.Join(covered, ", "))
	case len(covered) <= 1:
		out.Weaknesses = append(out.Weaknesses, "Narrow elemental coverage limits reaction options")
	}

	present := map[Category]bool{}
	for t := range a.CategorizedBuffs {
		if c, ok := CategoryOf(t); ok {
			present[c] = true
		}
	}
	missing := 0
	for _, c := range Categories {
		if !present[c] {
			missing++
			out.Weaknesses = append(out.Weaknesses, fmt.Sprintf("No %s buffs", strings.ReplaceAll(string(c), "_", " ")))
		}
	}
	if missing == 0 {
		out.Strengths = append(out.Strengths, "Every buff category is covered")
	}

	counts := map[Role]int{}
	for _, r := range roles {
		counts[r]++
	}
	if counts[RoleHealer] > 0 {
		out.Strengths = append(out.Strengths, "Has a dedicated healer")
	} else if len(roles) > 1 {
		out.Weaknesses = append(out.Weaknesses, "No healer in the team")
	}
	if counts[RoleDPS] > 1 {
		out.Weaknesses = append(out.Weaknesses, fmt.Sprintf("%d damage dealers compete for field time", counts[RoleDPS]))
	}
	return out
}
