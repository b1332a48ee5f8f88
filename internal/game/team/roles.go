package team

import (
	"github.com/udisondev/teyvatcalc/internal/game/combat"
	"github.com/udisondev/teyvatcalc/internal/model"
)

// Role is the heuristic function of a team member.
type Role string

const (
	RoleDPS     Role = "dps"
	RoleSupport Role = "support"
	RoleHealer  Role = "healer"
)

// RoleThresholds tunes role classification.
type RoleThresholds struct {
	// HealingBonus at or above which a member counts as healer.
	HealingBonus float64 `yaml:"healing_bonus" json:"healing_bonus"`
	// HpShare is the share of HP% in the member's ATK%+HP%+DEF% investment
	// at or above which a member without crit investment counts as healer.
	HpShare float64 `yaml:"hp_share" json:"hp_share"`
	// DPSCritValue at or above which an ATK-leaning member counts as DPS.
	DPSCritValue float64 `yaml:"dps_crit_value" json:"dps_crit_value"`
}

// DefaultRoleThresholds are tuned for endgame builds.
var DefaultRoleThresholds = RoleThresholds{HealingBonus: 15, HpShare: 0.6, DPSCritValue: 140}

// ClassifyRole derives a role from a resolved stat profile.
func (th RoleThresholds) ClassifyRole(s model.CharacterCombatStats) Role {
	cv := 2*combat.EffectiveCritRate(s.CritRate) + combat.EffectiveCritDmg(s.CritDmg)

	if s.HealingBonus >= th.HealingBonus {
		return RoleHealer
	}
	invested := s.AtkPercent + s.HpPercent + s.DefPercent
	if invested > 0 && s.HpPercent/invested >= th.HpShare && cv < th.DPSCritValue {
		return RoleHealer
	}
	if cv >= th.DPSCritValue && s.AtkPercent >= s.DefPercent {
		return RoleDPS
	}
	return RoleSupport
}

// MemberProfile is what role classification knows about a member.
type MemberProfile struct {
	Name  string
	Stats *model.CharacterCombatStats // nil when the member has no build
}

// Roles classifies every member. The main character is always DPS;
// members without a build are supports.
func (th RoleThresholds) Roles(mainName string, members []MemberProfile) map[string]Role {
	roles := make(map[string]Role, len(members)+1)
	for _, m := range members {
		if m.Stats == nil {
			roles[m.Name] = RoleSupport
			continue
		}
		roles[m.Name] = th.ClassifyRole(*m.Stats)
	}
	roles[mainName] = RoleDPS
	return roles
}
