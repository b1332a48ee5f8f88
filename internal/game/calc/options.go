package calc

import (
	"github.com/udisondev/teyvatcalc/internal/game/enemy"
	"github.com/udisondev/teyvatcalc/internal/game/team"
)

// Options tunes an Engine.
type Options struct {
	Enemy enemy.Defaults
	// EnemyLevel is used when a request carries no enemy.
	EnemyLevel   int
	Synergy      team.SynergyWeights
	Roles        team.RoleThresholds
	MaxTeamSize  int
	MaxScenarios int
}

// DefaultOptions returns the standard engine options: level 90 attacker
// against a level 90, 10% resistance enemy, teams of up to 4 and up to 10
// scenarios.
func DefaultOptions() Options {
	return Options{
		Enemy:        enemy.StandardDefaults,
		EnemyLevel:   90,
		Synergy:      team.DefaultSynergyWeights,
		Roles:        team.DefaultRoleThresholds,
		MaxTeamSize:  4,
		MaxScenarios: 10,
	}
}
