package calc

import "github.com/udisondev/teyvatcalc/internal/model"

// Mode selects which components a calculation runs.
type Mode string

const (
	ModeSimple            Mode = "simple"
	ModeTeam              Mode = "team"
	ModeMechanical        Mode = "mechanical"
	ModeAdvanced          Mode = "advanced"
	ModeComprehensiveTeam Mode = "comprehensiveTeam"
)

// Request is one calculation. Each mode has its own request type carrying
// only the fields it needs.
type Request interface {
	Mode() Mode
}

// SimpleRequest evaluates the default scenarios of one character.
// A nil Enemy means a standard enemy.
type SimpleRequest struct {
	Character *model.CharacterBuild
	Enemy     *model.EnemySpec
}

// TeamRequest evaluates the main character buffed by the team.
// Members may include the main character; it is not counted twice.
type TeamRequest struct {
	Character *model.CharacterBuild
	Enemy     *model.EnemySpec
	Members   []model.TeamMember
	Buffs     []model.TeamBuff
}

// MechanicalRequest adds reaction variants of the skill and burst
// scenarios. Scenarios replace the default set when given.
type MechanicalRequest struct {
	Character *model.CharacterBuild
	Enemy     *model.EnemySpec
	Reactions []model.Reaction
	Scenarios []model.DamageScenario
}

// AdvancedRequest evaluates caller supplied scenarios and buffs.
// Scenarios are required; buffs get no defaults.
type AdvancedRequest struct {
	Character *model.CharacterBuild
	Enemy     *model.EnemySpec
	Scenarios []model.DamageScenario
	Buffs     []model.TeamBuff
}

// ComprehensiveTeamRequest is a team request that also classifies roles,
// assesses the team and ranks buff investment.
type ComprehensiveTeamRequest struct {
	TeamRequest
}

func (SimpleRequest) Mode() Mode            { return ModeSimple }
func (TeamRequest) Mode() Mode              { return ModeTeam }
func (MechanicalRequest) Mode() Mode        { return ModeMechanical }
func (AdvancedRequest) Mode() Mode          { return ModeAdvanced }
func (ComprehensiveTeamRequest) Mode() Mode { return ModeComprehensiveTeam }
