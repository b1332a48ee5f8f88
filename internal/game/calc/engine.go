// Package calc is the single entry point of the damage engine: it runs the
// stat, enemy, damage and team components for a calculation mode and
// returns a uniform result.
package calc

import (
	"log/slog"

	"github.com/udisondev/teyvatcalc/internal/calcerr"
	"github.com/udisondev/teyvatcalc/internal/data"
	"github.com/udisondev/teyvatcalc/internal/game/combat"
	"github.com/udisondev/teyvatcalc/internal/game/enemy"
	"github.com/udisondev/teyvatcalc/internal/game/stats"
	"github.com/udisondev/teyvatcalc/internal/game/team"
	"github.com/udisondev/teyvatcalc/internal/model"
)

// Engine evaluates calculation requests. It holds read-only reference data
// and is safe for concurrent use.
type Engine struct {
	ref  *data.Reference
	opts Options
}

// New creates an engine over reference data. An unset default attacker
// level falls back to the reference level.
func New(ref *data.Reference, opts Options) (*Engine, error) {
	if ref == nil {
		return nil, calcerr.Configuration("reference data is required")
	}
	if opts.Enemy.AttackerLevel <= 0 {
		opts.Enemy.AttackerLevel = ref.ReferenceLevel
	}
	if opts.MaxTeamSize < 1 {
		return nil, calcerr.Configuration("max team size must be positive, got %d", opts.MaxTeamSize)
	}
	if opts.MaxScenarios < 1 {
		return nil, calcerr.Configuration("max scenarios must be positive, got %d", opts.MaxScenarios)
	}
	return &Engine{ref: ref, opts: opts}, nil
}

// Calculate dispatches req to its mode.
func (e *Engine) Calculate(req Request) (*Result, error) {
	if req == nil {
		return nil, calcerr.Configuration("nil request")
	}
	slog.Debug("dispatching calculation", "mode", req.Mode())

	switch r := req.(type) {
	case SimpleRequest:
		return e.Simple(r)
	case TeamRequest:
		return e.Team(r)
	case MechanicalRequest:
		return e.Mechanical(r)
	case AdvancedRequest:
		return e.Advanced(r)
	case ComprehensiveTeamRequest:
		return e.ComprehensiveTeam(r)
	}
	return nil, calcerr.Configuration("unknown calculation mode %q", req.Mode())
}

// Simple evaluates the default scenarios of the character.
func (e *Engine) Simple(req SimpleRequest) (*Result, error) {
	c, err := e.begin(ModeSimple, req.Character, req.Enemy)
	if err != nil {
		return nil, err
	}
	if err := c.damage(DefaultScenarios(*req.Character, e.ref)); err != nil {
		return nil, err
	}
	return c.finish(), nil
}

// Team evaluates the character's default scenarios buffed by the team.
func (e *Engine) Team(req TeamRequest) (*Result, error) {
	c, err := e.begin(ModeTeam, req.Character, req.Enemy)
	if err != nil {
		return nil, err
	}
	if err := e.runTeam(c, req); err != nil {
		return nil, err
	}
	return c.finish(), nil
}

// ComprehensiveTeam is Team plus role distribution, strengths and
// weaknesses, and investment priority.
func (e *Engine) ComprehensiveTeam(req ComprehensiveTeamRequest) (*Result, error) {
	c, err := e.begin(ModeComprehensiveTeam, req.Character, req.Enemy)
	if err != nil {
		return nil, err
	}
	if err := e.runTeam(c, req.TeamRequest); err != nil {
		return nil, err
	}

	members := e.otherMembers(req.Character.Name, req.Members)
	profiles := make([]team.MemberProfile, 0, len(members))
	for _, m := range members {
		p := team.MemberProfile{Name: m.Name}
		if m.Build != nil {
			s := stats.Resolve(*m.Build, stats.BaselineOf(e.ref))
			p.Stats = &s
		}
		profiles = append(profiles, p)
	}
	c.res.RoleDistribution = e.opts.Roles.Roles(req.Character.Name, profiles)

	assessment := team.Assess(*c.res.Team, c.res.RoleDistribution)
	c.res.Strengths = assessment.Strengths
	c.res.Weaknesses = assessment.Weaknesses

	c.res.InvestmentPriority, err = team.InvestmentPriority(c.res.CharacterStats, c.buffs, c.scenarios, c.spec, c.teamOptions)
	if err != nil {
		return nil, err
	}
	return c.finish(), nil
}

// Mechanical evaluates the scenarios plus reaction variants of the skill
// and burst scenarios.
func (e *Engine) Mechanical(req MechanicalRequest) (*Result, error) {
	c, err := e.begin(ModeMechanical, req.Character, req.Enemy)
	if err != nil {
		return nil, err
	}
	if err := e.checkScenarios(req.Scenarios); err != nil {
		return nil, err
	}
	scenarios := req.Scenarios
	if len(scenarios) == 0 {
		scenarios = DefaultScenarios(*req.Character, e.ref)
	}
	scenarios = append(scenarios[:len(scenarios):len(scenarios)], ReactionVariants(scenarios, req.Reactions)...)
	if err := c.damage(scenarios); err != nil {
		return nil, err
	}
	return c.finish(), nil
}

// Advanced evaluates caller supplied scenarios. When buffs are given the
// team analysis is attached.
func (e *Engine) Advanced(req AdvancedRequest) (*Result, error) {
	c, err := e.begin(ModeAdvanced, req.Character, req.Enemy)
	if err != nil {
		return nil, err
	}
	if len(req.Scenarios) == 0 {
		return nil, calcerr.InvalidInput("scenarios", "advanced mode requires at least one scenario")
	}
	if err := e.checkScenarios(req.Scenarios); err != nil {
		return nil, err
	}
	if err := c.damage(req.Scenarios); err != nil {
		return nil, err
	}
	if len(req.Buffs) > 0 {
		if err := c.compose(req.Buffs, []model.Element{req.Character.Element}); err != nil {
			return nil, err
		}
	}
	return c.finish(), nil
}

func (e *Engine) runTeam(c *calculation, req TeamRequest) error {
	members := e.otherMembers(req.Character.Name, req.Members)
	if size := len(members) + 1; size > e.opts.MaxTeamSize {
		return calcerr.InvalidInput("team_members", "team of %d exceeds the limit of %d", size, e.opts.MaxTeamSize)
	}
	if err := c.damage(DefaultScenarios(*req.Character, e.ref)); err != nil {
		return err
	}

	buffs := make([]model.TeamBuff, 0, len(req.Buffs))
	elements := []model.Element{req.Character.Element}
	for _, m := range members {
		if len(m.Buffs) > 0 {
			buffs = append(buffs, m.Buffs...)
		} else {
			buffs = append(buffs, e.ref.KnownBuffsFor(m.Name)...)
		}
		switch {
		case m.Element != "":
			elements = append(elements, m.Element)
		case m.Build != nil:
			elements = append(elements, m.Build.Element)
		}
	}
	buffs = append(buffs, req.Buffs...)
	return c.compose(buffs, elements)
}

// otherMembers drops the main character and repeated members from members.
// The first listing of a member wins.
func (e *Engine) otherMembers(main string, members []model.TeamMember) []model.TeamMember {
	seen := map[string]bool{data.NormalizeName(main): true}
	out := make([]model.TeamMember, 0, len(members))
	for _, m := range members {
		name := data.NormalizeName(m.Name)
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, m)
	}
	return out
}

func (e *Engine) checkScenarios(scenarios []model.DamageScenario) error {
	if len(scenarios) > e.opts.MaxScenarios {
		return calcerr.InvalidInput("scenarios", "%d scenarios exceed the limit of %d", len(scenarios), e.opts.MaxScenarios)
	}
	return nil
}

// calculation is the state of one Calculate call.
type calculation struct {
	res         *Result
	ref         *data.Reference
	spec        model.EnemySpec
	mult        enemy.Multipliers
	scenarios   []model.DamageScenario
	buffs       []model.TeamBuff
	teamOptions team.Options
	flags       calcerr.Flags
}

func (e *Engine) begin(mode Mode, character *model.CharacterBuild, spec *model.EnemySpec) (*calculation, error) {
	if character == nil {
		return nil, calcerr.Configuration("%s mode requires a main character", mode)
	}

	c := &calculation{
		ref:  e.ref,
		spec: model.EnemySpec{Level: e.opts.EnemyLevel},
		teamOptions: team.Options{
			Reference: e.ref,
			Enemy:     e.opts.Enemy,
			Synergy:   e.opts.Synergy,
		},
	}
	if spec != nil {
		if err := enemy.Validate(*spec); err != nil {
			return nil, err
		}
		c.spec = spec.Clone()
	}

	s := stats.Resolve(*character, stats.BaselineOf(e.ref))
	mult, err := enemy.Resolve(c.spec, s.Level, e.opts.Enemy)
	if err != nil {
		return nil, err
	}
	c.mult = mult
	c.res = &Result{
		Mode:           mode,
		CharacterName:  character.Name,
		CharacterStats: s,
		BuildQuality:   combat.EvaluateBuild(s, &c.flags),
		UnknownStats:   stats.UnknownStats(*character),
		Enemy:          mult,
	}
	return c, nil
}

// damage computes the unbuffed breakdown of scenarios.
func (c *calculation) damage(scenarios []model.DamageScenario) error {
	c.scenarios = scenarios
	c.res.DamageBreakdown = make([]combat.DamageBreakdownEntry, 0, len(scenarios))
	c.res.TotalAverage = 0
	for _, s := range scenarios {
		entry, err := combat.ComputeScenario(c.res.CharacterStats, s, c.mult, c.ref)
		if err != nil {
			return err
		}
		c.res.DamageBreakdown = append(c.res.DamageBreakdown, entry)
		c.res.TotalAverage += entry.TotalAverage
	}
	return nil
}

// compose attaches the team analysis of buffs over the current scenarios.
func (c *calculation) compose(buffs []model.TeamBuff, elements []model.Element) error {
	c.buffs = buffs
	c.teamOptions.MemberElements = elements
	a, err := team.Compose(c.res.CharacterStats, buffs, c.scenarios, c.spec, c.teamOptions)
	if err != nil {
		return err
	}
	for _, f := range a.Flags {
		c.flags.Add("team_analysis."+f.Field, f.Reason)
	}
	c.res.Team = &a
	return nil
}

func (c *calculation) finish() *Result {
	c.res.sanitize(&c.flags)
	if len(c.res.Flags) > 0 {
		slog.Warn("calculation produced degenerate values",
			"mode", c.res.Mode,
			"character", c.res.CharacterName,
			"flags", len(c.res.Flags))
	}
	return c.res
}
