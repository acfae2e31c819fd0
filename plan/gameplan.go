// Package plan turns an archetype verdict into a concrete gameplan and
// scores candidate actions against it: phase detection, per-move alignment,
// discounted sequence value, and the commitment heuristic.
package plan

import (
	"github.com/kantobot/strategy-core/archetype"
	"github.com/kantobot/strategy-core/dex"
	"github.com/kantobot/strategy-core/model"
)

// PhaseGoals is the win-condition text per game phase.
type PhaseGoals struct {
	Early string `json:"early"`
	Mid   string `json:"mid"`
	Late  string `json:"late"`
}

// Gameplan is the battle-long strategic contract derived from the team
// archetype. Built once per battle, immutable thereafter.
type Gameplan struct {
	Archetype archetype.Archetype `json:"archetype"`
	Goals     PhaseGoals          `json:"goals"`

	// HPMinimums maps species → HP fraction under which switching that
	// pokemon out is disallowed.
	HPMinimums map[string]float64 `json:"hpMinimums"`
	// MandatoryMoves maps species → moves it must look to use.
	MandatoryMoves map[string][]string `json:"mandatoryMoves"`
	// MoveDeadlines maps move id → turn by which it should have happened.
	MoveDeadlines map[string]int `json:"moveDeadlines"`

	ProhibitedSwitches []archetype.SwitchBan `json:"prohibitedSwitches,omitempty"`

	// SwitchBudget caps tolerated switches in a rolling window.
	SwitchBudget int `json:"switchBudget"`

	// PhasePriorities lists the move ids to favor in each phase.
	PhasePriorities map[GamePhase][]string `json:"-"`
}

// Hazard set turn deadlines: stealth rock early, layered hazards after.
const (
	stealthRockDeadline = 4
	layerHazardDeadline = 6
	setupSoftDeadline   = 15
)

// Generate builds the gameplan for a classified team. Deterministic and
// total: missing data yields empty maps, never an error.
func Generate(ta archetype.TeamArchetype, team []model.TeamMember, d *dex.Dex) Gameplan {
	gp := Gameplan{
		Archetype:          ta.Archetype,
		HPMinimums:         make(map[string]float64),
		MandatoryMoves:     make(map[string][]string),
		MoveDeadlines:      make(map[string]int),
		ProhibitedSwitches: append([]archetype.SwitchBan{}, ta.ProhibitedSwitches...),
		PhasePriorities:    make(map[GamePhase][]string),
	}

	switch ta.Archetype {
	case archetype.HazardStack:
		generateHazardStack(&gp, ta, team, d)
	case archetype.StallCore:
		generateStallCore(&gp, ta, team, d)
	case archetype.Pivot:
		generatePivot(&gp, ta, team, d)
	case archetype.SetupSweeper:
		generateSetupSweeper(&gp, ta, team, d)
	case archetype.HyperOffense:
		generateHyperOffense(&gp, ta)
	case archetype.Balanced:
		generateBalanced(&gp, ta)
	}

	gp.Goals = goalsFor(ta)
	return gp
}

func generateHazardStack(gp *Gameplan, ta archetype.TeamArchetype, team []model.TeamMember, d *dex.Dex) {
	for _, m := range team {
		species := dex.Normalize(m.Species)
		for _, mv := range m.Moves {
			id := dex.Normalize(mv)
			if !d.IsHazard(id) {
				continue
			}
			gp.MandatoryMoves[species] = append(gp.MandatoryMoves[species], id)
			if id == "stealthrock" || id == "stoneaxe" {
				gp.MoveDeadlines[id] = stealthRockDeadline
			} else {
				gp.MoveDeadlines[id] = layerHazardDeadline
			}
		}
	}
	for _, name := range firstN(ta.CriticalPokemon, 3) {
		gp.HPMinimums[name] = 0.6
	}
	gp.SwitchBudget = 6
	gp.PhasePriorities[PhaseEarly] = append([]string{}, ta.MandatorySetup...)
	gp.PhasePriorities[PhaseMid] = movesOfClass(team, d, d.IsStatusSpread, d.IsRecovery)
	gp.PhasePriorities[PhaseLate] = movesOfClass(team, d, d.IsRecovery)
}

func generateStallCore(gp *Gameplan, ta archetype.TeamArchetype, team []model.TeamMember, d *dex.Dex) {
	critical := toLookup(ta.CriticalPokemon)
	for _, m := range team {
		species := dex.Normalize(m.Species)
		if !critical[species] {
			continue
		}
		gp.HPMinimums[species] = 0.5
		for _, mv := range m.Moves {
			id := dex.Normalize(mv)
			if d.IsRecovery(id) || d.IsStatusSpread(id) {
				gp.MandatoryMoves[species] = append(gp.MandatoryMoves[species], id)
			}
		}
	}
	// Stall teams reposition defensively; switching is cheap for them.
	gp.SwitchBudget = 8
	gp.PhasePriorities[PhaseEarly] = movesOfClass(team, d, d.IsStatusSpread)
	gp.PhasePriorities[PhaseMid] = movesOfClass(team, d, d.IsRecovery)
	gp.PhasePriorities[PhaseLate] = movesOfClass(team, d, d.IsRecovery)
}

func generatePivot(gp *Gameplan, ta archetype.TeamArchetype, team []model.TeamMember, d *dex.Dex) {
	critical := toLookup(firstN(ta.CriticalPokemon, 4))
	for _, m := range team {
		species := dex.Normalize(m.Species)
		if !critical[species] {
			continue
		}
		gp.HPMinimums[species] = 0.7
		for _, mv := range m.Moves {
			if id := dex.Normalize(mv); d.IsPivot(id) {
				gp.MandatoryMoves[species] = append(gp.MandatoryMoves[species], id)
			}
		}
	}
	// Switching is the strategy.
	gp.SwitchBudget = 10
	pivots := movesOfClass(team, d, d.IsPivot)
	gp.PhasePriorities[PhaseEarly] = pivots
	gp.PhasePriorities[PhaseMid] = pivots
	gp.PhasePriorities[PhaseLate] = pivots
}

func generateSetupSweeper(gp *Gameplan, ta archetype.TeamArchetype, team []model.TeamMember, d *dex.Dex) {
	// HP floor applies to the designated sweeper only.
	if len(ta.CriticalPokemon) > 0 {
		sweeper := ta.CriticalPokemon[0]
		gp.HPMinimums[sweeper] = 0.8
		gp.MandatoryMoves[sweeper] = append([]string{}, ta.MandatorySetup...)
	}
	for _, id := range ta.MandatorySetup {
		gp.MoveDeadlines[id] = setupSoftDeadline
	}
	gp.SwitchBudget = 6
	boosts := movesOfClass(team, d, d.IsBoost)
	gp.PhasePriorities[PhaseEarly] = boosts
	gp.PhasePriorities[PhaseMid] = boosts
	gp.PhasePriorities[PhaseLate] = nil
}

func generateHyperOffense(gp *Gameplan, ta archetype.TeamArchetype) {
	for _, name := range ta.CriticalPokemon {
		gp.HPMinimums[name] = 0.6
	}
	// Repositioning bleeds momentum.
	gp.SwitchBudget = 5
}

func generateBalanced(gp *Gameplan, ta archetype.TeamArchetype) {
	for _, name := range ta.CriticalPokemon {
		gp.HPMinimums[name] = 0.6
	}
	gp.SwitchBudget = 7
}

func goalsFor(ta archetype.TeamArchetype) PhaseGoals {
	switch ta.Archetype {
	case archetype.HazardStack:
		return PhaseGoals{
			Early: "get hazards up before the opponent settles",
			Mid:   ta.PrimaryWinCondition,
			Late:  ta.SecondaryWinCondition,
		}
	case archetype.StallCore:
		return PhaseGoals{
			Early: "scout sets and spread status safely",
			Mid:   ta.SecondaryWinCondition,
			Late:  ta.PrimaryWinCondition,
		}
	case archetype.Pivot:
		return PhaseGoals{
			Early: ta.PrimaryWinCondition,
			Mid:   ta.PrimaryWinCondition,
			Late:  ta.SecondaryWinCondition,
		}
	case archetype.SetupSweeper:
		return PhaseGoals{
			Early: ta.SecondaryWinCondition,
			Mid:   "find the set-up turn",
			Late:  ta.PrimaryWinCondition,
		}
	case archetype.HyperOffense:
		return PhaseGoals{
			Early: ta.PrimaryWinCondition,
			Mid:   ta.SecondaryWinCondition,
			Late:  "close before attrition catches up",
		}
	default:
		return PhaseGoals{
			Early: ta.PrimaryWinCondition,
			Mid:   ta.PrimaryWinCondition,
			Late:  ta.SecondaryWinCondition,
		}
	}
}

// movesOfClass collects distinct team move ids matching any predicate.
func movesOfClass(team []model.TeamMember, d *dex.Dex, preds ...func(string) bool) []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range team {
		for _, mv := range m.Moves {
			id := dex.Normalize(mv)
			if seen[id] {
				continue
			}
			for _, pred := range preds {
				if pred(id) {
					seen[id] = true
					out = append(out, id)
					break
				}
			}
		}
	}
	return out
}

func toLookup(names []string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

func firstN(s []string, n int) []string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
