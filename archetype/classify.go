package archetype

import (
	"fmt"
	"strings"

	"github.com/kantobot/strategy-core/dex"
	"github.com/kantobot/strategy-core/model"
)

// teamFeatures is everything the detectors look at, extracted in one pass.
type teamFeatures struct {
	hazardSetters  []string            // species with at least one hazard move
	hazardMoves    []string            // distinct hazard move ids across the team
	pivotUsers     []string
	walls          []string
	sweepers       []string
	boostUsers     map[string][]string // species → boost move ids
	boostOrder     []string            // boostUsers key order (team order)
	recoveryUsers  []string
	recoveryMoves  map[string][]string // species → recovery/status move ids
	offensive      []string
}

// Classify assigns an archetype to the team. It is a pure function: any
// team, including an empty one, yields a verdict — the chain falls through
// to Balanced rather than erroring.
func Classify(team []model.TeamMember, d *dex.Dex) TeamArchetype {
	f := extractFeatures(team, d)

	detectors := []func(teamFeatures) (TeamArchetype, bool){
		detectHazardStack,
		detectStallCore,
		detectPivot,
		detectSetupSweeper,
		detectHyperOffense,
	}
	for _, detect := range detectors {
		if ta, ok := detect(f); ok {
			return ta
		}
	}
	return detectBalanced(f)
}

func extractFeatures(team []model.TeamMember, d *dex.Dex) teamFeatures {
	f := teamFeatures{
		boostUsers:    make(map[string][]string),
		recoveryMoves: make(map[string][]string),
	}
	seenHazard := make(map[string]bool)

	for _, m := range team {
		species := dex.Normalize(m.Species)
		if species == "" {
			continue
		}

		var hasHazard, hasPivot, hasBoost, hasRecovery bool
		attacking := 0
		for _, mv := range m.Moves {
			id := dex.Normalize(mv)
			switch {
			case d.IsHazard(id):
				hasHazard = true
				if !seenHazard[id] {
					seenHazard[id] = true
					f.hazardMoves = append(f.hazardMoves, id)
				}
			case d.IsRecovery(id):
				hasRecovery = true
				f.recoveryMoves[species] = append(f.recoveryMoves[species], id)
			case d.IsStatusSpread(id):
				f.recoveryMoves[species] = append(f.recoveryMoves[species], id)
			case d.IsUtility(id):
				// neither offensive nor recovery
			default:
				// Everything else counts toward the offensive profile,
				// including boost and pivot moves.
				if d.IsBoost(id) {
					hasBoost = true
					f.boostUsers[species] = append(f.boostUsers[species], id)
				}
				if d.IsPivot(id) {
					hasPivot = true
				}
				attacking++
			}
		}

		if hasHazard {
			f.hazardSetters = append(f.hazardSetters, species)
		}
		if hasPivot {
			f.pivotUsers = append(f.pivotUsers, species)
		}
		if hasBoost {
			f.boostOrder = append(f.boostOrder, species)
		}
		if hasRecovery {
			f.recoveryUsers = append(f.recoveryUsers, species)
		}
		if d.IsWall(species) {
			f.walls = append(f.walls, species)
		} else if attacking >= 2 {
			f.offensive = append(f.offensive, species)
		}
		if d.IsSweeper(species) {
			f.sweepers = append(f.sweepers, species)
		}
	}
	return f
}

func detectHazardStack(f teamFeatures) (TeamArchetype, bool) {
	distinct := len(f.hazardMoves)
	walls := len(f.walls)
	setters := len(f.hazardSetters)

	var conf float64
	switch {
	case distinct >= 2 && walls >= 2:
		conf = 0.9
	case distinct >= 2 && walls >= 1:
		conf = 0.8
	case setters >= 2 && walls >= 2:
		conf = 0.75
	case distinct >= 1 && walls >= 2:
		conf = 0.7
	default:
		return TeamArchetype{}, false
	}
	if conf < 0.7 {
		return TeamArchetype{}, false
	}

	critical := dedup(append(append([]string{}, f.hazardSetters...), f.walls...))
	return TeamArchetype{
		Archetype:  HazardStack,
		Confidence: conf,
		PrimaryWinCondition: fmt.Sprintf(
			"stack %s and force switches; chip damage wins the long game", joinOr(f.hazardMoves)),
		SecondaryWinCondition: fmt.Sprintf(
			"keep %s healthy so hazards stay up", joinOr(firstN(f.walls, 2))),
		CriticalPokemon: critical,
		MandatorySetup:  append([]string{}, f.hazardMoves...),
	}, true
}

func detectStallCore(f teamFeatures) (TeamArchetype, bool) {
	walls := len(f.walls)
	recovery := len(f.recoveryUsers)
	if walls < 3 || recovery < 2 {
		return TeamArchetype{}, false
	}

	var conf float64
	switch {
	case walls >= 4 && recovery >= 3:
		conf = 0.95
	case walls >= 4:
		conf = 0.85
	case recovery >= 3:
		conf = 0.8
	default:
		conf = 0.75
	}

	var mandatory []string
	for _, w := range f.walls {
		mandatory = append(mandatory, f.recoveryMoves[w]...)
	}
	return TeamArchetype{
		Archetype:  StallCore,
		Confidence: conf,
		PrimaryWinCondition: "outlast the opponent; answer every breaker with a wall and win on PP and chip",
		SecondaryWinCondition: fmt.Sprintf(
			"never let %s get worn down without recovery", joinOr(firstN(f.walls, 2))),
		CriticalPokemon: append([]string{}, f.walls...),
		MandatorySetup:  dedup(mandatory),
	}, true
}

func detectPivot(f teamFeatures) (TeamArchetype, bool) {
	users := len(f.pivotUsers)
	if users < 3 {
		return TeamArchetype{}, false
	}
	conf := 0.75
	if users >= 4 {
		conf = 0.9
	}
	return TeamArchetype{
		Archetype:  Pivot,
		Confidence: conf,
		PrimaryWinCondition: "keep momentum with pivot moves; bring in the right attacker for free every time",
		SecondaryWinCondition: "deny the opponent safe switch-ins by forcing 50/50s on chip turns",
		CriticalPokemon: firstN(f.pivotUsers, 4),
	}, true
}

func detectSetupSweeper(f teamFeatures) (TeamArchetype, bool) {
	if len(f.boostOrder) == 0 {
		return TeamArchetype{}, false
	}

	// Designated sweeper: prefer a known sweeper species among boost users.
	sweeper := f.boostOrder[0]
	for _, s := range f.boostOrder {
		if contains(f.sweepers, s) {
			sweeper = s
			break
		}
	}

	var bans []SwitchBan
	for _, w := range f.walls {
		bans = append(bans, SwitchBan{
			From:   sweeper,
			To:     w,
			Reason: "giving up a set-up position for a passive wall wastes the win condition",
		})
	}
	return TeamArchetype{
		Archetype:  SetupSweeper,
		Confidence: 0.7,
		PrimaryWinCondition: fmt.Sprintf(
			"weaken checks, then win with a boosted %s sweep", sweeper),
		SecondaryWinCondition: "keep the sweeper above its HP floor until the mid game",
		CriticalPokemon:       dedup(f.boostOrder),
		MandatorySetup:        append([]string{}, f.boostUsers[sweeper]...),
		ProhibitedSwitches:    bans,
	}, true
}

func detectHyperOffense(f teamFeatures) (TeamArchetype, bool) {
	if len(f.offensive) < 5 || len(f.walls) > 1 {
		return TeamArchetype{}, false
	}
	critical := f.sweepers
	if len(critical) == 0 {
		critical = firstN(f.offensive, 3)
	}
	return TeamArchetype{
		Archetype:  HyperOffense,
		Confidence: 0.7,
		PrimaryWinCondition: "overwhelm before the opponent stabilizes; every turn must threaten damage",
		SecondaryWinCondition: "trade pokemon aggressively but never for free",
		CriticalPokemon:       dedup(critical),
	}, true
}

func detectBalanced(f teamFeatures) TeamArchetype {
	critical := dedup(append(append([]string{}, f.sweepers...), f.walls...))
	return TeamArchetype{
		Archetype:             Balanced,
		Confidence:            0.5,
		PrimaryWinCondition:   "take favorable trades and adapt; no single pokemon carries the game",
		SecondaryWinCondition: "preserve defensive backbone while offense accumulates advantages",
		CriticalPokemon:       critical,
	}
}

func firstN(s []string, n int) []string {
	if len(s) <= n {
		return append([]string{}, s...)
	}
	return append([]string{}, s[:n]...)
}

func dedup(s []string) []string {
	seen := make(map[string]bool, len(s))
	var out []string
	for _, v := range s {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func contains(s []string, v string) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func joinOr(s []string) string {
	if len(s) == 0 {
		return "hazards"
	}
	return strings.Join(s, " + ")
}
