package rules

import (
	"fmt"

	"github.com/kantobot/strategy-core/action"
	"github.com/kantobot/strategy-core/plan"
)

// CompilePlan generates the strategic filter's constraint passes from a
// gameplan. All conditions are built via fmt.Sprintf with interpolated
// plan values — the compiler never generates invalid expr.
func CompilePlan(gp *plan.Gameplan) []*Rule {
	var rules []*Rule

	rules = append(rules, &Rule{
		Name:         "force-mandatory-moves",
		Priority:     400,
		ConditionSrc: `HasDueMandatoryMoves()`,
		Apply:        applyMandatoryMoves,
	})

	rules = append(rules, &Rule{
		Name:         "protect-critical-hp",
		Priority:     300,
		ConditionSrc: `ActiveBelowHPFloor()`,
		Apply: func(env FilterEnv, actions []string) []string {
			return dropSwitches(actions)
		},
	})

	rules = append(rules, &Rule{
		Name:         "drop-prohibited-switches",
		Priority:     200,
		ConditionSrc: `ProhibitedSwitchCount() > 0`,
		Apply:        applyProhibitedSwitches,
	})

	budget := 0
	if gp != nil {
		budget = gp.SwitchBudget
	}
	rules = append(rules, &Rule{
		Name:         "enforce-switch-budget",
		Priority:     100,
		ConditionSrc: fmt.Sprintf(`RecentSwitchCount() > %d`, budget),
		Apply: func(env FilterEnv, actions []string) []string {
			return dropSwitches(actions)
		},
	})

	return rules
}

// applyMandatoryMoves restricts the list to the due mandatory moves that
// are actually legal this turn. If none of them are legal (out of PP,
// disabled, not offered), the list passes through unchanged — there is no
// point forcing a move the host cannot execute.
func applyMandatoryMoves(env FilterEnv, actions []string) []string {
	due := make(map[string]bool)
	for _, id := range env.DueMandatoryMoves() {
		due[id] = true
	}
	var forced []string
	for _, a := range actions {
		if !action.IsSwitch(a) && due[action.MoveID(a)] {
			forced = append(forced, a)
		}
	}
	if len(forced) == 0 {
		return actions
	}
	return forced
}

func applyProhibitedSwitches(env FilterEnv, actions []string) []string {
	banned := env.prohibitedTargets()
	var out []string
	for _, a := range actions {
		if action.IsSwitch(a) && banned[action.SwitchTarget(a)] {
			continue
		}
		out = append(out, a)
	}
	return out
}
