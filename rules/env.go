package rules

import (
	"github.com/kantobot/strategy-core/action"
	"github.com/kantobot/strategy-core/dex"
	"github.com/kantobot/strategy-core/model"
	"github.com/kantobot/strategy-core/plan"
)

// FilterEnv wraps one turn's decision context and exposes the helper
// methods the rule conditions call from expr.
type FilterEnv struct {
	Snap *model.BattleSnapshot
	Plan *plan.Gameplan
	Turn int
	Dex  *dex.Dex
}

func (e FilterEnv) activeName() string {
	if e.Snap == nil || e.Snap.Ours.Active == nil {
		return ""
	}
	return dex.Normalize(e.Snap.Ours.Active.Name)
}

// DueMandatoryMoves returns the active pokemon's mandatory moves whose
// deadline has not yet passed and whose hazard is not already up on the
// opponent's side.
func (e FilterEnv) DueMandatoryMoves() []string {
	if e.Plan == nil || e.Snap == nil {
		return nil
	}
	var due []string
	for _, id := range e.Plan.MandatoryMoves[e.activeName()] {
		deadline, ok := e.Plan.MoveDeadlines[id]
		if !ok || e.Turn > deadline {
			continue
		}
		if e.Dex != nil && e.Dex.HazardOnSide(id, e.Snap.Theirs.Conditions) {
			continue
		}
		due = append(due, id)
	}
	return due
}

// HasDueMandatoryMoves is the expr-facing form of DueMandatoryMoves.
func (e FilterEnv) HasDueMandatoryMoves() bool { return len(e.DueMandatoryMoves()) > 0 }

// ActiveBelowHPFloor reports whether the active pokemon is protected by an
// HP minimum and currently sits below it.
func (e FilterEnv) ActiveBelowHPFloor() bool {
	if e.Plan == nil || e.Snap == nil || e.Snap.Ours.Active == nil {
		return false
	}
	floor, ok := e.Plan.HPMinimums[e.activeName()]
	if !ok {
		return false
	}
	return e.Snap.Ours.Active.HPFraction() < floor
}

// ProhibitedSwitchCount counts plan switch bans that apply to the current
// active pokemon.
func (e FilterEnv) ProhibitedSwitchCount() int {
	if e.Plan == nil {
		return 0
	}
	active := e.activeName()
	n := 0
	for _, ban := range e.Plan.ProhibitedSwitches {
		if dex.Normalize(ban.From) == active {
			n++
		}
	}
	return n
}

// RecentSwitchCount is the rolling-window switch counter the budget pass
// compares against. It is deliberately a stub that reports zero — the
// budget constraint is inert until windowed counting is implemented, and
// changing that changes tuned behavior downstream.
func (e FilterEnv) RecentSwitchCount() int { return 0 }

// prohibitedTargets returns the normalized switch targets banned for the
// current active pokemon.
func (e FilterEnv) prohibitedTargets() map[string]bool {
	targets := make(map[string]bool)
	if e.Plan == nil {
		return targets
	}
	active := e.activeName()
	for _, ban := range e.Plan.ProhibitedSwitches {
		if dex.Normalize(ban.From) == active {
			targets[dex.Normalize(ban.To)] = true
		}
	}
	return targets
}

// dropSwitches returns actions with all switch actions removed.
func dropSwitches(actions []string) []string {
	var out []string
	for _, a := range actions {
		if !action.IsSwitch(a) {
			out = append(out, a)
		}
	}
	return out
}
