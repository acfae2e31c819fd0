package plan

import (
	"github.com/kantobot/strategy-core/action"
	"github.com/kantobot/strategy-core/archetype"
	"github.com/kantobot/strategy-core/dex"
	"github.com/kantobot/strategy-core/model"
)

type actionClass int

const (
	classGeneric actionClass = iota
	classHazard
	classRecovery
	classStatus
	classPivot
	classSwitch
	classBoost
)

func classify(act string, d *dex.Dex) actionClass {
	if action.IsSwitch(act) {
		return classSwitch
	}
	id := action.MoveID(act)
	switch {
	case d.IsHazard(id):
		return classHazard
	case d.IsRecovery(id):
		return classRecovery
	case d.IsStatusSpread(id):
		return classStatus
	case d.IsPivot(id):
		return classPivot
	case d.IsBoost(id):
		return classBoost
	default:
		return classGeneric
	}
}

// AlignmentScore rates how well one legal action serves the gameplan in
// the current phase, in [0,1]. Neutral is 0.5. A hazard move whose hazard
// is already up scores near zero regardless of plan.
func AlignmentScore(act string, gp *Gameplan, turn int, phase GamePhase, snap *model.BattleSnapshot, d *dex.Dex) float64 {
	if gp == nil {
		return 0.5
	}
	t, ok := tuning[gp.Archetype]
	if !ok {
		return 0.5
	}
	cls := classify(act, d)
	scores := t.forPhase(phase)

	var score float64
	switch cls {
	case classHazard:
		if snap != nil && d.HazardOnSide(action.MoveID(act), snap.Theirs.Conditions) {
			return hazardAlreadySetScore
		}
		score = scores.Hazard
	case classRecovery:
		score = scores.Recovery
	case classStatus:
		score = scores.Status
	case classPivot:
		score = scores.Pivot
	case classSwitch:
		score = scores.Switch
	case classBoost:
		score = scores.Boost
	default:
		score = scores.Generic
	}

	// A mandatory move still inside its deadline window is urgent even if
	// its phase cell is modest.
	if cls != classSwitch {
		if deadline, ok := gp.MoveDeadlines[action.MoveID(act)]; ok && turn <= deadline {
			score = max(score, 0.85)
		}
	}
	return clamp01(score)
}

// sequence discount per lookahead step.
const seqDiscount = 0.5

// maxSequenceDepth caps the closed-form lookahead.
const maxSequenceDepth = 3

// SequenceValue is a discounted multi-turn alignment heuristic: today's
// alignment plus a small fixed forecast of how well the move keeps serving
// the plan. It is closed-form, not a rollout, and never touches the
// snapshot beyond reads.
func SequenceValue(snap *model.BattleSnapshot, act string, gp *Gameplan, depth int, d *dex.Dex) float64 {
	turn := 0
	if snap != nil {
		turn = snap.Turn
	}
	phase := Phase(snap)
	value := AlignmentScore(act, gp, turn, phase, snap, d)

	if depth > maxSequenceDepth {
		depth = maxSequenceDepth
	}
	future := futureAlignment(act, gp, phase, d)
	norm := 1.0
	discount := 1.0
	for k := 1; k <= depth; k++ {
		discount *= seqDiscount
		value += discount * future
		norm += discount
	}
	return clamp01(value / norm)
}

// futureAlignment is a fixed forecast table keyed on action class and
// archetype: the classes an archetype is built around keep paying off.
func futureAlignment(act string, gp *Gameplan, phase GamePhase, d *dex.Dex) float64 {
	if gp == nil {
		return 0.5
	}
	switch classify(act, d) {
	case classHazard:
		if gp.Archetype == archetype.HazardStack {
			return 0.8
		}
	case classPivot:
		if gp.Archetype == archetype.Pivot {
			return 0.7
		}
	case classBoost:
		if gp.Archetype == archetype.SetupSweeper && phase == PhaseMid {
			return 0.9
		}
	case classRecovery:
		if gp.Archetype == archetype.StallCore {
			return 0.75
		}
	}
	return 0.5
}

// WeightPositionScores re-weights a caller-supplied action→score map by
// plan context: early mandatory moves of the active pokemon ×1.5, late
// non-switch/non-recovery moves on critical pokemon ×1.2. The input map
// is not mutated.
func WeightPositionScores(snap *model.BattleSnapshot, gp *Gameplan, phase GamePhase, base map[string]float64, d *dex.Dex) map[string]float64 {
	out := make(map[string]float64, len(base))
	for k, v := range base {
		out[k] = v
	}
	if gp == nil || snap == nil || snap.Ours.Active == nil {
		return out
	}

	active := dex.Normalize(snap.Ours.Active.Name)
	switch phase {
	case PhaseEarly:
		mandatory := toLookup(gp.MandatoryMoves[active])
		for act := range out {
			if mandatory[action.MoveID(act)] {
				out[act] *= 1.5
			}
		}
	case PhaseLate:
		if _, critical := gp.HPMinimums[active]; !critical {
			return out
		}
		for act := range out {
			if action.IsSwitch(act) || d.IsRecovery(action.MoveID(act)) {
				continue
			}
			out[act] *= 1.2
		}
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
