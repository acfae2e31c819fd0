package plan

import "github.com/kantobot/strategy-core/action"

// commitment multipliers. Applied only while a pokemon is freshly in.
const (
	stayBoost     = 1.15
	switchPenalty = 0.85
	settleTurns   = 2
)

// ApplyCommitmentBoost damps stay/switch oscillation: if the last decision
// kept the active pokemon in and it has been in for fewer than two turns,
// staying is boosted and switching penalized. Returns a fresh map;
// otherwise the scores pass through unchanged.
func ApplyCommitmentBoost(scores map[string]float64, lastDecision string, turnsInCurrent int) map[string]float64 {
	if action.IsSwitch(lastDecision) || turnsInCurrent >= settleTurns {
		return scores
	}
	out := make(map[string]float64, len(scores))
	for act, score := range scores {
		if action.IsSwitch(act) {
			out[act] = score * switchPenalty
		} else {
			out[act] = score * stayBoost
		}
	}
	return out
}
