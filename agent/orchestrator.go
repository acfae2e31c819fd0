// Package agent exposes the strategy core to the host search engine: a
// per-battle orchestrator that classifies the team once, caches the
// resulting gameplan, and on every turn filters and scores legal actions
// before the search sees them.
package agent

import (
	"log/slog"

	"github.com/kantobot/strategy-core/archetype"
	"github.com/kantobot/strategy-core/dex"
	"github.com/kantobot/strategy-core/model"
	"github.com/kantobot/strategy-core/plan"
	"github.com/kantobot/strategy-core/predict"
	"github.com/kantobot/strategy-core/rules"
)

// neutralScore is handed out when no gameplan exists for a battle; the
// search falls back to its own evaluation unbiased.
const neutralScore = 0.5

// Orchestrator is the per-battle façade. The store is injected so the
// host decides cache lifetime; the dex is shared, immutable game data.
// All methods are safe for concurrent use across battles.
type Orchestrator struct {
	store *Store
	dex   *dex.Dex
}

// New builds an orchestrator. A nil store gets a fresh one; a nil dex
// falls back to the embedded dataset.
func New(store *Store, d *dex.Dex) *Orchestrator {
	if store == nil {
		store = NewStore()
	}
	if d == nil {
		d = dex.Default()
	}
	return &Orchestrator{store: store, dex: d}
}

// Initialize classifies the team and derives its gameplan, caching both
// under the battle id. Idempotent: repeat calls return the cached result.
func (o *Orchestrator) Initialize(battleID string, team []model.TeamMember) (archetype.TeamArchetype, *plan.Gameplan) {
	entry := o.store.ensure(battleID, func() *battleEntry {
		ta := archetype.Classify(team, o.dex)
		gp := plan.Generate(ta, team, o.dex)

		engine, err := rules.NewEngineForPlan(&gp, o.dex)
		if err != nil {
			// The plan compiler only emits fixed expr templates, so this
			// is unreachable short of a programming error; degrade to an
			// unfiltered battle rather than failing the host.
			slog.Error("filter engine compile failed", "battle", battleID, "error", err)
			engine = nil
		}

		slog.Info("battle initialized",
			"battle", battleID,
			"archetype", ta.Archetype.String(),
			"confidence", ta.Confidence,
			"critical", ta.CriticalPokemon,
			"switchBudget", gp.SwitchBudget,
		)
		return &battleEntry{Archetype: ta, Plan: &gp, Team: team, engine: engine}
	})
	return entry.Archetype, entry.Plan
}

// Gameplan returns the cached plan for a battle, if initialized.
func (o *Orchestrator) Gameplan(battleID string) (*plan.Gameplan, bool) {
	entry, ok := o.store.get(battleID)
	if !ok {
		return nil, false
	}
	return entry.Plan, true
}

// Clear drops the cached state for a finished battle.
func (o *Orchestrator) Clear(battleID string) {
	o.store.remove(battleID)
	slog.Debug("battle cleared", "battle", battleID)
}

// EnhanceMoveSelection narrows the legal actions by the battle's hard
// constraints, scores each survivor against the gameplan, and applies the
// commitment damping for the recent-decision context. The scores are
// advisory biases for the search, not decisions. An uninitialized battle
// passes actions through with neutral scores.
func (o *Orchestrator) EnhanceMoveSelection(legal []string, snap *model.BattleSnapshot, battleID, lastDecision string, turnsInCurrent int) ([]string, map[string]float64) {
	if len(legal) == 0 {
		return legal, map[string]float64{}
	}

	entry, ok := o.store.get(battleID)
	if !ok {
		slog.Warn("enhance requested for uninitialized battle", "battle", battleID)
		scores := make(map[string]float64, len(legal))
		for _, act := range legal {
			scores[act] = neutralScore
		}
		return legal, scores
	}

	turn := 0
	if snap != nil {
		turn = snap.Turn
	}

	filtered := legal
	if entry.engine != nil {
		filtered = entry.engine.Filter(legal, snap, turn)
	}

	scores := make(map[string]float64, len(filtered))
	for _, act := range filtered {
		scores[act] = plan.SequenceValue(snap, act, entry.Plan, 3, o.dex)
	}
	scores = plan.ApplyCommitmentBoost(scores, lastDecision, turnsInCurrent)
	return filtered, scores
}

// ApplyCommitment applies the stay/switch damping heuristic to a score
// map. The snapshot parameter mirrors the host call signature; the
// heuristic itself only needs the recent-decision context.
func (o *Orchestrator) ApplyCommitment(scores map[string]float64, lastDecision string, turnsInCurrent int, _ *model.BattleSnapshot) map[string]float64 {
	return plan.ApplyCommitmentBoost(scores, lastDecision, turnsInCurrent)
}

// WeightPosition re-weights the caller's base scores by plan context for
// the current phase. Unknown battles return the scores untouched (copied).
func (o *Orchestrator) WeightPosition(battleID string, snap *model.BattleSnapshot, base map[string]float64) map[string]float64 {
	entry, ok := o.store.get(battleID)
	if !ok {
		out := make(map[string]float64, len(base))
		for k, v := range base {
			out[k] = v
		}
		return out
	}
	return plan.WeightPositionScores(snap, entry.Plan, plan.Phase(snap), base, o.dex)
}

// PredictOpponent forecasts the opponent's next action from the snapshot.
// Stateless with respect to the battle cache.
func (o *Orchestrator) PredictOpponent(snap *model.BattleSnapshot) predict.OpponentAction {
	return predict.Predict(snap, o.dex)
}
