// Package rules implements the strategic filter: the gameplan is compiled
// into prioritized constraint rules whose gating conditions are expr
// expressions over the turn context. The engine applies each firing rule's
// transform in order and guarantees the surviving action list is never
// empty when the input was non-empty.
package rules

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/kantobot/strategy-core/dex"
	"github.com/kantobot/strategy-core/model"
	"github.com/kantobot/strategy-core/plan"
)

// Engine holds one battle's compiled filter rules. Built once alongside
// the gameplan it was compiled from; immutable and safe for concurrent
// reads thereafter.
type Engine struct {
	rules []*Rule
	gp    *plan.Gameplan
	dex   *dex.Dex
}

// NewEngine compiles all rule conditions into expr bytecode and sorts by
// priority.
func NewEngine(rules []*Rule, gp *plan.Gameplan, d *dex.Dex) (*Engine, error) {
	for _, r := range rules {
		prog, err := expr.Compile(r.ConditionSrc, expr.Env(FilterEnv{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("compile rule %q: %w", r.Name, err)
		}
		r.program = prog
	}
	sorted := append([]*Rule{}, rules...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Priority > sorted[j].Priority
	})
	return &Engine{rules: sorted, gp: gp, dex: d}, nil
}

// NewEngineForPlan compiles the standard constraint passes for a gameplan.
func NewEngineForPlan(gp *plan.Gameplan, d *dex.Dex) (*Engine, error) {
	return NewEngine(CompilePlan(gp), gp, d)
}

// Filter runs each firing rule's transform over the action list in
// priority order. A pass that would remove every remaining action is
// skipped with a warning; the caller always gets a non-empty list back
// when it supplied one.
func (e *Engine) Filter(actions []string, snap *model.BattleSnapshot, turn int) []string {
	env := FilterEnv{Snap: snap, Plan: e.gp, Turn: turn, Dex: e.dex}

	out := actions
	for _, r := range e.rules {
		result, err := vm.Run(r.program, env)
		if err != nil {
			slog.Warn("filter rule condition error", "rule", r.Name, "error", err)
			continue
		}
		match, ok := result.(bool)
		if !ok || !match {
			continue
		}

		next := r.Apply(env, out)
		if len(next) == 0 && len(out) > 0 {
			slog.Warn("filter pass would remove every action, keeping previous set",
				"rule", r.Name, "turn", turn, "remaining", len(out))
			continue
		}
		if len(next) != len(out) {
			slog.Debug("filter rule fired", "rule", r.Name, "before", len(out), "after", len(next))
		}
		out = next
	}
	return out
}

// Rules returns the compiled rules in evaluation order.
func (e *Engine) Rules() []*Rule { return e.rules }
