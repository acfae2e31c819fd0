package rules

import "github.com/expr-lang/expr/vm"

// ApplyFunc narrows a candidate action list when its rule's condition
// holds. It must not mutate the input slice.
type ApplyFunc func(env FilterEnv, actions []string) []string

// Rule is one hard-constraint pass of the strategic filter: a gating
// condition compiled from expr source plus the list transform it enables.
// The engine runs rules in priority order and refuses any transform that
// would leave the search with nothing to pick.
type Rule struct {
	Name         string      // human-readable identifier
	Priority     int         // higher = evaluated first
	ConditionSrc string      // expr source (preserved for inspection)
	program      *vm.Program // compiled bytecode
	Apply        ApplyFunc
}
