// Package action defines the identifier vocabulary shared with the host
// search engine. The legality provider hands the core a flat list of
// action identifiers; switch actions are distinguished from move actions
// by a fixed prefix. These constants must stay in sync with the host.
package action

import (
	"strings"

	"github.com/kantobot/strategy-core/dex"
)

// SwitchPrefix tags an action that brings in a reserve, e.g. "switch skarmory".
const SwitchPrefix = "switch "

// IsSwitch reports whether the action identifier is a switch action.
func IsSwitch(id string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(id)), SwitchPrefix)
}

// SwitchTarget returns the normalized species a switch action brings in,
// or "" if the action is not a switch.
func SwitchTarget(id string) string {
	trimmed := strings.TrimSpace(id)
	if !IsSwitch(trimmed) {
		return ""
	}
	return dex.Normalize(trimmed[len(SwitchPrefix):])
}

// MoveID returns the normalized move identifier for a move action,
// or "" for switch actions.
func MoveID(id string) string {
	if IsSwitch(id) {
		return ""
	}
	return dex.Normalize(id)
}

// Advice is the advisory bundle handed back to the search each turn:
// the surviving legal actions and their strategy scores. The search treats
// both as biases, not decisions.
type Advice struct {
	Actions []string           `json:"actions"`
	Scores  map[string]float64 `json:"scores"`
}
