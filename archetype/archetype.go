// Package archetype classifies a team sheet into one of six strategic
// archetypes. Classification happens once per battle; the result seeds
// gameplan generation and never changes mid-battle.
package archetype

import "fmt"

// Archetype is a closed enum of team postures. Dispatch downstream is an
// exhaustive switch, never string matching.
type Archetype int

const (
	HazardStack Archetype = iota
	Pivot
	StallCore
	SetupSweeper
	HyperOffense
	Balanced
)

func (a Archetype) String() string {
	switch a {
	case HazardStack:
		return "hazard-stack"
	case Pivot:
		return "pivot"
	case StallCore:
		return "stall-core"
	case SetupSweeper:
		return "setup-sweeper"
	case HyperOffense:
		return "hyper-offense"
	case Balanced:
		return "balanced"
	default:
		return fmt.Sprintf("archetype(%d)", int(a))
	}
}

// SwitchBan forbids a specific from→to switch for the whole battle.
type SwitchBan struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Reason string `json:"reason"`
}

// TeamArchetype is the classifier's verdict plus the metadata the gameplan
// generator needs. Immutable once produced.
type TeamArchetype struct {
	Archetype              Archetype   `json:"archetype"`
	Confidence             float64     `json:"confidence"`
	PrimaryWinCondition    string      `json:"primaryWinCondition"`
	SecondaryWinCondition  string      `json:"secondaryWinCondition"`
	CriticalPokemon        []string    `json:"criticalPokemon"`
	MandatorySetup         []string    `json:"mandatorySetup"`
	ProhibitedSwitches     []SwitchBan `json:"prohibitedSwitches,omitempty"`
}
