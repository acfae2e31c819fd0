package plan

import "github.com/kantobot/strategy-core/archetype"

// phaseScores are alignment scores per recognized action class, in [0,1].
// Within a phase, strategy-critical classes must dominate off-strategy
// ones; the search breaks ties, not this table.
type phaseScores struct {
	Hazard   float64
	Recovery float64
	Status   float64
	Pivot    float64
	Switch   float64
	Boost    float64
	Generic  float64
}

type archetypeTuning struct {
	Early phaseScores
	Mid   phaseScores
	Late  phaseScores
}

func (t archetypeTuning) forPhase(p GamePhase) phaseScores {
	switch p {
	case PhaseEarly:
		return t.Early
	case PhaseMid:
		return t.Mid
	default:
		return t.Late
	}
}

// hazardAlreadySetScore is returned for a hazard move whose hazard is
// already up: re-clicking it is near-worthless in every plan.
const hazardAlreadySetScore = 0.2

var tuning = map[archetype.Archetype]archetypeTuning{
	archetype.HazardStack: {
		Early: phaseScores{Hazard: 1.0, Recovery: 0.55, Status: 0.7, Pivot: 0.6, Switch: 0.5, Boost: 0.4, Generic: 0.5},
		Mid:   phaseScores{Hazard: 0.8, Recovery: 0.7, Status: 0.75, Pivot: 0.6, Switch: 0.55, Boost: 0.45, Generic: 0.6},
		Late:  phaseScores{Hazard: 0.3, Recovery: 0.75, Status: 0.6, Pivot: 0.5, Switch: 0.45, Boost: 0.4, Generic: 0.7},
	},
	archetype.StallCore: {
		Early: phaseScores{Hazard: 0.7, Recovery: 0.8, Status: 0.85, Pivot: 0.5, Switch: 0.6, Boost: 0.35, Generic: 0.45},
		Mid:   phaseScores{Hazard: 0.6, Recovery: 0.9, Status: 0.8, Pivot: 0.5, Switch: 0.65, Boost: 0.35, Generic: 0.5},
		Late:  phaseScores{Hazard: 0.4, Recovery: 0.9, Status: 0.7, Pivot: 0.45, Switch: 0.55, Boost: 0.3, Generic: 0.6},
	},
	archetype.Pivot: {
		Early: phaseScores{Hazard: 0.6, Recovery: 0.5, Status: 0.6, Pivot: 0.9, Switch: 0.8, Boost: 0.45, Generic: 0.55},
		Mid:   phaseScores{Hazard: 0.5, Recovery: 0.55, Status: 0.6, Pivot: 0.85, Switch: 0.8, Boost: 0.45, Generic: 0.6},
		Late:  phaseScores{Hazard: 0.4, Recovery: 0.6, Status: 0.5, Pivot: 0.7, Switch: 0.65, Boost: 0.4, Generic: 0.7},
	},
	archetype.SetupSweeper: {
		Early: phaseScores{Hazard: 0.5, Recovery: 0.6, Status: 0.55, Pivot: 0.5, Switch: 0.45, Boost: 0.8, Generic: 0.6},
		Mid:   phaseScores{Hazard: 0.45, Recovery: 0.55, Status: 0.5, Pivot: 0.45, Switch: 0.4, Boost: 0.9, Generic: 0.65},
		Late:  phaseScores{Hazard: 0.35, Recovery: 0.5, Status: 0.4, Pivot: 0.4, Switch: 0.35, Boost: 0.6, Generic: 0.8},
	},
	archetype.HyperOffense: {
		Early: phaseScores{Hazard: 0.45, Recovery: 0.3, Status: 0.5, Pivot: 0.7, Switch: 0.35, Boost: 0.65, Generic: 0.8},
		Mid:   phaseScores{Hazard: 0.4, Recovery: 0.3, Status: 0.45, Pivot: 0.65, Switch: 0.3, Boost: 0.6, Generic: 0.85},
		Late:  phaseScores{Hazard: 0.3, Recovery: 0.3, Status: 0.4, Pivot: 0.6, Switch: 0.3, Boost: 0.5, Generic: 0.9},
	},
	archetype.Balanced: {
		Early: phaseScores{Hazard: 0.6, Recovery: 0.55, Status: 0.6, Pivot: 0.6, Switch: 0.5, Boost: 0.55, Generic: 0.6},
		Mid:   phaseScores{Hazard: 0.5, Recovery: 0.6, Status: 0.6, Pivot: 0.6, Switch: 0.5, Boost: 0.6, Generic: 0.65},
		Late:  phaseScores{Hazard: 0.4, Recovery: 0.6, Status: 0.5, Pivot: 0.55, Switch: 0.45, Boost: 0.5, Generic: 0.7},
	},
}
