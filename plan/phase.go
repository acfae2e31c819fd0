package plan

import "github.com/kantobot/strategy-core/model"

// GamePhase buckets a battle by aggregate remaining HP across both sides.
// It is recomputed from the snapshot every turn, never stored.
type GamePhase int

const (
	PhaseEarly GamePhase = iota
	PhaseMid
	PhaseLate
)

func (p GamePhase) String() string {
	switch p {
	case PhaseEarly:
		return "early"
	case PhaseMid:
		return "mid"
	default:
		return "late"
	}
}

// Phase classifies the battle by total-HP ratio over both rosters:
// >0.7 early, >0.4 mid, otherwise late. A snapshot with no HP information
// reads as early.
func Phase(snap *model.BattleSnapshot) GamePhase {
	if snap == nil {
		return PhaseEarly
	}
	var hp, maxHP int
	for _, side := range []model.Side{snap.Ours, snap.Theirs} {
		for _, p := range side.Roster() {
			if p.HP <= 0 {
				continue
			}
			hp += p.HP
			maxHP += p.MaxHP
		}
	}
	if maxHP == 0 {
		return PhaseEarly
	}
	ratio := float64(hp) / float64(maxHP)
	switch {
	case ratio > 0.7:
		return PhaseEarly
	case ratio > 0.4:
		return PhaseMid
	default:
		return PhaseLate
	}
}
