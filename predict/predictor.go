// Package predict guesses the opponent's next action — stay in or switch
// out, and if switching, which reserve comes in — from weighted matchup
// signals over a simplified damage model. The host search consumes the
// forecast when building its opponent-response assumption.
package predict

import (
	"strings"

	"github.com/kantobot/strategy-core/dex"
	"github.com/kantobot/strategy-core/model"
)

// Tag is the terminal state of the per-turn prediction.
type Tag int

const (
	Stays Tag = iota
	Switches
)

func (t Tag) String() string {
	if t == Switches {
		return "switches"
	}
	return "stays"
}

// OpponentAction is one turn's forecast. Recomputed every turn, never
// persisted.
type OpponentAction struct {
	Action     Tag     `json:"action"`
	Confidence float64 `json:"confidence"`
	// Move is the predicted move id when staying.
	Move string `json:"move,omitempty"`
	// SwitchIn is the predicted incoming species when switching.
	SwitchIn string `json:"switchIn,omitempty"`
	// Damage is the estimated damage fraction the predicted action deals
	// to our active.
	Damage float64 `json:"damage"`
}

// Signal weights for the switch decision. Summed then clamped to [0,1];
// a total above 0.5 predicts a switch.
const (
	badMatchupWeight   = 0.50
	lowHPWeight        = 0.25
	allResistedWeight  = 0.30
	investedPenalty2   = 0.40
	investedPenalty1   = 0.20
	switchThreshold    = 0.50
	strongReserveMove  = 0.30
)

// trappingVolatiles are volatile statuses that pin the opponent in place.
var trappingVolatiles = []string{"trapped", "partiallytrapped", "noretreat", "jawlock"}

// Predict forecasts the opponent's next action. Missing snapshot pieces
// degrade to a neutral stay forecast rather than erroring.
func Predict(snap *model.BattleSnapshot, d *dex.Dex) OpponentAction {
	if snap == nil || snap.Theirs.Active == nil {
		return OpponentAction{Action: Stays, Confidence: 0.5}
	}
	opp := snap.Theirs.Active
	our := snap.Ours.Active

	// Trapped opponents cannot choose to leave.
	if isTrapped(our, opp) {
		return stayForecast(opp, our, d, 1.0)
	}
	reserves := snap.Theirs.AliveReserves()
	if len(reserves) == 0 {
		return stayForecast(opp, our, d, 1.0)
	}

	_, oppBest := bestDamage(opp, our, d)
	_, ourBest := bestDamage(our, opp, d)

	score := 0.0
	if oppBest < 0.12 && ourBest > 0.40 {
		score += badMatchupWeight
	}
	if opp.HPFraction() < 0.25 && len(reserves) >= 2 {
		score += lowHPWeight
	}
	if allRevealedResisted(opp, our, d) {
		score += allResistedWeight
	}
	switch {
	case opp.Boosts.Attack >= 2 || opp.Boosts.SpecialAttack >= 2:
		score -= investedPenalty2
	case opp.Boosts.Attack >= 1 || opp.Boosts.SpecialAttack >= 1:
		score -= investedPenalty1
	}
	score = clamp01(score)

	if score > switchThreshold {
		target, incomingDamage := predictSwitchTarget(snap, d)
		return OpponentAction{
			Action:     Switches,
			Confidence: score,
			SwitchIn:   target,
			Damage:     incomingDamage,
		}
	}
	forecast := stayForecast(opp, our, d, 1-score)
	return forecast
}

func stayForecast(opp, our *model.Pokemon, d *dex.Dex, confidence float64) OpponentAction {
	mv, dmg := bestDamage(opp, our, d)
	return OpponentAction{
		Action:     Stays,
		Confidence: confidence,
		Move:       dex.Normalize(mv.ID),
		Damage:     dmg,
	}
}

// isTrapped reports whether the opponent's active cannot switch: either a
// trapping volatile, or one of our trapping abilities whose type condition
// it satisfies.
func isTrapped(our, opp *model.Pokemon) bool {
	for _, v := range opp.Volatiles {
		for _, t := range trappingVolatiles {
			if strings.EqualFold(v, t) {
				return true
			}
		}
	}
	if our == nil {
		return false
	}
	switch dex.Normalize(our.Ability) {
	case "shadowtag":
		return dex.Normalize(opp.Ability) != "shadowtag"
	case "arenatrap":
		return !opp.HasType("flying") && dex.Normalize(opp.Ability) != "levitate"
	case "magnetpull":
		return opp.HasType("steel")
	}
	return false
}

// allRevealedResisted reports whether every usable move the opponent has
// revealed chips us for less than 8% — the classic tell that they have
// nothing and must leave.
func allRevealedResisted(opp, our *model.Pokemon, d *dex.Dex) bool {
	moves := opp.UsableMoves()
	if len(moves) == 0 {
		return false
	}
	for _, mv := range moves {
		if EstimateDamageRatio(opp, our, mv, d) >= 0.08 {
			return false
		}
	}
	return true
}

// predictSwitchTarget scores each alive opponent reserve on type matchup
// against our active, remaining HP, hazard entry cost, and revealed
// offense, and returns the best one. Ties go to the first encountered.
func predictSwitchTarget(snap *model.BattleSnapshot, d *dex.Dex) (string, float64) {
	our := snap.Ours.Active
	chart := d.Chart()

	var bestName string
	var bestMoveDamage float64
	bestScore := -1e9

	for i := range snap.Theirs.Reserves {
		reserve := &snap.Theirs.Reserves[i]
		if !reserve.Alive() {
			continue
		}

		score := 0.0
		reserveTypes := effectiveTypes(reserve)
		for _, t := range effectiveTypes(our) {
			switch eff := chart.Matchup(t, reserveTypes); {
			case eff < 1:
				score += 0.5
			case eff > 1:
				score -= 0.3
			}
		}
		score += 0.3 * reserve.HPFraction()
		score -= 0.5 * hazardEntryCost(reserve, snap.Theirs.Conditions, d)

		_, dmg := bestDamage(reserve, our, d)
		if dmg > strongReserveMove {
			score += 0.3
		}

		if score > bestScore {
			bestScore = score
			bestName = dex.Normalize(reserve.Name)
			bestMoveDamage = dmg
		}
	}
	return bestName, bestMoveDamage
}

// hazardEntryCost estimates the HP fraction a reserve loses on entry.
func hazardEntryCost(p *model.Pokemon, sc model.SideConditions, d *dex.Dex) float64 {
	if dex.Normalize(p.Item) == "heavydutyboots" {
		return 0
	}
	cost := 0.0
	if sc.StealthRock {
		cost += 0.125 * d.Chart().Matchup("rock", effectiveTypes(p))
	}
	grounded := !p.HasType("flying") && dex.Normalize(p.Ability) != "levitate"
	if grounded {
		switch sc.Spikes {
		case 1:
			cost += 0.125
		case 2:
			cost += 0.1667
		case 3:
			cost += 0.25
		}
	}
	return cost
}
