package predict

import (
	"strings"

	"github.com/kantobot/strategy-core/dex"
	"github.com/kantobot/strategy-core/model"
)

const defaultLevel = 100

// effectiveTypes returns the defending (or attacking) type set, collapsing
// to the tera type while terastallized.
func effectiveTypes(p *model.Pokemon) []string {
	if p == nil {
		return nil
	}
	if p.Terastallized && p.TeraType != "" {
		return []string{p.TeraType}
	}
	return p.Types
}

// hasSTAB reports whether the move type matches one of the attacker's
// types, counting an active tera type.
func hasSTAB(attacker *model.Pokemon, moveType string) bool {
	if attacker == nil {
		return false
	}
	if attacker.TeraType != "" && attacker.Terastallized && strings.EqualFold(attacker.TeraType, moveType) {
		return true
	}
	for _, t := range attacker.Types {
		if strings.EqualFold(t, moveType) {
			return true
		}
	}
	return false
}

func boostMultiplier(stage int) float64 {
	switch {
	case stage > 0:
		return float64(2+stage) / 2
	case stage < 0:
		return 2 / float64(2-stage)
	default:
		return 1
	}
}

// EstimateDamageRatio approximates the fraction of the defender's max HP
// one use of the move removes. Simplified on purpose: no items, abilities,
// weather, or rolls — it only has to be good enough to rank moves and
// matchups for the opponent predictor.
func EstimateDamageRatio(attacker, defender *model.Pokemon, mv model.Move, d *dex.Dex) float64 {
	if attacker == nil || defender == nil || defender.MaxHP <= 0 {
		return 0
	}
	if strings.EqualFold(mv.Category, "status") {
		return 0
	}

	chart := d.Chart()
	eff := chart.Matchup(mv.Type, effectiveTypes(defender))
	if eff == 0 {
		return 0
	}

	if fd, ok := d.FixedDamageFor(mv.ID); ok {
		var dmg float64
		switch fd.Kind {
		case dex.DamageByLevel:
			level := attacker.Level
			if level <= 0 {
				level = defaultLevel
			}
			dmg = float64(level)
		case dex.DamageFlat:
			dmg = float64(fd.Amount)
		case dex.DamageHalfHP:
			dmg = float64(defender.HP) / 2
		}
		return clamp01(dmg / float64(defender.MaxHP))
	}

	if mv.Power <= 0 {
		return 0
	}

	var atk, def float64
	if strings.EqualFold(mv.Category, "physical") {
		atk = float64(attacker.Stats.Attack) * boostMultiplier(attacker.Boosts.Attack)
		def = float64(defender.Stats.Defense) * boostMultiplier(defender.Boosts.Defense)
	} else {
		atk = float64(attacker.Stats.SpecialAttack) * boostMultiplier(attacker.Boosts.SpecialAttack)
		def = float64(defender.Stats.SpecialDefense) * boostMultiplier(defender.Boosts.SpecialDefense)
	}
	if atk <= 0 || def <= 0 {
		return 0
	}

	level := attacker.Level
	if level <= 0 {
		level = defaultLevel
	}

	base := (float64(2*level)/5+2)*float64(mv.Power)*(atk/def)/50 + 2
	if hasSTAB(attacker, mv.Type) {
		base *= 1.5
	}
	base *= eff

	return clamp01(base / float64(defender.MaxHP))
}

// bestDamage returns the highest estimated damage fraction among the
// attacker's usable moves, and the move that deals it.
func bestDamage(attacker, defender *model.Pokemon, d *dex.Dex) (model.Move, float64) {
	var best model.Move
	bestRatio := 0.0
	if attacker == nil {
		return best, 0
	}
	for _, mv := range attacker.UsableMoves() {
		if ratio := EstimateDamageRatio(attacker, defender, mv, d); ratio > bestRatio {
			bestRatio = ratio
			best = mv
		}
	}
	return best, bestRatio
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
