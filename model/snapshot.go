package model

// BattleSnapshot is the read-only view of a battle at the moment a decision
// is requested. The host fills it from protocol state each turn; nothing in
// this module mutates it.
type BattleSnapshot struct {
	Turn   int  `json:"turn"`
	Ours   Side `json:"ours"`
	Theirs Side `json:"theirs"`
}

// Side is one player's half of the field.
type Side struct {
	Active     *Pokemon       `json:"active,omitempty"`
	Reserves   []Pokemon      `json:"reserves"`
	Conditions SideConditions `json:"conditions"`
}

// SideConditions tracks entry hazards on one side of the field.
type SideConditions struct {
	StealthRock bool `json:"stealthRock"`
	Spikes      int  `json:"spikes"`      // 0–3 layers
	ToxicSpikes int  `json:"toxicSpikes"` // 0–2 layers
	StickyWeb   bool `json:"stickyWeb"`
}

type Pokemon struct {
	Name          string   `json:"name"`
	Level         int      `json:"level"`
	HP            int      `json:"hp"`
	MaxHP         int      `json:"maxHp"`
	Types         []string `json:"types"`
	TeraType      string   `json:"teraType,omitempty"`
	Terastallized bool     `json:"terastallized,omitempty"`
	Ability       string   `json:"ability"`
	Item          string   `json:"item"`
	Status        string   `json:"status,omitempty"`
	Volatiles     []string `json:"volatiles,omitempty"`
	Stats         Stats    `json:"stats"`
	Boosts        Boosts   `json:"boosts"`
	Moves         []Move   `json:"moves"`
}

// Stats are the effective (post-EV, pre-boost) battle stats.
type Stats struct {
	Attack         int `json:"atk"`
	Defense        int `json:"def"`
	SpecialAttack  int `json:"spa"`
	SpecialDefense int `json:"spd"`
	Speed          int `json:"spe"`
}

// Boosts are stat stages in −6..+6.
type Boosts struct {
	Attack         int `json:"atk"`
	Defense        int `json:"def"`
	SpecialAttack  int `json:"spa"`
	SpecialDefense int `json:"spd"`
	Speed          int `json:"spe"`
}

type Move struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Category string `json:"category"` // "physical" | "special" | "status"
	Power    int    `json:"power"`
	PP       int    `json:"pp"`
	Disabled bool   `json:"disabled,omitempty"`
}

// Alive reports whether the pokemon has HP left.
func (p *Pokemon) Alive() bool { return p != nil && p.HP > 0 }

// HPFraction returns remaining HP as a fraction of max, 0 if max is unknown.
func (p *Pokemon) HPFraction() float64 {
	if p == nil || p.MaxHP <= 0 {
		return 0
	}
	return float64(p.HP) / float64(p.MaxHP)
}

// HasType reports whether t is one of the pokemon's current types.
// A terastallized pokemon is treated as mono-tera.
func (p *Pokemon) HasType(t string) bool {
	if p == nil {
		return false
	}
	if p.Terastallized && p.TeraType != "" {
		return equalTypeName(p.TeraType, t)
	}
	for _, pt := range p.Types {
		if equalTypeName(pt, t) {
			return true
		}
	}
	return false
}

// UsableMoves returns the moves with PP remaining that are not disabled.
func (p *Pokemon) UsableMoves() []Move {
	if p == nil {
		return nil
	}
	var out []Move
	for _, m := range p.Moves {
		if m.PP > 0 && !m.Disabled {
			out = append(out, m)
		}
	}
	return out
}

// AliveReserves returns the reserves still able to battle.
func (s Side) AliveReserves() []Pokemon {
	var out []Pokemon
	for _, p := range s.Reserves {
		if p.HP > 0 {
			out = append(out, p)
		}
	}
	return out
}

// Roster returns the active pokemon (if any) followed by all reserves.
func (s Side) Roster() []Pokemon {
	var out []Pokemon
	if s.Active != nil {
		out = append(out, *s.Active)
	}
	return append(out, s.Reserves...)
}
