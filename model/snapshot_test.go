package model

import "testing"

func TestHPFraction(t *testing.T) {
	tests := []struct {
		name string
		p    *Pokemon
		want float64
	}{
		{"full", &Pokemon{HP: 100, MaxHP: 100}, 1.0},
		{"half", &Pokemon{HP: 50, MaxHP: 100}, 0.5},
		{"fainted", &Pokemon{HP: 0, MaxHP: 100}, 0.0},
		{"unknown max", &Pokemon{HP: 50, MaxHP: 0}, 0.0},
		{"nil", nil, 0.0},
	}
	for _, tc := range tests {
		if got := tc.p.HPFraction(); got != tc.want {
			t.Errorf("%s: HPFraction() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestAliveReserves(t *testing.T) {
	side := Side{Reserves: []Pokemon{
		{Name: "a", HP: 10, MaxHP: 100},
		{Name: "b", HP: 0, MaxHP: 100},
		{Name: "c", HP: 100, MaxHP: 100},
	}}
	alive := side.AliveReserves()
	if len(alive) != 2 {
		t.Fatalf("AliveReserves() returned %d pokemon, want 2", len(alive))
	}
	if alive[0].Name != "a" || alive[1].Name != "c" {
		t.Errorf("AliveReserves() = %v, want a and c", alive)
	}
}

func TestUsableMoves(t *testing.T) {
	p := &Pokemon{Moves: []Move{
		{ID: "ok", PP: 10},
		{ID: "empty", PP: 0},
		{ID: "disabled", PP: 5, Disabled: true},
	}}
	usable := p.UsableMoves()
	if len(usable) != 1 || usable[0].ID != "ok" {
		t.Errorf("UsableMoves() = %v, want only the move with PP", usable)
	}
}

func TestHasTypeTera(t *testing.T) {
	p := &Pokemon{Types: []string{"ghost", "steel"}, TeraType: "fairy"}
	if !p.HasType("steel") {
		t.Error("HasType(steel) = false before tera, want true")
	}
	p.Terastallized = true
	if p.HasType("steel") {
		t.Error("HasType(steel) = true after tera to fairy, want false")
	}
	if !p.HasType("fairy") {
		t.Error("HasType(fairy) = false after tera, want true")
	}
}

func TestRoster(t *testing.T) {
	side := Side{
		Active:   &Pokemon{Name: "active"},
		Reserves: []Pokemon{{Name: "r1"}, {Name: "r2"}},
	}
	roster := side.Roster()
	if len(roster) != 3 || roster[0].Name != "active" {
		t.Errorf("Roster() = %v, want active first then reserves", roster)
	}
	if got := (Side{}).Roster(); len(got) != 0 {
		t.Errorf("empty side Roster() = %v, want empty", got)
	}
}
