package action

import "testing"

func TestIsSwitch(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"switch skarmory", true},
		{"Switch Blissey", true},
		{"  switch ting-lu  ", true},
		{"stealth-rock", false},
		{"switcheroo", false},
		{"", false},
	}
	for _, tc := range tests {
		if got := IsSwitch(tc.id); got != tc.want {
			t.Errorf("IsSwitch(%q) = %v, want %v", tc.id, got, tc.want)
		}
	}
}

func TestSwitchTarget(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"switch skarmory", "skarmory"},
		{"switch Ting-Lu", "tinglu"},
		{"Switch Flabébé", "flabebe"},
		{"stealth-rock", ""},
	}
	for _, tc := range tests {
		if got := SwitchTarget(tc.id); got != tc.want {
			t.Errorf("SwitchTarget(%q) = %q, want %q", tc.id, got, tc.want)
		}
	}
}

func TestMoveID(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"stealth-rock", "stealthrock"},
		{"Stealth Rock", "stealthrock"},
		{"U-turn", "uturn"},
		{"switch skarmory", ""},
	}
	for _, tc := range tests {
		if got := MoveID(tc.id); got != tc.want {
			t.Errorf("MoveID(%q) = %q, want %q", tc.id, got, tc.want)
		}
	}
}
