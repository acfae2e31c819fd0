package model

import "strings"

// TeamMember is one slot of the team sheet handed to us at battle start.
// Immutable once the battle begins.
type TeamMember struct {
	Species  string   `json:"species"`
	Moves    []string `json:"moves"` // in team-sheet order
	Item     string   `json:"item,omitempty"`
	Ability  string   `json:"ability,omitempty"`
	TeraType string   `json:"teraType,omitempty"`
}

func equalTypeName(a, b string) bool { return strings.EqualFold(a, b) }
