// Package dex carries the static game knowledge the strategy layer leans
// on: the type chart, move classifications, species role sets, and
// identifier normalization. A default dataset is embedded; hosts can load
// an override file with the same schema.
package dex

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/kantobot/strategy-core/model"
)

//go:embed data.yaml
var embedded []byte

// FixedDamageKind describes moves the damage estimator special-cases.
type FixedDamageKind int

const (
	// DamageByLevel deals the attacker's level in HP (seismic toss style).
	DamageByLevel FixedDamageKind = iota
	// DamageFlat deals a constant amount of HP.
	DamageFlat
	// DamageHalfHP removes half the target's current HP.
	DamageHalfHP
)

// FixedDamage is the parsed form of a fixed_damage entry.
type FixedDamage struct {
	Kind   FixedDamageKind
	Amount int // only for DamageFlat
}

type set map[string]struct{}

func (s set) has(name string) bool {
	_, ok := s[Normalize(name)]
	return ok
}

func toSet(names []string) set {
	s := make(set, len(names))
	for _, n := range names {
		s[Normalize(n)] = struct{}{}
	}
	return s
}

// Dex is an immutable bundle of game data. Safe for concurrent use.
type Dex struct {
	chart *TypeChart

	hazard        set
	hazardRemoval set
	recovery      set
	pivot         set
	boost         set
	statusSpread  set
	utility       set

	walls    set
	sweepers set

	fixed map[string]FixedDamage
}

type rawData struct {
	Types         []string                      `yaml:"types"`
	Effectiveness map[string]map[string]float64 `yaml:"effectiveness"`
	Moves         struct {
		Hazard        []string `yaml:"hazard"`
		HazardRemoval []string `yaml:"hazard_removal"`
		Recovery      []string `yaml:"recovery"`
		Pivot         []string `yaml:"pivot"`
		Boost         []string `yaml:"boost"`
		StatusSpread  []string `yaml:"status_spread"`
		Utility       []string `yaml:"utility"`
	} `yaml:"moves"`
	Species struct {
		Walls    []string `yaml:"walls"`
		Sweepers []string `yaml:"sweepers"`
	} `yaml:"species"`
	FixedDamage map[string]string `yaml:"fixed_damage"`
}

var (
	defaultOnce sync.Once
	defaultDex  *Dex
)

// Default returns the embedded dataset, parsed once. The embedded data is
// validated at build time by the package tests, so a parse failure here is
// a programming error.
func Default() *Dex {
	defaultOnce.Do(func() {
		d, err := Parse(embedded)
		if err != nil {
			panic(fmt.Sprintf("dex: embedded data invalid: %v", err))
		}
		defaultDex = d
	})
	return defaultDex
}

// Load reads a dataset override from a YAML file with the embedded schema.
func Load(path string) (*Dex, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dex data: %w", err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse dex data %s: %w", path, err)
	}
	return d, nil
}

// Parse builds a Dex from raw YAML.
func Parse(data []byte) (*Dex, error) {
	var raw rawData
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal dex data: %w", err)
	}
	if len(raw.Types) == 0 {
		return nil, fmt.Errorf("dex data declares no types")
	}

	chart := newTypeChart(raw.Types)
	for att, row := range raw.Effectiveness {
		for def, mult := range row {
			chart.set(att, def, mult)
		}
	}

	fixed := make(map[string]FixedDamage, len(raw.FixedDamage))
	for move, spec := range raw.FixedDamage {
		fd, err := parseFixedDamage(spec)
		if err != nil {
			return nil, fmt.Errorf("fixed_damage %s: %w", move, err)
		}
		fixed[Normalize(move)] = fd
	}

	return &Dex{
		chart:         chart,
		hazard:        toSet(raw.Moves.Hazard),
		hazardRemoval: toSet(raw.Moves.HazardRemoval),
		recovery:      toSet(raw.Moves.Recovery),
		pivot:         toSet(raw.Moves.Pivot),
		boost:         toSet(raw.Moves.Boost),
		statusSpread:  toSet(raw.Moves.StatusSpread),
		utility:       toSet(raw.Moves.Utility),
		walls:         toSet(raw.Species.Walls),
		sweepers:      toSet(raw.Species.Sweepers),
		fixed:         fixed,
	}, nil
}

func parseFixedDamage(spec string) (FixedDamage, error) {
	switch {
	case spec == "level":
		return FixedDamage{Kind: DamageByLevel}, nil
	case spec == "half":
		return FixedDamage{Kind: DamageHalfHP}, nil
	case strings.HasPrefix(spec, "flat:"):
		n, err := strconv.Atoi(strings.TrimPrefix(spec, "flat:"))
		if err != nil {
			return FixedDamage{}, fmt.Errorf("bad flat amount %q", spec)
		}
		return FixedDamage{Kind: DamageFlat, Amount: n}, nil
	default:
		return FixedDamage{}, fmt.Errorf("unknown kind %q", spec)
	}
}

// Chart returns the type effectiveness chart.
func (d *Dex) Chart() *TypeChart { return d.chart }

func (d *Dex) IsHazard(move string) bool        { return d.hazard.has(move) }
func (d *Dex) IsHazardRemoval(move string) bool { return d.hazardRemoval.has(move) }
func (d *Dex) IsRecovery(move string) bool      { return d.recovery.has(move) }
func (d *Dex) IsPivot(move string) bool         { return d.pivot.has(move) }
func (d *Dex) IsBoost(move string) bool         { return d.boost.has(move) }
func (d *Dex) IsStatusSpread(move string) bool  { return d.statusSpread.has(move) }
func (d *Dex) IsUtility(move string) bool       { return d.utility.has(move) }

func (d *Dex) IsWall(species string) bool    { return d.walls.has(species) }
func (d *Dex) IsSweeper(species string) bool { return d.sweepers.has(species) }

// FixedDamageFor returns the fixed-damage rule for a move, if it has one.
func (d *Dex) FixedDamageFor(move string) (FixedDamage, bool) {
	fd, ok := d.fixed[Normalize(move)]
	return fd, ok
}

// HazardOnSide reports whether the hazard a move sets is already maxed out
// on the given side (layered hazards count against their caps).
func (d *Dex) HazardOnSide(move string, sc model.SideConditions) bool {
	switch Normalize(move) {
	case "stealthrock", "stoneaxe":
		return sc.StealthRock
	case "spikes", "ceaselessedge":
		return sc.Spikes >= 3
	case "toxicspikes":
		return sc.ToxicSpikes >= 2
	case "stickyweb":
		return sc.StickyWeb
	default:
		return false
	}
}
