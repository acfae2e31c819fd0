package plan

import (
	"reflect"
	"testing"

	"github.com/kantobot/strategy-core/archetype"
	"github.com/kantobot/strategy-core/dex"
	"github.com/kantobot/strategy-core/model"
)

func member(species string, moves ...string) model.TeamMember {
	return model.TeamMember{Species: species, Moves: moves}
}

func hazardTeam() []model.TeamMember {
	return []model.TeamMember{
		member("Skarmory", "Stealth Rock", "Spikes", "Roost", "Whirlwind"),
		member("Blissey", "Seismic Toss", "Soft-Boiled", "Toxic", "Stealth Rock"),
		member("Ting-Lu", "Earthquake", "Ruination", "Spikes", "Whirlwind"),
		member("Gholdengo", "Make It Rain", "Shadow Ball", "Nasty Plot", "Recover"),
		member("Corviknight", "Brave Bird", "Defog", "Roost", "U-turn"),
		member("Great Tusk", "Headlong Rush", "Rapid Spin", "Knock Off", "Stealth Rock"),
	}
}

func sweeperTeam() []model.TeamMember {
	return []model.TeamMember{
		member("Dragonite", "Dragon Dance", "Outrage", "Earthquake", "Fire Punch"),
		member("Toxapex", "Surf", "Toxic", "Haze", "Recover"),
		member("Garchomp", "Earthquake", "Dragon Claw", "Fire Blast", "Scale Shot"),
		member("Weavile", "Knock Off", "Icicle Crash", "Ice Shard", "Low Kick"),
		member("Heatran", "Magma Storm", "Earth Power", "Flash Cannon", "Taunt"),
		member("Zapdos", "Thunderbolt", "Hurricane", "Heat Wave", "Roost"),
	}
}

func planFor(t *testing.T, team []model.TeamMember) Gameplan {
	t.Helper()
	d := dex.Default()
	return Generate(archetype.Classify(team, d), team, d)
}

func TestGenerateHazardStack(t *testing.T) {
	gp := planFor(t, hazardTeam())

	if gp.Archetype != archetype.HazardStack {
		t.Fatalf("Generate() archetype = %v, want %v", gp.Archetype, archetype.HazardStack)
	}
	if got := gp.MoveDeadlines["stealthrock"]; got != 4 {
		t.Errorf("stealth rock deadline = %d, want 4", got)
	}
	if got := gp.MoveDeadlines["spikes"]; got != 6 {
		t.Errorf("spikes deadline = %d, want 6", got)
	}
	if gp.SwitchBudget != 6 {
		t.Errorf("SwitchBudget = %d, want 6", gp.SwitchBudget)
	}
	for _, sp := range []string{"skarmory", "blissey", "tinglu"} {
		if got := gp.HPMinimums[sp]; got != 0.6 {
			t.Errorf("HPMinimums[%s] = %v, want 0.6", sp, got)
		}
	}
	skarm := gp.MandatoryMoves["skarmory"]
	if !reflect.DeepEqual(skarm, []string{"stealthrock", "spikes"}) {
		t.Errorf("MandatoryMoves[skarmory] = %v, want stealth rock and spikes", skarm)
	}
	if gp.Goals.Early == "" || gp.Goals.Mid == "" || gp.Goals.Late == "" {
		t.Errorf("Goals = %+v, want text for every phase", gp.Goals)
	}
}

func TestGenerateStallCore(t *testing.T) {
	team := []model.TeamMember{
		member("Toxapex", "Recover", "Toxic", "Haze", "Surf"),
		member("Blissey", "Soft-Boiled", "Seismic Toss", "Toxic", "Protect"),
		member("Dondozo", "Waterfall", "Rest", "Protect", "Liquidation"),
		member("Clodsire", "Recover", "Toxic", "Earthquake", "Protect"),
	}
	gp := planFor(t, team)

	if gp.Archetype != archetype.StallCore {
		t.Fatalf("Generate() archetype = %v, want %v", gp.Archetype, archetype.StallCore)
	}
	if gp.SwitchBudget != 8 {
		t.Errorf("SwitchBudget = %d, want 8", gp.SwitchBudget)
	}
	if got := gp.HPMinimums["toxapex"]; got != 0.5 {
		t.Errorf("HPMinimums[toxapex] = %v, want 0.5", got)
	}
	if moves := gp.MandatoryMoves["blissey"]; len(moves) == 0 {
		t.Error("MandatoryMoves[blissey] empty, want recovery and status moves")
	}
}

func TestGeneratePivot(t *testing.T) {
	team := []model.TeamMember{
		member("Rotom-Wash", "Volt Switch", "Hydro Pump", "Will-O-Wisp", "Pain Split"),
		member("Cinderace", "Pyro Ball", "U-turn", "Court Change", "Sucker Punch"),
		member("Meowscarada", "Flower Trick", "U-turn", "Knock Off", "Triple Axel"),
		member("Zapdos", "Volt Switch", "Hurricane", "Heat Wave", "Thunderbolt"),
	}
	gp := planFor(t, team)

	if gp.Archetype != archetype.Pivot {
		t.Fatalf("Generate() archetype = %v, want %v", gp.Archetype, archetype.Pivot)
	}
	if gp.SwitchBudget != 10 {
		t.Errorf("SwitchBudget = %d, want 10", gp.SwitchBudget)
	}
	if got := gp.HPMinimums["rotomwash"]; got != 0.7 {
		t.Errorf("HPMinimums[rotomwash] = %v, want 0.7", got)
	}
	if moves := gp.MandatoryMoves["zapdos"]; !reflect.DeepEqual(moves, []string{"voltswitch"}) {
		t.Errorf("MandatoryMoves[zapdos] = %v, want volt switch", moves)
	}
}

func TestGenerateSetupSweeper(t *testing.T) {
	gp := planFor(t, sweeperTeam())

	if gp.Archetype != archetype.SetupSweeper {
		t.Fatalf("Generate() archetype = %v, want %v", gp.Archetype, archetype.SetupSweeper)
	}
	if got := gp.HPMinimums["dragonite"]; got != 0.8 {
		t.Errorf("HPMinimums[dragonite] = %v, want 0.8", got)
	}
	if got := gp.MoveDeadlines["dragondance"]; got != 15 {
		t.Errorf("dragon dance deadline = %d, want 15", got)
	}
	if gp.SwitchBudget != 6 {
		t.Errorf("SwitchBudget = %d, want 6", gp.SwitchBudget)
	}
	if len(gp.ProhibitedSwitches) != 1 {
		t.Errorf("ProhibitedSwitches = %v, want the sweeper ban carried over", gp.ProhibitedSwitches)
	}
}

func TestGenerateBudgets(t *testing.T) {
	d := dex.Default()
	tests := []struct {
		a    archetype.Archetype
		want int
	}{
		{archetype.HyperOffense, 5},
		{archetype.Balanced, 7},
	}
	for _, tc := range tests {
		gp := Generate(archetype.TeamArchetype{Archetype: tc.a}, nil, d)
		if gp.SwitchBudget != tc.want {
			t.Errorf("%v SwitchBudget = %d, want %d", tc.a, gp.SwitchBudget, tc.want)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	d := dex.Default()
	team := hazardTeam()
	ta := archetype.Classify(team, d)
	a := Generate(ta, team, d)
	b := Generate(ta, team, d)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Generate() not deterministic:\n%+v\nvs\n%+v", a, b)
	}
}
