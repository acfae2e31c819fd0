package agent

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kantobot/strategy-core/archetype"
	"github.com/kantobot/strategy-core/dex"
	"github.com/kantobot/strategy-core/model"
	"github.com/kantobot/strategy-core/plan"
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

func turnOneSnap(active string) *model.BattleSnapshot {
	ours := model.Pokemon{Name: active, HP: 334, MaxHP: 334}
	theirs := model.Pokemon{Name: "Garchomp", HP: 404, MaxHP: 404, Types: []string{"dragon", "ground"}}
	return &model.BattleSnapshot{
		Turn:   1,
		Ours:   model.Side{Active: &ours},
		Theirs: model.Side{Active: &theirs},
	}
}

func TestInitializeIdempotent(t *testing.T) {
	o := New(nil, nil)
	ta1, gp1 := o.Initialize("b1", hazardTeam())
	ta2, gp2 := o.Initialize("b1", hazardTeam())

	assert.Equal(t, archetype.HazardStack, ta1.Archetype)
	assert.Equal(t, ta1, ta2)
	assert.Same(t, gp1, gp2)
}

func TestGameplanLifecycle(t *testing.T) {
	store := NewStore()
	o := New(store, dex.Default())

	_, ok := o.Gameplan("b1")
	assert.False(t, ok)

	o.Initialize("b1", hazardTeam())
	gp, ok := o.Gameplan("b1")
	require.True(t, ok)
	assert.Equal(t, archetype.HazardStack, gp.Archetype)
	assert.Equal(t, 1, store.Len())

	o.Clear("b1")
	_, ok = o.Gameplan("b1")
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())
}

func TestEnhanceUninitialized(t *testing.T) {
	o := New(nil, nil)
	legal := []string{"tackle", "switch blissey"}

	actions, scores := o.EnhanceMoveSelection(legal, turnOneSnap("Skarmory"), "missing", "", 0)
	assert.Equal(t, legal, actions)
	for _, act := range legal {
		assert.Equal(t, 0.5, scores[act], act)
	}
}

func TestEnhanceEmptyLegal(t *testing.T) {
	o := New(nil, nil)
	actions, scores := o.EnhanceMoveSelection(nil, turnOneSnap("Skarmory"), "b1", "", 0)
	assert.Empty(t, actions)
	assert.Empty(t, scores)
}

// Turn one with the hazard lead in: the filter narrows to the due hazards
// and every surviving action gets a score.
func TestEnhanceForcesOpeningHazards(t *testing.T) {
	o := New(nil, nil)
	o.Initialize("b1", hazardTeam())

	legal := []string{"stealth-rock", "spikes", "roost", "whirlwind", "switch blissey"}
	actions, scores := o.EnhanceMoveSelection(legal, turnOneSnap("Skarmory"), "b1", "", 0)

	require.Equal(t, []string{"stealth-rock", "spikes"}, actions)
	require.Len(t, scores, 2)
	for act, score := range scores {
		assert.Greater(t, score, 0.0, act)
	}
}

func TestEnhanceScoresRankOnPlanMoves(t *testing.T) {
	o := New(nil, nil)
	o.Initialize("b1", hazardTeam())

	// Past the hazard deadlines so nothing is forced.
	snap := turnOneSnap("Skarmory")
	snap.Turn = 10
	legal := []string{"stealth-rock", "brave-bird"}
	actions, scores := o.EnhanceMoveSelection(legal, snap, "b1", "", 5)

	require.Len(t, actions, 2)
	assert.Greater(t, scores["stealth-rock"], scores["brave-bird"],
		"hazard move should outrank filler while rocks are down")
}

func TestApplyCommitment(t *testing.T) {
	o := New(nil, nil)
	scores := map[string]float64{"tackle": 1.0, "switch blissey": 1.0}

	got := o.ApplyCommitment(scores, "tackle", 1, nil)
	assert.InDelta(t, 1.15, got["tackle"], 1e-9)
	assert.InDelta(t, 0.85, got["switch blissey"], 1e-9)

	settled := o.ApplyCommitment(scores, "tackle", 3, nil)
	assert.Equal(t, scores, settled)
}

func TestWeightPosition(t *testing.T) {
	o := New(nil, nil)
	o.Initialize("b1", hazardTeam())
	base := map[string]float64{"stealth-rock": 0.8, "brave-bird": 0.5}

	got := o.WeightPosition("b1", turnOneSnap("Skarmory"), base)
	assert.InDelta(t, 1.2, got["stealth-rock"], 1e-9)
	assert.Equal(t, 0.5, got["brave-bird"])

	// Unknown battles get a copy back, untouched.
	copied := o.WeightPosition("missing", turnOneSnap("Skarmory"), base)
	assert.Equal(t, base, copied)
	copied["stealth-rock"] = 0
	assert.Equal(t, 0.8, base["stealth-rock"])
}

func TestPredictOpponentWired(t *testing.T) {
	o := New(nil, nil)
	got := o.PredictOpponent(nil)
	assert.Equal(t, 0.5, got.Confidence)
}

func TestStoreConcurrentBattles(t *testing.T) {
	store := NewStore()
	o := New(store, dex.Default())
	team := hazardTeam()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("battle-%d", n%8)
			o.Initialize(id, team)
			if _, ok := o.Gameplan(id); !ok {
				t.Errorf("Gameplan(%s) missing after Initialize", id)
			}
			o.EnhanceMoveSelection([]string{"roost", "switch blissey"}, turnOneSnap("Corviknight"), id, "", 0)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 8, store.Len())
}

// Racing initializations of the same battle must agree on one entry.
func TestStoreEnsureSingleWinner(t *testing.T) {
	o := New(nil, nil)

	var wg sync.WaitGroup
	plans := make([]*plan.Gameplan, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, gp := o.Initialize("shared", hazardTeam())
			plans[n] = gp
		}(i)
	}
	wg.Wait()
	for i := 1; i < 16; i++ {
		assert.Same(t, plans[0], plans[i])
	}
}
