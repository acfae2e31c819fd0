package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/kantobot/strategy-core/action"
	"github.com/kantobot/strategy-core/agent"
	"github.com/kantobot/strategy-core/dex"
	"github.com/kantobot/strategy-core/model"
	"github.com/kantobot/strategy-core/plan"
)

const banner = `
strategy-core — archetype, gameplan, and opponent forecast inspector`

// fixture is a saved decision point: team sheet, snapshot, and the legal
// actions the host offered that turn.
type fixture struct {
	BattleID       string                `json:"battleId,omitempty"`
	Team           []model.TeamMember    `json:"team"`
	Snapshot       *model.BattleSnapshot `json:"snapshot"`
	LegalActions   []string              `json:"legalActions"`
	LastDecision   string                `json:"lastDecision,omitempty"`
	TurnsInCurrent int                   `json:"turnsInCurrent,omitempty"`
}

func main() {
	fixturePath := flag.String("fixture", "", "path to a battle fixture JSON")
	dexPath := flag.String("dex", "", "optional dex data override (YAML)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	fmt.Println(banner)

	if *fixturePath == "" {
		slog.Error("no fixture given; pass -fixture path/to/battle.json")
		os.Exit(1)
	}

	d := dex.Default()
	if *dexPath != "" {
		loaded, err := dex.Load(*dexPath)
		if err != nil {
			slog.Error("failed to load dex override", "path", *dexPath, "error", err)
			os.Exit(1)
		}
		d = loaded
	}

	data, err := os.ReadFile(*fixturePath)
	if err != nil {
		slog.Error("failed to read fixture", "path", *fixturePath, "error", err)
		os.Exit(1)
	}
	var fx fixture
	if err := json.Unmarshal(data, &fx); err != nil {
		slog.Error("failed to parse fixture", "path", *fixturePath, "error", err)
		os.Exit(1)
	}
	if fx.BattleID == "" {
		fx.BattleID = uuid.NewString()
		slog.Info("fixture has no battle id, minted one", "battle", fx.BattleID)
	}

	orch := agent.New(agent.NewStore(), d)
	defer orch.Clear(fx.BattleID)

	ta, gp := orch.Initialize(fx.BattleID, fx.Team)
	slog.Info("classification",
		"archetype", ta.Archetype.String(),
		"confidence", ta.Confidence,
		"primary", ta.PrimaryWinCondition,
		"mandatorySetup", ta.MandatorySetup,
	)
	slog.Info("gameplan",
		"switchBudget", gp.SwitchBudget,
		"hpMinimums", gp.HPMinimums,
		"deadlines", gp.MoveDeadlines,
	)

	if fx.Snapshot != nil {
		slog.Info("phase", "turn", fx.Snapshot.Turn, "phase", plan.Phase(fx.Snapshot).String())
	}

	filtered, scores := orch.EnhanceMoveSelection(
		fx.LegalActions, fx.Snapshot, fx.BattleID, fx.LastDecision, fx.TurnsInCurrent)
	advice := action.Advice{Actions: filtered, Scores: scores}
	out, err := json.MarshalIndent(advice, "", "  ")
	if err != nil {
		slog.Error("failed to encode advice", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))

	forecast := orch.PredictOpponent(fx.Snapshot)
	slog.Info("opponent forecast",
		"action", forecast.Action.String(),
		"confidence", forecast.Confidence,
		"move", forecast.Move,
		"switchIn", forecast.SwitchIn,
		"damage", forecast.Damage,
	)
}
