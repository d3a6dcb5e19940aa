package scenario

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

// Report is the outcome of replaying one scenario.
type Report struct {
	Scenario Scenario
	Actual   entity.Result
	Err      error
}

func (that Report) Passed() bool {
	return that.Err == nil && that.Scenario.Expected.Matches(that.Actual)
}

func (that Report) String() string {
	status := "PASS"
	if !that.Passed() {
		status = "FAIL"
	}

	if that.Err != nil {
		return fmt.Sprintf("%s line %d: expected %s, got error: %v", status, that.Scenario.Line, that.Scenario.Expected, that.Err)
	}

	return fmt.Sprintf("%s line %d: expected %s, got %s", status, that.Scenario.Line, that.Scenario.Expected, that.Actual)
}

// Summary collects the reports of a run.
type Summary struct {
	Tier    Tier
	Reports []Report
}

func (that Summary) Passed() int {
	passed := 0
	for _, report := range that.Reports {
		if report.Passed() {
			passed++
		}
	}

	return passed
}

func (that Summary) Failed() int {
	return len(that.Reports) - that.Passed()
}

func (that Summary) OK() bool {
	return that.Failed() == 0
}

type Runner struct {
	logger *slog.Logger
	engine tictactoe.Engine
}

func NewRunner(logger *slog.Logger, engine tictactoe.Engine) *Runner {
	return &Runner{
		logger: logger,
		engine: engine,
	}
}

// Run - replays the scenarios selected by the tier. X always moves first.
func (that *Runner) Run(scenarios []Scenario, tier Tier) Summary {
	log := that.logger.With("method", "Run", "tier", tier.String())

	selected := Filter(scenarios, tier)
	summary := Summary{Tier: tier, Reports: make([]Report, 0, len(selected))}

	for _, sc := range selected {
		result, err := that.engine.PlayGame(tictactoe.NewMoveList(sc.Moves...), entity.X,
			tictactoe.WithLogger(that.logger))

		report := Report{Scenario: sc, Actual: result, Err: err}
		if report.Passed() {
			log.Debug("scenario passed", "line", sc.Line)
		} else {
			log.Warn("scenario failed", "line", sc.Line, "expected", sc.Expected.String(), "actual", result.String(), "error", err)
		}

		summary.Reports = append(summary.Reports, report)
	}

	log.Info("scenarios replayed", "total", len(summary.Reports), "passed", summary.Passed())

	return summary
}
