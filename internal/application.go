package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-console/internal/scenario"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-console/transport/console"
)

var (
	ErrAddrNotFound    = errors.New("redis address string is empty")
	ErrScenariosFailed = errors.New("scenarios failed")
)

// RunApp - runs the application on the process console.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return Run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Run - wires the components and runs the configured mode against the given console streams.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	engine := tictactoe.DefaultEngine{}

	if conf.Mode == config.ModeGrade {
		return runGrade(logger, conf, engine, out)
	}

	scoreboardRepo, closeScoreboard, err := newScoreboard(ctx, logger, conf)
	if err != nil {
		return err
	}
	defer closeScoreboard()

	gameService := service.NewGameService(logger, engine, scoreboardRepo)

	return runPlay(ctx, logger, conf, gameService, in, out)
}

// newScoreboard - connects the scoreboard when it is enabled. The returned repository is nil otherwise.
func newScoreboard(ctx context.Context, logger *slog.Logger, conf *config.Config) (repository.ScoreboardRepository, func(), error) {
	log := logger.With("component", "app")

	if !conf.Scoreboard.Enabled {
		return nil, func() {}, nil
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if conf.Redis.Host == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisClient, err := storage.NewRedis(ctx, redisAddrString)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeFn := func() {
		if err := redisClient.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewScoreboardRepository(redisClient), closeFn, nil
}

func runPlay(ctx context.Context, logger *slog.Logger, conf *config.Config, gameService service.GameService, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app", "mode", config.ModePlay)

	starting, err := conf.Starting()
	if err != nil {
		return fmt.Errorf("failed to read starting player: %w", err)
	}

	term := console.New(in, out)

	// reading the console blocks, so the game runs apart from the signal watcher
	errCh := make(chan error, 1)
	go func() {
		_, playErr := gameService.Play(ctx, term, term, starting)
		errCh <- playErr
	}()

	select {
	case err = <-errCh:
		if err != nil {
			return fmt.Errorf("game failed: %w", err)
		}
		if err = term.Err(); err != nil {
			return fmt.Errorf("console output failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

func runGrade(logger *slog.Logger, conf *config.Config, engine tictactoe.Engine, out io.Writer) error {
	tier, err := scenario.ParseTier(conf.Grade.Tier)
	if err != nil {
		return fmt.Errorf("failed to read grade tier: %w", err)
	}

	scenarios, err := loadScenarios(conf.Grade.ScenariosPath)
	if err != nil {
		return err
	}

	summary := scenario.NewRunner(logger, engine).Run(scenarios, tier)

	for _, report := range summary.Reports {
		if _, err = fmt.Fprintln(out, report.String()); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	if _, err = fmt.Fprintf(out, "%s tier: %d/%d scenarios passed\n", tier, summary.Passed(), len(summary.Reports)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if !summary.OK() {
		return fmt.Errorf("%w: %d of %d", ErrScenariosFailed, summary.Failed(), len(summary.Reports))
	}

	return nil
}

func loadScenarios(path string) ([]scenario.Scenario, error) {
	if path == "" {
		scenarios, err := scenario.Builtin()
		if err != nil {
			return nil, fmt.Errorf("failed to parse built-in scenarios: %w", err)
		}
		return scenarios, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scenarios: %w", err)
	}
	defer file.Close()

	scenarios, err := scenario.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scenarios %s: %w", path, err)
	}

	return scenarios, nil
}
