package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/scenario"
)

const (
	ModePlay  = "play"
	ModeGrade = "grade"
)

var (
	ErrUnknownMode     = errors.New("unknown mode")
	ErrUnknownLogLevel = errors.New("unknown log level")
)

type Config struct {
	LogLevel       string     `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Mode           string     `yaml:"mode" env:"MODE" env-default:"play"`
	StartingPlayer string     `yaml:"starting-player" env:"STARTING_PLAYER" env-default:"X"`
	Grade          Grade      `yaml:"grade"`
	Scoreboard     Scoreboard `yaml:"scoreboard"`
	Redis          Redis      `yaml:"redis"`
}

type Grade struct {
	Tier          string `yaml:"tier" env:"GRADE_TIER" env-default:"complete"`
	ScenariosPath string `yaml:"scenarios-path" env:"GRADE_SCENARIOS_PATH"`
}

type Scoreboard struct {
	Enabled bool `yaml:"enabled" env:"SCOREBOARD_ENABLED" env-default:"false"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the config file, applies environment overrides and validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// Validate - rejects values the application cannot run with.
func (that *Config) Validate() error {
	switch that.Mode {
	case ModePlay, ModeGrade:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, that.Mode)
	}

	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLogLevel, that.LogLevel)
	}

	if _, err := that.Starting(); err != nil {
		return err
	}

	if _, err := scenario.ParseTier(that.Grade.Tier); err != nil {
		return fmt.Errorf("grade tier: %w", err)
	}

	return nil
}

// Starting - returns the mark of the player who moves first.
func (that *Config) Starting() (entity.Mark, error) {
	mark, ok := entity.ParseMark(that.StartingPlayer)
	if !ok {
		return entity.Empty, fmt.Errorf("%w: starting player %q", apperror.ErrInvalidPlayer, that.StartingPlayer)
	}

	return mark, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
