package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var (
	ErrInvalidLogLevel   = errors.New("invalid log level")
	ErrInvalidPlayerKind = errors.New("invalid player kind")
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	Players  Players `yaml:"players"`
	Seed     uint64  `yaml:"seed" env:"TICTACTOE_SEED" env-default:"0"`
	Redis    Redis   `yaml:"redis"`
}

type Players struct {
	X string `yaml:"x" env:"TICTACTOE_PLAYER_X" env-default:"computer"`
	O string `yaml:"o" env:"TICTACTOE_PLAYER_O" env-default:"computer"`
}

type Redis struct {
	Enabled bool          `yaml:"enabled" env:"TICTACTOE_REDIS_ENABLED" env-default:"false"`
	Host    string        `yaml:"host" env:"TICTACTOE_REDIS_HOST" env-default:"localhost"`
	Port    string        `yaml:"port" env:"TICTACTOE_REDIS_PORT" env-default:"6379"`
	GameTTL time.Duration `yaml:"game-ttl" env:"TICTACTOE_REDIS_GAME_TTL" env-default:"24h"`
}

// Load - reads path when it exists, otherwise only the environment and defaults.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if _, statErr := os.Stat(path); path != "" && statErr == nil {
		err = cleanenv.ReadConfig(path, config)
	} else {
		err = cleanenv.ReadEnv(config)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, that.LogLevel)
	}

	for _, kind := range []string{that.Players.X, that.Players.O} {
		if !entity.PlayerKind(kind).IsValid() {
			return fmt.Errorf("%w: %q", ErrInvalidPlayerKind, kind)
		}
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
