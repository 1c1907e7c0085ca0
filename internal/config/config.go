package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/mersenne-twister/tic-tac-toe/internal/entity"
)

type Config struct {
	LogLevel     string `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"warn"`
	SmallBoard   bool   `yaml:"small-board" env:"TTT_SMALL_BOARD" env-default:"false"`
	SecondPlayer bool   `yaml:"second-player" env:"TTT_SECOND_PLAYER"`
	OutOf        int    `yaml:"out-of" env:"TTT_OUT_OF" env-default:"1"`
	HumanFirst   bool   `yaml:"human-first" env:"TTT_HUMAN_FIRST" env-default:"false"`
	FirstTurn    string `yaml:"first-turn" env:"TTT_FIRST_TURN" env-default:"random"`
	Difficulty   string `yaml:"difficulty" env:"TTT_DIFFICULTY" env-default:"easy"`
}

// Load reads the YAML file at path when it exists and applies environment
// overrides on top. A missing file is not an error.
func Load(path string) (*Config, error) {
	config := newDefault()

	if path != "" {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			if err = cleanenv.ReadConfig(path, config); err != nil {
				return nil, fmt.Errorf("unable to load config file: %w", err)
			}
			return config, nil
		case !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("unable to stat config file: %w", err)
		}
	}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}

	return config, nil
}

// newDefault presets fields whose default is not the zero value. cleanenv only
// applies env-default to zero fields.
func newDefault() *Config {
	return &Config{
		SecondPlayer: true,
	}
}

// MatchConfig validates the game settings and converts them.
func (that *Config) MatchConfig() (entity.MatchConfig, error) {
	firstTurn, err := entity.ParseFirstTurn(that.FirstTurn)
	if err != nil {
		return entity.MatchConfig{}, err
	}

	difficulty, err := entity.ParseDifficulty(that.Difficulty)
	if err != nil {
		return entity.MatchConfig{}, err
	}

	conf := entity.MatchConfig{
		OutOf:        that.OutOf,
		FirstTurn:    firstTurn,
		Difficulty:   difficulty,
		HumanFirst:   that.HumanFirst,
		SecondPlayer: that.SecondPlayer,
		SmallBoard:   that.SmallBoard,
	}

	if err = conf.Validate(); err != nil {
		return entity.MatchConfig{}, err
	}

	return conf, nil
}
