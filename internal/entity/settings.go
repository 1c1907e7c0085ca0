package entity

import (
	"fmt"
	"strings"

	"github.com/mersenne-twister/tic-tac-toe/internal/apperror"
)

// FirstTurn is the rule that picks which mark opens a new round.
type FirstTurn string

const (
	FirstTurnWinner FirstTurn = "winner"
	FirstTurnLoser  FirstTurn = "loser"
	FirstTurnRandom FirstTurn = "random"
	FirstTurnX      FirstTurn = "x"
	FirstTurnO      FirstTurn = "o"
)

var FirstTurns = []FirstTurn{FirstTurnWinner, FirstTurnLoser, FirstTurnRandom, FirstTurnX, FirstTurnO}

func ParseFirstTurn(value string) (FirstTurn, error) {
	for _, rule := range FirstTurns {
		if strings.EqualFold(value, string(rule)) {
			return rule, nil
		}
	}

	return "", fmt.Errorf("%w: %q", apperror.ErrUnknownFirstTurn, value)
}

// Difficulty selects the strength of an automated opponent.
type Difficulty string

const (
	DifficultyEasy       Difficulty = "easy"
	DifficultyMedium     Difficulty = "medium"
	DifficultyImpossible Difficulty = "impossible"
)

var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyImpossible}

func ParseDifficulty(value string) (Difficulty, error) {
	for _, difficulty := range Difficulties {
		if strings.EqualFold(value, string(difficulty)) {
			return difficulty, nil
		}
	}

	return "", fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, value)
}

// MatchConfig is fixed for the lifetime of a process.
type MatchConfig struct {
	OutOf        int
	FirstTurn    FirstTurn
	Difficulty   Difficulty
	HumanFirst   bool
	SecondPlayer bool
	SmallBoard   bool
}

func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		OutOf:        1,
		FirstTurn:    FirstTurnRandom,
		Difficulty:   DifficultyEasy,
		SecondPlayer: true,
	}
}

func (that MatchConfig) Validate() error {
	if that.OutOf < 1 {
		return fmt.Errorf("%w: got %d", apperror.ErrInvalidOutOf, that.OutOf)
	}

	if _, err := ParseFirstTurn(string(that.FirstTurn)); err != nil {
		return err
	}

	if _, err := ParseDifficulty(string(that.Difficulty)); err != nil {
		return err
	}

	return nil
}
