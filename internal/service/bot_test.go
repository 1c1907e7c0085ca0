package service

import (
	"context"
	"testing"

	"github.com/mersenne-twister/tic-tac-toe/internal/apperror"
	"github.com/mersenne-twister/tic-tac-toe/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestBotService_ChooseCell(t *testing.T) {
	for _, difficulty := range entity.Difficulties {
		// Given: a bot for the difficulty
		bot := NewBotService(difficulty)

		// When: it is asked for a move
		_, err := bot.ChooseCell(context.Background(), entity.NewBoard(), entity.MarkO)

		// Then: it reports that no strategy exists and keeps the difficulty
		assert.ErrorIs(t, err, apperror.ErrBotNotImplemented)
		assert.Contains(t, err.Error(), string(difficulty))
		assert.Equal(t, difficulty, bot.Difficulty())
	}
}
