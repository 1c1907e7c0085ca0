package service

import (
	"context"
	"fmt"

	"github.com/mersenne-twister/tic-tac-toe/internal/apperror"
	"github.com/mersenne-twister/tic-tac-toe/internal/entity"
)

// BotService picks a cell for an automated opponent.
type BotService interface {
	ChooseCell(ctx context.Context, board *entity.Board, mark entity.Mark) (int, error)
	Difficulty() entity.Difficulty
}

type botService struct {
	difficulty entity.Difficulty
}

func NewBotService(difficulty entity.Difficulty) BotService {
	return &botService{
		difficulty: difficulty,
	}
}

// ChooseCell has no strategy behind it yet and always reports apperror.ErrBotNotImplemented.
func (that *botService) ChooseCell(_ context.Context, _ *entity.Board, mark entity.Mark) (int, error) {
	return 0, fmt.Errorf("%w: %s opponent for %s", apperror.ErrBotNotImplemented, that.difficulty, mark)
}

func (that *botService) Difficulty() entity.Difficulty {
	return that.difficulty
}
