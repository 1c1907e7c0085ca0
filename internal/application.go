package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/mersenne-twister/tic-tac-toe/internal/config"
	"github.com/mersenne-twister/tic-tac-toe/internal/entity"
	"github.com/mersenne-twister/tic-tac-toe/internal/service"
	"github.com/mersenne-twister/tic-tac-toe/internal/tictactoe"
	"github.com/mersenne-twister/tic-tac-toe/transport/console"
)

// RunApp plays one match on the given streams. interactive enables styled
// banners and should only be set when both streams are terminals.
func RunApp(
	ctx context.Context,
	logger *slog.Logger,
	conf *config.Config,
	in io.Reader,
	out io.Writer,
	interactive bool,
) (*entity.MatchState, error) {
	log := logger.With("component", "app")

	settings, err := conf.MatchConfig()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if !settings.SecondPlayer {
		log.Warn("single player mode requested, no automated opponent strategy is available", "difficulty", settings.Difficulty)
	}

	seed := uint64(time.Now().UnixNano())
	policy := tictactoe.NewTurnPolicy(settings.FirstTurn, rand.New(rand.NewPCG(seed, seed>>1)))
	bot := service.NewBotService(settings.Difficulty)
	controller := tictactoe.NewMatchController(logger, settings, console.New(in, out), policy, bot, interactive)

	log.Debug("starting match", "out_of", settings.OutOf, "first_turn", settings.FirstTurn, "interactive", interactive)

	state, err := controller.Run(ctx)
	if err != nil {
		return state, fmt.Errorf("match stopped: %w", err)
	}

	return state, nil
}
