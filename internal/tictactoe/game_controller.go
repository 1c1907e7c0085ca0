package tictactoe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/mersenne-twister/tic-tac-toe/internal/apperror"
	"github.com/mersenne-twister/tic-tac-toe/internal/command"
	"github.com/mersenne-twister/tic-tac-toe/internal/entity"
	"github.com/mersenne-twister/tic-tac-toe/internal/render"
	"github.com/mersenne-twister/tic-tac-toe/internal/service"
)

// HumanMark is the mark played from the terminal when an automated opponent is configured.
const HumanMark = entity.MarkX

// Phase is the state of the match loop after a command has been handled.
// A legal placement passes through a transient "move applied" step and
// resolves to one of the phases below.
type Phase int

const (
	PhaseAwaitingCommand Phase = iota
	PhaseRoundWon
	PhaseRoundScratch
	PhaseMatchEnded
)

type terminal interface {
	ReadLine(ctx context.Context) (string, error)
	Print(a ...any)
	Println(a ...any)
	Printf(format string, a ...any)
}

// MatchController owns the round loop of a single match.
type MatchController struct {
	logger   *slog.Logger
	settings entity.MatchConfig
	terminal terminal
	policy   *TurnPolicy
	size     render.Size
	headline lipgloss.Style

	bot       service.BotService
	botWarned bool
}

// NewMatchController builds a controller. bot may be nil, it is only consulted
// when settings.SecondPlayer is false. Banners are bold only when styled is set.
func NewMatchController(
	logger *slog.Logger,
	settings entity.MatchConfig,
	terminal terminal,
	policy *TurnPolicy,
	bot service.BotService,
	styled bool,
) *MatchController {
	size := render.Large
	if settings.SmallBoard {
		size = render.Small
	}

	if settings.SecondPlayer {
		bot = nil
	}

	return &MatchController{
		logger:   logger.With("component", "match", "match_id", uuid.NewString()),
		settings: settings,
		terminal: terminal,
		policy:   policy,
		size:     size,
		headline: newHeadline(styled),
		bot:      bot,
	}
}

// Run plays rounds until a mark reaches the configured number of wins or the
// player quits. The returned state is never nil. Errors come from reading input
// (apperror.ErrInputStream) or from a configured opponent.
func (that *MatchController) Run(ctx context.Context) (*entity.MatchState, error) {
	log := that.logger.With("method", "Run")
	state := entity.NewMatchState()

	that.printIntro()
	if err := that.waitForEnter(ctx); err != nil {
		return state, err
	}
	that.render(state.Board)

	for !state.IsFinished(that.settings.OutOf) {
		state.StartRound(that.firstTurn(state.LastRound))
		log.Debug("round started", "round", state.Round, "first", state.Turn)

		phase, err := that.playRound(ctx, state)
		if err != nil {
			return state, err
		}

		switch phase {
		case PhaseMatchEnded:
			log.Info("match quit", "round", state.Round)
			return state, nil
		case PhaseRoundWon:
			that.terminal.Println(winText(that.headline, *state.LastRound))
		case PhaseRoundScratch:
			that.terminal.Println(msgScratch)
		}

		log.Info("round finished", "round", state.Round, "winner", state.LastRound.Winner, "moves", state.LastRound.Moves)

		if err = that.waitForEnter(ctx); err != nil {
			return state, err
		}

		if !state.IsFinished(that.settings.OutOf) {
			that.render(entity.NewBoard())
		}
	}

	if that.settings.OutOf > 1 {
		that.terminal.Println(summaryText(that.headline, state))
	}

	log.Info("match finished",
		"winner", state.Score.Leader(),
		"x", state.Score.Get(entity.MarkX),
		"o", state.Score.Get(entity.MarkO),
		"scratches", state.Scratches,
	)

	return state, nil
}

func (that *MatchController) playRound(ctx context.Context, state *entity.MatchState) (Phase, error) {
	for {
		cmd, err := that.nextCommand(ctx, state)
		if err != nil {
			return PhaseAwaitingCommand, err
		}

		if phase := that.Handle(state, cmd); phase != PhaseAwaitingCommand {
			return phase, nil
		}
	}
}

// Handle applies one command to the running round and reports where the match
// loop goes next. Help, redraw, invalid commands and occupied cells leave the
// turn and the move count untouched.
func (that *MatchController) Handle(state *entity.MatchState, cmd command.Command) Phase {
	log := that.logger.With("method", "Handle", "round", state.Round, "turn", state.Turn)

	switch cmd.Kind {
	case command.KindQuit:
		that.terminal.Println(msgExited)
		return PhaseMatchEnded
	case command.KindHelp:
		that.terminal.Println(helpText)
		return PhaseAwaitingCommand
	case command.KindRedraw:
		that.render(state.Board)
		return PhaseAwaitingCommand
	case command.KindPlace:
		return that.place(state, cmd)
	default:
		log.Debug("invalid command", "error", cmd.Err())
		that.terminal.Printf("'%s' is not a command\n", cmd.Raw)
		that.terminal.Println(msgHelpHint)
		return PhaseAwaitingCommand
	}
}

func (that *MatchController) place(state *entity.MatchState, cmd command.Command) Phase {
	log := that.logger.With("method", "place", "round", state.Round, "turn", state.Turn)

	if err := state.Board.ApplyMove(cmd.Index, state.Turn); err != nil {
		log.Debug("move rejected", "cell", cmd.Index, "error", err)

		if errors.Is(err, apperror.ErrCellOccupied) {
			that.terminal.Printf("Cell %s is already taken by %s.\n", command.Label(cmd.Index), state.Board.Cell(cmd.Index))
		} else {
			that.terminal.Println(err)
		}

		return PhaseAwaitingCommand
	}

	log.Debug("move applied", "cell", cmd.Index)

	that.render(state.Board)
	state.Advance()

	if winner, ok := state.Board.Winner(); ok {
		state.RecordWin(winner)
		return PhaseRoundWon
	}

	if state.Moves >= entity.BoardSize {
		state.RecordScratch()
		return PhaseRoundScratch
	}

	return PhaseAwaitingCommand
}

func (that *MatchController) nextCommand(ctx context.Context, state *entity.MatchState) (command.Command, error) {
	if that.bot != nil && state.Turn != HumanMark {
		cell, err := that.bot.ChooseCell(ctx, state.Board, state.Turn)
		if err == nil {
			if cell < 0 || cell >= entity.BoardSize || state.Board.Cell(cell) != entity.NoMark {
				return command.Command{}, fmt.Errorf("%w: cell %d", apperror.ErrIllegalBotMove, cell)
			}
			return command.PlaceAt(cell), nil
		}

		if !errors.Is(err, apperror.ErrBotNotImplemented) {
			return command.Command{}, fmt.Errorf("bot failed to choose a cell: %w", err)
		}

		if !that.botWarned {
			that.logger.Warn("automated opponent unavailable", "difficulty", that.bot.Difficulty(), "error", err)
			that.terminal.Printf(msgBotAbsent, state.Turn)
			that.botWarned = true
		}
	}

	that.terminal.Printf("%s's turn: \n", state.Turn)

	line, err := that.terminal.ReadLine(ctx)
	if err != nil {
		that.logger.Error("failed to read command", "error", err)
		return command.Command{}, fmt.Errorf("failed to read command: %w", err)
	}

	return command.Parse(line), nil
}

func (that *MatchController) firstTurn(previous *entity.RoundResult) entity.Mark {
	if that.bot != nil && that.settings.HumanFirst {
		return HumanMark
	}
	return that.policy.FirstTurn(previous)
}

func (that *MatchController) waitForEnter(ctx context.Context) error {
	that.terminal.Println(msgContinue)

	if _, err := that.terminal.ReadLine(ctx); err != nil {
		that.logger.Error("failed to read confirmation", "error", err)
		return fmt.Errorf("failed to wait for enter: %w", err)
	}

	return nil
}

func (that *MatchController) render(board *entity.Board) {
	that.terminal.Print(render.Render(board, that.size))
}

func (that *MatchController) printIntro() {
	that.terminal.Println(that.headline.Render(msgWelcome))
	that.terminal.Println(helpText)
	that.terminal.Println(settingsText(that.settings))
}
