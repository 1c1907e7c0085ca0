// Package cli exposes the game as a cobra command.
package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	app "github.com/mersenne-twister/tic-tac-toe/internal"
	"github.com/mersenne-twister/tic-tac-toe/internal/config"
)

// version is overridden at build time with -ldflags "-X .../transport/cli.version=...".
var version = "dev"

const defaultConfigPath = "config.yml"

type flags struct {
	configPath   string
	logLevel     string
	smallBoard   bool
	secondPlayer bool
	outOf        int
	humanFirst   bool
	firstTurn    string
	difficulty   string
}

// NewRootCommand builds the tic-tac-toe command. Logs go to stderr.
func NewRootCommand(stderr io.Writer) *cobra.Command {
	opts := &flags{}

	cmd := &cobra.Command{
		Use:   "tic-tac-toe",
		Short: "Tic-tac-toe game with 1 and 2 player modes",
		Long: `Play tic-tac-toe in the terminal, one command per line.

Settings are read from a YAML file (--config), then TTT_* environment
variables, then the flags below. Flags only apply when given explicitly.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			opts.apply(cmd, conf)

			logger := newLogger(conf.LogLevel, stderr)
			interactive := isTerminal(cmd.InOrStdin()) && isTerminal(cmd.OutOrStdout())
			logger.Debug("terminal session", "interactive", interactive, "version", version)

			_, err = app.RunApp(cmd.Context(), logger, conf, cmd.InOrStdin(), cmd.OutOrStdout(), interactive)
			return err
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", defaultConfigPath, "path to a YAML config file")
	f.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	f.BoolVarP(&opts.smallBoard, "small-board", "s", false, "use a small board, instead of the default large one")
	f.BoolVarP(&opts.secondPlayer, "second-player", "p", true, "start in 2-player mode")
	f.IntVarP(&opts.outOf, "out-of", "o", 1, "how many wins to play until")
	f.BoolVarP(&opts.humanFirst, "human-first", "f", false,
		"make the player go first, regardless of first-turn (single player mode only)")
	f.StringVarP(&opts.firstTurn, "first-turn", "t", "random", "who goes first in a round: winner, loser, random, x or o")
	f.StringVarP(&opts.difficulty, "difficulty", "d", "easy", "difficulty of the AI: easy, medium or impossible")

	return cmd
}

// apply copies explicitly set flags over the loaded configuration.
func (that *flags) apply(cmd *cobra.Command, conf *config.Config) {
	changed := cmd.Flags().Changed

	if changed("log-level") {
		conf.LogLevel = that.logLevel
	}
	if changed("small-board") {
		conf.SmallBoard = that.smallBoard
	}
	if changed("second-player") {
		conf.SecondPlayer = that.secondPlayer
	}
	if changed("out-of") {
		conf.OutOf = that.outOf
	}
	if changed("human-first") {
		conf.HumanFirst = that.humanFirst
	}
	if changed("first-turn") {
		conf.FirstTurn = that.firstTurn
	}
	if changed("difficulty") {
		conf.Difficulty = that.difficulty
	}
}

func newLogger(logLevel string, w io.Writer) *slog.Logger {
	var level slog.Level

	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// isTerminal reports whether stream is a file attached to a terminal.
func isTerminal(stream any) bool {
	f, ok := stream.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
