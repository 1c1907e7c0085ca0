package tictactoe

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/mersenne-twister/tic-tac-toe/internal/entity"
)

// newHeadline returns the bold style used for banners. Unstyled sessions get
// the same text without escape sequences.
func newHeadline(styled bool) lipgloss.Style {
	renderer := lipgloss.NewRenderer(io.Discard)
	if styled {
		renderer.SetColorProfile(termenv.ANSI)
	} else {
		renderer.SetColorProfile(termenv.Ascii)
	}

	return renderer.NewStyle().Bold(true)
}

const helpText = `Run this program with '--help' to see options.
To place marks, use the numpad:
7 8 9
4 5 6
1 2 3
or if you don't have one, use:
q w e
a s d
z x c
Enter 'h' to see this help again, or 'Q' to quit.
Press enter at any time to see the board.`

const (
	msgWelcome   = "Welcome to Tic-Tac-Toe!"
	msgContinue  = "Press enter to continue..."
	msgExited    = "Game exited"
	msgScratch   = "The round was a scratch, and there was no winner."
	msgHelpHint  = "Enter 'h' to see help."
	msgBotAbsent = "The computer opponent is not available yet, %s will be played from this terminal.\n"
)

func settingsText(conf entity.MatchConfig) string {
	return fmt.Sprintf(`
Settings:
  out of:        %d
  first turn:    %s
  human first:   %t
  second player: %t
  difficulty:    %s
  small board:   %t`,
		conf.OutOf, conf.FirstTurn, conf.HumanFirst, conf.SecondPlayer, conf.Difficulty, conf.SmallBoard)
}

func winText(headline lipgloss.Style, result entity.RoundResult) string {
	return headline.Render(fmt.Sprintf("%s won the round in %d turns!", result.Winner, result.Moves))
}

func summaryText(headline lipgloss.Style, state *entity.MatchState) string {
	leader, trailer := state.Score.Leader(), state.Score.Trailer()

	return headline.Render(fmt.Sprintf("The overall winner is %s, with %d wins, while %s had %d wins;",
		leader, state.Score.Get(leader), trailer, state.Score.Get(trailer))) + "\n" +
		headline.Render(fmt.Sprintf("while there were %d scratches.", state.Scratches))
}
