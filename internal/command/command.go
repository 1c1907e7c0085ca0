// Package command maps raw input lines to game commands.
package command

import (
	"fmt"
	"strings"

	"github.com/mersenne-twister/tic-tac-toe/internal/apperror"
)

type Kind int

const (
	KindInvalid Kind = iota
	KindPlace
	KindQuit
	KindHelp
	KindRedraw
)

func (that Kind) String() string {
	switch that {
	case KindPlace:
		return "place"
	case KindQuit:
		return "quit"
	case KindHelp:
		return "help"
	case KindRedraw:
		return "redraw"
	default:
		return "invalid"
	}
}

const (
	quitToken = "Q"
	helpToken = "h"
)

// cellLabels maps both key layouts onto board indexes. The numpad mirrors the
// board, so 7 is the top-left cell and 3 the bottom-right one.
var cellLabels = map[string]int{
	"7": 0, "8": 1, "9": 2,
	"4": 3, "5": 4, "6": 5,
	"1": 6, "2": 7, "3": 8,

	"q": 0, "w": 1, "e": 2,
	"a": 3, "s": 4, "d": 5,
	"z": 6, "x": 7, "c": 8,
}

var numpadLabels = [9]string{"7", "8", "9", "4", "5", "6", "1", "2", "3"}

// Command is the result of parsing one line. Index is only meaningful for
// KindPlace, Raw holds the trimmed line.
type Command struct {
	Kind  Kind
	Index int
	Raw   string
}

// Err returns apperror.ErrInvalidCommand for an invalid command and nil otherwise.
func (that Command) Err() error {
	if that.Kind != KindInvalid {
		return nil
	}
	return fmt.Errorf("%w: %q", apperror.ErrInvalidCommand, that.Raw)
}

// Parse maps line to exactly one command.
func Parse(line string) Command {
	raw := strings.TrimSpace(line)

	if index, ok := cellLabels[raw]; ok {
		return PlaceAt(index)
	}

	switch raw {
	case quitToken:
		return Command{Kind: KindQuit, Raw: raw}
	case helpToken:
		return Command{Kind: KindHelp, Raw: raw}
	case "":
		return Command{Kind: KindRedraw}
	default:
		return Command{Kind: KindInvalid, Raw: raw}
	}
}

// PlaceAt builds a placement on a board index.
func PlaceAt(index int) Command {
	return Command{Kind: KindPlace, Index: index, Raw: Label(index)}
}

// Label returns the numpad key for a board index, or "" outside 0..8.
func Label(index int) string {
	if index < 0 || index >= len(numpadLabels) {
		return ""
	}
	return numpadLabels[index]
}
