package suite

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/mersenne-twister/tic-tac-toe/transport/console"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Input   string
	Output  *bytes.Buffer
	Console *console.Console
}

// New returns a suite whose console reads the given lines, in order, and then
// reports end of input.
func New(t *testing.T, lines ...string) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var input string
	if len(lines) > 0 {
		input = strings.Join(lines, "\n") + "\n"
	}

	output := &bytes.Buffer{}

	return ctx, &Suite{
		T:       t,
		Logger:  logger,
		Input:   input,
		Output:  output,
		Console: console.New(strings.NewReader(input), output),
	}
}

// Count returns how many times substr occurs in the captured output.
func (that *Suite) Count(substr string) int {
	return strings.Count(that.Output.String(), substr)
}
