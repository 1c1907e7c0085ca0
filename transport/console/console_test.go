package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/mersenne-twister/tic-tac-toe/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("device unplugged")
}

func TestConsole_ReadLine(t *testing.T) {
	t.Run("Reads lines in order", func(t *testing.T) {
		// Given: a console over three lines, the last one unterminated
		c := New(strings.NewReader("5\n\nQ"), io.Discard)
		ctx := context.Background()

		// When / Then: each line is returned without its newline
		for _, expected := range []string{"5", "", "Q"} {
			line, err := c.ReadLine(ctx)
			require.NoError(t, err)
			assert.Equal(t, expected, line)
		}
	})

	t.Run("Long lines are returned whole", func(t *testing.T) {
		// Given: a line far longer than any read buffer, then a quit
		long := strings.Repeat("a", 70000)
		c := New(strings.NewReader(long+"\nQ\n"), io.Discard)
		ctx := context.Background()

		// When: reading two lines
		first, err := c.ReadLine(ctx)
		require.NoError(t, err)
		second, err := c.ReadLine(ctx)
		require.NoError(t, err)

		// Then: both come back intact
		assert.Equal(t, long, first)
		assert.Equal(t, "Q", second)
	})

	t.Run("Windows line endings are stripped", func(t *testing.T) {
		c := New(strings.NewReader("5\r\n"), io.Discard)

		line, err := c.ReadLine(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "5", line)
	})

	t.Run("End of input is a stream failure", func(t *testing.T) {
		// Given: an empty input
		c := New(strings.NewReader(""), io.Discard)

		// When: reading a line
		_, err := c.ReadLine(context.Background())

		// Then: ErrInputStream wrapping io.EOF is returned
		require.ErrorIs(t, err, apperror.ErrInputStream)
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("Read errors are stream failures", func(t *testing.T) {
		// Given: a reader that always fails
		c := New(failingReader{}, io.Discard)

		// When: reading a line
		_, err := c.ReadLine(context.Background())

		// Then: ErrInputStream is returned with the cause
		require.ErrorIs(t, err, apperror.ErrInputStream)
		assert.Contains(t, err.Error(), "device unplugged")
	})

	t.Run("Canceled context", func(t *testing.T) {
		// Given: a canceled context
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		c := New(strings.NewReader("5\n"), io.Discard)

		// When: reading a line
		_, err := c.ReadLine(ctx)

		// Then: the read is refused
		require.ErrorIs(t, err, apperror.ErrInputStream)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestConsole_Print(t *testing.T) {
	// Given: a console writing to a buffer
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out)

	// When: printing in all three forms
	c.Print("a", "b")
	c.Println("c")
	c.Printf("%s's turn: \n", "X")

	// Then: the buffer holds the text in order
	assert.Equal(t, "abc\nX's turn: \n", out.String())
}
