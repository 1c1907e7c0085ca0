// Package console is the line-oriented terminal transport: one command per line in,
// plain text out.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mersenne-twister/tic-tac-toe/internal/apperror"
)

type Console struct {
	reader *bufio.Reader
	out    io.Writer
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// ReadLine blocks until a full line is available, whatever its length. An
// unterminated last line is returned as is. End of input and read failures are
// reported as apperror.ErrInputStream.
func (that *Console) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", apperror.ErrInputStream, err)
	}

	line, err := that.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("%w: %w", apperror.ErrInputStream, err)
	}

	line = strings.TrimSuffix(line, "\n")

	return strings.TrimSuffix(line, "\r"), nil
}

func (that *Console) Print(a ...any) {
	fmt.Fprint(that.out, a...)
}

func (that *Console) Println(a ...any) {
	fmt.Fprintln(that.out, a...)
}

func (that *Console) Printf(format string, a ...any) {
	fmt.Fprintf(that.out, format, a...)
}
