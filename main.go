package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mersenne-twister/tic-tac-toe/internal/apperror"
	"github.com/mersenne-twister/tic-tac-toe/transport/cli"
)

// main - is the entry point of the application. It runs the root command and maps failures to exit code 1.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := cli.NewRootCommand(os.Stderr).Execute(); err != nil {
		if errors.Is(err, apperror.ErrInputStream) {
			fmt.Fprintf(os.Stderr, "Unexpected input error: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
