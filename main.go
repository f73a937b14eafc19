package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rocketscienceinc/tictactoe-engine/internal/cli"
)

// main - is the entry point of the application. It runs the tictactoe command on the terminal.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := cli.Execute(context.Background(), os.Stdin, os.Stdout, os.Stderr); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}
