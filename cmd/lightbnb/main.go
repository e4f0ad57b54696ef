// Command lightbnb runs LightBnB queries against the configured database and
// prints the results as JSON.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/emanuelbalogun/LightBnB/sqlq"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{in: stdin, out: stdout}
	defer func() { _ = a.close() }()

	root := a.rootCmd()
	root.SetArgs(args)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, sqlq.ErrNotFound):
		fmt.Fprintln(stderr, "not found")
	default:
		fmt.Fprintln(stderr, "error:", err)
	}
	return 1
}
